// Package app contains the core application logic. It defines the main App
// struct, its configuration, and the execution lifecycle for both batch and
// serve mode, decoupled from the CLI entrypoint.
package app
