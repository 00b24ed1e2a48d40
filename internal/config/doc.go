// Package config defines the format-agnostic configuration model for the
// packer, along with the Loader interface for reading it from a file.
//
// The `config.Model` is the single source of truth for the limits enforced by
// the validation rules and for the choice of solver. Concrete implementations
// of the Loader, such as for HCL, are provided in separate packages.
package config
