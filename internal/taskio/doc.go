// Package taskio reads packing tasks from text and writes solved packages
// back as text.
//
// Input holds one task per line:
//
//	<max weight> : (<index>,<weight>,€<cost>) (<index>,<weight>,€<cost>) ...
//
// Output holds one line per package: the packed indexes joined by commas,
// or "-" when nothing was packed.
package taskio
