// SPDX-License-Identifier: MIT
// Copyright (c) 2025 Vladyslav Kazantsev
//
// This file defines Thing, the atomic candidate of a packing Task.
package model

import "fmt"

// Thing is a candidate item that may be put into a Package.
type Thing struct {
	// Index is the identifier given in the input. It is what ends up in the
	// printed result.
	Index  int
	Weight float64
	Cost   float64
}

// String renders the thing back in input notation.
func (t Thing) String() string {
	return fmt.Sprintf("(%d,%s,€%s)", t.Index, FormatNumber(t.Weight), FormatNumber(t.Cost))
}
