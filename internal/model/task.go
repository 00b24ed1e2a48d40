// SPDX-License-Identifier: MIT
// Copyright (c) 2025 Vladyslav Kazantsev
//
// This file defines Task, the input of the packing algorithm.
package model

import (
	"strconv"
	"strings"
)

// Task holds the parameters of a single packing problem.
type Task struct {
	// MaxWeight is the package weight limit. A valid package weighs strictly
	// less than this.
	MaxWeight float64
	Things    []Thing
}

// String renders the task back in input notation.
func (t Task) String() string {
	var sb strings.Builder
	sb.WriteString(FormatNumber(t.MaxWeight))
	sb.WriteString(" :")
	for _, th := range t.Things {
		sb.WriteByte(' ')
		sb.WriteString(th.String())
	}
	return sb.String()
}

// FormatNumber prints a float without a trailing ".0" for whole values.
func FormatNumber(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}
