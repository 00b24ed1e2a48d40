// SPDX-License-Identifier: MIT
// Copyright (c) 2025 Vladyslav Kazantsev
//
// This file defines Package, the output of the packing algorithm.
package model

// Package is the set of things chosen for a Task.
type Package struct {
	Things []Thing
}

// IsEmpty reports whether nothing was packed.
func (p Package) IsEmpty() bool {
	return len(p.Things) == 0
}

// TotalWeight sums the weight of all packed things.
func (p Package) TotalWeight() float64 {
	var sum float64
	for _, t := range p.Things {
		sum += t.Weight
	}
	return sum
}

// TotalCost sums the cost of all packed things.
func (p Package) TotalCost() float64 {
	var sum float64
	for _, t := range p.Things {
		sum += t.Cost
	}
	return sum
}

// Indexes returns the input indexes of the packed things in order.
func (p Package) Indexes() []int {
	out := make([]int, 0, len(p.Things))
	for _, t := range p.Things {
		out = append(out, t.Index)
	}
	return out
}
