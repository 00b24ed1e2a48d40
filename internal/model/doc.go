// SPDX-License-Identifier: MIT
// Copyright (c) 2025 Vladyslav Kazantsev
//
// Package model holds the plain data types shared by every stage of the
// packer: the Task read from input, the Things it offers, and the Package
// chosen for it.
//
// # Core Concepts
//
//   - Thing: a single candidate item with a 1-based index, a weight and a cost.
//
//   - Task: one input line. It carries the weight limit of the package and the
//     things that may be put into it, in input order.
//
//   - Package: the solver's answer for a Task. It holds the chosen things in
//     the same order they appeared in the Task.
package model
