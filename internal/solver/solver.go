// Package solver implements the packing algorithms.
//
// Every solver answers the same question for a Task: which subset of things
// has a total weight strictly below the package limit, the highest total
// cost and, among equally costly subsets, the lowest total weight. Things in
// the returned Package keep their input order.
//
// Weights and costs are assumed to be non-negative, which the input format
// guarantees.
package solver

import (
	"context"
	"fmt"

	"github.com/vk/packer/internal/config"
	"github.com/vk/packer/internal/model"
	"github.com/vk/packer/internal/packerr"
)

// DefaultLimit is the number of things a solver accepts when no limit is
// configured.
const DefaultLimit = 15

// cancelCheckInterval is how many subsets are visited between ctx checks.
const cancelCheckInterval = 1 << 12

// Solver finds the best Package for a Task.
type Solver interface {
	Solve(ctx context.Context, task model.Task) (model.Package, error)
}

// ByName returns the solver registered under name. An empty name selects the
// brute force solver.
func ByName(name string, limit int) (Solver, error) {
	switch name {
	case "", config.SolverBruteForce:
		return BruteForce{Limit: limit}, nil
	case config.SolverBranchAndBound:
		return BranchAndBound{Limit: limit}, nil
	default:
		return nil, fmt.Errorf("unknown solver %q", name)
	}
}

// isBetter reports whether a candidate beats the best found so far.
func isBetter(cost, weight, bestCost, bestWeight float64) bool {
	return cost > bestCost || cost == bestCost && weight < bestWeight
}

// checkLimit rejects tasks above limit. The limit never exceeds
// config.MaxThingsCeiling, which keeps every subset inside a uint32 mask.
func checkLimit(task model.Task, limit int) error {
	if limit <= 0 {
		limit = DefaultLimit
	}
	limit = min(limit, config.MaxThingsCeiling)
	if len(task.Things) > limit {
		return packerr.Validationf("task might have up to %d things to pack from, given: %d", limit, len(task.Things))
	}
	return nil
}

// pick builds a package from the things selected by mask.
func pick(things []model.Thing, mask uint32) model.Package {
	var out []model.Thing
	for j, t := range things {
		if mask&(1<<uint(j)) != 0 {
			out = append(out, t)
		}
	}
	return model.Package{Things: out}
}
