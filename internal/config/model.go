package config

import (
	"errors"
	"fmt"
)

// MaxThingsCeiling bounds max_things. The brute force solver enumerates
// 2^n subsets, so the ceiling keeps a single task in the tens of millions
// of iterations at worst.
const MaxThingsCeiling = 24

// Default values of the packing limits.
const (
	DefaultMaxPackageWeight = 100.0
	DefaultMaxThings        = 15
	DefaultMaxThingWeight   = 100.0
	DefaultMaxThingCost     = 100.0
)

// Solver names accepted in configuration.
const (
	SolverBruteForce     = "brute-force"
	SolverBranchAndBound = "branch-and-bound"
)

// Model is the unified, format-agnostic representation of the packer
// configuration.
type Model struct {
	Limits Limits
	// Solver is empty when the configuration does not choose one.
	Solver string
}

// NewModel returns a model populated with the default limits.
func NewModel() *Model {
	return &Model{Limits: DefaultLimits()}
}

// Validate checks the model for internally consistent values.
func (m *Model) Validate() error {
	if err := m.Limits.Validate(); err != nil {
		return err
	}
	switch m.Solver {
	case "", SolverBruteForce, SolverBranchAndBound:
		return nil
	default:
		return fmt.Errorf("unknown solver %q: must be %q or %q", m.Solver, SolverBruteForce, SolverBranchAndBound)
	}
}

// Limits are the business constraints every task must satisfy.
type Limits struct {
	MaxPackageWeight float64
	MaxThings        int
	MaxThingWeight   float64
	MaxThingCost     float64
}

// DefaultLimits returns the limits used when nothing is configured.
func DefaultLimits() Limits {
	return Limits{
		MaxPackageWeight: DefaultMaxPackageWeight,
		MaxThings:        DefaultMaxThings,
		MaxThingWeight:   DefaultMaxThingWeight,
		MaxThingCost:     DefaultMaxThingCost,
	}
}

// Validate rejects non-positive limits and a max_things above the ceiling.
func (l Limits) Validate() error {
	var errs []error
	if l.MaxPackageWeight <= 0 {
		errs = append(errs, fmt.Errorf("max_package_weight must be positive, got %v", l.MaxPackageWeight))
	}
	if l.MaxThingWeight <= 0 {
		errs = append(errs, fmt.Errorf("max_thing_weight must be positive, got %v", l.MaxThingWeight))
	}
	if l.MaxThingCost <= 0 {
		errs = append(errs, fmt.Errorf("max_thing_cost must be positive, got %v", l.MaxThingCost))
	}
	if l.MaxThings <= 0 || l.MaxThings > MaxThingsCeiling {
		errs = append(errs, fmt.Errorf("max_things must be between 1 and %d, got %d", MaxThingsCeiling, l.MaxThings))
	}
	return errors.Join(errs...)
}
