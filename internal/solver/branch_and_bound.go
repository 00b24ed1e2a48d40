package solver

import (
	"context"
	"math"

	"github.com/vk/packer/internal/model"
)

// BranchAndBound walks the include/exclude tree of things in input order and
// drops branches that are already too heavy or whose remaining things cannot
// lift the cost up to the best found so far.
//
// It selects a package with the same cost and weight as BruteForce. When two
// distinct subsets tie on both, the one it returns may differ.
type BranchAndBound struct {
	// Limit caps the number of things per task. Zero means DefaultLimit;
	// values above config.MaxThingsCeiling are lowered to it.
	Limit int
}

type bnbSearch struct {
	ctx    context.Context
	things []model.Thing
	max    float64
	// suffixCost[i] is the total cost of things[i:].
	suffixCost []float64
	visited    int

	bestMask   uint32
	bestCost   float64
	bestWeight float64
}

// Solve implements Solver.
func (b BranchAndBound) Solve(ctx context.Context, task model.Task) (model.Package, error) {
	if err := checkLimit(task, b.Limit); err != nil {
		return model.Package{}, err
	}
	if err := ctx.Err(); err != nil {
		return model.Package{}, err
	}

	n := len(task.Things)
	s := &bnbSearch{
		ctx:        ctx,
		things:     task.Things,
		max:        task.MaxWeight,
		suffixCost: make([]float64, n+1),
		bestWeight: math.MaxFloat64,
	}
	for i := n - 1; i >= 0; i-- {
		s.suffixCost[i] = s.suffixCost[i+1] + task.Things[i].Cost
	}

	if err := s.walk(0, 0, 0, 0); err != nil {
		return model.Package{}, err
	}
	return pick(task.Things, s.bestMask), nil
}

func (s *bnbSearch) walk(i int, mask uint32, cost, weight float64) error {
	s.visited++
	if s.visited%cancelCheckInterval == 0 {
		if err := s.ctx.Err(); err != nil {
			return err
		}
	}

	if weight >= s.max {
		return nil
	}
	if cost+s.suffixCost[i] < s.bestCost {
		return nil
	}

	if i == len(s.things) {
		// The empty subset is never a candidate, same as in BruteForce.
		if mask != 0 && isBetter(cost, weight, s.bestCost, s.bestWeight) {
			s.bestMask = mask
			s.bestCost = cost
			s.bestWeight = weight
		}
		return nil
	}

	t := s.things[i]
	if err := s.walk(i+1, mask|1<<uint(i), cost+t.Cost, weight+t.Weight); err != nil {
		return err
	}
	return s.walk(i+1, mask, cost, weight)
}
