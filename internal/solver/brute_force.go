package solver

import (
	"context"
	"math"

	"github.com/vk/packer/internal/model"
)

// BruteForce enumerates every non-empty subset of things as a bitmask.
// It is exact and simple but costs O(n * 2^n), hence the Limit.
type BruteForce struct {
	// Limit caps the number of things per task. Zero means DefaultLimit;
	// values above config.MaxThingsCeiling are lowered to it.
	Limit int
}

// Solve implements Solver.
func (b BruteForce) Solve(ctx context.Context, task model.Task) (model.Package, error) {
	if err := checkLimit(task, b.Limit); err != nil {
		return model.Package{}, err
	}
	if err := ctx.Err(); err != nil {
		return model.Package{}, err
	}

	n := len(task.Things)
	bestCost := 0.0
	bestWeight := math.MaxFloat64
	var bestMask uint32

	end := uint32(1) << uint(n)
	for mask := uint32(1); mask < end; mask++ {
		if mask%cancelCheckInterval == 0 {
			if err := ctx.Err(); err != nil {
				return model.Package{}, err
			}
		}

		var cost, weight float64
		for j := 0; j < n; j++ {
			if mask&(1<<uint(j)) != 0 {
				cost += task.Things[j].Cost
				weight += task.Things[j].Weight
			}
		}

		if weight < task.MaxWeight && isBetter(cost, weight, bestCost, bestWeight) {
			bestMask = mask
			bestCost = cost
			bestWeight = weight
		}
	}

	return pick(task.Things, bestMask), nil
}
