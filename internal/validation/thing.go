package validation

import (
	"github.com/vk/packer/internal/model"
	"github.com/vk/packer/internal/packerr"
)

// MaxThingWeight rejects things heavier than max.
func MaxThingWeight(max float64) Rule[model.Thing] {
	return RuleFunc[model.Thing](func(thing model.Thing) error {
		if thing.Weight > max {
			return packerr.Validationf("max weight that a thing can have is ≤ %s, given: %s",
				model.FormatNumber(max), model.FormatNumber(thing.Weight))
		}
		return nil
	})
}

// MaxThingCost rejects things costlier than max.
func MaxThingCost(max float64) Rule[model.Thing] {
	return RuleFunc[model.Thing](func(thing model.Thing) error {
		if thing.Cost > max {
			return packerr.Validationf("max cost that a thing can have is ≤ %s, given: %s",
				model.FormatNumber(max), model.FormatNumber(thing.Cost))
		}
		return nil
	})
}
