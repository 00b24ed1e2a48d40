package validation

import (
	"github.com/vk/packer/internal/config"
	"github.com/vk/packer/internal/model"
	"github.com/vk/packer/internal/packerr"
)

// MaxPackageWeight rejects tasks whose weight limit exceeds max.
func MaxPackageWeight(max float64) Rule[model.Task] {
	return RuleFunc[model.Task](func(task model.Task) error {
		if task.MaxWeight > max {
			return packerr.Validationf("max weight that a package can take is ≤ %s, given: %s",
				model.FormatNumber(max), model.FormatNumber(task.MaxWeight))
		}
		return nil
	})
}

// MaxThings rejects tasks offering more than max things.
func MaxThings(max int) Rule[model.Task] {
	return RuleFunc[model.Task](func(task model.Task) error {
		if len(task.Things) > max {
			return packerr.Validationf("task might have up to %d things to pack from, given: %d", max, len(task.Things))
		}
		return nil
	})
}

// EachThing applies rule to every thing of a task.
func EachThing(rule Rule[model.Thing]) Rule[model.Task] {
	return RuleFunc[model.Task](func(task model.Task) error {
		return ValidateAll(rule, task.Things)
	})
}

// Default builds the standard task rule for the given limits.
func Default(limits config.Limits) Rule[model.Task] {
	return AllOf(
		MaxPackageWeight(limits.MaxPackageWeight),
		MaxThings(limits.MaxThings),
		EachThing(AllOf(
			MaxThingCost(limits.MaxThingCost),
			MaxThingWeight(limits.MaxThingWeight),
		)),
	)
}
