// Package validation provides composable business rules that tasks and
// things must satisfy before they are handed to a solver.
package validation

// Rule checks a value against a business requirement. Violations are
// reported as packerr validation errors.
type Rule[T any] interface {
	Validate(v T) error
}

// RuleFunc adapts a plain function to the Rule interface.
type RuleFunc[T any] func(v T) error

// Validate calls f(v).
func (f RuleFunc[T]) Validate(v T) error {
	return f(v)
}

// AllOf returns a rule that is satisfied only when every given rule is.
// The first violation is returned.
func AllOf[T any](rules ...Rule[T]) Rule[T] {
	return RuleFunc[T](func(v T) error {
		for _, r := range rules {
			if err := r.Validate(v); err != nil {
				return err
			}
		}
		return nil
	})
}

// ValidateAll applies rule to every item and stops at the first violation.
func ValidateAll[T any](rule Rule[T], items []T) error {
	for _, item := range items {
		if err := rule.Validate(item); err != nil {
			return err
		}
	}
	return nil
}
