// Package validate provides reusable validators and named validator sets.
//
// Rule constructors such as MinLength, Email and OneOf return
// input.Validator values that can be passed to Input.Validate directly.
// A Registry groups rules under names so they can be referenced with
// Input.ValidateNamed after Input.WithValidators:
//
//	rules := validate.Default()
//	rules.MustRegister("username", validate.Chain(
//	    validate.MinLength(3),
//	    validate.Alphanumeric(),
//	))
//
//	name, err := input.New().
//	    WithValidators(rules).
//	    ValidateNamed("notEmpty").
//	    ValidateNamed("username").
//	    RunString(ctx)
package validate
