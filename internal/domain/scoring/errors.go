package scoring

import "errors"

var (
	// ErrFrameworkMismatch means the profile and rule set belong to
	// different frameworks.
	ErrFrameworkMismatch = errors.New("profile framework does not match the engine's rule set")

	// ErrMissingAttributes marks a food lacking the attribute block a
	// framework requires. An exclusion, not a failure.
	ErrMissingAttributes = errors.New("food lacks the attribute block required by this framework")
)
