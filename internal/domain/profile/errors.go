package profile

import "errors"

// Profile validation errors. Surfaced synchronously as typed
// validation failures; an invalid profile is never partially scored.

var (
	ErrInvalidDominant          = errors.New("dominant value is not in the framework enumeration")
	ErrInvalidSecondary         = errors.New("secondary value is not in the framework enumeration")
	ErrSecondaryEqualsDominant  = errors.New("secondary value must differ from the dominant")
	ErrInvalidSeverity          = errors.New("severity must be 1, 2 or 3")
	ErrInvalidAgni              = errors.New("agni type must be sharp, variable, mild or weak")
	ErrInvalidDigestiveStrength = errors.New("digestive strength must be weak, slow, moderate or strong")
	ErrInvalidTendency          = errors.New("thermal tendency must be cold, heat or neutral")
	ErrInvalidGoal              = errors.New("goal is not in the goal enumeration")
	ErrInvalidRiskFlag          = errors.New("risk flag is not in the risk enumeration")
	ErrInvalidIntolerance       = errors.New("intolerance is not in the intolerance enumeration")
	ErrInvalidCalorieTarget     = errors.New("daily calorie target cannot be negative")
)
