package catalog

import "errors"

// Sentinel errors for the engine's error taxonomy. Callers branch with
// errors.Is; messages carry the offending key.
var (
	// ErrInvalidInput flags malformed numeric input such as a negative or
	// unparsable follower count.
	ErrInvalidInput = errors.New("invalid input")

	// ErrUnknownCategory flags a category with no base price curve. A price
	// cannot be computed without one, so this is always a hard error.
	ErrUnknownCategory = errors.New("unknown category")

	// ErrUnknownPlatform flags a platform with no growth parameters. Note
	// the asymmetry with pricing: a platform missing from the coefficient
	// matrix merely prices at the neutral 1.0 multiplier, but valuation
	// cannot proceed without growth parameters.
	ErrUnknownPlatform = errors.New("unknown platform")
)
