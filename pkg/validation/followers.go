// Package validation provides input parsing and validation helpers for
// values arriving from presentation layers.
package validation

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/Aurelian-Chen/NovasX/internal/catalog"
	"github.com/Aurelian-Chen/NovasX/pkg/units"
)

// ParseFollowers converts a user-supplied follower count string into a raw
// follower count. Accepted forms: plain numbers, comma or space grouping
// ("1,000,000"), scientific notation ("1e6"), and a caret as exponent marker
// ("1^6"). Negative counts and unparsable strings fail with ErrInvalidInput.
func ParseFollowers(input string) (units.Followers, error) {
	trimmed := strings.TrimSpace(input)
	if trimmed == "" {
		return 0, fmt.Errorf("%w: empty follower count", catalog.ErrInvalidInput)
	}

	var cleaned string
	if strings.ContainsAny(strings.ToLower(trimmed), "e^") {
		cleaned = strings.ReplaceAll(trimmed, "^", "e")
	} else {
		cleaned = strings.NewReplacer(",", "", " ", "").Replace(trimmed)
	}

	value, err := strconv.ParseFloat(cleaned, 64)
	if err != nil {
		return 0, fmt.Errorf("%w: follower count %q is not a number", catalog.ErrInvalidInput, input)
	}
	if value < 0 {
		return 0, fmt.Errorf("%w: follower count must not be negative", catalog.ErrInvalidInput)
	}

	return units.Followers(value), nil
}

// CheckFollowers rejects negative follower counts with ErrInvalidInput.
// The pricing curves are undefined left of zero, so the engine fails fast
// rather than extrapolating into negative territory.
func CheckFollowers(followers units.Followers) error {
	if followers < 0 {
		return fmt.Errorf("%w: follower count must not be negative", catalog.ErrInvalidInput)
	}
	return nil
}
