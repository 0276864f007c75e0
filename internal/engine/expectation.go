package engine

import (
	"fmt"
)

// ExpectedValue composes predicted minutes and a per-minute rate into an
// expected stat value. Pure function; rejects negative inputs.
func ExpectedValue(minutes, rate float64) (float64, error) {
	if minutes < 0 {
		return 0, fmt.Errorf("predicted minutes must be non-negative, got %v", minutes)
	}
	if rate < 0 {
		return 0, fmt.Errorf("scoring rate must be non-negative, got %v", rate)
	}
	return minutes * rate, nil
}
