package models

import "errors"

// Custom errors
var (
	// ErrNoRate: the rolling window has zero total minutes, so a per-minute
	// rate is undefined. The player is excluded, never divided.
	ErrNoRate = errors.New("scoring rate undefined: zero minutes in window")

	// ErrDegenerate: a numeric parameter left the valid domain (alpha <= 0,
	// NaN mean). The candidate is dropped, not fatal.
	ErrDegenerate = errors.New("degenerate numeric input")

	// ErrDataGap: games, minutes or odds are missing for a player. The player
	// is excluded from the slate; the run continues.
	ErrDataGap = errors.New("insufficient data for player")

	// ErrModelLoad: the minutes model artifact is missing or corrupt. Fatal
	// before any inference.
	ErrModelLoad = errors.New("minutes model artifact unavailable")

	// ErrStaleOdds: the fetched market snapshot does not cover the run date
	ErrStaleOdds = errors.New("market snapshot is stale")

	ErrNotFound = errors.New("record not found")
)
