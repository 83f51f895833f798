package selection

import "time"

// Config holds the selection policy knobs.
type Config struct {
	// ShortlistSize is how many items survive the information filter.
	ShortlistSize int

	// FinalCandidates is how many items are offered to the ranker.
	FinalCandidates int

	// WrongRecencyMultiplier boosts an item's priority when the most
	// recent attempt at it was wrong.
	WrongRecencyMultiplier float64

	// WrongCountWeight scales the per-miss priority boost.
	WrongCountWeight float64

	// RecentPerformanceWindow is how many recent answers are summarized
	// for the ranker.
	RecentPerformanceWindow int

	// RankTimeout bounds the ranking call.
	RankTimeout time.Duration
}

// DefaultConfig returns the default selection policy.
func DefaultConfig() Config {
	return Config{
		ShortlistSize:           10,
		FinalCandidates:         3,
		WrongRecencyMultiplier:  2.0,
		WrongCountWeight:        0.1,
		RecentPerformanceWindow: 5,
		RankTimeout:             30 * time.Second,
	}
}
