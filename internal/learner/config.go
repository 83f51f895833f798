package learner

// Config holds the mastery policy knobs.
type Config struct {
	// MasteryThreshold is the theta at which an opened concept is
	// promoted to mastered.
	MasteryThreshold float64
}

// DefaultConfig returns the default mastery policy.
func DefaultConfig() Config {
	return Config{
		MasteryThreshold: 1.2,
	}
}
