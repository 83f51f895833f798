package irt

// Config holds the tunable parameters for ability estimation.
type Config struct {
	// InitialTheta is the ability assigned to a topic with no observations.
	InitialTheta float64

	// ThetaMin and ThetaMax bound every estimate.
	ThetaMin float64
	ThetaMax float64

	// PriorMean and PriorStd parameterize the normal prior used by EAP.
	PriorMean float64
	PriorStd  float64

	// QuadraturePoints is the number of grid points spanning
	// [ThetaMin, ThetaMax] for the EAP posterior integration.
	QuadraturePoints int

	// HistoryWindow is how many recent same-topic responses participate
	// in an incremental update, in addition to the new observation.
	HistoryWindow int

	// MinAnswers is the minimum total observation count required before
	// UpdateTheta produces a changed estimate. Below it, the current
	// theta is returned unchanged so a single lucky guess or careless
	// mistake cannot swing the estimate.
	MinAnswers int
}

// DefaultConfig returns the standard estimation parameters.
func DefaultConfig() Config {
	return Config{
		InitialTheta:     0.0,
		ThetaMin:         -4.0,
		ThetaMax:         4.0,
		PriorMean:        0.0,
		PriorStd:         1.0,
		QuadraturePoints: 41,
		HistoryWindow:    4,
		MinAnswers:       2,
	}
}
