// Package feedback combines the objective grading signal with the
// learner's self-reported experience into a single assessment.
package feedback

import "math"

// Config holds the score combination weights.
type Config struct {
	// ObjectiveWeight and SubjectiveWeight blend the two signals.
	// They should sum to 1.
	ObjectiveWeight  float64
	SubjectiveWeight float64

	// PassRateWeight and TimeWeight blend the objective sub-scores.
	PassRateWeight float64
	TimeWeight     float64

	// TargetTimeSecs is the solve time that earns a full time score.
	TargetTimeSecs float64
}

// DefaultConfig returns the default feedback weights.
func DefaultConfig() Config {
	return Config{
		ObjectiveWeight:  0.7,
		SubjectiveWeight: 0.3,
		PassRateWeight:   0.8,
		TimeWeight:       0.2,
		TargetTimeSecs:   300,
	}
}

// Assessment is the combined view of one attempt.
type Assessment struct {
	ObjectiveScore  float64
	SubjectiveScore float64 // -1 when the learner gave no rating
	Combined        float64
	Recommendation  string
}

// Evaluator scores attempts.
type Evaluator struct {
	cfg Config
}

// New creates an Evaluator.
func New(cfg Config) *Evaluator {
	return &Evaluator{cfg: cfg}
}

// Assess combines the grading outcome with an optional self-reported
// difficulty rating (1 = very easy, 5 = very hard; 0 = not given).
func (e *Evaluator) Assess(passRate, timeTakenSecs float64, difficultyRating int) Assessment {
	objective := e.objective(passRate, timeTakenSecs)

	a := Assessment{
		ObjectiveScore:  objective,
		SubjectiveScore: -1,
		Combined:        objective,
	}
	if difficultyRating >= 1 && difficultyRating <= 5 {
		// A problem that felt easy signals more headroom than one that
		// felt like a struggle, even at the same pass rate.
		a.SubjectiveScore = 1 - float64(difficultyRating-1)/4
		a.Combined = e.cfg.ObjectiveWeight*objective + e.cfg.SubjectiveWeight*a.SubjectiveScore
	}
	a.Recommendation = recommend(a.Combined)
	return a
}

// objective blends the pass rate with a time score that decays once
// the attempt runs past the target time.
func (e *Evaluator) objective(passRate, timeTakenSecs float64) float64 {
	timeScore := 1.0
	if timeTakenSecs > e.cfg.TargetTimeSecs && timeTakenSecs > 0 {
		timeScore = e.cfg.TargetTimeSecs / timeTakenSecs
	}
	score := e.cfg.PassRateWeight*passRate + e.cfg.TimeWeight*timeScore
	return math.Max(0, math.Min(1, score))
}

func recommend(combined float64) string {
	switch {
	case combined < 0.4:
		return "Revisit the fundamentals of this topic before the next attempt."
	case combined < 0.75:
		return "Keep practicing at this level to build consistency."
	default:
		return "You're ready for harder problems in this topic."
	}
}
