package irt

import (
	"math"
	"testing"
)

func standardItem() ItemParams {
	return ItemParams{Discrimination: 1.0, Difficulty: 0.0, Guessing: 0.25}
}

func TestProbabilityCorrect_KnownValues(t *testing.T) {
	tests := []struct {
		name  string
		theta float64
		want  float64
	}{
		{"at difficulty", 0.0, 0.625}, // c + (1-c)/2 = 0.25 + 0.375
		{"far below", -10.0, 0.25},
		{"far above", 10.0, 1.0},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := ProbabilityCorrect(tt.theta, standardItem())
			if math.Abs(got-tt.want) > 1e-3 {
				t.Errorf("ProbabilityCorrect(%v) = %v, want %v", tt.theta, got, tt.want)
			}
		})
	}
}

func TestProbabilityCorrect_MonotonicInTheta(t *testing.T) {
	item := standardItem()
	prev := math.Inf(-1)
	for theta := -6.0; theta <= 6.0; theta += 0.25 {
		p := ProbabilityCorrect(theta, item)
		if p < prev {
			t.Fatalf("probability decreased at theta=%v: %v < %v", theta, p, prev)
		}
		prev = p
	}
}

func TestProbabilityCorrect_BoundedByGuessingAndOne(t *testing.T) {
	items := []ItemParams{
		{Discrimination: 0.5, Difficulty: -2.0, Guessing: 0.0},
		{Discrimination: 1.0, Difficulty: 0.0, Guessing: 0.25},
		{Discrimination: 2.5, Difficulty: 3.0, Guessing: 0.5},
	}
	for _, item := range items {
		for theta := -8.0; theta <= 8.0; theta += 0.5 {
			p := ProbabilityCorrect(theta, item)
			if p < item.Guessing-1e-9 || p > 1.0 {
				t.Errorf("item %+v theta %v: p=%v outside [c, 1]", item, theta, p)
			}
		}
	}
}

func TestProbabilityCorrect_ExtremeExponent(t *testing.T) {
	// a·(theta-b) pushed past the clamp must saturate, not overflow.
	item := ItemParams{Discrimination: 100, Difficulty: 0, Guessing: 0.2}
	if got := ProbabilityCorrect(-100, item); got != 0.2 {
		t.Errorf("far-below probability = %v, want guessing floor 0.2", got)
	}
	if got := ProbabilityCorrect(100, item); got != 1.0 {
		t.Errorf("far-above probability = %v, want 1.0", got)
	}
}

func TestInformation_ZeroAtExtremeProbabilities(t *testing.T) {
	item := standardItem()
	for _, theta := range []float64{-50, 50, -1000, 1000} {
		p := ProbabilityCorrect(theta, item)
		if p > 0.001 && p < 0.999 {
			continue
		}
		if info := Information(theta, item); info != 0 {
			t.Errorf("Information(%v) = %v, want 0 (p=%v)", theta, info, p)
		}
	}
}

func TestInformation_NonNegativeAndPeaksNearDifficulty(t *testing.T) {
	item := ItemParams{Discrimination: 1.5, Difficulty: 1.0, Guessing: 0.2}

	nearInfo := Information(item.Difficulty+0.3, item)
	farInfo := Information(item.Difficulty+3.5, item)

	if nearInfo <= 0 {
		t.Fatalf("information near difficulty = %v, want > 0", nearInfo)
	}
	if farInfo >= nearInfo {
		t.Errorf("information far from difficulty (%v) >= near (%v)", farInfo, nearInfo)
	}
}

func TestLogLikelihood_SafeNearCertainty(t *testing.T) {
	// An incorrect answer where p ~ 1 must not produce -Inf.
	item := ItemParams{Discrimination: 3, Difficulty: -5, Guessing: 0}
	ll := LogLikelihood(4.0, []Response{{Params: item, Correct: false}})
	if math.IsInf(ll, 0) || math.IsNaN(ll) {
		t.Fatalf("log-likelihood not finite: %v", ll)
	}
}

func TestLogLikelihood_SumsOverResponses(t *testing.T) {
	item := standardItem()
	one := LogLikelihood(0, []Response{{Params: item, Correct: true}})
	two := LogLikelihood(0, []Response{
		{Params: item, Correct: true},
		{Params: item, Correct: true},
	})
	if math.Abs(two-2*one) > 1e-12 {
		t.Errorf("two responses = %v, want %v", two, 2*one)
	}
}
