package irt

import (
	"math"
	"testing"
)

func testEstimator() *Estimator {
	return NewEstimator(DefaultConfig())
}

func TestEstimateEAP_EmptyReturnsCurrent(t *testing.T) {
	e := testEstimator()
	for _, current := range []float64{-2.5, 0, 1.7} {
		if got := e.EstimateEAP(nil, current); got != current {
			t.Errorf("EstimateEAP(nil, %v) = %v, want unchanged", current, got)
		}
	}
}

func TestEstimateEAP_AlwaysInRange(t *testing.T) {
	e := testEstimator()
	cfg := e.Config()

	hard := ItemParams{Discrimination: 2.0, Difficulty: 3.5, Guessing: 0.1}
	easy := ItemParams{Discrimination: 2.0, Difficulty: -3.5, Guessing: 0.1}

	// Pile up evidence in one direction and check the bound holds.
	var allCorrect, allWrong []Response
	for range 30 {
		allCorrect = append(allCorrect, Response{Params: hard, Correct: true})
		allWrong = append(allWrong, Response{Params: easy, Correct: false})
	}

	hi := e.EstimateEAP(allCorrect, 0)
	lo := e.EstimateEAP(allWrong, 0)

	if hi < cfg.ThetaMin || hi > cfg.ThetaMax {
		t.Errorf("high estimate %v outside [%v, %v]", hi, cfg.ThetaMin, cfg.ThetaMax)
	}
	if lo < cfg.ThetaMin || lo > cfg.ThetaMax {
		t.Errorf("low estimate %v outside [%v, %v]", lo, cfg.ThetaMin, cfg.ThetaMax)
	}
	if hi <= lo {
		t.Errorf("all-correct estimate (%v) not above all-wrong (%v)", hi, lo)
	}
}

func TestEstimateEAP_CorrectAnswersRaiseEstimate(t *testing.T) {
	e := testEstimator()
	item := ItemParams{Discrimination: 1.5, Difficulty: 0.5, Guessing: 0.2}

	correct := e.EstimateEAP([]Response{
		{Params: item, Correct: true},
		{Params: item, Correct: true},
	}, 0)
	wrong := e.EstimateEAP([]Response{
		{Params: item, Correct: false},
		{Params: item, Correct: false},
	}, 0)

	if correct <= 0 {
		t.Errorf("estimate after two correct = %v, want > 0", correct)
	}
	if wrong >= 0 {
		t.Errorf("estimate after two wrong = %v, want < 0", wrong)
	}
}

func TestEstimateMLE_ConvergesTowardEvidence(t *testing.T) {
	e := testEstimator()
	item := ItemParams{Discrimination: 1.2, Difficulty: 1.0, Guessing: 0.0}

	responses := []Response{
		{Params: item, Correct: true},
		{Params: item, Correct: true},
		{Params: item, Correct: true},
		{Params: item, Correct: false},
	}
	got := e.EstimateMLE(responses, 0)
	if got <= 0 {
		t.Errorf("MLE = %v, want > 0 for mostly-correct responses", got)
	}
	cfg := e.Config()
	if got < cfg.ThetaMin || got > cfg.ThetaMax {
		t.Errorf("MLE %v outside [%v, %v]", got, cfg.ThetaMin, cfg.ThetaMax)
	}
}

func TestEstimateMLE_EmptyReturnsInitial(t *testing.T) {
	e := testEstimator()
	if got := e.EstimateMLE(nil, 0.8); got != 0.8 {
		t.Errorf("EstimateMLE(nil, 0.8) = %v, want 0.8", got)
	}
}

func TestUpdateTheta_BelowMinAnswersUnchanged(t *testing.T) {
	e := testEstimator()
	item := ItemParams{Discrimination: 2.0, Difficulty: 0.0, Guessing: 0.0}

	// No history: one observation total, below MinAnswers=2.
	got := e.UpdateTheta(0.4, item, true, nil)
	if got != 0.4 {
		t.Errorf("UpdateTheta with single observation = %v, want 0.4 unchanged", got)
	}
}

func TestUpdateTheta_ClampsOutOfRangeCurrent(t *testing.T) {
	e := testEstimator()
	item := standardItem()

	got := e.UpdateTheta(9.0, item, true, nil)
	if got != e.Config().ThetaMax {
		t.Errorf("UpdateTheta = %v, want clamped to %v", got, e.Config().ThetaMax)
	}
}

func TestUpdateTheta_TwoCorrectRaiseTheta(t *testing.T) {
	e := testEstimator()
	// High-information item near the current estimate.
	item := ItemParams{Discrimination: 2.0, Difficulty: 0.0, Guessing: 0.1}

	history := []Response{{Params: item, Correct: true}}
	before := 0.0
	after := e.UpdateTheta(before, item, true, history)

	if after <= before {
		t.Errorf("theta after two correct answers = %v, want > %v", after, before)
	}
}

func TestUpdateTheta_WindowLimitsHistory(t *testing.T) {
	cfg := DefaultConfig()
	cfg.HistoryWindow = 2
	e := NewEstimator(cfg)
	item := ItemParams{Discrimination: 1.5, Difficulty: 0.0, Guessing: 0.0}

	// Old wrong answers outside the window must not drag the estimate.
	var history []Response
	for range 10 {
		history = append(history, Response{Params: item, Correct: false})
	}
	history = append(history,
		Response{Params: item, Correct: true},
		Response{Params: item, Correct: true},
	)

	got := e.UpdateTheta(0, item, true, history)
	if got <= 0 {
		t.Errorf("windowed update = %v, want > 0 (old misses outside window)", got)
	}
}

func TestEstimateEAP_GridRespectsConfig(t *testing.T) {
	cfg := DefaultConfig()
	cfg.ThetaMin = -2
	cfg.ThetaMax = 2
	cfg.QuadraturePoints = 11
	e := NewEstimator(cfg)

	if len(e.grid) != 11 {
		t.Fatalf("grid size = %d, want 11", len(e.grid))
	}
	if e.grid[0] != -2 || e.grid[10] != 2 {
		t.Errorf("grid endpoints = %v, %v, want -2, 2", e.grid[0], e.grid[10])
	}
	if math.Abs(e.grid[1]-e.grid[0]-0.4) > 1e-12 {
		t.Errorf("grid step = %v, want 0.4", e.grid[1]-e.grid[0])
	}
}
