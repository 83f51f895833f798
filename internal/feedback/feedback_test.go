package feedback

import (
	"math"
	"strings"
	"testing"
)

func TestAssess_ObjectiveOnly(t *testing.T) {
	e := New(DefaultConfig())

	a := e.Assess(1.0, 120, 0)
	if a.SubjectiveScore != -1 {
		t.Errorf("SubjectiveScore = %v, want -1 without a rating", a.SubjectiveScore)
	}
	if a.Combined != a.ObjectiveScore {
		t.Errorf("Combined = %v, want objective %v", a.Combined, a.ObjectiveScore)
	}
	if a.ObjectiveScore != 1.0 {
		t.Errorf("ObjectiveScore = %v, want 1.0 for full pass under target time", a.ObjectiveScore)
	}
}

func TestAssess_CombinesSubjective(t *testing.T) {
	e := New(DefaultConfig())

	a := e.Assess(1.0, 120, 5) // perfect solve that felt very hard
	if a.SubjectiveScore != 0 {
		t.Errorf("SubjectiveScore = %v, want 0 for rating 5", a.SubjectiveScore)
	}
	if want := 0.7 * 1.0; math.Abs(a.Combined-want) > 1e-9 {
		t.Errorf("Combined = %v, want %v", a.Combined, want)
	}

	easy := e.Assess(1.0, 120, 1)
	if easy.SubjectiveScore != 1 {
		t.Errorf("SubjectiveScore = %v, want 1 for rating 1", easy.SubjectiveScore)
	}
	if easy.Combined <= a.Combined {
		t.Error("an attempt that felt easy should score above one that felt hard")
	}
}

func TestAssess_SlowSolveLowersScore(t *testing.T) {
	e := New(DefaultConfig())

	fast := e.Assess(1.0, 100, 0)
	slow := e.Assess(1.0, 1200, 0)
	if slow.ObjectiveScore >= fast.ObjectiveScore {
		t.Errorf("slow solve scored %v, fast %v; want slow lower", slow.ObjectiveScore, fast.ObjectiveScore)
	}
	// Pass rate still dominates: a slow perfect solve beats a fast
	// failing one.
	failing := e.Assess(0.2, 100, 0)
	if slow.ObjectiveScore <= failing.ObjectiveScore {
		t.Error("slow perfect solve should beat fast failing solve")
	}
}

func TestAssess_Recommendations(t *testing.T) {
	e := New(DefaultConfig())

	tests := []struct {
		passRate float64
		rating   int
		contains string
	}{
		{0.0, 0, "fundamentals"},
		{0.6, 0, "practicing"},
		{1.0, 1, "harder"},
	}
	for _, tt := range tests {
		a := e.Assess(tt.passRate, 60, tt.rating)
		if a.Recommendation == "" {
			t.Fatalf("empty recommendation for passRate %v", tt.passRate)
		}
		if !strings.Contains(a.Recommendation, tt.contains) {
			t.Errorf("Assess(%v, rating %d) recommendation = %q, want it to mention %q",
				tt.passRate, tt.rating, a.Recommendation, tt.contains)
		}
	}
}
