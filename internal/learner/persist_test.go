package learner

import (
	"testing"
	"time"

	"github.com/adapticode/adapticode/internal/conceptgraph"
	"github.com/adapticode/adapticode/internal/irt"
	"github.com/adapticode/adapticode/internal/store"
)

func TestSnapshotRoundTrip(t *testing.T) {
	g := conceptgraph.DefaultCurriculum()
	p := NewProfile("local", g, 0)
	p.Theta[conceptgraph.ConceptRecursionBasics] = 1.3
	p.ConceptStatus[conceptgraph.ConceptRecursionBasics] = conceptgraph.StatusMastered
	p.ConceptStatus[conceptgraph.ConceptBacktracking] = conceptgraph.StatusOpened

	answeredAt := time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)
	p.History = []Outcome{
		{
			ItemID: "fibonacci", Topic: conceptgraph.ConceptRecursionBasics,
			Params:     &irt.ItemParams{Discrimination: 1.2, Difficulty: -0.4, Guessing: 0.25},
			Correct:    true, AnsweredAt: answeredAt, TimeTakenSecs: 45,
			PassRate: 1.0, ThetaBefore: 0, ThetaAfter: 0.6, Feedback: "felt easy",
		},
		{
			ItemID: "legacy", Topic: conceptgraph.ConceptRecursionBasics,
			Params: nil, Correct: false, AnsweredAt: answeredAt,
		},
	}

	restored := ProfileFromSnapshot(p.ToSnapshot(), g, 0)

	if restored.LearnerID != "local" {
		t.Errorf("learner id = %q", restored.LearnerID)
	}
	if restored.Theta[conceptgraph.ConceptRecursionBasics] != 1.3 {
		t.Errorf("theta = %v, want 1.3", restored.Theta[conceptgraph.ConceptRecursionBasics])
	}
	if restored.ConceptStatus[conceptgraph.ConceptRecursionBasics] != conceptgraph.StatusMastered {
		t.Error("mastered status lost in round trip")
	}
	if restored.ConceptStatus[conceptgraph.ConceptBacktracking] != conceptgraph.StatusOpened {
		t.Error("opened status lost in round trip")
	}
	if len(restored.History) != 2 {
		t.Fatalf("history length = %d, want 2", len(restored.History))
	}

	first := restored.History[0]
	if first.Params == nil || first.Params.Difficulty != -0.4 {
		t.Errorf("item params lost: %+v", first.Params)
	}
	if !first.AnsweredAt.Equal(answeredAt) {
		t.Errorf("answered at = %v, want %v", first.AnsweredAt, answeredAt)
	}
	if first.Feedback != "felt easy" {
		t.Errorf("feedback = %q", first.Feedback)
	}
	if restored.History[1].Params != nil {
		t.Error("nil params became non-nil in round trip")
	}
}

func TestProfileFromSnapshot_NewConceptsUnlockFromMasteredPrereqs(t *testing.T) {
	g := conceptgraph.DefaultCurriculum()

	// Snapshot predates the third concept.
	data := store.SnapshotData{
		Version:   1,
		LearnerID: "local",
		Theta:     map[string]float64{conceptgraph.ConceptRecursionBasics: 1.5},
		ConceptStatus: map[string]string{
			conceptgraph.ConceptRecursionBasics: "mastered",
			conceptgraph.ConceptBacktracking:    "mastered",
		},
	}

	p := ProfileFromSnapshot(data, g, 0)
	if p.ConceptStatus[conceptgraph.ConceptDynamicProg] != conceptgraph.StatusOpened {
		t.Errorf("new concept status = %s, want opened (prereqs mastered)",
			p.ConceptStatus[conceptgraph.ConceptDynamicProg])
	}
	if p.Theta[conceptgraph.ConceptDynamicProg] != 0 {
		t.Errorf("new concept theta = %v, want initial 0", p.Theta[conceptgraph.ConceptDynamicProg])
	}
}

func TestProfileFromSnapshot_IgnoresUnknownAndInvalid(t *testing.T) {
	g := conceptgraph.DefaultCurriculum()
	data := store.SnapshotData{
		Version:   1,
		LearnerID: "local",
		ConceptStatus: map[string]string{
			"Removed Concept":                   "mastered",
			conceptgraph.ConceptRecursionBasics: "bogus-status",
		},
	}

	p := ProfileFromSnapshot(data, g, 0)
	if _, ok := p.ConceptStatus["Removed Concept"]; ok {
		t.Error("unknown concept carried into profile")
	}
	// Invalid status falls back to locked, then the root unlock rule
	// reopens it.
	if p.ConceptStatus[conceptgraph.ConceptRecursionBasics] != conceptgraph.StatusOpened {
		t.Errorf("root status = %s, want opened", p.ConceptStatus[conceptgraph.ConceptRecursionBasics])
	}
}
