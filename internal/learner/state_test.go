package learner

import (
	"testing"
	"time"

	"github.com/adapticode/adapticode/internal/conceptgraph"
	"github.com/adapticode/adapticode/internal/irt"
)

func newTestState(t *testing.T) *State {
	t.Helper()
	g := conceptgraph.DefaultCurriculum()
	est := irt.NewEstimator(irt.DefaultConfig())
	p := NewProfile("test-learner", g, est.Config().InitialTheta)

	base := time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)
	var tick int
	clock := func() time.Time {
		tick++
		return base.Add(time.Duration(tick) * time.Minute)
	}
	return NewState(g, est, DefaultConfig(), p, WithClock(clock))
}

func easyItem() irt.ItemParams {
	return irt.ItemParams{Discrimination: 1.5, Difficulty: -1.0, Guessing: 0.25}
}

func TestNewProfile_OpensOnlyRoots(t *testing.T) {
	g := conceptgraph.DefaultCurriculum()
	p := NewProfile("u", g, 0)

	if p.ConceptStatus[conceptgraph.ConceptRecursionBasics] != conceptgraph.StatusOpened {
		t.Error("root concept should start opened")
	}
	if p.ConceptStatus[conceptgraph.ConceptBacktracking] != conceptgraph.StatusLocked {
		t.Error("dependent concept should start locked")
	}
	for _, c := range g.Concepts() {
		if p.Theta[c] != 0 {
			t.Errorf("theta[%s] = %v, want initial 0", c, p.Theta[c])
		}
	}
}

func TestRecordAnswer_FirstAnswerKeepsTheta(t *testing.T) {
	s := newTestState(t)
	topic := conceptgraph.ConceptRecursionBasics

	out, _ := s.RecordAnswer(Answer{
		ItemID: "q1", Topic: topic, Params: easyItem(), Correct: true,
	})
	if out.ThetaAfter != out.ThetaBefore {
		t.Errorf("single answer moved theta %v → %v, want damped (unchanged)",
			out.ThetaBefore, out.ThetaAfter)
	}
	if len(s.Profile().History) != 1 {
		t.Fatalf("history length = %d, want 1", len(s.Profile().History))
	}
}

func TestRecordAnswer_TwoCorrectRaiseTheta(t *testing.T) {
	s := newTestState(t)
	topic := conceptgraph.ConceptRecursionBasics

	s.RecordAnswer(Answer{ItemID: "q1", Topic: topic, Params: easyItem(), Correct: true})
	out, _ := s.RecordAnswer(Answer{ItemID: "q2", Topic: topic, Params: easyItem(), Correct: true})

	if out.ThetaAfter <= out.ThetaBefore {
		t.Errorf("two correct answers: theta %v → %v, want increase",
			out.ThetaBefore, out.ThetaAfter)
	}
	if s.Theta(topic) != out.ThetaAfter {
		t.Errorf("Theta(%s) = %v, want %v", topic, s.Theta(topic), out.ThetaAfter)
	}
}

func TestRecordAnswer_SkipsOutcomesWithoutParams(t *testing.T) {
	s := newTestState(t)
	topic := conceptgraph.ConceptRecursionBasics

	// A historical outcome with no item parameters must not poison
	// estimation.
	s.Profile().History = append(s.Profile().History, Outcome{
		ItemID: "legacy", Topic: topic, Params: nil, Correct: false,
	})

	s.RecordAnswer(Answer{ItemID: "q1", Topic: topic, Params: easyItem(), Correct: true})
	out, _ := s.RecordAnswer(Answer{ItemID: "q2", Topic: topic, Params: easyItem(), Correct: true})
	if out.ThetaAfter <= 0 {
		t.Errorf("theta = %v after two correct answers, want positive", out.ThetaAfter)
	}
}

func TestRecordAnswer_WindowCutBeforeParamFilter(t *testing.T) {
	s := newTestState(t)
	topic := conceptgraph.ConceptRecursionBasics

	// One old parameterized outcome pushed out of the window by four
	// newer unparameterized ones. Only the window's single usable
	// observation plus the fresh answer may reach the estimator, so
	// damping still applies and theta stays put.
	params := easyItem()
	s.Profile().History = append(s.Profile().History, Outcome{
		ItemID: "ancient", Topic: topic, Params: &params, Correct: true,
	})
	for i := 0; i < irt.DefaultConfig().HistoryWindow; i++ {
		s.Profile().History = append(s.Profile().History, Outcome{
			ItemID: "legacy", Topic: topic, Params: nil, Correct: false,
		})
	}

	out, _ := s.RecordAnswer(Answer{ItemID: "q1", Topic: topic, Params: easyItem(), Correct: true})
	if out.ThetaAfter != out.ThetaBefore {
		t.Errorf("theta moved %v -> %v, want damped (unchanged): observation outside the window reached the estimator",
			out.ThetaBefore, out.ThetaAfter)
	}
}

func TestRecordAnswer_MasteryPromotesAndUnlocks(t *testing.T) {
	s := newTestState(t)
	topic := conceptgraph.ConceptRecursionBasics

	var tr *Transition
	for i := 0; i < 10 && tr == nil; i++ {
		_, tr = s.RecordAnswer(Answer{
			ItemID: "q", Topic: topic,
			Params:  irt.ItemParams{Discrimination: 2.0, Difficulty: 1.5, Guessing: 0.1},
			Correct: true,
		})
	}
	if tr == nil {
		t.Fatalf("no mastery transition after repeated correct answers, theta = %v", s.Theta(topic))
	}
	if tr.Concept != topic || tr.To != conceptgraph.StatusMastered {
		t.Errorf("transition = %+v, want %s mastered", tr, topic)
	}
	if len(tr.Unlocked) != 1 || tr.Unlocked[0] != conceptgraph.ConceptBacktracking {
		t.Errorf("unlocked = %v, want [%s]", tr.Unlocked, conceptgraph.ConceptBacktracking)
	}
	if s.Status(conceptgraph.ConceptBacktracking) != conceptgraph.StatusOpened {
		t.Error("dependent not opened after mastery")
	}
	if s.Status(conceptgraph.ConceptDynamicProg) != conceptgraph.StatusLocked {
		t.Error("two-level dependent should stay locked")
	}
}

func TestRecordAnswer_StatusNeverRegresses(t *testing.T) {
	s := newTestState(t)
	topic := conceptgraph.ConceptRecursionBasics
	s.Profile().ConceptStatus[topic] = conceptgraph.StatusMastered

	hard := irt.ItemParams{Discrimination: 2.0, Difficulty: 0.0, Guessing: 0.1}
	for i := 0; i < 6; i++ {
		s.RecordAnswer(Answer{ItemID: "q", Topic: topic, Params: hard, Correct: false})
	}
	if s.Status(topic) != conceptgraph.StatusMastered {
		t.Errorf("status = %s after wrong answers, want mastered retained", s.Status(topic))
	}
}

func TestNextConcept_FollowsCurriculum(t *testing.T) {
	s := newTestState(t)

	c, ok := s.NextConcept()
	if !ok || c != conceptgraph.ConceptRecursionBasics {
		t.Errorf("NextConcept = (%q, %v), want root concept", c, ok)
	}

	s.Profile().ConceptStatus[conceptgraph.ConceptRecursionBasics] = conceptgraph.StatusMastered
	s.Profile().ConceptStatus[conceptgraph.ConceptBacktracking] = conceptgraph.StatusOpened
	c, ok = s.NextConcept()
	if !ok || c != conceptgraph.ConceptBacktracking {
		t.Errorf("NextConcept = (%q, %v), want opened concept", c, ok)
	}
}

func TestAttachFeedback(t *testing.T) {
	s := newTestState(t)
	topic := conceptgraph.ConceptRecursionBasics
	s.RecordAnswer(Answer{ItemID: "q1", Topic: topic, Params: easyItem(), Correct: true})

	if err := s.AttachFeedback("q1", "too easy"); err != nil {
		t.Fatalf("AttachFeedback: %v", err)
	}
	if got := s.Profile().History[0].Feedback; got != "too easy" {
		t.Errorf("feedback = %q, want %q", got, "too easy")
	}
	if err := s.AttachFeedback("never-seen", "x"); err == nil {
		t.Error("expected error for unattempted item")
	}
}

func TestResetTopic(t *testing.T) {
	s := newTestState(t)
	topic := conceptgraph.ConceptRecursionBasics
	other := conceptgraph.ConceptBacktracking

	s.RecordAnswer(Answer{ItemID: "q1", Topic: topic, Params: easyItem(), Correct: true})
	s.RecordAnswer(Answer{ItemID: "q2", Topic: topic, Params: easyItem(), Correct: true})
	s.RecordAnswer(Answer{ItemID: "b1", Topic: other, Params: easyItem(), Correct: true})

	s.ResetTopic(topic)
	if s.Theta(topic) != 0 {
		t.Errorf("theta after reset = %v, want initial 0", s.Theta(topic))
	}
	if got := len(s.Profile().TopicHistory(topic)); got != 0 {
		t.Errorf("topic history after reset = %d entries, want 0", got)
	}
	if got := len(s.Profile().TopicHistory(other)); got != 1 {
		t.Errorf("other topic history = %d entries, want 1 untouched", got)
	}
}

func TestProgress_SummarizesPerConcept(t *testing.T) {
	s := newTestState(t)
	topic := conceptgraph.ConceptRecursionBasics
	s.RecordAnswer(Answer{ItemID: "q1", Topic: topic, Params: easyItem(), Correct: true})
	s.RecordAnswer(Answer{ItemID: "q2", Topic: topic, Params: easyItem(), Correct: false})

	rows := s.Progress()
	if len(rows) != 3 {
		t.Fatalf("progress rows = %d, want 3", len(rows))
	}
	first := rows[0]
	if first.Concept != topic || first.Attempts != 2 || first.Correct != 1 {
		t.Errorf("first row = %+v, want 2 attempts 1 correct for %s", first, topic)
	}
	if rows[1].Level != 1 || rows[2].Level != 2 {
		t.Errorf("levels = %d,%d, want 1,2", rows[1].Level, rows[2].Level)
	}
}
