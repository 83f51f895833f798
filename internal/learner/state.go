package learner

import (
	"fmt"
	"time"

	"github.com/adapticode/adapticode/internal/conceptgraph"
	"github.com/adapticode/adapticode/internal/irt"
)

// Answer is the graded result of one attempt, ready to be recorded.
type Answer struct {
	ItemID        string
	Topic         string
	Params        irt.ItemParams
	Correct       bool
	TimeTakenSecs float64
	PassRate      float64
}

// Transition describes a concept status change triggered by an answer:
// the promoted concept and any dependents it unlocked.
type Transition struct {
	Concept  string
	From, To conceptgraph.Status
	Unlocked []string
}

// State is the mutable learner model. It owns a Profile and applies
// answers to it: theta re-estimation, the mastery state machine, and
// one-level dependent unlocks. Not safe for concurrent use.
type State struct {
	graph     *conceptgraph.Graph
	estimator *irt.Estimator
	cfg       Config
	profile   *Profile
	now       func() time.Time
}

// Option configures a State.
type Option func(*State)

// WithClock overrides the time source. Tests use this for
// deterministic timestamps.
func WithClock(now func() time.Time) Option {
	return func(s *State) { s.now = now }
}

// NewState wraps an existing profile. The profile may come from
// NewProfile or from a persisted snapshot.
func NewState(g *conceptgraph.Graph, est *irt.Estimator, cfg Config, p *Profile, opts ...Option) *State {
	s := &State{
		graph:     g,
		estimator: est,
		cfg:       cfg,
		profile:   p,
		now:       time.Now,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Profile returns the underlying profile for persistence and display.
func (s *State) Profile() *Profile {
	return s.profile
}

// Graph returns the curriculum graph the state operates on.
func (s *State) Graph() *conceptgraph.Graph {
	return s.graph
}

// Theta returns the learner's current ability estimate for a topic,
// falling back to the configured initial theta for unseen topics.
func (s *State) Theta(topic string) float64 {
	if t, ok := s.profile.Theta[topic]; ok {
		return t
	}
	return s.estimator.Config().InitialTheta
}

// Status returns the lifecycle status of a concept, defaulting to
// locked for unknown concepts.
func (s *State) Status(concept string) conceptgraph.Status {
	if st, ok := s.profile.ConceptStatus[concept]; ok {
		return st
	}
	return conceptgraph.StatusLocked
}

// RecordAnswer applies one graded attempt: re-estimates the topic theta
// over the recent same-topic window, appends the outcome to history,
// and runs the mastery check. The returned Transition is non-nil only
// when the answer promoted the topic to mastered.
func (s *State) RecordAnswer(ans Answer) (Outcome, *Transition) {
	thetaBefore := s.Theta(ans.Topic)

	// The most recent same-topic responses. The window is cut over the
	// raw history; entries with missing parameters are skipped inside
	// it, not replaced by older observations.
	history := s.profile.TopicHistory(ans.Topic)
	if w := s.estimator.Config().HistoryWindow; len(history) > w {
		history = history[len(history)-w:]
	}
	var recent []irt.Response
	for _, o := range history {
		if o.Params == nil {
			continue
		}
		recent = append(recent, irt.Response{Params: *o.Params, Correct: o.Correct})
	}

	thetaAfter := s.estimator.UpdateTheta(thetaBefore, ans.Params, ans.Correct, recent)
	s.profile.Theta[ans.Topic] = thetaAfter

	params := ans.Params
	outcome := Outcome{
		ItemID:        ans.ItemID,
		Topic:         ans.Topic,
		Params:        &params,
		Correct:       ans.Correct,
		AnsweredAt:    s.now(),
		TimeTakenSecs: ans.TimeTakenSecs,
		PassRate:      ans.PassRate,
		ThetaBefore:   thetaBefore,
		ThetaAfter:    thetaAfter,
	}
	s.profile.History = append(s.profile.History, outcome)

	return outcome, s.checkMastery(ans.Topic, thetaAfter)
}

// checkMastery promotes an opened concept whose theta reached the
// threshold and opens any dependents whose prerequisites are now all
// mastered. Locked and already-mastered concepts are left alone; the
// lifecycle only moves forward.
func (s *State) checkMastery(concept string, theta float64) *Transition {
	current := s.Status(concept)
	if current != conceptgraph.StatusOpened || theta < s.cfg.MasteryThreshold {
		return nil
	}
	if !current.CanAdvanceTo(conceptgraph.StatusMastered) {
		return nil
	}
	s.profile.ConceptStatus[concept] = conceptgraph.StatusMastered

	tr := &Transition{
		Concept: concept,
		From:    current,
		To:      conceptgraph.StatusMastered,
	}
	for _, dep := range s.graph.Dependents(concept) {
		if s.graph.ShouldUnlock(dep, s.profile.ConceptStatus) {
			s.profile.ConceptStatus[dep] = conceptgraph.StatusOpened
			tr.Unlocked = append(tr.Unlocked, dep)
		}
	}
	return tr
}

// AttachFeedback records subjective feedback on the learner's most
// recent attempt at the item.
func (s *State) AttachFeedback(itemID, feedback string) error {
	for i := len(s.profile.History) - 1; i >= 0; i-- {
		if s.profile.History[i].ItemID == itemID {
			s.profile.History[i].Feedback = feedback
			return nil
		}
	}
	return fmt.Errorf("no recorded attempt for item %q", itemID)
}

// NextConcept returns the concept the learner should work on next.
func (s *State) NextConcept() (string, bool) {
	return s.graph.NextConceptToLearn(s.profile.ConceptStatus)
}

// ResetTopic restores one topic to its initial theta and drops its
// history. Concept status is untouched; the lifecycle never regresses.
func (s *State) ResetTopic(topic string) {
	s.profile.Theta[topic] = s.estimator.Config().InitialTheta
	kept := s.profile.History[:0]
	for _, o := range s.profile.History {
		if o.Topic != topic {
			kept = append(kept, o)
		}
	}
	s.profile.History = kept
}

// Reset replaces the profile with a fresh one for the same learner.
func (s *State) Reset() {
	s.profile = NewProfile(s.profile.LearnerID, s.graph, s.estimator.Config().InitialTheta)
}

// ConceptProgress is one row of the progress report.
type ConceptProgress struct {
	Concept  string
	Level    int
	Status   conceptgraph.Status
	Theta    float64
	Attempts int
	Correct  int
}

// Progress returns a per-concept summary in canonical curriculum order.
func (s *State) Progress() []ConceptProgress {
	out := make([]ConceptProgress, 0, len(s.graph.Concepts()))
	for _, c := range s.graph.Concepts() {
		row := ConceptProgress{
			Concept: c,
			Level:   s.graph.Level(c),
			Status:  s.Status(c),
			Theta:   s.Theta(c),
		}
		for _, o := range s.profile.TopicHistory(c) {
			row.Attempts++
			if o.Correct {
				row.Correct++
			}
		}
		out = append(out, row)
	}
	return out
}
