// Package learner tracks a single learner: per-topic ability estimates,
// concept mastery status, and the full answer history that drives both.
package learner

import (
	"time"

	"github.com/adapticode/adapticode/internal/conceptgraph"
	"github.com/adapticode/adapticode/internal/irt"
)

// Outcome is one completed attempt at an item, recorded after grading.
// Params is nil when the item's parameters were unknown at answer time;
// such outcomes still count for selection history but are skipped during
// ability estimation.
type Outcome struct {
	ItemID        string
	Topic         string
	Params        *irt.ItemParams
	Correct       bool
	AnsweredAt    time.Time
	TimeTakenSecs float64
	PassRate      float64
	ThetaBefore   float64
	ThetaAfter    float64
	Feedback      string
}

// Profile is the persistent learner model: one theta per topic, one
// lifecycle status per concept, and the append-only attempt history.
type Profile struct {
	LearnerID     string
	Theta         map[string]float64
	ConceptStatus map[string]conceptgraph.Status
	History       []Outcome
}

// NewProfile creates a fresh profile for the given curriculum: every
// concept starts locked except the roots (no prerequisites), which open
// immediately, and every theta starts at initialTheta.
func NewProfile(learnerID string, g *conceptgraph.Graph, initialTheta float64) *Profile {
	p := &Profile{
		LearnerID:     learnerID,
		Theta:         make(map[string]float64),
		ConceptStatus: make(map[string]conceptgraph.Status),
	}
	for _, c := range g.Concepts() {
		p.Theta[c] = initialTheta
		p.ConceptStatus[c] = conceptgraph.StatusLocked
	}
	for _, c := range g.UnlockableConcepts(p.ConceptStatus) {
		p.ConceptStatus[c] = conceptgraph.StatusOpened
	}
	return p
}

// TopicHistory returns the outcomes for one topic, oldest first.
func (p *Profile) TopicHistory(topic string) []Outcome {
	var out []Outcome
	for _, o := range p.History {
		if o.Topic == topic {
			out = append(out, o)
		}
	}
	return out
}

// RecentPerformance returns the correctness of the learner's last n
// attempts in the topic, oldest first.
func (p *Profile) RecentPerformance(topic string, n int) []bool {
	hist := p.TopicHistory(topic)
	if len(hist) > n {
		hist = hist[len(hist)-n:]
	}
	out := make([]bool, len(hist))
	for i, o := range hist {
		out[i] = o.Correct
	}
	return out
}
