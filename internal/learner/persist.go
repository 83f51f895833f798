package learner

import (
	"github.com/adapticode/adapticode/internal/conceptgraph"
	"github.com/adapticode/adapticode/internal/irt"
	"github.com/adapticode/adapticode/internal/store"
)

// snapshotVersion is bumped when the persisted shape changes.
const snapshotVersion = 1

// ToSnapshot converts the profile into its persisted form.
func (p *Profile) ToSnapshot() store.SnapshotData {
	data := store.SnapshotData{
		Version:       snapshotVersion,
		LearnerID:     p.LearnerID,
		Theta:         make(map[string]float64, len(p.Theta)),
		ConceptStatus: make(map[string]string, len(p.ConceptStatus)),
	}
	for topic, theta := range p.Theta {
		data.Theta[topic] = theta
	}
	for concept, status := range p.ConceptStatus {
		data.ConceptStatus[concept] = string(status)
	}
	for _, o := range p.History {
		rec := store.OutcomeRecord{
			QuestionID:    o.ItemID,
			Topic:         o.Topic,
			Correct:       o.Correct,
			AnsweredAt:    o.AnsweredAt,
			TimeTakenSecs: o.TimeTakenSecs,
			PassRate:      o.PassRate,
			ThetaBefore:   o.ThetaBefore,
			ThetaAfter:    o.ThetaAfter,
			Feedback:      o.Feedback,
		}
		if o.Params != nil {
			a, b, c := o.Params.Discrimination, o.Params.Difficulty, o.Params.Guessing
			rec.Alpha, rec.Beta, rec.Guessing = &a, &b, &c
		}
		data.Outcomes = append(data.Outcomes, rec)
	}
	return data
}

// ProfileFromSnapshot rebuilds a profile from its persisted form.
// Concepts added to the curriculum since the snapshot start locked and
// then unlock if their prerequisites are already mastered; invalid
// persisted statuses are treated as locked.
func ProfileFromSnapshot(data store.SnapshotData, g *conceptgraph.Graph, initialTheta float64) *Profile {
	p := &Profile{
		LearnerID:     data.LearnerID,
		Theta:         make(map[string]float64),
		ConceptStatus: make(map[string]conceptgraph.Status),
	}

	for _, c := range g.Concepts() {
		p.Theta[c] = initialTheta
		p.ConceptStatus[c] = conceptgraph.StatusLocked
	}
	for topic, theta := range data.Theta {
		p.Theta[topic] = theta
	}
	for concept, raw := range data.ConceptStatus {
		if !g.Contains(concept) {
			continue
		}
		if status := conceptgraph.Status(raw); status.Valid() {
			p.ConceptStatus[concept] = status
		}
	}
	for _, c := range g.UnlockableConcepts(p.ConceptStatus) {
		p.ConceptStatus[c] = conceptgraph.StatusOpened
	}

	for _, rec := range data.Outcomes {
		o := Outcome{
			ItemID:        rec.QuestionID,
			Topic:         rec.Topic,
			Correct:       rec.Correct,
			AnsweredAt:    rec.AnsweredAt,
			TimeTakenSecs: rec.TimeTakenSecs,
			PassRate:      rec.PassRate,
			ThetaBefore:   rec.ThetaBefore,
			ThetaAfter:    rec.ThetaAfter,
			Feedback:      rec.Feedback,
		}
		if rec.Alpha != nil && rec.Beta != nil && rec.Guessing != nil {
			o.Params = &irt.ItemParams{
				Discrimination: *rec.Alpha,
				Difficulty:     *rec.Beta,
				Guessing:       *rec.Guessing,
			}
		}
		p.History = append(p.History, o)
	}
	return p
}
