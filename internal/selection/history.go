package selection

import (
	"math"
	"time"

	"github.com/adapticode/adapticode/internal/learner"
)

// itemStats summarizes a learner's past attempts at one item.
type itemStats struct {
	lastAt      time.Time
	lastCorrect bool
	wrongCount  int
}

// collectStats folds the attempt history into per-item stats.
func collectStats(history []learner.Outcome) map[string]itemStats {
	stats := make(map[string]itemStats)
	for _, o := range history {
		s := stats[o.ItemID]
		s.lastAt = o.AnsweredAt
		s.lastCorrect = o.Correct
		if !o.Correct {
			s.wrongCount++
		}
		stats[o.ItemID] = s
	}
	return stats
}

// priority scores an item for re-presentation. Unseen items get
// infinite priority so fresh material always wins; seen items age back
// in, faster when the learner got them wrong.
func (p *Policy) priority(itemID string, stats map[string]itemStats, now time.Time) float64 {
	s, seen := stats[itemID]
	if !seen {
		return math.Inf(1)
	}

	score := now.Sub(s.lastAt).Seconds()
	if !s.lastCorrect {
		score *= p.cfg.WrongRecencyMultiplier
	}
	score *= 1 + p.cfg.WrongCountWeight*float64(s.wrongCount)
	return score
}
