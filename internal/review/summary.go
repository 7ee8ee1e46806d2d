package review

import (
	"time"

	"github.com/example/rote/internal/domain"
)

// Summary is a point-in-time aggregate over all cards, computed on demand.
type Summary struct {
	TotalCards int
	DueNow     int
	ByMastery  map[domain.MasteryLevel]int
	ByCategory map[string]int
}

// Summary aggregates card counts by mastery bucket and category, plus how
// many cards are due right now.
func (s *Scheduler) Summary() (Summary, error) {
	cards, err := s.cards.ListAll()
	if err != nil {
		return Summary{}, err
	}

	now := time.Now().UTC()
	summary := Summary{
		ByMastery:  make(map[domain.MasteryLevel]int),
		ByCategory: make(map[string]int),
	}
	for _, card := range cards {
		summary.TotalCards++
		if card.IsDue(now) {
			summary.DueNow++
		}
		summary.ByMastery[card.Mastery]++
		summary.ByCategory[card.Category]++
	}
	return summary, nil
}
