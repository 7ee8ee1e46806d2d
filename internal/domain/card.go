package domain

import "time"

// DefaultEaseFactor is the ease assigned to a card that has never been
// reviewed. MinEaseFactor is the floor ease is clamped to after every
// review; no ceiling exists.
const (
	DefaultEaseFactor = 2.5
	MinEaseFactor     = 1.3
)

// ReviewCard is the per-item scheduling record. The scheduler knows nothing
// about the item's content; ItemID is an opaque identifier owned by the
// caller, and Category and Difficulty are carried through for reporting only.
type ReviewCard struct {
	ItemID         string        `json:"item_id"`
	Category       string        `json:"category"`
	Difficulty     DifficultyTag `json:"difficulty"`
	EaseFactor     float64       `json:"ease_factor"`
	IntervalDays   int           `json:"interval_days"`
	Repetitions    int           `json:"repetitions"`
	DueAt          time.Time     `json:"due_at"`
	TotalReviews   int           `json:"total_reviews"`
	Lapses         int           `json:"lapses"`
	Mastery        MasteryLevel  `json:"mastery"`
	LastReviewedAt *time.Time    `json:"last_reviewed_at"` // nil until first review
	CreatedAt      time.Time     `json:"created_at"`
}

// NewReviewCard creates the default schedule state for an item that has never
// been reviewed: due immediately, ease 2.5, no interval.
func NewReviewCard(itemID, category string, difficulty DifficultyTag, now time.Time) ReviewCard {
	return ReviewCard{
		ItemID:     itemID,
		Category:   category,
		Difficulty: difficulty,
		EaseFactor: DefaultEaseFactor,
		DueAt:      now,
		Mastery:    MasteryNew,
		CreatedAt:  now,
	}
}

// Validate reports whether the card is structurally sound. It is used to
// detect corrupt stored records, so it checks shape rather than scheduling
// invariants: a card that fails here is discarded and resynthesized.
func (c ReviewCard) Validate() error {
	if c.ItemID == "" {
		return ErrEmptyItemID
	}
	if c.EaseFactor <= 0 {
		return ErrInvalidEaseFactor
	}
	if c.IntervalDays < 0 || c.Repetitions < 0 || c.TotalReviews < 0 || c.Lapses < 0 {
		return ErrNegativeCounter
	}
	return nil
}

// IsDue reports whether the card should be surfaced as of the given moment.
func (c ReviewCard) IsDue(asOf time.Time) bool {
	return !c.DueAt.After(asOf)
}
