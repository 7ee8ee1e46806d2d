package domain

import (
	"time"

	"github.com/google/uuid"
)

// ReviewRecord is one entry in a card's review history: the rating given and
// the schedule that resulted from it. Records are append-only and exist for
// reporting; replaying them is never needed to rebuild card state.
type ReviewRecord struct {
	ID           uuid.UUID    `json:"id"`
	ItemID       string       `json:"item_id"`
	Rating       Rating       `json:"rating"`
	EaseFactor   float64      `json:"ease_factor"`
	IntervalDays int          `json:"interval_days"`
	Mastery      MasteryLevel `json:"mastery"`
	ReviewedAt   time.Time    `json:"reviewed_at"`
}

// NewReviewRecord captures the outcome of a just-applied review.
func NewReviewRecord(card ReviewCard, rating Rating, reviewedAt time.Time) ReviewRecord {
	return ReviewRecord{
		ID:           uuid.New(),
		ItemID:       card.ItemID,
		Rating:       rating,
		EaseFactor:   card.EaseFactor,
		IntervalDays: card.IntervalDays,
		Mastery:      card.Mastery,
		ReviewedAt:   reviewedAt,
	}
}
