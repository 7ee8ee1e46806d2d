// Package sm2 implements the review-scheduling state machine, an SM-2
// variant operating on the triple (repetitions, interval, ease factor).
//
// Apply is a pure function: given the same card, rating, params and instant
// it always produces the same updated card, which makes previewing an
// outcome identical to computing it for real.
package sm2

import (
	"fmt"
	"math"
	"time"

	"github.com/example/rote/internal/domain"
)

// Apply runs one review transition and returns the updated card. The input
// card is not mutated, nothing is persisted, and now is the instant the
// review happened.
func Apply(p Params, card domain.ReviewCard, rating domain.Rating, now time.Time) (domain.ReviewCard, error) {
	if !rating.IsValid() {
		return domain.ReviewCard{}, fmt.Errorf("%w: %q", domain.ErrInvalidRating, rating)
	}

	// Step 1: additive ease adjustment, clamped to the floor.
	ease := card.EaseFactor + p.EaseDelta[rating]
	if ease < p.EaseFloor {
		ease = p.EaseFloor
	}
	card.EaseFactor = ease

	// Step 2: repetition/interval transition.
	if rating == domain.RatingAgain {
		card.Repetitions = 0
		card.Lapses++
		card.IntervalDays = p.LapseIntervalDays
	} else {
		card.IntervalDays = p.successInterval(card.Repetitions, card.IntervalDays, ease, rating)
		card.Repetitions++
	}

	// Step 3: derived fields.
	card.DueAt = now.AddDate(0, 0, card.IntervalDays)
	card.TotalReviews++
	card.LastReviewedAt = &now

	// Step 4: mastery bucket from the updated counters.
	card.Mastery = domain.MasteryFor(card.Repetitions, card.IntervalDays, card.TotalReviews)

	return card, nil
}

// PreviewInterval returns the interval, in days, that Apply would produce
// for the given rating, without touching the card. The result is exactly
// what a real review would persist: both paths run the same transition.
func PreviewInterval(p Params, card domain.ReviewCard, rating domain.Rating) (int, error) {
	// The interval never depends on the review instant, only DueAt does,
	// so any instant works here.
	next, err := Apply(p, card, rating, time.Time{})
	if err != nil {
		return 0, err
	}
	return next.IntervalDays, nil
}

// successInterval computes the next interval for a non-again rating.
// repetitions is the count before this review.
func (p Params) successInterval(repetitions, prevInterval int, ease float64, rating domain.Rating) int {
	switch repetitions {
	case 0:
		return p.FirstIntervals[rating]
	case 1:
		return p.SecondIntervals[rating]
	}

	next := roundHalfUp(float64(prevInterval) * ease * p.GrowthMultipliers[rating])
	// The interval must strictly grow once in the multiplicative regime,
	// even with ease at its floor and the hard multiplier applied.
	if minimum := prevInterval + 1; next < minimum {
		next = minimum
	}
	return next
}

// roundHalfUp rounds to the nearest integer with ties rounding up:
// 7.5 becomes 8, 10.4 becomes 10. Intervals are non-negative, so the
// floor(x+0.5) form is exact.
func roundHalfUp(x float64) int {
	return int(math.Floor(x + 0.5))
}
