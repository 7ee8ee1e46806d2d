package sm2

import (
	"errors"
	"fmt"

	"github.com/example/rote/internal/domain"
)

// ErrInvalidParams is returned when a Params value cannot drive the
// algorithm. Check with errors.Is.
var ErrInvalidParams = errors.New("sm2: invalid params")

// Params holds the tunable constants of the scheduling algorithm.
// The zero value is not usable; start from DefaultParams.
type Params struct {
	// EaseFloor is the minimum ease factor a card can reach. The additive
	// deltas clamp here, so intervals keep growing even for chronically
	// hard cards.
	EaseFloor float64

	// EaseDelta is the additive ease adjustment per rating, applied before
	// the interval is computed.
	EaseDelta map[domain.Rating]float64

	// FirstIntervals are the graduating intervals, in days, for a
	// successful review of a card with no prior successes.
	FirstIntervals map[domain.Rating]int

	// SecondIntervals are the intervals for the second consecutive success.
	SecondIntervals map[domain.Rating]int

	// GrowthMultipliers scale the multiplicative interval formula once a
	// card has two or more consecutive successes.
	GrowthMultipliers map[domain.Rating]float64

	// LapseIntervalDays is the relearning interval after an "again" rating,
	// regardless of how long the prior interval was.
	LapseIntervalDays int
}

// DefaultParams returns the standard tuning: ease floor 1.3, graduating
// steps 1/1/2 then 3/3/4 days, and growth multipliers 0.8/1.0/1.3 for
// hard/good/easy.
func DefaultParams() Params {
	return Params{
		EaseFloor: domain.MinEaseFactor,
		EaseDelta: map[domain.Rating]float64{
			domain.RatingAgain: -0.20,
			domain.RatingHard:  -0.15,
			domain.RatingGood:  0.0,
			domain.RatingEasy:  0.15,
		},
		FirstIntervals: map[domain.Rating]int{
			domain.RatingHard: 1,
			domain.RatingGood: 1,
			domain.RatingEasy: 2,
		},
		SecondIntervals: map[domain.Rating]int{
			domain.RatingHard: 3,
			domain.RatingGood: 3,
			domain.RatingEasy: 4,
		},
		GrowthMultipliers: map[domain.Rating]float64{
			domain.RatingHard: 0.8,
			domain.RatingGood: 1.0,
			domain.RatingEasy: 1.3,
		},
		LapseIntervalDays: 1,
	}
}

// Validate checks that the params can schedule every rating.
func (p Params) Validate() error {
	if p.EaseFloor <= 1.0 {
		return fmt.Errorf("%w: ease floor %.2f must be greater than 1.0", ErrInvalidParams, p.EaseFloor)
	}
	if p.LapseIntervalDays < 1 {
		return fmt.Errorf("%w: lapse interval %d must be at least 1 day", ErrInvalidParams, p.LapseIntervalDays)
	}
	for _, r := range domain.Ratings() {
		if _, ok := p.EaseDelta[r]; !ok {
			return fmt.Errorf("%w: missing ease delta for %q", ErrInvalidParams, r)
		}
		if !r.IsSuccess() {
			continue
		}
		if days, ok := p.FirstIntervals[r]; !ok || days < 1 {
			return fmt.Errorf("%w: first interval for %q must be at least 1 day", ErrInvalidParams, r)
		}
		if days, ok := p.SecondIntervals[r]; !ok || days < 1 {
			return fmt.Errorf("%w: second interval for %q must be at least 1 day", ErrInvalidParams, r)
		}
		if mult, ok := p.GrowthMultipliers[r]; !ok || mult <= 0 {
			return fmt.Errorf("%w: growth multiplier for %q must be positive", ErrInvalidParams, r)
		}
	}
	return nil
}
