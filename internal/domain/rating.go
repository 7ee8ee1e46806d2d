package domain

import (
	"fmt"
	"strings"
)

// Rating is the reviewer's recall-confidence signal after seeing an item.
// It is an ordered four-value scale, not a boolean.
type Rating string

const (
	RatingAgain Rating = "again" // failed to recall; resets short-term progress
	RatingHard  Rating = "hard"
	RatingGood  Rating = "good"
	RatingEasy  Rating = "easy"
)

// Ratings returns all valid ratings in ascending confidence order.
func Ratings() []Rating {
	return []Rating{RatingAgain, RatingHard, RatingGood, RatingEasy}
}

// IsValid reports whether r is one of the four defined ratings.
func (r Rating) IsValid() bool {
	switch r {
	case RatingAgain, RatingHard, RatingGood, RatingEasy:
		return true
	}
	return false
}

func (r Rating) String() string {
	return string(r)
}

// ParseRating converts user input into a Rating. Matching is
// case-insensitive; anything outside the four-value scale returns
// ErrInvalidRating.
func ParseRating(s string) (Rating, error) {
	r := Rating(strings.ToLower(strings.TrimSpace(s)))
	if !r.IsValid() {
		return "", fmt.Errorf("%w: %q", ErrInvalidRating, s)
	}
	return r, nil
}

// IsSuccess reports whether the rating counts as a successful recall.
// Only "again" is a lapse.
func (r Rating) IsSuccess() bool {
	return r.IsValid() && r != RatingAgain
}
