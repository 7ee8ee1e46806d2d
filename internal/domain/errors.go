package domain

import "errors"

// Sentinel errors for caller contract violations. Check with errors.Is.
var (
	// ErrInvalidRating is returned when a rating outside the four-value
	// scale reaches the scheduler. It signals a programming error in the
	// integration and is never swallowed.
	ErrInvalidRating = errors.New("invalid rating")

	// ErrInvalidDifficulty is returned when parsing an unknown difficulty tag.
	ErrInvalidDifficulty = errors.New("invalid difficulty tag")

	// ErrEmptyItemID is returned when an operation is called without an
	// item identifier.
	ErrEmptyItemID = errors.New("item id cannot be empty")

	// ErrInvalidEaseFactor marks a stored card whose ease factor is not a
	// positive number.
	ErrInvalidEaseFactor = errors.New("ease factor must be positive")

	// ErrNegativeCounter marks a stored card with a negative interval or
	// review counter.
	ErrNegativeCounter = errors.New("counters cannot be negative")
)
