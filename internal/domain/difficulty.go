package domain

import (
	"fmt"
	"strings"
)

// DifficultyTag labels how hard the originating item is considered to be.
// It is informational metadata for filtering and reporting; the scheduling
// math never branches on it.
type DifficultyTag string

const (
	DifficultyLow    DifficultyTag = "low"
	DifficultyMedium DifficultyTag = "medium"
	DifficultyHigh   DifficultyTag = "high"
)

// IsValid reports whether d is one of the three defined tags.
func (d DifficultyTag) IsValid() bool {
	switch d {
	case DifficultyLow, DifficultyMedium, DifficultyHigh:
		return true
	}
	return false
}

func (d DifficultyTag) String() string {
	return string(d)
}

// ParseDifficultyTag converts user input into a DifficultyTag,
// case-insensitively. Empty input defaults to medium.
func ParseDifficultyTag(s string) (DifficultyTag, error) {
	s = strings.ToLower(strings.TrimSpace(s))
	if s == "" {
		return DifficultyMedium, nil
	}
	d := DifficultyTag(s)
	if !d.IsValid() {
		return "", fmt.Errorf("%w: %q", ErrInvalidDifficulty, s)
	}
	return d, nil
}
