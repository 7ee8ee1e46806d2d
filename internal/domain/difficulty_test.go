package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseDifficultyTag(t *testing.T) {
	t.Parallel()

	testCases := []struct {
		name     string
		input    string
		expected DifficultyTag
		wantErr  bool
	}{
		{name: "low", input: "low", expected: DifficultyLow},
		{name: "medium", input: "medium", expected: DifficultyMedium},
		{name: "high", input: "high", expected: DifficultyHigh},
		{name: "uppercase", input: "HIGH", expected: DifficultyHigh},
		{name: "empty defaults to medium", input: "", expected: DifficultyMedium},
		{name: "whitespace only defaults to medium", input: "   ", expected: DifficultyMedium},
		{name: "unknown", input: "extreme", wantErr: true},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			tag, err := ParseDifficultyTag(tc.input)
			if tc.wantErr {
				require.ErrorIs(t, err, ErrInvalidDifficulty)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tc.expected, tag)
		})
	}
}

func TestDifficultyTagIsValid(t *testing.T) {
	t.Parallel()

	assert.True(t, DifficultyLow.IsValid())
	assert.True(t, DifficultyMedium.IsValid())
	assert.True(t, DifficultyHigh.IsValid())
	assert.False(t, DifficultyTag("").IsValid())
	assert.False(t, DifficultyTag("extreme").IsValid())
}
