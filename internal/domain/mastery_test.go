package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestMasteryFor(t *testing.T) {
	t.Parallel()

	testCases := []struct {
		name         string
		repetitions  int
		intervalDays int
		totalReviews int
		expected     MasteryLevel
	}{
		{name: "never reviewed", repetitions: 0, intervalDays: 0, totalReviews: 0, expected: MasteryNew},
		{name: "lapsed card is learning not new", repetitions: 0, intervalDays: 1, totalReviews: 4, expected: MasteryLearning},
		{name: "one success", repetitions: 1, intervalDays: 1, totalReviews: 1, expected: MasteryLearning},
		{name: "two successes", repetitions: 2, intervalDays: 3, totalReviews: 2, expected: MasteryYoung},
		{name: "three successes short interval", repetitions: 3, intervalDays: 8, totalReviews: 3, expected: MasteryMature},
		{name: "interval just below threshold", repetitions: 4, intervalDays: 20, totalReviews: 4, expected: MasteryMature},
		{name: "interval at threshold", repetitions: 4, intervalDays: 21, totalReviews: 4, expected: MasteryMastered},
		{name: "long interval", repetitions: 7, intervalDays: 120, totalReviews: 10, expected: MasteryMastered},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			assert.Equal(t, tc.expected, MasteryFor(tc.repetitions, tc.intervalDays, tc.totalReviews))
		})
	}
}

func TestMasteryLabel(t *testing.T) {
	t.Parallel()

	assert.Equal(t, "New", MasteryNew.Label())
	assert.Equal(t, "Learning", MasteryLearning.Label())
	assert.Equal(t, "Young", MasteryYoung.Label())
	assert.Equal(t, "Mature", MasteryMature.Label())
	assert.Equal(t, "Mastered", MasteryMastered.Label())
	assert.Equal(t, "weird", MasteryLevel("weird").Label(), "unknown levels render as-is")
}

func TestMasteryColor(t *testing.T) {
	t.Parallel()

	assert.Equal(t, "gray", MasteryNew.Color())
	assert.Equal(t, "orange", MasteryLearning.Color())
	assert.Equal(t, "gold", MasteryYoung.Color())
	assert.Equal(t, "green", MasteryMature.Color())
	assert.Equal(t, "blue", MasteryMastered.Color())
	assert.Equal(t, "gray", MasteryLevel("weird").Color())
}
