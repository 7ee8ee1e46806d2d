package review

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/example/rote/internal/domain"
	"github.com/example/rote/internal/storage"
)

func TestSummaryEmptyStore(t *testing.T) {
	t.Parallel()
	sched, _ := newTestScheduler(t)

	summary, err := sched.Summary()
	require.NoError(t, err)
	assert.Equal(t, 0, summary.TotalCards)
	assert.Equal(t, 0, summary.DueNow)
	assert.Empty(t, summary.ByMastery)
	assert.Empty(t, summary.ByCategory)
}

func TestSummaryCounts(t *testing.T) {
	t.Parallel()
	sched, kv := newTestScheduler(t)
	cards := storage.NewCardStore(kv)

	now := time.Now().UTC()

	fresh := domain.NewReviewCard("fresh", "golang", domain.DifficultyMedium, now)

	mature := domain.NewReviewCard("mature", "golang", domain.DifficultyLow, now)
	mature.Repetitions = 3
	mature.IntervalDays = 8
	mature.TotalReviews = 3
	mature.Mastery = domain.MasteryMature
	mature.DueAt = now.AddDate(0, 0, 8)

	lapsed := domain.NewReviewCard("lapsed", "networking", domain.DifficultyHigh, now)
	lapsed.TotalReviews = 5
	lapsed.Lapses = 2
	lapsed.Mastery = domain.MasteryLearning
	lapsed.DueAt = now.AddDate(0, 0, -1)

	for _, card := range []domain.ReviewCard{fresh, mature, lapsed} {
		require.NoError(t, cards.Put(card))
	}

	summary, err := sched.Summary()
	require.NoError(t, err)

	assert.Equal(t, 3, summary.TotalCards)
	assert.Equal(t, 2, summary.DueNow, "fresh and lapsed are due, mature is not")
	assert.Equal(t, map[domain.MasteryLevel]int{
		domain.MasteryNew:      1,
		domain.MasteryMature:   1,
		domain.MasteryLearning: 1,
	}, summary.ByMastery)
	assert.Equal(t, map[string]int{
		"golang":     2,
		"networking": 1,
	}, summary.ByCategory)
}
