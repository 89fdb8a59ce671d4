package services

import (
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/relearnhq/relearn-backend/internal/types"
)

func mistakeCreatedAt(category types.Category, at time.Time) *types.Mistake {
	return &types.Mistake{ID: uuid.New(), Title: "t", Description: "d", Category: category, CreatedAt: at}
}

func retestCompletedAt(at time.Time, result types.RetestResult) *types.Retest {
	return &types.Retest{ID: uuid.New(), MistakeID: uuid.New(), ScheduledDate: at, Completed: true, Result: result, CompletedAt: &at}
}

func TestStartOfISOWeek(t *testing.T) {
	monday := time.Date(2024, 5, 13, 0, 0, 0, 0, time.UTC)

	cases := []struct {
		name string
		in   time.Time
	}{
		{name: "monday itself", in: monday},
		{name: "wednesday noon", in: time.Date(2024, 5, 15, 12, 0, 0, 0, time.UTC)},
		{name: "sunday belongs to the preceding monday", in: time.Date(2024, 5, 19, 23, 59, 59, 0, time.UTC)},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if got := startOfISOWeek(tc.in); !got.Equal(monday) {
				t.Fatalf("startOfISOWeek(%v) = %v, want %v", tc.in, got, monday)
			}
		})
	}
}

func TestComputeWeeklyStats(t *testing.T) {
	// Wednesday; the containing week is Mon 2024-05-13 .. Sun 2024-05-19.
	now := time.Date(2024, 5, 15, 12, 0, 0, 0, time.UTC)

	mistakes := []*types.Mistake{
		// Monday 00:00 sits exactly on the window boundary: included.
		mistakeCreatedAt(types.CategoryConceptual, time.Date(2024, 5, 13, 0, 0, 0, 0, time.UTC)),
		mistakeCreatedAt(types.CategoryCareless, time.Date(2024, 5, 15, 9, 0, 0, 0, time.UTC)),
		// Sunday before the window start: excluded from weekly totals.
		mistakeCreatedAt(types.CategoryKnowledge, time.Date(2024, 5, 12, 18, 0, 0, 0, time.UTC)),
	}
	retests := []*types.Retest{
		retestCompletedAt(time.Date(2024, 5, 14, 10, 0, 0, 0, time.UTC), types.ResultCorrect),
		retestCompletedAt(time.Date(2024, 5, 15, 10, 0, 0, 0, time.UTC), types.ResultCorrect),
		retestCompletedAt(time.Date(2024, 5, 15, 11, 0, 0, 0, time.UTC), types.ResultIncorrect),
		// Completed the week before: excluded.
		retestCompletedAt(time.Date(2024, 5, 10, 11, 0, 0, 0, time.UTC), types.ResultCorrect),
		// Scheduled but never completed: ignored entirely.
		{ID: uuid.New(), MistakeID: uuid.New(), ScheduledDate: now},
	}

	stats := computeWeeklyStats(mistakes, retests, now)

	assert.Equal(t, 2, stats.TotalMistakes)
	assert.Equal(t, 3, stats.TotalRetests)
	assert.Equal(t, 2, stats.CorrectRetests)

	// One conceptual and one careless this week; the tie keeps enumeration
	// order. The knowledge mistake is outside the window, so no zero entry.
	require.Len(t, stats.TopPatterns, 2)
	assert.Equal(t, types.CategoryConceptual, stats.TopPatterns[0].Category)
	assert.Equal(t, 1, stats.TopPatterns[0].Count)
	assert.Equal(t, types.CategoryCareless, stats.TopPatterns[1].Category)
	assert.Equal(t, 1, stats.TopPatterns[1].Count)

	require.Len(t, stats.RecentActivity, 7)
	assert.Equal(t, "2024-05-09", stats.RecentActivity[0].Date)
	assert.Equal(t, "2024-05-15", stats.RecentActivity[6].Date)

	byDate := map[string]types.DailyActivity{}
	for _, a := range stats.RecentActivity {
		byDate[a.Date] = a
	}
	// The activity series uses calendar-day equality, not the week window, so
	// last Sunday's mistake still shows up.
	assert.Equal(t, 1, byDate["2024-05-12"].Mistakes)
	assert.Equal(t, 1, byDate["2024-05-13"].Mistakes)
	assert.Equal(t, 1, byDate["2024-05-15"].Mistakes)
	assert.Equal(t, 1, byDate["2024-05-14"].Retests)
	assert.Equal(t, 2, byDate["2024-05-15"].Retests)
	assert.Equal(t, 1, byDate["2024-05-10"].Retests)
}

func TestComputeWeeklyStatsRanksPatternsByCount(t *testing.T) {
	now := time.Date(2024, 5, 15, 12, 0, 0, 0, time.UTC)
	inWeek := time.Date(2024, 5, 14, 8, 0, 0, 0, time.UTC)

	mistakes := []*types.Mistake{
		mistakeCreatedAt(types.CategoryCareless, inWeek),
		mistakeCreatedAt(types.CategoryCareless, inWeek),
		mistakeCreatedAt(types.CategoryConceptual, inWeek),
	}

	stats := computeWeeklyStats(mistakes, nil, now)
	require.Len(t, stats.TopPatterns, 2)
	assert.Equal(t, types.CategoryCareless, stats.TopPatterns[0].Category)
	assert.Equal(t, 2, stats.TopPatterns[0].Count)
	assert.Equal(t, types.CategoryConceptual, stats.TopPatterns[1].Category)
}

func TestComputeWeeklyStatsEmpty(t *testing.T) {
	stats := computeWeeklyStats(nil, nil, time.Now().UTC())
	assert.Zero(t, stats.TotalMistakes)
	assert.Zero(t, stats.TotalRetests)
	assert.Zero(t, stats.CorrectRetests)
	assert.Empty(t, stats.TopPatterns)
	assert.Len(t, stats.RecentActivity, 7)
}
