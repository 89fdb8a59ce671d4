package services

import (
	"context"
	"sort"
	"time"

	"gorm.io/gorm"

	"github.com/relearnhq/relearn-backend/internal/pkg/logger"
	"github.com/relearnhq/relearn-backend/internal/repos"
	"github.com/relearnhq/relearn-backend/internal/types"
)

const dayFormat = "2006-01-02"

type StatsService interface {
	Weekly(ctx context.Context) (*types.WeeklyStats, error)
}

type statsService struct {
	db       *gorm.DB
	log      *logger.Logger
	mistakes repos.MistakeRepo
	retests  repos.RetestRepo
}

func NewStatsService(db *gorm.DB, baseLog *logger.Logger, mistakes repos.MistakeRepo, retests repos.RetestRepo) StatsService {
	return &statsService{
		db:       db,
		log:      baseLog.With("service", "StatsService"),
		mistakes: mistakes,
		retests:  retests,
	}
}

func (s *statsService) Weekly(ctx context.Context) (*types.WeeklyStats, error) {
	mistakes, err := s.mistakes.GetAll(ctx, nil)
	if err != nil {
		return nil, err
	}
	retests, err := s.retests.GetAll(ctx, nil)
	if err != nil {
		return nil, err
	}
	return computeWeeklyStats(mistakes, retests, time.Now().UTC()), nil
}

// startOfISOWeek truncates to the Monday 00:00 UTC opening the week that
// contains t.
func startOfISOWeek(t time.Time) time.Time {
	t = t.UTC()
	day := time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
	sinceMonday := (int(day.Weekday()) + 6) % 7
	return day.AddDate(0, 0, -sinceMonday)
}

// computeWeeklyStats is a pure function of the record set and the reference
// instant. Weekly totals use the Monday-Sunday window containing now; the
// activity series uses plain calendar-day equality over the trailing 7 days.
func computeWeeklyStats(mistakes []*types.Mistake, retests []*types.Retest, now time.Time) *types.WeeklyStats {
	weekStart := startOfISOWeek(now)
	weekEnd := weekStart.AddDate(0, 0, 7)
	inWeek := func(t time.Time) bool {
		t = t.UTC()
		return !t.Before(weekStart) && t.Before(weekEnd)
	}

	totalMistakes := 0
	counts := make(map[types.Category]int)
	for _, m := range mistakes {
		if inWeek(m.CreatedAt) {
			totalMistakes++
			counts[m.Category]++
		}
	}

	// Build in enumeration order so the stable sort keeps that order on ties.
	topPatterns := make([]types.CategoryCount, 0, len(counts))
	for _, c := range types.Categories() {
		if counts[c] > 0 {
			topPatterns = append(topPatterns, types.CategoryCount{Category: c, Count: counts[c]})
		}
	}
	sort.SliceStable(topPatterns, func(i, j int) bool {
		return topPatterns[i].Count > topPatterns[j].Count
	})

	totalRetests := 0
	correctRetests := 0
	for _, r := range retests {
		if r.Completed && r.CompletedAt != nil && inWeek(*r.CompletedAt) {
			totalRetests++
			if r.Result == types.ResultCorrect {
				correctRetests++
			}
		}
	}

	recentActivity := make([]types.DailyActivity, 0, 7)
	for i := 6; i >= 0; i-- {
		day := now.UTC().AddDate(0, 0, -i).Format(dayFormat)
		entry := types.DailyActivity{Date: day}
		for _, m := range mistakes {
			if m.CreatedAt.UTC().Format(dayFormat) == day {
				entry.Mistakes++
			}
		}
		for _, r := range retests {
			if r.Completed && r.CompletedAt != nil && r.CompletedAt.UTC().Format(dayFormat) == day {
				entry.Retests++
			}
		}
		recentActivity = append(recentActivity, entry)
	}

	return &types.WeeklyStats{
		TotalMistakes:  totalMistakes,
		TotalRetests:   totalRetests,
		CorrectRetests: correctRetests,
		TopPatterns:    topPatterns,
		RecentActivity: recentActivity,
	}
}
