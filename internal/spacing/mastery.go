package spacing

import (
	"sort"

	"github.com/relearnhq/relearn-backend/internal/types"
)

// MasteryStreak is how many of the most recent completions must all be
// correct before a mistake counts as mastered.
const MasteryStreak = 3

// IsMastered reports whether a mistake's retest history satisfies the mastery
// rule: its MasteryStreak most recently completed retests all came back
// correct. Uncompleted rows are ignored; fewer than MasteryStreak completions
// is never mastery.
//
// The function itself is not sticky: a later failure makes it return false
// again. The service layer only ever applies a true result, so the persisted
// flag stays monotone.
func IsMastered(retests []*types.Retest) bool {
	completed := make([]*types.Retest, 0, len(retests))
	for _, r := range retests {
		if r.Completed && r.CompletedAt != nil {
			completed = append(completed, r)
		}
	}
	if len(completed) < MasteryStreak {
		return false
	}
	sort.SliceStable(completed, func(i, j int) bool {
		return completed[i].CompletedAt.After(*completed[j].CompletedAt)
	})
	for _, r := range completed[:MasteryStreak] {
		if r.Result != types.ResultCorrect {
			return false
		}
	}
	return true
}
