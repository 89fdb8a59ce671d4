package spacing

import (
	"time"

	"github.com/relearnhq/relearn-backend/internal/types"
)

// FailureRetryDays is the fixed remediation interval applied after a failed
// retest, regardless of category.
const FailureRetryDays = 1

// InitialSchedule derives the full retest schedule for a newly logged
// mistake: one due-date per policy offset, ascending.
func InitialSchedule(c types.Category, ref time.Time) []time.Time {
	offsets := OffsetsFor(c)
	dates := make([]time.Time, 0, len(offsets))
	for _, d := range offsets {
		dates = append(dates, ref.AddDate(0, 0, d))
	}
	return dates
}

// RescheduleAfterFailure returns the single follow-up due-date after a failed
// retest.
func RescheduleAfterFailure(ref time.Time) time.Time {
	return ref.AddDate(0, 0, FailureRetryDays)
}
