package types

import "github.com/google/uuid"

// CategoryCount is one entry of the weekly top-patterns ranking.
type CategoryCount struct {
	Category Category `json:"category"`
	Count    int      `json:"count"`
}

// DailyActivity is one day of the 7-day trailing activity series. Date is
// formatted as 2006-01-02.
type DailyActivity struct {
	Date     string `json:"date"`
	Mistakes int    `json:"mistakes"`
	Retests  int    `json:"retests"`
}

// WeeklyStats is derived on demand, never stored. The week window is the
// Monday-Sunday interval containing the reference instant.
type WeeklyStats struct {
	TotalMistakes  int             `json:"totalMistakes"`
	TotalRetests   int             `json:"totalRetests"`
	CorrectRetests int             `json:"correctRetests"`
	TopPatterns    []CategoryCount `json:"topPatterns"`
	RecentActivity []DailyActivity `json:"recentActivity"`
}

// QuizQuestion is derived from a non-mastered mistake for review sessions.
type QuizQuestion struct {
	MistakeID        uuid.UUID `json:"mistakeId"`
	Question         string    `json:"question"`
	Category         Category  `json:"category"`
	CorrectPrinciple string    `json:"correctPrinciple"`
}
