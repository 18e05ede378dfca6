package analytics

type DailySummary struct {
	Date           string  `json:"date"`
	TotalHabits    int     `json:"total_habits"`
	Tracked        int     `json:"tracked"`
	Completed      int     `json:"completed"`
	CompletionRate float64 `json:"completion_rate"`
}

type WeeklyPoint struct {
	Date      string `json:"date"`
	Tracked   int    `json:"tracked"`
	Completed int    `json:"completed"`
}

type WeeklyReport struct {
	From string        `json:"from"`
	To   string        `json:"to"`
	Days []WeeklyPoint `json:"days"`
}
