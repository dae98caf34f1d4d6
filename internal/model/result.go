package model

// DriverStats holds the leaderboard computed from a processed batch.
type DriverStats struct {
	// Most frequently used driver (up to a three-way tie, alphabetical).
	TopUsed      string
	TopUsedCount int
	// Most punctual driver: fewest late clock-ins, then average diff
	// closest to zero. Requires at least three deliveries.
	Punctual          string
	PunctualAvg       float64
	PunctualLateCount int
	// Driver with the most late clock-ins.
	MostLate      string
	MostLateCount int
	// Driver with the highest percentage of late clock-ins.
	HighestLatePercentDriver string
	HighestLatePercent       float64
	// Driver with the single latest clock-in, in minutes past ready time.
	LatestClockInDriver      string
	LatestClockInDiffMinutes float64
}

// ProcessResult is the aggregate outcome of a full automatic submission.
type ProcessResult struct {
	DriverStats
	Expanded int
	Matched  int
	Skipped  int
	Total    int
}
