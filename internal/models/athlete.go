package models

// AthleteStats is the normalized weekly running summary.
type AthleteStats struct {
	WeeklyMiles    float64 `json:"weeklyMiles"`
	WeeklyGoal     float64 `json:"weeklyGoal"`
	WeeklyProgress float64 `json:"weeklyProgress"`
}

// Athlete is the identity part of a /athlete response.
type Athlete struct {
	ID        int64  `json:"id"`
	Username  string `json:"username"`
	FirstName string `json:"firstname"`
	LastName  string `json:"lastname"`
}

// ActivityTotals is one totals block of a /athletes/{id}/stats response.
type ActivityTotals struct {
	Count         int     `json:"count"`
	Distance      float64 `json:"distance"`
	MovingTime    int     `json:"moving_time"`
	ElapsedTime   int     `json:"elapsed_time"`
	ElevationGain float64 `json:"elevation_gain"`
}

// AthleteStatsResponse is the body of a /athletes/{id}/stats response.
type AthleteStatsResponse struct {
	RecentRunTotals ActivityTotals `json:"recent_run_totals"`
	YTDRunTotals    ActivityTotals `json:"ytd_run_totals"`
	AllRunTotals    ActivityTotals `json:"all_run_totals"`
}
