package domain

// StatsRecord is the cumulative usage record persisted between runs.
// LastRun holds the local calendar date ("YYYY-MM-DD") of the most recent
// finished interval, or "" for a fresh record.
type StatsRecord struct {
	TotalSessions     int    `json:"total_sessions"`
	TotalFocusMinutes int    `json:"total_focus_minutes"`
	TotalBreakMinutes int    `json:"total_break_minutes"`
	DaysActive        int    `json:"days_active"`
	LastRun           string `json:"last_run"`
}

// Apply returns a copy of the record updated for one finished interval.
// Work intervals bump TotalSessions and TotalFocusMinutes, breaks bump
// TotalBreakMinutes. The work/break branch runs before the date branch;
// both can fire in the same call. DaysActive moves at most once per
// calendar date, tracked through LastRun.
func (r StatsRecord) Apply(minutes int, isWork bool, date string) StatsRecord {
	out := r
	if isWork {
		out.TotalSessions++
		out.TotalFocusMinutes += minutes
	} else {
		out.TotalBreakMinutes += minutes
	}
	if out.LastRun != date {
		out.DaysActive++
		out.LastRun = date
	}
	return out
}
