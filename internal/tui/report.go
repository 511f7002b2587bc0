package tui

import (
	"fmt"

	"github.com/astanczak/pomo/internal/domain"
)

// RenderReport formats the cumulative progress report shown before each
// focus session. streak is the number of work sessions completed so far in
// this run.
func RenderReport(rec domain.StatsRecord, streak int) string {
	hours := rec.TotalFocusMinutes / 60
	minutes := rec.TotalFocusMinutes % 60

	body := fmt.Sprintf(
		"%s\nCurrent Streak:  %d sessions today\nLifetime Focus:  %dh %dm\nTotal Sessions:  %d\nDays Active:     %d",
		reportTitleStyle.Render("📊 PROGRESS REPORT"),
		streak,
		hours, minutes,
		rec.TotalSessions,
		rec.DaysActive,
	)
	return reportStyle.Render(body)
}
