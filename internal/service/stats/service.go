package stats

import (
	"context"
	"fmt"
	"time"

	"github.com/fdestech/timetrack-backend-go/internal/domain/stats"
)

type StatsServiceImpl struct {
	stats.StatsRepository
	weekStart string
}

// NewStatsService builds the rollup service. weekStart is "sunday" or
// "monday" and controls where the week-to-date window begins.
func NewStatsService(statsRepository stats.StatsRepository, weekStart string) stats.StatsService {
	return &StatsServiceImpl{
		StatsRepository: statsRepository,
		weekStart:       weekStart,
	}
}

// WeekStartDate returns the most recent week boundary at or before t.
func WeekStartDate(t time.Time, weekStart string) time.Time {
	startDay := time.Sunday
	if weekStart == "monday" {
		startDay = time.Monday
	}

	daysBack := int(t.Weekday()) - int(startDay)
	if daysBack < 0 {
		daysBack += 7
	}
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location()).AddDate(0, 0, -daysBack)
}

// MonthStartDate returns the first day of t's month.
func MonthStartDate(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), 1, 0, 0, 0, 0, t.Location())
}

func formatHours(hours float64) string {
	return fmt.Sprintf("%.1f", hours)
}

// OrgStats implements stats.StatsService.
func (s *StatsServiceImpl) OrgStats(ctx context.Context) (stats.OrgStatsResponse, error) {
	today := time.Now().Format("2006-01-02")

	totals, err := s.StatsRepository.GetOrgTotals(ctx, today)
	if err != nil {
		return stats.OrgStatsResponse{}, fmt.Errorf("failed to get org totals: %w", err)
	}

	avgHours := 0.0
	if totals.TotalEntries > 0 {
		avgHours = totals.TotalHours / float64(totals.TotalEntries)
	}

	return stats.OrgStatsResponse{
		TotalEmployees:    totals.TotalEmployees,
		TotalEntries:      totals.TotalEntries,
		TotalHours:        formatHours(totals.TotalHours),
		AvgHours:          formatHours(avgHours),
		SubmittedToday:    totals.SubmittedToday,
		NotSubmittedToday: totals.TotalEmployees - totals.SubmittedToday,
	}, nil
}

// EmployeeStats implements stats.StatsService.
func (s *StatsServiceImpl) EmployeeStats(ctx context.Context, userID string) (stats.EmployeeStatsResponse, error) {
	now := time.Now()
	today := now.Format("2006-01-02")
	weekStart := WeekStartDate(now, s.weekStart).Format("2006-01-02")
	monthStart := MonthStartDate(now).Format("2006-01-02")

	totals, err := s.StatsRepository.GetEmployeeHourTotals(ctx, userID, today, weekStart, monthStart)
	if err != nil {
		return stats.EmployeeStatsResponse{}, fmt.Errorf("failed to get employee hour totals: %w", err)
	}

	status := "not_submitted"
	if totals.TodayHours > 0 {
		status = "submitted"
	}

	return stats.EmployeeStatsResponse{
		TodayHours: formatHours(totals.TodayHours),
		WeekHours:  formatHours(totals.WeekHours),
		MonthHours: formatHours(totals.MonthHours),
		Status:     status,
	}, nil
}

// ManagerDashboard implements stats.StatsService.
func (s *StatsServiceImpl) ManagerDashboard(ctx context.Context) (stats.ManagerDashboardResponse, error) {
	today := time.Now().Format("2006-01-02")

	totals, err := s.StatsRepository.GetTodayTotals(ctx, today)
	if err != nil {
		return stats.ManagerDashboardResponse{}, fmt.Errorf("failed to get today totals: %w", err)
	}

	return stats.ManagerDashboardResponse{
		TotalEmployees: totals.TotalEmployees,
		Submitted:      totals.Submitted,
		NotSubmitted:   totals.TotalEmployees - totals.Submitted,
		TotalWorkHours: formatHours(totals.TotalHours),
	}, nil
}
