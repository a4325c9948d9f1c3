package stats

import (
	"context"
	"testing"
	"time"

	"github.com/fdestech/timetrack-backend-go/internal/domain/stats"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type statsRepoStub struct {
	orgTotals      stats.OrgTotals
	employeeTotals stats.EmployeeHourTotals
	todayTotals    stats.TodayTotals
}

func (s *statsRepoStub) GetOrgTotals(ctx context.Context, today string) (stats.OrgTotals, error) {
	return s.orgTotals, nil
}

func (s *statsRepoStub) GetEmployeeHourTotals(ctx context.Context, userID, today, weekStart, monthStart string) (stats.EmployeeHourTotals, error) {
	return s.employeeTotals, nil
}

func (s *statsRepoStub) GetTodayTotals(ctx context.Context, today string) (stats.TodayTotals, error) {
	return s.todayTotals, nil
}

func date(value string) time.Time {
	t, err := time.Parse("2006-01-02", value)
	if err != nil {
		panic(err)
	}
	return t
}

func TestWeekStartDate_Sunday(t *testing.T) {
	// 2026-08-26 is a Wednesday
	assert.Equal(t, date("2026-08-23"), WeekStartDate(date("2026-08-26"), "sunday"))
	// A Sunday is its own week start
	assert.Equal(t, date("2026-08-23"), WeekStartDate(date("2026-08-23"), "sunday"))
	// A Saturday still belongs to the week that started the previous Sunday
	assert.Equal(t, date("2026-08-23"), WeekStartDate(date("2026-08-29"), "sunday"))
}

func TestWeekStartDate_Monday(t *testing.T) {
	// 2026-08-26 is a Wednesday
	assert.Equal(t, date("2026-08-24"), WeekStartDate(date("2026-08-26"), "monday"))
	// A Monday is its own week start
	assert.Equal(t, date("2026-08-24"), WeekStartDate(date("2026-08-24"), "monday"))
	// A Sunday belongs to the week that started the previous Monday
	assert.Equal(t, date("2026-08-24"), WeekStartDate(date("2026-08-30"), "monday"))
}

func TestWeekStartDate_CrossesMonthBoundary(t *testing.T) {
	// 2026-09-01 is a Tuesday; the Sunday week start falls in August
	assert.Equal(t, date("2026-08-30"), WeekStartDate(date("2026-09-01"), "sunday"))
}

func TestMonthStartDate(t *testing.T) {
	assert.Equal(t, date("2026-08-01"), MonthStartDate(date("2026-08-26")))
	assert.Equal(t, date("2026-02-01"), MonthStartDate(date("2026-02-28")))
	assert.Equal(t, date("2026-01-01"), MonthStartDate(date("2026-01-01")))
}

func TestStatsService_OrgStats_NoEntries(t *testing.T) {
	service := NewStatsService(&statsRepoStub{
		orgTotals: stats.OrgTotals{TotalEmployees: 5},
	}, "sunday")

	resp, err := service.OrgStats(context.Background())
	require.NoError(t, err)

	// No entries means no division; the average stays zero
	assert.Equal(t, "0.0", resp.AvgHours)
	assert.Equal(t, "0.0", resp.TotalHours)
	assert.Equal(t, int64(0), resp.SubmittedToday)
	assert.Equal(t, resp.TotalEmployees, resp.NotSubmittedToday)
}

func TestStatsService_OrgStats_Averages(t *testing.T) {
	service := NewStatsService(&statsRepoStub{
		orgTotals: stats.OrgTotals{
			TotalEmployees: 10,
			TotalEntries:   4,
			TotalHours:     30,
			SubmittedToday: 3,
		},
	}, "sunday")

	resp, err := service.OrgStats(context.Background())
	require.NoError(t, err)

	assert.Equal(t, "30.0", resp.TotalHours)
	assert.Equal(t, "7.5", resp.AvgHours)
	assert.Equal(t, int64(3), resp.SubmittedToday)
	assert.Equal(t, int64(7), resp.NotSubmittedToday)
}

func TestStatsService_EmployeeStats_SubmissionStatus(t *testing.T) {
	service := NewStatsService(&statsRepoStub{
		employeeTotals: stats.EmployeeHourTotals{TodayHours: 7.5, WeekHours: 20, MonthHours: 80},
	}, "sunday")

	resp, err := service.EmployeeStats(context.Background(), "user-1")
	require.NoError(t, err)
	assert.Equal(t, "7.5", resp.TodayHours)
	assert.Equal(t, "20.0", resp.WeekHours)
	assert.Equal(t, "80.0", resp.MonthHours)
	assert.Equal(t, "submitted", resp.Status)

	service = NewStatsService(&statsRepoStub{}, "sunday")
	resp, err = service.EmployeeStats(context.Background(), "user-1")
	require.NoError(t, err)
	assert.Equal(t, "0.0", resp.TodayHours)
	assert.Equal(t, "not_submitted", resp.Status)
}

func TestStatsService_ManagerDashboard(t *testing.T) {
	service := NewStatsService(&statsRepoStub{
		todayTotals: stats.TodayTotals{TotalEmployees: 8, Submitted: 5, TotalHours: 37.25},
	}, "monday")

	resp, err := service.ManagerDashboard(context.Background())
	require.NoError(t, err)
	assert.Equal(t, int64(8), resp.TotalEmployees)
	assert.Equal(t, int64(5), resp.Submitted)
	assert.Equal(t, int64(3), resp.NotSubmitted)
	assert.Equal(t, "37.2", resp.TotalWorkHours)
}

func TestFormatHours(t *testing.T) {
	assert.Equal(t, "0.0", formatHours(0))
	assert.Equal(t, "7.5", formatHours(7.5))
	assert.Equal(t, "8.0", formatHours(8))
	// rounding to one decimal place
	assert.Equal(t, "2.7", formatHours(2.666))
}
