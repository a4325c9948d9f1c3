package stats

import (
	"context"
)

// OrgTotals combines the lifetime entry counts and hour sums in one query.
type OrgTotals struct {
	TotalEmployees int64
	TotalEntries   int64
	TotalHours     float64
	SubmittedToday int64
}

// EmployeeHourTotals combines today/week/month hour sums for one user.
type EmployeeHourTotals struct {
	TodayHours float64
	WeekHours  float64
	MonthHours float64
}

// TodayTotals covers the manager dashboard: today's submissions and hours.
type TodayTotals struct {
	TotalEmployees int64
	Submitted      int64
	TotalHours     float64
}

// StatsRepository defines the read-side aggregation over the work-entry
// ledger and the identity store.
type StatsRepository interface {
	GetOrgTotals(ctx context.Context, today string) (OrgTotals, error)
	GetEmployeeHourTotals(ctx context.Context, userID, today, weekStart, monthStart string) (EmployeeHourTotals, error)
	GetTodayTotals(ctx context.Context, today string) (TodayTotals, error)
}
