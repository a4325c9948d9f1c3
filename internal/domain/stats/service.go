package stats

import (
	"context"
)

// StatsService computes the read-side rollups. Nothing here mutates state.
type StatsService interface {
	// OrgStats is the organization-wide rollup for hr and manager views.
	OrgStats(ctx context.Context) (OrgStatsResponse, error)

	// EmployeeStats is one user's today/week/month hour totals.
	EmployeeStats(ctx context.Context, userID string) (EmployeeStatsResponse, error)

	// ManagerDashboard restricts headcount to the employee role and hours
	// to today only.
	ManagerDashboard(ctx context.Context) (ManagerDashboardResponse, error)
}
