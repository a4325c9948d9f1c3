package postgresql

import (
	"context"

	"github.com/fdestech/timetrack-backend-go/internal/domain/stats"
	"github.com/fdestech/timetrack-backend-go/internal/pkg/database"
)

type statsRepositoryImpl struct {
	db *database.DB
}

func NewStatsRepository(db *database.DB) stats.StatsRepository {
	return &statsRepositoryImpl{db: db}
}

// GetOrgTotals implements stats.StatsRepository. Headcount and the
// submitted-today split count employee accounts only; time_spent is
// stored as decimal text so the sums cast it before aggregating.
func (r *statsRepositoryImpl) GetOrgTotals(ctx context.Context, today string) (stats.OrgTotals, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT
			(SELECT COUNT(*) FROM users WHERE role = 'employee'),
			(SELECT COUNT(*) FROM work_entries),
			(SELECT COALESCE(SUM(time_spent::numeric), 0)::float8 FROM work_entries),
			(SELECT COUNT(DISTINCT we.user_id)
				FROM work_entries we
				JOIN users u ON u.id = we.user_id
				WHERE we.date = $1 AND u.role = 'employee')`

	var totals stats.OrgTotals
	err := q.QueryRow(ctx, query, today).Scan(
		&totals.TotalEmployees,
		&totals.TotalEntries,
		&totals.TotalHours,
		&totals.SubmittedToday,
	)
	return totals, err
}

// GetEmployeeHourTotals implements stats.StatsRepository.
func (r *statsRepositoryImpl) GetEmployeeHourTotals(ctx context.Context, userID, today, weekStart, monthStart string) (stats.EmployeeHourTotals, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT
			COALESCE(SUM(time_spent::numeric) FILTER (WHERE date = $2), 0)::float8,
			COALESCE(SUM(time_spent::numeric) FILTER (WHERE date >= $3 AND date <= $2), 0)::float8,
			COALESCE(SUM(time_spent::numeric) FILTER (WHERE date >= $4 AND date <= $2), 0)::float8
		FROM work_entries
		WHERE user_id = $1`

	var totals stats.EmployeeHourTotals
	err := q.QueryRow(ctx, query, userID, today, weekStart, monthStart).Scan(
		&totals.TodayHours,
		&totals.WeekHours,
		&totals.MonthHours,
	)
	return totals, err
}

// GetTodayTotals implements stats.StatsRepository. Headcount is the
// employee role only, matching what a manager's team dashboard shows.
func (r *statsRepositoryImpl) GetTodayTotals(ctx context.Context, today string) (stats.TodayTotals, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT
			(SELECT COUNT(*) FROM users WHERE role = 'employee'),
			(SELECT COUNT(DISTINCT we.user_id)
				FROM work_entries we
				JOIN users u ON u.id = we.user_id
				WHERE we.date = $1 AND u.role = 'employee'),
			(SELECT COALESCE(SUM(we.time_spent::numeric), 0)::float8
				FROM work_entries we
				JOIN users u ON u.id = we.user_id
				WHERE we.date = $1 AND u.role = 'employee')`

	var totals stats.TodayTotals
	err := q.QueryRow(ctx, query, today).Scan(
		&totals.TotalEmployees,
		&totals.Submitted,
		&totals.TotalHours,
	)
	return totals, err
}
