package postgresql

import (
	"context"
	"fmt"
	"strings"

	"github.com/fdestech/timetrack-backend-go/internal/domain/workentry"
	"github.com/fdestech/timetrack-backend-go/internal/pkg/database"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
)

// date is cast to text so it scans straight into the entity's string field.
const workEntryColumns = `id, user_id, date::text, work_type, description, time_spent, status, reviewed_by, reviewed_at, created_at`

type workEntryRepositoryImpl struct {
	db *database.DB
}

func NewWorkEntryRepository(db *database.DB) workentry.WorkEntryRepository {
	return &workEntryRepositoryImpl{db: db}
}

func scanWorkEntry(row pgx.Row) (workentry.WorkEntry, error) {
	var e workentry.WorkEntry
	err := row.Scan(
		&e.ID,
		&e.UserID,
		&e.Date,
		&e.WorkType,
		&e.Description,
		&e.TimeSpent,
		&e.Status,
		&e.ReviewedBy,
		&e.ReviewedAt,
		&e.CreatedAt,
	)
	return e, err
}

// Create implements workentry.WorkEntryRepository.
func (r *workEntryRepositoryImpl) Create(ctx context.Context, entry workentry.WorkEntry) (workentry.WorkEntry, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		INSERT INTO work_entries (
			id, user_id, date, work_type, description, time_spent, status
		) VALUES (
			$1, $2, $3, $4, $5, $6, $7
		) RETURNING ` + workEntryColumns

	created, err := scanWorkEntry(q.QueryRow(ctx, query,
		uuid.NewString(), entry.UserID, entry.Date, entry.WorkType,
		entry.Description, entry.TimeSpent, workentry.StatusPending,
	))
	if err != nil {
		if database.IsUniqueViolation(err, "work_entries_user_id_date_key") {
			return workentry.WorkEntry{}, workentry.ErrDuplicateEntry
		}
		return workentry.WorkEntry{}, err
	}
	return created, nil
}

// GetByID implements workentry.WorkEntryRepository.
func (r *workEntryRepositoryImpl) GetByID(ctx context.Context, id string) (workentry.WorkEntry, error) {
	q := GetQuerier(ctx, r.db)

	query := `SELECT ` + workEntryColumns + ` FROM work_entries WHERE id = $1`
	e, err := scanWorkEntry(q.QueryRow(ctx, query, id))
	if err != nil {
		if err == pgx.ErrNoRows {
			return workentry.WorkEntry{}, workentry.ErrEntryNotFound
		}
		return workentry.WorkEntry{}, err
	}
	return e, nil
}

// GetByUserID implements workentry.WorkEntryRepository.
func (r *workEntryRepositoryImpl) GetByUserID(ctx context.Context, userID string, startDate, endDate *string) ([]workentry.WorkEntry, error) {
	q := GetQuerier(ctx, r.db)

	conditions := []string{"user_id = $1"}
	args := []interface{}{userID}
	argIdx := 2

	if startDate != nil {
		conditions = append(conditions, fmt.Sprintf("date >= $%d", argIdx))
		args = append(args, *startDate)
		argIdx++
	}
	if endDate != nil {
		conditions = append(conditions, fmt.Sprintf("date <= $%d", argIdx))
		args = append(args, *endDate)
		argIdx++
	}

	query := `SELECT ` + workEntryColumns + ` FROM work_entries WHERE ` +
		strings.Join(conditions, " AND ") + ` ORDER BY date DESC`

	rows, err := q.Query(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var entries []workentry.WorkEntry
	for rows.Next() {
		e, err := scanWorkEntry(rows)
		if err != nil {
			return nil, err
		}
		entries = append(entries, e)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return entries, nil
}

// GetByFilters implements workentry.WorkEntryRepository.
func (r *workEntryRepositoryImpl) GetByFilters(ctx context.Context, filter workentry.EntryFilter) ([]workentry.WorkEntryWithUser, error) {
	q := GetQuerier(ctx, r.db)

	conditions := []string{"1=1"}
	args := []interface{}{}
	argIdx := 1

	if filter.UserID != nil {
		conditions = append(conditions, fmt.Sprintf("we.user_id = $%d", argIdx))
		args = append(args, *filter.UserID)
		argIdx++
	}
	if filter.Department != nil {
		conditions = append(conditions, fmt.Sprintf("u.department = $%d", argIdx))
		args = append(args, *filter.Department)
		argIdx++
	}
	if filter.Status != nil {
		conditions = append(conditions, fmt.Sprintf("we.status = $%d", argIdx))
		args = append(args, *filter.Status)
		argIdx++
	}
	if filter.StartDate != nil {
		conditions = append(conditions, fmt.Sprintf("we.date >= $%d", argIdx))
		args = append(args, *filter.StartDate)
		argIdx++
	}
	if filter.EndDate != nil {
		conditions = append(conditions, fmt.Sprintf("we.date <= $%d", argIdx))
		args = append(args, *filter.EndDate)
		argIdx++
	}

	query := `
		SELECT
			we.id, we.user_id, we.date::text, we.work_type, we.description,
			we.time_spent, we.status, we.reviewed_by, we.reviewed_at, we.created_at,
			u.id, u.employee_id, u.username, u.first_name, u.last_name,
			u.email, u.designation, u.department, u.role
		FROM work_entries we
		JOIN users u ON u.id = we.user_id
		WHERE ` + strings.Join(conditions, " AND ") + `
		ORDER BY we.date DESC, u.first_name`

	rows, err := q.Query(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var entries []workentry.WorkEntryWithUser
	for rows.Next() {
		var e workentry.WorkEntryWithUser
		err := rows.Scan(
			&e.ID, &e.UserID, &e.Date, &e.WorkType, &e.Description,
			&e.TimeSpent, &e.Status, &e.ReviewedBy, &e.ReviewedAt, &e.CreatedAt,
			&e.User.ID, &e.User.EmployeeID, &e.User.Username, &e.User.FirstName, &e.User.LastName,
			&e.User.Email, &e.User.Designation, &e.User.Department, &e.User.Role,
		)
		if err != nil {
			return nil, err
		}
		entries = append(entries, e)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return entries, nil
}

// ExistsForDate implements workentry.WorkEntryRepository.
func (r *workEntryRepositoryImpl) ExistsForDate(ctx context.Context, userID, date string) (bool, error) {
	q := GetQuerier(ctx, r.db)

	var exists bool
	err := q.QueryRow(ctx,
		`SELECT EXISTS (SELECT 1 FROM work_entries WHERE user_id = $1 AND date = $2)`,
		userID, date,
	).Scan(&exists)
	return exists, err
}

// DatesForUser implements workentry.WorkEntryRepository.
func (r *workEntryRepositoryImpl) DatesForUser(ctx context.Context, userID string) ([]string, error) {
	q := GetQuerier(ctx, r.db)

	rows, err := q.Query(ctx, `SELECT date::text FROM work_entries WHERE user_id = $1`, userID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var dates []string
	for rows.Next() {
		var date string
		if err := rows.Scan(&date); err != nil {
			return nil, err
		}
		dates = append(dates, date)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return dates, nil
}

// UpdateStatus implements workentry.WorkEntryRepository.
func (r *workEntryRepositoryImpl) UpdateStatus(ctx context.Context, id string, status workentry.Status, reviewedBy string) (workentry.WorkEntry, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		UPDATE work_entries
		SET status = $1, reviewed_by = $2, reviewed_at = NOW()
		WHERE id = $3
		RETURNING ` + workEntryColumns

	updated, err := scanWorkEntry(q.QueryRow(ctx, query, status, reviewedBy, id))
	if err != nil {
		if err == pgx.ErrNoRows {
			return workentry.WorkEntry{}, workentry.ErrEntryNotFound
		}
		return workentry.WorkEntry{}, err
	}
	return updated, nil
}

// Delete implements workentry.WorkEntryRepository.
func (r *workEntryRepositoryImpl) Delete(ctx context.Context, id string) error {
	q := GetQuerier(ctx, r.db)

	commandTag, err := q.Exec(ctx, `DELETE FROM work_entries WHERE id = $1`, id)
	if err != nil {
		return err
	}
	if commandTag.RowsAffected() != 1 {
		return workentry.ErrEntryNotFound
	}
	return nil
}
