package postgresql

import (
	"context"

	"github.com/fdestech/timetrack-backend-go/internal/domain/user"
	"github.com/fdestech/timetrack-backend-go/internal/domain/workhour"
	"github.com/fdestech/timetrack-backend-go/internal/pkg/database"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
)

// requested_date is cast to text so it scans straight into the entity's
// string field.
const workHourRequestColumns = `id, employee_id, requested_date::text, reason, status, manager_id, manager_comments, requested_at, reviewed_at`

type workHourRequestRepositoryImpl struct {
	db *database.DB
}

func NewWorkHourRequestRepository(db *database.DB) workhour.WorkHourRequestRepository {
	return &workHourRequestRepositoryImpl{db: db}
}

func scanWorkHourRequest(row pgx.Row) (workhour.WorkHourRequest, error) {
	var req workhour.WorkHourRequest
	err := row.Scan(
		&req.ID,
		&req.EmployeeID,
		&req.RequestedDate,
		&req.Reason,
		&req.Status,
		&req.ManagerID,
		&req.ManagerComments,
		&req.RequestedAt,
		&req.ReviewedAt,
	)
	return req, err
}

// Create implements workhour.WorkHourRequestRepository.
func (r *workHourRequestRepositoryImpl) Create(ctx context.Context, request workhour.WorkHourRequest) (workhour.WorkHourRequest, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		INSERT INTO work_hour_requests (
			id, employee_id, requested_date, reason, status
		) VALUES (
			$1, $2, $3, $4, $5
		) RETURNING ` + workHourRequestColumns

	created, err := scanWorkHourRequest(q.QueryRow(ctx, query,
		uuid.NewString(), request.EmployeeID, request.RequestedDate, request.Reason, workhour.StatusPending,
	))
	if err != nil {
		if database.IsUniqueViolation(err, "work_hour_requests_pending_employee_date_idx") {
			return workhour.WorkHourRequest{}, workhour.ErrDuplicatePendingRequest
		}
		return workhour.WorkHourRequest{}, err
	}
	return created, nil
}

// joinedRequestColumns selects a request plus the requesting employee's
// profile and, when the request has been reviewed, the manager's profile.
const joinedRequestColumns = `
	whr.id, whr.employee_id, whr.requested_date::text, whr.reason, whr.status,
	whr.manager_id, whr.manager_comments, whr.requested_at, whr.reviewed_at,
	e.id, e.employee_id, e.username, e.first_name, e.last_name,
	e.email, e.designation, e.department, e.role,
	m.id, m.employee_id, m.username, m.first_name, m.last_name,
	m.email, m.designation, m.department, m.role`

func scanJoinedRequest(row pgx.Row) (workhour.WorkHourRequestWithUser, error) {
	var req workhour.WorkHourRequestWithUser
	// Manager columns come from a LEFT JOIN and are NULL until reviewed.
	var mID, mEmployeeID, mUsername, mFirstName, mLastName *string
	var mEmail, mDesignation, mDepartment, mRole *string

	err := row.Scan(
		&req.ID, &req.EmployeeID, &req.RequestedDate, &req.Reason, &req.Status,
		&req.ManagerID, &req.ManagerComments, &req.RequestedAt, &req.ReviewedAt,
		&req.Employee.ID, &req.Employee.EmployeeID, &req.Employee.Username, &req.Employee.FirstName, &req.Employee.LastName,
		&req.Employee.Email, &req.Employee.Designation, &req.Employee.Department, &req.Employee.Role,
		&mID, &mEmployeeID, &mUsername, &mFirstName, &mLastName,
		&mEmail, &mDesignation, &mDepartment, &mRole,
	)
	if err != nil {
		return workhour.WorkHourRequestWithUser{}, err
	}

	if mID != nil {
		req.Manager = &user.PublicUser{
			ID:          *mID,
			EmployeeID:  *mEmployeeID,
			Username:    *mUsername,
			FirstName:   *mFirstName,
			LastName:    *mLastName,
			Email:       *mEmail,
			Designation: *mDesignation,
			Department:  *mDepartment,
			Role:        user.Role(*mRole),
		}
	}
	return req, nil
}

// GetByID implements workhour.WorkHourRequestRepository.
func (r *workHourRequestRepositoryImpl) GetByID(ctx context.Context, id string) (workhour.WorkHourRequestWithUser, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT ` + joinedRequestColumns + `
		FROM work_hour_requests whr
		JOIN users e ON e.id = whr.employee_id
		LEFT JOIN users m ON m.id = whr.manager_id
		WHERE whr.id = $1`

	req, err := scanJoinedRequest(q.QueryRow(ctx, query, id))
	if err != nil {
		if err == pgx.ErrNoRows {
			return workhour.WorkHourRequestWithUser{}, workhour.ErrRequestNotFound
		}
		return workhour.WorkHourRequestWithUser{}, err
	}
	return req, nil
}

// GetByEmployeeID implements workhour.WorkHourRequestRepository.
func (r *workHourRequestRepositoryImpl) GetByEmployeeID(ctx context.Context, employeeID string) ([]workhour.WorkHourRequest, error) {
	q := GetQuerier(ctx, r.db)

	query := `SELECT ` + workHourRequestColumns + `
		FROM work_hour_requests
		WHERE employee_id = $1
		ORDER BY requested_at DESC`

	rows, err := q.Query(ctx, query, employeeID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var requests []workhour.WorkHourRequest
	for rows.Next() {
		req, err := scanWorkHourRequest(rows)
		if err != nil {
			return nil, err
		}
		requests = append(requests, req)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return requests, nil
}

// GetPending implements workhour.WorkHourRequestRepository.
func (r *workHourRequestRepositoryImpl) GetPending(ctx context.Context) ([]workhour.WorkHourRequestWithUser, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT ` + joinedRequestColumns + `
		FROM work_hour_requests whr
		JOIN users e ON e.id = whr.employee_id
		LEFT JOIN users m ON m.id = whr.manager_id
		WHERE whr.status = 'pending'
		ORDER BY whr.requested_at DESC`

	rows, err := q.Query(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var requests []workhour.WorkHourRequestWithUser
	for rows.Next() {
		req, err := scanJoinedRequest(rows)
		if err != nil {
			return nil, err
		}
		requests = append(requests, req)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return requests, nil
}

// HasPendingForDate implements workhour.WorkHourRequestRepository.
func (r *workHourRequestRepositoryImpl) HasPendingForDate(ctx context.Context, employeeID, date string) (bool, error) {
	q := GetQuerier(ctx, r.db)

	var exists bool
	err := q.QueryRow(ctx,
		`SELECT EXISTS (
			SELECT 1 FROM work_hour_requests
			WHERE employee_id = $1 AND requested_date = $2 AND status = 'pending'
		)`,
		employeeID, date,
	).Scan(&exists)
	return exists, err
}

// ApprovedDates implements workhour.WorkHourRequestRepository.
func (r *workHourRequestRepositoryImpl) ApprovedDates(ctx context.Context, employeeID string) ([]string, error) {
	q := GetQuerier(ctx, r.db)

	rows, err := q.Query(ctx,
		`SELECT requested_date::text FROM work_hour_requests
		WHERE employee_id = $1 AND status = 'approved'
		ORDER BY requested_date`,
		employeeID,
	)
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

// UpdateStatus implements workhour.WorkHourRequestRepository.
func (r *workHourRequestRepositoryImpl) UpdateStatus(ctx context.Context, id string, status workhour.Status, managerID string, comments *string) (workhour.WorkHourRequest, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		UPDATE work_hour_requests
		SET status = $1, manager_id = $2, manager_comments = $3, reviewed_at = NOW()
		WHERE id = $4
		RETURNING ` + workHourRequestColumns

	updated, err := scanWorkHourRequest(q.QueryRow(ctx, query, status, managerID, comments, id))
	if err != nil {
		if err == pgx.ErrNoRows {
			return workhour.WorkHourRequest{}, workhour.ErrRequestNotFound
		}
		return workhour.WorkHourRequest{}, err
	}
	return updated, nil
}
