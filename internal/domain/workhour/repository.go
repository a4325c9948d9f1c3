package workhour

import (
	"context"
)

// WorkHourRequestRepository - interface for the work_hour_requests table
type WorkHourRequestRepository interface {
	Create(ctx context.Context, request WorkHourRequest) (WorkHourRequest, error)
	GetByID(ctx context.Context, id string) (WorkHourRequestWithUser, error)
	GetByEmployeeID(ctx context.Context, employeeID string) ([]WorkHourRequest, error)
	GetPending(ctx context.Context) ([]WorkHourRequestWithUser, error)
	HasPendingForDate(ctx context.Context, employeeID, date string) (bool, error)
	ApprovedDates(ctx context.Context, employeeID string) ([]string, error)
	UpdateStatus(ctx context.Context, id string, status Status, managerID string, comments *string) (WorkHourRequest, error)
}
