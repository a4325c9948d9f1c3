package workhour

import (
	"context"
)

// WorkHourRequestService defines business logic for unlocking past dates.
type WorkHourRequestService interface {
	// CreateRequest files an ask for a strictly past date. Duplicate
	// pending requests for the same date are refused, as are dates that
	// already carry a work entry.
	CreateRequest(ctx context.Context, req CreateRequestRequest) (WorkHourRequest, error)

	// GetMyRequests lists the employee's own requests, newest first.
	GetMyRequests(ctx context.Context, employeeID string) ([]WorkHourRequest, error)

	// GetRequest retrieves one request joined to the requesting employee.
	GetRequest(ctx context.Context, id string) (WorkHourRequestWithUser, error)

	// GetPendingRequests lists every pending request for manager review.
	GetPendingRequests(ctx context.Context) ([]WorkHourRequestWithUser, error)

	// ReviewRequest approves or rejects a pending request. Requests
	// already processed are refused.
	ReviewRequest(ctx context.Context, id string, managerID string, req ReviewRequestRequest) (WorkHourRequest, error)

	// AvailableDates returns the approved dates the employee has not yet
	// filed an entry for.
	AvailableDates(ctx context.Context, employeeID string) ([]string, error)
}
