package workhour

import (
	"time"

	"github.com/fdestech/timetrack-backend-go/internal/domain/user"
)

type Status string

const (
	StatusPending  Status = "pending"
	StatusApproved Status = "approved"
	StatusRejected Status = "rejected"
)

// WorkHourRequest is an employee's ask to unlock a past date for late
// entry. An approved request's date is a one-time allowance: once a work
// entry is filed for it, the date stops being available even though the
// request row stays approved.
type WorkHourRequest struct {
	ID              string     `json:"id"`
	EmployeeID      string     `json:"employee_id"`
	RequestedDate   string     `json:"requested_date"`
	Reason          string     `json:"reason"`
	Status          Status     `json:"status"`
	ManagerID       *string    `json:"manager_id,omitempty"`
	ManagerComments *string    `json:"manager_comments,omitempty"`
	RequestedAt     time.Time  `json:"requested_at"`
	ReviewedAt      *time.Time `json:"reviewed_at,omitempty"`
}

// WorkHourRequestWithUser joins a request to the requesting employee's
// public profile for manager-facing listings.
type WorkHourRequestWithUser struct {
	WorkHourRequest
	Employee user.PublicUser  `json:"employee"`
	Manager  *user.PublicUser `json:"manager,omitempty"`
}
