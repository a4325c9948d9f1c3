package workentry

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

// WorkTypes are the categories a day of work can be logged against.
var WorkTypes = []string{"Task", "Project", "Meeting", "Skill-up", "Partial Leave"}

// WorkEntry is one calendar day of logged work for one user. Dates travel
// as "YYYY-MM-DD" strings and hours as decimal text, matching the wire
// format the dashboards consume.
type WorkEntry struct {
	ID          string     `json:"id"`
	UserID      string     `json:"user_id"`
	Date        string     `json:"date"`
	WorkType    string     `json:"work_type"`
	Description string     `json:"description"`
	TimeSpent   string     `json:"time_spent"`
	Status      Status     `json:"status"`
	ReviewedBy  *string    `json:"reviewed_by,omitempty"`
	ReviewedAt  *time.Time `json:"reviewed_at,omitempty"`
	CreatedAt   time.Time  `json:"created_at"`
}

// WorkEntryWithUser joins an entry to its owner's public profile for
// reviewer-facing listings and the CSV export.
type WorkEntryWithUser struct {
	WorkEntry
	User user.PublicUser `json:"user"`
}

// DailyWorkReport is computed on demand, never persisted.
type DailyWorkReport struct {
	Date       string      `json:"date"`
	Entries    []WorkEntry `json:"entries"`
	TotalHours float64     `json:"total_hours"`
}
