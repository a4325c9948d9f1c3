package workentry

import (
	"context"
	"io"
)

// WorkEntryService defines business logic for the work-entry ledger.
type WorkEntryService interface {
	// CreateEntry files one day of work. The date must be today or a date
	// unlocked by an approved work-hour request that has no entry yet.
	CreateEntry(ctx context.Context, req CreateWorkEntryRequest) (WorkEntry, error)

	// GetUserEntries lists one user's own entries, optionally bounded by
	// an inclusive date range.
	GetUserEntries(ctx context.Context, userID string, startDate, endDate *string) ([]WorkEntry, error)

	// GetEntries lists entries across users for reviewers, joined to the
	// owner's profile.
	GetEntries(ctx context.Context, filter EntryFilter) ([]WorkEntryWithUser, error)

	// ReviewEntry approves or rejects a pending entry. Entries already
	// reviewed are refused.
	ReviewEntry(ctx context.Context, id string, reviewerID string, req UpdateStatusRequest) (WorkEntry, error)

	// DeleteEntry removes an entry regardless of status.
	DeleteEntry(ctx context.Context, id string) error

	// DailyReport aggregates one user's entries for a single date.
	DailyReport(ctx context.Context, userID, date string) (DailyWorkReport, error)

	// ExportCSV streams the filtered entries as a CSV document.
	ExportCSV(ctx context.Context, filter EntryFilter, w io.Writer) error
}
