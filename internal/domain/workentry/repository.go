package workentry

import (
	"context"
)

// WorkEntryRepository - interface for the work_entries table
type WorkEntryRepository interface {
	Create(ctx context.Context, entry WorkEntry) (WorkEntry, error)
	GetByID(ctx context.Context, id string) (WorkEntry, error)
	GetByUserID(ctx context.Context, userID string, startDate, endDate *string) ([]WorkEntry, error)
	GetByFilters(ctx context.Context, filter EntryFilter) ([]WorkEntryWithUser, error)
	ExistsForDate(ctx context.Context, userID, date string) (bool, error)
	DatesForUser(ctx context.Context, userID string) ([]string, error)
	UpdateStatus(ctx context.Context, id string, status Status, reviewedBy string) (WorkEntry, error)
	Delete(ctx context.Context, id string) error
}
