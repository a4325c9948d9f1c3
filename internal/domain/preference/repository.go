package preference

import (
	"context"
)

// ManagerPreferencesRepository - interface for the manager_preferences table
type ManagerPreferencesRepository interface {
	// GetByManagerID returns the stored preferences, or ok=false when the
	// manager has never saved any.
	GetByManagerID(ctx context.Context, managerID string) (ManagerPreferences, bool, error)
	// Upsert inserts or replaces the employee id list for a manager,
	// bumping updated_at on replace.
	Upsert(ctx context.Context, managerID string, employeeIDs []string) (ManagerPreferences, error)
}
