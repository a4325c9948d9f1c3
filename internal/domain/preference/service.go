package preference

import (
	"context"
)

// ManagerPreferencesService defines business logic for the per-manager
// report view selection.
type ManagerPreferencesService interface {
	// GetPreferences returns the manager's saved selection, or an empty
	// selection when none was ever saved.
	GetPreferences(ctx context.Context, managerID string) (ManagerPreferences, error)

	// SavePreferences replaces the manager's selection wholesale.
	SavePreferences(ctx context.Context, managerID string, req SavePreferencesRequest) (ManagerPreferences, error)
}
