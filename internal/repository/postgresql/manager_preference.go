package postgresql

import (
	"context"
	"encoding/json"

	"github.com/fdestech/timetrack-backend-go/internal/domain/preference"
	"github.com/fdestech/timetrack-backend-go/internal/pkg/database"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
)

type managerPreferencesRepositoryImpl struct {
	db *database.DB
}

func NewManagerPreferencesRepository(db *database.DB) preference.ManagerPreferencesRepository {
	return &managerPreferencesRepositoryImpl{db: db}
}

// GetByManagerID implements preference.ManagerPreferencesRepository.
func (r *managerPreferencesRepositoryImpl) GetByManagerID(ctx context.Context, managerID string) (preference.ManagerPreferences, bool, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT id, manager_id, selected_employee_ids, created_at, updated_at
		FROM manager_preferences
		WHERE manager_id = $1`

	var prefs preference.ManagerPreferences
	var rawIDs []byte
	err := q.QueryRow(ctx, query, managerID).Scan(
		&prefs.ID,
		&prefs.ManagerID,
		&rawIDs,
		&prefs.CreatedAt,
		&prefs.UpdatedAt,
	)
	if err != nil {
		if err == pgx.ErrNoRows {
			return preference.ManagerPreferences{}, false, nil
		}
		return preference.ManagerPreferences{}, false, err
	}

	if err := json.Unmarshal(rawIDs, &prefs.SelectedEmployeeIDs); err != nil {
		return preference.ManagerPreferences{}, false, err
	}
	return prefs, true, nil
}

// Upsert implements preference.ManagerPreferencesRepository.
func (r *managerPreferencesRepositoryImpl) Upsert(ctx context.Context, managerID string, employeeIDs []string) (preference.ManagerPreferences, error) {
	q := GetQuerier(ctx, r.db)

	if employeeIDs == nil {
		employeeIDs = []string{}
	}
	rawIDs, err := json.Marshal(employeeIDs)
	if err != nil {
		return preference.ManagerPreferences{}, err
	}

	query := `
		INSERT INTO manager_preferences (id, manager_id, selected_employee_ids)
		VALUES ($1, $2, $3)
		ON CONFLICT (manager_id) DO UPDATE
		SET selected_employee_ids = EXCLUDED.selected_employee_ids, updated_at = NOW()
		RETURNING id, manager_id, selected_employee_ids, created_at, updated_at`

	var prefs preference.ManagerPreferences
	var storedIDs []byte
	err = q.QueryRow(ctx, query, uuid.NewString(), managerID, rawIDs).Scan(
		&prefs.ID,
		&prefs.ManagerID,
		&storedIDs,
		&prefs.CreatedAt,
		&prefs.UpdatedAt,
	)
	if err != nil {
		return preference.ManagerPreferences{}, err
	}

	if err := json.Unmarshal(storedIDs, &prefs.SelectedEmployeeIDs); err != nil {
		return preference.ManagerPreferences{}, err
	}
	return prefs, nil
}
