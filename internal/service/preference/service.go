package preference

import (
	"context"

	"github.com/fdestech/timetrack-backend-go/internal/domain/preference"
)

type ManagerPreferencesServiceImpl struct {
	preference.ManagerPreferencesRepository
}

func NewManagerPreferencesService(preferencesRepository preference.ManagerPreferencesRepository) preference.ManagerPreferencesService {
	return &ManagerPreferencesServiceImpl{
		ManagerPreferencesRepository: preferencesRepository,
	}
}

// GetPreferences implements preference.ManagerPreferencesService. A
// manager who never saved a selection gets an empty one back, not an
// error.
func (s *ManagerPreferencesServiceImpl) GetPreferences(ctx context.Context, managerID string) (preference.ManagerPreferences, error) {
	prefs, found, err := s.ManagerPreferencesRepository.GetByManagerID(ctx, managerID)
	if err != nil {
		return preference.ManagerPreferences{}, err
	}
	if !found {
		return preference.ManagerPreferences{
			ManagerID:           managerID,
			SelectedEmployeeIDs: []string{},
		}, nil
	}
	return prefs, nil
}

// SavePreferences implements preference.ManagerPreferencesService.
func (s *ManagerPreferencesServiceImpl) SavePreferences(ctx context.Context, managerID string, req preference.SavePreferencesRequest) (preference.ManagerPreferences, error) {
	return s.ManagerPreferencesRepository.Upsert(ctx, managerID, req.SelectedEmployeeIDs)
}
