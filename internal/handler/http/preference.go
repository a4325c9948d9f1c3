package http

import (
	"encoding/json"
	"log/slog"
	"net/http"

	"github.com/fdestech/timetrack-backend-go/internal/domain/preference"
	"github.com/fdestech/timetrack-backend-go/internal/handler/http/response"
)

type PreferenceHandler interface {
	Get(w http.ResponseWriter, r *http.Request)
	Save(w http.ResponseWriter, r *http.Request)
}

type PreferenceHandlerImpl struct {
	preferencesService preference.ManagerPreferencesService
}

func NewPreferenceHandler(preferencesService preference.ManagerPreferencesService) PreferenceHandler {
	return &PreferenceHandlerImpl{
		preferencesService: preferencesService,
	}
}

// Get implements PreferenceHandler.
func (h *PreferenceHandlerImpl) Get(w http.ResponseWriter, r *http.Request) {
	managerID, _, err := principal(r)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	prefs, err := h.preferencesService.GetPreferences(r.Context(), managerID)
	if err != nil {
		slog.Error("Get manager preferences service error", "error", err)
		response.HandleError(w, err)
		return
	}

	response.Success(w, prefs)
}

// Save implements PreferenceHandler.
func (h *PreferenceHandlerImpl) Save(w http.ResponseWriter, r *http.Request) {
	managerID, _, err := principal(r)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	var saveReq preference.SavePreferencesRequest
	if err := json.NewDecoder(r.Body).Decode(&saveReq); err != nil {
		slog.Error("Save manager preferences decode error", "error", err)
		response.BadRequest(w, "Invalid request format", nil)
		return
	}

	if err := saveReq.Validate(); err != nil {
		slog.Error("Save manager preferences validate error", "error", err)
		response.HandleError(w, err)
		return
	}

	prefs, err := h.preferencesService.SavePreferences(r.Context(), managerID, saveReq)
	if err != nil {
		slog.Error("Save manager preferences service error", "error", err)
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMessage(w, "Preferences saved successfully", prefs)
}
