package http

import (
	"encoding/json"
	"fmt"
	"log/slog"
	"net/http"
	"time"

	"github.com/fdestech/timetrack-backend-go/internal/domain/user"
	"github.com/fdestech/timetrack-backend-go/internal/domain/workentry"
	"github.com/fdestech/timetrack-backend-go/internal/domain/workhour"
	"github.com/fdestech/timetrack-backend-go/internal/handler/http/response"
	"github.com/go-chi/chi/v5"
)

type WorkEntryHandler interface {
	Create(w http.ResponseWriter, r *http.Request)
	ListMine(w http.ResponseWriter, r *http.Request)
	List(w http.ResponseWriter, r *http.Request)
	Export(w http.ResponseWriter, r *http.Request)
	UpdateStatus(w http.ResponseWriter, r *http.Request)
	Delete(w http.ResponseWriter, r *http.Request)
	DailyReport(w http.ResponseWriter, r *http.Request)
}

type WorkEntryHandlerImpl struct {
	entryService workentry.WorkEntryService
}

func NewWorkEntryHandler(entryService workentry.WorkEntryService) WorkEntryHandler {
	return &WorkEntryHandlerImpl{
		entryService: entryService,
	}
}

// queryParam returns a pointer to the query value, nil when absent.
func queryParam(r *http.Request, key string) *string {
	value := r.URL.Query().Get(key)
	if value == "" {
		return nil
	}
	return &value
}

// Create implements WorkEntryHandler.
func (h *WorkEntryHandlerImpl) Create(w http.ResponseWriter, r *http.Request) {
	userID, _, err := principal(r)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	var createReq workentry.CreateWorkEntryRequest
	if err := json.NewDecoder(r.Body).Decode(&createReq); err != nil {
		slog.Error("Create work entry decode error", "error", err)
		response.BadRequest(w, "Invalid request format", nil)
		return
	}
	createReq.UserID = userID

	if err := createReq.Validate(); err != nil {
		slog.Error("Create work entry validate error", "error", err)
		response.HandleError(w, err)
		return
	}

	created, err := h.entryService.CreateEntry(r.Context(), createReq)
	if err != nil {
		slog.Error("Create work entry service error", "error", err)
		response.HandleError(w, err)
		return
	}

	response.Created(w, "Work entry created successfully", created)
}

// ListMine implements WorkEntryHandler.
func (h *WorkEntryHandlerImpl) ListMine(w http.ResponseWriter, r *http.Request) {
	userID, _, err := principal(r)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	entries, err := h.entryService.GetUserEntries(r.Context(), userID, queryParam(r, "start_date"), queryParam(r, "end_date"))
	if err != nil {
		slog.Error("List my work entries service error", "error", err)
		response.HandleError(w, err)
		return
	}

	response.Success(w, entries)
}

func filterFromQuery(r *http.Request) workentry.EntryFilter {
	return workentry.EntryFilter{
		UserID:     queryParam(r, "user_id"),
		Department: queryParam(r, "department"),
		Status:     queryParam(r, "status"),
		StartDate:  queryParam(r, "start_date"),
		EndDate:    queryParam(r, "end_date"),
	}
}

// List implements WorkEntryHandler.
func (h *WorkEntryHandlerImpl) List(w http.ResponseWriter, r *http.Request) {
	filter := filterFromQuery(r)
	if err := filter.Validate(); err != nil {
		slog.Error("List work entries validate error", "error", err)
		response.HandleError(w, err)
		return
	}

	entries, err := h.entryService.GetEntries(r.Context(), filter)
	if err != nil {
		slog.Error("List work entries service error", "error", err)
		response.HandleError(w, err)
		return
	}

	response.Success(w, entries)
}

// Export implements WorkEntryHandler.
func (h *WorkEntryHandlerImpl) Export(w http.ResponseWriter, r *http.Request) {
	filter := filterFromQuery(r)
	if err := filter.Validate(); err != nil {
		slog.Error("Export work entries validate error", "error", err)
		response.HandleError(w, err)
		return
	}

	filename := fmt.Sprintf("work-entries-%s.csv", time.Now().Format("2006-01-02"))
	w.Header().Set("Content-Type", "text/csv")
	w.Header().Set("Content-Disposition", fmt.Sprintf("attachment; filename=%q", filename))

	if err := h.entryService.ExportCSV(r.Context(), filter, w); err != nil {
		slog.Error("Export work entries service error", "error", err)
		return
	}
}

// UpdateStatus implements WorkEntryHandler.
func (h *WorkEntryHandlerImpl) UpdateStatus(w http.ResponseWriter, r *http.Request) {
	reviewerID, _, err := principal(r)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	var statusReq workentry.UpdateStatusRequest
	if err := json.NewDecoder(r.Body).Decode(&statusReq); err != nil {
		slog.Error("Update work entry status decode error", "error", err)
		response.BadRequest(w, "Invalid request format", nil)
		return
	}

	if err := statusReq.Validate(); err != nil {
		slog.Error("Update work entry status validate error", "error", err)
		response.HandleError(w, err)
		return
	}

	updated, err := h.entryService.ReviewEntry(r.Context(), chi.URLParam(r, "id"), reviewerID, statusReq)
	if err != nil {
		slog.Error("Update work entry status service error", "error", err)
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMessage(w, "Work entry status updated successfully", updated)
}

// Delete implements WorkEntryHandler.
func (h *WorkEntryHandlerImpl) Delete(w http.ResponseWriter, r *http.Request) {
	if err := h.entryService.DeleteEntry(r.Context(), chi.URLParam(r, "id")); err != nil {
		slog.Error("Delete work entry service error", "error", err)
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMessage(w, "Work entry deleted successfully", nil)
}

// DailyReport implements WorkEntryHandler. Employees may only read their
// own report; reviewers may read anyone's.
func (h *WorkEntryHandlerImpl) DailyReport(w http.ResponseWriter, r *http.Request) {
	actorID, role, err := principal(r)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	targetID := chi.URLParam(r, "userId")
	if targetID != actorID && role != user.RoleHR && role != user.RoleManager {
		response.HandleError(w, workhour.ErrAccessDenied)
		return
	}

	report, err := h.entryService.DailyReport(r.Context(), targetID, chi.URLParam(r, "date"))
	if err != nil {
		slog.Error("Daily report service error", "error", err)
		response.HandleError(w, err)
		return
	}

	response.Success(w, report)
}
