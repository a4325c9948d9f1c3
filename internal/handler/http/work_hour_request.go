package http

import (
	"encoding/json"
	"log/slog"
	"net/http"

	"github.com/fdestech/timetrack-backend-go/internal/domain/user"
	"github.com/fdestech/timetrack-backend-go/internal/domain/workhour"
	"github.com/fdestech/timetrack-backend-go/internal/handler/http/response"
	"github.com/go-chi/chi/v5"
)

type WorkHourRequestHandler interface {
	Create(w http.ResponseWriter, r *http.Request)
	ListMine(w http.ResponseWriter, r *http.Request)
	ListPending(w http.ResponseWriter, r *http.Request)
	GetByID(w http.ResponseWriter, r *http.Request)
	Review(w http.ResponseWriter, r *http.Request)
	AvailableDates(w http.ResponseWriter, r *http.Request)
}

type WorkHourRequestHandlerImpl struct {
	requestService workhour.WorkHourRequestService
}

func NewWorkHourRequestHandler(requestService workhour.WorkHourRequestService) WorkHourRequestHandler {
	return &WorkHourRequestHandlerImpl{
		requestService: requestService,
	}
}

// Create implements WorkHourRequestHandler.
func (h *WorkHourRequestHandlerImpl) Create(w http.ResponseWriter, r *http.Request) {
	employeeID, _, err := principal(r)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	var createReq workhour.CreateRequestRequest
	if err := json.NewDecoder(r.Body).Decode(&createReq); err != nil {
		slog.Error("Create work hour request decode error", "error", err)
		response.BadRequest(w, "Invalid request format", nil)
		return
	}
	createReq.EmployeeID = employeeID

	if err := createReq.Validate(); err != nil {
		slog.Error("Create work hour request validate error", "error", err)
		response.HandleError(w, err)
		return
	}

	created, err := h.requestService.CreateRequest(r.Context(), createReq)
	if err != nil {
		slog.Error("Create work hour request service error", "error", err)
		response.HandleError(w, err)
		return
	}

	response.Created(w, "Work hour request submitted successfully", created)
}

// ListMine implements WorkHourRequestHandler.
func (h *WorkHourRequestHandlerImpl) ListMine(w http.ResponseWriter, r *http.Request) {
	employeeID, _, err := principal(r)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	requests, err := h.requestService.GetMyRequests(r.Context(), employeeID)
	if err != nil {
		slog.Error("List my work hour requests service error", "error", err)
		response.HandleError(w, err)
		return
	}

	response.Success(w, requests)
}

// ListPending implements WorkHourRequestHandler.
func (h *WorkHourRequestHandlerImpl) ListPending(w http.ResponseWriter, r *http.Request) {
	requests, err := h.requestService.GetPendingRequests(r.Context())
	if err != nil {
		slog.Error("List pending work hour requests service error", "error", err)
		response.HandleError(w, err)
		return
	}

	response.Success(w, requests)
}

// GetByID implements WorkHourRequestHandler. Employees may only read
// their own requests; managers and hr may read anyone's.
func (h *WorkHourRequestHandlerImpl) GetByID(w http.ResponseWriter, r *http.Request) {
	actorID, role, err := principal(r)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	request, err := h.requestService.GetRequest(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		slog.Error("Get work hour request service error", "error", err)
		response.HandleError(w, err)
		return
	}

	if request.EmployeeID != actorID && role != user.RoleHR && role != user.RoleManager {
		response.HandleError(w, workhour.ErrAccessDenied)
		return
	}

	response.Success(w, request)
}

// Review implements WorkHourRequestHandler.
func (h *WorkHourRequestHandlerImpl) Review(w http.ResponseWriter, r *http.Request) {
	managerID, _, err := principal(r)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	var reviewReq workhour.ReviewRequestRequest
	if err := json.NewDecoder(r.Body).Decode(&reviewReq); err != nil {
		slog.Error("Review work hour request decode error", "error", err)
		response.BadRequest(w, "Invalid request format", nil)
		return
	}

	if err := reviewReq.Validate(); err != nil {
		slog.Error("Review work hour request validate error", "error", err)
		response.HandleError(w, err)
		return
	}

	updated, err := h.requestService.ReviewRequest(r.Context(), chi.URLParam(r, "id"), managerID, reviewReq)
	if err != nil {
		slog.Error("Review work hour request service error", "error", err)
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMessage(w, "Work hour request reviewed successfully", updated)
}

// AvailableDates implements WorkHourRequestHandler.
func (h *WorkHourRequestHandlerImpl) AvailableDates(w http.ResponseWriter, r *http.Request) {
	employeeID, _, err := principal(r)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	dates, err := h.requestService.AvailableDates(r.Context(), employeeID)
	if err != nil {
		slog.Error("Available dates service error", "error", err)
		response.HandleError(w, err)
		return
	}

	response.Success(w, dates)
}
