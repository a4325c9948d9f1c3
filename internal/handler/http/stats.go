package http

import (
	"log/slog"
	"net/http"

	"github.com/fdestech/timetrack-backend-go/internal/domain/stats"
	"github.com/fdestech/timetrack-backend-go/internal/domain/user"
	"github.com/fdestech/timetrack-backend-go/internal/handler/http/response"
)

type StatsHandler interface {
	Stats(w http.ResponseWriter, r *http.Request)
	ManagerDashboard(w http.ResponseWriter, r *http.Request)
}

type StatsHandlerImpl struct {
	statsService stats.StatsService
}

func NewStatsHandler(statsService stats.StatsService) StatsHandler {
	return &StatsHandlerImpl{
		statsService: statsService,
	}
}

// Stats implements StatsHandler. The response shape branches on role:
// reviewers get the organization rollup, employees get their own
// today/week/month totals.
func (h *StatsHandlerImpl) Stats(w http.ResponseWriter, r *http.Request) {
	userID, role, err := principal(r)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	if role == user.RoleHR || role == user.RoleManager {
		orgStats, err := h.statsService.OrgStats(r.Context())
		if err != nil {
			slog.Error("Org stats service error", "error", err)
			response.HandleError(w, err)
			return
		}
		response.Success(w, orgStats)
		return
	}

	employeeStats, err := h.statsService.EmployeeStats(r.Context(), userID)
	if err != nil {
		slog.Error("Employee stats service error", "error", err)
		response.HandleError(w, err)
		return
	}
	response.Success(w, employeeStats)
}

// ManagerDashboard implements StatsHandler.
func (h *StatsHandlerImpl) ManagerDashboard(w http.ResponseWriter, r *http.Request) {
	dashboard, err := h.statsService.ManagerDashboard(r.Context())
	if err != nil {
		slog.Error("Manager dashboard service error", "error", err)
		response.HandleError(w, err)
		return
	}

	response.Success(w, dashboard)
}
