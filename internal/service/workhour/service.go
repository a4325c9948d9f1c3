package workhour

import (
	"context"
	"fmt"

	"github.com/fdestech/timetrack-backend-go/internal/domain/workentry"
	"github.com/fdestech/timetrack-backend-go/internal/domain/workhour"
	"github.com/fdestech/timetrack-backend-go/internal/pkg/validator"
)

type WorkHourRequestServiceImpl struct {
	workhour.WorkHourRequestRepository
	workentry.WorkEntryRepository
}

func NewWorkHourRequestService(requestRepository workhour.WorkHourRequestRepository, entryRepository workentry.WorkEntryRepository) workhour.WorkHourRequestService {
	return &WorkHourRequestServiceImpl{
		WorkHourRequestRepository: requestRepository,
		WorkEntryRepository:       entryRepository,
	}
}

// CreateRequest implements workhour.WorkHourRequestService.
func (s *WorkHourRequestServiceImpl) CreateRequest(ctx context.Context, req workhour.CreateRequestRequest) (workhour.WorkHourRequest, error) {
	requestedDate, ok := validator.IsValidDate(req.RequestedDate)
	if !ok {
		return workhour.WorkHourRequest{}, workhour.ErrDateNotInPast
	}

	today, _ := validator.IsValidDate(validator.Today())
	if !requestedDate.Before(today) {
		return workhour.WorkHourRequest{}, workhour.ErrDateNotInPast
	}

	hasEntry, err := s.WorkEntryRepository.ExistsForDate(ctx, req.EmployeeID, req.RequestedDate)
	if err != nil {
		return workhour.WorkHourRequest{}, fmt.Errorf("failed to check existing entry: %w", err)
	}
	if hasEntry {
		return workhour.WorkHourRequest{}, workhour.ErrDateAlreadyLogged
	}

	hasPending, err := s.WorkHourRequestRepository.HasPendingForDate(ctx, req.EmployeeID, req.RequestedDate)
	if err != nil {
		return workhour.WorkHourRequest{}, fmt.Errorf("failed to check pending requests: %w", err)
	}
	if hasPending {
		return workhour.WorkHourRequest{}, workhour.ErrDuplicatePendingRequest
	}

	// The partial unique index on pending (employee_id, requested_date)
	// backstops the check against concurrent submissions.
	return s.WorkHourRequestRepository.Create(ctx, workhour.WorkHourRequest{
		EmployeeID:    req.EmployeeID,
		RequestedDate: req.RequestedDate,
		Reason:        req.Reason,
	})
}

// GetMyRequests implements workhour.WorkHourRequestService.
func (s *WorkHourRequestServiceImpl) GetMyRequests(ctx context.Context, employeeID string) ([]workhour.WorkHourRequest, error) {
	requests, err := s.WorkHourRequestRepository.GetByEmployeeID(ctx, employeeID)
	if err != nil {
		return nil, err
	}
	if requests == nil {
		requests = []workhour.WorkHourRequest{}
	}
	return requests, nil
}

// GetRequest implements workhour.WorkHourRequestService.
func (s *WorkHourRequestServiceImpl) GetRequest(ctx context.Context, id string) (workhour.WorkHourRequestWithUser, error) {
	return s.WorkHourRequestRepository.GetByID(ctx, id)
}

// GetPendingRequests implements workhour.WorkHourRequestService.
func (s *WorkHourRequestServiceImpl) GetPendingRequests(ctx context.Context) ([]workhour.WorkHourRequestWithUser, error) {
	requests, err := s.WorkHourRequestRepository.GetPending(ctx)
	if err != nil {
		return nil, err
	}
	if requests == nil {
		requests = []workhour.WorkHourRequestWithUser{}
	}
	return requests, nil
}

// ReviewRequest implements workhour.WorkHourRequestService.
func (s *WorkHourRequestServiceImpl) ReviewRequest(ctx context.Context, id string, managerID string, req workhour.ReviewRequestRequest) (workhour.WorkHourRequest, error) {
	request, err := s.WorkHourRequestRepository.GetByID(ctx, id)
	if err != nil {
		return workhour.WorkHourRequest{}, err
	}
	if request.Status != workhour.StatusPending {
		return workhour.WorkHourRequest{}, workhour.ErrRequestAlreadyProcessed
	}

	return s.WorkHourRequestRepository.UpdateStatus(ctx, id, workhour.Status(req.Status), managerID, req.ManagerComments)
}

// AvailableDates implements workhour.WorkHourRequestService. Approved
// dates already consumed by a work entry are filtered out, so the list
// only ever shrinks as entries are filed.
func (s *WorkHourRequestServiceImpl) AvailableDates(ctx context.Context, employeeID string) ([]string, error) {
	approvedDates, err := s.WorkHourRequestRepository.ApprovedDates(ctx, employeeID)
	if err != nil {
		return nil, fmt.Errorf("failed to get approved dates: %w", err)
	}

	entryDates, err := s.WorkEntryRepository.DatesForUser(ctx, employeeID)
	if err != nil {
		return nil, fmt.Errorf("failed to get entry dates: %w", err)
	}

	taken := make(map[string]struct{}, len(entryDates))
	for _, date := range entryDates {
		taken[date] = struct{}{}
	}

	available := []string{}
	for _, date := range approvedDates {
		if _, used := taken[date]; !used {
			available = append(available, date)
		}
	}
	return available, nil
}
