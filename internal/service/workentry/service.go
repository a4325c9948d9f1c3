package workentry

import (
	"context"
	"fmt"
	"io"

	"github.com/fdestech/timetrack-backend-go/internal/domain/workentry"
	"github.com/fdestech/timetrack-backend-go/internal/domain/workhour"
	"github.com/fdestech/timetrack-backend-go/internal/pkg/export"
	"github.com/fdestech/timetrack-backend-go/internal/pkg/validator"
)

type WorkEntryServiceImpl struct {
	workentry.WorkEntryRepository
	workhour.WorkHourRequestRepository
}

func NewWorkEntryService(entryRepository workentry.WorkEntryRepository, requestRepository workhour.WorkHourRequestRepository) workentry.WorkEntryService {
	return &WorkEntryServiceImpl{
		WorkEntryRepository:       entryRepository,
		WorkHourRequestRepository: requestRepository,
	}
}

// dateAllowed reports whether the user may file an entry for the date:
// today always, a past date only when an approved work-hour request
// unlocked it and no entry consumed it yet.
func (s *WorkEntryServiceImpl) dateAllowed(ctx context.Context, userID, date string) (bool, error) {
	if date == validator.Today() {
		return true, nil
	}

	approvedDates, err := s.WorkHourRequestRepository.ApprovedDates(ctx, userID)
	if err != nil {
		return false, fmt.Errorf("failed to get approved dates: %w", err)
	}
	if !validator.IsInSlice(date, approvedDates) {
		return false, nil
	}

	taken, err := s.WorkEntryRepository.ExistsForDate(ctx, userID, date)
	if err != nil {
		return false, fmt.Errorf("failed to check existing entry: %w", err)
	}
	return !taken, nil
}

// CreateEntry implements workentry.WorkEntryService.
func (s *WorkEntryServiceImpl) CreateEntry(ctx context.Context, req workentry.CreateWorkEntryRequest) (workentry.WorkEntry, error) {
	allowed, err := s.dateAllowed(ctx, req.UserID, req.Date)
	if err != nil {
		return workentry.WorkEntry{}, err
	}
	if !allowed {
		return workentry.WorkEntry{}, workentry.ErrDateNotAllowed
	}

	exists, err := s.WorkEntryRepository.ExistsForDate(ctx, req.UserID, req.Date)
	if err != nil {
		return workentry.WorkEntry{}, fmt.Errorf("failed to check existing entry: %w", err)
	}
	if exists {
		return workentry.WorkEntry{}, workentry.ErrDuplicateEntry
	}

	// The unique constraint on (user_id, date) backstops the check above
	// against concurrent submissions; Create maps the violation back to
	// ErrDuplicateEntry.
	return s.WorkEntryRepository.Create(ctx, workentry.WorkEntry{
		UserID:      req.UserID,
		Date:        req.Date,
		WorkType:    req.WorkType,
		Description: req.Description,
		TimeSpent:   req.TimeSpent,
	})
}

// GetUserEntries implements workentry.WorkEntryService.
func (s *WorkEntryServiceImpl) GetUserEntries(ctx context.Context, userID string, startDate, endDate *string) ([]workentry.WorkEntry, error) {
	entries, err := s.WorkEntryRepository.GetByUserID(ctx, userID, startDate, endDate)
	if err != nil {
		return nil, err
	}
	if entries == nil {
		entries = []workentry.WorkEntry{}
	}
	return entries, nil
}

// GetEntries implements workentry.WorkEntryService.
func (s *WorkEntryServiceImpl) GetEntries(ctx context.Context, filter workentry.EntryFilter) ([]workentry.WorkEntryWithUser, error) {
	entries, err := s.WorkEntryRepository.GetByFilters(ctx, filter)
	if err != nil {
		return nil, err
	}
	if entries == nil {
		entries = []workentry.WorkEntryWithUser{}
	}
	return entries, nil
}

// ReviewEntry implements workentry.WorkEntryService.
func (s *WorkEntryServiceImpl) ReviewEntry(ctx context.Context, id string, reviewerID string, req workentry.UpdateStatusRequest) (workentry.WorkEntry, error) {
	entry, err := s.WorkEntryRepository.GetByID(ctx, id)
	if err != nil {
		return workentry.WorkEntry{}, err
	}
	if entry.Status != workentry.StatusPending {
		return workentry.WorkEntry{}, workentry.ErrEntryAlreadyReviewed
	}

	return s.WorkEntryRepository.UpdateStatus(ctx, id, workentry.Status(req.Status), reviewerID)
}

// DeleteEntry implements workentry.WorkEntryService.
func (s *WorkEntryServiceImpl) DeleteEntry(ctx context.Context, id string) error {
	return s.WorkEntryRepository.Delete(ctx, id)
}

// DailyReport implements workentry.WorkEntryService. A date with no
// entries yields an empty report with zero hours, not an error.
func (s *WorkEntryServiceImpl) DailyReport(ctx context.Context, userID, date string) (workentry.DailyWorkReport, error) {
	entries, err := s.WorkEntryRepository.GetByUserID(ctx, userID, &date, &date)
	if err != nil {
		return workentry.DailyWorkReport{}, err
	}
	if entries == nil {
		entries = []workentry.WorkEntry{}
	}

	var totalHours float64
	for _, entry := range entries {
		if hours, ok := validator.ParseHours(entry.TimeSpent); ok {
			totalHours += hours
		}
	}

	return workentry.DailyWorkReport{
		Date:       date,
		Entries:    entries,
		TotalHours: totalHours,
	}, nil
}

// ExportCSV implements workentry.WorkEntryService.
func (s *WorkEntryServiceImpl) ExportCSV(ctx context.Context, filter workentry.EntryFilter, w io.Writer) error {
	entries, err := s.WorkEntryRepository.GetByFilters(ctx, filter)
	if err != nil {
		return err
	}
	return export.WriteWorkEntriesCSV(w, entries)
}
