package workentry

import "github.com/fdestech/timetrack-backend-go/internal/pkg/validator"

type CreateWorkEntryRequest struct {
	UserID      string `json:"-"`
	Date        string `json:"date"`
	WorkType    string `json:"work_type"`
	Description string `json:"description"`
	TimeSpent   string `json:"time_spent"`
}

func (r *CreateWorkEntryRequest) Validate() error {
	var errs validator.ValidationErrors

	if validator.IsEmpty(r.Date) {
		errs = append(errs, validator.ValidationError{
			Field:   "date",
			Message: "date is required",
		})
	} else if _, ok := validator.IsValidDate(r.Date); !ok {
		errs = append(errs, validator.ValidationError{
			Field:   "date",
			Message: "date must be in YYYY-MM-DD format",
		})
	}

	if validator.IsEmpty(r.WorkType) {
		errs = append(errs, validator.ValidationError{
			Field:   "work_type",
			Message: "work_type is required",
		})
	} else if !validator.IsInSlice(r.WorkType, WorkTypes) {
		errs = append(errs, validator.ValidationError{
			Field:   "work_type",
			Message: "work_type must be one of Task, Project, Meeting, Skill-up, Partial Leave",
		})
	}

	if validator.IsEmpty(r.Description) {
		errs = append(errs, validator.ValidationError{
			Field:   "description",
			Message: "description is required",
		})
	}

	if validator.IsEmpty(r.TimeSpent) {
		errs = append(errs, validator.ValidationError{
			Field:   "time_spent",
			Message: "time_spent is required",
		})
	} else if _, ok := validator.ParseHours(r.TimeSpent); !ok {
		errs = append(errs, validator.ValidationError{
			Field:   "time_spent",
			Message: "time_spent must be a positive number of hours",
		})
	}

	if len(errs) > 0 {
		return errs
	}

	return nil
}

type UpdateStatusRequest struct {
	Status string `json:"status"`
}

func (r *UpdateStatusRequest) Validate() error {
	var errs validator.ValidationErrors

	if r.Status != string(StatusApproved) && r.Status != string(StatusRejected) {
		errs = append(errs, validator.ValidationError{
			Field:   "status",
			Message: "status must be approved or rejected",
		})
	}

	if len(errs) > 0 {
		return errs
	}

	return nil
}

// EntryFilter narrows reviewer listings; all set fields are AND-combined.
type EntryFilter struct {
	UserID     *string
	Department *string
	Status     *string
	StartDate  *string
	EndDate    *string
}

func (f *EntryFilter) Validate() error {
	var errs validator.ValidationErrors

	if f.Status != nil && *f.Status != "" {
		if !validator.IsInSlice(*f.Status, []string{string(StatusPending), string(StatusApproved), string(StatusRejected)}) {
			errs = append(errs, validator.ValidationError{
				Field:   "status",
				Message: "status must be one of pending, approved, rejected",
			})
		}
	}
	if f.StartDate != nil && *f.StartDate != "" {
		if _, ok := validator.IsValidDate(*f.StartDate); !ok {
			errs = append(errs, validator.ValidationError{
				Field:   "start_date",
				Message: "start_date must be in YYYY-MM-DD format",
			})
		}
	}
	if f.EndDate != nil && *f.EndDate != "" {
		if _, ok := validator.IsValidDate(*f.EndDate); !ok {
			errs = append(errs, validator.ValidationError{
				Field:   "end_date",
				Message: "end_date must be in YYYY-MM-DD format",
			})
		}
	}

	if len(errs) > 0 {
		return errs
	}

	return nil
}
