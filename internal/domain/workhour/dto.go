package workhour

import "github.com/fdestech/timetrack-backend-go/internal/pkg/validator"

type CreateRequestRequest struct {
	EmployeeID    string `json:"-"`
	RequestedDate string `json:"requested_date"`
	Reason        string `json:"reason"`
}

func (r *CreateRequestRequest) Validate() error {
	var errs validator.ValidationErrors

	if validator.IsEmpty(r.RequestedDate) {
		errs = append(errs, validator.ValidationError{
			Field:   "requested_date",
			Message: "requested_date is required",
		})
	} else if _, ok := validator.IsValidDate(r.RequestedDate); !ok {
		errs = append(errs, validator.ValidationError{
			Field:   "requested_date",
			Message: "requested_date must be in YYYY-MM-DD format",
		})
	}

	if validator.IsEmpty(r.Reason) {
		errs = append(errs, validator.ValidationError{
			Field:   "reason",
			Message: "reason is required",
		})
	}

	if len(errs) > 0 {
		return errs
	}

	return nil
}

type ReviewRequestRequest struct {
	Status          string  `json:"status"`
	ManagerComments *string `json:"manager_comments,omitempty"`
}

func (r *ReviewRequestRequest) Validate() error {
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
