package preference

import "github.com/fdestech/timetrack-backend-go/internal/pkg/validator"

type SavePreferencesRequest struct {
	SelectedEmployeeIDs []string `json:"selected_employee_ids"`
}

func (r *SavePreferencesRequest) Validate() error {
	var errs validator.ValidationErrors

	// An empty list is a valid selection; only a missing field is not.
	if r.SelectedEmployeeIDs == nil {
		errs = append(errs, validator.ValidationError{
			Field:   "selected_employee_ids",
			Message: "selected_employee_ids must be an array",
		})
	}

	if len(errs) > 0 {
		return errs
	}

	return nil
}
