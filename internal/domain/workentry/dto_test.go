package workentry

import (
	"errors"
	"testing"

	"github.com/fdestech/timetrack-backend-go/internal/pkg/validator"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func validCreateRequest() CreateWorkEntryRequest {
	return CreateWorkEntryRequest{
		UserID:      "user-1",
		Date:        "2026-08-31",
		WorkType:    "Task",
		Description: "Implemented the export endpoint",
		TimeSpent:   "7.5",
	}
}

func TestCreateWorkEntryRequest_Validate_Success(t *testing.T) {
	req := validCreateRequest()
	assert.NoError(t, req.Validate())
}

func TestCreateWorkEntryRequest_Validate_BadDate(t *testing.T) {
	req := validCreateRequest()
	req.Date = "31-08-2026"

	err := req.Validate()
	require.Error(t, err)

	var errs validator.ValidationErrors
	require.True(t, errors.As(err, &errs))
	assert.Contains(t, errs.ToMap(), "date")
}

func TestCreateWorkEntryRequest_Validate_UnknownWorkType(t *testing.T) {
	req := validCreateRequest()
	req.WorkType = "Vacation"

	err := req.Validate()
	require.Error(t, err)

	var errs validator.ValidationErrors
	require.True(t, errors.As(err, &errs))
	assert.Contains(t, errs.ToMap(), "work_type")
}

func TestCreateWorkEntryRequest_Validate_NonPositiveHours(t *testing.T) {
	for _, timeSpent := range []string{"0", "-2", "abc"} {
		req := validCreateRequest()
		req.TimeSpent = timeSpent

		err := req.Validate()
		require.Error(t, err, "time_spent %q should be rejected", timeSpent)

		var errs validator.ValidationErrors
		require.True(t, errors.As(err, &errs))
		assert.Contains(t, errs.ToMap(), "time_spent")
	}
}

func TestCreateWorkEntryRequest_Validate_MissingFields(t *testing.T) {
	req := CreateWorkEntryRequest{}

	err := req.Validate()
	require.Error(t, err)

	var errs validator.ValidationErrors
	require.True(t, errors.As(err, &errs))
	details := errs.ToMap()
	assert.Contains(t, details, "date")
	assert.Contains(t, details, "work_type")
	assert.Contains(t, details, "description")
	assert.Contains(t, details, "time_spent")
}

func TestUpdateStatusRequest_Validate(t *testing.T) {
	approved := UpdateStatusRequest{Status: "approved"}
	assert.NoError(t, approved.Validate())

	rejected := UpdateStatusRequest{Status: "rejected"}
	assert.NoError(t, rejected.Validate())

	// pending is not a reviewable target state
	pending := UpdateStatusRequest{Status: "pending"}
	assert.Error(t, pending.Validate())

	empty := UpdateStatusRequest{}
	assert.Error(t, empty.Validate())
}

func TestEntryFilter_Validate(t *testing.T) {
	status := "approved"
	startDate := "2026-08-01"
	filter := EntryFilter{Status: &status, StartDate: &startDate}
	assert.NoError(t, filter.Validate())

	badStatus := "done"
	filter = EntryFilter{Status: &badStatus}
	assert.Error(t, filter.Validate())

	badDate := "08/01/2026"
	filter = EntryFilter{EndDate: &badDate}
	assert.Error(t, filter.Validate())
}
