package export

import (
	"bytes"
	"encoding/csv"
	"testing"

	"github.com/fdestech/timetrack-backend-go/internal/domain/user"
	"github.com/fdestech/timetrack-backend-go/internal/domain/workentry"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestWriteWorkEntriesCSV(t *testing.T) {
	entries := []workentry.WorkEntryWithUser{
		{
			WorkEntry: workentry.WorkEntry{
				Date:        "2026-08-28",
				WorkType:    "Task",
				Description: "Quarterly report, with a \"quoted\" note",
				TimeSpent:   "6.5",
				Status:      workentry.StatusApproved,
			},
			User: user.PublicUser{
				EmployeeID: "EMP042",
				FirstName:  "Priya",
				LastName:   "Sharma",
			},
		},
		{
			WorkEntry: workentry.WorkEntry{
				Date:        "2026-08-29",
				WorkType:    "Meeting",
				Description: "Sprint planning",
				TimeSpent:   "1",
				Status:      workentry.StatusPending,
			},
			User: user.PublicUser{
				EmployeeID: "EMP007",
				FirstName:  "Jonas",
				LastName:   "Weber",
			},
		},
	}

	var buf bytes.Buffer
	require.NoError(t, WriteWorkEntriesCSV(&buf, entries))

	records, err := csv.NewReader(&buf).ReadAll()
	require.NoError(t, err)
	require.Len(t, records, 3)

	assert.Equal(t, []string{"Employee ID", "Employee", "Date", "Work Type", "Description", "Time Spent", "Status"}, records[0])
	assert.Equal(t, []string{"EMP042", "Priya Sharma", "2026-08-28", "Task", `Quarterly report, with a "quoted" note`, "6.5", "approved"}, records[1])
	assert.Equal(t, []string{"EMP007", "Jonas Weber", "2026-08-29", "Meeting", "Sprint planning", "1", "pending"}, records[2])
}

func TestWriteWorkEntriesCSV_Empty(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, WriteWorkEntriesCSV(&buf, nil))

	records, err := csv.NewReader(&buf).ReadAll()
	require.NoError(t, err)
	require.Len(t, records, 1, "header only")
}
