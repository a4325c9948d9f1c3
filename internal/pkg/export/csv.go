package export

import (
	"encoding/csv"
	"fmt"
	"io"

	"github.com/fdestech/timetrack-backend-go/internal/domain/workentry"
)

// workEntryHeader is the fixed column order consumers of the export rely on.
var workEntryHeader = []string{"Employee ID", "Employee", "Date", "Work Type", "Description", "Time Spent", "Status"}

// WriteWorkEntriesCSV renders the filtered, user-joined entry set as CSV.
func WriteWorkEntriesCSV(w io.Writer, entries []workentry.WorkEntryWithUser) error {
	cw := csv.NewWriter(w)

	if err := cw.Write(workEntryHeader); err != nil {
		return fmt.Errorf("write csv header: %w", err)
	}

	for _, e := range entries {
		record := []string{
			e.User.EmployeeID,
			e.User.FirstName + " " + e.User.LastName,
			e.Date,
			e.WorkType,
			e.Description,
			e.TimeSpent,
			string(e.Status),
		}
		if err := cw.Write(record); err != nil {
			return fmt.Errorf("write csv record: %w", err)
		}
	}

	cw.Flush()
	return cw.Error()
}
