package preference

import "time"

// ManagerPreferences is a manager's persisted pick of which employees'
// reports to display. The employee id list is stored as a JSON text
// column and deserialized on read.
type ManagerPreferences struct {
	ID                  string    `json:"id"`
	ManagerID           string    `json:"manager_id"`
	SelectedEmployeeIDs []string  `json:"selected_employee_ids"`
	CreatedAt           time.Time `json:"created_at"`
	UpdatedAt           time.Time `json:"updated_at"`
}
