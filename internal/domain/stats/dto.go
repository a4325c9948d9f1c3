package stats

// OrgStatsResponse is the organization-wide rollup shown to hr and
// manager accounts. Hour totals are pre-rounded to one decimal place.
type OrgStatsResponse struct {
	TotalEmployees    int64  `json:"total_employees"`
	TotalEntries      int64  `json:"total_entries"`
	TotalHours        string `json:"total_hours"`
	AvgHours          string `json:"avg_hours"`
	SubmittedToday    int64  `json:"submitted_today"`
	NotSubmittedToday int64  `json:"not_submitted_today"`
}

// EmployeeStatsResponse is the per-employee rollup: hours logged today,
// since the start of the current week, and since the start of the month.
type EmployeeStatsResponse struct {
	TodayHours string `json:"today_hours"`
	WeekHours  string `json:"week_hours"`
	MonthHours string `json:"month_hours"`
	Status     string `json:"status"`
}

// ManagerDashboardResponse restricts the headcount to the employee role
// and reports hours for today only, not lifetime.
type ManagerDashboardResponse struct {
	TotalEmployees int64  `json:"total_employees"`
	Submitted      int64  `json:"submitted"`
	NotSubmitted   int64  `json:"not_submitted"`
	TotalWorkHours string `json:"total_work_hours"`
}
