package user

type Role string

const (
	RoleEmployee Role = "employee" // Logs daily work entries
	RoleHR       Role = "hr"       // Can review all work entries
	RoleManager  Role = "manager"  // HR rights plus user management and request review
)

func IsValidRole(r string) bool {
	switch Role(r) {
	case RoleEmployee, RoleHR, RoleManager:
		return true
	}
	return false
}

type User struct {
	ID           string
	EmployeeID   string
	Username     string
	PasswordHash string
	FirstName    string
	LastName     string
	Email        string
	Designation  string
	Department   string
	Role         Role
}

// PublicUser is the identity record with the credential stripped, safe to
// join onto entries and requests in responses.
type PublicUser struct {
	ID          string `json:"id"`
	EmployeeID  string `json:"employee_id"`
	Username    string `json:"username"`
	FirstName   string `json:"first_name"`
	LastName    string `json:"last_name"`
	Email       string `json:"email"`
	Designation string `json:"designation"`
	Department  string `json:"department"`
	Role        Role   `json:"role"`
}

func (u User) Public() PublicUser {
	return PublicUser{
		ID:          u.ID,
		EmployeeID:  u.EmployeeID,
		Username:    u.Username,
		FirstName:   u.FirstName,
		LastName:    u.LastName,
		Email:       u.Email,
		Designation: u.Designation,
		Department:  u.Department,
		Role:        u.Role,
	}
}

// IsReviewer checks if the user can approve or reject work entries.
func (u *User) IsReviewer() bool {
	return u.Role == RoleHR || u.Role == RoleManager
}

// IsManager checks if the user can manage users and review work hour requests.
func (u *User) IsManager() bool {
	return u.Role == RoleManager
}
