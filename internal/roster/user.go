package roster

// Role gates the admin-only portal views.
type Role string

const (
	RoleAdmin Role = "admin"
	RoleStaff Role = "staff"
)

func (r Role) Valid() bool {
	return r == RoleAdmin || r == RoleStaff
}

// User is one roster entry. JSON field names match the original portal's
// storage blobs so existing exports stay importable. Passwords are stored
// and compared as plain text to preserve the source system's credential
// semantics; this portal deliberately has no password hashing.
type User struct {
	EmployeeID string `json:"employeeId"`
	Name       string `json:"name"`
	Role       Role   `json:"role"`
	Department string `json:"department"`
	Position   string `json:"position"`
	Password   string `json:"password"`
}

func (u *User) IsAdmin() bool {
	return u.Role == RoleAdmin
}

// Public strips the password for API responses.
func (u User) Public() PublicUser {
	return PublicUser{
		EmployeeID: u.EmployeeID,
		Name:       u.Name,
		Role:       u.Role,
		Department: u.Department,
		Position:   u.Position,
	}
}

type PublicUser struct {
	EmployeeID string `json:"employeeId"`
	Name       string `json:"name"`
	Role       Role   `json:"role"`
	Department string `json:"department"`
	Position   string `json:"position"`
}

// ProtectedEmployeeID is the built-in administrator account. The roster
// service itself will delete it if asked; only the HTTP layer withholds the
// control, matching the original UI.
const ProtectedEmployeeID = "admin"
