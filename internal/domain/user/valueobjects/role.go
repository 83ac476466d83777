package valueobjects

import "fmt"

// Role is the user's role within the helpdesk.
type Role string

const (
	RoleTrainee Role = "trainee"
	RoleAdmin   Role = "admin"
)

var validRoles = map[Role]bool{
	RoleTrainee: true,
	RoleAdmin:   true,
}

func (r Role) String() string {
	return string(r)
}

func (r Role) IsValid() bool {
	return validRoles[r]
}

func (r Role) IsAdmin() bool {
	return r == RoleAdmin
}

func (r Role) IsTrainee() bool {
	return r == RoleTrainee
}

func NewRole(s string) (Role, error) {
	r := Role(s)
	if !r.IsValid() {
		return "", fmt.Errorf("invalid role: %s", s)
	}
	return r, nil
}
