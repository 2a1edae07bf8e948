package domain

import "time"

// Role names a workflow duty a user may hold. A user acts on a step only
// when one of their roles matches the step's role.
type Role string

const (
	RoleAdmin     Role = "ADMIN"
	RoleValidator Role = "VALIDATOR"
	RoleReviewer  Role = "REVIEWER"
	RolePrinter   Role = "PRINTER"
	RoleArchiver  Role = "ARCHIVER"
)

// User is an organizer-side account (approvers, printers, administrators).
type User struct {
	ID           int32     `json:"id"`
	Email        string    `json:"email"`
	Name         string    `json:"name"`
	PasswordHash string    `json:"-"`
	Roles        []Role    `json:"roles"`
	CreatedOn    time.Time `json:"created_on"`
	UpdatedOn    time.Time `json:"updated_on"`
}

// HasRole reports whether the user holds the given role. ADMIN implies every
// role.
func (u *User) HasRole(role Role) bool {
	for _, r := range u.Roles {
		if r == role || r == RoleAdmin {
			return true
		}
	}
	return false
}
