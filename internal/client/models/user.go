// Package models defines client-side data models for the ProAim CLI.
// Shapes mirror the JSON the backend returns; the client never invents
// fields the server does not send.
package models

// Role is the authorization level attached to a user account.
type Role string

const (
	RoleAdmin     Role = "ADMIN"
	RoleLandlord  Role = "LANDLORD"
	RoleTenant    Role = "TENANT"
	RoleModerator Role = "MODERATOR"
	RoleUser      Role = "USER"
)

// Valid reports whether r is one of the roles the backend issues.
func (r Role) Valid() bool {
	switch r {
	case RoleAdmin, RoleLandlord, RoleTenant, RoleModerator, RoleUser:
		return true
	}
	return false
}

// User is the identity record carried in the session and cached in the
// credential store between runs.
type User struct {
	ID        int64  `json:"id"`
	Username  string `json:"username"`
	Email     string `json:"email"`
	FirstName string `json:"firstName"`
	LastName  string `json:"lastName"`
	Role      Role   `json:"role"`
}

// FullName returns "First Last" for display.
func (u *User) FullName() string {
	return u.FirstName + " " + u.LastName
}
