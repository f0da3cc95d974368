package entity

import (
	"fmt"
	"slices"
	"strings"
)

// Role is a capability granted to a user. The set is closed.
type Role string

const (
	RoleUser   Role = "User"
	RoleEditor Role = "Editor"
	RoleAdmin  Role = "Admin"
)

// AllRoles lists every valid role.
var AllRoles = []Role{RoleUser, RoleEditor, RoleAdmin}

// ParseRole resolves a role name case-insensitively.
func ParseRole(s string) (Role, error) {
	for _, r := range AllRoles {
		if strings.EqualFold(string(r), strings.TrimSpace(s)) {
			return r, nil
		}
	}
	return "", fmt.Errorf("%w: unknown role %q", ErrInvalidInput, s)
}

// User is a registered account with zero or more roles.
type User struct {
	ID          int64
	DisplayName string
	Roles       []Role
}

// Principal is the authenticated identity attached to a request.
type Principal struct {
	UserID int64
	Roles  []Role
}

// HasRole reports whether the principal holds role r.
func (p Principal) HasRole(r Role) bool {
	return slices.Contains(p.Roles, r)
}

// Authenticated reports whether the principal carries a user id.
func (p Principal) Authenticated() bool {
	return p.UserID > 0
}

// Owns reports whether ownerID names this principal. A nil owner is owned
// by nobody.
func (p Principal) Owns(ownerID *int64) bool {
	return ownerID != nil && p.Authenticated() && p.UserID == *ownerID
}
