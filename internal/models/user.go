package models

import (
	"encoding/json"
	"fmt"
	"time"
)

// AppUserRole is stored as an integer code. The numeric assignment is
// fixed and must never be renumbered: existing rows depend on it.
type AppUserRole int

const (
	RoleAdmin       AppUserRole = 1
	RoleRegularUser AppUserRole = 2
)

var roleNames = map[AppUserRole]string{
	RoleAdmin:       "Admin",
	RoleRegularUser: "RegularUser",
}

// ParseAppUserRole maps a role name to its code.
func ParseAppUserRole(s string) (AppUserRole, error) {
	for code, name := range roleNames {
		if name == s {
			return code, nil
		}
	}
	return 0, fmt.Errorf("unknown role %q", s)
}

func (r AppUserRole) Valid() bool {
	_, ok := roleNames[r]
	return ok
}

func (r AppUserRole) String() string {
	if name, ok := roleNames[r]; ok {
		return name
	}
	return fmt.Sprintf("AppUserRole(%d)", int(r))
}

// MarshalJSON serializes the role as its name string.
func (r AppUserRole) MarshalJSON() ([]byte, error) {
	name, ok := roleNames[r]
	if !ok {
		return nil, fmt.Errorf("cannot serialize unknown role code %d", int(r))
	}
	return json.Marshal(name)
}

func (r *AppUserRole) UnmarshalJSON(data []byte) error {
	var name string
	if err := json.Unmarshal(data, &name); err != nil {
		return fmt.Errorf("role must be a string")
	}
	parsed, err := ParseAppUserRole(name)
	if err != nil {
		return err
	}
	*r = parsed
	return nil
}

// AppUser is an account row. Email is stored trimmed and lowercased;
// the password hash never leaves the services layer.
type AppUser struct {
	ID           int
	Email        string
	PasswordHash string
	Role         AppUserRole
	CreatedAt    time.Time
	LastLoginAt  *time.Time
}

// AppUserView is the public projection of an account. The password hash
// is deliberately absent.
type AppUserView struct {
	ID          int         `json:"id"`
	Email       string      `json:"email"`
	Role        AppUserRole `json:"role"`
	CreatedAt   time.Time   `json:"createdAt"`
	LastLoginAt *time.Time  `json:"lastLoginAt"`
}

func (u *AppUser) View() AppUserView {
	return AppUserView{
		ID:          u.ID,
		Email:       u.Email,
		Role:        u.Role,
		CreatedAt:   u.CreatedAt,
		LastLoginAt: u.LastLoginAt,
	}
}
