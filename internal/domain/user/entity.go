package user

import "time"

// User is an admin-panel account, not a field operator.
type User struct {
	ID           string
	Email        string
	PasswordHash string
	FullName     string
	Role         Role
	IsActive     bool
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

type Role string

const (
	RoleAdmin   Role = "admin"
	RoleManager Role = "manager"
)

var RoleValues = []string{
	string(RoleAdmin),
	string(RoleManager),
}
