package domain

import "time"

type Role string

const RoleUser Role = "user"

type User struct {
	ID           string
	Email        string
	PasswordHash string
	Role         Role
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

// Session mirrors an issued token. Logout does not delete it; rows live
// until natural expiry and are then removed by the sweeper.
type Session struct {
	ID        string
	UserID    string
	Token     string
	CreatedAt time.Time
	ExpiresAt time.Time
}
