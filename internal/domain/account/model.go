package account

import "time"

// Admin is an operator allowed to edit tournament data.
type Admin struct {
	ID           string
	Username     string
	PasswordHash string
	CreatedAt    time.Time
}

// Principal is the authenticated caller attached to a request context.
type Principal struct {
	AdminID  string
	Username string
}
