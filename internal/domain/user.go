package domain

import "time"

// User represents a registered account. Users are never hard-deleted by any
// request flow; password and bio updates mutate in place.
type User struct {
	ID        string
	FirstName string
	LastName  string
	Email     string
	Password  string // bcrypt hash, never the plaintext
	CreatedAt time.Time
	UpdatedAt time.Time
}
