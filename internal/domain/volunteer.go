package domain

import "time"

// Volunteer is an application to help out. Email is unique so re-applying is
// idempotent at the storage layer.
type Volunteer struct {
	ID           string
	FirstName    string
	LastName     string
	Email        string
	Phone        string
	Interest     string
	Availability string
	Experience   string
	CreatedAt    time.Time
}
