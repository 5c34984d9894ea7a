package entities

import "time"

// User is synchronised from the identity token on every authenticated request.
type User struct {
	ID              string
	Name            string
	Email           string
	CreatedDateTime time.Time
	UpdatedDateTime time.Time
}

// Identity holds the caller claims resolved from the bearer token.
type Identity struct {
	UserID string
	Name   string
	Email  string
}

// UserSynchronise carries the claims written by the per-request upsert.
type UserSynchronise struct {
	UserID          string
	Name            string
	Email           string
	UpdatedDateTime time.Time
}
