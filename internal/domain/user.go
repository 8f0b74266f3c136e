package domain

import "context"

// User represents a registered account. Username is the sole lookup key
// and is immutable after registration.
type User struct {
	Username       string
	Email          string
	FullName       string
	HashedPassword string
	Disabled       bool
}

// UserRepository defines persistence operations for users.
//
// FindByUsername must observe a preceding Upsert of the same username
// (read-your-write), since registration checks existence before inserting.
type UserRepository interface {
	FindByUsername(ctx context.Context, username string) (*User, error)
	Upsert(ctx context.Context, user *User) error
}
