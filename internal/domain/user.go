package domain

import "time"

// User is the domain entity for a registered account.
// Email is unique and case-sensitive as stored.
type User struct {
	ID           int64
	Email        string
	PasswordHash string
	CreatedAt    time.Time
}
