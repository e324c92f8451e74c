package domain

import "time"

// UserText is a free-text note saved by a user. Notes are append-only:
// created once, listed newest-first, never updated or deleted.
type UserText struct {
	ID        int64
	UserID    int64
	Text      string
	CreatedAt time.Time
}
