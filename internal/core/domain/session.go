package domain

import (
	"time"

	"github.com/google/uuid"
)

// Session is a server-side login session. The id is regenerated on
// every login, so a pre-login identifier never survives authentication.
type Session struct {
	ID        string    `db:"id"` // UUID
	UserID    int64     `db:"user_id"`
	ExpiresAt time.Time `db:"expires_at"`
	CreatedAt time.Time `db:"created_at"`
}

func NewSession(userID int64, lifetime time.Duration) *Session {
	now := time.Now()
	return &Session{
		ID:        uuid.New().String(),
		UserID:    userID,
		ExpiresAt: now.Add(lifetime),
		CreatedAt: now,
	}
}

func (s *Session) IsExpired() bool {
	return time.Now().After(s.ExpiresAt)
}
