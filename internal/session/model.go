package session

import (
	"context"
	"time"
)

// Snapshot is the copy of the user row taken at login. It is never refreshed
// while the session lives.
type Snapshot struct {
	ID        uint      `json:"id"`
	Username  string    `json:"username"`
	Email     string    `json:"email"`
	CreatedAt time.Time `json:"createdAt"`
}

type Session struct {
	ID   string
	User Snapshot
}

// Store persists sessions keyed by their id. Expiry is owned by the store.
type Store interface {
	Create(ctx context.Context, s *Session) error
	Get(ctx context.Context, id string) (*Session, error)
	Delete(ctx context.Context, id string) error
}

// payload is the serialized form kept in the store.
type payload struct {
	User Snapshot `json:"user"`
}
