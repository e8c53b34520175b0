package user

import (
	"strings"
	"time"

	"github.com/thesrcielos/TypingSite/internal/apperrors"
	"github.com/thesrcielos/TypingSite/internal/session"
)

type User struct {
	ID        uint      `gorm:"primaryKey" json:"id"`
	Username  string    `gorm:"not null" json:"username"`
	Email     string    `gorm:"uniqueIndex;not null" json:"email"`
	Password  string    `gorm:"not null" json:"-"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

// Snapshot copies the fields kept in a session.
func (u *User) Snapshot() session.Snapshot {
	return session.Snapshot{
		ID:        u.ID,
		Username:  u.Username,
		Email:     u.Email,
		CreatedAt: u.CreatedAt,
	}
}

type SignupRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
	Email    string `json:"email"`
}

type LoginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

type LoginResult struct {
	SessionID string `json:"sessionId"`
	User      *User  `json:"user"`
}

// Validate checks that the required fields are present. Emails are compared
// exactly as stored, so they are not normalized.
func (r *SignupRequest) Validate() error {
	if strings.TrimSpace(r.Username) == "" {
		return apperrors.Validation("username is required")
	}
	if len(r.Username) > 50 {
		return apperrors.Validation("username must not exceed 50 characters")
	}
	if !strings.Contains(r.Email, "@") {
		return apperrors.Validation("a valid email is required")
	}
	if r.Password == "" {
		return apperrors.Validation("password is required")
	}
	if len(r.Password) > 72 {
		return apperrors.Validation("password must not exceed 72 characters")
	}
	return nil
}

func (r *LoginRequest) Validate() error {
	if r.Email == "" || r.Password == "" {
		return apperrors.Validation("email and password are required")
	}
	return nil
}
