package session

import (
	"context"
	"errors"
	"time"

	"github.com/farellandr/lokly/internal/models"
)

// TTL is how long a login stays valid.
const TTL = 7 * 24 * time.Hour

// CookieName is the HTTP-only cookie carrying the session token.
const CookieName = "lokly_session"

var ErrNotFound = errors.New("session not found")

// User is the denormalized summary stored alongside the session so that
// profile reads do not need a database round trip.
type User struct {
	ID       uint   `json:"id"`
	Username string `json:"username"`
	Email    string `json:"email"`
	FullName string `json:"fullName"`
}

type Session struct {
	Token     string    `json:"token"`
	UserID    uint      `json:"userId"`
	User      User      `json:"user"`
	ExpiresAt time.Time `json:"expiresAt"`
}

type Store interface {
	Create(ctx context.Context, user *models.User) (*Session, error)
	Get(ctx context.Context, token string) (*Session, error)
	Delete(ctx context.Context, token string) error
}

func summarize(user *models.User) User {
	return User{
		ID:       user.ID,
		Username: user.Username,
		Email:    user.Email,
		FullName: user.FullName,
	}
}
