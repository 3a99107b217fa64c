package auth

import (
	"context"
	"time"
)

// RefreshToken is a persisted refresh token; revoking one survives
// process restarts, unlike the in-memory access token denylist.
type RefreshToken struct {
	ID        string
	UserID    string
	Token     string
	ExpiresAt time.Time
	RevokedAt *time.Time
	CreatedAt time.Time
}

type RefreshTokenRepository interface {
	Store(ctx context.Context, userID, token string, expiresAt time.Time) error
	Get(ctx context.Context, token string) (RefreshToken, error)
	Revoke(ctx context.Context, token string) error
	RevokeAllForUser(ctx context.Context, userID string) error
}
