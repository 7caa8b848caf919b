package sessions

import (
	"context"
	"time"
)

// Session records which user a token belongs to and when it expires.
type Session struct {
	UserID  string    `json:"userId"`
	Expires time.Time `json:"expires"`
}

// Directory tracks active sessions so tokens can be revoked before
// their expiry.
type Directory interface {
	Put(ctx context.Context, token string, session Session) error
	Lookup(ctx context.Context, token string) (Session, bool, error)
	Revoke(ctx context.Context, token string) error
}
