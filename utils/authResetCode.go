package utils

import (
	"context"
	"fmt"
	"math/rand"
	"time"
)

// ResetCodeTTL bounds how long a password-reset code stays valid.
const ResetCodeTTL = 15 * time.Minute

// ResetCodeStore is the keyed TTL store reset codes live in. The redis
// cache wrapper satisfies it in production.
type ResetCodeStore interface {
	Set(ctx context.Context, key string, value interface{}, expiration time.Duration) error
	Get(ctx context.Context, key string) (string, error)
	Delete(ctx context.Context, key string) error
}

// GenerateResetCode generates a random 6-digit reset code.
func GenerateResetCode() string {
	return fmt.Sprintf("%06d", rand.Intn(1000000))
}

// SetResetCode stores the reset code for an email with the standard TTL.
func SetResetCode(ctx context.Context, store ResetCodeStore, email, code string) error {
	return store.Set(ctx, "reset_code:"+email, code, ResetCodeTTL)
}

// GetResetCode retrieves the reset code for an email, nil if absent.
func GetResetCode(ctx context.Context, store ResetCodeStore, email string) (*string, error) {
	code, err := store.Get(ctx, "reset_code:"+email)
	if err != nil {
		return nil, err
	}
	if code == "" {
		return nil, nil
	}
	return &code, nil
}

// DeleteResetCode removes the reset code for an email.
func DeleteResetCode(ctx context.Context, store ResetCodeStore, email string) error {
	return store.Delete(ctx, "reset_code:"+email)
}
