package utils

import (
	"errors"
	"time"

	"github.com/o1egl/paseto"
)

// SessionTokenExpiry is the fixed session lifetime, measured from
// issuance. Expiry is checked at lookup time; nothing sweeps sessions
// proactively.
const SessionTokenExpiry = 24 * time.Hour

// SessionClaims is the data carried inside a session token.
type SessionClaims struct {
	UserID string    `json:"userId"`
	Expiry time.Time `json:"expiry"`
}

// GenerateSessionToken mints a PASETO v2 session token for the user,
// encrypted with the 32-byte symmetric key.
func GenerateSessionToken(symmetricKey []byte, userID string) (string, time.Time, error) {
	if len(symmetricKey) != 32 {
		return "", time.Time{}, errors.New("symmetric key must be 32 bytes long")
	}
	claims := SessionClaims{
		UserID: userID,
		Expiry: time.Now().Add(SessionTokenExpiry),
	}
	token, err := paseto.NewV2().Encrypt(symmetricKey, claims, nil)
	if err != nil {
		return "", time.Time{}, err
	}
	return token, claims.Expiry, nil
}

// ParseSessionToken decrypts a session token and checks its expiry.
func ParseSessionToken(symmetricKey []byte, token string) (*SessionClaims, error) {
	if len(symmetricKey) != 32 {
		return nil, errors.New("symmetric key must be 32 bytes long")
	}
	var claims SessionClaims
	if err := paseto.NewV2().Decrypt(token, symmetricKey, &claims, nil); err != nil {
		return nil, err
	}
	if time.Now().After(claims.Expiry) {
		return nil, errors.New("session expired")
	}
	return &claims, nil
}
