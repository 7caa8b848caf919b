package utils

import (
	"testing"
	"time"
)

var testKey = []byte("0123456789abcdef0123456789abcdef")

func TestSessionTokenRoundTrip(t *testing.T) {
	token, expires, err := GenerateSessionToken(testKey, "user-1")
	if err != nil {
		t.Fatalf("GenerateSessionToken: %v", err)
	}
	if time.Until(expires) > SessionTokenExpiry || time.Until(expires) < SessionTokenExpiry-time.Minute {
		t.Fatalf("expiry %v not ~%v out", expires, SessionTokenExpiry)
	}

	claims, err := ParseSessionToken(testKey, token)
	if err != nil {
		t.Fatalf("ParseSessionToken: %v", err)
	}
	if claims.UserID != "user-1" {
		t.Fatalf("UserID = %q", claims.UserID)
	}
}

func TestSessionTokenRejectsWrongKey(t *testing.T) {
	token, _, err := GenerateSessionToken(testKey, "user-1")
	if err != nil {
		t.Fatalf("GenerateSessionToken: %v", err)
	}
	otherKey := []byte("ffffffffffffffffffffffffffffffff")
	if _, err := ParseSessionToken(otherKey, token); err == nil {
		t.Fatalf("token decrypted with the wrong key")
	}
}

func TestSessionTokenRejectsBadKeyLength(t *testing.T) {
	if _, _, err := GenerateSessionToken([]byte("short"), "user-1"); err == nil {
		t.Fatalf("short key accepted for minting")
	}
	if _, err := ParseSessionToken([]byte("short"), "whatever"); err == nil {
		t.Fatalf("short key accepted for parsing")
	}
}

func TestSessionTokenGarbage(t *testing.T) {
	if _, err := ParseSessionToken(testKey, "not-a-token"); err == nil {
		t.Fatalf("garbage token parsed")
	}
}
