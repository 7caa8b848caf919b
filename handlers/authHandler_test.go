package handlers

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"ClinicBridge/repositories"
	"ClinicBridge/services"
	"ClinicBridge/sessions"

	"github.com/gin-gonic/gin"
)

type stubCodeStore struct{}

func (stubCodeStore) Set(ctx context.Context, key string, value interface{}, expiration time.Duration) error {
	return nil
}
func (stubCodeStore) Get(ctx context.Context, key string) (string, error) { return "", nil }
func (stubCodeStore) Delete(ctx context.Context, key string) error        { return nil }

type stubMailer struct{}

func (stubMailer) SendResetCode(email, code string) error { return nil }

func TestRegisterOpensSession(t *testing.T) {
	gin.SetMode(gin.TestMode)

	userService := services.NewUserService(
		repositories.NewUserRepository(),
		repositories.NewActivityRepository(),
		stubCodeStore{},
		stubMailer{},
	)
	directory := sessions.NewMemoryDirectory()
	handler := NewAuthHandler(userService, directory, []byte("0123456789abcdef0123456789abcdef"))

	router := gin.New()
	router.POST("/api/auth/register", handler.Register)

	payload, _ := json.Marshal(map[string]interface{}{
		"username":     "drsmith",
		"password":     "Str0ng!Pass",
		"name":         "Dr Smith",
		"email":        "drsmith@example.test",
		"roles":        []string{"clinician"},
		"current_role": "clinician",
	})
	rec := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/api/auth/register", bytes.NewReader(payload))
	req.Header.Set("Content-Type", "application/json")
	router.ServeHTTP(rec, req)

	if rec.Code != http.StatusCreated {
		t.Fatalf("status = %d, body %s", rec.Code, rec.Body.String())
	}

	var body struct {
		Token string `json:"token"`
		User  struct {
			ID string `json:"id"`
		} `json:"user"`
	}
	if err := json.Unmarshal(rec.Body.Bytes(), &body); err != nil {
		t.Fatalf("bad response body: %v", err)
	}
	if body.Token == "" {
		t.Fatalf("no session token in registration response")
	}

	session, ok, err := directory.Lookup(context.Background(), body.Token)
	if err != nil {
		t.Fatalf("directory lookup: %v", err)
	}
	if !ok {
		t.Fatalf("registration token absent from the session directory")
	}
	if session.UserID != body.User.ID {
		t.Fatalf("session user = %q, want %q", session.UserID, body.User.ID)
	}
}
