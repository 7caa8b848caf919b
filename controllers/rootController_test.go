package controllers

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
)

func TestRootReportsStatus(t *testing.T) {
	gin.SetMode(gin.TestMode)
	router := gin.New()
	SetupRootRoute(router)

	for _, path := range []string{"/", "/health"} {
		rec := httptest.NewRecorder()
		router.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, path, nil))

		if rec.Code != http.StatusOK {
			t.Fatalf("GET %s status = %d", path, rec.Code)
		}
		var body map[string]string
		if err := json.Unmarshal(rec.Body.Bytes(), &body); err != nil {
			t.Fatalf("GET %s body not JSON: %v", path, err)
		}
		if body["status"] != "ok" {
			t.Fatalf("GET %s status field = %q", path, body["status"])
		}
	}
}
