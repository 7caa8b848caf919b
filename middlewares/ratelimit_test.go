package middlewares

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
)

func TestRateLimiterPerClient(t *testing.T) {
	gin.SetMode(gin.TestMode)
	router := gin.New()
	router.Use(NewRateLimiterMiddleware(RateLimiterConfig{RequestsPerSecond: 1, Burst: 2}))
	router.GET("/", func(c *gin.Context) { c.Status(http.StatusOK) })

	serve := func(addr string) int {
		rec := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodGet, "/", nil)
		req.RemoteAddr = addr
		router.ServeHTTP(rec, req)
		return rec.Code
	}

	for i := 0; i < 2; i++ {
		if code := serve("10.0.0.1:5000"); code != http.StatusOK {
			t.Fatalf("request %d within burst rejected: status %d", i+1, code)
		}
	}
	if code := serve("10.0.0.1:5000"); code != http.StatusTooManyRequests {
		t.Fatalf("request over burst passed: status %d", code)
	}

	// A different client has its own bucket.
	if code := serve("10.0.0.2:5000"); code != http.StatusOK {
		t.Fatalf("second client throttled by the first: status %d", code)
	}
}
