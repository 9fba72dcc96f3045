package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
)

func resetRateLimiter() {
	rateLimiterLock.Lock()
	clients = make(map[string]*client)
	rateLimiterLock.Unlock()
}

func limitedRouter() *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.Use(RateLimiter())
	r.GET("/ping", func(c *gin.Context) { c.String(http.StatusOK, "pong") })
	return r
}

func doPing(r *gin.Engine, remoteAddr string) *httptest.ResponseRecorder {
	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/ping", nil)
	req.RemoteAddr = remoteAddr
	r.ServeHTTP(w, req)
	return w
}

func TestRateLimiter_Throttles(t *testing.T) {
	resetRateLimiter()
	r := limitedRouter()

	var tooMany int
	for i := 0; i < limit+5; i++ {
		if doPing(r, "203.0.113.7:1234").Code == http.StatusTooManyRequests {
			tooMany++
		}
	}
	if tooMany != 5 {
		t.Fatalf("expected 5 throttled requests, got %d", tooMany)
	}
}

func TestRateLimiter_PerIP(t *testing.T) {
	resetRateLimiter()
	r := limitedRouter()

	for i := 0; i < limit+1; i++ {
		doPing(r, "203.0.113.1:1000")
	}

	// a different IP still gets through
	if w := doPing(r, "203.0.113.2:1000"); w.Code != http.StatusOK {
		t.Fatalf("other clients must not be throttled, got %d", w.Code)
	}
}

func TestRateLimiter_WindowReset(t *testing.T) {
	rateLimiterLock.Lock()
	clients = map[string]*client{
		"203.0.113.9": {lastSeen: time.Now().Add(-2 * window), count: limit + 10},
	}
	rateLimiterLock.Unlock()

	if w := doPing(limitedRouter(), "203.0.113.9:1000"); w.Code != http.StatusOK {
		t.Fatalf("a stale window must reset the counter, got %d", w.Code)
	}
}

func TestRequestLogger_PassesThrough(t *testing.T) {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.Use(RequestID(), RequestLogger())
	r.GET("/ping", func(c *gin.Context) { c.String(http.StatusOK, "pong") })

	w := doPing(r, "203.0.113.3:1000")
	if w.Code != http.StatusOK {
		t.Fatalf("logger middleware must not alter the response, got %d", w.Code)
	}
	if w.Body.String() != "pong" {
		t.Fatalf("unexpected body: %s", w.Body.String())
	}
}
