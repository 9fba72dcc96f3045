package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

func TestRequestID(t *testing.T) {
	gin.SetMode(gin.TestMode)
	router := gin.New()
	router.Use(RequestID())

	var seen string
	router.GET("/ping", func(c *gin.Context) {
		rid, _ := c.Get(RequestIDKey)
		seen, _ = rid.(string)
		c.String(http.StatusOK, "pong")
	})

	w := httptest.NewRecorder()
	router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/ping", nil))

	header := w.Header().Get("X-Request-ID")
	if header == "" {
		t.Fatalf("X-Request-ID header missing")
	}
	if header != seen {
		t.Fatalf("context id %q does not match header %q", seen, header)
	}
	if _, err := uuid.Parse(header); err != nil {
		t.Fatalf("request id is not a valid UUID: %v", err)
	}
}

func TestRequestID_UniquePerRequest(t *testing.T) {
	gin.SetMode(gin.TestMode)
	router := gin.New()
	router.Use(RequestID())
	router.GET("/ping", func(c *gin.Context) { c.String(http.StatusOK, "pong") })

	ids := make(map[string]struct{})
	for i := 0; i < 10; i++ {
		w := httptest.NewRecorder()
		router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/ping", nil))
		ids[w.Header().Get("X-Request-ID")] = struct{}{}
	}
	if len(ids) != 10 {
		t.Fatalf("expected 10 distinct request ids, got %d", len(ids))
	}
}
