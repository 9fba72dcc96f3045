package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
)

func corsRouter(allowedOrigins []string) *gin.Engine {
	gin.SetMode(gin.TestMode)
	router := gin.New()
	router.Use(CORS(allowedOrigins))
	router.GET("/ping", func(c *gin.Context) { c.String(http.StatusOK, "pong") })
	return router
}

func TestCORS_TableDriven(t *testing.T) {
	cases := []struct {
		name       string
		allowed    []string
		origin     string
		method     string
		wantStatus int
		wantOrigin string
	}{
		{
			name:       "wildcard allows everyone",
			allowed:    []string{"*"},
			origin:     "https://anywhere.example.com",
			method:     http.MethodGet,
			wantStatus: http.StatusOK,
			wantOrigin: "*",
		},
		{
			name:       "exact match echoes the origin",
			allowed:    []string{"https://app.example.com"},
			origin:     "https://app.example.com",
			method:     http.MethodGet,
			wantStatus: http.StatusOK,
			wantOrigin: "https://app.example.com",
		},
		{
			name:       "mismatched origin gets no allow header",
			allowed:    []string{"https://app.example.com"},
			origin:     "https://evil.example.com",
			method:     http.MethodGet,
			wantStatus: http.StatusOK,
			wantOrigin: "",
		},
		{
			name:       "preflight short-circuits",
			allowed:    []string{"*"},
			origin:     "https://app.example.com",
			method:     http.MethodOptions,
			wantStatus: http.StatusNoContent,
			wantOrigin: "*",
		},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			router := corsRouter(tc.allowed)
			req := httptest.NewRequest(tc.method, "/ping", nil)
			if tc.origin != "" {
				req.Header.Set("Origin", tc.origin)
			}
			w := httptest.NewRecorder()
			router.ServeHTTP(w, req)

			if w.Code != tc.wantStatus {
				t.Fatalf("expected status %d, got %d", tc.wantStatus, w.Code)
			}
			if got := w.Header().Get("Access-Control-Allow-Origin"); got != tc.wantOrigin {
				t.Fatalf("Allow-Origin = %q, want %q", got, tc.wantOrigin)
			}
		})
	}
}

func TestCORS_EchoedOriginVaries(t *testing.T) {
	router := corsRouter([]string{"https://app.example.com"})
	req := httptest.NewRequest(http.MethodGet, "/ping", nil)
	req.Header.Set("Origin", "https://app.example.com")
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	if w.Header().Get("Vary") != "Origin" {
		t.Fatalf("echoed origins must set Vary: Origin")
	}
}
