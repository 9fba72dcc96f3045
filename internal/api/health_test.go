package api

import (
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
)

func TestHealthEndpoints(t *testing.T) {
	cases := []struct {
		name       string
		ready      func() error
		path       string
		wantStatus int
	}{
		{name: "liveness always ok", ready: func() error { return errors.New("down") }, path: "/healthz", wantStatus: http.StatusOK},
		{name: "ready", ready: func() error { return nil }, path: "/readyz", wantStatus: http.StatusOK},
		{name: "degraded", ready: func() error { return errors.New("alias table empty") }, path: "/readyz", wantStatus: http.StatusServiceUnavailable},
		{name: "nil check counts as ready", ready: nil, path: "/readyz", wantStatus: http.StatusOK},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			gin.SetMode(gin.TestMode)
			router := gin.New()
			NewHealthHandler(tc.ready).Register(router)

			req := httptest.NewRequest(http.MethodGet, tc.path, nil)
			w := httptest.NewRecorder()
			router.ServeHTTP(w, req)

			if w.Code != tc.wantStatus {
				t.Fatalf("expected status %d, got %d", tc.wantStatus, w.Code)
			}
		})
	}
}
