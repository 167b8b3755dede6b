package middleware

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

func newEngine() (*gin.Engine, *string) {
	gin.SetMode(gin.TestMode)
	seen := new(string)

	r := gin.New()
	r.Use(RequestID())
	r.GET("/", func(c *gin.Context) {
		*seen = GetRequestID(c)
		c.Status(http.StatusOK)
	})
	return r, seen
}

func TestRequestIDGenerated(t *testing.T) {
	r, seen := newEngine()

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/", nil))

	got := w.Header().Get(RequestIDHeader)
	if _, err := uuid.Parse(got); err != nil {
		t.Fatalf("response id %q is not a UUID: %v", got, err)
	}
	if *seen != got {
		t.Errorf("context id = %q, header id = %q", *seen, got)
	}
}

func TestRequestIDPropagated(t *testing.T) {
	r, seen := newEngine()

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.Header.Set(RequestIDHeader, "abc-123")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	if got := w.Header().Get(RequestIDHeader); got != "abc-123" {
		t.Errorf("header id = %q, want abc-123", got)
	}
	if *seen != "abc-123" {
		t.Errorf("context id = %q, want abc-123", *seen)
	}
}

func TestRequestIDTooLongReplaced(t *testing.T) {
	r, _ := newEngine()

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.Header.Set(RequestIDHeader, strings.Repeat("x", maxRequestIDLen+1))
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	if _, err := uuid.Parse(w.Header().Get(RequestIDHeader)); err != nil {
		t.Errorf("oversized id was not replaced: %v", err)
	}
}
