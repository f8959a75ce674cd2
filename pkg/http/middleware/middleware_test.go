package middleware

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	applogger "StonkWatch/pkg/logger"

	"github.com/labstack/echo/v4"
)

func TestRecoverConvertsPanicTo500(t *testing.T) {
	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/boom", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	h := Recover(applogger.Nop())(func(c echo.Context) error {
		panic("boom")
	})
	if err := h(c); err != nil {
		t.Fatalf("panic must not escape as an error: %v", err)
	}
	if rec.Code != http.StatusInternalServerError {
		t.Fatalf("status = %d, want 500", rec.Code)
	}
}

func TestCORSPreflightShortCircuits(t *testing.T) {
	e := echo.New()
	req := httptest.NewRequest(http.MethodOptions, "/api/watchlist", nil)
	req.Header.Set(echo.HeaderOrigin, "http://localhost:3000")
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	called := false
	h := CORS(DefaultCORSConfig())(func(c echo.Context) error {
		called = true
		return nil
	})
	if err := h(c); err != nil {
		t.Fatalf("cors: %v", err)
	}
	if called {
		t.Fatalf("preflight must not reach the handler")
	}
	if rec.Code != http.StatusNoContent {
		t.Fatalf("status = %d, want 204", rec.Code)
	}
	if got := rec.Header().Get(echo.HeaderAccessControlAllowOrigin); got != "http://localhost:3000" {
		t.Fatalf("allow-origin = %q", got)
	}
	if methods := rec.Header().Get(echo.HeaderAccessControlAllowMethods); !strings.Contains(methods, http.MethodDelete) {
		t.Fatalf("allow-methods = %q, want DELETE included", methods)
	}
}

func TestCORSDisallowedOriginPassesThrough(t *testing.T) {
	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/api/news", nil)
	req.Header.Set(echo.HeaderOrigin, "http://evil.example")
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	cfg := DefaultCORSConfig()
	cfg.AllowOrigins = []string{"http://localhost:3000"}

	called := false
	h := CORS(cfg)(func(c echo.Context) error {
		called = true
		return nil
	})
	if err := h(c); err != nil {
		t.Fatalf("cors: %v", err)
	}
	if !called {
		t.Fatalf("request itself must still be served")
	}
	if got := rec.Header().Get(echo.HeaderAccessControlAllowOrigin); got != "" {
		t.Fatalf("unexpected allow-origin %q for disallowed origin", got)
	}
}
