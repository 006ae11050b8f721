package middleware

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/labstack/echo/v4"

	"github.com/gimnasiojp/gym-dashboard/internal/core/domain"
	"github.com/gimnasiojp/gym-dashboard/internal/infrastructure/upstream"
)

type stubSessions struct {
	sessions map[string]*domain.Session
}

func (s *stubSessions) Login(_ context.Context, _, _ string) (string, *domain.Session, error) {
	return "", nil, domain.ErrInvalidCredentials
}

func (s *stubSessions) Current(_ context.Context, sessionID string) (*domain.Session, error) {
	session, ok := s.sessions[sessionID]
	if !ok {
		return nil, domain.ErrSessionNotFound
	}
	return session, nil
}

func (s *stubSessions) Logout(_ context.Context, sessionID string) error {
	delete(s.sessions, sessionID)
	return nil
}

func signTestToken(t *testing.T, secret, sid string) string {
	t.Helper()
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{
		"sid": sid,
		"exp": time.Now().Add(time.Hour).Unix(),
	})
	signed, err := token.SignedString([]byte(secret))
	if err != nil {
		t.Fatalf("sign token: %v", err)
	}
	return signed
}

func TestAuth_ValidToken(t *testing.T) {
	sessions := &stubSessions{sessions: map[string]*domain.Session{
		"s1": {
			ID:            "s1",
			Identity:      domain.Identity{Name: "Carlos", Role: domain.RoleGerente, UserType: domain.UserTypeStaff},
			UpstreamToken: "upstream-jwt",
		},
	}}

	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.Header.Set("Authorization", "Bearer "+signTestToken(t, "secret", "s1"))
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	called := false
	handler := Auth("secret", sessions)(func(c echo.Context) error {
		called = true
		if c.Get("role") != domain.RoleGerente {
			t.Fatalf("role not set: %v", c.Get("role"))
		}
		identity, ok := c.Get("identity").(domain.Identity)
		if !ok || identity.Name != "Carlos" {
			t.Fatalf("identity not set: %v", c.Get("identity"))
		}
		return c.NoContent(http.StatusOK)
	})

	if err := handler(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}
	if !called {
		t.Fatalf("next not called")
	}
}

func TestAuth_UpstreamTokenPropagated(t *testing.T) {
	sessions := &stubSessions{sessions: map[string]*domain.Session{
		"s1": {ID: "s1", Identity: domain.Identity{Role: domain.RoleFundador}, UpstreamToken: "upstream-jwt"},
	}}

	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.Header.Set("Authorization", "Bearer "+signTestToken(t, "secret", "s1"))
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	handler := Auth("secret", sessions)(func(c echo.Context) error {
		// the bearer token must be visible to outbound gym API calls
		probe := httptest.NewRequest(http.MethodGet, "http://gym/api/clientes", nil).
			WithContext(c.Request().Context())
		upstream.Authorize(probe)
		if got := probe.Header.Get("Authorization"); got != "Bearer upstream-jwt" {
			t.Fatalf("upstream authorization = %q", got)
		}
		return c.NoContent(http.StatusOK)
	})

	if err := handler(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}
}

func TestAuth_MissingHeader(t *testing.T) {
	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	handler := Auth("secret", &stubSessions{})(func(c echo.Context) error {
		t.Fatalf("should not reach next")
		return nil
	})

	if err := handler(c); err != nil {
		e.HTTPErrorHandler(err, c)
	}
	if rec.Code != http.StatusUnauthorized {
		t.Fatalf("expected 401, got %d", rec.Code)
	}
}

func TestAuth_WrongSignature(t *testing.T) {
	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.Header.Set("Authorization", "Bearer "+signTestToken(t, "other-secret", "s1"))
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	handler := Auth("secret", &stubSessions{})(func(c echo.Context) error {
		t.Fatalf("should not reach next")
		return nil
	})

	if err := handler(c); err != nil {
		e.HTTPErrorHandler(err, c)
	}
	if rec.Code != http.StatusUnauthorized {
		t.Fatalf("expected 401, got %d", rec.Code)
	}
}

func TestAuth_LoggedOutSession(t *testing.T) {
	// valid JWT, but the session behind it no longer exists
	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.Header.Set("Authorization", "Bearer "+signTestToken(t, "secret", "gone"))
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	handler := Auth("secret", &stubSessions{sessions: map[string]*domain.Session{}})(func(c echo.Context) error {
		t.Fatalf("should not reach next")
		return nil
	})

	err := handler(c)
	if err == nil {
		t.Fatalf("expected error for logged-out session")
	}
}
