package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/gimnasiojp/gym-dashboard/internal/core/domain"
)

// ctxIdentity extracts the identity and session ID injected by the Auth
// middleware and performs a fast-fail check before any service call: both
// must be present, their absence means the middleware did not run.
func ctxIdentity(c echo.Context) (domain.Identity, string, error) {
	identity, ok := c.Get("identity").(domain.Identity)
	sessionID, _ := c.Get("session_id").(string)
	if !ok || sessionID == "" {
		return domain.Identity{}, "", echo.NewHTTPError(http.StatusUnauthorized, "missing authentication claims")
	}
	return identity, sessionID, nil
}
