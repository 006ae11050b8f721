package handler

import (
	"errors"
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/gimnasiojp/gym-dashboard/internal/api/metrics"
	"github.com/gimnasiojp/gym-dashboard/internal/core/domain"
	"github.com/gimnasiojp/gym-dashboard/internal/core/ports"
)

// SessionHandler owns the login/logout/reload surface of the dashboard.
type SessionHandler struct {
	sessions ports.SessionService
}

func NewSessionHandler(sessions ports.SessionService) *SessionHandler {
	return &SessionHandler{sessions: sessions}
}

type loginRequest struct {
	Username string `json:"username" validate:"required"`
	Password string `json:"password" validate:"required"`
}

type identityResponse struct {
	Name     string        `json:"name"`
	Role     string        `json:"role,omitempty"`
	UserType string        `json:"userType,omitempty"`
	Profile  domain.Record `json:"profile,omitempty"`
}

type sessionResponse struct {
	Token    string           `json:"token,omitempty"`
	Identity identityResponse `json:"identity"`
	View     domain.View      `json:"view"`
}

// Login resolves credentials into a session.
//
// @Summary      Log in to the dashboard
// @Tags         session
// @Accept       json
// @Produce      json
// @Param        body  body      loginRequest  true  "Credentials"
// @Success      201   {object}  sessionResponse
// @Failure      400   {object}  map[string]string
// @Failure      401   {object}  map[string]string
// @Failure      502   {object}  map[string]string
// @Router       /v1/session [post]
func (h *SessionHandler) Login(c echo.Context) error {
	var req loginRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "invalid payload"})
	}
	if err := c.Validate(&req); err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": err.Error()})
	}

	token, session, err := h.sessions.Login(c.Request().Context(), req.Username, req.Password)
	if err != nil {
		switch {
		case errors.Is(err, domain.ErrUpstreamUnavailable):
			metrics.LoginsTotal.WithLabelValues("unreachable").Inc()
		case errors.Is(err, domain.ErrInvalidCredentials):
			metrics.LoginsTotal.WithLabelValues("invalid").Inc()
		}
		return err
	}

	if session.Identity.UserType == domain.UserTypeCliente {
		metrics.LoginsTotal.WithLabelValues("cliente").Inc()
	} else {
		metrics.LoginsTotal.WithLabelValues("staff").Inc()
	}

	return c.JSON(http.StatusCreated, toSessionResponse(token, session))
}

// Current returns the session behind a valid token without touching the gym
// API: a dashboard reload with a persisted session goes straight back to
// Authenticated.
//
// @Summary      Current session and view
// @Tags         session
// @Produce      json
// @Security     BearerAuth
// @Success      200  {object}  sessionResponse
// @Failure      401  {object}  map[string]string
// @Router       /v1/session [get]
func (h *SessionHandler) Current(c echo.Context) error {
	identity, _, err := ctxIdentity(c)
	if err != nil {
		return err
	}

	return c.JSON(http.StatusOK, sessionResponse{
		Identity: identityResponse{
			Name:     identity.Name,
			Role:     identity.Role,
			UserType: identity.UserType,
			Profile:  identity.Profile,
		},
		View: domain.ViewFor(identity),
	})
}

// Logout clears the persisted session and returns the dashboard to the login
// view.
//
// @Summary      Log out
// @Tags         session
// @Security     BearerAuth
// @Success      204
// @Failure      401  {object}  map[string]string
// @Router       /v1/session [delete]
func (h *SessionHandler) Logout(c echo.Context) error {
	_, sessionID, err := ctxIdentity(c)
	if err != nil {
		return err
	}

	if err := h.sessions.Logout(c.Request().Context(), sessionID); err != nil {
		return err
	}
	return c.NoContent(http.StatusNoContent)
}

func toSessionResponse(token string, session *domain.Session) sessionResponse {
	return sessionResponse{
		Token: token,
		Identity: identityResponse{
			Name:     session.Identity.Name,
			Role:     session.Identity.Role,
			UserType: session.Identity.UserType,
			Profile:  session.Identity.Profile,
		},
		View: domain.ViewFor(session.Identity),
	}
}
