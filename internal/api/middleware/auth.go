package middleware

import (
	"net/http"
	"strings"

	"github.com/golang-jwt/jwt/v5"
	"github.com/labstack/echo/v4"

	"github.com/gimnasiojp/gym-dashboard/internal/core/ports"
	"github.com/gimnasiojp/gym-dashboard/internal/infrastructure/upstream"
)

// Auth validates the session token and loads the persisted session behind it.
// The resolved identity lands in the echo context; the session's upstream
// bearer token lands in the request context so outbound gym API calls carry
// it automatically. A token whose session has been logged out or expired is
// rejected even when the JWT itself is still valid.
func Auth(jwtSecret string, sessions ports.SessionService) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			authHeader := c.Request().Header.Get("Authorization")
			if authHeader == "" {
				return echo.NewHTTPError(http.StatusUnauthorized, "missing authorization header")
			}

			parts := strings.SplitN(authHeader, " ", 2)
			if len(parts) != 2 || !strings.EqualFold(parts[0], "bearer") {
				return echo.NewHTTPError(http.StatusUnauthorized, "invalid authorization header")
			}

			claims := jwt.MapClaims{}
			tkn, err := jwt.ParseWithClaims(parts[1], claims, func(token *jwt.Token) (interface{}, error) {
				if token.Method.Alg() != jwt.SigningMethodHS256.Alg() {
					return nil, jwt.ErrTokenSignatureInvalid
				}
				return []byte(jwtSecret), nil
			})
			if err != nil || !tkn.Valid {
				return echo.NewHTTPError(http.StatusUnauthorized, "invalid token")
			}

			sid, _ := claims["sid"].(string)
			if sid == "" {
				return echo.NewHTTPError(http.StatusUnauthorized, "token missing session id")
			}

			session, err := sessions.Current(c.Request().Context(), sid)
			if err != nil {
				return err
			}

			c.Set("session_id", session.ID)
			c.Set("identity", session.Identity)
			c.Set("role", session.Identity.Role)
			c.Set("user_type", session.Identity.UserType)

			if session.UpstreamToken != "" {
				req := c.Request()
				c.SetRequest(req.WithContext(upstream.WithToken(req.Context(), session.UpstreamToken)))
			}

			return next(c)
		}
	}
}
