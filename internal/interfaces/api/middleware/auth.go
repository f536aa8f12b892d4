package middleware

import (
	"net/http"
	"strings"

	"bodhira/internal/application/service"
	"bodhira/internal/pkg/logger"

	"github.com/labstack/echo/v4"
)

// ContextUserKey is the echo context key under which the authenticated
// username is stored.
const ContextUserKey = "username"

// RequireAuth validates the Authorization bearer token and stores the
// authenticated username in the request context.
func RequireAuth(authSvc service.AuthService, log logger.Logger) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			header := c.Request().Header.Get(echo.HeaderAuthorization)
			const prefix = "Bearer "
			if !strings.HasPrefix(header, prefix) {
				return c.JSON(http.StatusUnauthorized, map[string]string{"error": "missing bearer token"})
			}

			username, err := authSvc.ParseToken(strings.TrimPrefix(header, prefix))
			if err != nil {
				log.Debug("Rejected request with invalid bearer token")
				return c.JSON(http.StatusUnauthorized, map[string]string{"error": "invalid or expired token"})
			}

			c.Set(ContextUserKey, username)
			return next(c)
		}
	}
}

// Username extracts the authenticated username set by RequireAuth.
func Username(c echo.Context) string {
	username, _ := c.Get(ContextUserKey).(string)
	return username
}
