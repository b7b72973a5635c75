package middleware

import (
	"net/http"
	"strings"

	"finance-dashboard/pkg/token"

	"github.com/labstack/echo/v4"
)

const (
	ContextKeyUserID    = "user_id"
	ContextKeyUserEmail = "user_email"
)

// BearerAuth rejects requests without a valid Authorization: Bearer credential
// and stores the verified identity on the echo context.
func BearerAuth(tokens *token.Service) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			header := c.Request().Header.Get(echo.HeaderAuthorization)
			if !strings.HasPrefix(header, "Bearer ") {
				return c.JSON(http.StatusUnauthorized, map[string]string{"error": "Não autorizado"})
			}

			claims := tokens.Verify(strings.TrimPrefix(header, "Bearer "))
			if claims == nil {
				return c.JSON(http.StatusUnauthorized, map[string]string{"error": "Não autorizado"})
			}

			c.Set(ContextKeyUserID, claims.UserID)
			c.Set(ContextKeyUserEmail, claims.Email)
			return next(c)
		}
	}
}
