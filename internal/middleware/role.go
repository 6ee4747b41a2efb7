package middleware

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/iliyamo/expo-management/internal/model"
)

// RequireRole rejects callers whose role is not in roles.  With no roles
// any authenticated caller passes.  It must run after JWTAuth.
func RequireRole(roles ...model.Role) echo.MiddlewareFunc {
	allowed := make(map[model.Role]bool, len(roles))
	for _, r := range roles {
		allowed[r] = true
	}
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			actor := ActorFrom(c)
			if !actor.Authenticated() {
				return c.JSON(http.StatusUnauthorized, echo.Map{"error": "authentication required"})
			}
			if len(allowed) > 0 && !allowed[actor.Role] {
				return c.JSON(http.StatusForbidden, echo.Map{"error": "forbidden"})
			}
			return next(c)
		}
	}
}
