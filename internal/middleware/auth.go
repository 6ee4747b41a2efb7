package middleware

import (
	"net/http"
	"strings"

	"github.com/labstack/echo/v4"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/iliyamo/expo-management/internal/model"
	"github.com/iliyamo/expo-management/internal/policy"
	"github.com/iliyamo/expo-management/internal/utils"
)

// JWTAuth validates the Bearer access token and stores the caller as a
// policy.Actor in the request context.  Handlers read it with ActorFrom.
func JWTAuth(secret string) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			a, msg := bearerActor(secret, c)
			if msg != "" {
				return c.JSON(http.StatusUnauthorized, echo.Map{"error": msg})
			}
			SetActor(c, a)
			return next(c)
		}
	}
}

// Identify stores the caller when the request carries a valid access token
// and otherwise passes it on as anonymous.  It runs ahead of the rate
// limiter so buckets are keyed by user; JWTAuth still guards the routes.
func Identify(secret string) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			if a, msg := bearerActor(secret, c); msg == "" {
				SetActor(c, a)
			}
			return next(c)
		}
	}
}

// bearerActor parses the Authorization header.  A non-empty msg says why
// the request is not authenticated.
func bearerActor(secret string, c echo.Context) (policy.Actor, string) {
	auth := c.Request().Header.Get(echo.HeaderAuthorization)
	if !strings.HasPrefix(auth, "Bearer ") {
		return policy.Anonymous, "missing bearer token"
	}
	raw := strings.TrimSpace(strings.TrimPrefix(auth, "Bearer "))

	claims, err := utils.ParseAccessToken(secret, raw)
	if err != nil {
		return policy.Anonymous, "invalid token"
	}
	id, err := primitive.ObjectIDFromHex(claims.Subject)
	if err != nil {
		return policy.Anonymous, "invalid claims"
	}
	role, ok := model.ParseRole(claims.Role)
	if !ok {
		return policy.Anonymous, "invalid claims"
	}
	return policy.Actor{ID: id, Role: role}, ""
}
