package middleware

import (
	"github.com/labstack/echo/v4"

	"github.com/iliyamo/expo-management/internal/policy"
)

const actorKey = "actor"

// SetActor stores the authenticated caller on the context.
func SetActor(c echo.Context, a policy.Actor) { c.Set(actorKey, a) }

// ActorFrom returns the caller stored by JWTAuth, or policy.Anonymous.
func ActorFrom(c echo.Context) policy.Actor {
	if a, ok := c.Get(actorKey).(policy.Actor); ok {
		return a
	}
	return policy.Anonymous
}

// userID identifies the caller in rate limit keys and logs; anonymous
// callers are "guest".
func userID(c echo.Context) string {
	a := ActorFrom(c)
	if !a.Authenticated() {
		return "guest"
	}
	return a.ID.Hex()
}
