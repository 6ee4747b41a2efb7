package handler

import (
	"encoding/json"
	"errors"
	"io"
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/rs/zerolog/log"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/iliyamo/expo-management/internal/apperr"
	"github.com/iliyamo/expo-management/internal/middleware"
	"github.com/iliyamo/expo-management/internal/policy"
	"github.com/iliyamo/expo-management/internal/service"
)

// actor returns the caller identified by the JWT middleware, or
// policy.Anonymous on public routes.
func actor(c echo.Context) policy.Actor { return middleware.ActorFrom(c) }

// bindJSON decodes the request body into dst and rejects unknown fields so
// clients cannot set attributes the patch types do not enumerate.
func bindJSON(c echo.Context, dst any) error { return decodeJSON(c, dst, true) }

// bindOptionalJSON is bindJSON for endpoints whose body may be empty.
func bindOptionalJSON(c echo.Context, dst any) error { return decodeJSON(c, dst, false) }

func decodeJSON(c echo.Context, dst any, required bool) error {
	dec := json.NewDecoder(c.Request().Body)
	dec.DisallowUnknownFields()
	if err := dec.Decode(dst); err != nil {
		var ae *apperr.Error
		switch {
		case errors.Is(err, io.EOF) && !required:
			return nil
		case errors.Is(err, io.EOF):
			return apperr.Validation("request body is required")
		case errors.As(err, &ae):
			return ae
		}
		return apperr.Validation("invalid body: %s", err.Error())
	}
	if dec.More() {
		return apperr.Validation("invalid body: trailing data")
	}
	return nil
}

func parseID(c echo.Context, name string) (primitive.ObjectID, error) {
	id, err := primitive.ObjectIDFromHex(c.Param(name))
	if err != nil {
		return primitive.NilObjectID, apperr.Validation("invalid %s", name)
	}
	return id, nil
}

var statusByKind = map[apperr.Kind]int{
	apperr.KindValidation:      http.StatusBadRequest,
	apperr.KindConflict:        http.StatusConflict,
	apperr.KindNotFound:        http.StatusNotFound,
	apperr.KindForbidden:       http.StatusForbidden,
	apperr.KindUnauthenticated: http.StatusUnauthorized,
	apperr.KindTimeout:         http.StatusGatewayTimeout,
	apperr.KindInternal:        http.StatusInternalServerError,
}

// writeError renders err as {"error": message}.  A partially applied
// cascade is reported as 207 with the completed steps.
func writeError(c echo.Context, err error) error {
	var warn *service.IntegrityWarning
	if errors.As(err, &warn) {
		return c.JSON(http.StatusMultiStatus, echo.Map{
			"error":     "operation partially applied",
			"completed": warn.Completed,
			"failed":    warn.Failed,
		})
	}
	kind := apperr.KindOf(err)
	status, ok := statusByKind[kind]
	if !ok {
		status = http.StatusInternalServerError
	}
	if status >= http.StatusInternalServerError {
		log.Error().Err(err).Str("method", c.Request().Method).Str("path", c.Path()).Msg("request failed")
	}
	return c.JSON(status, echo.Map{"error": apperr.Message(err)})
}

// items wraps a listing the way every list endpoint returns it.
func items[T any](c echo.Context, list []T) error {
	if list == nil {
		list = []T{}
	}
	return c.JSON(http.StatusOK, echo.Map{"items": list})
}

func message(c echo.Context, status int, msg string) error {
	return c.JSON(status, echo.Map{"message": msg})
}
