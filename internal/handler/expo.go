package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/iliyamo/expo-management/internal/apperr"
	"github.com/iliyamo/expo-management/internal/model"
	"github.com/iliyamo/expo-management/internal/service"
)

// ExpoHandler serves expo and session endpoints.
type ExpoHandler struct {
	Svc *service.Service
}

func NewExpoHandler(svc *service.Service) *ExpoHandler { return &ExpoHandler{Svc: svc} }

func (h *ExpoHandler) ListExpos(c echo.Context) error {
	list, err := h.Svc.ListExpos(c.Request().Context(), actor(c))
	if err != nil {
		return writeError(c, err)
	}
	return items(c, list)
}

func (h *ExpoHandler) GetExpo(c echo.Context) error {
	id, err := parseID(c, "id")
	if err != nil {
		return writeError(c, err)
	}
	e, err := h.Svc.GetExpo(c.Request().Context(), actor(c), id)
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(http.StatusOK, e)
}

func (h *ExpoHandler) CreateExpo(c echo.Context) error {
	var in service.ExpoInput
	if err := bindJSON(c, &in); err != nil {
		return writeError(c, err)
	}
	e, err := h.Svc.CreateExpo(c.Request().Context(), actor(c), in)
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(http.StatusCreated, e)
}

func (h *ExpoHandler) UpdateExpo(c echo.Context) error {
	id, err := parseID(c, "id")
	if err != nil {
		return writeError(c, err)
	}
	var patch model.ExpoPatch
	if err := bindJSON(c, &patch); err != nil {
		return writeError(c, err)
	}
	e, err := h.Svc.UpdateExpo(c.Request().Context(), actor(c), id, patch)
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(http.StatusOK, e)
}

func (h *ExpoHandler) DeleteExpo(c echo.Context) error {
	id, err := parseID(c, "id")
	if err != nil {
		return writeError(c, err)
	}
	if err := h.Svc.DeleteExpo(c.Request().Context(), actor(c), id); err != nil {
		return writeError(c, err)
	}
	return message(c, http.StatusOK, "expo deleted")
}

// ListSessions accepts an optional expoId query parameter.
func (h *ExpoHandler) ListSessions(c echo.Context) error {
	var expoID *primitive.ObjectID
	if raw := c.QueryParam("expoId"); raw != "" {
		id, err := primitive.ObjectIDFromHex(raw)
		if err != nil {
			return writeError(c, apperr.Validation("invalid expoId"))
		}
		expoID = &id
	}
	list, err := h.Svc.ListSessions(c.Request().Context(), actor(c), expoID)
	if err != nil {
		return writeError(c, err)
	}
	return items(c, list)
}

func (h *ExpoHandler) GetSession(c echo.Context) error {
	id, err := parseID(c, "id")
	if err != nil {
		return writeError(c, err)
	}
	s, err := h.Svc.GetSession(c.Request().Context(), actor(c), id)
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(http.StatusOK, s)
}

func (h *ExpoHandler) CreateSession(c echo.Context) error {
	var in service.SessionInput
	if err := bindJSON(c, &in); err != nil {
		return writeError(c, err)
	}
	s, err := h.Svc.CreateSession(c.Request().Context(), actor(c), in)
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(http.StatusCreated, s)
}

func (h *ExpoHandler) UpdateSession(c echo.Context) error {
	id, err := parseID(c, "id")
	if err != nil {
		return writeError(c, err)
	}
	var patch model.SessionPatch
	if err := bindJSON(c, &patch); err != nil {
		return writeError(c, err)
	}
	s, err := h.Svc.UpdateSession(c.Request().Context(), actor(c), id, patch)
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(http.StatusOK, s)
}

// DeleteSession also removes the session's bookmarks and registrations.
func (h *ExpoHandler) DeleteSession(c echo.Context) error {
	id, err := parseID(c, "id")
	if err != nil {
		return writeError(c, err)
	}
	if err := h.Svc.DeleteSession(c.Request().Context(), actor(c), id); err != nil {
		return writeError(c, err)
	}
	return message(c, http.StatusOK, "session deleted")
}
