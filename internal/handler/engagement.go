package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/iliyamo/expo-management/internal/model"
	"github.com/iliyamo/expo-management/internal/service"
)

// EngagementHandler serves bookmarks, feedback and messages.
type EngagementHandler struct {
	Svc *service.Service
}

func NewEngagementHandler(svc *service.Service) *EngagementHandler {
	return &EngagementHandler{Svc: svc}
}

type bookmarkReq struct {
	SessionID primitive.ObjectID `json:"sessionId"`
}

type feedbackReq struct {
	Message string `json:"message"`
}

func (h *EngagementHandler) CreateBookmark(c echo.Context) error {
	var req bookmarkReq
	if err := bindJSON(c, &req); err != nil {
		return writeError(c, err)
	}
	b, err := h.Svc.Bookmark(c.Request().Context(), actor(c), req.SessionID)
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(http.StatusCreated, b)
}

func (h *EngagementHandler) ListBookmarks(c echo.Context) error {
	list, err := h.Svc.ListBookmarks(c.Request().Context(), actor(c))
	if err != nil {
		return writeError(c, err)
	}
	return items(c, list)
}

func (h *EngagementHandler) DeleteBookmark(c echo.Context) error {
	id, err := parseID(c, "sessionId")
	if err != nil {
		return writeError(c, err)
	}
	if err := h.Svc.RemoveBookmark(c.Request().Context(), actor(c), id); err != nil {
		return writeError(c, err)
	}
	return message(c, http.StatusOK, "bookmark removed")
}

func (h *EngagementHandler) SubmitFeedback(c echo.Context) error {
	var req feedbackReq
	if err := bindJSON(c, &req); err != nil {
		return writeError(c, err)
	}
	f, err := h.Svc.SubmitFeedback(c.Request().Context(), actor(c), req.Message)
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(http.StatusCreated, f)
}

func (h *EngagementHandler) ListFeedback(c echo.Context) error {
	list, err := h.Svc.ListFeedback(c.Request().Context(), actor(c))
	if err != nil {
		return writeError(c, err)
	}
	return items(c, list)
}

func (h *EngagementHandler) DeleteFeedback(c echo.Context) error {
	id, err := parseID(c, "id")
	if err != nil {
		return writeError(c, err)
	}
	if err := h.Svc.DeleteFeedback(c.Request().Context(), actor(c), id); err != nil {
		return writeError(c, err)
	}
	return message(c, http.StatusOK, "feedback deleted")
}

func (h *EngagementHandler) SendMessage(c echo.Context) error {
	var in service.MessageInput
	if err := bindJSON(c, &in); err != nil {
		return writeError(c, err)
	}
	m, err := h.Svc.SendMessage(c.Request().Context(), actor(c), in)
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(http.StatusCreated, m)
}

func (h *EngagementHandler) AttendeeMessages(c echo.Context) error {
	return h.messagesFrom(c, model.RoleAttendee)
}

func (h *EngagementHandler) ExhibitorMessages(c echo.Context) error {
	return h.messagesFrom(c, model.RoleExhibitor)
}

func (h *EngagementHandler) messagesFrom(c echo.Context, role model.Role) error {
	list, err := h.Svc.ListMessagesToAdmin(c.Request().Context(), actor(c), role)
	if err != nil {
		return writeError(c, err)
	}
	return items(c, list)
}

func (h *EngagementHandler) DeleteMessage(c echo.Context) error {
	id, err := parseID(c, "id")
	if err != nil {
		return writeError(c, err)
	}
	if err := h.Svc.DeleteMessage(c.Request().Context(), actor(c), id); err != nil {
		return writeError(c, err)
	}
	return message(c, http.StatusOK, "message deleted")
}
