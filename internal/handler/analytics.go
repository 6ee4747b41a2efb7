package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/iliyamo/expo-management/internal/service"
)

// AnalyticsHandler exposes the admin reports.  Results are computed on
// every request.
type AnalyticsHandler struct {
	Svc *service.Service
}

func NewAnalyticsHandler(svc *service.Service) *AnalyticsHandler { return &AnalyticsHandler{Svc: svc} }

func (h *AnalyticsHandler) Expos(c echo.Context) error {
	rows, err := h.Svc.ExpoEngagement(c.Request().Context(), actor(c))
	if err != nil {
		return writeError(c, err)
	}
	return items(c, rows)
}

func (h *AnalyticsHandler) Sessions(c echo.Context) error {
	rows, err := h.Svc.SessionPopularity(c.Request().Context(), actor(c))
	if err != nil {
		return writeError(c, err)
	}
	return items(c, rows)
}

func (h *AnalyticsHandler) Dashboard(c echo.Context) error {
	stats, err := h.Svc.DashboardStats(c.Request().Context(), actor(c))
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(http.StatusOK, stats)
}
