package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/iliyamo/expo-management/internal/model"
	"github.com/iliyamo/expo-management/internal/service"
)

// ExhibitorHandler serves exhibitor profile and booth endpoints.
type ExhibitorHandler struct {
	Svc *service.Service
}

func NewExhibitorHandler(svc *service.Service) *ExhibitorHandler { return &ExhibitorHandler{Svc: svc} }

// List filters by the optional search query parameter.
func (h *ExhibitorHandler) List(c echo.Context) error {
	list, err := h.Svc.ListExhibitors(c.Request().Context(), actor(c), c.QueryParam("search"))
	if err != nil {
		return writeError(c, err)
	}
	return items(c, list)
}

func (h *ExhibitorHandler) Get(c echo.Context) error {
	id, err := parseID(c, "id")
	if err != nil {
		return writeError(c, err)
	}
	x, err := h.Svc.GetExhibitor(c.Request().Context(), actor(c), id)
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(http.StatusOK, x)
}

func (h *ExhibitorHandler) GetByUser(c echo.Context) error {
	id, err := parseID(c, "userId")
	if err != nil {
		return writeError(c, err)
	}
	x, err := h.Svc.GetExhibitorByUser(c.Request().Context(), actor(c), id)
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(http.StatusOK, x)
}

func (h *ExhibitorHandler) Create(c echo.Context) error {
	var in service.ExhibitorInput
	if err := bindJSON(c, &in); err != nil {
		return writeError(c, err)
	}
	x, err := h.Svc.CreateExhibitor(c.Request().Context(), actor(c), in)
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(http.StatusCreated, x)
}

// UpdateOwn patches the caller's profile.
func (h *ExhibitorHandler) UpdateOwn(c echo.Context) error {
	var patch model.ExhibitorPatch
	if err := bindJSON(c, &patch); err != nil {
		return writeError(c, err)
	}
	x, err := h.Svc.UpdateOwnExhibitor(c.Request().Context(), actor(c), patch)
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(http.StatusOK, x)
}

func (h *ExhibitorHandler) Update(c echo.Context) error {
	id, err := parseID(c, "id")
	if err != nil {
		return writeError(c, err)
	}
	var patch model.ExhibitorPatch
	if err := bindJSON(c, &patch); err != nil {
		return writeError(c, err)
	}
	x, err := h.Svc.UpdateExhibitor(c.Request().Context(), actor(c), id, patch)
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(http.StatusOK, x)
}

func (h *ExhibitorHandler) Approve(c echo.Context) error {
	return h.review(c, model.ApplicationApproved)
}

func (h *ExhibitorHandler) Reject(c echo.Context) error {
	return h.review(c, model.ApplicationRejected)
}

func (h *ExhibitorHandler) review(c echo.Context, status model.ApplicationStatus) error {
	id, err := parseID(c, "id")
	if err != nil {
		return writeError(c, err)
	}
	x, err := h.Svc.ReviewExhibitor(c.Request().Context(), actor(c), id, status)
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(http.StatusOK, x)
}

// Delete releases the profile's booths and removes it.
func (h *ExhibitorHandler) Delete(c echo.Context) error {
	id, err := parseID(c, "id")
	if err != nil {
		return writeError(c, err)
	}
	if err := h.Svc.DeleteExhibitor(c.Request().Context(), actor(c), id); err != nil {
		return writeError(c, err)
	}
	return message(c, http.StatusOK, "exhibitor deleted")
}

func (h *ExhibitorHandler) AvailableBooths(c echo.Context) error {
	list, err := h.Svc.ListAvailableBooths(c.Request().Context(), actor(c))
	if err != nil {
		return writeError(c, err)
	}
	return items(c, list)
}

func (h *ExhibitorHandler) ReservedBooths(c echo.Context) error {
	list, err := h.Svc.ListReservedBooths(c.Request().Context(), actor(c))
	if err != nil {
		return writeError(c, err)
	}
	return items(c, list)
}

func (h *ExhibitorHandler) MyBooths(c echo.Context) error {
	list, err := h.Svc.ListMyBooths(c.Request().Context(), actor(c))
	if err != nil {
		return writeError(c, err)
	}
	return items(c, list)
}

func (h *ExhibitorHandler) GetBooth(c echo.Context) error {
	id, err := parseID(c, "id")
	if err != nil {
		return writeError(c, err)
	}
	b, err := h.Svc.GetBooth(c.Request().Context(), actor(c), id)
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(http.StatusOK, b)
}

func (h *ExhibitorHandler) CreateBooth(c echo.Context) error {
	var in service.BoothInput
	if err := bindJSON(c, &in); err != nil {
		return writeError(c, err)
	}
	b, err := h.Svc.CreateBooth(c.Request().Context(), actor(c), in)
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(http.StatusCreated, b)
}

func (h *ExhibitorHandler) UpdateBooth(c echo.Context) error {
	id, err := parseID(c, "id")
	if err != nil {
		return writeError(c, err)
	}
	var patch model.BoothPatch
	if err := bindJSON(c, &patch); err != nil {
		return writeError(c, err)
	}
	b, err := h.Svc.UpdateBooth(c.Request().Context(), actor(c), id, patch)
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(http.StatusOK, b)
}

func (h *ExhibitorHandler) DeleteBooth(c echo.Context) error {
	id, err := parseID(c, "id")
	if err != nil {
		return writeError(c, err)
	}
	if err := h.Svc.DeleteBooth(c.Request().Context(), actor(c), id); err != nil {
		return writeError(c, err)
	}
	return message(c, http.StatusOK, "booth deleted")
}
