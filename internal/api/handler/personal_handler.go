package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/gimnasiojp/gym-dashboard/internal/core/domain"
	"github.com/gimnasiojp/gym-dashboard/internal/core/ports"
)

// PersonalHandler proxies the HR section: the personnel roster plus the
// recent-hires and headcount widgets on the recursos-humanos dashboard.
type PersonalHandler struct {
	personnel ports.Personnel
}

func NewPersonalHandler(personnel ports.Personnel) *PersonalHandler {
	return &PersonalHandler{personnel: personnel}
}

func (h *PersonalHandler) List(c echo.Context) error {
	personal, err := h.personnel.List(c.Request().Context())
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, personal)
}

func (h *PersonalHandler) Get(c echo.Context) error {
	persona, err := h.personnel.Get(c.Request().Context(), c.Param("id"))
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, persona)
}

func (h *PersonalHandler) Stats(c echo.Context) error {
	stats, err := h.personnel.Stats(c.Request().Context())
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, stats)
}

func (h *PersonalHandler) Recent(c echo.Context) error {
	recientes, err := h.personnel.Recent(c.Request().Context())
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, recientes)
}

func (h *PersonalHandler) Create(c echo.Context) error {
	var persona domain.Record
	if err := c.Bind(&persona); err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "invalid payload"})
	}
	created, err := h.personnel.Create(c.Request().Context(), persona)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusCreated, created)
}

func (h *PersonalHandler) Update(c echo.Context) error {
	var persona domain.Record
	if err := c.Bind(&persona); err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "invalid payload"})
	}
	updated, err := h.personnel.Update(c.Request().Context(), c.Param("id"), persona)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, updated)
}

func (h *PersonalHandler) Delete(c echo.Context) error {
	if err := h.personnel.Delete(c.Request().Context(), c.Param("id")); err != nil {
		return err
	}
	return c.NoContent(http.StatusNoContent)
}

func (h *PersonalHandler) SetStatus(c echo.Context) error {
	var req estadoRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "invalid payload"})
	}
	if err := c.Validate(&req); err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": err.Error()})
	}
	updated, err := h.personnel.SetStatus(c.Request().Context(), c.Param("id"), req.Estado)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, updated)
}
