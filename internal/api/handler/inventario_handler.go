package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/gimnasiojp/gym-dashboard/internal/core/domain"
	"github.com/gimnasiojp/gym-dashboard/internal/core/ports"
)

// ProductosHandler proxies the product catalog section.
type ProductosHandler struct {
	catalog ports.ProductCatalog
}

func NewProductosHandler(catalog ports.ProductCatalog) *ProductosHandler {
	return &ProductosHandler{catalog: catalog}
}

func (h *ProductosHandler) List(c echo.Context) error {
	productos, err := h.catalog.List(c.Request().Context())
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, productos)
}

func (h *ProductosHandler) Get(c echo.Context) error {
	producto, err := h.catalog.Get(c.Request().Context(), c.Param("id"))
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, producto)
}

func (h *ProductosHandler) Create(c echo.Context) error {
	var producto domain.Record
	if err := c.Bind(&producto); err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "invalid payload"})
	}
	created, err := h.catalog.Create(c.Request().Context(), producto)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusCreated, created)
}

func (h *ProductosHandler) Update(c echo.Context) error {
	var producto domain.Record
	if err := c.Bind(&producto); err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "invalid payload"})
	}
	updated, err := h.catalog.Update(c.Request().Context(), c.Param("id"), producto)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, updated)
}

func (h *ProductosHandler) Delete(c echo.Context) error {
	if err := h.catalog.Delete(c.Request().Context(), c.Param("id")); err != nil {
		return err
	}
	return c.NoContent(http.StatusNoContent)
}

// LowStock lists products under their restock threshold, for the inventory
// warning cards.
func (h *ProductosHandler) LowStock(c echo.Context) error {
	productos, err := h.catalog.LowStock(c.Request().Context())
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, productos)
}

type stockRequest struct {
	Cantidad int `json:"cantidad" validate:"required"`
}

func (h *ProductosHandler) UpdateStock(c echo.Context) error {
	var req stockRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "invalid payload"})
	}
	if err := c.Validate(&req); err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": err.Error()})
	}
	updated, err := h.catalog.UpdateStock(c.Request().Context(), c.Param("id"), req.Cantidad)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, updated)
}

// MaquinasHandler proxies the machine fleet section.
type MaquinasHandler struct {
	fleet ports.MachineFleet
}

func NewMaquinasHandler(fleet ports.MachineFleet) *MaquinasHandler {
	return &MaquinasHandler{fleet: fleet}
}

func (h *MaquinasHandler) List(c echo.Context) error {
	maquinas, err := h.fleet.List(c.Request().Context())
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, maquinas)
}

func (h *MaquinasHandler) Get(c echo.Context) error {
	maquina, err := h.fleet.Get(c.Request().Context(), c.Param("id"))
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, maquina)
}

func (h *MaquinasHandler) Create(c echo.Context) error {
	var maquina domain.Record
	if err := c.Bind(&maquina); err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "invalid payload"})
	}
	created, err := h.fleet.Create(c.Request().Context(), maquina)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusCreated, created)
}

func (h *MaquinasHandler) Update(c echo.Context) error {
	var maquina domain.Record
	if err := c.Bind(&maquina); err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "invalid payload"})
	}
	updated, err := h.fleet.Update(c.Request().Context(), c.Param("id"), maquina)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, updated)
}

func (h *MaquinasHandler) Delete(c echo.Context) error {
	if err := h.fleet.Delete(c.Request().Context(), c.Param("id")); err != nil {
		return err
	}
	return c.NoContent(http.StatusNoContent)
}

type estadoRequest struct {
	Estado string `json:"estado" validate:"required"`
}

// SetStatus flips a machine between operational states. The gateway owns the
// estado vocabulary (operativa, mantenimiento, fuera de servicio).
func (h *MaquinasHandler) SetStatus(c echo.Context) error {
	var req estadoRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "invalid payload"})
	}
	if err := c.Validate(&req); err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": err.Error()})
	}
	updated, err := h.fleet.SetStatus(c.Request().Context(), c.Param("id"), req.Estado)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, updated)
}
