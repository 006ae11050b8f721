package handler

import (
	"net/http"
	"strconv"

	"github.com/labstack/echo/v4"

	"github.com/gimnasiojp/gym-dashboard/internal/core/domain"
	"github.com/gimnasiojp/gym-dashboard/internal/core/ports"
)

// ClientesHandler proxies the staff-facing client roster section.
type ClientesHandler struct {
	clients ports.ClientRoster
}

func NewClientesHandler(clients ports.ClientRoster) *ClientesHandler {
	return &ClientesHandler{clients: clients}
}

// List returns the full client roster.
//
// @Summary      List clients
// @Tags         clientes
// @Produce      json
// @Security     BearerAuth
// @Success      200  {array}   map[string]interface{}
// @Failure      502  {object}  map[string]string
// @Router       /v1/clientes [get]
func (h *ClientesHandler) List(c echo.Context) error {
	clientes, err := h.clients.List(c.Request().Context())
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, clientes)
}

func (h *ClientesHandler) Get(c echo.Context) error {
	cliente, err := h.clients.Get(c.Request().Context(), c.Param("id"))
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, cliente)
}

func (h *ClientesHandler) Create(c echo.Context) error {
	var cliente domain.Record
	if err := c.Bind(&cliente); err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "invalid payload"})
	}
	created, err := h.clients.Create(c.Request().Context(), cliente)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusCreated, created)
}

func (h *ClientesHandler) Update(c echo.Context) error {
	var cliente domain.Record
	if err := c.Bind(&cliente); err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "invalid payload"})
	}
	updated, err := h.clients.Update(c.Request().Context(), c.Param("id"), cliente)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, updated)
}

func (h *ClientesHandler) Delete(c echo.Context) error {
	if err := h.clients.Delete(c.Request().Context(), c.Param("id")); err != nil {
		return err
	}
	return c.NoContent(http.StatusNoContent)
}

// Renew extends a client's membership. meses defaults to 1.
//
// @Summary      Renew a membership
// @Tags         clientes
// @Produce      json
// @Security     BearerAuth
// @Param        id     path      string  true   "Client ID"
// @Param        meses  query     int     false  "Months to extend (default 1)"
// @Success      200    {object}  map[string]interface{}
// @Failure      404    {object}  map[string]string
// @Router       /v1/clientes/{id}/renovar [post]
func (h *ClientesHandler) Renew(c echo.Context) error {
	meses, err := strconv.Atoi(c.QueryParam("meses"))
	if err != nil || meses <= 0 {
		meses = 1
	}
	renewed, err := h.clients.Renew(c.Request().Context(), c.Param("id"), meses)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, renewed)
}

// Expiring lists clients whose membership expires within the given days.
func (h *ClientesHandler) Expiring(c echo.Context) error {
	dias, err := strconv.Atoi(c.QueryParam("dias"))
	if err != nil || dias <= 0 {
		dias = 30
	}
	clientes, err := h.clients.Expiring(c.Request().Context(), dias)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, clientes)
}

// Stats returns the membership service's aggregate statistics.
func (h *ClientesHandler) Stats(c echo.Context) error {
	stats, err := h.clients.Stats(c.Request().Context())
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, stats)
}
