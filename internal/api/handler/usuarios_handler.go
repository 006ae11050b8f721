package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/gimnasiojp/gym-dashboard/internal/core/ports"
)

// UsuariosHandler proxies the staff accounts directory. Read-only: account
// creation stays on the gym API's own admin tooling.
type UsuariosHandler struct {
	users ports.UserDirectory
}

func NewUsuariosHandler(users ports.UserDirectory) *UsuariosHandler {
	return &UsuariosHandler{users: users}
}

func (h *UsuariosHandler) List(c echo.Context) error {
	usuarios, err := h.users.List(c.Request().Context())
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, usuarios)
}

func (h *UsuariosHandler) Get(c echo.Context) error {
	usuario, err := h.users.Get(c.Request().Context(), c.Param("id"))
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, usuario)
}
