package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/gimnasiojp/gym-dashboard/internal/core/service"
)

// EnrollmentHandler handles public client registration.
type EnrollmentHandler struct {
	enrollment *service.EnrollmentService
}

func NewEnrollmentHandler(enrollment *service.EnrollmentService) *EnrollmentHandler {
	return &EnrollmentHandler{enrollment: enrollment}
}

type enrollRequest struct {
	Nombre             string `json:"nombre"          validate:"required"`
	Email              string `json:"email"           validate:"required,email"`
	Telefono           string `json:"telefono"        validate:"required"`
	Password           string `json:"password"        validate:"required,min=6"`
	Documento          string `json:"documento"       validate:"required"`
	Direccion          string `json:"direccion"`
	FechaNacimiento    string `json:"fechaNacimiento"`
	Genero             string `json:"genero"`
	Membresia          string `json:"membresia"       validate:"required,oneof=Mensual Trimestral Anual"`
	ContactoEmergencia string `json:"contactoEmergencia"`
	TelefonoEmergencia string `json:"telefonoEmergencia"`
	Notas              string `json:"notas"`
}

// Enroll registers a new gym client.
//
// @Summary      Register a new client
// @Tags         enrollment
// @Accept       json
// @Produce      json
// @Param        body  body      enrollRequest  true  "Client registration details"
// @Success      201   {object}  map[string]interface{}
// @Failure      400   {object}  map[string]string
// @Failure      502   {object}  map[string]string
// @Router       /v1/register [post]
func (h *EnrollmentHandler) Enroll(c echo.Context) error {
	var req enrollRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "invalid payload"})
	}
	if err := c.Validate(&req); err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": err.Error()})
	}

	created, err := h.enrollment.Enroll(c.Request().Context(), service.EnrollmentInput{
		Nombre:             req.Nombre,
		Email:              req.Email,
		Telefono:           req.Telefono,
		Password:           req.Password,
		Documento:          req.Documento,
		Direccion:          req.Direccion,
		FechaNacimiento:    req.FechaNacimiento,
		Genero:             req.Genero,
		Membresia:          req.Membresia,
		ContactoEmergencia: req.ContactoEmergencia,
		TelefonoEmergencia: req.TelefonoEmergencia,
		Notas:              req.Notas,
	})
	if err != nil {
		return err
	}

	return c.JSON(http.StatusCreated, created)
}
