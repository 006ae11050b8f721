package service

import (
	"context"
	"time"

	"github.com/rs/zerolog"

	"github.com/gimnasiojp/gym-dashboard/internal/core/domain"
	"github.com/gimnasiojp/gym-dashboard/internal/core/ports"
)

// membershipMonths maps a membership type to its duration. The expiry date is
// computed here so every enrollment path agrees on it.
var membershipMonths = map[string]int{
	"Mensual":    1,
	"Trimestral": 3,
	"Anual":      12,
}

// EnrollmentInput carries a new client registration.
type EnrollmentInput struct {
	Nombre             string
	Email              string
	Telefono           string
	Password           string
	Documento          string
	Direccion          string
	FechaNacimiento    string
	Genero             string
	Membresia          string
	ContactoEmergencia string
	TelefonoEmergencia string
	Notas              string
}

// EnrollmentService registers new gym clients against the membership service.
type EnrollmentService struct {
	clients ports.ClientRoster
	logger  zerolog.Logger
}

func NewEnrollmentService(clients ports.ClientRoster, logger zerolog.Logger) *EnrollmentService {
	return &EnrollmentService{clients: clients, logger: logger}
}

// Enroll computes the membership window (start today, expiry by membership
// type) and creates the client upstream.
func (s *EnrollmentService) Enroll(ctx context.Context, input EnrollmentInput) (domain.Record, error) {
	meses, ok := membershipMonths[input.Membresia]
	if !ok {
		return nil, domain.ErrUnknownMembership
	}

	hoy := time.Now().UTC()
	cliente := domain.Record{
		"nombre":             input.Nombre,
		"email":              input.Email,
		"telefono":           input.Telefono,
		"password":           input.Password,
		"documento":          input.Documento,
		"direccion":          input.Direccion,
		"fechaNacimiento":    input.FechaNacimiento,
		"genero":             input.Genero,
		"membresia":          input.Membresia,
		"fechaInicio":        hoy.Format("2006-01-02"),
		"fechaVencimiento":   hoy.AddDate(0, meses, 0).Format("2006-01-02"),
		"contactoEmergencia": input.ContactoEmergencia,
		"telefonoEmergencia": input.TelefonoEmergencia,
		"notas":              input.Notas,
	}

	created, err := s.clients.Create(ctx, cliente)
	if err != nil {
		s.logger.Error().Err(err).Str("nombre", input.Nombre).Msg("client enrollment failed")
		return nil, err
	}

	s.logger.Info().Str("nombre", input.Nombre).Str("membresia", input.Membresia).Msg("client enrolled")
	return created, nil
}
