package service

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/rs/zerolog"

	"github.com/gimnasiojp/gym-dashboard/internal/core/domain"
)

func TestEnrollmentService_Enroll_ComputesMembershipWindow(t *testing.T) {
	cases := []struct {
		membresia string
		months    int
	}{
		{"Mensual", 1},
		{"Trimestral", 3},
		{"Anual", 12},
	}

	for _, tc := range cases {
		t.Run(tc.membresia, func(t *testing.T) {
			roster := &stubClientRoster{}
			svc := NewEnrollmentService(roster, zerolog.Nop())

			created, err := svc.Enroll(context.Background(), EnrollmentInput{
				Nombre:    "Pedro Gomez",
				Email:     "pedro@example.com",
				Telefono:  "555-0101",
				Password:  "secret1",
				Documento: "A123",
				Membresia: tc.membresia,
			})
			if err != nil {
				t.Fatalf("enroll failed: %v", err)
			}

			hoy := time.Now().UTC()
			if got := created.Str("fechaInicio"); got != hoy.Format("2006-01-02") {
				t.Fatalf("fechaInicio = %q", got)
			}
			want := hoy.AddDate(0, tc.months, 0).Format("2006-01-02")
			if got := created.Str("fechaVencimiento"); got != want {
				t.Fatalf("fechaVencimiento = %q, want %q", got, want)
			}
			if len(roster.created) != 1 {
				t.Fatalf("expected one upstream create, got %d", len(roster.created))
			}
		})
	}
}

func TestEnrollmentService_Enroll_UnknownMembership(t *testing.T) {
	roster := &stubClientRoster{}
	svc := NewEnrollmentService(roster, zerolog.Nop())

	_, err := svc.Enroll(context.Background(), EnrollmentInput{Nombre: "x", Membresia: "Semanal"})
	if !errors.Is(err, domain.ErrUnknownMembership) {
		t.Fatalf("expected unknown membership, got %v", err)
	}
	if len(roster.created) != 0 {
		t.Fatalf("invalid membership must not reach upstream")
	}
}

func TestEnrollmentService_Enroll_UpstreamError(t *testing.T) {
	roster := &stubClientRoster{createErr: &domain.UpstreamError{Status: 409, Message: "duplicado"}}
	svc := NewEnrollmentService(roster, zerolog.Nop())

	_, err := svc.Enroll(context.Background(), EnrollmentInput{Nombre: "x", Membresia: "Mensual"})
	var ue *domain.UpstreamError
	if !errors.As(err, &ue) || ue.Status != 409 {
		t.Fatalf("upstream error not relayed: %v", err)
	}
}
