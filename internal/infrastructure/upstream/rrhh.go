package upstream

import (
	"context"
	"fmt"
	"net/http"

	"github.com/gimnasiojp/gym-dashboard/internal/core/domain"
)

// Personal fronts the HR service at /api/rrhh.
type Personal struct {
	c *Client
}

func NewPersonal(c *Client) *Personal {
	return &Personal{c: c}
}

func (s *Personal) List(ctx context.Context) ([]domain.Record, error) {
	var personal []domain.Record
	if err := s.c.doJSON(ctx, "rrhh", http.MethodGet, "/api/rrhh/personal", nil, &personal); err != nil {
		return nil, err
	}
	return personal, nil
}

func (s *Personal) Get(ctx context.Context, id string) (domain.Record, error) {
	var persona domain.Record
	if err := s.c.doJSON(ctx, "rrhh", http.MethodGet, "/api/rrhh/personal/"+id, nil, &persona); err != nil {
		return nil, err
	}
	return persona, nil
}

func (s *Personal) Create(ctx context.Context, persona domain.Record) (domain.Record, error) {
	var created domain.Record
	if err := s.c.doJSON(ctx, "rrhh", http.MethodPost, "/api/rrhh/personal", persona, &created); err != nil {
		return nil, err
	}
	return created, nil
}

func (s *Personal) Update(ctx context.Context, id string, persona domain.Record) (domain.Record, error) {
	var updated domain.Record
	if err := s.c.doJSON(ctx, "rrhh", http.MethodPut, "/api/rrhh/personal/"+id, persona, &updated); err != nil {
		return nil, err
	}
	return updated, nil
}

func (s *Personal) Delete(ctx context.Context, id string) error {
	return s.c.doJSON(ctx, "rrhh", http.MethodDelete, "/api/rrhh/personal/"+id, nil, nil)
}

func (s *Personal) SetStatus(ctx context.Context, id, estado string) (domain.Record, error) {
	var updated domain.Record
	body := map[string]string{"estado": estado}
	path := fmt.Sprintf("/api/rrhh/personal/%s/estado", id)
	if err := s.c.doJSON(ctx, "rrhh", http.MethodPatch, path, body, &updated); err != nil {
		return nil, err
	}
	return updated, nil
}

func (s *Personal) Stats(ctx context.Context) (domain.Record, error) {
	var stats domain.Record
	if err := s.c.doJSON(ctx, "rrhh", http.MethodGet, "/api/rrhh/estadisticas", nil, &stats); err != nil {
		return nil, err
	}
	return stats, nil
}

func (s *Personal) Recent(ctx context.Context) ([]domain.Record, error) {
	var personal []domain.Record
	if err := s.c.doJSON(ctx, "rrhh", http.MethodGet, "/api/rrhh/personal/recientes", nil, &personal); err != nil {
		return nil, err
	}
	return personal, nil
}
