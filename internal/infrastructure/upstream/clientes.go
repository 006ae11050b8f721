package upstream

import (
	"context"
	"fmt"
	"net/http"

	"github.com/gimnasiojp/gym-dashboard/internal/core/domain"
)

// Clientes fronts the membership service at /api/clientes.
type Clientes struct {
	c *Client
}

func NewClientes(c *Client) *Clientes {
	return &Clientes{c: c}
}

func (s *Clientes) List(ctx context.Context) ([]domain.Record, error) {
	var clientes []domain.Record
	if err := s.c.doJSON(ctx, "clientes", http.MethodGet, "/api/clientes", nil, &clientes); err != nil {
		return nil, err
	}
	return clientes, nil
}

func (s *Clientes) Get(ctx context.Context, id string) (domain.Record, error) {
	var cliente domain.Record
	if err := s.c.doJSON(ctx, "clientes", http.MethodGet, "/api/clientes/"+id, nil, &cliente); err != nil {
		return nil, err
	}
	return cliente, nil
}

func (s *Clientes) Create(ctx context.Context, cliente domain.Record) (domain.Record, error) {
	var created domain.Record
	if err := s.c.doJSON(ctx, "clientes", http.MethodPost, "/api/clientes", cliente, &created); err != nil {
		return nil, err
	}
	return created, nil
}

func (s *Clientes) Update(ctx context.Context, id string, cliente domain.Record) (domain.Record, error) {
	var updated domain.Record
	if err := s.c.doJSON(ctx, "clientes", http.MethodPut, "/api/clientes/"+id, cliente, &updated); err != nil {
		return nil, err
	}
	return updated, nil
}

func (s *Clientes) Delete(ctx context.Context, id string) error {
	return s.c.doJSON(ctx, "clientes", http.MethodDelete, "/api/clientes/"+id, nil, nil)
}

func (s *Clientes) Renew(ctx context.Context, id string, meses int) (domain.Record, error) {
	var renewed domain.Record
	path := fmt.Sprintf("/api/clientes/%s/renovar?meses=%d", id, meses)
	if err := s.c.doJSON(ctx, "clientes", http.MethodPost, path, nil, &renewed); err != nil {
		return nil, err
	}
	return renewed, nil
}

func (s *Clientes) RegisterVisit(ctx context.Context, id string) error {
	return s.c.doJSON(ctx, "clientes", http.MethodPost, "/api/clientes/"+id+"/visita", nil, nil)
}

func (s *Clientes) Expiring(ctx context.Context, dias int) ([]domain.Record, error) {
	var clientes []domain.Record
	path := fmt.Sprintf("/api/clientes/por-vencer?dias=%d", dias)
	if err := s.c.doJSON(ctx, "clientes", http.MethodGet, path, nil, &clientes); err != nil {
		return nil, err
	}
	return clientes, nil
}

func (s *Clientes) Stats(ctx context.Context) (domain.Record, error) {
	var stats domain.Record
	if err := s.c.doJSON(ctx, "clientes", http.MethodGet, "/api/clientes/estadisticas", nil, &stats); err != nil {
		return nil, err
	}
	return stats, nil
}
