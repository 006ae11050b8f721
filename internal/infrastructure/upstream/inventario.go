package upstream

import (
	"context"
	"fmt"
	"net/http"

	"github.com/gimnasiojp/gym-dashboard/internal/core/domain"
)

// Productos fronts the inventory service's product surface at
// /api/inventario/productos.
type Productos struct {
	c *Client
}

func NewProductos(c *Client) *Productos {
	return &Productos{c: c}
}

func (s *Productos) List(ctx context.Context) ([]domain.Record, error) {
	var productos []domain.Record
	if err := s.c.doJSON(ctx, "inventario", http.MethodGet, "/api/inventario/productos", nil, &productos); err != nil {
		return nil, err
	}
	return productos, nil
}

func (s *Productos) Get(ctx context.Context, id string) (domain.Record, error) {
	var producto domain.Record
	if err := s.c.doJSON(ctx, "inventario", http.MethodGet, "/api/inventario/productos/"+id, nil, &producto); err != nil {
		return nil, err
	}
	return producto, nil
}

func (s *Productos) Create(ctx context.Context, producto domain.Record) (domain.Record, error) {
	var created domain.Record
	if err := s.c.doJSON(ctx, "inventario", http.MethodPost, "/api/inventario/productos", producto, &created); err != nil {
		return nil, err
	}
	return created, nil
}

func (s *Productos) Update(ctx context.Context, id string, producto domain.Record) (domain.Record, error) {
	var updated domain.Record
	if err := s.c.doJSON(ctx, "inventario", http.MethodPut, "/api/inventario/productos/"+id, producto, &updated); err != nil {
		return nil, err
	}
	return updated, nil
}

func (s *Productos) Delete(ctx context.Context, id string) error {
	return s.c.doJSON(ctx, "inventario", http.MethodDelete, "/api/inventario/productos/"+id, nil, nil)
}

func (s *Productos) LowStock(ctx context.Context) ([]domain.Record, error) {
	var productos []domain.Record
	if err := s.c.doJSON(ctx, "inventario", http.MethodGet, "/api/inventario/productos/stock-bajo", nil, &productos); err != nil {
		return nil, err
	}
	return productos, nil
}

func (s *Productos) UpdateStock(ctx context.Context, id string, cantidad int) (domain.Record, error) {
	var updated domain.Record
	body := map[string]int{"cantidad": cantidad}
	path := fmt.Sprintf("/api/inventario/productos/%s/stock", id)
	if err := s.c.doJSON(ctx, "inventario", http.MethodPatch, path, body, &updated); err != nil {
		return nil, err
	}
	return updated, nil
}

// Maquinas fronts the inventory service's machine surface at
// /api/inventario/maquinas.
type Maquinas struct {
	c *Client
}

func NewMaquinas(c *Client) *Maquinas {
	return &Maquinas{c: c}
}

func (s *Maquinas) List(ctx context.Context) ([]domain.Record, error) {
	var maquinas []domain.Record
	if err := s.c.doJSON(ctx, "inventario", http.MethodGet, "/api/inventario/maquinas", nil, &maquinas); err != nil {
		return nil, err
	}
	return maquinas, nil
}

func (s *Maquinas) Get(ctx context.Context, id string) (domain.Record, error) {
	var maquina domain.Record
	if err := s.c.doJSON(ctx, "inventario", http.MethodGet, "/api/inventario/maquinas/"+id, nil, &maquina); err != nil {
		return nil, err
	}
	return maquina, nil
}

func (s *Maquinas) Create(ctx context.Context, maquina domain.Record) (domain.Record, error) {
	var created domain.Record
	if err := s.c.doJSON(ctx, "inventario", http.MethodPost, "/api/inventario/maquinas", maquina, &created); err != nil {
		return nil, err
	}
	return created, nil
}

func (s *Maquinas) Update(ctx context.Context, id string, maquina domain.Record) (domain.Record, error) {
	var updated domain.Record
	if err := s.c.doJSON(ctx, "inventario", http.MethodPut, "/api/inventario/maquinas/"+id, maquina, &updated); err != nil {
		return nil, err
	}
	return updated, nil
}

func (s *Maquinas) Delete(ctx context.Context, id string) error {
	return s.c.doJSON(ctx, "inventario", http.MethodDelete, "/api/inventario/maquinas/"+id, nil, nil)
}

func (s *Maquinas) SetStatus(ctx context.Context, id, estado string) (domain.Record, error) {
	var updated domain.Record
	body := map[string]string{"estado": estado}
	path := fmt.Sprintf("/api/inventario/maquinas/%s/estado", id)
	if err := s.c.doJSON(ctx, "inventario", http.MethodPatch, path, body, &updated); err != nil {
		return nil, err
	}
	return updated, nil
}
