package upstream

import (
	"context"
	"net/http"

	"github.com/gimnasiojp/gym-dashboard/internal/core/domain"
	"github.com/gimnasiojp/gym-dashboard/internal/core/ports"
)

// Usuarios fronts the staff accounts service at /api/users.
type Usuarios struct {
	c *Client
}

func NewUsuarios(c *Client) *Usuarios {
	return &Usuarios{c: c}
}

func (u *Usuarios) Login(ctx context.Context, username, password string) (*ports.LoginResult, error) {
	body := map[string]string{"username": username, "password": password}
	var result ports.LoginResult
	if err := u.c.doJSON(ctx, "users", http.MethodPost, "/api/users/login", body, &result); err != nil {
		return nil, err
	}
	return &result, nil
}

func (u *Usuarios) List(ctx context.Context) ([]domain.Record, error) {
	var usuarios []domain.Record
	if err := u.c.doJSON(ctx, "users", http.MethodGet, "/api/users", nil, &usuarios); err != nil {
		return nil, err
	}
	return usuarios, nil
}

func (u *Usuarios) Get(ctx context.Context, id string) (domain.Record, error) {
	var usuario domain.Record
	if err := u.c.doJSON(ctx, "users", http.MethodGet, "/api/users/"+id, nil, &usuario); err != nil {
		return nil, err
	}
	return usuario, nil
}
