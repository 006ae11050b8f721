package ports

import (
	"context"

	"github.com/gimnasiojp/gym-dashboard/internal/core/domain"
)

// LoginResult is the staff login endpoint's response shape.
type LoginResult struct {
	Success bool          `json:"success"`
	Usuario domain.Record `json:"usuario"`
	Token   string        `json:"token,omitempty"`
	Message string        `json:"message,omitempty"`
}

// UserDirectory fronts the gym API's staff accounts service (/api/users).
type UserDirectory interface {
	Login(ctx context.Context, username, password string) (*LoginResult, error)
	List(ctx context.Context) ([]domain.Record, error)
	Get(ctx context.Context, id string) (domain.Record, error)
}

// ClientRoster fronts the gym API's membership service (/api/clientes).
type ClientRoster interface {
	List(ctx context.Context) ([]domain.Record, error)
	Get(ctx context.Context, id string) (domain.Record, error)
	Create(ctx context.Context, cliente domain.Record) (domain.Record, error)
	Update(ctx context.Context, id string, cliente domain.Record) (domain.Record, error)
	Delete(ctx context.Context, id string) error
	Renew(ctx context.Context, id string, meses int) (domain.Record, error)
	RegisterVisit(ctx context.Context, id string) error
	Expiring(ctx context.Context, dias int) ([]domain.Record, error)
	Stats(ctx context.Context) (domain.Record, error)
}

// ProductCatalog fronts the inventory service's product surface
// (/api/inventario/productos).
type ProductCatalog interface {
	List(ctx context.Context) ([]domain.Record, error)
	Get(ctx context.Context, id string) (domain.Record, error)
	Create(ctx context.Context, producto domain.Record) (domain.Record, error)
	Update(ctx context.Context, id string, producto domain.Record) (domain.Record, error)
	Delete(ctx context.Context, id string) error
	LowStock(ctx context.Context) ([]domain.Record, error)
	UpdateStock(ctx context.Context, id string, cantidad int) (domain.Record, error)
}

// MachineFleet fronts the inventory service's machine surface
// (/api/inventario/maquinas).
type MachineFleet interface {
	List(ctx context.Context) ([]domain.Record, error)
	Get(ctx context.Context, id string) (domain.Record, error)
	Create(ctx context.Context, maquina domain.Record) (domain.Record, error)
	Update(ctx context.Context, id string, maquina domain.Record) (domain.Record, error)
	Delete(ctx context.Context, id string) error
	SetStatus(ctx context.Context, id, estado string) (domain.Record, error)
}

// Personnel fronts the HR service (/api/rrhh).
type Personnel interface {
	List(ctx context.Context) ([]domain.Record, error)
	Get(ctx context.Context, id string) (domain.Record, error)
	Create(ctx context.Context, personal domain.Record) (domain.Record, error)
	Update(ctx context.Context, id string, personal domain.Record) (domain.Record, error)
	Delete(ctx context.Context, id string) error
	SetStatus(ctx context.Context, id, estado string) (domain.Record, error)
	Stats(ctx context.Context) (domain.Record, error)
	Recent(ctx context.Context) ([]domain.Record, error)
}
