package ports

import (
	"context"

	"github.com/gimnasiojp/gym-dashboard/internal/core/domain"
)

// CartRepository persists one open cart per dashboard session, plus the
// archive of simulated orders produced at checkout.
type CartRepository interface {
	FindBySession(ctx context.Context, sessionID string) (*domain.Cart, error)
	Save(ctx context.Context, cart *domain.Cart) error
	Delete(ctx context.Context, sessionID string) error
	SaveOrder(ctx context.Context, cart *domain.Cart) error
}

// AddItemInput is one product line to add to a session's cart.
type AddItemInput struct {
	ProductID string
	Quantity  int
}

// CheckoutResult is the outcome of a simulated checkout.
type CheckoutResult struct {
	Confirmation string
	Total        float64
	Items        int
}

// CartService implements the client dashboard's store/cart flow.
type CartService interface {
	Get(ctx context.Context, sessionID, clientName string) (*domain.Cart, error)
	AddItem(ctx context.Context, sessionID, clientName string, input AddItemInput) (*domain.Cart, error)
	RemoveItem(ctx context.Context, sessionID, productID string) (*domain.Cart, error)
	Checkout(ctx context.Context, sessionID string) (*CheckoutResult, error)
}
