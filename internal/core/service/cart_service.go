package service

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog"

	"github.com/gimnasiojp/gym-dashboard/internal/core/domain"
	"github.com/gimnasiojp/gym-dashboard/internal/core/ports"
)

// CartService backs the client dashboard's store section. One open cart per
// session; checkout is a simulation and never touches a payment provider.
type CartService struct {
	carts   ports.CartRepository
	catalog ports.ProductCatalog
	logger  zerolog.Logger
}

func NewCartService(carts ports.CartRepository, catalog ports.ProductCatalog, logger zerolog.Logger) *CartService {
	return &CartService{carts: carts, catalog: catalog, logger: logger}
}

// Get returns the session's open cart, creating an empty one on first use.
func (s *CartService) Get(ctx context.Context, sessionID, clientName string) (*domain.Cart, error) {
	cart, err := s.carts.FindBySession(ctx, sessionID)
	if err != nil {
		return nil, err
	}
	if cart == nil {
		cart = newCart(sessionID, clientName)
	}
	return cart, nil
}

// AddItem looks the product up in the upstream catalog and adds it to the
// cart, merging quantities when the product is already present.
func (s *CartService) AddItem(ctx context.Context, sessionID, clientName string, input ports.AddItemInput) (*domain.Cart, error) {
	if input.Quantity <= 0 {
		input.Quantity = 1
	}

	producto, err := s.catalog.Get(ctx, input.ProductID)
	if err != nil {
		return nil, err
	}

	cart, err := s.Get(ctx, sessionID, clientName)
	if err != nil {
		return nil, err
	}

	merged := false
	for i := range cart.Items {
		if cart.Items[i].ProductID == input.ProductID {
			cart.Items[i].Quantity += input.Quantity
			merged = true
			break
		}
	}
	if !merged {
		cart.Items = append(cart.Items, domain.CartItem{
			ProductID: input.ProductID,
			Name:      producto.Str("nombre"),
			UnitPrice: recordPrice(producto),
			Quantity:  input.Quantity,
		})
	}
	cart.UpdatedAt = time.Now().UTC()

	if err := s.carts.Save(ctx, cart); err != nil {
		return nil, err
	}
	return cart, nil
}

// RemoveItem drops a product line from the cart. Removing a product that is
// not in the cart is a no-op.
func (s *CartService) RemoveItem(ctx context.Context, sessionID, productID string) (*domain.Cart, error) {
	cart, err := s.carts.FindBySession(ctx, sessionID)
	if err != nil {
		return nil, err
	}
	if cart == nil {
		return nil, domain.ErrCartEmpty
	}

	kept := cart.Items[:0]
	for _, item := range cart.Items {
		if item.ProductID != productID {
			kept = append(kept, item)
		}
	}
	cart.Items = kept
	cart.UpdatedAt = time.Now().UTC()

	if err := s.carts.Save(ctx, cart); err != nil {
		return nil, err
	}
	return cart, nil
}

// Checkout simulates a payment: the cart is marked paid with a fake
// confirmation code and removed, so the next store visit starts fresh.
func (s *CartService) Checkout(ctx context.Context, sessionID string) (*ports.CheckoutResult, error) {
	cart, err := s.carts.FindBySession(ctx, sessionID)
	if err != nil {
		return nil, err
	}
	if cart == nil || len(cart.Items) == 0 {
		return nil, domain.ErrCartEmpty
	}

	confirmation := fmt.Sprintf("PAGO-%s", strings.ToUpper(uuid.NewString()[:8]))
	total := cart.Total()

	cart.Status = domain.CartPaid
	cart.Confirmation = confirmation
	cart.UpdatedAt = time.Now().UTC()
	if err := s.carts.SaveOrder(ctx, cart); err != nil {
		return nil, err
	}
	if err := s.carts.Delete(ctx, sessionID); err != nil {
		return nil, err
	}

	s.logger.Info().Str("session_id", sessionID).Str("confirmation", confirmation).Float64("total", total).Msg("simulated checkout")

	return &ports.CheckoutResult{
		Confirmation: confirmation,
		Total:        total,
		Items:        len(cart.Items),
	}, nil
}

func newCart(sessionID, clientName string) *domain.Cart {
	now := time.Now().UTC()
	return &domain.Cart{
		SessionID:  sessionID,
		ClientName: clientName,
		Items:      []domain.CartItem{},
		Status:     domain.CartOpen,
		CreatedAt:  now,
		UpdatedAt:  now,
	}
}

// recordPrice tolerates the gateway reporting precio as either a JSON number
// or a string.
func recordPrice(producto domain.Record) float64 {
	switch v := producto["precio"].(type) {
	case float64:
		return v
	case string:
		var f float64
		_, _ = fmt.Sscanf(strings.ReplaceAll(v, ",", ""), "%f", &f)
		return f
	default:
		return 0
	}
}
