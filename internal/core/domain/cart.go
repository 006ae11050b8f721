package domain

import "time"

// CartStatus represents the lifecycle state of a client shopping cart.
type CartStatus string

const (
	CartOpen CartStatus = "open"
	CartPaid CartStatus = "paid"
)

// CartItem is one product line in a cart.
type CartItem struct {
	ProductID string  `json:"product_id"`
	Name      string  `json:"name"`
	UnitPrice float64 `json:"unit_price"`
	Quantity  int     `json:"quantity"`
}

// Cart is the per-session shopping cart backing the client dashboard's store.
// Checkout is a simulation: the cart is marked paid with a confirmation code,
// no real payment processing happens.
type Cart struct {
	SessionID    string     `json:"session_id"`
	ClientName   string     `json:"client_name"`
	Items        []CartItem `json:"items"`
	Status       CartStatus `json:"status"`
	Confirmation string     `json:"confirmation,omitempty"`
	CreatedAt    time.Time  `json:"created_at"`
	UpdatedAt    time.Time  `json:"updated_at"`
}

// Total sums the cart's line totals.
func (c *Cart) Total() float64 {
	var total float64
	for _, item := range c.Items {
		total += item.UnitPrice * float64(item.Quantity)
	}
	return total
}

// Offer is a promotional entry shown on the client dashboard. Offers are
// static content managed in this service, not upstream data.
type Offer struct {
	ID             int    `json:"id"`
	Titulo         string `json:"titulo"`
	Descripcion    string `json:"descripcion"`
	Precio         string `json:"precio"`
	PrecioAnterior string `json:"precio_anterior,omitempty"`
	Descuento      string `json:"descuento,omitempty"`
	Vigencia       string `json:"vigencia,omitempty"`
	Destacado      bool   `json:"destacado"`
}
