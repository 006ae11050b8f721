package handler

import (
	"errors"
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/gimnasiojp/gym-dashboard/internal/api/metrics"
	"github.com/gimnasiojp/gym-dashboard/internal/core/domain"
	"github.com/gimnasiojp/gym-dashboard/internal/core/ports"
)

// StoreHandler backs the client dashboard's store sections: offers, product
// browsing, cart and the simulated checkout.
type StoreHandler struct {
	carts   ports.CartService
	catalog ports.ProductCatalog
}

func NewStoreHandler(carts ports.CartService, catalog ports.ProductCatalog) *StoreHandler {
	return &StoreHandler{carts: carts, catalog: catalog}
}

// offers is static promotional content, managed here rather than upstream.
var offers = []domain.Offer{
	{
		ID:             1,
		Titulo:         "Membresía Anual - 30% OFF",
		Descripcion:    "Aprovecha nuestra promoción especial de fin de año. Acceso ilimitado a todas las instalaciones.",
		Precio:         "S/ 1,200",
		PrecioAnterior: "S/ 1,714",
		Descuento:      "30%",
		Vigencia:       "31 de Diciembre 2025",
		Destacado:      true,
	},
	{
		ID:             2,
		Titulo:         "Pack Proteína + Creatina",
		Descripcion:    "Combo especial: Proteína Whey 2kg + Creatina Monohidratada 500g",
		Precio:         "S/ 120",
		PrecioAnterior: "S/ 145",
		Descuento:      "17%",
		Vigencia:       "30 de Noviembre 2025",
	},
	{
		ID:             3,
		Titulo:         "Clases Personales - 3 Meses",
		Descripcion:    "12 sesiones de entrenamiento personalizado con instructores certificados.",
		Precio:         "S/ 450",
		PrecioAnterior: "S/ 600",
		Descuento:      "25%",
		Vigencia:       "15 de Noviembre 2025",
		Destacado:      true,
	},
	{
		ID:             4,
		Titulo:         "Membresía Familiar",
		Descripcion:    "Hasta 4 personas. Acceso completo al gimnasio y clases grupales.",
		Precio:         "S/ 2,100",
		PrecioAnterior: "S/ 2,800",
		Descuento:      "25%",
		Vigencia:       "31 de Diciembre 2025",
	},
}

// Offers returns the promotional entries for the client landing section.
func (h *StoreHandler) Offers(c echo.Context) error {
	return c.JSON(http.StatusOK, offers)
}

// Products lists the purchasable catalog for the store section.
func (h *StoreHandler) Products(c echo.Context) error {
	productos, err := h.catalog.List(c.Request().Context())
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, productos)
}

// Cart returns the session's cart, empty on first use.
func (h *StoreHandler) Cart(c echo.Context) error {
	identity, sessionID, err := ctxIdentity(c)
	if err != nil {
		return err
	}
	cart, err := h.carts.Get(c.Request().Context(), sessionID, identity.Name)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, cart)
}

type addItemRequest struct {
	ProductID string `json:"product_id" validate:"required"`
	Quantity  int    `json:"quantity"`
}

// AddItem puts a product in the session's cart.
//
// @Summary      Add a product to the cart
// @Tags         store
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        body  body      addItemRequest  true  "Product and quantity"
// @Success      200   {object}  domain.Cart
// @Failure      400   {object}  map[string]string
// @Failure      404   {object}  map[string]string
// @Router       /v1/cart/items [post]
func (h *StoreHandler) AddItem(c echo.Context) error {
	identity, sessionID, err := ctxIdentity(c)
	if err != nil {
		return err
	}

	var req addItemRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "invalid payload"})
	}
	if err := c.Validate(&req); err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": err.Error()})
	}

	cart, err := h.carts.AddItem(c.Request().Context(), sessionID, identity.Name, ports.AddItemInput{
		ProductID: req.ProductID,
		Quantity:  req.Quantity,
	})
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, cart)
}

// RemoveItem drops a product line from the cart.
func (h *StoreHandler) RemoveItem(c echo.Context) error {
	_, sessionID, err := ctxIdentity(c)
	if err != nil {
		return err
	}
	cart, err := h.carts.RemoveItem(c.Request().Context(), sessionID, c.Param("product_id"))
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, cart)
}

type checkoutResponse struct {
	Confirmation string  `json:"confirmation"`
	Total        float64 `json:"total"`
	Items        int     `json:"items"`
}

// Checkout runs the simulated payment and empties the cart.
//
// @Summary      Simulated checkout
// @Tags         store
// @Produce      json
// @Security     BearerAuth
// @Success      200  {object}  checkoutResponse
// @Failure      422  {object}  map[string]string
// @Router       /v1/cart/checkout [post]
func (h *StoreHandler) Checkout(c echo.Context) error {
	_, sessionID, err := ctxIdentity(c)
	if err != nil {
		return err
	}

	result, err := h.carts.Checkout(c.Request().Context(), sessionID)
	if err != nil {
		if errors.Is(err, domain.ErrCartEmpty) {
			metrics.CheckoutsTotal.WithLabelValues("empty_cart").Inc()
		}
		return err
	}
	metrics.CheckoutsTotal.WithLabelValues("completed").Inc()

	return c.JSON(http.StatusOK, checkoutResponse{
		Confirmation: result.Confirmation,
		Total:        result.Total,
		Items:        result.Items,
	})
}
