package mongo

import (
	"context"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/gimnasiojp/gym-dashboard/internal/core/domain"
)

const (
	cartCollection  = "carts"
	orderCollection = "orders"
)

// MongoCartRepository persists open carts keyed by session ID and archives
// paid carts as orders.
type MongoCartRepository struct {
	carts  *mongo.Collection
	orders *mongo.Collection
}

func NewCartRepository(db *mongo.Database) *MongoCartRepository {
	return &MongoCartRepository{
		carts:  db.Collection(cartCollection),
		orders: db.Collection(orderCollection),
	}
}

type mongoCartItem struct {
	ProductID string  `bson:"product_id"`
	Name      string  `bson:"name"`
	UnitPrice float64 `bson:"unit_price"`
	Quantity  int     `bson:"quantity"`
}

type mongoCart struct {
	SessionID    string          `bson:"_id"`
	ClientName   string          `bson:"client_name"`
	Items        []mongoCartItem `bson:"items"`
	Status       string          `bson:"status"`
	Confirmation string          `bson:"confirmation,omitempty"`
	CreatedAt    int64           `bson:"created_at"`
	UpdatedAt    int64           `bson:"updated_at"`
}

func (r *MongoCartRepository) FindBySession(ctx context.Context, sessionID string) (*domain.Cart, error) {
	var mc mongoCart
	if err := r.carts.FindOne(ctx, bson.M{"_id": sessionID}).Decode(&mc); err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, nil
		}
		return nil, fmt.Errorf("find cart: %w", err)
	}
	return mc.toDomain(), nil
}

func (r *MongoCartRepository) Save(ctx context.Context, cart *domain.Cart) error {
	doc := toMongoCart(cart)
	opts := options.Replace().SetUpsert(true)
	if _, err := r.carts.ReplaceOne(ctx, bson.M{"_id": cart.SessionID}, doc, opts); err != nil {
		return fmt.Errorf("save cart: %w", err)
	}
	return nil
}

func (r *MongoCartRepository) Delete(ctx context.Context, sessionID string) error {
	if _, err := r.carts.DeleteOne(ctx, bson.M{"_id": sessionID}); err != nil {
		return fmt.Errorf("delete cart: %w", err)
	}
	return nil
}

// SaveOrder archives a paid cart. Orders are keyed by their confirmation
// code, so a session can accumulate multiple orders over time.
func (r *MongoCartRepository) SaveOrder(ctx context.Context, cart *domain.Cart) error {
	doc := toMongoCart(cart)
	if _, err := r.orders.InsertOne(ctx, bson.M{
		"_id":          cart.Confirmation,
		"session_id":   doc.SessionID,
		"client_name":  doc.ClientName,
		"items":        doc.Items,
		"status":       doc.Status,
		"total":        cart.Total(),
		"created_at":   doc.CreatedAt,
		"completed_at": doc.UpdatedAt,
	}); err != nil {
		return fmt.Errorf("save order: %w", err)
	}
	return nil
}

func toMongoCart(cart *domain.Cart) mongoCart {
	items := make([]mongoCartItem, 0, len(cart.Items))
	for _, item := range cart.Items {
		items = append(items, mongoCartItem{
			ProductID: item.ProductID,
			Name:      item.Name,
			UnitPrice: item.UnitPrice,
			Quantity:  item.Quantity,
		})
	}
	return mongoCart{
		SessionID:    cart.SessionID,
		ClientName:   cart.ClientName,
		Items:        items,
		Status:       string(cart.Status),
		Confirmation: cart.Confirmation,
		CreatedAt:    cart.CreatedAt.Unix(),
		UpdatedAt:    cart.UpdatedAt.Unix(),
	}
}

func (mc mongoCart) toDomain() *domain.Cart {
	items := make([]domain.CartItem, 0, len(mc.Items))
	for _, item := range mc.Items {
		items = append(items, domain.CartItem{
			ProductID: item.ProductID,
			Name:      item.Name,
			UnitPrice: item.UnitPrice,
			Quantity:  item.Quantity,
		})
	}
	return &domain.Cart{
		SessionID:    mc.SessionID,
		ClientName:   mc.ClientName,
		Items:        items,
		Status:       domain.CartStatus(mc.Status),
		Confirmation: mc.Confirmation,
		CreatedAt:    unixToTime(mc.CreatedAt),
		UpdatedAt:    unixToTime(mc.UpdatedAt),
	}
}

func unixToTime(ts int64) time.Time {
	if ts == 0 {
		return time.Time{}
	}
	return time.Unix(ts, 0).UTC()
}
