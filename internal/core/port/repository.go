package port

import (
	"context"

	"github.com/shopmesh/orderservice/internal/core/domain"
)

// OrderRepository persists orders. CreateOrder writes the header and all items
// as one atomic unit: a failure leaves no partial rows visible.
type OrderRepository interface {
	CreateOrder(ctx context.Context, order *domain.Order) (*domain.Order, error)
	ReadOrder(ctx context.Context, id string) (*domain.Order, error)
	ListOrdersByUser(ctx context.Context, userID uint64) ([]*domain.Order, error)
	// UpdateOrderStatus applies a status patch in a single write. It never
	// touches financial fields.
	UpdateOrderStatus(ctx context.Context, id string, patch domain.StatusPatch) (*domain.Order, error)
}
