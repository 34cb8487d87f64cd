package port

import (
	"context"

	"github.com/shopmesh/orderservice/internal/core/domain"
)

type OrderService interface {
	CreateOrder(ctx context.Context, req *domain.CreateOrderRequest) (*domain.Order, error)
	GetOrder(ctx context.Context, id string) (*domain.Order, error)
	ListOrdersByUser(ctx context.Context, userID uint64) ([]*domain.Order, error)
	UpdateOrderStatus(ctx context.Context, id string, status domain.OrderStatus) (*domain.Order, error)
	UpdatePaymentStatus(ctx context.Context, id string, status domain.PaymentStatus, transactionID string) (*domain.Order, error)
	CancelOrder(ctx context.Context, id string) (*domain.Order, error)
}
