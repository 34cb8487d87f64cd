package service

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
	"github.com/shopmesh/orderservice/internal/core/domain"
	"github.com/shopmesh/orderservice/internal/core/port"
	"go.uber.org/zap"
)

// Attempts at the random order number suffix before giving up on a collision.
const orderNumberAttempts = 3

type Service struct {
	repo    port.OrderRepository
	catalog port.CatalogClient
	fsm     *StateMachine
	builder *Builder
	logger  *zap.Logger
}

func NewService(repo port.OrderRepository, catalog port.CatalogClient,
	fsm *StateMachine, builder *Builder, logger *zap.Logger) (*Service, error) {
	return &Service{
		repo:    repo,
		catalog: catalog,
		fsm:     fsm,
		builder: builder,
		logger:  logger,
	}, nil
}

// CreateOrder runs the creation saga: fetch snapshots, price the items,
// reserve stock, persist header and items atomically, then commit the
// reservation. Failures before the persist need no compensation; a persist
// failure releases the reservation; a commit failure after a successful
// persist is logged for reconciliation and the creation still succeeds.
func (s *Service) CreateOrder(ctx context.Context, req *domain.CreateOrderRequest) (*domain.Order, error) {
	if len(req.Items) == 0 {
		return nil, domain.ErrOrderNoItems
	}
	if req.ShippingCost.IsNeg() || req.Discount.IsNeg() {
		return nil, domain.ErrInvalidAmount
	}

	orderStatus := domain.OrderStatusPending
	paymentStatus := req.InitialPaymentStatus
	switch paymentStatus {
	case "", domain.PaymentStatusPending:
		paymentStatus = domain.PaymentStatusPending
	case domain.PaymentStatusPaid:
		// An order paid upfront starts in PROCESSING, same as the
		// PAID-while-PENDING transition.
		orderStatus = domain.OrderStatusProcessing
	default:
		return nil, domain.ErrBadRequest
	}

	ids := make([]uint64, len(req.Items))
	for i, item := range req.Items {
		ids[i] = item.ProductID
	}

	snapshots, err := s.catalog.ProductsByIDs(ctx, ids)
	if err != nil {
		s.logger.Error("fetch product snapshots", zap.Error(err))
		return nil, err
	}

	items, subtotal, total, err := s.builder.Build(req.Items, snapshots, req.ShippingCost, req.Discount)
	if err != nil {
		return nil, err
	}

	stock := make([]domain.StockItem, len(items))
	for i, item := range items {
		stock[i] = domain.StockItem{ProductID: item.ProductID, Quantity: item.Quantity}
	}

	// Correlation id linking this reservation to its commit or release.
	tempID := uuid.New().String()
	if err := s.catalog.ReserveStock(ctx, stock, tempID); err != nil {
		return nil, err
	}

	now := time.Now()
	order := &domain.Order{
		ID:              uuid.New().String(),
		Number:          domain.NewOrderNumber(now),
		UserID:          req.UserID,
		Subtotal:        subtotal,
		ShippingCost:    req.ShippingCost,
		Discount:        req.Discount,
		Total:           total,
		PaymentStatus:   paymentStatus,
		OrderStatus:     orderStatus,
		ShippingAddress: req.ShippingAddress,
		CreatedAt:       now,
		UpdatedAt:       now,
	}
	order.Items = make([]domain.OrderItem, len(items))
	for i, item := range items {
		item.ID = uuid.New().String()
		item.OrderID = order.ID
		order.Items[i] = item
	}

	saved, err := s.repo.CreateOrder(ctx, order)
	for attempt := 1; attempt < orderNumberAttempts && errors.Is(err, domain.ErrConflictingData); attempt++ {
		order.Number = domain.NewOrderNumber(time.Now())
		saved, err = s.repo.CreateOrder(ctx, order)
	}
	if err != nil {
		s.logger.Error("persist order", zap.Error(err))
		s.catalog.ReleaseStock(ctx, tempID)
		return nil, err
	}

	if err := s.catalog.CommitStock(ctx, saved.ID, stock); err != nil {
		// The order exists regardless of the catalog-side outcome; the
		// dangling reservation is left for reconciliation.
		s.logger.Warn("stock commit failed after persisting order",
			zap.String("order", saved.ID),
			zap.String("reservation", tempID),
			zap.Error(err))
	}

	return saved, nil
}

func (s *Service) GetOrder(ctx context.Context, id string) (*domain.Order, error) {
	order, err := s.repo.ReadOrder(ctx, id)
	if err != nil {
		if !errors.Is(err, domain.ErrDataNotFound) {
			s.logger.Error("read order", zap.Error(err))
		}
		return nil, err
	}
	return order, nil
}

func (s *Service) ListOrdersByUser(ctx context.Context, userID uint64) ([]*domain.Order, error) {
	list, err := s.repo.ListOrdersByUser(ctx, userID)
	if err != nil {
		s.logger.Error("list orders for user", zap.Error(err))
		return nil, err
	}
	return list, nil
}

func (s *Service) UpdateOrderStatus(ctx context.Context, id string, status domain.OrderStatus) (*domain.Order, error) {
	order, err := s.repo.ReadOrder(ctx, id)
	if err != nil {
		return nil, err
	}

	patch, err := s.fsm.OrderTransition(order, status)
	if err != nil {
		return nil, err
	}

	return s.repo.UpdateOrderStatus(ctx, id, patch)
}

func (s *Service) UpdatePaymentStatus(ctx context.Context, id string, status domain.PaymentStatus, transactionID string) (*domain.Order, error) {
	order, err := s.repo.ReadOrder(ctx, id)
	if err != nil {
		return nil, err
	}

	patch, err := s.fsm.PaymentTransition(order, status)
	if err != nil {
		return nil, err
	}
	if transactionID != "" {
		patch.TransactionID = &transactionID
	}

	return s.repo.UpdateOrderStatus(ctx, id, patch)
}

// CancelOrder is the CANCELLED order transition; refunding a paid order rides
// in the same patch via the state machine cross-effect.
func (s *Service) CancelOrder(ctx context.Context, id string) (*domain.Order, error) {
	return s.UpdateOrderStatus(ctx, id, domain.OrderStatusCancelled)
}
