package http

import (
	"encoding/json"
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/govalues/decimal"
	"github.com/shopmesh/orderservice/internal/core/domain"
	"github.com/shopmesh/orderservice/internal/core/port"
	"go.uber.org/zap"
)

type OrderHandler struct {
	Handler
	service port.OrderService
}

func NewOrderHandler(service port.OrderService, logger *zap.Logger) (*OrderHandler, error) {
	return &OrderHandler{
		Handler: *NewHandler(logger),
		service: service,
	}, nil
}

type createOrderItemRequest struct {
	ProductID uint64 `json:"productId" binding:"required"`
	Quantity  uint32 `json:"quantity" binding:"required,min=1"`
}

type createOrderRequest struct {
	UserID               uint64                   `json:"userId" binding:"required"`
	Items                []createOrderItemRequest `json:"items" binding:"required,min=1,dive"`
	ShippingAddress      json.RawMessage          `json:"shippingAddress" binding:"required"`
	ShippingCost         *float64                 `json:"shippingCost"`
	Discount             *float64                 `json:"discount"`
	InitialPaymentStatus string                   `json:"initialPaymentStatus"`
}

func (oh *OrderHandler) CreateOrder(ctx *gin.Context) {
	var req createOrderRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		oh.handleValidationError(ctx, domain.ErrBadRequest)
		return
	}

	shipping, err := optionalAmount(req.ShippingCost)
	if err != nil {
		oh.handleValidationError(ctx, domain.ErrBadRequest)
		return
	}
	discount, err := optionalAmount(req.Discount)
	if err != nil {
		oh.handleValidationError(ctx, domain.ErrBadRequest)
		return
	}

	createReq := &domain.CreateOrderRequest{
		UserID:               req.UserID,
		ShippingAddress:      req.ShippingAddress,
		ShippingCost:         shipping,
		Discount:             discount,
		InitialPaymentStatus: domain.PaymentStatus(req.InitialPaymentStatus),
	}
	for _, item := range req.Items {
		createReq.Items = append(createReq.Items,
			domain.RequestedItem{ProductID: item.ProductID, Quantity: item.Quantity})
	}

	order, err := oh.service.CreateOrder(ctx, createReq)
	if err != nil {
		oh.handleError(ctx, err)
		return
	}

	oh.handleSuccessWithStatus(ctx, newOrderResponse(order), http.StatusCreated)
}

func (oh *OrderHandler) GetOrder(ctx *gin.Context) {
	id, err := orderID(ctx)
	if err != nil {
		oh.handleValidationError(ctx, err)
		return
	}

	order, err := oh.service.GetOrder(ctx, id)
	if err != nil {
		oh.handleError(ctx, err)
		return
	}

	oh.handleSuccess(ctx, newOrderResponse(order))
}

func (oh *OrderHandler) ListOrdersByUser(ctx *gin.Context) {
	userID, err := strconv.ParseUint(ctx.Query("userId"), 10, 64)
	if err != nil {
		oh.handleValidationError(ctx, domain.ErrBadRequest)
		return
	}

	list, err := oh.service.ListOrdersByUser(ctx, userID)
	if err != nil {
		oh.handleError(ctx, err)
		return
	}

	result := make([]*orderResponse, 0, len(list))
	for _, order := range list {
		result = append(result, newOrderResponse(order))
	}

	oh.handleSuccess(ctx, result)
}

type updateOrderStatusRequest struct {
	OrderStatus string `json:"orderStatus" binding:"required"`
}

func (oh *OrderHandler) UpdateOrderStatus(ctx *gin.Context) {
	id, err := orderID(ctx)
	if err != nil {
		oh.handleValidationError(ctx, err)
		return
	}

	var req updateOrderStatusRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		oh.handleValidationError(ctx, domain.ErrBadRequest)
		return
	}

	order, err := oh.service.UpdateOrderStatus(ctx, id, domain.OrderStatus(req.OrderStatus))
	if err != nil {
		oh.handleError(ctx, err)
		return
	}

	oh.handleSuccess(ctx, newOrderResponse(order))
}

type updatePaymentStatusRequest struct {
	PaymentStatus string `json:"paymentStatus" binding:"required"`
	TransactionID string `json:"transactionId"`
}

func (oh *OrderHandler) UpdatePaymentStatus(ctx *gin.Context) {
	id, err := orderID(ctx)
	if err != nil {
		oh.handleValidationError(ctx, err)
		return
	}

	var req updatePaymentStatusRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		oh.handleValidationError(ctx, domain.ErrBadRequest)
		return
	}

	order, err := oh.service.UpdatePaymentStatus(ctx, id,
		domain.PaymentStatus(req.PaymentStatus), req.TransactionID)
	if err != nil {
		oh.handleError(ctx, err)
		return
	}

	oh.handleSuccess(ctx, newOrderResponse(order))
}

func (oh *OrderHandler) CancelOrder(ctx *gin.Context) {
	id, err := orderID(ctx)
	if err != nil {
		oh.handleValidationError(ctx, err)
		return
	}

	order, err := oh.service.CancelOrder(ctx, id)
	if err != nil {
		oh.handleError(ctx, err)
		return
	}

	oh.handleSuccess(ctx, newOrderResponse(order))
}

// orderID rejects malformed ids at the edge, before the core is invoked.
func orderID(ctx *gin.Context) (string, error) {
	id := ctx.Param("id")
	if _, err := uuid.Parse(id); err != nil {
		return "", domain.ErrBadRequest
	}
	return id, nil
}

func optionalAmount(value *float64) (decimal.Decimal, error) {
	if value == nil {
		return decimal.Zero, nil
	}
	return decimal.NewFromFloat64(*value)
}

type orderItemResponse struct {
	ID          string          `json:"id"`
	ProductID   uint64          `json:"productId"`
	ProductName string          `json:"productName"`
	Price       decimal.Decimal `json:"price"`
	Quantity    uint32          `json:"quantity"`
	Subtotal    decimal.Decimal `json:"subtotal"`
}

type orderResponse struct {
	ID              string              `json:"id"`
	OrderNumber     string              `json:"orderNumber"`
	UserID          uint64              `json:"userId"`
	Items           []orderItemResponse `json:"items"`
	Subtotal        decimal.Decimal     `json:"subtotal"`
	ShippingCost    decimal.Decimal     `json:"shippingCost"`
	Discount        decimal.Decimal     `json:"discount"`
	Total           decimal.Decimal     `json:"total"`
	PaymentStatus   string              `json:"paymentStatus"`
	OrderStatus     string              `json:"orderStatus"`
	ShippingAddress json.RawMessage     `json:"shippingAddress"`
	TransactionID   string              `json:"transactionId,omitempty"`
	CreatedAt       time.Time           `json:"createdAt"`
	UpdatedAt       time.Time           `json:"updatedAt"`
}

func newOrderResponse(order *domain.Order) *orderResponse {
	items := make([]orderItemResponse, 0, len(order.Items))
	for _, item := range order.Items {
		items = append(items, orderItemResponse{
			ID:          item.ID,
			ProductID:   item.ProductID,
			ProductName: item.ProductName,
			Price:       item.Price,
			Quantity:    item.Quantity,
			Subtotal:    item.Subtotal,
		})
	}

	return &orderResponse{
		ID:              order.ID,
		OrderNumber:     order.Number,
		UserID:          order.UserID,
		Items:           items,
		Subtotal:        order.Subtotal,
		ShippingCost:    order.ShippingCost,
		Discount:        order.Discount,
		Total:           order.Total,
		PaymentStatus:   string(order.PaymentStatus),
		OrderStatus:     string(order.OrderStatus),
		ShippingAddress: order.ShippingAddress,
		TransactionID:   order.TransactionID,
		CreatedAt:       order.CreatedAt,
		UpdatedAt:       order.UpdatedAt,
	}
}
