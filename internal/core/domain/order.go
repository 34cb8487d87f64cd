package domain

import (
	"encoding/json"
	"time"

	"github.com/govalues/decimal"
)

type OrderStatus string

const (
	OrderStatusPending    OrderStatus = "PENDING"
	OrderStatusProcessing OrderStatus = "PROCESSING"
	OrderStatusShipped    OrderStatus = "SHIPPED"
	OrderStatusDelivered  OrderStatus = "DELIVERED"
	OrderStatusCancelled  OrderStatus = "CANCELLED"
)

type PaymentStatus string

const (
	PaymentStatusPending  PaymentStatus = "PENDING"
	PaymentStatusPaid     PaymentStatus = "PAID"
	PaymentStatusRefunded PaymentStatus = "REFUNDED"
)

// OrderItem carries the product name and price frozen at order creation time.
// Later catalog changes never propagate here.
type OrderItem struct {
	ID          string
	OrderID     string
	ProductID   uint64
	ProductName string
	Price       decimal.Decimal
	Quantity    uint32
	Subtotal    decimal.Decimal
}

type Order struct {
	ID              string
	Number          string
	UserID          uint64
	Items           []OrderItem
	Subtotal        decimal.Decimal
	ShippingCost    decimal.Decimal
	Discount        decimal.Decimal
	Total           decimal.Decimal
	PaymentStatus   PaymentStatus
	OrderStatus     OrderStatus
	ShippingAddress json.RawMessage
	TransactionID   string
	CreatedAt       time.Time
	UpdatedAt       time.Time
}

// StatusPatch is the single-write update a status transition applies to an
// order, including any cross-effect on the other status dimension. Financial
// fields are never part of a patch.
type StatusPatch struct {
	OrderStatus   *OrderStatus
	PaymentStatus *PaymentStatus
	TransactionID *string
}

type RequestedItem struct {
	ProductID uint64
	Quantity  uint32
}

type CreateOrderRequest struct {
	UserID               uint64
	Items                []RequestedItem
	ShippingAddress      json.RawMessage
	ShippingCost         decimal.Decimal
	Discount             decimal.Decimal
	InitialPaymentStatus PaymentStatus
}
