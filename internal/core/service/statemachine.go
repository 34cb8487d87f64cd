package service

import (
	"fmt"

	"github.com/shopmesh/orderservice/internal/core/domain"
)

// StateMachine validates order and payment status transitions against closed
// transition tables. Any pair not present in a table is illegal, including
// transitions that skip a state (PENDING -> SHIPPED).
type StateMachine struct {
	orderTransitions   map[domain.OrderStatus]map[domain.OrderStatus]bool
	paymentTransitions map[domain.PaymentStatus]map[domain.PaymentStatus]bool
}

func NewStateMachine() *StateMachine {
	return &StateMachine{
		orderTransitions: map[domain.OrderStatus]map[domain.OrderStatus]bool{
			domain.OrderStatusPending: {
				domain.OrderStatusProcessing: true,
				domain.OrderStatusCancelled:  true,
			},
			domain.OrderStatusProcessing: {
				domain.OrderStatusShipped:   true,
				domain.OrderStatusCancelled: true,
			},
			domain.OrderStatusShipped: {
				domain.OrderStatusDelivered: true,
			},
			domain.OrderStatusDelivered: {},
			domain.OrderStatusCancelled: {},
		},
		paymentTransitions: map[domain.PaymentStatus]map[domain.PaymentStatus]bool{
			domain.PaymentStatusPending: {
				domain.PaymentStatusPaid: true,
			},
			domain.PaymentStatusPaid: {
				domain.PaymentStatusRefunded: true,
			},
			domain.PaymentStatusRefunded: {},
		},
	}
}

// OrderTransition returns the patch moving an order to the requested status.
// Cancelling a paid order also marks the payment refunded in the same patch.
// The refund is a compensating marker only: moving the funds is the payment
// provider's responsibility.
func (m *StateMachine) OrderTransition(order *domain.Order, to domain.OrderStatus) (domain.StatusPatch, error) {
	if !m.orderTransitions[order.OrderStatus][to] {
		return domain.StatusPatch{},
			fmt.Errorf("%w: %s -> %s", domain.ErrInvalidTransition, order.OrderStatus, to)
	}

	patch := domain.StatusPatch{OrderStatus: &to}
	if to == domain.OrderStatusCancelled && order.PaymentStatus == domain.PaymentStatusPaid {
		refunded := domain.PaymentStatusRefunded
		patch.PaymentStatus = &refunded
	}
	return patch, nil
}

// PaymentTransition returns the patch moving an order's payment to the
// requested status. Paying a pending order advances it to processing in the
// same patch.
func (m *StateMachine) PaymentTransition(order *domain.Order, to domain.PaymentStatus) (domain.StatusPatch, error) {
	if !m.paymentTransitions[order.PaymentStatus][to] {
		return domain.StatusPatch{},
			fmt.Errorf("%w: %s -> %s", domain.ErrInvalidTransition, order.PaymentStatus, to)
	}

	patch := domain.StatusPatch{PaymentStatus: &to}
	if to == domain.PaymentStatusPaid && order.OrderStatus == domain.OrderStatusPending {
		processing := domain.OrderStatusProcessing
		patch.OrderStatus = &processing
	}
	return patch, nil
}
