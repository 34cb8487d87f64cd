package service_test

import (
	"testing"

	"github.com/shopmesh/orderservice/internal/core/domain"
	"github.com/shopmesh/orderservice/internal/core/service"
	"github.com/stretchr/testify/assert"
)

func TestStateMachine_OrderTransition(t *testing.T) {
	fsm := service.NewStateMachine()

	type transitionTest struct {
		name     string
		from     domain.OrderStatus
		payment  domain.PaymentStatus
		to       domain.OrderStatus
		expError bool
		expPay   *domain.PaymentStatus
	}

	refunded := domain.PaymentStatusRefunded

	tests := []transitionTest{
		{name: "pending to processing", from: domain.OrderStatusPending, payment: domain.PaymentStatusPending, to: domain.OrderStatusProcessing},
		{name: "pending to cancelled", from: domain.OrderStatusPending, payment: domain.PaymentStatusPending, to: domain.OrderStatusCancelled},
		{name: "processing to shipped", from: domain.OrderStatusProcessing, payment: domain.PaymentStatusPaid, to: domain.OrderStatusShipped},
		{name: "processing to cancelled", from: domain.OrderStatusProcessing, payment: domain.PaymentStatusPending, to: domain.OrderStatusCancelled},
		{name: "shipped to delivered", from: domain.OrderStatusShipped, payment: domain.PaymentStatusPaid, to: domain.OrderStatusDelivered},
		{name: "pending cannot skip to shipped", from: domain.OrderStatusPending, payment: domain.PaymentStatusPending, to: domain.OrderStatusShipped, expError: true},
		{name: "pending cannot skip to delivered", from: domain.OrderStatusPending, payment: domain.PaymentStatusPending, to: domain.OrderStatusDelivered, expError: true},
		{name: "shipped cannot be cancelled", from: domain.OrderStatusShipped, payment: domain.PaymentStatusPaid, to: domain.OrderStatusCancelled, expError: true},
		{name: "delivered is terminal", from: domain.OrderStatusDelivered, payment: domain.PaymentStatusPaid, to: domain.OrderStatusCancelled, expError: true},
		{name: "cancelled is terminal", from: domain.OrderStatusCancelled, payment: domain.PaymentStatusPending, to: domain.OrderStatusProcessing, expError: true},
		{name: "no self transition", from: domain.OrderStatusProcessing, payment: domain.PaymentStatusPending, to: domain.OrderStatusProcessing, expError: true},
		{
			name: "cancelling a paid order refunds it",
			from: domain.OrderStatusProcessing, payment: domain.PaymentStatusPaid,
			to:     domain.OrderStatusCancelled,
			expPay: &refunded,
		},
	}

	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			order := &domain.Order{OrderStatus: test.from, PaymentStatus: test.payment}

			patch, err := fsm.OrderTransition(order, test.to)

			if test.expError {
				assert.ErrorIs(t, err, domain.ErrInvalidTransition)
				return
			}

			assert.NoError(t, err)
			assert.Equal(t, test.to, *patch.OrderStatus)
			if test.expPay != nil {
				assert.Equal(t, *test.expPay, *patch.PaymentStatus)
			} else {
				assert.Nil(t, patch.PaymentStatus)
			}
		})
	}
}

func TestStateMachine_PaymentTransition(t *testing.T) {
	fsm := service.NewStateMachine()

	type transitionTest struct {
		name     string
		order    domain.OrderStatus
		from     domain.PaymentStatus
		to       domain.PaymentStatus
		expError bool
		expOrder *domain.OrderStatus
	}

	processing := domain.OrderStatusProcessing

	tests := []transitionTest{
		{
			name:  "paying a pending order advances it",
			order: domain.OrderStatusPending, from: domain.PaymentStatusPending,
			to:       domain.PaymentStatusPaid,
			expOrder: &processing,
		},
		{
			name:  "paying a processing order leaves it alone",
			order: domain.OrderStatusProcessing, from: domain.PaymentStatusPending,
			to: domain.PaymentStatusPaid,
		},
		{name: "paid to refunded", order: domain.OrderStatusCancelled, from: domain.PaymentStatusPaid, to: domain.PaymentStatusRefunded},
		{name: "pending cannot skip to refunded", order: domain.OrderStatusPending, from: domain.PaymentStatusPending, to: domain.PaymentStatusRefunded, expError: true},
		{name: "refunded is terminal", order: domain.OrderStatusCancelled, from: domain.PaymentStatusRefunded, to: domain.PaymentStatusPaid, expError: true},
		{name: "no backwards transition", order: domain.OrderStatusProcessing, from: domain.PaymentStatusPaid, to: domain.PaymentStatusPending, expError: true},
	}

	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			order := &domain.Order{OrderStatus: test.order, PaymentStatus: test.from}

			patch, err := fsm.PaymentTransition(order, test.to)

			if test.expError {
				assert.ErrorIs(t, err, domain.ErrInvalidTransition)
				return
			}

			assert.NoError(t, err)
			assert.Equal(t, test.to, *patch.PaymentStatus)
			if test.expOrder != nil {
				assert.Equal(t, *test.expOrder, *patch.OrderStatus)
			} else {
				assert.Nil(t, patch.OrderStatus)
			}
		})
	}
}
