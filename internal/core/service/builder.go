package service

import (
	"fmt"

	"github.com/govalues/decimal"
	"github.com/shopmesh/orderservice/internal/core/domain"
)

// Builder prices a raw item list against catalog snapshots. It performs no
// I/O: identical inputs always produce identical items and totals.
type Builder struct{}

func NewBuilder() *Builder {
	return &Builder{}
}

// Build freezes name and price snapshots into order items and computes the
// aggregate money fields: subtotal is the sum of price times quantity per
// item, total is subtotal plus shipping cost minus discount, everything at
// two decimal places.
func (b *Builder) Build(
	requested []domain.RequestedItem,
	snapshots []domain.ProductSnapshot,
	shippingCost decimal.Decimal,
	discount decimal.Decimal,
) ([]domain.OrderItem, decimal.Decimal, decimal.Decimal, error) {
	snapMap := make(map[uint64]domain.ProductSnapshot, len(snapshots))
	for _, snap := range snapshots {
		snapMap[snap.ID] = snap
	}

	items := make([]domain.OrderItem, 0, len(requested))
	subtotal := decimal.Zero
	for _, req := range requested {
		snap, ok := snapMap[req.ProductID]
		if !ok {
			return nil, decimal.Zero, decimal.Zero,
				fmt.Errorf("%w: %d", domain.ErrProductNotFound, req.ProductID)
		}

		price, err := decimal.NewFromFloat64(snap.Price)
		if err != nil || price.IsNeg() {
			return nil, decimal.Zero, decimal.Zero,
				fmt.Errorf("%w: product %d", domain.ErrInvalidPrice, req.ProductID)
		}

		qty, err := decimal.New(int64(req.Quantity), 0)
		if err != nil {
			return nil, decimal.Zero, decimal.Zero, fmt.Errorf("item quantity: %w", err)
		}
		// The raw snapshot price multiplies out first; only the product is
		// rounded to money scale.
		lineTotal, err := price.Mul(qty)
		if err != nil {
			return nil, decimal.Zero, decimal.Zero, fmt.Errorf("item subtotal: %w", err)
		}
		lineTotal, err = roundMoney(lineTotal)
		if err != nil {
			return nil, decimal.Zero, decimal.Zero, fmt.Errorf("item subtotal: %w", err)
		}

		subtotal, err = subtotal.Add(lineTotal)
		if err != nil {
			return nil, decimal.Zero, decimal.Zero, fmt.Errorf("order subtotal: %w", err)
		}

		items = append(items, domain.OrderItem{
			ProductID:   snap.ID,
			ProductName: snap.Name,
			Price:       price,
			Quantity:    req.Quantity,
			Subtotal:    lineTotal,
		})
	}

	subtotal, err := roundMoney(subtotal)
	if err != nil {
		return nil, decimal.Zero, decimal.Zero, fmt.Errorf("order subtotal: %w", err)
	}

	total, err := subtotal.Add(shippingCost)
	if err != nil {
		return nil, decimal.Zero, decimal.Zero, fmt.Errorf("order total: %w", err)
	}
	total, err = total.Sub(discount)
	if err != nil {
		return nil, decimal.Zero, decimal.Zero, fmt.Errorf("order total: %w", err)
	}
	total, err = roundMoney(total)
	if err != nil {
		return nil, decimal.Zero, decimal.Zero, fmt.Errorf("order total: %w", err)
	}

	return items, subtotal, total, nil
}

var halfCent = decimal.MustParse("0.005")

// roundMoney rounds to two decimal places with halves away from zero.
// Decimal.Round is half-to-even, which is the wrong rule for money here.
func roundMoney(d decimal.Decimal) (decimal.Decimal, error) {
	half := halfCent
	if d.IsNeg() {
		half = half.Neg()
	}
	shifted, err := d.Add(half)
	if err != nil {
		return decimal.Decimal{}, err
	}
	return shifted.Trunc(2).Pad(2), nil
}
