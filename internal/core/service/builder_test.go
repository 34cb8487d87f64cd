package service_test

import (
	"math"
	"testing"

	"github.com/govalues/decimal"
	"github.com/shopmesh/orderservice/internal/core/domain"
	"github.com/shopmesh/orderservice/internal/core/service"
	"github.com/stretchr/testify/assert"
)

func TestBuilder_Build(t *testing.T) {
	builder := service.NewBuilder()

	type buildTest struct {
		name        string
		requested   []domain.RequestedItem
		snapshots   []domain.ProductSnapshot
		shipping    decimal.Decimal
		discount    decimal.Decimal
		expSubtotal string
		expTotal    string
		expError    error
	}

	tests := []buildTest{
		{
			name:        "single item with shipping",
			requested:   []domain.RequestedItem{{ProductID: 1, Quantity: 2}},
			snapshots:   []domain.ProductSnapshot{{ID: 1, Name: "Widget", Price: 10.00}},
			shipping:    decimal.MustParse("5"),
			discount:    decimal.Zero,
			expSubtotal: "20.00",
			expTotal:    "25.00",
		},
		{
			name: "multiple items with discount",
			requested: []domain.RequestedItem{
				{ProductID: 1, Quantity: 3},
				{ProductID: 2, Quantity: 1},
			},
			snapshots: []domain.ProductSnapshot{
				{ID: 1, Name: "Widget", Price: 19.99},
				{ID: 2, Name: "Gadget", Price: 4.50},
			},
			shipping:    decimal.Zero,
			discount:    decimal.MustParse("10"),
			expSubtotal: "64.47",
			expTotal:    "54.47",
		},
		{
			name:        "free item",
			requested:   []domain.RequestedItem{{ProductID: 5, Quantity: 4}},
			snapshots:   []domain.ProductSnapshot{{ID: 5, Name: "Sticker", Price: 0}},
			shipping:    decimal.Zero,
			discount:    decimal.Zero,
			expSubtotal: "0.00",
			expTotal:    "0.00",
		},
		{
			name:        "line subtotal rounds half up",
			requested:   []domain.RequestedItem{{ProductID: 4, Quantity: 3}},
			snapshots:   []domain.ProductSnapshot{{ID: 4, Name: "Washer", Price: 0.125}},
			shipping:    decimal.Zero,
			discount:    decimal.Zero,
			expSubtotal: "0.38",
			expTotal:    "0.38",
		},
		{
			name:        "total rounds half up",
			requested:   []domain.RequestedItem{{ProductID: 1, Quantity: 2}},
			snapshots:   []domain.ProductSnapshot{{ID: 1, Name: "Widget", Price: 10.00}},
			shipping:    decimal.MustParse("0.005"),
			discount:    decimal.Zero,
			expSubtotal: "20.00",
			expTotal:    "20.01",
		},
		{
			name:      "missing snapshot",
			requested: []domain.RequestedItem{{ProductID: 1, Quantity: 1}, {ProductID: 9, Quantity: 1}},
			snapshots: []domain.ProductSnapshot{{ID: 1, Name: "Widget", Price: 10.00}},
			shipping:  decimal.Zero,
			discount:  decimal.Zero,
			expError:  domain.ErrProductNotFound,
		},
		{
			name:      "negative price",
			requested: []domain.RequestedItem{{ProductID: 3, Quantity: 1}},
			snapshots: []domain.ProductSnapshot{{ID: 3, Name: "Broken", Price: -1.50}},
			shipping:  decimal.Zero,
			discount:  decimal.Zero,
			expError:  domain.ErrInvalidPrice,
		},
		{
			name:      "price is not a number",
			requested: []domain.RequestedItem{{ProductID: 3, Quantity: 1}},
			snapshots: []domain.ProductSnapshot{{ID: 3, Name: "Broken", Price: math.NaN()}},
			shipping:  decimal.Zero,
			discount:  decimal.Zero,
			expError:  domain.ErrInvalidPrice,
		},
	}

	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			items, subtotal, total, err := builder.Build(test.requested, test.snapshots,
				test.shipping, test.discount)

			if test.expError != nil {
				assert.ErrorIs(t, err, test.expError)
				assert.Nil(t, items)
				return
			}

			assert.NoError(t, err)
			assert.Len(t, items, len(test.requested))
			assert.Equal(t, test.expSubtotal, subtotal.String())
			assert.Equal(t, test.expTotal, total.String())
		})
	}
}

func TestBuilder_BuildSnapshots(t *testing.T) {
	builder := service.NewBuilder()

	items, subtotal, _, err := builder.Build(
		[]domain.RequestedItem{{ProductID: 1, Quantity: 2}},
		[]domain.ProductSnapshot{{ID: 1, Name: "Widget", Price: 10.00, Stock: 3}},
		decimal.Zero, decimal.Zero)
	assert.NoError(t, err)

	// Name and price are frozen copies of the snapshot.
	assert.Equal(t, uint64(1), items[0].ProductID)
	assert.Equal(t, "Widget", items[0].ProductName)
	assert.Zero(t, items[0].Price.Cmp(decimal.MustParse("10")))
	assert.Equal(t, uint32(2), items[0].Quantity)
	assert.Equal(t, "20.00", items[0].Subtotal.String())
	assert.Zero(t, subtotal.Cmp(items[0].Subtotal))
}

func TestBuilder_BuildDeterministic(t *testing.T) {
	builder := service.NewBuilder()

	requested := []domain.RequestedItem{{ProductID: 1, Quantity: 3}}
	snapshots := []domain.ProductSnapshot{{ID: 1, Name: "Widget", Price: 3.33}}

	_, _, first, err := builder.Build(requested, snapshots, decimal.MustParse("1.05"), decimal.Zero)
	assert.NoError(t, err)
	_, _, second, err := builder.Build(requested, snapshots, decimal.MustParse("1.05"), decimal.Zero)
	assert.NoError(t, err)

	assert.Zero(t, first.Cmp(second))
	assert.Equal(t, "11.04", first.String())
}
