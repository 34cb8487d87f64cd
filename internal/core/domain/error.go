package domain

import (
	"errors"
)

var (
	ErrInternal = errors.New("internal error")

	// * Data errors.
	ErrDataNotFound    = errors.New("data not found")
	ErrConflictingData = errors.New("data conflicts with existing data in unique column")

	// * Communication errors.
	ErrBadRequest         = errors.New("error parsing request")
	ErrCatalogUnavailable = errors.New("catalog service unavailable")

	// * Business errors.
	ErrOrderNoItems      = errors.New("order has no items")
	ErrProductNotFound   = errors.New("product not found")
	ErrInvalidPrice      = errors.New("invalid product price")
	ErrInvalidAmount     = errors.New("shipping cost and discount must not be negative")
	ErrStockConflict     = errors.New("stock reservation rejected")
	ErrInvalidTransition = errors.New("status transition not allowed")
)
