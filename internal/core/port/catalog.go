package port

import (
	"context"

	"github.com/shopmesh/orderservice/internal/core/domain"
)

// CatalogClient is the product catalog collaborator: product snapshots plus
// the stock reservation primitives of the creation saga. A reservation made
// under a correlation id is later committed against the persisted order or
// released by that same id.
type CatalogClient interface {
	ProductsByIDs(ctx context.Context, ids []uint64) ([]domain.ProductSnapshot, error)
	ReserveStock(ctx context.Context, items []domain.StockItem, tempID string) error
	CommitStock(ctx context.Context, orderID string, items []domain.StockItem) error
	// ReleaseStock is best-effort compensation: failures are logged by the
	// implementation and never surfaced.
	ReleaseStock(ctx context.Context, tempID string)
}
