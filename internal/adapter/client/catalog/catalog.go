package catalog

import (
	"context"
	"fmt"
	"net/http"
	"strconv"
	"strings"

	"github.com/go-resty/resty/v2"
	"github.com/shopmesh/orderservice/internal/adapter/config"
	"github.com/shopmesh/orderservice/internal/core/domain"
	"go.uber.org/zap"
)

// Client talks to the product catalog service: product snapshots plus the
// stock reservation lifecycle (reserve, commit, release).
type Client struct {
	logger *zap.Logger
	http   *resty.Client
}

func NewClient(cfg *config.Catalog, log *zap.Logger) (*Client, error) {
	client := resty.New().
		SetBaseURL(cfg.HostString).
		SetTimeout(cfg.Timeout)

	return &Client{
		logger: log,
		http:   client,
	}, nil
}

type productPayload struct {
	ID    uint64  `json:"id"`
	Name  string  `json:"name"`
	Price float64 `json:"price"`
	Stock int64   `json:"stock,omitempty"`
}

type stockItemPayload struct {
	ProductID uint64 `json:"productId"`
	Quantity  uint32 `json:"quantity"`
}

type reserveContext struct {
	OrderTempID string `json:"orderTempId"`
}

type reserveRequest struct {
	Items   []stockItemPayload `json:"items"`
	Context reserveContext     `json:"context"`
}

type commitRequest struct {
	OrderID string             `json:"orderId"`
	Items   []stockItemPayload `json:"items"`
}

type releaseRequest struct {
	OrderTempID string `json:"orderTempId"`
}

func (c *Client) ProductsByIDs(ctx context.Context, ids []uint64) ([]domain.ProductSnapshot, error) {
	var payload []productPayload
	resp, err := c.http.R().
		SetContext(ctx).
		SetQueryParam("ids", joinIDs(ids)).
		SetResult(&payload).
		Get("/products/bulk")
	if err != nil {
		c.logger.Error("bulk product fetch", zap.Error(err))
		return nil, domain.ErrCatalogUnavailable
	}
	if resp.IsError() {
		c.logger.Error("bulk product fetch", zap.Int("status", resp.StatusCode()))
		return nil, domain.ErrCatalogUnavailable
	}

	snapshots := make([]domain.ProductSnapshot, len(payload))
	for i, p := range payload {
		snapshots[i] = domain.ProductSnapshot{
			ID:    p.ID,
			Name:  p.Name,
			Price: p.Price,
			Stock: p.Stock,
		}
	}
	return snapshots, nil
}

// ReserveStock places a soft hold on every item under the given correlation
// id. A 409 means the catalog refused the hold; any other failure is the
// service being unreachable, and in both cases no hold was placed.
func (c *Client) ReserveStock(ctx context.Context, items []domain.StockItem, tempID string) error {
	resp, err := c.http.R().
		SetContext(ctx).
		SetBody(reserveRequest{
			Items:   stockPayload(items),
			Context: reserveContext{OrderTempID: tempID},
		}).
		Post("/inventory/reserve")
	if err != nil {
		c.logger.Error("stock reserve", zap.String("reservation", tempID), zap.Error(err))
		return fmt.Errorf("%w: reservation %s", domain.ErrCatalogUnavailable, tempID)
	}
	if resp.StatusCode() == http.StatusConflict {
		return fmt.Errorf("%w: reservation %s", domain.ErrStockConflict, tempID)
	}
	if resp.IsError() {
		return fmt.Errorf("%w: status %d", domain.ErrCatalogUnavailable, resp.StatusCode())
	}
	return nil
}

func (c *Client) CommitStock(ctx context.Context, orderID string, items []domain.StockItem) error {
	resp, err := c.http.R().
		SetContext(ctx).
		SetBody(commitRequest{OrderID: orderID, Items: stockPayload(items)}).
		Post("/inventory/commit")
	if err != nil {
		return fmt.Errorf("%w: %v", domain.ErrCatalogUnavailable, err)
	}
	if resp.IsError() {
		return fmt.Errorf("%w: status %d", domain.ErrCatalogUnavailable, resp.StatusCode())
	}
	return nil
}

// ReleaseStock drops a reservation that will never be committed. Best-effort:
// failures are logged and swallowed, never retried, never surfaced.
func (c *Client) ReleaseStock(ctx context.Context, tempID string) {
	resp, err := c.http.R().
		SetContext(ctx).
		SetBody(releaseRequest{OrderTempID: tempID}).
		Post("/inventory/release")
	if err != nil {
		c.logger.Error("stock release", zap.String("reservation", tempID), zap.Error(err))
		return
	}
	if resp.IsError() {
		c.logger.Error("stock release",
			zap.String("reservation", tempID), zap.Int("status", resp.StatusCode()))
	}
}

func stockPayload(items []domain.StockItem) []stockItemPayload {
	payload := make([]stockItemPayload, len(items))
	for i, item := range items {
		payload[i] = stockItemPayload{ProductID: item.ProductID, Quantity: item.Quantity}
	}
	return payload
}

func joinIDs(ids []uint64) string {
	parts := make([]string, len(ids))
	for i, id := range ids {
		parts[i] = strconv.FormatUint(id, 10)
	}
	return strings.Join(parts, ",")
}
