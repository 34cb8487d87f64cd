package catalog_test

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/shopmesh/orderservice/internal/adapter/client/catalog"
	"github.com/shopmesh/orderservice/internal/adapter/config"
	"github.com/shopmesh/orderservice/internal/core/domain"
	"github.com/stretchr/testify/assert"
	"go.uber.org/zap"
)

func newClient(t *testing.T, handler http.Handler) (*catalog.Client, *httptest.Server) {
	t.Helper()

	srv := httptest.NewServer(handler)
	t.Cleanup(srv.Close)

	client, err := catalog.NewClient(
		&config.Catalog{HostString: srv.URL, Timeout: time.Second},
		zap.NewNop())
	assert.NoError(t, err)

	return client, srv
}

func TestClient_ProductsByIDs(t *testing.T) {
	var gotIDs string
	client, _ := newClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/products/bulk", r.URL.Path)
		gotIDs = r.URL.Query().Get("ids")

		w.Header().Set("Content-Type", "application/json")
		_ = json.NewEncoder(w).Encode([]map[string]any{
			{"id": 1, "name": "Widget", "price": 10.00, "stock": 7},
			{"id": 2, "name": "Gadget", "price": 4.50},
		})
	}))

	snapshots, err := client.ProductsByIDs(context.Background(), []uint64{1, 2})
	assert.NoError(t, err)
	assert.Equal(t, "1,2", gotIDs)
	assert.Equal(t, []domain.ProductSnapshot{
		{ID: 1, Name: "Widget", Price: 10.00, Stock: 7},
		{ID: 2, Name: "Gadget", Price: 4.50},
	}, snapshots)
}

func TestClient_ProductsByIDs_Unavailable(t *testing.T) {
	client, _ := newClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
	}))

	_, err := client.ProductsByIDs(context.Background(), []uint64{1})
	assert.ErrorIs(t, err, domain.ErrCatalogUnavailable)
}

func TestClient_ReserveStock(t *testing.T) {
	tests := []struct {
		name     string
		status   int
		expError error
	}{
		{name: "reserved", status: http.StatusOK, expError: nil},
		{name: "conflict", status: http.StatusConflict, expError: domain.ErrStockConflict},
		{name: "upstream error is not a conflict", status: http.StatusInternalServerError, expError: domain.ErrCatalogUnavailable},
	}

	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			var gotBody map[string]any
			client, _ := newClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				assert.Equal(t, "/inventory/reserve", r.URL.Path)
				_ = json.NewDecoder(r.Body).Decode(&gotBody)
				w.WriteHeader(test.status)
			}))

			err := client.ReserveStock(context.Background(),
				[]domain.StockItem{{ProductID: 1, Quantity: 2}}, "temp-42")

			if test.expError != nil {
				assert.ErrorIs(t, err, test.expError)
				return
			}
			assert.NoError(t, err)

			ctxPayload, ok := gotBody["context"].(map[string]any)
			assert.True(t, ok)
			assert.Equal(t, "temp-42", ctxPayload["orderTempId"])
		})
	}
}

func TestClient_ReserveStock_Unreachable(t *testing.T) {
	client, srv := newClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	srv.Close()

	err := client.ReserveStock(context.Background(),
		[]domain.StockItem{{ProductID: 1, Quantity: 1}}, "temp-42")
	assert.ErrorIs(t, err, domain.ErrCatalogUnavailable)
}

func TestClient_CommitStock_Unavailable(t *testing.T) {
	client, srv := newClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadGateway)
	}))
	_ = srv

	err := client.CommitStock(context.Background(), "order-1",
		[]domain.StockItem{{ProductID: 1, Quantity: 1}})
	assert.True(t, errors.Is(err, domain.ErrCatalogUnavailable))
}

func TestClient_ReleaseStock_SwallowsFailures(t *testing.T) {
	client, _ := newClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/inventory/release", r.URL.Path)
		w.WriteHeader(http.StatusInternalServerError)
	}))

	// Must not panic and has nothing to return.
	client.ReleaseStock(context.Background(), "temp-42")
}
