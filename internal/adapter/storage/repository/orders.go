package repository

import (
	"context"
	"time"

	sq "github.com/Masterminds/squirrel"
	"github.com/jackc/pgerrcode"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/shopmesh/orderservice/internal/adapter/storage"
	"github.com/shopmesh/orderservice/internal/core/domain"
)

const orderColumns = "id, order_number, user_id, subtotal, shipping_cost, discount, " +
	"total, payment_status, order_status, shipping_address, transaction_id, created_at, updated_at"

type Repository struct {
	db *storage.DB
}

func NewRepository(db *storage.DB) (*Repository, error) {
	return &Repository{db: db}, nil
}

// CreateOrder writes the order header and all its items in one transaction.
// A failure anywhere rolls the whole write back.
func (or *Repository) CreateOrder(ctx context.Context, order *domain.Order) (*domain.Order, error) {
	err := pgx.BeginFunc(ctx, or.db, func(tx pgx.Tx) error {
		headerSt := or.db.QueryBuilder.Insert("orders").
			Columns("id", "order_number", "user_id", "subtotal", "shipping_cost",
				"discount", "total", "payment_status", "order_status",
				"shipping_address", "transaction_id", "created_at", "updated_at").
			Values(order.ID, order.Number, order.UserID, order.Subtotal, order.ShippingCost,
				order.Discount, order.Total, order.PaymentStatus, order.OrderStatus,
				order.ShippingAddress, order.TransactionID, order.CreatedAt, order.UpdatedAt)

		sql, args, err := headerSt.ToSql()
		if err != nil {
			return err
		}
		_, err = tx.Exec(ctx, sql, args...)
		if err != nil {
			return err
		}

		itemSt := or.db.QueryBuilder.Insert("order_items").
			Columns("id", "order_id", "position", "product_id", "product_name",
				"price", "quantity", "subtotal")
		for i, item := range order.Items {
			itemSt = itemSt.Values(item.ID, order.ID, i, item.ProductID, item.ProductName,
				item.Price, item.Quantity, item.Subtotal)
		}

		sql, args, err = itemSt.ToSql()
		if err != nil {
			return err
		}
		_, err = tx.Exec(ctx, sql, args...)
		return err
	})

	if err != nil {
		if pgErr, ok := err.(*pgconn.PgError); ok && pgErr.Code == pgerrcode.UniqueViolation {
			return nil, domain.ErrConflictingData
		}
		return nil, err
	}

	return order, nil
}

func (or *Repository) ReadOrder(ctx context.Context, id string) (*domain.Order, error) {
	statement := or.db.QueryBuilder.
		Select(orderColumns).
		From("orders").
		Where(sq.Eq{"id": id})

	sql, args, err := statement.ToSql()
	if err != nil {
		return nil, err
	}

	order := domain.Order{}

	err = or.db.QueryRow(ctx, sql, args...).Scan(
		&order.ID,
		&order.Number,
		&order.UserID,
		&order.Subtotal,
		&order.ShippingCost,
		&order.Discount,
		&order.Total,
		&order.PaymentStatus,
		&order.OrderStatus,
		&order.ShippingAddress,
		&order.TransactionID,
		&order.CreatedAt,
		&order.UpdatedAt,
	)
	if err != nil {
		if err == pgx.ErrNoRows {
			return nil, domain.ErrDataNotFound
		}
		return nil, err
	}

	itemsByOrder, err := or.readItems(ctx, []string{order.ID})
	if err != nil {
		return nil, err
	}
	order.Items = itemsByOrder[order.ID]

	return &order, nil
}

func (or *Repository) ListOrdersByUser(ctx context.Context, userID uint64) ([]*domain.Order, error) {
	statement := or.db.QueryBuilder.
		Select(orderColumns).
		From("orders").
		Where(sq.Eq{"user_id": userID}).
		OrderBy("created_at DESC")

	sql, args, err := statement.ToSql()
	if err != nil {
		return nil, err
	}

	rows, err := or.db.Query(ctx, sql, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	list := make([]*domain.Order, 0)
	ids := make([]string, 0)
	for rows.Next() {
		order := domain.Order{}
		err := rows.Scan(
			&order.ID,
			&order.Number,
			&order.UserID,
			&order.Subtotal,
			&order.ShippingCost,
			&order.Discount,
			&order.Total,
			&order.PaymentStatus,
			&order.OrderStatus,
			&order.ShippingAddress,
			&order.TransactionID,
			&order.CreatedAt,
			&order.UpdatedAt,
		)
		if err != nil {
			return nil, err
		}
		list = append(list, &order)
		ids = append(ids, order.ID)
	}

	err = rows.Err()
	if err != nil {
		return nil, err
	}

	if len(ids) == 0 {
		return list, nil
	}

	itemsByOrder, err := or.readItems(ctx, ids)
	if err != nil {
		return nil, err
	}
	for _, order := range list {
		order.Items = itemsByOrder[order.ID]
	}

	return list, nil
}

// UpdateOrderStatus applies a status patch to a single order row. Money
// columns are never part of the update.
func (or *Repository) UpdateOrderStatus(ctx context.Context, id string, patch domain.StatusPatch) (*domain.Order, error) {
	statement := or.db.QueryBuilder.Update("orders").
		Set("updated_at", time.Now()).
		Where(sq.Eq{"id": id})

	if patch.OrderStatus != nil {
		statement = statement.Set("order_status", *patch.OrderStatus)
	}
	if patch.PaymentStatus != nil {
		statement = statement.Set("payment_status", *patch.PaymentStatus)
	}
	if patch.TransactionID != nil {
		statement = statement.Set("transaction_id", *patch.TransactionID)
	}

	sql, args, err := statement.ToSql()
	if err != nil {
		return nil, err
	}

	tag, err := or.db.Exec(ctx, sql, args...)
	if err != nil {
		return nil, err
	}
	if tag.RowsAffected() == 0 {
		return nil, domain.ErrDataNotFound
	}

	return or.ReadOrder(ctx, id)
}

func (or *Repository) readItems(ctx context.Context, orderIDs []string) (map[string][]domain.OrderItem, error) {
	statement := or.db.QueryBuilder.
		Select("id", "order_id", "product_id", "product_name", "price", "quantity", "subtotal").
		From("order_items").
		Where(sq.Eq{"order_id": orderIDs}).
		OrderBy("order_id", "position")

	sql, args, err := statement.ToSql()
	if err != nil {
		return nil, err
	}

	rows, err := or.db.Query(ctx, sql, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	items := make(map[string][]domain.OrderItem)
	for rows.Next() {
		item := domain.OrderItem{}
		err := rows.Scan(
			&item.ID,
			&item.OrderID,
			&item.ProductID,
			&item.ProductName,
			&item.Price,
			&item.Quantity,
			&item.Subtotal,
		)
		if err != nil {
			return nil, err
		}
		items[item.OrderID] = append(items[item.OrderID], item)
	}

	err = rows.Err()
	if err != nil {
		return nil, err
	}

	return items, nil
}
