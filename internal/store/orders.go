package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"order-store/internal/models"

	"github.com/jmoiron/sqlx"
)

// CreateOrder inserts the order row plus one join row per item id, all in a
// single transaction. Item ids keep their submitted order and duplicates
// are preserved. Neither the customer id nor the item ids are checked for
// existence.
func (s *Store) CreateOrder(ctx context.Context, order *models.Order) error {
	tx, err := s.db.BeginTxx(ctx, nil)
	if err != nil {
		return err
	}
	defer tx.Rollback()

	query := `
		INSERT INTO orders (customer_id, "timestamp", notes)
		VALUES ($1, $2, $3)
		RETURNING id`

	if err := tx.GetContext(ctx, &order.ID, query, order.CustomerID, order.Timestamp, order.Notes); err != nil {
		return fmt.Errorf("failed to insert order: %w", err)
	}

	if err := insertOrderItems(ctx, tx, order.ID, order.Items); err != nil {
		return err
	}

	return tx.Commit()
}

// GetOrderByID retrieves the order row and its item ids in insertion order
func (s *Store) GetOrderByID(ctx context.Context, id int64) (*models.Order, error) {
	var order models.Order
	err := s.db.GetContext(ctx, &order,
		`SELECT id, customer_id, "timestamp", notes FROM orders WHERE id = $1`, id)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, fmt.Errorf("order %d: %w", id, ErrNotFound)
	}
	if err != nil {
		return nil, err
	}

	var rows []models.OrderItemRow
	err = s.db.SelectContext(ctx, &rows,
		"SELECT order_id, item_id, position FROM order_items WHERE order_id = $1 ORDER BY position", id)
	if err != nil {
		return nil, err
	}

	order.Items = make([]int64, 0, len(rows))
	for _, row := range rows {
		order.Items = append(order.Items, row.ItemID)
	}

	return &order, nil
}

// UpdateOrder overwrites the order's scalar fields and replaces its item
// list wholesale (delete-all-then-insert, not a merge). The existence check
// runs before any join rows are touched, so a missing order fails with
// ErrNotFound and no side effects.
func (s *Store) UpdateOrder(ctx context.Context, order *models.Order) error {
	tx, err := s.db.BeginTxx(ctx, nil)
	if err != nil {
		return err
	}
	defer tx.Rollback()

	res, err := tx.ExecContext(ctx,
		`UPDATE orders SET customer_id = $1, "timestamp" = $2, notes = $3 WHERE id = $4`,
		order.CustomerID, order.Timestamp, order.Notes, order.ID)
	if err != nil {
		return err
	}

	affected, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if affected == 0 {
		return fmt.Errorf("order %d: %w", order.ID, ErrNotFound)
	}

	if _, err := tx.ExecContext(ctx, "DELETE FROM order_items WHERE order_id = $1", order.ID); err != nil {
		return fmt.Errorf("failed to clear order items: %w", err)
	}

	if err := insertOrderItems(ctx, tx, order.ID, order.Items); err != nil {
		return err
	}

	return tx.Commit()
}

// DeleteOrder removes the order row only. Join rows stay behind as orphans;
// they are unreachable once the order is gone.
func (s *Store) DeleteOrder(ctx context.Context, id int64) error {
	res, err := s.db.ExecContext(ctx, "DELETE FROM orders WHERE id = $1", id)
	if err != nil {
		return err
	}

	affected, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if affected == 0 {
		return fmt.Errorf("order %d: %w", id, ErrNotFound)
	}
	return nil
}

func insertOrderItems(ctx context.Context, tx *sqlx.Tx, orderID int64, itemIDs []int64) error {
	for pos, itemID := range itemIDs {
		_, err := tx.ExecContext(ctx,
			"INSERT INTO order_items (order_id, item_id, position) VALUES ($1, $2, $3)",
			orderID, itemID, pos)
		if err != nil {
			return fmt.Errorf("failed to insert order item %d: %w", itemID, err)
		}
	}
	return nil
}
