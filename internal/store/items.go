package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"order-store/internal/models"
)

// CreateItem inserts a new catalog item and fills in the assigned id.
// Item names carry no uniqueness constraint.
func (s *Store) CreateItem(ctx context.Context, item *models.Item) error {
	query := `
		INSERT INTO items (name, price)
		VALUES ($1, $2)
		RETURNING id`

	return s.db.GetContext(ctx, &item.ID, query, item.Name, item.Price)
}

// GetItemByID retrieves an item by ID
func (s *Store) GetItemByID(ctx context.Context, id int64) (*models.Item, error) {
	var item models.Item
	err := s.db.GetContext(ctx, &item, "SELECT * FROM items WHERE id = $1", id)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, fmt.Errorf("item %d: %w", id, ErrNotFound)
	}
	if err != nil {
		return nil, err
	}
	return &item, nil
}

// UpdateItem overwrites both fields of an existing item
func (s *Store) UpdateItem(ctx context.Context, item *models.Item) error {
	res, err := s.db.ExecContext(ctx,
		"UPDATE items SET name = $1, price = $2 WHERE id = $3",
		item.Name, item.Price, item.ID)
	if err != nil {
		return err
	}

	affected, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if affected == 0 {
		return fmt.Errorf("item %d: %w", item.ID, ErrNotFound)
	}
	return nil
}

// DeleteItem removes the item row. Orders referencing the item keep their
// join rows; the dangling reference is tolerated.
func (s *Store) DeleteItem(ctx context.Context, id int64) error {
	res, err := s.db.ExecContext(ctx, "DELETE FROM items WHERE id = $1", id)
	if err != nil {
		return err
	}

	affected, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if affected == 0 {
		return fmt.Errorf("item %d: %w", id, ErrNotFound)
	}
	return nil
}
