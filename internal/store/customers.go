package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"order-store/internal/models"
)

// CreateCustomer inserts a new customer and fills in the assigned id.
// Returns ErrConflict if the phone number is already registered.
func (s *Store) CreateCustomer(ctx context.Context, customer *models.Customer) error {
	query := `
		INSERT INTO customers (name, phone)
		VALUES ($1, $2)
		RETURNING id`

	err := s.db.GetContext(ctx, &customer.ID, query, customer.Name, customer.Phone)
	if isUniqueViolation(err) {
		return fmt.Errorf("phone %q already registered: %w", customer.Phone, ErrConflict)
	}
	return err
}

// GetCustomerByID retrieves a customer by ID
func (s *Store) GetCustomerByID(ctx context.Context, id int64) (*models.Customer, error) {
	var customer models.Customer
	err := s.db.GetContext(ctx, &customer, "SELECT * FROM customers WHERE id = $1", id)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, fmt.Errorf("customer %d: %w", id, ErrNotFound)
	}
	if err != nil {
		return nil, err
	}
	return &customer, nil
}

// UpdateCustomer overwrites both fields of an existing customer.
// Returns ErrNotFound if the id is absent, ErrConflict if the new phone
// collides with another customer's.
func (s *Store) UpdateCustomer(ctx context.Context, customer *models.Customer) error {
	res, err := s.db.ExecContext(ctx,
		"UPDATE customers SET name = $1, phone = $2 WHERE id = $3",
		customer.Name, customer.Phone, customer.ID)
	if isUniqueViolation(err) {
		return fmt.Errorf("phone %q already registered: %w", customer.Phone, ErrConflict)
	}
	if err != nil {
		return err
	}

	affected, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if affected == 0 {
		return fmt.Errorf("customer %d: %w", customer.ID, ErrNotFound)
	}
	return nil
}

// DeleteCustomer removes the customer row. Orders referencing the customer
// are left untouched; the dangling reference is tolerated.
func (s *Store) DeleteCustomer(ctx context.Context, id int64) error {
	res, err := s.db.ExecContext(ctx, "DELETE FROM customers WHERE id = $1", id)
	if err != nil {
		return err
	}

	affected, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if affected == 0 {
		return fmt.Errorf("customer %d: %w", id, ErrNotFound)
	}
	return nil
}
