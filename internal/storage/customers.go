package storage

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"log/slog"

	"dairyledger/internal/core"
)

// CreateCustomer validates and inserts a customer, returning the assigned id.
func (s *SQLiteStore) CreateCustomer(ctx context.Context, c core.Customer) (int64, error) {
	if err := c.Validate(); err != nil {
		return 0, err
	}

	res, err := s.db.ExecContext(ctx,
		"INSERT INTO customers (name, phone, address) VALUES (?, ?, ?)",
		c.Name, c.Phone, c.Address)
	if err != nil {
		return 0, fmt.Errorf("insert customer: %w", err)
	}

	id, err := res.LastInsertId()
	if err != nil {
		return 0, fmt.Errorf("customer id: %w", err)
	}

	slog.InfoContext(ctx, "Customer created", "id", id, "name", c.Name)
	return id, nil
}

// GetCustomer returns core.ErrNotFound when no row matches; a missing
// customer is a normal outcome.
func (s *SQLiteStore) GetCustomer(ctx context.Context, id int64) (core.Customer, error) {
	var c core.Customer
	err := s.db.QueryRowContext(ctx,
		"SELECT id, name, phone, address FROM customers WHERE id = ?", id).
		Scan(&c.ID, &c.Name, &c.Phone, &c.Address)
	if errors.Is(err, sql.ErrNoRows) {
		return core.Customer{}, core.ErrNotFound
	}
	if err != nil {
		return core.Customer{}, fmt.Errorf("select customer: %w", err)
	}
	return c, nil
}

// ListCustomers returns every customer ordered by name ascending. SQLite's
// default BINARY collation gives the required case-sensitive order.
func (s *SQLiteStore) ListCustomers(ctx context.Context) ([]core.Customer, error) {
	rows, err := s.db.QueryContext(ctx,
		"SELECT id, name, phone, address FROM customers ORDER BY name")
	if err != nil {
		return nil, fmt.Errorf("select customers: %w", err)
	}
	defer rows.Close()

	var out []core.Customer
	for rows.Next() {
		var c core.Customer
		if err := rows.Scan(&c.ID, &c.Name, &c.Phone, &c.Address); err != nil {
			return nil, fmt.Errorf("scan customer: %w", err)
		}
		out = append(out, c)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate customers: %w", err)
	}
	return out, nil
}

// UpdateCustomer replaces all mutable fields of the row with c.ID.
func (s *SQLiteStore) UpdateCustomer(ctx context.Context, c core.Customer) error {
	if err := c.Validate(); err != nil {
		return err
	}

	res, err := s.db.ExecContext(ctx,
		"UPDATE customers SET name = ?, phone = ?, address = ? WHERE id = ?",
		c.Name, c.Phone, c.Address, c.ID)
	if err != nil {
		return fmt.Errorf("update customer: %w", err)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("update customer rows: %w", err)
	}
	if n == 0 {
		return core.ErrNotFound
	}
	return nil
}

// DeleteCustomer removes the customer only when no transaction or payment
// references it; otherwise it fails with core.ErrConflict and removes
// nothing. There is no cascading delete. The dependent check and the delete
// run inside one transaction.
func (s *SQLiteStore) DeleteCustomer(ctx context.Context, id int64) error {
	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("begin delete customer: %w", err)
	}
	defer tx.Rollback()

	var dependents int64
	err = tx.QueryRowContext(ctx,
		`SELECT (SELECT COUNT(*) FROM transactions WHERE customer_id = ?)
		      + (SELECT COUNT(*) FROM payments WHERE customer_id = ?)`,
		id, id).Scan(&dependents)
	if err != nil {
		return fmt.Errorf("count dependents: %w", err)
	}
	if dependents > 0 {
		slog.WarnContext(ctx, "Customer delete refused", "id", id, "dependents", dependents)
		return core.ErrConflict
	}

	res, err := tx.ExecContext(ctx, "DELETE FROM customers WHERE id = ?", id)
	if err != nil {
		return fmt.Errorf("delete customer: %w", err)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("delete customer rows: %w", err)
	}
	if n == 0 {
		return core.ErrNotFound
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("commit delete customer: %w", err)
	}
	slog.InfoContext(ctx, "Customer deleted", "id", id)
	return nil
}
