package storage

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"log/slog"

	"dairyledger/internal/core"
)

// CreatePayment validates and inserts a payment, returning the assigned id.
func (s *SQLiteStore) CreatePayment(ctx context.Context, p core.Payment) (int64, error) {
	if err := p.Validate(); err != nil {
		return 0, err
	}

	res, err := s.db.ExecContext(ctx,
		"INSERT INTO payments (customer_id, date, amount) VALUES (?, ?, ?)",
		p.CustomerID, p.Date.String(), p.Amount)
	if err != nil {
		return 0, fmt.Errorf("insert payment: %w", err)
	}

	id, err := res.LastInsertId()
	if err != nil {
		return 0, fmt.Errorf("payment id: %w", err)
	}

	slog.InfoContext(ctx, "Payment created",
		"id", id,
		"customer_id", p.CustomerID,
		"date", p.Date.String(),
		"amount", p.Amount)
	return id, nil
}

func (s *SQLiteStore) GetPayment(ctx context.Context, id int64) (core.Payment, error) {
	var (
		p    core.Payment
		date string
	)
	err := s.db.QueryRowContext(ctx,
		"SELECT id, customer_id, date, amount FROM payments WHERE id = ?", id).
		Scan(&p.ID, &p.CustomerID, &date, &p.Amount)
	if errors.Is(err, sql.ErrNoRows) {
		return core.Payment{}, core.ErrNotFound
	}
	if err != nil {
		return core.Payment{}, fmt.Errorf("select payment: %w", err)
	}
	d, err := scanDate(date)
	if err != nil {
		return core.Payment{}, err
	}
	p.Date = d
	return p, nil
}

// ListPayments returns a customer's payments ordered by date ascending then
// insertion order; bounds are inclusive when set.
func (s *SQLiteStore) ListPayments(ctx context.Context, customerID int64, from, to core.Date) ([]core.Payment, error) {
	query := "SELECT id, customer_id, date, amount FROM payments WHERE customer_id = ?"
	args := []any{customerID}
	query, args = rangeClause(query, args, from, to)
	query += " ORDER BY date, id"

	rows, err := s.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("select payments: %w", err)
	}
	defer rows.Close()

	var out []core.Payment
	for rows.Next() {
		var (
			p    core.Payment
			date string
		)
		if err := rows.Scan(&p.ID, &p.CustomerID, &date, &p.Amount); err != nil {
			return nil, fmt.Errorf("scan payment: %w", err)
		}
		d, err := scanDate(date)
		if err != nil {
			return nil, err
		}
		p.Date = d
		out = append(out, p)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate payments: %w", err)
	}
	return out, nil
}

// UpdatePayment replaces all mutable fields of the row with p.ID.
func (s *SQLiteStore) UpdatePayment(ctx context.Context, p core.Payment) error {
	if err := p.Validate(); err != nil {
		return err
	}

	res, err := s.db.ExecContext(ctx,
		"UPDATE payments SET customer_id = ?, date = ?, amount = ? WHERE id = ?",
		p.CustomerID, p.Date.String(), p.Amount, p.ID)
	if err != nil {
		return fmt.Errorf("update payment: %w", err)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("update payment rows: %w", err)
	}
	if n == 0 {
		return core.ErrNotFound
	}
	return nil
}

// DeletePayment deletes by id with no cascading effects.
func (s *SQLiteStore) DeletePayment(ctx context.Context, id int64) error {
	res, err := s.db.ExecContext(ctx, "DELETE FROM payments WHERE id = ?", id)
	if err != nil {
		return fmt.Errorf("delete payment: %w", err)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("delete payment rows: %w", err)
	}
	if n == 0 {
		return core.ErrNotFound
	}
	slog.InfoContext(ctx, "Payment deleted", "id", id)
	return nil
}
