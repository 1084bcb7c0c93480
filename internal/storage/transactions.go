package storage

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"log/slog"

	"dairyledger/internal/core"
)

const transactionColumns = "id, customer_id, date, milk_kg, milk_mound, rate, time_of_day"

// CreateTransaction validates and inserts a delivery, returning the assigned
// id. The kg/mound pair is stored as given; the store trusts the caller to
// keep the two consistent.
func (s *SQLiteStore) CreateTransaction(ctx context.Context, t core.Transaction) (int64, error) {
	if err := t.Validate(); err != nil {
		return 0, err
	}

	res, err := s.db.ExecContext(ctx,
		`INSERT INTO transactions (customer_id, date, milk_kg, milk_mound, rate, time_of_day)
		 VALUES (?, ?, ?, ?, ?, ?)`,
		t.CustomerID, t.Date.String(), t.MilkKg, t.MilkMound, t.Rate, string(t.TimeOfDay))
	if err != nil {
		return 0, fmt.Errorf("insert transaction: %w", err)
	}

	id, err := res.LastInsertId()
	if err != nil {
		return 0, fmt.Errorf("transaction id: %w", err)
	}

	slog.InfoContext(ctx, "Transaction created",
		"id", id,
		"customer_id", t.CustomerID,
		"date", t.Date.String(),
		"milk_kg", t.MilkKg,
		"time_of_day", t.TimeOfDay)
	return id, nil
}

func (s *SQLiteStore) GetTransaction(ctx context.Context, id int64) (core.Transaction, error) {
	row := s.db.QueryRowContext(ctx,
		"SELECT "+transactionColumns+" FROM transactions WHERE id = ?", id)
	t, err := scanTransaction(row)
	if errors.Is(err, sql.ErrNoRows) {
		return core.Transaction{}, core.ErrNotFound
	}
	if err != nil {
		return core.Transaction{}, fmt.Errorf("select transaction: %w", err)
	}
	return t, nil
}

// ListTransactions returns a customer's deliveries with both bounds
// inclusive when set. Order is date ascending, Morning before Evening, then
// insertion order. 'Evening' sorts before 'Morning' lexicographically, so
// the slot order is spelled out.
func (s *SQLiteStore) ListTransactions(ctx context.Context, customerID int64, from, to core.Date) ([]core.Transaction, error) {
	query := "SELECT " + transactionColumns + " FROM transactions WHERE customer_id = ?"
	args := []any{customerID}
	query, args = rangeClause(query, args, from, to)
	query += " ORDER BY date, CASE time_of_day WHEN 'Morning' THEN 0 ELSE 1 END, id"

	rows, err := s.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("select transactions: %w", err)
	}
	defer rows.Close()

	var out []core.Transaction
	for rows.Next() {
		t, err := scanTransaction(rows)
		if err != nil {
			return nil, fmt.Errorf("scan transaction: %w", err)
		}
		out = append(out, t)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate transactions: %w", err)
	}
	return out, nil
}

// UpdateTransaction replaces all mutable fields of the row with t.ID.
func (s *SQLiteStore) UpdateTransaction(ctx context.Context, t core.Transaction) error {
	if err := t.Validate(); err != nil {
		return err
	}

	res, err := s.db.ExecContext(ctx,
		`UPDATE transactions
		 SET customer_id = ?, date = ?, milk_kg = ?, milk_mound = ?, rate = ?, time_of_day = ?
		 WHERE id = ?`,
		t.CustomerID, t.Date.String(), t.MilkKg, t.MilkMound, t.Rate, string(t.TimeOfDay), t.ID)
	if err != nil {
		return fmt.Errorf("update transaction: %w", err)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("update transaction rows: %w", err)
	}
	if n == 0 {
		return core.ErrNotFound
	}
	return nil
}

// DeleteTransaction deletes by id with no cascading effects.
func (s *SQLiteStore) DeleteTransaction(ctx context.Context, id int64) error {
	res, err := s.db.ExecContext(ctx, "DELETE FROM transactions WHERE id = ?", id)
	if err != nil {
		return fmt.Errorf("delete transaction: %w", err)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("delete transaction rows: %w", err)
	}
	if n == 0 {
		return core.ErrNotFound
	}
	slog.InfoContext(ctx, "Transaction deleted", "id", id)
	return nil
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanTransaction(r rowScanner) (core.Transaction, error) {
	var (
		t         core.Transaction
		date      string
		timeOfDay string
	)
	if err := r.Scan(&t.ID, &t.CustomerID, &date, &t.MilkKg, &t.MilkMound, &t.Rate, &timeOfDay); err != nil {
		return core.Transaction{}, err
	}
	d, err := scanDate(date)
	if err != nil {
		return core.Transaction{}, err
	}
	t.Date = d
	t.TimeOfDay = core.TimeOfDay(timeOfDay)
	return t, nil
}
