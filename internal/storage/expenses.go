package storage

import (
	"context"
	"database/sql"
	"fmt"
	"log/slog"
	"time"

	"outgo/internal/common"
	"outgo/internal/model"
)

// endOfDay extends a range end to the last instant of its calendar day, so
// an inclusive range ending 2024-01-05 covers everything dated within the 5th.
func endOfDay(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 23, 59, 59, int(time.Second-time.Nanosecond), t.Location())
}

// InsertExpense persists a new expense, assigning its id and creation time.
// The assigned id is returned and also written back to the expense.
func (s *SQLiteStore) InsertExpense(ctx context.Context, expense *model.Expense) (int64, error) {
	if err := validateContext(ctx); err != nil {
		return 0, err
	}
	if err := validateExpense(expense); err != nil {
		return 0, err
	}

	ctx, cancel := s.opContext(ctx)
	defer cancel()

	expense.CreatedAt = time.Now().UTC()

	result, err := s.db.ExecContext(ctx, `
		INSERT INTO expenses (name, amount_cents, category, date, notes, created_at)
		VALUES (?, ?, ?, ?, ?, ?)
	`,
		expense.Name,
		expense.AmountCents,
		string(expense.Category),
		expense.Date.UTC(),
		expense.Notes,
		expense.CreatedAt,
	)
	if err != nil {
		return 0, faultErr("insert expense", err)
	}

	id, err := result.LastInsertId()
	if err != nil {
		return 0, faultErr("read inserted id", err)
	}
	expense.ID = id

	return id, nil
}

// GetAllExpenses retrieves every stored expense, ordered by id.
func (s *SQLiteStore) GetAllExpenses(ctx context.Context) ([]model.Expense, error) {
	if err := validateContext(ctx); err != nil {
		return nil, err
	}

	ctx, cancel := s.opContext(ctx)
	defer cancel()

	rows, err := s.db.QueryContext(ctx, `
		SELECT id, name, amount_cents, category, date, notes, created_at
		FROM expenses
		ORDER BY id ASC
	`)
	if err != nil {
		return nil, faultErr("query expenses", err)
	}
	defer func() { _ = rows.Close() }()

	return scanExpenses(rows)
}

// GetExpensesByDateRange retrieves expenses dated within [start, end], with
// end extended to the last instant of its calendar day. A range with no
// matches yields an empty slice, not an error.
func (s *SQLiteStore) GetExpensesByDateRange(ctx context.Context, start, end time.Time) ([]model.Expense, error) {
	if err := validateContext(ctx); err != nil {
		return nil, err
	}
	if start.After(endOfDay(end)) {
		return nil, fmt.Errorf("%w: start %v is after end %v", ErrInvalidDateRange, start, end)
	}

	ctx, cancel := s.opContext(ctx)
	defer cancel()

	rows, err := s.db.QueryContext(ctx, `
		SELECT id, name, amount_cents, category, date, notes, created_at
		FROM expenses
		WHERE date >= ? AND date <= ?
		ORDER BY date ASC, id ASC
	`, start.UTC(), endOfDay(end).UTC())
	if err != nil {
		return nil, faultErr("query expenses by date range", err)
	}
	defer func() { _ = rows.Close() }()

	return scanExpenses(rows)
}

// GetExpensesByCategory retrieves all expenses with an exact category match.
func (s *SQLiteStore) GetExpensesByCategory(ctx context.Context, category model.Category) ([]model.Expense, error) {
	if err := validateContext(ctx); err != nil {
		return nil, err
	}
	if err := validateString(string(category), "category"); err != nil {
		return nil, err
	}

	ctx, cancel := s.opContext(ctx)
	defer cancel()

	rows, err := s.db.QueryContext(ctx, `
		SELECT id, name, amount_cents, category, date, notes, created_at
		FROM expenses
		WHERE category = ?
		ORDER BY date DESC, id ASC
	`, string(category))
	if err != nil {
		return nil, faultErr("query expenses by category", err)
	}
	defer func() { _ = rows.Close() }()

	return scanExpenses(rows)
}

// GetExpenseByID retrieves a single expense. Absence is reported as
// common.ErrNotFound, a normal outcome for point lookups.
func (s *SQLiteStore) GetExpenseByID(ctx context.Context, id int64) (*model.Expense, error) {
	if err := validateContext(ctx); err != nil {
		return nil, err
	}

	ctx, cancel := s.opContext(ctx)
	defer cancel()

	var expense model.Expense
	var category string
	err := s.db.QueryRowContext(ctx, `
		SELECT id, name, amount_cents, category, date, notes, created_at
		FROM expenses
		WHERE id = ?
	`, id).Scan(
		&expense.ID,
		&expense.Name,
		&expense.AmountCents,
		&category,
		&expense.Date,
		&expense.Notes,
		&expense.CreatedAt,
	)

	if err == sql.ErrNoRows {
		return nil, common.ErrNotFound
	}
	if err != nil {
		return nil, faultErr("get expense", err)
	}

	expense.Category = model.Category(category)
	return &expense, nil
}

// UpdateExpense overwrites the stored expense matching the given id. If no
// such row exists one is created with that id; a put against the native
// store has always had upsert semantics and callers rely on it.
func (s *SQLiteStore) UpdateExpense(ctx context.Context, expense *model.Expense) error {
	if err := validateContext(ctx); err != nil {
		return err
	}
	if expense == nil {
		return fmt.Errorf("%w: expense", ErrNilParameter)
	}
	if expense.ID <= 0 {
		return fmt.Errorf("%w: missing id", ErrInvalidExpense)
	}
	if err := validateExpense(expense); err != nil {
		return err
	}

	ctx, cancel := s.opContext(ctx)
	defer cancel()

	// created_at only applies on the insert path; an existing row keeps its
	// original creation time.
	_, err := s.db.ExecContext(ctx, `
		INSERT INTO expenses (id, name, amount_cents, category, date, notes, created_at)
		VALUES (?, ?, ?, ?, ?, ?, ?)
		ON CONFLICT(id) DO UPDATE SET
			name = excluded.name,
			amount_cents = excluded.amount_cents,
			category = excluded.category,
			date = excluded.date,
			notes = excluded.notes
	`,
		expense.ID,
		expense.Name,
		expense.AmountCents,
		string(expense.Category),
		expense.Date.UTC(),
		expense.Notes,
		time.Now().UTC(),
	)
	if err != nil {
		return faultErr("update expense", err)
	}

	return nil
}

// DeleteExpense removes the expense with the given id. Deleting an absent
// id succeeds; deletion is idempotent.
func (s *SQLiteStore) DeleteExpense(ctx context.Context, id int64) error {
	if err := validateContext(ctx); err != nil {
		return err
	}

	ctx, cancel := s.opContext(ctx)
	defer cancel()

	if _, err := s.db.ExecContext(ctx, `DELETE FROM expenses WHERE id = ?`, id); err != nil {
		return faultErr("delete expense", err)
	}

	return nil
}

// GetSummary computes aggregate statistics over a date range: overall total,
// per-category totals, per-day totals, and the matching record count. The
// aggregation is a single pass over the range query result; amounts stay in
// integer cents so totals never drift.
func (s *SQLiteStore) GetSummary(ctx context.Context, start, end time.Time) (*model.Summary, error) {
	expenses, err := s.GetExpensesByDateRange(ctx, start, end)
	if err != nil {
		return nil, err
	}

	summary := &model.Summary{
		Categories: make(map[model.Category]int64),
		Daily:      make(map[string]int64),
		Count:      len(expenses),
	}

	for _, e := range expenses {
		summary.TotalCents += e.AmountCents
		summary.Categories[e.Category] += e.AmountCents
		summary.Daily[model.DateKey(e.Date)] += e.AmountCents
	}

	return summary, nil
}

// Clear removes every expense. The id sequence is not reset, so ids from
// cleared records are never handed out again.
func (s *SQLiteStore) Clear(ctx context.Context) error {
	if err := validateContext(ctx); err != nil {
		return err
	}

	ctx, cancel := s.opContext(ctx)
	defer cancel()

	result, err := s.db.ExecContext(ctx, `DELETE FROM expenses`)
	if err != nil {
		return faultErr("clear expenses", err)
	}

	if removed, raErr := result.RowsAffected(); raErr == nil {
		slog.Info("Cleared all expenses", "removed", removed)
	}

	return nil
}

// CountExpenses reports the total number of stored expenses.
func (s *SQLiteStore) CountExpenses(ctx context.Context) (int, error) {
	if err := validateContext(ctx); err != nil {
		return 0, err
	}

	ctx, cancel := s.opContext(ctx)
	defer cancel()

	var count int
	if err := s.db.QueryRowContext(ctx, `SELECT COUNT(*) FROM expenses`).Scan(&count); err != nil {
		return 0, faultErr("count expenses", err)
	}
	return count, nil
}

// scanExpenses reads expense rows into models.
func scanExpenses(rows *sql.Rows) ([]model.Expense, error) {
	expenses := []model.Expense{}
	for rows.Next() {
		var expense model.Expense
		var category string

		if err := rows.Scan(
			&expense.ID,
			&expense.Name,
			&expense.AmountCents,
			&category,
			&expense.Date,
			&expense.Notes,
			&expense.CreatedAt,
		); err != nil {
			return nil, fmt.Errorf("failed to scan expense: %w", err)
		}

		expense.Category = model.Category(category)
		expenses = append(expenses, expense)
	}

	return expenses, rows.Err()
}
