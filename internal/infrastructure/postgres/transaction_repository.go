package postgres

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"cloud.google.com/go/civil"
	"github.com/lib/pq"

	"bookkeeper/internal/domain/transaction"
)

// TransactionRepository implements the transaction.Repository interface for PostgreSQL
type TransactionRepository struct {
	db queryer
}

func NewTransactionRepository(db queryer) *TransactionRepository {
	return &TransactionRepository{db: db}
}

// Create inserts the transaction row. Amounts come back at the column's scale.
func (r *TransactionRepository) Create(ctx context.Context, t *transaction.Transaction) error {
	query := `
		INSERT INTO transactions (business_id, account_id, vendor_id, payee, memo, posted_at, amount)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
		RETURNING id, amount, created_at, updated_at
	`

	var id int64
	err := r.db.QueryRowContext(
		ctx, query,
		t.BusinessID, t.AccountID, t.VendorID, t.Payee, t.Memo, t.PostedAt.String(), t.Amount,
	).Scan(&id, &t.Amount, &t.CreatedAt, &t.UpdatedAt)
	if err != nil {
		return fmt.Errorf("failed to create transaction: %w", err)
	}

	t.AssignID(id)
	return nil
}

// ReplaceSplits deletes the stored splits and writes t.Splits in their place.
func (r *TransactionRepository) ReplaceSplits(ctx context.Context, t *transaction.Transaction) error {
	if _, err := r.db.ExecContext(ctx, `DELETE FROM transaction_splits WHERE transaction_id = $1`, t.ID); err != nil {
		return fmt.Errorf("failed to delete splits: %w", err)
	}

	insert := `
		INSERT INTO transaction_splits (transaction_id, category_id, amount, memo)
		VALUES ($1, $2, $3, $4)
		RETURNING id, amount
	`
	for i := range t.Splits {
		s := &t.Splits[i]
		err := r.db.QueryRowContext(ctx, insert, t.ID, s.CategoryID, s.Amount, s.Memo).Scan(&s.ID, &s.Amount)
		if err != nil {
			return fmt.Errorf("failed to insert split: %w", err)
		}
		s.TransactionID = t.ID
	}

	// clock_timestamp, not now(): now() is fixed for the whole database transaction.
	touch := `UPDATE transactions SET updated_at = clock_timestamp() WHERE id = $1 RETURNING updated_at`
	err := r.db.QueryRowContext(ctx, touch, t.ID).Scan(&t.UpdatedAt)
	if errors.Is(err, sql.ErrNoRows) {
		return transaction.ErrNotFound
	}
	if err != nil {
		return fmt.Errorf("failed to touch transaction: %w", err)
	}
	return nil
}

const transactionSelect = `
	SELECT t.id, t.business_id, t.account_id, a.name, t.vendor_id, v.name,
	       t.payee, t.memo, t.posted_at, t.amount, t.created_at, t.updated_at
	FROM transactions t
	JOIN accounts a ON a.id = t.account_id
	LEFT JOIN vendors v ON v.id = t.vendor_id
`

const transactionOrder = `ORDER BY t.posted_at DESC, t.created_at DESC, t.id DESC`

func (r *TransactionRepository) ListByBusiness(ctx context.Context, businessID int64) ([]*transaction.Transaction, error) {
	query := transactionSelect + `WHERE t.business_id = $1 ` + transactionOrder
	return r.list(ctx, query, businessID)
}

func (r *TransactionRepository) ListByAccount(ctx context.Context, businessID, accountID int64) ([]*transaction.Transaction, error) {
	query := transactionSelect + `WHERE t.business_id = $1 AND t.account_id = $2 ` + transactionOrder
	return r.list(ctx, query, businessID, accountID)
}

func (r *TransactionRepository) list(ctx context.Context, query string, args ...any) ([]*transaction.Transaction, error) {
	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to list transactions: %w", err)
	}
	defer rows.Close()

	txs := []*transaction.Transaction{}
	byID := make(map[int64]*transaction.Transaction)
	ids := []int64{}
	for rows.Next() {
		var t transaction.Transaction
		var vendorID sql.NullInt64
		var vendorName, memo sql.NullString
		var postedAt time.Time

		err := rows.Scan(
			&t.ID, &t.BusinessID, &t.AccountID, &t.AccountName, &vendorID, &vendorName,
			&t.Payee, &memo, &postedAt, &t.Amount, &t.CreatedAt, &t.UpdatedAt,
		)
		if err != nil {
			return nil, fmt.Errorf("failed to scan transaction: %w", err)
		}
		t.VendorID = int64Ptr(vendorID)
		t.VendorName = stringPtr(vendorName)
		t.Memo = stringPtr(memo)
		t.PostedAt = civil.DateOf(postedAt)
		t.Splits = []transaction.Split{}

		txs = append(txs, &t)
		byID[t.ID] = &t
		ids = append(ids, t.ID)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating transactions: %w", err)
	}

	if len(ids) == 0 {
		return txs, nil
	}
	if err := r.loadSplits(ctx, ids, byID); err != nil {
		return nil, err
	}
	return txs, nil
}

// loadSplits fetches the splits of every listed transaction in one query.
func (r *TransactionRepository) loadSplits(ctx context.Context, ids []int64, byID map[int64]*transaction.Transaction) error {
	query := `
		SELECT s.id, s.transaction_id, s.category_id, c.name, s.amount, s.memo
		FROM transaction_splits s
		JOIN categories c ON c.id = s.category_id
		WHERE s.transaction_id = ANY($1)
		ORDER BY s.transaction_id, s.id
	`

	rows, err := r.db.QueryContext(ctx, query, pq.Array(ids))
	if err != nil {
		return fmt.Errorf("failed to load splits: %w", err)
	}
	defer rows.Close()

	for rows.Next() {
		var s transaction.Split
		var memo sql.NullString
		if err := rows.Scan(&s.ID, &s.TransactionID, &s.CategoryID, &s.CategoryName, &s.Amount, &memo); err != nil {
			return fmt.Errorf("failed to scan split: %w", err)
		}
		s.Memo = stringPtr(memo)

		if t, ok := byID[s.TransactionID]; ok {
			t.Splits = append(t.Splits, s)
		}
	}
	if err := rows.Err(); err != nil {
		return fmt.Errorf("error iterating splits: %w", err)
	}
	return nil
}

// DeleteByBusiness removes the business's transactions; splits go with them
// through ON DELETE CASCADE.
func (r *TransactionRepository) DeleteByBusiness(ctx context.Context, businessID int64) error {
	if _, err := r.db.ExecContext(ctx, `DELETE FROM transactions WHERE business_id = $1`, businessID); err != nil {
		return fmt.Errorf("failed to delete transactions: %w", err)
	}
	return nil
}

var _ transaction.Repository = (*TransactionRepository)(nil)
