package postgres

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"bookkeeper/internal/domain/account"
)

// AccountRepository implements the account.Repository interface for PostgreSQL
type AccountRepository struct {
	db queryer
}

// NewAccountRepository creates a new PostgreSQL account repository
func NewAccountRepository(db queryer) *AccountRepository {
	return &AccountRepository{db: db}
}

const accountColumns = `id, business_id, name, account_type, created_at, updated_at`

func scanAccount(row interface{ Scan(...any) error }) (*account.Account, error) {
	var a account.Account
	var accountType sql.NullString
	if err := row.Scan(&a.ID, &a.BusinessID, &a.Name, &accountType, &a.CreatedAt, &a.UpdatedAt); err != nil {
		return nil, err
	}
	a.AccountType = stringPtr(accountType)
	return &a, nil
}

// Create creates a new account
func (r *AccountRepository) Create(ctx context.Context, businessID int64, params account.CreateParams) (*account.Account, error) {
	query := `
		INSERT INTO accounts (business_id, name, account_type)
		VALUES ($1, $2, $3)
		RETURNING ` + accountColumns

	a, err := scanAccount(r.db.QueryRowContext(ctx, query, businessID, params.Name, params.AccountType))
	if isUniqueViolation(err) {
		return nil, account.ErrDuplicateName
	}
	if err != nil {
		return nil, fmt.Errorf("failed to create account: %w", err)
	}
	return a, nil
}

// GetForBusiness retrieves an account by its ID within a business
func (r *AccountRepository) GetForBusiness(ctx context.Context, id, businessID int64) (*account.Account, error) {
	query := `SELECT ` + accountColumns + ` FROM accounts WHERE id = $1 AND business_id = $2`

	a, err := scanAccount(r.db.QueryRowContext(ctx, query, id, businessID))
	if errors.Is(err, sql.ErrNoRows) {
		return nil, account.ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get account: %w", err)
	}
	return a, nil
}

func (r *AccountRepository) ExistsByName(ctx context.Context, businessID int64, name string) (bool, error) {
	query := `SELECT EXISTS(SELECT 1 FROM accounts WHERE business_id = $1 AND lower(name) = lower($2))`

	var exists bool
	if err := r.db.QueryRowContext(ctx, query, businessID, name).Scan(&exists); err != nil {
		return false, fmt.Errorf("failed to check account name: %w", err)
	}
	return exists, nil
}

// ListByBusiness retrieves all accounts for a business ordered by name
func (r *AccountRepository) ListByBusiness(ctx context.Context, businessID int64) ([]*account.Account, error) {
	query := `
		SELECT ` + accountColumns + `
		FROM accounts
		WHERE business_id = $1
		ORDER BY lower(name), id
	`

	rows, err := r.db.QueryContext(ctx, query, businessID)
	if err != nil {
		return nil, fmt.Errorf("failed to list accounts: %w", err)
	}
	defer rows.Close()

	accounts := []*account.Account{}
	for rows.Next() {
		a, err := scanAccount(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan account: %w", err)
		}
		accounts = append(accounts, a)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating accounts: %w", err)
	}
	return accounts, nil
}

func (r *AccountRepository) DeleteByBusiness(ctx context.Context, businessID int64) error {
	if _, err := r.db.ExecContext(ctx, `DELETE FROM accounts WHERE business_id = $1`, businessID); err != nil {
		return fmt.Errorf("failed to delete accounts: %w", err)
	}
	return nil
}

// Ensure AccountRepository implements account.Repository interface
var _ account.Repository = (*AccountRepository)(nil)
