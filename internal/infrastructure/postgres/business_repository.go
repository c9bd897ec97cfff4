package postgres

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"bookkeeper/internal/domain/business"
)

// BusinessRepository implements the business.Repository interface for PostgreSQL
type BusinessRepository struct {
	db queryer
}

func NewBusinessRepository(db queryer) *BusinessRepository {
	return &BusinessRepository{db: db}
}

const businessColumns = `id, name, tax_id, created_at, updated_at`

func scanBusiness(row interface{ Scan(...any) error }) (*business.Business, error) {
	var b business.Business
	var taxID sql.NullString
	if err := row.Scan(&b.ID, &b.Name, &taxID, &b.CreatedAt, &b.UpdatedAt); err != nil {
		return nil, err
	}
	b.TaxID = stringPtr(taxID)
	return &b, nil
}

func (r *BusinessRepository) Create(ctx context.Context, params business.CreateParams) (*business.Business, error) {
	query := `
		INSERT INTO businesses (name, tax_id)
		VALUES ($1, $2)
		RETURNING ` + businessColumns

	b, err := scanBusiness(r.db.QueryRowContext(ctx, query, params.Name, params.TaxID))
	if isUniqueViolation(err) {
		return nil, business.ErrDuplicateName
	}
	if err != nil {
		return nil, fmt.Errorf("failed to create business: %w", err)
	}
	return b, nil
}

func (r *BusinessRepository) GetByID(ctx context.Context, id int64) (*business.Business, error) {
	query := `SELECT ` + businessColumns + ` FROM businesses WHERE id = $1`

	b, err := scanBusiness(r.db.QueryRowContext(ctx, query, id))
	if errors.Is(err, sql.ErrNoRows) {
		return nil, business.ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get business: %w", err)
	}
	return b, nil
}

func (r *BusinessRepository) Exists(ctx context.Context, id int64) (bool, error) {
	query := `SELECT EXISTS(SELECT 1 FROM businesses WHERE id = $1)`

	var exists bool
	if err := r.db.QueryRowContext(ctx, query, id).Scan(&exists); err != nil {
		return false, fmt.Errorf("failed to check business existence: %w", err)
	}
	return exists, nil
}

func (r *BusinessRepository) ExistsByName(ctx context.Context, name string) (bool, error) {
	query := `SELECT EXISTS(SELECT 1 FROM businesses WHERE lower(name) = lower($1))`

	var exists bool
	if err := r.db.QueryRowContext(ctx, query, name).Scan(&exists); err != nil {
		return false, fmt.Errorf("failed to check business name: %w", err)
	}
	return exists, nil
}

func (r *BusinessRepository) List(ctx context.Context) ([]*business.Business, error) {
	query := `SELECT ` + businessColumns + ` FROM businesses ORDER BY lower(name), id`

	rows, err := r.db.QueryContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to list businesses: %w", err)
	}
	defer rows.Close()

	businesses := []*business.Business{}
	for rows.Next() {
		b, err := scanBusiness(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan business: %w", err)
		}
		businesses = append(businesses, b)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating businesses: %w", err)
	}
	return businesses, nil
}

func (r *BusinessRepository) Delete(ctx context.Context, id int64) error {
	result, err := r.db.ExecContext(ctx, `DELETE FROM businesses WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("failed to delete business: %w", err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to get rows affected: %w", err)
	}
	if rowsAffected == 0 {
		return business.ErrNotFound
	}
	return nil
}

// Ensure BusinessRepository implements business.Repository interface
var _ business.Repository = (*BusinessRepository)(nil)
