package postgres

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"bookkeeper/internal/domain/category"
)

// CategoryRepository implements the category.Repository interface for PostgreSQL
type CategoryRepository struct {
	db queryer
}

func NewCategoryRepository(db queryer) *CategoryRepository {
	return &CategoryRepository{db: db}
}

const categoryColumns = `id, business_id, parent_category_id, name, description, kind, active, created_at, updated_at`

func scanCategory(row interface{ Scan(...any) error }) (*category.Category, error) {
	var c category.Category
	var parentID sql.NullInt64
	var description, kind sql.NullString
	err := row.Scan(
		&c.ID, &c.BusinessID, &parentID, &c.Name,
		&description, &kind, &c.Active,
		&c.CreatedAt, &c.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	c.ParentCategoryID = int64Ptr(parentID)
	c.Description = stringPtr(description)
	c.Kind = category.Kind(kind.String)
	return &c, nil
}

// Create inserts c and fills in its ID and timestamps.
func (r *CategoryRepository) Create(ctx context.Context, c *category.Category) error {
	query := `
		INSERT INTO categories (business_id, parent_category_id, name, description, kind, active)
		VALUES ($1, $2, $3, $4, $5, $6)
		RETURNING id, created_at, updated_at
	`

	err := r.db.QueryRowContext(
		ctx, query,
		c.BusinessID, c.ParentCategoryID, c.Name, c.Description, string(c.Kind), c.Active,
	).Scan(&c.ID, &c.CreatedAt, &c.UpdatedAt)
	if isUniqueViolation(err) {
		return category.ErrDuplicateName
	}
	if err != nil {
		return fmt.Errorf("failed to create category: %w", err)
	}
	return nil
}

func (r *CategoryRepository) GetForBusiness(ctx context.Context, id, businessID int64) (*category.Category, error) {
	query := `SELECT ` + categoryColumns + ` FROM categories WHERE id = $1 AND business_id = $2`

	c, err := scanCategory(r.db.QueryRowContext(ctx, query, id, businessID))
	if errors.Is(err, sql.ErrNoRows) {
		return nil, category.ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get category: %w", err)
	}
	return c, nil
}

func (r *CategoryRepository) ExistsByName(ctx context.Context, businessID int64, name string) (bool, error) {
	query := `SELECT EXISTS(SELECT 1 FROM categories WHERE business_id = $1 AND lower(name) = lower($2))`

	var exists bool
	if err := r.db.QueryRowContext(ctx, query, businessID, name).Scan(&exists); err != nil {
		return false, fmt.Errorf("failed to check category name: %w", err)
	}
	return exists, nil
}

func (r *CategoryRepository) ListByBusiness(ctx context.Context, businessID int64) ([]*category.Category, error) {
	query := `
		SELECT ` + categoryColumns + `
		FROM categories
		WHERE business_id = $1
		ORDER BY lower(name), id
	`

	rows, err := r.db.QueryContext(ctx, query, businessID)
	if err != nil {
		return nil, fmt.Errorf("failed to list categories: %w", err)
	}
	defer rows.Close()

	categories := []*category.Category{}
	for rows.Next() {
		c, err := scanCategory(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan category: %w", err)
		}
		categories = append(categories, c)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating categories: %w", err)
	}
	return categories, nil
}

// DeleteByBusiness removes parents and children in one statement; the
// self-reference is checked at statement end.
func (r *CategoryRepository) DeleteByBusiness(ctx context.Context, businessID int64) error {
	if _, err := r.db.ExecContext(ctx, `DELETE FROM categories WHERE business_id = $1`, businessID); err != nil {
		return fmt.Errorf("failed to delete categories: %w", err)
	}
	return nil
}

var _ category.Repository = (*CategoryRepository)(nil)
