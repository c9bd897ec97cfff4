package postgres

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"bookkeeper/internal/domain/vendor"
)

type VendorRepository struct {
	db queryer
}

func NewVendorRepository(db queryer) *VendorRepository {
	return &VendorRepository{db: db}
}

const vendorColumns = `id, business_id, name, contact_name, email, phone, active, created_at, updated_at`

func scanVendor(row interface{ Scan(...any) error }) (*vendor.Vendor, error) {
	var v vendor.Vendor
	var contactName, email, phone sql.NullString
	err := row.Scan(
		&v.ID, &v.BusinessID, &v.Name,
		&contactName, &email, &phone,
		&v.Active, &v.CreatedAt, &v.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	v.ContactName = stringPtr(contactName)
	v.Email = stringPtr(email)
	v.Phone = stringPtr(phone)
	return &v, nil
}

func (r *VendorRepository) Create(ctx context.Context, businessID int64, params vendor.CreateParams) (*vendor.Vendor, error) {
	query := `
		INSERT INTO vendors (business_id, name, contact_name, email, phone, active)
		VALUES ($1, $2, $3, $4, $5, $6)
		RETURNING ` + vendorColumns

	v, err := scanVendor(r.db.QueryRowContext(
		ctx, query,
		businessID, params.Name, params.ContactName, params.Email, params.Phone, params.IsActive(),
	))
	if isUniqueViolation(err) {
		return nil, vendor.ErrDuplicateName
	}
	if err != nil {
		return nil, fmt.Errorf("failed to create vendor: %w", err)
	}
	return v, nil
}

func (r *VendorRepository) GetForBusiness(ctx context.Context, id, businessID int64) (*vendor.Vendor, error) {
	query := `SELECT ` + vendorColumns + ` FROM vendors WHERE id = $1 AND business_id = $2`

	v, err := scanVendor(r.db.QueryRowContext(ctx, query, id, businessID))
	if errors.Is(err, sql.ErrNoRows) {
		return nil, vendor.ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get vendor: %w", err)
	}
	return v, nil
}

func (r *VendorRepository) ExistsByName(ctx context.Context, businessID int64, name string) (bool, error) {
	query := `SELECT EXISTS(SELECT 1 FROM vendors WHERE business_id = $1 AND lower(name) = lower($2))`

	var exists bool
	if err := r.db.QueryRowContext(ctx, query, businessID, name).Scan(&exists); err != nil {
		return false, fmt.Errorf("failed to check vendor name: %w", err)
	}
	return exists, nil
}

func (r *VendorRepository) ListByBusiness(ctx context.Context, businessID int64) ([]*vendor.Vendor, error) {
	query := `
		SELECT ` + vendorColumns + `
		FROM vendors
		WHERE business_id = $1
		ORDER BY lower(name), id
	`

	rows, err := r.db.QueryContext(ctx, query, businessID)
	if err != nil {
		return nil, fmt.Errorf("failed to list vendors: %w", err)
	}
	defer rows.Close()

	vendors := []*vendor.Vendor{}
	for rows.Next() {
		v, err := scanVendor(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan vendor: %w", err)
		}
		vendors = append(vendors, v)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating vendors: %w", err)
	}
	return vendors, nil
}

func (r *VendorRepository) DeleteByBusiness(ctx context.Context, businessID int64) error {
	if _, err := r.db.ExecContext(ctx, `DELETE FROM vendors WHERE business_id = $1`, businessID); err != nil {
		return fmt.Errorf("failed to delete vendors: %w", err)
	}
	return nil
}

var _ vendor.Repository = (*VendorRepository)(nil)
