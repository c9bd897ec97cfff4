package category

import "context"

// Repository defines the interface for category data access
type Repository interface {
	// Create inserts c and fills in its ID and timestamps. Returns
	// ErrDuplicateName when the business already has a category with that name.
	Create(ctx context.Context, c *Category) error

	// GetForBusiness returns ErrNotFound unless the category exists and belongs to the business
	GetForBusiness(ctx context.Context, id, businessID int64) (*Category, error)

	ExistsByName(ctx context.Context, businessID int64, name string) (bool, error)

	// ListByBusiness returns the business's categories ordered by name
	ListByBusiness(ctx context.Context, businessID int64) ([]*Category, error)

	DeleteByBusiness(ctx context.Context, businessID int64) error
}
