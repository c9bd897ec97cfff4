package account

import "context"

// Repository defines the interface for account data access
// This interface is defined in the domain layer, but implemented in the infrastructure layer
type Repository interface {
	// Create inserts an account for the business. Returns ErrDuplicateName when
	// the business already has an account with that name.
	Create(ctx context.Context, businessID int64, params CreateParams) (*Account, error)

	// GetForBusiness returns ErrNotFound unless the account exists and belongs to the business
	GetForBusiness(ctx context.Context, id, businessID int64) (*Account, error)

	// ExistsByName compares names case-insensitively within the business
	ExistsByName(ctx context.Context, businessID int64, name string) (bool, error)

	// ListByBusiness returns the business's accounts ordered by name
	ListByBusiness(ctx context.Context, businessID int64) ([]*Account, error)

	DeleteByBusiness(ctx context.Context, businessID int64) error
}
