package business

import "context"

// Repository defines the interface for business data access
// This interface is defined in the domain layer, but implemented in the infrastructure layer
type Repository interface {
	// Create inserts a business. Returns ErrDuplicateName when the name is taken.
	Create(ctx context.Context, params CreateParams) (*Business, error)

	// GetByID returns ErrNotFound when no business has the id
	GetByID(ctx context.Context, id int64) (*Business, error)

	Exists(ctx context.Context, id int64) (bool, error)

	// ExistsByName compares names case-insensitively
	ExistsByName(ctx context.Context, name string) (bool, error)

	// List returns all businesses ordered by name
	List(ctx context.Context) ([]*Business, error)

	Delete(ctx context.Context, id int64) error
}
