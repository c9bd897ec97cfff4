package transaction

import "context"

// Repository defines the interface for transaction data access
// This interface is defined in the domain layer, but implemented in the infrastructure layer
type Repository interface {
	// Create inserts the transaction row and assigns its ID and timestamps.
	// Splits are written by ReplaceSplits.
	Create(ctx context.Context, t *Transaction) error

	// ReplaceSplits deletes the stored splits of t and inserts t.Splits,
	// assigning split IDs and refreshing t.UpdatedAt.
	ReplaceSplits(ctx context.Context, t *Transaction) error

	// ListByBusiness returns transactions newest first (posted date, then
	// creation) with account, vendor and category names resolved.
	ListByBusiness(ctx context.Context, businessID int64) ([]*Transaction, error)

	// ListByAccount is ListByBusiness narrowed to one account.
	ListByAccount(ctx context.Context, businessID, accountID int64) ([]*Transaction, error)

	// DeleteByBusiness removes the business's transactions and their splits.
	DeleteByBusiness(ctx context.Context, businessID int64) error
}
