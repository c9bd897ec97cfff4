// Package uow defines the unit of work that groups repository calls into one
// atomic change.
package uow

import (
	"context"

	"bookkeeper/internal/domain/account"
	"bookkeeper/internal/domain/business"
	"bookkeeper/internal/domain/category"
	"bookkeeper/internal/domain/transaction"
	"bookkeeper/internal/domain/vendor"
)

// Repositories is the set of repositories bound to one store or one open unit.
type Repositories struct {
	Businesses   business.Repository
	Accounts     account.Repository
	Categories   category.Repository
	Vendors      vendor.Repository
	Transactions transaction.Repository
}

type UnitOfWork interface {
	// Do runs fn with repositories bound to a single unit. The unit commits
	// when fn returns nil and rolls back otherwise; fn's error is returned as is.
	Do(ctx context.Context, fn func(ctx context.Context, repos Repositories) error) error

	// Reader returns repositories for reads outside any unit.
	Reader() Repositories
}
