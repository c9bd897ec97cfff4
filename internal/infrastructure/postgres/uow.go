package postgres

import (
	"context"
	"fmt"

	"bookkeeper/internal/domain/uow"
)

// UnitOfWork runs each unit in its own database transaction.
type UnitOfWork struct {
	db *DB
}

func NewUnitOfWork(db *DB) *UnitOfWork {
	return &UnitOfWork{db: db}
}

func (u *UnitOfWork) Do(ctx context.Context, fn func(ctx context.Context, repos uow.Repositories) error) error {
	ctx, span := dbTracer.Start(ctx, "db.UnitOfWork")
	defer span.End()

	tx, err := u.db.BeginTx(ctx, nil)
	if err != nil {
		recordError(span, err)
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback()

	if err := fn(ctx, repositories(tx)); err != nil {
		return err
	}

	if err := tx.Commit(); err != nil {
		recordError(span, err)
		return fmt.Errorf("failed to commit transaction: %w", err)
	}
	return nil
}

func (u *UnitOfWork) Reader() uow.Repositories {
	return repositories(u.db)
}

func repositories(q queryer) uow.Repositories {
	return uow.Repositories{
		Businesses:   NewBusinessRepository(q),
		Accounts:     NewAccountRepository(q),
		Categories:   NewCategoryRepository(q),
		Vendors:      NewVendorRepository(q),
		Transactions: NewTransactionRepository(q),
	}
}

// Ensure UnitOfWork implements uow.UnitOfWork interface.
var _ uow.UnitOfWork = (*UnitOfWork)(nil)
