package service

import (
	"context"
	"fmt"

	"bookkeeper/internal/domain/account"
	"bookkeeper/internal/domain/category"
	"bookkeeper/internal/domain/transaction"
	"bookkeeper/internal/domain/uow"
	"bookkeeper/internal/domain/vendor"
)

// TransactionService records transactions and their splits.
type TransactionService struct {
	uow uow.UnitOfWork
}

func NewTransactionService(u uow.UnitOfWork) *TransactionService {
	return &TransactionService{uow: u}
}

// ListForBusiness returns the business's transactions, newest first.
func (s *TransactionService) ListForBusiness(ctx context.Context, businessID int64) ([]transaction.View, error) {
	repos := s.uow.Reader()
	if err := ensureBusiness(ctx, repos, businessID); err != nil {
		return nil, err
	}

	txs, err := repos.Transactions.ListByBusiness(ctx, businessID)
	if err != nil {
		return nil, fmt.Errorf("failed to list transactions: %w", err)
	}
	return transaction.NewViews(txs), nil
}

// ListForAccount returns one account's transactions, newest first. The
// account must belong to the business.
func (s *TransactionService) ListForAccount(ctx context.Context, businessID, accountID int64) ([]transaction.View, error) {
	repos := s.uow.Reader()
	if _, err := repos.Accounts.GetForBusiness(ctx, accountID, businessID); err != nil {
		return nil, translate(err, "failed to get account", account.ErrNotFound, ErrAccountNotFound)
	}

	txs, err := repos.Transactions.ListByAccount(ctx, businessID, accountID)
	if err != nil {
		return nil, fmt.Errorf("failed to list account transactions: %w", err)
	}
	return transaction.NewViews(txs), nil
}

// Create validates params and stores the transaction with its splits as one
// unit. Checks that need no storage run before the unit is opened; the
// remaining checks stop at the first failure.
func (s *TransactionService) Create(ctx context.Context, params transaction.CreateParams) (transaction.View, error) {
	params.Normalize()
	if err := params.Validate(); err != nil {
		return transaction.View{}, err
	}
	businessID := params.PathBusinessID

	var t *transaction.Transaction
	err := s.uow.Do(ctx, func(ctx context.Context, repos uow.Repositories) error {
		acct, err := repos.Accounts.GetForBusiness(ctx, params.PathAccountID, businessID)
		if err != nil {
			return translate(err, "failed to get account", account.ErrNotFound, ErrAccountNotFound)
		}

		t = &transaction.Transaction{
			BusinessID:  acct.BusinessID,
			AccountID:   acct.ID,
			AccountName: acct.Name,
			Payee:       params.Payee,
			Memo:        params.Memo,
			PostedAt:    *params.PostedAt,
			Amount:      *params.Amount,
		}

		if params.VendorID != nil {
			v, err := repos.Vendors.GetForBusiness(ctx, *params.VendorID, businessID)
			if err != nil {
				return translate(err, "failed to get vendor", vendor.ErrNotFound, ErrVendorNotFound)
			}
			t.VendorID = &v.ID
			t.VendorName = &v.Name
		}

		splits := make([]transaction.Split, 0, len(params.Splits))
		for _, sp := range params.Splits {
			if err := sp.Validate(); err != nil {
				return err
			}
			cat, err := repos.Categories.GetForBusiness(ctx, *sp.CategoryID, businessID)
			if err != nil {
				return translate(err, "failed to get category", category.ErrNotFound, ErrCategoryNotFound)
			}
			splits = append(splits, transaction.Split{
				CategoryID:   cat.ID,
				CategoryName: cat.Name,
				Amount:       *sp.Amount,
				Memo:         sp.Memo,
			})
		}
		t.ReplaceSplits(splits)

		if err := repos.Transactions.Create(ctx, t); err != nil {
			return fmt.Errorf("failed to create transaction: %w", err)
		}
		if err := repos.Transactions.ReplaceSplits(ctx, t); err != nil {
			return fmt.Errorf("failed to save splits: %w", err)
		}
		return nil
	})
	if err != nil {
		return transaction.View{}, err
	}
	return transaction.NewView(t), nil
}
