package service

import (
	"context"
	"fmt"

	"bookkeeper/internal/domain/account"
	"bookkeeper/internal/domain/uow"
)

type AccountService struct {
	uow uow.UnitOfWork
}

func NewAccountService(u uow.UnitOfWork) *AccountService {
	return &AccountService{uow: u}
}

// List returns the business's accounts ordered by name.
func (s *AccountService) List(ctx context.Context, businessID int64) ([]*account.Account, error) {
	repos := s.uow.Reader()
	if err := ensureBusiness(ctx, repos, businessID); err != nil {
		return nil, err
	}

	accounts, err := repos.Accounts.ListByBusiness(ctx, businessID)
	if err != nil {
		return nil, fmt.Errorf("failed to list accounts: %w", err)
	}
	return accounts, nil
}

func (s *AccountService) Create(ctx context.Context, businessID int64, params account.CreateParams) (*account.Account, error) {
	params.Normalize()

	var created *account.Account
	err := s.uow.Do(ctx, func(ctx context.Context, repos uow.Repositories) error {
		if err := ensureBusiness(ctx, repos, businessID); err != nil {
			return err
		}
		if err := params.Validate(); err != nil {
			return err
		}

		exists, err := repos.Accounts.ExistsByName(ctx, businessID, params.Name)
		if err != nil {
			return fmt.Errorf("failed to check account name: %w", err)
		}
		if exists {
			return ErrDuplicateAccount
		}

		created, err = repos.Accounts.Create(ctx, businessID, params)
		if err != nil {
			return translate(err, "failed to create account", account.ErrDuplicateName, ErrDuplicateAccount)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return created, nil
}
