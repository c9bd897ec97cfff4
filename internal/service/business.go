package service

import (
	"context"
	"fmt"

	"bookkeeper/internal/domain/business"
	"bookkeeper/internal/domain/category"
	"bookkeeper/internal/domain/uow"
	"bookkeeper/internal/shared/logger"
)

// BusinessService manages businesses and their lifecycle.
type BusinessService struct {
	uow uow.UnitOfWork
}

func NewBusinessService(u uow.UnitOfWork) *BusinessService {
	return &BusinessService{uow: u}
}

// List returns all businesses ordered by name.
func (s *BusinessService) List(ctx context.Context) ([]*business.Business, error) {
	businesses, err := s.uow.Reader().Businesses.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list businesses: %w", err)
	}
	return businesses, nil
}

// Create adds a business and then seeds its default categories. Seeding runs
// in its own unit and a failure there is logged, not returned.
func (s *BusinessService) Create(ctx context.Context, params business.CreateParams) (*business.Business, error) {
	params.Normalize()
	if err := params.Validate(); err != nil {
		return nil, err
	}

	var created *business.Business
	err := s.uow.Do(ctx, func(ctx context.Context, repos uow.Repositories) error {
		exists, err := repos.Businesses.ExistsByName(ctx, params.Name)
		if err != nil {
			return fmt.Errorf("failed to check business name: %w", err)
		}
		if exists {
			return ErrDuplicateBusiness
		}

		created, err = repos.Businesses.Create(ctx, params)
		if err != nil {
			return translate(err, "failed to create business", business.ErrDuplicateName, ErrDuplicateBusiness)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	log := logger.FromContext(ctx)
	if n, err := s.SeedDefaultCategories(ctx, created.ID); err != nil {
		log.Error().Err(err).Int64("business_id", created.ID).Msg("Failed to seed default categories")
	} else {
		log.Debug().Int64("business_id", created.ID).Int("created", n).Msg("Seeded default categories")
	}

	return created, nil
}

// Delete removes a business with its transactions, accounts, vendors and
// categories, in that order, as one unit.
func (s *BusinessService) Delete(ctx context.Context, businessID int64) error {
	return s.uow.Do(ctx, func(ctx context.Context, repos uow.Repositories) error {
		if _, err := repos.Businesses.GetByID(ctx, businessID); err != nil {
			return translate(err, "failed to get business", business.ErrNotFound, ErrBusinessNotFound)
		}

		if err := repos.Transactions.DeleteByBusiness(ctx, businessID); err != nil {
			return fmt.Errorf("failed to delete transactions: %w", err)
		}
		if err := repos.Accounts.DeleteByBusiness(ctx, businessID); err != nil {
			return fmt.Errorf("failed to delete accounts: %w", err)
		}
		if err := repos.Vendors.DeleteByBusiness(ctx, businessID); err != nil {
			return fmt.Errorf("failed to delete vendors: %w", err)
		}
		if err := repos.Categories.DeleteByBusiness(ctx, businessID); err != nil {
			return fmt.Errorf("failed to delete categories: %w", err)
		}
		if err := repos.Businesses.Delete(ctx, businessID); err != nil {
			return fmt.Errorf("failed to delete business: %w", err)
		}
		return nil
	})
}

// SeedDefaultCategories adds every default category the business does not
// already have (by case-insensitive name) and returns how many were created.
func (s *BusinessService) SeedDefaultCategories(ctx context.Context, businessID int64) (int, error) {
	defaults, err := category.Defaults()
	if err != nil {
		return 0, err
	}

	created := 0
	err = s.uow.Do(ctx, func(ctx context.Context, repos uow.Repositories) error {
		created = 0
		if err := ensureBusiness(ctx, repos, businessID); err != nil {
			return err
		}

		for _, d := range defaults {
			exists, err := repos.Categories.ExistsByName(ctx, businessID, d.Name)
			if err != nil {
				return fmt.Errorf("failed to check category %q: %w", d.Name, err)
			}
			if exists {
				continue
			}

			c := &category.Category{
				BusinessID: businessID,
				Name:       d.Name,
				Kind:       d.Kind,
				Active:     true,
			}
			if err := repos.Categories.Create(ctx, c); err != nil {
				return fmt.Errorf("failed to create default category %q: %w", d.Name, err)
			}
			created++
		}
		return nil
	})
	if err != nil {
		return 0, err
	}
	return created, nil
}
