package service

import (
	"context"
	"fmt"

	"bookkeeper/internal/domain/category"
	"bookkeeper/internal/domain/uow"
)

type CategoryService struct {
	uow uow.UnitOfWork
}

func NewCategoryService(u uow.UnitOfWork) *CategoryService {
	return &CategoryService{uow: u}
}

func (s *CategoryService) List(ctx context.Context, businessID int64) ([]*category.Category, error) {
	repos := s.uow.Reader()
	if err := ensureBusiness(ctx, repos, businessID); err != nil {
		return nil, err
	}

	categories, err := repos.Categories.ListByBusiness(ctx, businessID)
	if err != nil {
		return nil, fmt.Errorf("failed to list categories: %w", err)
	}
	return categories, nil
}

// Create adds a category. The kind is required and must be one of the known
// kinds; a parent, when given, must belong to the same business.
func (s *CategoryService) Create(ctx context.Context, businessID int64, params category.CreateParams) (*category.Category, error) {
	params.Normalize()

	var created *category.Category
	err := s.uow.Do(ctx, func(ctx context.Context, repos uow.Repositories) error {
		if err := ensureBusiness(ctx, repos, businessID); err != nil {
			return err
		}
		kind, err := params.Validate()
		if err != nil {
			return err
		}

		exists, err := repos.Categories.ExistsByName(ctx, businessID, params.Name)
		if err != nil {
			return fmt.Errorf("failed to check category name: %w", err)
		}
		if exists {
			return ErrDuplicateCategory
		}

		if params.ParentCategoryID != nil {
			if _, err := repos.Categories.GetForBusiness(ctx, *params.ParentCategoryID, businessID); err != nil {
				return translate(err, "failed to get parent category", category.ErrNotFound, ErrParentCategoryNotFound)
			}
		}

		c := params.NewCategory(businessID, kind)
		if err := repos.Categories.Create(ctx, c); err != nil {
			return translate(err, "failed to create category", category.ErrDuplicateName, ErrDuplicateCategory)
		}
		created = c
		return nil
	})
	if err != nil {
		return nil, err
	}
	return created, nil
}
