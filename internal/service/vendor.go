package service

import (
	"context"
	"fmt"

	"bookkeeper/internal/domain/uow"
	"bookkeeper/internal/domain/vendor"
)

type VendorService struct {
	uow uow.UnitOfWork
}

func NewVendorService(u uow.UnitOfWork) *VendorService {
	return &VendorService{uow: u}
}

func (s *VendorService) List(ctx context.Context, businessID int64) ([]*vendor.Vendor, error) {
	repos := s.uow.Reader()
	if err := ensureBusiness(ctx, repos, businessID); err != nil {
		return nil, err
	}

	vendors, err := repos.Vendors.ListByBusiness(ctx, businessID)
	if err != nil {
		return nil, fmt.Errorf("failed to list vendors: %w", err)
	}
	return vendors, nil
}

// Create adds a vendor. Contact fields are trimmed and blank ones dropped;
// vendors are active unless the caller says otherwise.
func (s *VendorService) Create(ctx context.Context, businessID int64, params vendor.CreateParams) (*vendor.Vendor, error) {
	params.Normalize()

	var created *vendor.Vendor
	err := s.uow.Do(ctx, func(ctx context.Context, repos uow.Repositories) error {
		if err := ensureBusiness(ctx, repos, businessID); err != nil {
			return err
		}
		if err := params.Validate(); err != nil {
			return err
		}

		exists, err := repos.Vendors.ExistsByName(ctx, businessID, params.Name)
		if err != nil {
			return fmt.Errorf("failed to check vendor name: %w", err)
		}
		if exists {
			return ErrDuplicateVendor
		}

		created, err = repos.Vendors.Create(ctx, businessID, params)
		if err != nil {
			return translate(err, "failed to create vendor", vendor.ErrDuplicateName, ErrDuplicateVendor)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return created, nil
}
