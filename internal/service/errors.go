package service

import (
	"context"
	"errors"
	"fmt"

	"bookkeeper/internal/domain/uow"
	"bookkeeper/internal/shared/apperror"
)

// Errors returned to callers. Lookups of the entity named in the URL fail
// with NotFound; lookups of entities referenced from a payload fail with
// BadRequest.
var (
	ErrBusinessNotFound       = apperror.NotFound("Business not found.")
	ErrAccountNotFound        = apperror.NotFound("Account not found for this business.")
	ErrVendorNotFound         = apperror.BadRequest("Vendor not found for this business.")
	ErrCategoryNotFound       = apperror.BadRequest("Category not found for this business.")
	ErrParentCategoryNotFound = apperror.BadRequest("Parent category not found for this business.")

	ErrDuplicateBusiness = apperror.Conflict("A business with that name already exists.")
	ErrDuplicateAccount  = apperror.Conflict("An account with that name already exists for this business.")
	ErrDuplicateCategory = apperror.Conflict("A category with that name already exists for this business.")
	ErrDuplicateVendor   = apperror.Conflict("A vendor with that name already exists for this business.")
)

func ensureBusiness(ctx context.Context, repos uow.Repositories, businessID int64) error {
	exists, err := repos.Businesses.Exists(ctx, businessID)
	if err != nil {
		return fmt.Errorf("failed to check business %d: %w", businessID, err)
	}
	if !exists {
		return ErrBusinessNotFound
	}
	return nil
}

// translate maps a repository sentinel to the caller-facing error, wrapping
// anything else with op.
func translate(err error, op string, sentinel, to error) error {
	if errors.Is(err, sentinel) {
		return to
	}
	return fmt.Errorf("%s: %w", op, err)
}
