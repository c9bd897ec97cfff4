package business

import (
	"errors"
	"strings"
	"time"

	"bookkeeper/internal/shared/apperror"
	"bookkeeper/internal/shared/normalize"
)

// Domain errors
var (
	ErrNotFound      = errors.New("business not found")
	ErrDuplicateName = errors.New("business name already exists")
	ErrNameRequired  = apperror.BadRequest("Business name is required.")
)

// Business is the tenant that owns accounts, categories, vendors and transactions.
type Business struct {
	ID        int64
	Name      string
	TaxID     *string
	CreatedAt time.Time
	UpdatedAt time.Time
}

// CreateParams contains parameters for creating a new business
type CreateParams struct {
	Name  string
	TaxID *string
}

// Normalize trims the name and drops a blank tax id.
func (p *CreateParams) Normalize() {
	p.Name = strings.TrimSpace(p.Name)
	p.TaxID = normalize.Ptr(p.TaxID)
}

// Validate validates the create parameters
func (p CreateParams) Validate() error {
	if strings.TrimSpace(p.Name) == "" {
		return ErrNameRequired
	}
	return nil
}
