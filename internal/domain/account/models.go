package account

import (
	"errors"
	"strings"
	"time"

	"bookkeeper/internal/shared/apperror"
	"bookkeeper/internal/shared/normalize"
)

// Domain errors
var (
	ErrNotFound      = errors.New("account not found")
	ErrDuplicateName = errors.New("account name already exists")
	ErrNameRequired  = apperror.BadRequest("Account name is required.")
)

// Account is a named money-holding bucket, such as a bank account, under a business.
type Account struct {
	ID          int64
	BusinessID  int64
	Name        string
	AccountType *string // free-form label, nil when not given
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

// CreateParams contains parameters for creating a new account
type CreateParams struct {
	Name        string
	AccountType *string
}

// Normalize trims the name and drops a blank account type.
func (p *CreateParams) Normalize() {
	p.Name = strings.TrimSpace(p.Name)
	p.AccountType = normalize.Ptr(p.AccountType)
}

// Validate validates the create parameters
func (p CreateParams) Validate() error {
	if strings.TrimSpace(p.Name) == "" {
		return ErrNameRequired
	}
	return nil
}
