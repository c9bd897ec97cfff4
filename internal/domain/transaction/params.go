package transaction

import (
	"cloud.google.com/go/civil"
	"github.com/shopspring/decimal"

	"bookkeeper/internal/shared/apperror"
	"bookkeeper/internal/shared/normalize"
)

// Validation errors, in the order CreateParams checks them.
var (
	ErrBusinessMismatch = apperror.BadRequest("Business mismatch between path and payload.")
	ErrAccountMismatch  = apperror.BadRequest("Account mismatch between path and payload.")
	ErrAmountRequired   = apperror.BadRequest("Transaction amount is required.")
	ErrPostedAtRequired = apperror.BadRequest("Posted date is required.")
	ErrSplitsRequired   = apperror.BadRequest("At least one split is required.")
	ErrPayeeRequired    = apperror.BadRequest("Payee is required.")

	ErrSplitCategoryRequired = apperror.BadRequest("Split category is required.")
	ErrSplitAmountRequired   = apperror.BadRequest("Split amount is required.")
)

// CreateParams is a create-transaction request. The path ids come from the
// URL; BusinessID and AccountID come from the payload and must agree with them.
type CreateParams struct {
	PathBusinessID int64
	PathAccountID  int64

	BusinessID *int64
	AccountID  *int64
	Payee      string
	Memo       *string
	PostedAt   *civil.Date
	Amount     *decimal.Decimal
	VendorID   *int64
	Splits     []SplitParams
}

type SplitParams struct {
	CategoryID *int64
	Amount     *decimal.Decimal
	Memo       *string
}

// Normalize trims the payee and memos. A blank memo becomes nil.
func (p *CreateParams) Normalize() {
	p.Payee = normalize.Value(normalize.String(p.Payee))
	p.Memo = normalize.Ptr(p.Memo)
	for i := range p.Splits {
		p.Splits[i].Memo = normalize.Ptr(p.Splits[i].Memo)
	}
}

// Validate runs the checks that need no storage access and stops at the first
// failure. Call Normalize first.
func (p CreateParams) Validate() error {
	if p.BusinessID == nil || *p.BusinessID != p.PathBusinessID {
		return ErrBusinessMismatch
	}
	if p.AccountID == nil || *p.AccountID != p.PathAccountID {
		return ErrAccountMismatch
	}
	if p.Amount == nil {
		return ErrAmountRequired
	}
	if p.PostedAt == nil {
		return ErrPostedAtRequired
	}
	if len(p.Splits) == 0 {
		return ErrSplitsRequired
	}
	if normalize.String(p.Payee) == nil {
		return ErrPayeeRequired
	}
	return nil
}

func (s SplitParams) Validate() error {
	if s.CategoryID == nil {
		return ErrSplitCategoryRequired
	}
	if s.Amount == nil {
		return ErrSplitAmountRequired
	}
	return nil
}
