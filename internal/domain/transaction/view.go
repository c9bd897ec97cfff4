package transaction

import (
	"cmp"
	"slices"
	"time"

	"cloud.google.com/go/civil"
	"github.com/shopspring/decimal"
)

// View is the transport shape of a transaction with account, vendor and
// category names resolved.
type View struct {
	ID          int64           `json:"id"`
	BusinessID  int64           `json:"businessId"`
	AccountID   int64           `json:"accountId"`
	AccountName string          `json:"accountName"`
	Payee       string          `json:"payee"`
	Memo        *string         `json:"memo"`
	PostedAt    civil.Date      `json:"postedAt"`
	Amount      decimal.Decimal `json:"amount"`
	VendorID    *int64          `json:"vendorId"`
	VendorName  *string         `json:"vendorName"`
	Splits      []SplitView     `json:"splits"`
	CreatedAt   time.Time       `json:"createdAt"`
	UpdatedAt   time.Time       `json:"updatedAt"`
}

type SplitView struct {
	ID           int64           `json:"id"`
	CategoryID   int64           `json:"categoryId"`
	CategoryName string          `json:"categoryName"`
	Amount       decimal.Decimal `json:"amount"`
	Memo         *string         `json:"memo"`
}

// NewView projects t. Splits are ordered by id with unsaved (zero id) splits
// last; equal ids keep their relative order.
func NewView(t *Transaction) View {
	splits := make([]SplitView, 0, len(t.Splits))
	for _, s := range t.Splits {
		splits = append(splits, SplitView{
			ID:           s.ID,
			CategoryID:   s.CategoryID,
			CategoryName: s.CategoryName,
			Amount:       s.Amount,
			Memo:         s.Memo,
		})
	}
	slices.SortStableFunc(splits, compareSplitIDs)

	return View{
		ID:          t.ID,
		BusinessID:  t.BusinessID,
		AccountID:   t.AccountID,
		AccountName: t.AccountName,
		Payee:       t.Payee,
		Memo:        t.Memo,
		PostedAt:    t.PostedAt,
		Amount:      t.Amount,
		VendorID:    t.VendorID,
		VendorName:  t.VendorName,
		Splits:      splits,
		CreatedAt:   t.CreatedAt,
		UpdatedAt:   t.UpdatedAt,
	}
}

func NewViews(ts []*Transaction) []View {
	views := make([]View, 0, len(ts))
	for _, t := range ts {
		views = append(views, NewView(t))
	}
	return views
}

func compareSplitIDs(a, b SplitView) int {
	switch {
	case a.ID == b.ID:
		return 0
	case a.ID == 0:
		return 1
	case b.ID == 0:
		return -1
	}
	return cmp.Compare(a.ID, b.ID)
}
