package transaction

import (
	"errors"
	"time"

	"cloud.google.com/go/civil"
	"github.com/shopspring/decimal"
)

var ErrNotFound = errors.New("transaction not found")

// Transaction is a dated monetary event on one account, decomposed into splits.
type Transaction struct {
	ID         int64
	BusinessID int64
	AccountID  int64
	VendorID   *int64
	Payee      string
	Memo       *string
	PostedAt   civil.Date
	Amount     decimal.Decimal
	Splits     []Split
	CreatedAt  time.Time
	UpdatedAt  time.Time

	// Resolved for display; not persisted on the transaction row.
	AccountName string
	VendorName  *string
}

// Split attributes part of a transaction's amount to one category.
type Split struct {
	ID            int64 // 0 until persisted
	TransactionID int64
	CategoryID    int64
	CategoryName  string
	Amount        decimal.Decimal
	Memo          *string
}

// ReplaceSplits discards the current split set and adopts splits, pointing each
// one back at t.
func (t *Transaction) ReplaceSplits(splits []Split) {
	t.Splits = make([]Split, 0, len(splits))
	for _, s := range splits {
		s.TransactionID = t.ID
		t.Splits = append(t.Splits, s)
	}
}

// AssignID sets the transaction id once storage has allocated it.
func (t *Transaction) AssignID(id int64) {
	t.ID = id
	for i := range t.Splits {
		t.Splits[i].TransactionID = id
	}
}
