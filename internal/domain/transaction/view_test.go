package transaction

import (
	"encoding/json"
	"strings"
	"testing"

	"cloud.google.com/go/civil"
	"github.com/shopspring/decimal"
)

func TestNewView_SplitOrder(t *testing.T) {
	tx := &Transaction{
		ID: 1,
		Splits: []Split{
			{ID: 0, CategoryID: 10},
			{ID: 7, CategoryID: 20},
			{ID: 3, CategoryID: 30},
			{ID: 0, CategoryID: 40},
		},
	}

	v := NewView(tx)

	want := []int64{30, 20, 10, 40}
	if len(v.Splits) != len(want) {
		t.Fatalf("len(Splits) = %d, want %d", len(v.Splits), len(want))
	}
	for i, cat := range want {
		if v.Splits[i].CategoryID != cat {
			t.Errorf("Splits[%d].CategoryID = %d, want %d", i, v.Splits[i].CategoryID, cat)
		}
	}
}

func TestNewView_Repeatable(t *testing.T) {
	tx := &Transaction{Splits: []Split{{ID: 2}, {ID: 1}, {ID: 0}}}

	first := NewView(tx)
	second := NewView(tx)
	for i := range first.Splits {
		if first.Splits[i].ID != second.Splits[i].ID {
			t.Fatalf("split order differs between projections at %d", i)
		}
	}
	if tx.Splits[0].ID != 2 {
		t.Error("NewView should not reorder the transaction's own splits")
	}
}

func TestNewView_JSON(t *testing.T) {
	vendorName := "Staples"
	tx := &Transaction{
		ID:          9,
		BusinessID:  1,
		AccountID:   2,
		AccountName: "Checking",
		Payee:       "Client X",
		PostedAt:    civil.Date{Year: 2024, Month: 1, Day: 15},
		Amount:      decimal.RequireFromString("100.00"),
		VendorID:    int64Ptr(4),
		VendorName:  &vendorName,
		Splits:      []Split{{ID: 1, CategoryID: 3, CategoryName: "Sales", Amount: decimal.RequireFromString("100.00")}},
	}

	data, err := json.Marshal(NewView(tx))
	if err != nil {
		t.Fatalf("Marshal() failed: %v", err)
	}
	body := string(data)

	for _, want := range []string{
		`"accountName":"Checking"`,
		`"postedAt":"2024-01-15"`,
		`"vendorName":"Staples"`,
		`"categoryName":"Sales"`,
		`"memo":null`,
	} {
		if !strings.Contains(body, want) {
			t.Errorf("JSON missing %s: %s", want, body)
		}
	}
}

func TestNewViews(t *testing.T) {
	views := NewViews([]*Transaction{{ID: 1}, {ID: 2}})
	if len(views) != 2 || views[0].ID != 1 || views[1].ID != 2 {
		t.Errorf("NewViews() = %+v", views)
	}
	if NewViews(nil) == nil {
		t.Error("NewViews(nil) should return an empty slice, not nil")
	}
}
