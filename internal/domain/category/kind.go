package category

import (
	"strings"

	"bookkeeper/internal/shared/apperror"
)

// Kind classifies a category for reporting.
type Kind string

const (
	KindIncome    Kind = "INCOME"
	KindExpense   Kind = "EXPENSE"
	KindAsset     Kind = "ASSET"
	KindLiability Kind = "LIABILITY"
	KindEquity    Kind = "EQUITY"
	KindTransfer  Kind = "TRANSFER"
	KindOther     Kind = "OTHER"
)

var kinds = []Kind{KindIncome, KindExpense, KindAsset, KindLiability, KindEquity, KindTransfer, KindOther}

var ErrKindRequired = apperror.BadRequest("Category kind is required.")

// ParseKind matches s against the known kinds, ignoring case and surrounding space.
func ParseKind(s string) (Kind, error) {
	v := strings.TrimSpace(s)
	if v == "" {
		return "", ErrKindRequired
	}
	for _, k := range kinds {
		if strings.EqualFold(string(k), v) {
			return k, nil
		}
	}
	return "", apperror.BadRequest("Unknown category kind: " + s)
}

// Valid reports whether k is one of the canonical upper-case kinds.
func (k Kind) Valid() bool {
	for _, known := range kinds {
		if k == known {
			return true
		}
	}
	return false
}

// OrOther maps stored values that are not a known kind to KindOther.
func (k Kind) OrOther() Kind {
	if k.Valid() {
		return k
	}
	if parsed, err := ParseKind(string(k)); err == nil {
		return parsed
	}
	return KindOther
}
