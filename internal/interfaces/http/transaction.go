package http

import (
	"context"
	"net/http"

	"cloud.google.com/go/civil"
	"github.com/shopspring/decimal"

	"bookkeeper/internal/domain/transaction"
)

type TransactionService interface {
	ListForBusiness(ctx context.Context, businessID int64) ([]transaction.View, error)
	ListForAccount(ctx context.Context, businessID, accountID int64) ([]transaction.View, error)
	Create(ctx context.Context, params transaction.CreateParams) (transaction.View, error)
}

type TransactionHandler struct {
	service TransactionService
}

func NewTransactionHandler(service TransactionService) *TransactionHandler {
	return &TransactionHandler{service: service}
}

type CreateTransactionRequest struct {
	BusinessID *int64               `json:"businessId"`
	AccountID  *int64               `json:"accountId"`
	Payee      string               `json:"payee"`
	Memo       *string              `json:"memo"`
	PostedAt   *civil.Date          `json:"postedAt"`
	Amount     *decimal.Decimal     `json:"amount"`
	VendorID   *int64               `json:"vendorId"`
	Splits     []CreateSplitRequest `json:"splits"`
}

type CreateSplitRequest struct {
	CategoryID *int64           `json:"categoryId"`
	Amount     *decimal.Decimal `json:"amount"`
	Memo       *string          `json:"memo"`
}

func (req CreateTransactionRequest) toParams(businessID, accountID int64) transaction.CreateParams {
	splits := make([]transaction.SplitParams, 0, len(req.Splits))
	for _, s := range req.Splits {
		splits = append(splits, transaction.SplitParams{
			CategoryID: s.CategoryID,
			Amount:     s.Amount,
			Memo:       s.Memo,
		})
	}
	return transaction.CreateParams{
		PathBusinessID: businessID,
		PathAccountID:  accountID,
		BusinessID:     req.BusinessID,
		AccountID:      req.AccountID,
		Payee:          req.Payee,
		Memo:           req.Memo,
		PostedAt:       req.PostedAt,
		Amount:         req.Amount,
		VendorID:       req.VendorID,
		Splits:         splits,
	}
}

func (h *TransactionHandler) ListForBusiness(w http.ResponseWriter, r *http.Request) {
	businessID, err := pathID(r, "businessId")
	if err != nil {
		writeError(w, r, err)
		return
	}

	views, err := h.service.ListForBusiness(r.Context(), businessID)
	if err != nil {
		writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, nonNil(views))
}

func (h *TransactionHandler) ListForAccount(w http.ResponseWriter, r *http.Request) {
	businessID, err := pathID(r, "businessId")
	if err != nil {
		writeError(w, r, err)
		return
	}
	accountID, err := pathID(r, "accountId")
	if err != nil {
		writeError(w, r, err)
		return
	}

	views, err := h.service.ListForAccount(r.Context(), businessID, accountID)
	if err != nil {
		writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, nonNil(views))
}

func (h *TransactionHandler) Create(w http.ResponseWriter, r *http.Request) {
	businessID, err := pathID(r, "businessId")
	if err != nil {
		writeError(w, r, err)
		return
	}
	accountID, err := pathID(r, "accountId")
	if err != nil {
		writeError(w, r, err)
		return
	}

	var req CreateTransactionRequest
	if err := decodeJSON(r, &req); err != nil {
		writeError(w, r, err)
		return
	}

	view, err := h.service.Create(r.Context(), req.toParams(businessID, accountID))
	if err != nil {
		writeError(w, r, err)
		return
	}

	writeJSON(w, http.StatusCreated, view)
}

// nonNil keeps empty listings encoding as [] rather than null.
func nonNil[T any](s []T) []T {
	if s == nil {
		return []T{}
	}
	return s
}
