package http

import (
	"context"
	"net/http"

	"bookkeeper/internal/domain/account"
)

type AccountService interface {
	List(ctx context.Context, businessID int64) ([]*account.Account, error)
	Create(ctx context.Context, businessID int64, params account.CreateParams) (*account.Account, error)
}

type AccountHandler struct {
	service AccountService
}

func NewAccountHandler(service AccountService) *AccountHandler {
	return &AccountHandler{service: service}
}

type CreateAccountRequest struct {
	Name        string  `json:"name"`
	AccountType *string `json:"accountType"`
}

type AccountResponse struct {
	ID          int64   `json:"id"`
	Name        string  `json:"name"`
	AccountType *string `json:"accountType"`
	BusinessID  int64   `json:"businessId"`
}

func toAccountResponse(a *account.Account) AccountResponse {
	return AccountResponse{
		ID:          a.ID,
		Name:        a.Name,
		AccountType: a.AccountType,
		BusinessID:  a.BusinessID,
	}
}

func (h *AccountHandler) List(w http.ResponseWriter, r *http.Request) {
	businessID, err := pathID(r, "businessId")
	if err != nil {
		writeError(w, r, err)
		return
	}

	accounts, err := h.service.List(r.Context(), businessID)
	if err != nil {
		writeError(w, r, err)
		return
	}

	response := make([]AccountResponse, 0, len(accounts))
	for _, a := range accounts {
		response = append(response, toAccountResponse(a))
	}
	writeJSON(w, http.StatusOK, response)
}

func (h *AccountHandler) Create(w http.ResponseWriter, r *http.Request) {
	businessID, err := pathID(r, "businessId")
	if err != nil {
		writeError(w, r, err)
		return
	}

	var req CreateAccountRequest
	if err := decodeJSON(r, &req); err != nil {
		writeError(w, r, err)
		return
	}

	a, err := h.service.Create(r.Context(), businessID, account.CreateParams{
		Name:        req.Name,
		AccountType: req.AccountType,
	})
	if err != nil {
		writeError(w, r, err)
		return
	}

	writeJSON(w, http.StatusCreated, toAccountResponse(a))
}
