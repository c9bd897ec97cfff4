package http

import (
	"context"
	"net/http"

	"bookkeeper/internal/domain/business"
)

// BusinessService is the business workflow the handler needs
type BusinessService interface {
	List(ctx context.Context) ([]*business.Business, error)
	Create(ctx context.Context, params business.CreateParams) (*business.Business, error)
	Delete(ctx context.Context, businessID int64) error
}

type BusinessHandler struct {
	service BusinessService
}

func NewBusinessHandler(service BusinessService) *BusinessHandler {
	return &BusinessHandler{service: service}
}

// Request/Response DTOs

type CreateBusinessRequest struct {
	Name  string  `json:"name"`
	TaxID *string `json:"taxId"`
}

type BusinessResponse struct {
	ID    int64   `json:"id"`
	Name  string  `json:"name"`
	TaxID *string `json:"taxId"`
}

func toBusinessResponse(b *business.Business) BusinessResponse {
	return BusinessResponse{
		ID:    b.ID,
		Name:  b.Name,
		TaxID: b.TaxID,
	}
}

func (h *BusinessHandler) List(w http.ResponseWriter, r *http.Request) {
	businesses, err := h.service.List(r.Context())
	if err != nil {
		writeError(w, r, err)
		return
	}

	response := make([]BusinessResponse, 0, len(businesses))
	for _, b := range businesses {
		response = append(response, toBusinessResponse(b))
	}
	writeJSON(w, http.StatusOK, response)
}

func (h *BusinessHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req CreateBusinessRequest
	if err := decodeJSON(r, &req); err != nil {
		writeError(w, r, err)
		return
	}

	b, err := h.service.Create(r.Context(), business.CreateParams{
		Name:  req.Name,
		TaxID: req.TaxID,
	})
	if err != nil {
		writeError(w, r, err)
		return
	}

	writeJSON(w, http.StatusCreated, toBusinessResponse(b))
}

func (h *BusinessHandler) Delete(w http.ResponseWriter, r *http.Request) {
	businessID, err := pathID(r, "businessId")
	if err != nil {
		writeError(w, r, err)
		return
	}

	if err := h.service.Delete(r.Context(), businessID); err != nil {
		writeError(w, r, err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}
