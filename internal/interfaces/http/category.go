package http

import (
	"context"
	"net/http"

	"bookkeeper/internal/domain/category"
)

type CategoryService interface {
	List(ctx context.Context, businessID int64) ([]*category.Category, error)
	Create(ctx context.Context, businessID int64, params category.CreateParams) (*category.Category, error)
}

type CategoryHandler struct {
	service CategoryService
}

func NewCategoryHandler(service CategoryService) *CategoryHandler {
	return &CategoryHandler{service: service}
}

type CreateCategoryRequest struct {
	Name             string  `json:"name"`
	Description      *string `json:"description"`
	ParentCategoryID *int64  `json:"parentCategoryId"`
	Kind             string  `json:"kind"`
	Active           *bool   `json:"active"`
}

type CategoryResponse struct {
	ID               int64         `json:"id"`
	Name             string        `json:"name"`
	Description      *string       `json:"description"`
	BusinessID       int64         `json:"businessId"`
	ParentCategoryID *int64        `json:"parentCategoryId"`
	Kind             category.Kind `json:"kind"`
	Active           bool          `json:"active"`
}

// toCategoryResponse reports stored kinds that no longer parse as OTHER.
func toCategoryResponse(c *category.Category) CategoryResponse {
	return CategoryResponse{
		ID:               c.ID,
		Name:             c.Name,
		Description:      c.Description,
		BusinessID:       c.BusinessID,
		ParentCategoryID: c.ParentCategoryID,
		Kind:             c.Kind.OrOther(),
		Active:           c.Active,
	}
}

func (h *CategoryHandler) List(w http.ResponseWriter, r *http.Request) {
	businessID, err := pathID(r, "businessId")
	if err != nil {
		writeError(w, r, err)
		return
	}

	categories, err := h.service.List(r.Context(), businessID)
	if err != nil {
		writeError(w, r, err)
		return
	}

	response := make([]CategoryResponse, 0, len(categories))
	for _, c := range categories {
		response = append(response, toCategoryResponse(c))
	}
	writeJSON(w, http.StatusOK, response)
}

func (h *CategoryHandler) Create(w http.ResponseWriter, r *http.Request) {
	businessID, err := pathID(r, "businessId")
	if err != nil {
		writeError(w, r, err)
		return
	}

	var req CreateCategoryRequest
	if err := decodeJSON(r, &req); err != nil {
		writeError(w, r, err)
		return
	}

	c, err := h.service.Create(r.Context(), businessID, category.CreateParams{
		Name:             req.Name,
		Description:      req.Description,
		Kind:             req.Kind,
		ParentCategoryID: req.ParentCategoryID,
		Active:           req.Active,
	})
	if err != nil {
		writeError(w, r, err)
		return
	}

	writeJSON(w, http.StatusCreated, toCategoryResponse(c))
}
