package http

import (
	"context"
	"net/http"
	"time"

	"bookkeeper/internal/domain/vendor"
)

type VendorService interface {
	List(ctx context.Context, businessID int64) ([]*vendor.Vendor, error)
	Create(ctx context.Context, businessID int64, params vendor.CreateParams) (*vendor.Vendor, error)
}

type VendorHandler struct {
	service VendorService
}

func NewVendorHandler(service VendorService) *VendorHandler {
	return &VendorHandler{service: service}
}

type CreateVendorRequest struct {
	Name        string  `json:"name"`
	ContactName *string `json:"contactName"`
	Email       *string `json:"email"`
	Phone       *string `json:"phone"`
	Active      *bool   `json:"active"`
}

type VendorResponse struct {
	ID          int64     `json:"id"`
	BusinessID  int64     `json:"businessId"`
	Name        string    `json:"name"`
	ContactName *string   `json:"contactName"`
	Email       *string   `json:"email"`
	Phone       *string   `json:"phone"`
	Active      bool      `json:"active"`
	CreatedAt   time.Time `json:"createdAt"`
	UpdatedAt   time.Time `json:"updatedAt"`
}

func toVendorResponse(v *vendor.Vendor) VendorResponse {
	return VendorResponse{
		ID:          v.ID,
		BusinessID:  v.BusinessID,
		Name:        v.Name,
		ContactName: v.ContactName,
		Email:       v.Email,
		Phone:       v.Phone,
		Active:      v.Active,
		CreatedAt:   v.CreatedAt,
		UpdatedAt:   v.UpdatedAt,
	}
}

func (h *VendorHandler) List(w http.ResponseWriter, r *http.Request) {
	businessID, err := pathID(r, "businessId")
	if err != nil {
		writeError(w, r, err)
		return
	}

	vendors, err := h.service.List(r.Context(), businessID)
	if err != nil {
		writeError(w, r, err)
		return
	}

	response := make([]VendorResponse, 0, len(vendors))
	for _, v := range vendors {
		response = append(response, toVendorResponse(v))
	}
	writeJSON(w, http.StatusOK, response)
}

func (h *VendorHandler) Create(w http.ResponseWriter, r *http.Request) {
	businessID, err := pathID(r, "businessId")
	if err != nil {
		writeError(w, r, err)
		return
	}

	var req CreateVendorRequest
	if err := decodeJSON(r, &req); err != nil {
		writeError(w, r, err)
		return
	}

	v, err := h.service.Create(r.Context(), businessID, vendor.CreateParams{
		Name:        req.Name,
		ContactName: req.ContactName,
		Email:       req.Email,
		Phone:       req.Phone,
		Active:      req.Active,
	})
	if err != nil {
		writeError(w, r, err)
		return
	}

	writeJSON(w, http.StatusCreated, toVendorResponse(v))
}
