package http

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	chimw "github.com/go-chi/chi/v5/middleware"
)

// Handlers groups the resource handlers mounted by NewRouter.
type Handlers struct {
	Business    *BusinessHandler
	Account     *AccountHandler
	Category    *CategoryHandler
	Vendor      *VendorHandler
	Transaction *TransactionHandler
}

// NewRouter mounts every API route under prefix ("" mounts at the root).
func NewRouter(h Handlers, prefix string) chi.Router {
	r := chi.NewRouter()
	r.Use(chimw.StripSlashes)

	routes := func(r chi.Router) {
		r.Get("/health-check", HandleHealthCheck)

		r.Route("/businesses", func(r chi.Router) {
			r.Get("/", h.Business.List)
			r.Post("/", h.Business.Create)

			r.Route("/{businessId}", func(r chi.Router) {
				r.Delete("/", h.Business.Delete)

				r.Get("/accounts", h.Account.List)
				r.Post("/accounts", h.Account.Create)
				r.Get("/accounts/{accountId}/transactions", h.Transaction.ListForAccount)
				r.Post("/accounts/{accountId}/transactions", h.Transaction.Create)

				r.Get("/categories", h.Category.List)
				r.Post("/categories", h.Category.Create)

				r.Get("/vendors", h.Vendor.List)
				r.Post("/vendors", h.Vendor.Create)

				r.Get("/transactions", h.Transaction.ListForBusiness)
			})
		})
	}

	if prefix == "" {
		routes(r)
	} else {
		r.Route(prefix, routes)
	}

	r.NotFound(func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, http.StatusNotFound, ErrorResponse{Error: "Not found"})
	})
	r.MethodNotAllowed(func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, http.StatusMethodNotAllowed, ErrorResponse{Error: "Method not allowed"})
	})

	return r
}
