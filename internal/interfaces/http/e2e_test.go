package http

import (
	"fmt"
	"net/http"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"bookkeeper/internal/domain/transaction"
	"bookkeeper/internal/infrastructure/memory"
	"bookkeeper/internal/service"
)

func newMemoryRouter() http.Handler {
	store := memory.NewStore()
	return NewRouter(Handlers{
		Business:    NewBusinessHandler(service.NewBusinessService(store)),
		Account:     NewAccountHandler(service.NewAccountService(store)),
		Category:    NewCategoryHandler(service.NewCategoryService(store)),
		Vendor:      NewVendorHandler(service.NewVendorService(store)),
		Transaction: NewTransactionHandler(service.NewTransactionService(store)),
	}, "/api")
}

func TestEndToEnd_RecordTransaction(t *testing.T) {
	router := newMemoryRouter()

	rr := serve(t, router, http.MethodPost, "/api/businesses", `{"name":"  Acme  "}`)
	require.Equal(t, http.StatusCreated, rr.Code, rr.Body.String())
	var biz BusinessResponse
	decodeBody(t, rr, &biz)
	assert.Equal(t, "Acme", biz.Name)

	rr = serve(t, router, http.MethodPost, fmt.Sprintf("/api/businesses/%d/accounts", biz.ID), `{"name":"Checking"}`)
	require.Equal(t, http.StatusCreated, rr.Code, rr.Body.String())
	var acct AccountResponse
	decodeBody(t, rr, &acct)

	rr = serve(t, router, http.MethodGet, fmt.Sprintf("/api/businesses/%d/categories", biz.ID), "")
	require.Equal(t, http.StatusOK, rr.Code)
	var categories []CategoryResponse
	decodeBody(t, rr, &categories)
	require.Len(t, categories, 30, "new businesses are seeded with the default catalogue")

	var salesID int64
	for _, c := range categories {
		if c.Name == "Sales" {
			salesID = c.ID
		}
	}
	require.NotZero(t, salesID)

	body := fmt.Sprintf(`{
		"businessId": %d,
		"accountId": %d,
		"payee": "Client X",
		"postedAt": "2024-01-15",
		"amount": 100.00,
		"splits": [{"categoryId": %d, "amount": 100.00}]
	}`, biz.ID, acct.ID, salesID)
	path := fmt.Sprintf("/api/businesses/%d/accounts/%d/transactions", biz.ID, acct.ID)

	rr = serve(t, router, http.MethodPost, path, body)
	require.Equal(t, http.StatusCreated, rr.Code, rr.Body.String())

	var view transaction.View
	decodeBody(t, rr, &view)
	assert.NotZero(t, view.ID)
	assert.Equal(t, "Checking", view.AccountName)
	assert.Equal(t, "Client X", view.Payee)
	assert.Nil(t, view.VendorID)
	assert.True(t, view.Amount.Equal(decimal.NewFromInt(100)))
	require.Len(t, view.Splits, 1)
	assert.Equal(t, "Sales", view.Splits[0].CategoryName)
	assert.NotZero(t, view.Splits[0].ID)

	rr = serve(t, router, http.MethodGet, path, "")
	require.Equal(t, http.StatusOK, rr.Code)
	var listed []transaction.View
	decodeBody(t, rr, &listed)
	require.Len(t, listed, 1)
	assert.Equal(t, view.ID, listed[0].ID)
}

func TestEndToEnd_DuplicateAccount(t *testing.T) {
	router := newMemoryRouter()

	rr := serve(t, router, http.MethodPost, "/api/businesses", `{"name":"Acme"}`)
	require.Equal(t, http.StatusCreated, rr.Code)
	var biz BusinessResponse
	decodeBody(t, rr, &biz)

	accounts := fmt.Sprintf("/api/businesses/%d/accounts", biz.ID)
	rr = serve(t, router, http.MethodPost, accounts, `{"name":"Checking"}`)
	require.Equal(t, http.StatusCreated, rr.Code)

	rr = serve(t, router, http.MethodPost, accounts, `{"name":"checking "}`)
	require.Equal(t, http.StatusConflict, rr.Code)
	assert.Equal(t, "An account with that name already exists for this business.", errorMessage(t, rr))

	rr = serve(t, router, http.MethodGet, accounts, "")
	require.Equal(t, http.StatusOK, rr.Code)
	var listed []AccountResponse
	decodeBody(t, rr, &listed)
	assert.Len(t, listed, 1)
}

func TestEndToEnd_TransactionRejectedWithoutWrites(t *testing.T) {
	router := newMemoryRouter()

	rr := serve(t, router, http.MethodPost, "/api/businesses", `{"name":"Acme"}`)
	require.Equal(t, http.StatusCreated, rr.Code)
	var biz BusinessResponse
	decodeBody(t, rr, &biz)

	rr = serve(t, router, http.MethodPost, fmt.Sprintf("/api/businesses/%d/accounts", biz.ID), `{"name":"Checking"}`)
	require.Equal(t, http.StatusCreated, rr.Code)
	var acct AccountResponse
	decodeBody(t, rr, &acct)

	body := fmt.Sprintf(`{
		"businessId": %d,
		"accountId": %d,
		"payee": "Client X",
		"postedAt": "2024-01-15",
		"amount": 10,
		"splits": [{"categoryId": 999999, "amount": 10}]
	}`, biz.ID, acct.ID)
	rr = serve(t, router, http.MethodPost, fmt.Sprintf("/api/businesses/%d/accounts/%d/transactions", biz.ID, acct.ID), body)
	require.Equal(t, http.StatusBadRequest, rr.Code)
	assert.Equal(t, "Category not found for this business.", errorMessage(t, rr))

	rr = serve(t, router, http.MethodGet, fmt.Sprintf("/api/businesses/%d/transactions", biz.ID), "")
	require.Equal(t, http.StatusOK, rr.Code)
	assert.Equal(t, "[]\n", rr.Body.String())
}

func TestEndToEnd_DeleteBusiness(t *testing.T) {
	router := newMemoryRouter()

	rr := serve(t, router, http.MethodPost, "/api/businesses", `{"name":"Acme"}`)
	require.Equal(t, http.StatusCreated, rr.Code)
	var biz BusinessResponse
	decodeBody(t, rr, &biz)

	rr = serve(t, router, http.MethodPost, "/api/businesses", `{"name":"Beta"}`)
	require.Equal(t, http.StatusCreated, rr.Code)
	var other BusinessResponse
	decodeBody(t, rr, &other)

	rr = serve(t, router, http.MethodPost, fmt.Sprintf("/api/businesses/%d/accounts", biz.ID), `{"name":"Checking"}`)
	require.Equal(t, http.StatusCreated, rr.Code, rr.Body.String())
	var acct AccountResponse
	decodeBody(t, rr, &acct)

	rr = serve(t, router, http.MethodPost, fmt.Sprintf("/api/businesses/%d/vendors", biz.ID), `{"name":"Paper Co"}`)
	require.Equal(t, http.StatusCreated, rr.Code, rr.Body.String())
	var vend VendorResponse
	decodeBody(t, rr, &vend)

	rr = serve(t, router, http.MethodGet, fmt.Sprintf("/api/businesses/%d/categories", biz.ID), "")
	require.Equal(t, http.StatusOK, rr.Code)
	var categories []CategoryResponse
	decodeBody(t, rr, &categories)
	require.NotEmpty(t, categories)

	body := fmt.Sprintf(`{
		"businessId": %d,
		"accountId": %d,
		"vendorId": %d,
		"payee": "Paper Co",
		"postedAt": "2024-03-01",
		"amount": -25.50,
		"splits": [{"categoryId": %d, "amount": -25.50}]
	}`, biz.ID, acct.ID, vend.ID, categories[0].ID)
	txPath := fmt.Sprintf("/api/businesses/%d/accounts/%d/transactions", biz.ID, acct.ID)
	rr = serve(t, router, http.MethodPost, txPath, body)
	require.Equal(t, http.StatusCreated, rr.Code, rr.Body.String())

	rr = serve(t, router, http.MethodDelete, fmt.Sprintf("/api/businesses/%d", biz.ID), "")
	require.Equal(t, http.StatusNoContent, rr.Code)

	rr = serve(t, router, http.MethodGet, txPath, "")
	assert.Equal(t, http.StatusNotFound, rr.Code)

	for _, resource := range []string{"accounts", "categories", "vendors", "transactions"} {
		rr = serve(t, router, http.MethodGet, fmt.Sprintf("/api/businesses/%d/%s", biz.ID, resource), "")
		assert.Equal(t, http.StatusNotFound, rr.Code, resource)
		assert.Equal(t, "Business not found.", errorMessage(t, rr), resource)
	}

	rr = serve(t, router, http.MethodGet, "/api/businesses", "")
	require.Equal(t, http.StatusOK, rr.Code)
	var remaining []BusinessResponse
	decodeBody(t, rr, &remaining)
	require.Len(t, remaining, 1)
	assert.Equal(t, other.ID, remaining[0].ID)

	rr = serve(t, router, http.MethodGet, fmt.Sprintf("/api/businesses/%d/categories", other.ID), "")
	require.Equal(t, http.StatusOK, rr.Code)
	var otherCategories []CategoryResponse
	decodeBody(t, rr, &otherCategories)
	assert.Len(t, otherCategories, len(categories))

	rr = serve(t, router, http.MethodDelete, fmt.Sprintf("/api/businesses/%d", biz.ID), "")
	assert.Equal(t, http.StatusNotFound, rr.Code)
}
