package http

import (
	"context"

	"bookkeeper/internal/domain/account"
	"bookkeeper/internal/domain/business"
	"bookkeeper/internal/domain/category"
	"bookkeeper/internal/domain/transaction"
	"bookkeeper/internal/domain/vendor"
)

type MockBusinessService struct {
	ListFunc   func(ctx context.Context) ([]*business.Business, error)
	CreateFunc func(ctx context.Context, params business.CreateParams) (*business.Business, error)
	DeleteFunc func(ctx context.Context, businessID int64) error
}

func (m *MockBusinessService) List(ctx context.Context) ([]*business.Business, error) {
	if m.ListFunc != nil {
		return m.ListFunc(ctx)
	}
	return nil, nil
}

func (m *MockBusinessService) Create(ctx context.Context, params business.CreateParams) (*business.Business, error) {
	if m.CreateFunc != nil {
		return m.CreateFunc(ctx, params)
	}
	return nil, nil
}

func (m *MockBusinessService) Delete(ctx context.Context, businessID int64) error {
	if m.DeleteFunc != nil {
		return m.DeleteFunc(ctx, businessID)
	}
	return nil
}

type MockAccountService struct {
	ListFunc   func(ctx context.Context, businessID int64) ([]*account.Account, error)
	CreateFunc func(ctx context.Context, businessID int64, params account.CreateParams) (*account.Account, error)
}

func (m *MockAccountService) List(ctx context.Context, businessID int64) ([]*account.Account, error) {
	if m.ListFunc != nil {
		return m.ListFunc(ctx, businessID)
	}
	return nil, nil
}

func (m *MockAccountService) Create(ctx context.Context, businessID int64, params account.CreateParams) (*account.Account, error) {
	if m.CreateFunc != nil {
		return m.CreateFunc(ctx, businessID, params)
	}
	return nil, nil
}

type MockCategoryService struct {
	ListFunc   func(ctx context.Context, businessID int64) ([]*category.Category, error)
	CreateFunc func(ctx context.Context, businessID int64, params category.CreateParams) (*category.Category, error)
}

func (m *MockCategoryService) List(ctx context.Context, businessID int64) ([]*category.Category, error) {
	if m.ListFunc != nil {
		return m.ListFunc(ctx, businessID)
	}
	return nil, nil
}

func (m *MockCategoryService) Create(ctx context.Context, businessID int64, params category.CreateParams) (*category.Category, error) {
	if m.CreateFunc != nil {
		return m.CreateFunc(ctx, businessID, params)
	}
	return nil, nil
}

type MockVendorService struct {
	ListFunc   func(ctx context.Context, businessID int64) ([]*vendor.Vendor, error)
	CreateFunc func(ctx context.Context, businessID int64, params vendor.CreateParams) (*vendor.Vendor, error)
}

func (m *MockVendorService) List(ctx context.Context, businessID int64) ([]*vendor.Vendor, error) {
	if m.ListFunc != nil {
		return m.ListFunc(ctx, businessID)
	}
	return nil, nil
}

func (m *MockVendorService) Create(ctx context.Context, businessID int64, params vendor.CreateParams) (*vendor.Vendor, error) {
	if m.CreateFunc != nil {
		return m.CreateFunc(ctx, businessID, params)
	}
	return nil, nil
}

type MockTransactionService struct {
	ListForBusinessFunc func(ctx context.Context, businessID int64) ([]transaction.View, error)
	ListForAccountFunc  func(ctx context.Context, businessID, accountID int64) ([]transaction.View, error)
	CreateFunc          func(ctx context.Context, params transaction.CreateParams) (transaction.View, error)
}

func (m *MockTransactionService) ListForBusiness(ctx context.Context, businessID int64) ([]transaction.View, error) {
	if m.ListForBusinessFunc != nil {
		return m.ListForBusinessFunc(ctx, businessID)
	}
	return nil, nil
}

func (m *MockTransactionService) ListForAccount(ctx context.Context, businessID, accountID int64) ([]transaction.View, error) {
	if m.ListForAccountFunc != nil {
		return m.ListForAccountFunc(ctx, businessID, accountID)
	}
	return nil, nil
}

func (m *MockTransactionService) Create(ctx context.Context, params transaction.CreateParams) (transaction.View, error) {
	if m.CreateFunc != nil {
		return m.CreateFunc(ctx, params)
	}
	return transaction.View{}, nil
}

type testServices struct {
	Business    BusinessService
	Account     AccountService
	Category    CategoryService
	Vendor      VendorService
	Transaction TransactionService
}

// newTestHandlers fills unset services with empty mocks.
func newTestHandlers(s testServices) Handlers {
	if s.Business == nil {
		s.Business = &MockBusinessService{}
	}
	if s.Account == nil {
		s.Account = &MockAccountService{}
	}
	if s.Category == nil {
		s.Category = &MockCategoryService{}
	}
	if s.Vendor == nil {
		s.Vendor = &MockVendorService{}
	}
	if s.Transaction == nil {
		s.Transaction = &MockTransactionService{}
	}
	return Handlers{
		Business:    NewBusinessHandler(s.Business),
		Account:     NewAccountHandler(s.Account),
		Category:    NewCategoryHandler(s.Category),
		Vendor:      NewVendorHandler(s.Vendor),
		Transaction: NewTransactionHandler(s.Transaction),
	}
}
