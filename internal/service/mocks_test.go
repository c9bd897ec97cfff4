package service

import (
	"context"

	"bookkeeper/internal/domain/uow"
)

// mockUnitOfWork is a mock implementation of uow.UnitOfWork
type mockUnitOfWork struct {
	DoFunc     func(ctx context.Context, fn func(ctx context.Context, repos uow.Repositories) error) error
	ReaderFunc func() uow.Repositories
}

func (m *mockUnitOfWork) Do(ctx context.Context, fn func(ctx context.Context, repos uow.Repositories) error) error {
	if m.DoFunc != nil {
		return m.DoFunc(ctx, fn)
	}
	return nil
}

func (m *mockUnitOfWork) Reader() uow.Repositories {
	if m.ReaderFunc != nil {
		return m.ReaderFunc()
	}
	return uow.Repositories{}
}

// forbidStorage fails the test if the unit of work is touched.
func forbidStorage(fail func(format string, args ...any)) *mockUnitOfWork {
	return &mockUnitOfWork{
		DoFunc: func(ctx context.Context, fn func(ctx context.Context, repos uow.Repositories) error) error {
			fail("unexpected unit of work")
			return nil
		},
		ReaderFunc: func() uow.Repositories {
			fail("unexpected storage read")
			return uow.Repositories{}
		},
	}
}
