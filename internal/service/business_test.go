package service

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"bookkeeper/internal/domain/business"
	"bookkeeper/internal/domain/uow"
	"bookkeeper/internal/infrastructure/memory"
	"bookkeeper/internal/shared/apperror"
)

func TestBusinessService_Create(t *testing.T) {
	ctx := context.Background()
	store := memory.NewStore()
	svc := NewBusinessService(store)

	taxID := "  12-3456789 "
	b, err := svc.Create(ctx, business.CreateParams{Name: "  Acme  ", TaxID: &taxID})
	require.NoError(t, err)
	assert.Equal(t, "Acme", b.Name)
	require.NotNil(t, b.TaxID)
	assert.Equal(t, "12-3456789", *b.TaxID)

	categories, err := NewCategoryService(store).List(ctx, b.ID)
	require.NoError(t, err)
	assert.Len(t, categories, 30, "default categories should be seeded")
}

func TestBusinessService_Create_Errors(t *testing.T) {
	ctx := context.Background()
	svc := NewBusinessService(memory.NewStore())

	_, err := svc.Create(ctx, business.CreateParams{Name: "Acme"})
	require.NoError(t, err)

	tests := []struct {
		name     string
		params   business.CreateParams
		wantKind apperror.Kind
		wantMsg  string
	}{
		{"blank name", business.CreateParams{Name: "   "}, apperror.KindBadRequest, "Business name is required."},
		{"duplicate name", business.CreateParams{Name: "acme"}, apperror.KindConflict, "A business with that name already exists."},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := svc.Create(ctx, tt.params)
			require.Error(t, err)
			assert.Equal(t, tt.wantKind, apperror.KindOf(err))
			assert.Equal(t, tt.wantMsg, apperror.Message(err))
		})
	}

	list, err := svc.List(ctx)
	require.NoError(t, err)
	assert.Len(t, list, 1)
}

func TestBusinessService_Create_SeedFailureIsNotFatal(t *testing.T) {
	ctx := context.Background()
	store := memory.NewStore()
	calls := 0
	u := &mockUnitOfWork{
		DoFunc: func(ctx context.Context, fn func(ctx context.Context, repos uow.Repositories) error) error {
			calls++
			if calls > 1 {
				return errors.New("seeding unavailable")
			}
			return store.Do(ctx, fn)
		},
		ReaderFunc: store.Reader,
	}

	b, err := NewBusinessService(u).Create(ctx, business.CreateParams{Name: "Acme"})
	require.NoError(t, err)
	assert.NotZero(t, b.ID)

	categories, err := store.Reader().Categories.ListByBusiness(ctx, b.ID)
	require.NoError(t, err)
	assert.Empty(t, categories)
}

func TestBusinessService_SeedDefaultCategories_SkipsExisting(t *testing.T) {
	ctx := context.Background()
	store := memory.NewStore()
	svc := NewBusinessService(store)

	b, err := svc.Create(ctx, business.CreateParams{Name: "Acme"})
	require.NoError(t, err)

	n, err := svc.SeedDefaultCategories(ctx, b.ID)
	require.NoError(t, err)
	assert.Zero(t, n)

	_, err = svc.SeedDefaultCategories(ctx, 999)
	assert.ErrorIs(t, err, ErrBusinessNotFound)
}

func TestBusinessService_List_SortedByName(t *testing.T) {
	ctx := context.Background()
	svc := NewBusinessService(memory.NewStore())

	for _, name := range []string{"Zed", "acme", "Beta"} {
		_, err := svc.Create(ctx, business.CreateParams{Name: name})
		require.NoError(t, err)
	}

	list, err := svc.List(ctx)
	require.NoError(t, err)
	require.Len(t, list, 3)
	assert.Equal(t, "acme", list[0].Name)
	assert.Equal(t, "Beta", list[1].Name)
	assert.Equal(t, "Zed", list[2].Name)
}

func TestBusinessService_Delete(t *testing.T) {
	ctx := context.Background()
	store := memory.NewStore()
	f := newTransactionFixture(t, store)

	_, err := NewTransactionService(store).Create(ctx, f.params())
	require.NoError(t, err)

	svc := NewBusinessService(store)
	require.NoError(t, svc.Delete(ctx, f.businessID))

	list, err := svc.List(ctx)
	require.NoError(t, err)
	assert.Empty(t, list)

	_, err = NewTransactionService(store).ListForBusiness(ctx, f.businessID)
	assert.ErrorIs(t, err, ErrBusinessNotFound)

	repos := store.Reader()
	categories, err := repos.Categories.ListByBusiness(ctx, f.businessID)
	require.NoError(t, err)
	assert.Empty(t, categories)
}

func TestBusinessService_Delete_NotFound(t *testing.T) {
	err := NewBusinessService(memory.NewStore()).Delete(context.Background(), 42)
	assert.ErrorIs(t, err, apperror.ErrNotFound)
	assert.Equal(t, "Business not found.", apperror.Message(err))
}

func TestBusinessService_Delete_RollsBack(t *testing.T) {
	ctx := context.Background()
	store := memory.NewStore()
	svc := NewBusinessService(store)

	b, err := svc.Create(ctx, business.CreateParams{Name: "Acme"})
	require.NoError(t, err)

	boom := errors.New("boom")
	u := &mockUnitOfWork{
		DoFunc: func(ctx context.Context, fn func(ctx context.Context, repos uow.Repositories) error) error {
			return store.Do(ctx, func(ctx context.Context, repos uow.Repositories) error {
				repos.Businesses = failingBusinessDelete{Repository: repos.Businesses, err: boom}
				return fn(ctx, repos)
			})
		},
	}

	err = NewBusinessService(u).Delete(ctx, b.ID)
	require.ErrorIs(t, err, boom)

	categories, err := store.Reader().Categories.ListByBusiness(ctx, b.ID)
	require.NoError(t, err)
	assert.Len(t, categories, 30, "categories should survive a failed delete")
}

type failingBusinessDelete struct {
	business.Repository
	err error
}

func (f failingBusinessDelete) Delete(ctx context.Context, id int64) error {
	return f.err
}
