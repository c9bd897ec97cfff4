// Package memory is an in-process store implementing the unit of work and
// every repository. It is safe for concurrent use. Data is lost on restart;
// use the postgres store for persistence.
package memory

import (
	"context"
	"maps"
	"sync"
	"time"

	"bookkeeper/internal/domain/account"
	"bookkeeper/internal/domain/business"
	"bookkeeper/internal/domain/category"
	"bookkeeper/internal/domain/transaction"
	"bookkeeper/internal/domain/uow"
	"bookkeeper/internal/domain/vendor"
)

// amountScale matches the NUMERIC(19,4) columns of the postgres schema.
const amountScale = 4

type sequences struct {
	business, account, category, vendor, transaction, split int64
}

// state is one consistent snapshot of all tables. Values are stored by copy;
// pointer fields inside them are never mutated.
type state struct {
	seq          sequences
	businesses   map[int64]business.Business
	accounts     map[int64]account.Account
	categories   map[int64]category.Category
	vendors      map[int64]vendor.Vendor
	transactions map[int64]transaction.Transaction // Splits and display fields unset
	splits       map[int64]transaction.Split       // CategoryName unset
}

func newState() *state {
	return &state{
		businesses:   make(map[int64]business.Business),
		accounts:     make(map[int64]account.Account),
		categories:   make(map[int64]category.Category),
		vendors:      make(map[int64]vendor.Vendor),
		transactions: make(map[int64]transaction.Transaction),
		splits:       make(map[int64]transaction.Split),
	}
}

func (st *state) clone() *state {
	return &state{
		seq:          st.seq,
		businesses:   maps.Clone(st.businesses),
		accounts:     maps.Clone(st.accounts),
		categories:   maps.Clone(st.categories),
		vendors:      maps.Clone(st.vendors),
		transactions: maps.Clone(st.transactions),
		splits:       maps.Clone(st.splits),
	}
}

// Store holds the committed state. Units of work run one at a time against a
// private copy that replaces the committed state only when the unit succeeds.
type Store struct {
	mu    sync.RWMutex
	state *state
	now   func() time.Time
}

// Option configures a Store.
type Option func(*Store)

// WithClock sets the source of created/updated timestamps.
func WithClock(now func() time.Time) Option {
	return func(s *Store) { s.now = now }
}

func NewStore(opts ...Option) *Store {
	s := &Store{
		state: newState(),
		now:   time.Now,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Do implements uow.UnitOfWork.
func (s *Store) Do(ctx context.Context, fn func(ctx context.Context, repos uow.Repositories) error) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if err := ctx.Err(); err != nil {
		return err
	}

	work := s.state.clone()
	if err := fn(ctx, s.repositories(work)); err != nil {
		return err
	}
	if err := ctx.Err(); err != nil {
		return err
	}

	s.state = work
	return nil
}

// Reader implements uow.UnitOfWork. Each call locks the committed state for
// its own duration.
func (s *Store) Reader() uow.Repositories {
	return s.repositories(nil)
}

func (s *Store) repositories(st *state) uow.Repositories {
	t := tables{store: s, st: st}
	return uow.Repositories{
		Businesses:   &businessRepository{t},
		Accounts:     &accountRepository{t},
		Categories:   &categoryRepository{t},
		Vendors:      &vendorRepository{t},
		Transactions: &transactionRepository{t},
	}
}

func (s *Store) timestamp() time.Time {
	return s.now().UTC()
}

// tables gives repositories access either to a unit's private state or,
// when st is nil, to the committed state under the store lock.
type tables struct {
	store *Store
	st    *state
}

func (t tables) read(fn func(st *state) error) error {
	if t.st != nil {
		return fn(t.st)
	}
	t.store.mu.RLock()
	defer t.store.mu.RUnlock()
	return fn(t.store.state)
}

func (t tables) write(fn func(st *state) error) error {
	if t.st != nil {
		return fn(t.st)
	}
	t.store.mu.Lock()
	defer t.store.mu.Unlock()
	return fn(t.store.state)
}

// Ensure Store implements UnitOfWork interface.
var _ uow.UnitOfWork = (*Store)(nil)
