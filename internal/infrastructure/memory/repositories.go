package memory

import (
	"cmp"
	"context"
	"fmt"
	"slices"
	"strings"

	"bookkeeper/internal/domain/account"
	"bookkeeper/internal/domain/business"
	"bookkeeper/internal/domain/category"
	"bookkeeper/internal/domain/transaction"
	"bookkeeper/internal/domain/vendor"
)

func sameName(a, b string) bool {
	return strings.ToLower(a) == strings.ToLower(b)
}

// byName orders like the postgres repositories: lower(name), then id.
func byName[T any](name func(T) string, id func(T) int64) func(a, b T) int {
	return func(a, b T) int {
		if c := strings.Compare(strings.ToLower(name(a)), strings.ToLower(name(b))); c != 0 {
			return c
		}
		return cmp.Compare(id(a), id(b))
	}
}

type businessRepository struct{ tables }

func (r *businessRepository) Create(ctx context.Context, params business.CreateParams) (*business.Business, error) {
	var created business.Business
	err := r.write(func(st *state) error {
		for _, b := range st.businesses {
			if sameName(b.Name, params.Name) {
				return business.ErrDuplicateName
			}
		}
		st.seq.business++
		now := r.store.timestamp()
		created = business.Business{
			ID:        st.seq.business,
			Name:      params.Name,
			TaxID:     params.TaxID,
			CreatedAt: now,
			UpdatedAt: now,
		}
		st.businesses[created.ID] = created
		return nil
	})
	if err != nil {
		return nil, err
	}
	return &created, nil
}

func (r *businessRepository) GetByID(ctx context.Context, id int64) (*business.Business, error) {
	var found business.Business
	err := r.read(func(st *state) error {
		b, ok := st.businesses[id]
		if !ok {
			return business.ErrNotFound
		}
		found = b
		return nil
	})
	if err != nil {
		return nil, err
	}
	return &found, nil
}

func (r *businessRepository) Exists(ctx context.Context, id int64) (bool, error) {
	var exists bool
	err := r.read(func(st *state) error {
		_, exists = st.businesses[id]
		return nil
	})
	return exists, err
}

func (r *businessRepository) ExistsByName(ctx context.Context, name string) (bool, error) {
	var exists bool
	err := r.read(func(st *state) error {
		for _, b := range st.businesses {
			if sameName(b.Name, name) {
				exists = true
				break
			}
		}
		return nil
	})
	return exists, err
}

func (r *businessRepository) List(ctx context.Context) ([]*business.Business, error) {
	var out []*business.Business
	err := r.read(func(st *state) error {
		out = make([]*business.Business, 0, len(st.businesses))
		for _, b := range st.businesses {
			out = append(out, &b)
		}
		return nil
	})
	slices.SortFunc(out, byName(
		func(b *business.Business) string { return b.Name },
		func(b *business.Business) int64 { return b.ID },
	))
	return out, err
}

// Delete fails while accounts, categories, vendors or transactions still
// reference the business.
func (r *businessRepository) Delete(ctx context.Context, id int64) error {
	return r.write(func(st *state) error {
		if _, ok := st.businesses[id]; !ok {
			return business.ErrNotFound
		}
		for _, a := range st.accounts {
			if a.BusinessID == id {
				return fmt.Errorf("business %d still has accounts", id)
			}
		}
		for _, c := range st.categories {
			if c.BusinessID == id {
				return fmt.Errorf("business %d still has categories", id)
			}
		}
		for _, v := range st.vendors {
			if v.BusinessID == id {
				return fmt.Errorf("business %d still has vendors", id)
			}
		}
		for _, t := range st.transactions {
			if t.BusinessID == id {
				return fmt.Errorf("business %d still has transactions", id)
			}
		}
		delete(st.businesses, id)
		return nil
	})
}

type accountRepository struct{ tables }

func (r *accountRepository) Create(ctx context.Context, businessID int64, params account.CreateParams) (*account.Account, error) {
	var created account.Account
	err := r.write(func(st *state) error {
		if _, ok := st.businesses[businessID]; !ok {
			return fmt.Errorf("business %d does not exist", businessID)
		}
		for _, a := range st.accounts {
			if a.BusinessID == businessID && sameName(a.Name, params.Name) {
				return account.ErrDuplicateName
			}
		}
		st.seq.account++
		now := r.store.timestamp()
		created = account.Account{
			ID:          st.seq.account,
			BusinessID:  businessID,
			Name:        params.Name,
			AccountType: params.AccountType,
			CreatedAt:   now,
			UpdatedAt:   now,
		}
		st.accounts[created.ID] = created
		return nil
	})
	if err != nil {
		return nil, err
	}
	return &created, nil
}

func (r *accountRepository) GetForBusiness(ctx context.Context, id, businessID int64) (*account.Account, error) {
	var found account.Account
	err := r.read(func(st *state) error {
		a, ok := st.accounts[id]
		if !ok || a.BusinessID != businessID {
			return account.ErrNotFound
		}
		found = a
		return nil
	})
	if err != nil {
		return nil, err
	}
	return &found, nil
}

func (r *accountRepository) ExistsByName(ctx context.Context, businessID int64, name string) (bool, error) {
	var exists bool
	err := r.read(func(st *state) error {
		for _, a := range st.accounts {
			if a.BusinessID == businessID && sameName(a.Name, name) {
				exists = true
				break
			}
		}
		return nil
	})
	return exists, err
}

func (r *accountRepository) ListByBusiness(ctx context.Context, businessID int64) ([]*account.Account, error) {
	out := []*account.Account{}
	err := r.read(func(st *state) error {
		for _, a := range st.accounts {
			if a.BusinessID == businessID {
				out = append(out, &a)
			}
		}
		return nil
	})
	slices.SortFunc(out, byName(
		func(a *account.Account) string { return a.Name },
		func(a *account.Account) int64 { return a.ID },
	))
	return out, err
}

func (r *accountRepository) DeleteByBusiness(ctx context.Context, businessID int64) error {
	return r.write(func(st *state) error {
		for id, a := range st.accounts {
			if a.BusinessID != businessID {
				continue
			}
			for _, t := range st.transactions {
				if t.AccountID == id {
					return fmt.Errorf("account %d still has transactions", id)
				}
			}
			delete(st.accounts, id)
		}
		return nil
	})
}

type categoryRepository struct{ tables }

func (r *categoryRepository) Create(ctx context.Context, c *category.Category) error {
	return r.write(func(st *state) error {
		if _, ok := st.businesses[c.BusinessID]; !ok {
			return fmt.Errorf("business %d does not exist", c.BusinessID)
		}
		if c.ParentCategoryID != nil {
			if _, ok := st.categories[*c.ParentCategoryID]; !ok {
				return fmt.Errorf("parent category %d does not exist", *c.ParentCategoryID)
			}
		}
		for _, existing := range st.categories {
			if existing.BusinessID == c.BusinessID && sameName(existing.Name, c.Name) {
				return category.ErrDuplicateName
			}
		}
		st.seq.category++
		now := r.store.timestamp()
		c.ID = st.seq.category
		c.CreatedAt = now
		c.UpdatedAt = now
		st.categories[c.ID] = *c
		return nil
	})
}

func (r *categoryRepository) GetForBusiness(ctx context.Context, id, businessID int64) (*category.Category, error) {
	var found category.Category
	err := r.read(func(st *state) error {
		c, ok := st.categories[id]
		if !ok || c.BusinessID != businessID {
			return category.ErrNotFound
		}
		found = c
		return nil
	})
	if err != nil {
		return nil, err
	}
	return &found, nil
}

func (r *categoryRepository) ExistsByName(ctx context.Context, businessID int64, name string) (bool, error) {
	var exists bool
	err := r.read(func(st *state) error {
		for _, c := range st.categories {
			if c.BusinessID == businessID && sameName(c.Name, name) {
				exists = true
				break
			}
		}
		return nil
	})
	return exists, err
}

func (r *categoryRepository) ListByBusiness(ctx context.Context, businessID int64) ([]*category.Category, error) {
	out := []*category.Category{}
	err := r.read(func(st *state) error {
		for _, c := range st.categories {
			if c.BusinessID == businessID {
				out = append(out, &c)
			}
		}
		return nil
	})
	slices.SortFunc(out, byName(
		func(c *category.Category) string { return c.Name },
		func(c *category.Category) int64 { return c.ID },
	))
	return out, err
}

func (r *categoryRepository) DeleteByBusiness(ctx context.Context, businessID int64) error {
	return r.write(func(st *state) error {
		for id, c := range st.categories {
			if c.BusinessID != businessID {
				continue
			}
			for _, s := range st.splits {
				if s.CategoryID == id {
					return fmt.Errorf("category %d is still used by splits", id)
				}
			}
		}
		for id, c := range st.categories {
			if c.BusinessID == businessID {
				delete(st.categories, id)
			}
		}
		return nil
	})
}

type vendorRepository struct{ tables }

func (r *vendorRepository) Create(ctx context.Context, businessID int64, params vendor.CreateParams) (*vendor.Vendor, error) {
	var created vendor.Vendor
	err := r.write(func(st *state) error {
		if _, ok := st.businesses[businessID]; !ok {
			return fmt.Errorf("business %d does not exist", businessID)
		}
		for _, v := range st.vendors {
			if v.BusinessID == businessID && sameName(v.Name, params.Name) {
				return vendor.ErrDuplicateName
			}
		}
		st.seq.vendor++
		now := r.store.timestamp()
		created = vendor.Vendor{
			ID:          st.seq.vendor,
			BusinessID:  businessID,
			Name:        params.Name,
			ContactName: params.ContactName,
			Email:       params.Email,
			Phone:       params.Phone,
			Active:      params.IsActive(),
			CreatedAt:   now,
			UpdatedAt:   now,
		}
		st.vendors[created.ID] = created
		return nil
	})
	if err != nil {
		return nil, err
	}
	return &created, nil
}

func (r *vendorRepository) GetForBusiness(ctx context.Context, id, businessID int64) (*vendor.Vendor, error) {
	var found vendor.Vendor
	err := r.read(func(st *state) error {
		v, ok := st.vendors[id]
		if !ok || v.BusinessID != businessID {
			return vendor.ErrNotFound
		}
		found = v
		return nil
	})
	if err != nil {
		return nil, err
	}
	return &found, nil
}

func (r *vendorRepository) ExistsByName(ctx context.Context, businessID int64, name string) (bool, error) {
	var exists bool
	err := r.read(func(st *state) error {
		for _, v := range st.vendors {
			if v.BusinessID == businessID && sameName(v.Name, name) {
				exists = true
				break
			}
		}
		return nil
	})
	return exists, err
}

func (r *vendorRepository) ListByBusiness(ctx context.Context, businessID int64) ([]*vendor.Vendor, error) {
	out := []*vendor.Vendor{}
	err := r.read(func(st *state) error {
		for _, v := range st.vendors {
			if v.BusinessID == businessID {
				out = append(out, &v)
			}
		}
		return nil
	})
	slices.SortFunc(out, byName(
		func(v *vendor.Vendor) string { return v.Name },
		func(v *vendor.Vendor) int64 { return v.ID },
	))
	return out, err
}

func (r *vendorRepository) DeleteByBusiness(ctx context.Context, businessID int64) error {
	return r.write(func(st *state) error {
		for id, v := range st.vendors {
			if v.BusinessID != businessID {
				continue
			}
			for _, t := range st.transactions {
				if t.VendorID != nil && *t.VendorID == id {
					return fmt.Errorf("vendor %d still has transactions", id)
				}
			}
			delete(st.vendors, id)
		}
		return nil
	})
}

type transactionRepository struct{ tables }

func (r *transactionRepository) Create(ctx context.Context, t *transaction.Transaction) error {
	return r.write(func(st *state) error {
		a, ok := st.accounts[t.AccountID]
		if !ok || a.BusinessID != t.BusinessID {
			return fmt.Errorf("account %d does not exist in business %d", t.AccountID, t.BusinessID)
		}
		if t.VendorID != nil {
			if _, ok := st.vendors[*t.VendorID]; !ok {
				return fmt.Errorf("vendor %d does not exist", *t.VendorID)
			}
		}

		st.seq.transaction++
		now := r.store.timestamp()
		t.AssignID(st.seq.transaction)
		t.Amount = t.Amount.Round(amountScale)
		t.CreatedAt = now
		t.UpdatedAt = now

		row := *t
		row.Splits = nil
		row.AccountName = ""
		row.VendorName = nil
		st.transactions[row.ID] = row
		return nil
	})
}

func (r *transactionRepository) ReplaceSplits(ctx context.Context, t *transaction.Transaction) error {
	return r.write(func(st *state) error {
		row, ok := st.transactions[t.ID]
		if !ok {
			return transaction.ErrNotFound
		}

		for id, s := range st.splits {
			if s.TransactionID == t.ID {
				delete(st.splits, id)
			}
		}

		for i := range t.Splits {
			s := &t.Splits[i]
			if _, ok := st.categories[s.CategoryID]; !ok {
				return fmt.Errorf("category %d does not exist", s.CategoryID)
			}
			st.seq.split++
			s.ID = st.seq.split
			s.TransactionID = t.ID
			s.Amount = s.Amount.Round(amountScale)

			stored := *s
			stored.CategoryName = ""
			st.splits[stored.ID] = stored
		}

		row.UpdatedAt = r.store.timestamp()
		st.transactions[t.ID] = row
		t.UpdatedAt = row.UpdatedAt
		return nil
	})
}

func (r *transactionRepository) ListByBusiness(ctx context.Context, businessID int64) ([]*transaction.Transaction, error) {
	return r.list(func(t transaction.Transaction) bool {
		return t.BusinessID == businessID
	})
}

func (r *transactionRepository) ListByAccount(ctx context.Context, businessID, accountID int64) ([]*transaction.Transaction, error) {
	return r.list(func(t transaction.Transaction) bool {
		return t.BusinessID == businessID && t.AccountID == accountID
	})
}

func (r *transactionRepository) list(match func(transaction.Transaction) bool) ([]*transaction.Transaction, error) {
	out := []*transaction.Transaction{}
	err := r.read(func(st *state) error {
		byTx := make(map[int64][]transaction.Split)
		for _, s := range st.splits {
			s.CategoryName = st.categories[s.CategoryID].Name
			byTx[s.TransactionID] = append(byTx[s.TransactionID], s)
		}

		for _, row := range st.transactions {
			if !match(row) {
				continue
			}
			t := row
			t.AccountName = st.accounts[t.AccountID].Name
			if t.VendorID != nil {
				if v, ok := st.vendors[*t.VendorID]; ok {
					name := v.Name
					t.VendorName = &name
				}
			}
			splits := byTx[t.ID]
			slices.SortFunc(splits, func(a, b transaction.Split) int { return cmp.Compare(a.ID, b.ID) })
			t.ReplaceSplits(splits)
			out = append(out, &t)
		}
		return nil
	})

	slices.SortFunc(out, func(a, b *transaction.Transaction) int {
		switch {
		case a.PostedAt.After(b.PostedAt):
			return -1
		case a.PostedAt.Before(b.PostedAt):
			return 1
		}
		if c := b.CreatedAt.Compare(a.CreatedAt); c != 0 {
			return c
		}
		return cmp.Compare(b.ID, a.ID)
	})
	return out, err
}

func (r *transactionRepository) DeleteByBusiness(ctx context.Context, businessID int64) error {
	return r.write(func(st *state) error {
		for id, t := range st.transactions {
			if t.BusinessID != businessID {
				continue
			}
			for sid, s := range st.splits {
				if s.TransactionID == id {
					delete(st.splits, sid)
				}
			}
			delete(st.transactions, id)
		}
		return nil
	})
}

// Ensure repositories implement the domain interfaces.
var (
	_ business.Repository    = (*businessRepository)(nil)
	_ account.Repository     = (*accountRepository)(nil)
	_ category.Repository    = (*categoryRepository)(nil)
	_ vendor.Repository      = (*vendorRepository)(nil)
	_ transaction.Repository = (*transactionRepository)(nil)
)
