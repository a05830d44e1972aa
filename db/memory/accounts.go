package memory

import (
	"bytes"
	"context"
	"sort"

	"pocketbook/db/generated"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgtype"
)

func sortAccounts(items []generated.Account) {
	sort.Slice(items, func(i, j int) bool {
		if items[i].Name != items[j].Name {
			return items[i].Name < items[j].Name
		}
		if !items[i].CreatedAt.Time.Equal(items[j].CreatedAt.Time) {
			return items[i].CreatedAt.Time.Before(items[j].CreatedAt.Time)
		}
		return bytes.Compare(items[i].ID.Bytes[:], items[j].ID.Bytes[:]) < 0
	})
}

func (q *queries) AccountsExist(ctx context.Context, ids []pgtype.UUID) (bool, error) {
	var exists bool
	err := q.with(ctx, func(d *dataset) error {
		for id := range idSet(ids) {
			if _, ok := d.accounts[id]; ok {
				exists = true
				break
			}
		}
		return nil
	})
	return exists, err
}

func (q *queries) ArchiveAccounts(ctx context.Context, ids []pgtype.UUID) (int64, error) {
	var n int64
	err := q.write(ctx, func(d *dataset) error {
		for id := range idSet(ids) {
			a, ok := d.accounts[id]
			if !ok || a.IsArchived {
				continue
			}
			a.IsArchived = true
			d.accounts[id] = a
			n++
		}
		return nil
	})
	return n, err
}

func (q *queries) CreateAccount(ctx context.Context, arg generated.CreateAccountParams) (generated.Account, error) {
	var created generated.Account
	err := q.write(ctx, func(d *dataset) error {
		if _, ok := d.accounts[arg.ID.Bytes]; ok {
			return uniqueViolation("accounts")
		}
		created = generated.Account{
			ID:        arg.ID,
			Name:      arg.Name,
			Balance:   arg.Balance,
			CreatedAt: arg.CreatedAt,
		}
		d.accounts[arg.ID.Bytes] = created
		return nil
	})
	return created, err
}

// DeleteAccounts cascades to the transactions of the deleted accounts.
func (q *queries) DeleteAccounts(ctx context.Context, ids []pgtype.UUID) (int64, error) {
	var n int64
	err := q.write(ctx, func(d *dataset) error {
		set := idSet(ids)
		for id := range set {
			if _, ok := d.accounts[id]; ok {
				delete(d.accounts, id)
				n++
			}
		}
		for id, t := range d.transactions {
			if _, ok := set[t.AccountID.Bytes]; ok {
				delete(d.transactions, id)
			}
		}
		return nil
	})
	return n, err
}

func (q *queries) GetAccount(ctx context.Context, id pgtype.UUID) (generated.Account, error) {
	a, err := q.GetAccountIncludingArchived(ctx, id)
	if err == nil && a.IsArchived {
		return generated.Account{}, pgx.ErrNoRows
	}
	return a, err
}

// GetAccountForShare needs no row lock: the store lock already serializes
// units of work.
func (q *queries) GetAccountForShare(ctx context.Context, id pgtype.UUID) (generated.Account, error) {
	return q.GetAccount(ctx, id)
}

func (q *queries) GetAccountIncludingArchived(ctx context.Context, id pgtype.UUID) (generated.Account, error) {
	var found generated.Account
	err := q.with(ctx, func(d *dataset) error {
		a, ok := d.accounts[id.Bytes]
		if !ok {
			return pgx.ErrNoRows
		}
		found = a
		return nil
	})
	return found, err
}

func (q *queries) ListAccounts(ctx context.Context) ([]generated.Account, error) {
	var items []generated.Account
	err := q.with(ctx, func(d *dataset) error {
		for _, a := range d.accounts {
			if !a.IsArchived {
				items = append(items, a)
			}
		}
		return nil
	})
	sortAccounts(items)
	return items, err
}

func (q *queries) ListAccountsByIDsIncludingArchived(ctx context.Context, ids []pgtype.UUID) ([]generated.Account, error) {
	var items []generated.Account
	err := q.with(ctx, func(d *dataset) error {
		for id := range idSet(ids) {
			if a, ok := d.accounts[id]; ok {
				items = append(items, a)
			}
		}
		return nil
	})
	sortAccounts(items)
	return items, err
}

func (q *queries) UpdateAccount(ctx context.Context, arg generated.UpdateAccountParams) (generated.Account, error) {
	var updated generated.Account
	err := q.write(ctx, func(d *dataset) error {
		a, ok := d.accounts[arg.ID.Bytes]
		if !ok || a.IsArchived {
			return pgx.ErrNoRows
		}
		a.Name = arg.Name
		a.Balance = arg.Balance
		d.accounts[arg.ID.Bytes] = a
		updated = a
		return nil
	})
	return updated, err
}
