package memory

import (
	"bytes"
	"context"
	"regexp"
	"sort"
	"strings"

	"pocketbook/db/generated"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgtype"
	"github.com/shopspring/decimal"
)

// sortTransactions orders by booked_on DESC, created_at DESC, id DESC.
func sortTransactions(items []generated.Transaction) {
	sort.Slice(items, func(i, j int) bool {
		a, b := items[i], items[j]
		if !a.BookedOn.Time.Equal(b.BookedOn.Time) {
			return a.BookedOn.Time.After(b.BookedOn.Time)
		}
		if !a.CreatedAt.Time.Equal(b.CreatedAt.Time) {
			return a.CreatedAt.Time.After(b.CreatedAt.Time)
		}
		return bytes.Compare(a.ID.Bytes[:], b.ID.Bytes[:]) > 0
	})
}

func toDecimal(n pgtype.Numeric) decimal.Decimal {
	if n.Int == nil {
		return decimal.Zero
	}
	return decimal.NewFromBigInt(n.Int, n.Exp)
}

// likePattern compiles an ILIKE pattern with backslash escapes.
func likePattern(pattern string) (*regexp.Regexp, error) {
	var b strings.Builder
	b.WriteString("(?is)^")
	escaped := false
	for _, r := range pattern {
		switch {
		case escaped:
			b.WriteString(regexp.QuoteMeta(string(r)))
			escaped = false
		case r == '\\':
			escaped = true
		case r == '%':
			b.WriteString(".*")
		case r == '_':
			b.WriteString(".")
		default:
			b.WriteString(regexp.QuoteMeta(string(r)))
		}
	}
	b.WriteString("$")
	return regexp.Compile(b.String())
}

type transactionFilter struct {
	params generated.CountTransactionsParams
	search *regexp.Regexp
}

func newTransactionFilter(p generated.CountTransactionsParams) (*transactionFilter, error) {
	f := &transactionFilter{params: p}
	if p.SearchPattern.Valid {
		re, err := likePattern(p.SearchPattern.String)
		if err != nil {
			return nil, err
		}
		f.search = re
	}
	return f, nil
}

func (f *transactionFilter) matches(t generated.Transaction) bool {
	p := f.params
	if t.IsArchived {
		return false
	}
	if p.AccountID.Valid && t.AccountID.Bytes != p.AccountID.Bytes {
		return false
	}
	if p.CategoryID.Valid && t.CategoryID.Bytes != p.CategoryID.Bytes {
		return false
	}
	if p.Type.Valid && t.Type != p.Type.String {
		return false
	}
	if p.BookedFrom.Valid && t.BookedOn.Time.Before(p.BookedFrom.Time) {
		return false
	}
	if p.BookedTo.Valid && t.BookedOn.Time.After(p.BookedTo.Time) {
		return false
	}
	if p.MinAmount.Valid && toDecimal(t.Amount).LessThan(toDecimal(p.MinAmount)) {
		return false
	}
	if p.MaxAmount.Valid && toDecimal(t.Amount).GreaterThan(toDecimal(p.MaxAmount)) {
		return false
	}
	if f.search != nil {
		inNote := f.search.MatchString(t.Note)
		inMerchant := t.Merchant.Valid && f.search.MatchString(t.Merchant.String)
		if !inNote && !inMerchant {
			return false
		}
	}
	return true
}

func (q *queries) filtered(ctx context.Context, p generated.CountTransactionsParams) ([]generated.Transaction, error) {
	filter, err := newTransactionFilter(p)
	if err != nil {
		return nil, err
	}
	var items []generated.Transaction
	err = q.with(ctx, func(d *dataset) error {
		for _, t := range d.transactions {
			if filter.matches(t) {
				items = append(items, t)
			}
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	sortTransactions(items)
	return items, nil
}

func (q *queries) ArchiveTransactions(ctx context.Context, ids []pgtype.UUID) ([]pgtype.UUID, error) {
	var archived []pgtype.UUID
	err := q.write(ctx, func(d *dataset) error {
		for id := range idSet(ids) {
			t, ok := d.transactions[id]
			if !ok || t.IsArchived {
				continue
			}
			t.IsArchived = true
			d.transactions[id] = t
			archived = append(archived, t.ID)
		}
		return nil
	})
	return archived, err
}

func (q *queries) ArchiveTransactionsByAccounts(ctx context.Context, accountIds []pgtype.UUID) (int64, error) {
	var n int64
	err := q.write(ctx, func(d *dataset) error {
		set := idSet(accountIds)
		for id, t := range d.transactions {
			if _, ok := set[t.AccountID.Bytes]; !ok || t.IsArchived {
				continue
			}
			t.IsArchived = true
			d.transactions[id] = t
			n++
		}
		return nil
	})
	return n, err
}

func (q *queries) CountTransactions(ctx context.Context, arg generated.CountTransactionsParams) (int64, error) {
	items, err := q.filtered(ctx, arg)
	if err != nil {
		return 0, err
	}
	return int64(len(items)), nil
}

func (q *queries) CreateTransaction(ctx context.Context, arg generated.CreateTransactionParams) (generated.Transaction, error) {
	var created generated.Transaction
	err := q.write(ctx, func(d *dataset) error {
		if _, ok := d.transactions[arg.ID.Bytes]; ok {
			return uniqueViolation("transactions")
		}
		if err := checkTransactionRefs(d, arg.AccountID, arg.CategoryID); err != nil {
			return err
		}
		created = generated.Transaction{
			ID:         arg.ID,
			AccountID:  arg.AccountID,
			CategoryID: arg.CategoryID,
			Type:       arg.Type,
			BookedOn:   arg.BookedOn,
			Amount:     arg.Amount,
			Note:       arg.Note,
			Merchant:   arg.Merchant,
			CreatedAt:  arg.CreatedAt,
		}
		d.transactions[arg.ID.Bytes] = created
		return nil
	})
	return created, err
}

func checkTransactionRefs(d *dataset, accountID, categoryID pgtype.UUID) error {
	if _, ok := d.accounts[accountID.Bytes]; !ok {
		return foreignKeyViolation("transactions", "transactions_account_id_fkey")
	}
	if _, ok := d.categories[categoryID.Bytes]; !ok {
		return foreignKeyViolation("transactions", "transactions_category_id_fkey")
	}
	return nil
}

func (q *queries) DeleteTransactions(ctx context.Context, ids []pgtype.UUID) (int64, error) {
	var n int64
	err := q.write(ctx, func(d *dataset) error {
		for id := range idSet(ids) {
			if _, ok := d.transactions[id]; ok {
				delete(d.transactions, id)
				n++
			}
		}
		return nil
	})
	return n, err
}

func (q *queries) GetTransaction(ctx context.Context, id pgtype.UUID) (generated.Transaction, error) {
	t, err := q.GetTransactionIncludingArchived(ctx, id)
	if err == nil && t.IsArchived {
		return generated.Transaction{}, pgx.ErrNoRows
	}
	return t, err
}

func (q *queries) GetTransactionIncludingArchived(ctx context.Context, id pgtype.UUID) (generated.Transaction, error) {
	var found generated.Transaction
	err := q.with(ctx, func(d *dataset) error {
		t, ok := d.transactions[id.Bytes]
		if !ok {
			return pgx.ErrNoRows
		}
		found = t
		return nil
	})
	return found, err
}

func (q *queries) ListTransactionsByAccount(ctx context.Context, accountID pgtype.UUID) ([]generated.Transaction, error) {
	return q.filtered(ctx, generated.CountTransactionsParams{AccountID: accountID})
}

func (q *queries) ListTransactionsPage(ctx context.Context, arg generated.ListTransactionsPageParams) ([]generated.Transaction, error) {
	items, err := q.filtered(ctx, generated.CountTransactionsParams{
		AccountID:     arg.AccountID,
		CategoryID:    arg.CategoryID,
		Type:          arg.Type,
		BookedFrom:    arg.BookedFrom,
		BookedTo:      arg.BookedTo,
		MinAmount:     arg.MinAmount,
		MaxAmount:     arg.MaxAmount,
		SearchPattern: arg.SearchPattern,
	})
	if err != nil {
		return nil, err
	}

	offset, limit := max(arg.Offset, 0), max(arg.Limit, 0)
	total := int64(len(items))
	if offset >= total {
		return nil, nil
	}
	// offset < total here, so comparing against the remainder cannot overflow
	end := total
	if limit < total-offset {
		end = offset + limit
	}
	return items[offset:end], nil
}

func (q *queries) ReassignTransactionsCategory(ctx context.Context, arg generated.ReassignTransactionsCategoryParams) (int64, error) {
	var n int64
	err := q.write(ctx, func(d *dataset) error {
		if _, ok := d.categories[arg.CategoryID.Bytes]; !ok {
			return foreignKeyViolation("transactions", "transactions_category_id_fkey")
		}
		from := idSet(arg.FromCategoryIds)
		for id, t := range d.transactions {
			if _, ok := from[t.CategoryID.Bytes]; !ok {
				continue
			}
			t.CategoryID = arg.CategoryID
			d.transactions[id] = t
			n++
		}
		return nil
	})
	return n, err
}

func (q *queries) TransactionsExist(ctx context.Context, ids []pgtype.UUID) (bool, error) {
	var exists bool
	err := q.with(ctx, func(d *dataset) error {
		for id := range idSet(ids) {
			if _, ok := d.transactions[id]; ok {
				exists = true
				break
			}
		}
		return nil
	})
	return exists, err
}

func (q *queries) UpdateTransaction(ctx context.Context, arg generated.UpdateTransactionParams) (generated.Transaction, error) {
	var updated generated.Transaction
	err := q.write(ctx, func(d *dataset) error {
		t, ok := d.transactions[arg.ID.Bytes]
		if !ok || t.IsArchived {
			return pgx.ErrNoRows
		}
		if err := checkTransactionRefs(d, arg.AccountID, arg.CategoryID); err != nil {
			return err
		}
		t.AccountID = arg.AccountID
		t.CategoryID = arg.CategoryID
		t.Type = arg.Type
		t.BookedOn = arg.BookedOn
		t.Amount = arg.Amount
		t.Note = arg.Note
		t.Merchant = arg.Merchant
		d.transactions[arg.ID.Bytes] = t
		updated = t
		return nil
	})
	return updated, err
}
