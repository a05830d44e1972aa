package memory

import (
	"context"
	"errors"
	"math"
	"testing"
	"time"

	"pocketbook/db/generated"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgtype"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newID() pgtype.UUID {
	return pgtype.UUID{Bytes: uuid.New(), Valid: true}
}

func now() pgtype.Timestamptz {
	return pgtype.Timestamptz{Time: time.Now().UTC(), Valid: true}
}

func pgCode(t *testing.T, err error) string {
	t.Helper()
	var pgErr *pgconn.PgError
	require.True(t, errors.As(err, &pgErr), "expected *pgconn.PgError, got %v", err)
	return pgErr.Code
}

func TestLikePattern(t *testing.T) {
	tests := []struct {
		pattern string
		input   string
		match   bool
	}{
		{pattern: "%coffee%", input: "Morning COFFEE run", match: true},
		{pattern: "%coffee%", input: "tea", match: false},
		{pattern: "c_t", input: "cat", match: true},
		{pattern: "c_t", input: "coat", match: false},
		{pattern: `%100\%%`, input: "100% cotton", match: true},
		{pattern: `%100\%%`, input: "1000 cotton", match: false},
		{pattern: `%a\_b%`, input: "xa_by", match: true},
		{pattern: `%a\_b%`, input: "xacby", match: false},
		{pattern: `%\\%`, input: `back\slash`, match: true},
		{pattern: "%(x)%", input: "a (x) b", match: true},
		{pattern: "%line%", input: "first\nline", match: true},
	}

	for _, tt := range tests {
		t.Run(tt.pattern+" "+tt.input, func(t *testing.T) {
			re, err := likePattern(tt.pattern)
			require.NoError(t, err)
			assert.Equal(t, tt.match, re.MatchString(tt.input))
		})
	}
}

func TestNewSeedsUncategorized(t *testing.T) {
	q := New().Queries()

	categories, err := q.ListCategories(context.Background())
	require.NoError(t, err)
	require.Len(t, categories, 1)
	assert.Equal(t, uncategorizedID, uuid.UUID(categories[0].ID.Bytes))
	assert.Equal(t, "Uncategorized", categories[0].Name)
}

func TestConstraintErrors(t *testing.T) {
	ctx := context.Background()
	q := New().Queries()

	account, err := q.CreateAccount(ctx, generated.CreateAccountParams{ID: newID(), Name: "Cash", CreatedAt: now()})
	require.NoError(t, err)

	t.Run("duplicate primary key", func(t *testing.T) {
		_, err := q.CreateAccount(ctx, generated.CreateAccountParams{ID: account.ID, Name: "Again", CreatedAt: now()})

		assert.Equal(t, "23505", pgCode(t, err))
	})

	t.Run("unknown account reference", func(t *testing.T) {
		_, err := q.CreateTransaction(ctx, generated.CreateTransactionParams{
			ID:         newID(),
			AccountID:  newID(),
			CategoryID: pgtype.UUID{Bytes: uncategorizedID, Valid: true},
			CreatedAt:  now(),
		})

		assert.Equal(t, "23503", pgCode(t, err))
	})

	t.Run("category still referenced", func(t *testing.T) {
		_, err := q.CreateTransaction(ctx, generated.CreateTransactionParams{
			ID:         newID(),
			AccountID:  account.ID,
			CategoryID: pgtype.UUID{Bytes: uncategorizedID, Valid: true},
			CreatedAt:  now(),
		})
		require.NoError(t, err)

		_, err = q.DeleteCategories(ctx, []pgtype.UUID{{Bytes: uncategorizedID, Valid: true}})
		assert.Equal(t, "23503", pgCode(t, err))
	})

	t.Run("missing row", func(t *testing.T) {
		_, err := q.GetAccount(ctx, newID())

		assert.ErrorIs(t, err, pgx.ErrNoRows)
	})
}

func TestInTx(t *testing.T) {
	ctx := context.Background()
	s := New()

	t.Run("failure restores the previous state", func(t *testing.T) {
		err := s.InTx(ctx, func(q generated.Querier) error {
			if _, err := q.CreateAccount(ctx, generated.CreateAccountParams{ID: newID(), Name: "Lost", CreatedAt: now()}); err != nil {
				return err
			}
			return errors.New("abort")
		})
		require.Error(t, err)

		accounts, err := s.Queries().ListAccounts(ctx)
		require.NoError(t, err)
		assert.Empty(t, accounts)
	})

	t.Run("success keeps the changes", func(t *testing.T) {
		err := s.InTx(ctx, func(q generated.Querier) error {
			_, err := q.CreateAccount(ctx, generated.CreateAccountParams{ID: newID(), Name: "Kept", CreatedAt: now()})
			return err
		})
		require.NoError(t, err)

		accounts, err := s.Queries().ListAccounts(ctx)
		require.NoError(t, err)
		assert.Len(t, accounts, 1)
	})

	t.Run("cancelled context does not run", func(t *testing.T) {
		cancelled, cancel := context.WithCancel(ctx)
		cancel()

		called := false
		err := s.InTx(cancelled, func(generated.Querier) error {
			called = true
			return nil
		})
		assert.ErrorIs(t, err, context.Canceled)
		assert.False(t, called)
	})
}

func TestInReadTx(t *testing.T) {
	ctx := context.Background()
	s := New()
	account, err := s.Queries().CreateAccount(ctx, generated.CreateAccountParams{ID: newID(), Name: "Cash", CreatedAt: now()})
	require.NoError(t, err)

	err = s.InReadTx(ctx, func(q generated.Querier) error {
		found, err := q.GetAccountForShare(ctx, account.ID)
		require.NoError(t, err)
		assert.Equal(t, "Cash", found.Name)

		_, err = q.ArchiveAccounts(ctx, []pgtype.UUID{account.ID})
		return err
	})
	assert.Equal(t, "25006", pgCode(t, err))

	found, err := s.Queries().GetAccount(ctx, account.ID)
	require.NoError(t, err)
	assert.False(t, found.IsArchived)
}

func TestArchiveTransactionsReturnsChangedRows(t *testing.T) {
	ctx := context.Background()
	q := New().Queries()

	account, err := q.CreateAccount(ctx, generated.CreateAccountParams{ID: newID(), Name: "Cash", CreatedAt: now()})
	require.NoError(t, err)
	tx, err := q.CreateTransaction(ctx, generated.CreateTransactionParams{
		ID:         newID(),
		AccountID:  account.ID,
		CategoryID: pgtype.UUID{Bytes: uncategorizedID, Valid: true},
		Type:       "expense",
		BookedOn:   pgtype.Date{Time: time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC), Valid: true},
		CreatedAt:  now(),
	})
	require.NoError(t, err)

	archived, err := q.ArchiveTransactions(ctx, []pgtype.UUID{tx.ID, newID()})
	require.NoError(t, err)
	assert.Equal(t, []pgtype.UUID{tx.ID}, archived)

	archived, err = q.ArchiveTransactions(ctx, []pgtype.UUID{tx.ID})
	require.NoError(t, err)
	assert.Empty(t, archived)
}

func TestListTransactionsPageOrdering(t *testing.T) {
	ctx := context.Background()
	q := New().Queries()

	account, err := q.CreateAccount(ctx, generated.CreateAccountParams{ID: newID(), Name: "Cash", CreatedAt: now()})
	require.NoError(t, err)

	base := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)
	for i, day := range []int{3, 1, 2} {
		_, err := q.CreateTransaction(ctx, generated.CreateTransactionParams{
			ID:         newID(),
			AccountID:  account.ID,
			CategoryID: pgtype.UUID{Bytes: uncategorizedID, Valid: true},
			Type:       "expense",
			BookedOn:   pgtype.Date{Time: base.AddDate(0, 0, day), Valid: true},
			CreatedAt:  pgtype.Timestamptz{Time: base.Add(time.Duration(i) * time.Hour), Valid: true},
		})
		require.NoError(t, err)
	}

	page, err := q.ListTransactionsPage(ctx, generated.ListTransactionsPageParams{Limit: 2, Offset: 1})
	require.NoError(t, err)
	require.Len(t, page, 2)
	assert.Equal(t, base.AddDate(0, 0, 2), page[0].BookedOn.Time)
	assert.Equal(t, base.AddDate(0, 0, 1), page[1].BookedOn.Time)
}

func TestListTransactionsPageBounds(t *testing.T) {
	ctx := context.Background()
	q := New().Queries()

	account, err := q.CreateAccount(ctx, generated.CreateAccountParams{ID: newID(), Name: "Cash", CreatedAt: now()})
	require.NoError(t, err)
	for i := 0; i < 3; i++ {
		_, err := q.CreateTransaction(ctx, generated.CreateTransactionParams{
			ID:         newID(),
			AccountID:  account.ID,
			CategoryID: pgtype.UUID{Bytes: uncategorizedID, Valid: true},
			Type:       "expense",
			BookedOn:   pgtype.Date{Time: time.Date(2024, 1, i+1, 0, 0, 0, 0, time.UTC), Valid: true},
			CreatedAt:  now(),
		})
		require.NoError(t, err)
	}

	tests := []struct {
		name     string
		limit    int64
		offset   int64
		expected int
	}{
		{name: "offset past the end", limit: 100, offset: math.MaxInt64, expected: 0},
		{name: "limit overflowing the offset", limit: math.MaxInt64, offset: 1, expected: 2},
		{name: "negative offset", limit: 2, offset: -100, expected: 2},
		{name: "negative limit", limit: -1, offset: 0, expected: 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			page, err := q.ListTransactionsPage(ctx, generated.ListTransactionsPageParams{Limit: tt.limit, Offset: tt.offset})

			require.NoError(t, err)
			assert.Len(t, page, tt.expected)
		})
	}
}
