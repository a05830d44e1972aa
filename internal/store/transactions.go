package store

import (
	"context"
	"fmt"
	"math"
	"strings"

	"pocketbook/db/generated"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgtype"
)

// likeEscaper makes LIKE wildcards in a search term match literally.
var likeEscaper = strings.NewReplacer(`\`, `\\`, `%`, `\%`, `_`, `\_`)

// SearchPattern turns a search term into an ILIKE substring pattern.
func SearchPattern(term string) string {
	return "%" + likeEscaper.Replace(term) + "%"
}

// PageOffset returns the number of rows skipped for a 1-based page. It
// saturates at math.MaxInt64 so a huge page lands past the end.
func PageOffset(page, pageSize int) int64 {
	if page < 1 || pageSize < 1 {
		return 0
	}
	skipped, size := int64(page-1), int64(pageSize)
	if skipped > math.MaxInt64/size {
		return math.MaxInt64
	}
	return skipped * size
}

func filterParams(f *TransactionFilter) generated.CountTransactionsParams {
	var p generated.CountTransactionsParams
	if f == nil {
		return p
	}
	if f.AccountID != nil {
		p.AccountID = pgUUID(*f.AccountID)
	}
	if f.CategoryID != nil {
		p.CategoryID = pgUUID(*f.CategoryID)
	}
	if f.Type != nil {
		p.Type = pgtype.Text{String: string(*f.Type), Valid: true}
	}
	if f.BookedFrom != nil {
		p.BookedFrom = pgDate(*f.BookedFrom)
	}
	if f.BookedTo != nil {
		p.BookedTo = pgDate(*f.BookedTo)
	}
	if f.MinAmount != nil {
		p.MinAmount = pgNumeric(*f.MinAmount)
	}
	if f.MaxAmount != nil {
		p.MaxAmount = pgNumeric(*f.MaxAmount)
	}
	if term := strings.TrimSpace(f.SearchTerm); term != "" {
		p.SearchPattern = pgtype.Text{String: SearchPattern(term), Valid: true}
	}
	return p
}

// GetPaged returns one page of active transactions matching filter, newest
// booking first, and the size of the whole filtered set. Count and page are
// read from the same snapshot.
func (s *Store) GetPaged(ctx context.Context, page, pageSize int, filter *TransactionFilter) ([]Transaction, int64, error) {
	params := filterParams(filter)
	limit := int64(pageSize)
	if limit < 0 {
		limit = 0
	}

	var (
		rows  []generated.Transaction
		total int64
	)
	err := s.runner.InReadTx(ctx, func(q generated.Querier) error {
		var err error
		total, err = q.CountTransactions(ctx, params)
		if err != nil {
			return fmt.Errorf("count transactions: %w", err)
		}

		rows, err = q.ListTransactionsPage(ctx, generated.ListTransactionsPageParams{
			AccountID:     params.AccountID,
			CategoryID:    params.CategoryID,
			Type:          params.Type,
			BookedFrom:    params.BookedFrom,
			BookedTo:      params.BookedTo,
			MinAmount:     params.MinAmount,
			MaxAmount:     params.MaxAmount,
			SearchPattern: params.SearchPattern,
			Limit:         limit,
			Offset:        PageOffset(page, pageSize),
		})
		if err != nil {
			return fmt.Errorf("list transactions: %w", err)
		}
		return nil
	})
	if err != nil {
		return nil, 0, err
	}

	return toTransactions(rows), total, nil
}

// GetByAccountID lists the active transactions of one account in paging
// order.
func (s *Store) GetByAccountID(ctx context.Context, accountID uuid.UUID) ([]Transaction, error) {
	rows, err := s.runner.Queries().ListTransactionsByAccount(ctx, pgUUID(accountID))
	if err != nil {
		return nil, fmt.Errorf("list account transactions: %w", err)
	}
	return toTransactions(rows), nil
}

func (s *Store) GetTransaction(ctx context.Context, id uuid.UUID) (Transaction, error) {
	row, err := s.runner.Queries().GetTransaction(ctx, pgUUID(id))
	if isNoRows(err) {
		return Transaction{}, ErrNotFound
	}
	if err != nil {
		return Transaction{}, fmt.Errorf("get transaction: %w", err)
	}
	return toTransaction(row), nil
}

// GetTransactionIncludingArchived bypasses the archive filter.
func (s *Store) GetTransactionIncludingArchived(ctx context.Context, id uuid.UUID) (Transaction, error) {
	row, err := s.runner.Queries().GetTransactionIncludingArchived(ctx, pgUUID(id))
	if isNoRows(err) {
		return Transaction{}, ErrNotFound
	}
	if err != nil {
		return Transaction{}, fmt.Errorf("get transaction: %w", err)
	}
	return toTransaction(row), nil
}

// lockReferences share-locks the active account and category a write
// points at, so a concurrent archive waits for the write to commit.
func lockReferences(ctx context.Context, q generated.Querier, accountID, categoryID uuid.UUID) error {
	if _, err := q.GetAccountForShare(ctx, pgUUID(accountID)); err != nil {
		if isNoRows(err) {
			return ErrAccountUnavailable
		}
		return fmt.Errorf("lock account: %w", err)
	}
	if _, err := q.GetCategoryForShare(ctx, pgUUID(categoryID)); err != nil {
		if isNoRows(err) {
			return ErrCategoryUnavailable
		}
		return fmt.Errorf("lock category: %w", err)
	}
	return nil
}

// CreateTransaction stores a new transaction. The account and category are
// checked again inside the unit of work and ErrAccountUnavailable or
// ErrCategoryUnavailable is returned when either is gone.
func (s *Store) CreateTransaction(ctx context.Context, in TransactionInput) (Transaction, error) {
	var row generated.Transaction
	err := s.runner.InTx(ctx, func(q generated.Querier) error {
		if err := lockReferences(ctx, q, in.AccountID, in.CategoryID); err != nil {
			return err
		}

		var err error
		row, err = q.CreateTransaction(ctx, generated.CreateTransactionParams{
			ID:         pgUUID(uuid.New()),
			AccountID:  pgUUID(in.AccountID),
			CategoryID: pgUUID(in.CategoryID),
			Type:       string(in.Type),
			BookedOn:   pgDate(in.BookedOn),
			Amount:     pgNumeric(roundMoney(in.Amount)),
			Note:       in.Note,
			Merchant:   pgText(in.Merchant),
			CreatedAt:  pgTimestamptz(s.timestamp()),
		})
		if err != nil {
			return fmt.Errorf("create transaction: %w", err)
		}
		return nil
	})
	if err != nil {
		return Transaction{}, err
	}
	return toTransaction(row), nil
}

// UpdateTransaction replaces an active transaction, with the same
// reference checks as CreateTransaction.
func (s *Store) UpdateTransaction(ctx context.Context, id uuid.UUID, in TransactionInput) (Transaction, error) {
	var row generated.Transaction
	err := s.runner.InTx(ctx, func(q generated.Querier) error {
		if err := lockReferences(ctx, q, in.AccountID, in.CategoryID); err != nil {
			return err
		}

		var err error
		row, err = q.UpdateTransaction(ctx, generated.UpdateTransactionParams{
			ID:         pgUUID(id),
			AccountID:  pgUUID(in.AccountID),
			CategoryID: pgUUID(in.CategoryID),
			Type:       string(in.Type),
			BookedOn:   pgDate(in.BookedOn),
			Amount:     pgNumeric(roundMoney(in.Amount)),
			Note:       in.Note,
			Merchant:   pgText(in.Merchant),
		})
		if isNoRows(err) {
			return ErrNotFound
		}
		if err != nil {
			return fmt.Errorf("update transaction: %w", err)
		}
		return nil
	})
	if err != nil {
		return Transaction{}, err
	}
	return toTransaction(row), nil
}

// DeleteTransaction archives one active transaction.
func (s *Store) DeleteTransaction(ctx context.Context, id uuid.UUID) error {
	if _, err := s.GetTransaction(ctx, id); err != nil {
		return err
	}
	return s.ArchiveTransactions(ctx, []uuid.UUID{id})
}
