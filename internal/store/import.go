package store

import (
	"context"
	"fmt"
	"strings"

	"pocketbook/db/generated"

	"github.com/google/uuid"
)

// duplicateKey identifies an imported row within one account.
func duplicateKey(t Transaction) string {
	return strings.Join([]string{
		t.BookedOn.Format("2006-01-02"),
		t.Amount.StringFixed(moneyPlaces),
		strings.ToLower(t.Note),
	}, "|")
}

// ImportTransactions books rows onto one active account in a single unit of
// work. Rows matching an active transaction of the account (same date,
// amount and note) or an earlier row of the same batch are skipped. Rows
// whose category is gone by the time the unit of work runs are booked on
// Uncategorized. It returns the created transactions and the number of
// duplicates.
func (s *Store) ImportTransactions(ctx context.Context, accountID uuid.UUID, rows []TransactionInput) ([]Transaction, int, error) {
	created := make([]Transaction, 0, len(rows))
	duplicates := 0

	err := s.runner.InTx(ctx, func(q generated.Querier) error {
		if _, err := q.GetAccountForShare(ctx, pgUUID(accountID)); err != nil {
			if isNoRows(err) {
				return ErrNotFound
			}
			return fmt.Errorf("lock account: %w", err)
		}

		categories, err := s.lockImportCategories(ctx, q, rows)
		if err != nil {
			return err
		}

		existing, err := q.ListTransactionsByAccount(ctx, pgUUID(accountID))
		if err != nil {
			return fmt.Errorf("list account transactions: %w", err)
		}
		seen := make(map[string]struct{}, len(existing)+len(rows))
		for _, t := range toTransactions(existing) {
			seen[duplicateKey(t)] = struct{}{}
		}

		now := pgTimestamptz(s.timestamp())
		for _, in := range rows {
			candidate := Transaction{BookedOn: DateOf(in.BookedOn), Amount: roundMoney(in.Amount), Note: in.Note}
			key := duplicateKey(candidate)
			if _, ok := seen[key]; ok {
				duplicates++
				continue
			}
			seen[key] = struct{}{}

			row, err := q.CreateTransaction(ctx, generated.CreateTransactionParams{
				ID:         pgUUID(uuid.New()),
				AccountID:  pgUUID(accountID),
				CategoryID: pgUUID(categories[in.CategoryID]),
				Type:       string(in.Type),
				BookedOn:   pgDate(in.BookedOn),
				Amount:     pgNumeric(candidate.Amount),
				Note:       in.Note,
				Merchant:   pgText(in.Merchant),
				CreatedAt:  now,
			})
			if err != nil {
				return fmt.Errorf("import transaction: %w", err)
			}
			created = append(created, toTransaction(row))
		}
		return nil
	})
	if err != nil {
		return nil, 0, err
	}
	return created, duplicates, nil
}

// lockImportCategories share-locks every category the rows use and maps
// each one to the category to book on.
func (s *Store) lockImportCategories(ctx context.Context, q generated.Querier, rows []TransactionInput) (map[uuid.UUID]uuid.UUID, error) {
	resolved := make(map[uuid.UUID]uuid.UUID)
	for _, in := range rows {
		if _, ok := resolved[in.CategoryID]; ok {
			continue
		}
		_, err := q.GetCategoryForShare(ctx, pgUUID(in.CategoryID))
		switch {
		case err == nil:
			resolved[in.CategoryID] = in.CategoryID
		case isNoRows(err):
			uncategorized, err := s.ensureUncategorized(ctx, q)
			if err != nil {
				return nil, err
			}
			resolved[in.CategoryID] = uncategorized.ID
		default:
			return nil, fmt.Errorf("lock category: %w", err)
		}
	}
	return resolved, nil
}
