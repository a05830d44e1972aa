package store

import (
	"context"
	"fmt"

	"pocketbook/db/generated"
	"pocketbook/internal/events"

	"github.com/google/uuid"
)

// ArchiveAccounts archives the given accounts and every transaction booked
// on them as one unit of work. Unknown ids are ignored and already archived
// accounts stay archived. The published event names only the accounts
// this call archived.
func (s *Store) ArchiveAccounts(ctx context.Context, ids []uuid.UUID) error {
	ids = distinctIDs(ids)
	if len(ids) == 0 {
		return nil
	}

	var archived []uuid.UUID
	err := s.runner.InTx(ctx, func(q generated.Querier) error {
		targets := pgUUIDs(ids)

		accounts, err := q.ListAccountsByIDsIncludingArchived(ctx, targets)
		if err != nil {
			return fmt.Errorf("find accounts: %w", err)
		}
		if len(accounts) == 0 {
			return nil
		}
		for _, a := range accounts {
			if !a.IsArchived {
				archived = append(archived, uuid.UUID(a.ID.Bytes))
			}
		}

		if _, err := q.ArchiveAccounts(ctx, targets); err != nil {
			return fmt.Errorf("archive accounts: %w", err)
		}

		if _, err := q.ArchiveTransactionsByAccounts(ctx, targets); err != nil {
			return fmt.Errorf("archive account transactions: %w", err)
		}
		return nil
	})
	if err != nil {
		return err
	}

	s.publish(ctx, events.AccountsArchived, archived)
	return nil
}

// ArchiveCategories archives the given categories as one unit of work.
// Their transactions are moved to the Uncategorized category, which is
// created or restored first. The Uncategorized id itself is skipped.
func (s *Store) ArchiveCategories(ctx context.Context, ids []uuid.UUID) error {
	targets := categoryTargets(ids)
	if len(targets) == 0 {
		return nil
	}

	var archived []uuid.UUID
	err := s.runner.InTx(ctx, func(q generated.Querier) error {
		var err error
		archived, err = s.archiveCategories(ctx, q, targets)
		return err
	})
	if err != nil {
		return err
	}

	s.publish(ctx, events.CategoriesArchived, archived)
	return nil
}

// archiveCategories runs inside the caller's unit of work and returns the
// ids it moved from active to archived. targets must not contain the
// Uncategorized id.
func (s *Store) archiveCategories(ctx context.Context, q generated.Querier, targets []uuid.UUID) ([]uuid.UUID, error) {
	pgTargets := pgUUIDs(targets)

	categories, err := q.ListCategoriesByIDsIncludingArchived(ctx, pgTargets)
	if err != nil {
		return nil, fmt.Errorf("find categories: %w", err)
	}
	if len(categories) == 0 {
		return nil, nil
	}
	var archived []uuid.UUID
	for _, c := range categories {
		if !c.IsArchived {
			archived = append(archived, uuid.UUID(c.ID.Bytes))
		}
	}

	// Uncategorized must be active before anything points at it.
	uncategorized, err := s.ensureUncategorized(ctx, q)
	if err != nil {
		return nil, err
	}

	_, err = q.ReassignTransactionsCategory(ctx, generated.ReassignTransactionsCategoryParams{
		CategoryID:      pgUUID(uncategorized.ID),
		FromCategoryIds: pgTargets,
	})
	if err != nil {
		return nil, fmt.Errorf("reassign transactions: %w", err)
	}

	if _, err := q.ArchiveCategories(ctx, pgTargets); err != nil {
		return nil, fmt.Errorf("archive categories: %w", err)
	}
	return archived, nil
}

func categoryTargets(ids []uuid.UUID) []uuid.UUID {
	targets := make([]uuid.UUID, 0, len(ids))
	for _, id := range distinctIDs(ids) {
		if id != UncategorizedCategoryID {
			targets = append(targets, id)
		}
	}
	return targets
}

// EnsureUncategorized creates the Uncategorized category if it is missing
// and un-archives it if needed.
func (s *Store) EnsureUncategorized(ctx context.Context) (Category, error) {
	return s.ensureUncategorized(ctx, s.runner.Queries())
}

func (s *Store) ensureUncategorized(ctx context.Context, q generated.Querier) (Category, error) {
	row, err := q.UpsertActiveCategory(ctx, generated.UpsertActiveCategoryParams{
		ID:        pgUUID(UncategorizedCategoryID),
		Name:      UncategorizedCategoryName,
		Type:      string(EntryTypeExpense),
		SortOrder: 0,
		CreatedAt: pgTimestamptz(s.timestamp()),
	})
	if err != nil {
		return Category{}, fmt.Errorf("ensure uncategorized category: %w", err)
	}
	return toCategory(row), nil
}

// ArchiveTransactions archives the given transactions. Unknown or already
// archived ids are ignored and left out of the published event.
func (s *Store) ArchiveTransactions(ctx context.Context, ids []uuid.UUID) error {
	ids = distinctIDs(ids)
	if len(ids) == 0 {
		return nil
	}

	rows, err := s.runner.Queries().ArchiveTransactions(ctx, pgUUIDs(ids))
	if err != nil {
		return fmt.Errorf("archive transactions: %w", err)
	}

	archived := make([]uuid.UUID, 0, len(rows))
	for _, id := range rows {
		archived = append(archived, uuid.UUID(id.Bytes))
	}
	s.publish(ctx, events.TransactionsArchived, archived)
	return nil
}
