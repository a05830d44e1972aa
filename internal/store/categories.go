package store

import (
	"context"
	"fmt"

	"pocketbook/db/generated"
	"pocketbook/internal/events"

	"github.com/google/uuid"
)

func (s *Store) ListCategories(ctx context.Context) ([]Category, error) {
	rows, err := s.runner.Queries().ListCategories(ctx)
	if err != nil {
		return nil, fmt.Errorf("list categories: %w", err)
	}
	categories := make([]Category, 0, len(rows))
	for _, row := range rows {
		categories = append(categories, toCategory(row))
	}
	return categories, nil
}

// GetCategory returns an active category. Reading the Uncategorized
// category heals it if it was archived or is missing.
func (s *Store) GetCategory(ctx context.Context, id uuid.UUID) (Category, error) {
	if id == UncategorizedCategoryID {
		return s.EnsureUncategorized(ctx)
	}

	row, err := s.runner.Queries().GetCategory(ctx, pgUUID(id))
	if isNoRows(err) {
		return Category{}, ErrNotFound
	}
	if err != nil {
		return Category{}, fmt.Errorf("get category: %w", err)
	}
	return toCategory(row), nil
}

func (s *Store) CreateCategory(ctx context.Context, in CategoryInput) (Category, error) {
	row, err := s.runner.Queries().CreateCategory(ctx, generated.CreateCategoryParams{
		ID:         pgUUID(uuid.New()),
		Name:       in.Name,
		Type:       string(in.Type),
		SortOrder:  int32(in.SortOrder),
		IsArchived: in.IsArchived,
		CreatedAt:  pgTimestamptz(s.timestamp()),
	})
	if err != nil {
		return Category{}, fmt.Errorf("create category: %w", err)
	}
	return toCategory(row), nil
}

// UpdateCategory replaces name, type and sort order of an active category.
// When in.IsArchived is set the category is archived in the same unit of
// work, reassigning its transactions first. The Uncategorized category is
// never archived.
func (s *Store) UpdateCategory(ctx context.Context, id uuid.UUID, in CategoryInput) (Category, error) {
	var (
		updated  Category
		archived []uuid.UUID
	)
	err := s.runner.InTx(ctx, func(q generated.Querier) error {
		if id == UncategorizedCategoryID {
			if _, err := s.ensureUncategorized(ctx, q); err != nil {
				return err
			}
		}

		row, err := q.UpdateCategory(ctx, generated.UpdateCategoryParams{
			ID:        pgUUID(id),
			Name:      in.Name,
			Type:      string(in.Type),
			SortOrder: int32(in.SortOrder),
		})
		if isNoRows(err) {
			return ErrNotFound
		}
		if err != nil {
			return fmt.Errorf("update category: %w", err)
		}
		updated = toCategory(row)

		if !in.IsArchived || id == UncategorizedCategoryID {
			return nil
		}
		archived, err = s.archiveCategories(ctx, q, []uuid.UUID{id})
		if err != nil {
			return err
		}
		updated.IsArchived = true
		return nil
	})
	if err != nil {
		return Category{}, err
	}

	s.publish(ctx, events.CategoriesArchived, archived)
	return updated, nil
}

// DeleteCategory archives one active category, moving its transactions to
// Uncategorized. Deleting Uncategorized is accepted and ignored.
func (s *Store) DeleteCategory(ctx context.Context, id uuid.UUID) error {
	if _, err := s.GetCategory(ctx, id); err != nil {
		return err
	}
	return s.ArchiveCategories(ctx, []uuid.UUID{id})
}
