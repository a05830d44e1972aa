package memory

import (
	"bytes"
	"context"
	"sort"

	"pocketbook/db/generated"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgtype"
)

func sortCategories(items []generated.Category) {
	sort.Slice(items, func(i, j int) bool {
		if items[i].SortOrder != items[j].SortOrder {
			return items[i].SortOrder < items[j].SortOrder
		}
		if items[i].Name != items[j].Name {
			return items[i].Name < items[j].Name
		}
		return bytes.Compare(items[i].ID.Bytes[:], items[j].ID.Bytes[:]) < 0
	})
}

func (q *queries) ArchiveCategories(ctx context.Context, ids []pgtype.UUID) (int64, error) {
	var n int64
	err := q.write(ctx, func(d *dataset) error {
		for id := range idSet(ids) {
			c, ok := d.categories[id]
			if !ok || c.IsArchived {
				continue
			}
			c.IsArchived = true
			d.categories[id] = c
			n++
		}
		return nil
	})
	return n, err
}

func (q *queries) CategoriesExist(ctx context.Context, ids []pgtype.UUID) (bool, error) {
	var exists bool
	err := q.with(ctx, func(d *dataset) error {
		for id := range idSet(ids) {
			if _, ok := d.categories[id]; ok {
				exists = true
				break
			}
		}
		return nil
	})
	return exists, err
}

func (q *queries) CreateCategory(ctx context.Context, arg generated.CreateCategoryParams) (generated.Category, error) {
	var created generated.Category
	err := q.write(ctx, func(d *dataset) error {
		if _, ok := d.categories[arg.ID.Bytes]; ok {
			return uniqueViolation("categories")
		}
		created = generated.Category{
			ID:         arg.ID,
			Name:       arg.Name,
			Type:       arg.Type,
			SortOrder:  arg.SortOrder,
			IsArchived: arg.IsArchived,
			CreatedAt:  arg.CreatedAt,
		}
		d.categories[arg.ID.Bytes] = created
		return nil
	})
	return created, err
}

// DeleteCategories fails without deleting anything while a transaction
// still references one of the categories.
func (q *queries) DeleteCategories(ctx context.Context, ids []pgtype.UUID) (int64, error) {
	var n int64
	err := q.write(ctx, func(d *dataset) error {
		set := idSet(ids)
		for _, t := range d.transactions {
			if _, ok := set[t.CategoryID.Bytes]; ok {
				return foreignKeyViolation("transactions", "transactions_category_id_fkey")
			}
		}
		for id := range set {
			if _, ok := d.categories[id]; ok {
				delete(d.categories, id)
				n++
			}
		}
		return nil
	})
	return n, err
}

func (q *queries) GetCategory(ctx context.Context, id pgtype.UUID) (generated.Category, error) {
	c, err := q.GetCategoryIncludingArchived(ctx, id)
	if err == nil && c.IsArchived {
		return generated.Category{}, pgx.ErrNoRows
	}
	return c, err
}

func (q *queries) GetCategoryForShare(ctx context.Context, id pgtype.UUID) (generated.Category, error) {
	return q.GetCategory(ctx, id)
}

func (q *queries) GetCategoryIncludingArchived(ctx context.Context, id pgtype.UUID) (generated.Category, error) {
	var found generated.Category
	err := q.with(ctx, func(d *dataset) error {
		c, ok := d.categories[id.Bytes]
		if !ok {
			return pgx.ErrNoRows
		}
		found = c
		return nil
	})
	return found, err
}

func (q *queries) ListCategories(ctx context.Context) ([]generated.Category, error) {
	var items []generated.Category
	err := q.with(ctx, func(d *dataset) error {
		for _, c := range d.categories {
			if !c.IsArchived {
				items = append(items, c)
			}
		}
		return nil
	})
	sortCategories(items)
	return items, err
}

func (q *queries) ListCategoriesByIDsIncludingArchived(ctx context.Context, ids []pgtype.UUID) ([]generated.Category, error) {
	var items []generated.Category
	err := q.with(ctx, func(d *dataset) error {
		for id := range idSet(ids) {
			if c, ok := d.categories[id]; ok {
				items = append(items, c)
			}
		}
		return nil
	})
	sortCategories(items)
	return items, err
}

func (q *queries) UpdateCategory(ctx context.Context, arg generated.UpdateCategoryParams) (generated.Category, error) {
	var updated generated.Category
	err := q.write(ctx, func(d *dataset) error {
		c, ok := d.categories[arg.ID.Bytes]
		if !ok || c.IsArchived {
			return pgx.ErrNoRows
		}
		c.Name = arg.Name
		c.Type = arg.Type
		c.SortOrder = arg.SortOrder
		d.categories[arg.ID.Bytes] = c
		updated = c
		return nil
	})
	return updated, err
}

// UpsertActiveCategory inserts the category or, if the id exists, only
// clears its archive flag.
func (q *queries) UpsertActiveCategory(ctx context.Context, arg generated.UpsertActiveCategoryParams) (generated.Category, error) {
	var result generated.Category
	err := q.write(ctx, func(d *dataset) error {
		c, ok := d.categories[arg.ID.Bytes]
		if !ok {
			c = generated.Category{
				ID:        arg.ID,
				Name:      arg.Name,
				Type:      arg.Type,
				SortOrder: arg.SortOrder,
				CreatedAt: arg.CreatedAt,
			}
		}
		c.IsArchived = false
		d.categories[arg.ID.Bytes] = c
		result = c
		return nil
	})
	return result, err
}
