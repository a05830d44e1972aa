package store

import (
	"context"
	"fmt"
	"time"

	"pocketbook/db/generated"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

type demoData struct {
	accounts     []generated.CreateAccountParams
	categories   []generated.CreateCategoryParams
	transactions []generated.CreateTransactionParams
}

func (d demoData) accountIDs() []uuid.UUID {
	ids := make([]uuid.UUID, 0, len(d.accounts))
	for _, a := range d.accounts {
		ids = append(ids, uuid.UUID(a.ID.Bytes))
	}
	return ids
}

func (d demoData) categoryIDs() []uuid.UUID {
	ids := make([]uuid.UUID, 0, len(d.categories))
	for _, c := range d.categories {
		ids = append(ids, uuid.UUID(c.ID.Bytes))
	}
	return ids
}

func (d demoData) transactionIDs() []uuid.UUID {
	ids := make([]uuid.UUID, 0, len(d.transactions))
	for _, t := range d.transactions {
		ids = append(ids, uuid.UUID(t.ID.Bytes))
	}
	return ids
}

var (
	demoCheckingID = uuid.MustParse("11111111-1111-1111-1111-111111111111")
	demoCreditID   = uuid.MustParse("22222222-2222-2222-2222-222222222222")

	demoSalaryID        = uuid.MustParse("33333333-3333-3333-3333-333333333333")
	demoFreelanceID     = uuid.MustParse("44444444-4444-4444-4444-444444444444")
	demoRentID          = uuid.MustParse("55555555-5555-5555-5555-555555555555")
	demoGroceriesID     = uuid.MustParse("66666666-6666-6666-6666-666666666666")
	demoUtilitiesID     = uuid.MustParse("77777777-7777-7777-7777-777777777777")
	demoTransportID     = uuid.MustParse("88888888-8888-8888-8888-888888888888")
	demoEntertainmentID = uuid.MustParse("99999999-9999-9999-9999-999999999999")
)

// buildDemoData lays the sample bookings out over the three months before
// the month of now.
func buildDemoData(now time.Time) demoData {
	now = now.UTC()
	base := time.Date(now.Year(), now.Month(), 1, 0, 0, 0, 0, time.UTC).AddDate(0, -3, 0)
	created := func(monthsAgo int) time.Time { return now.AddDate(0, -monthsAgo, 0) }

	account := func(id uuid.UUID, name, balance string) generated.CreateAccountParams {
		return generated.CreateAccountParams{
			ID:        pgUUID(id),
			Name:      name,
			Balance:   pgNumeric(decimal.RequireFromString(balance)),
			CreatedAt: pgTimestamptz(created(6)),
		}
	}
	category := func(id uuid.UUID, name string, t EntryType, sortOrder int32) generated.CreateCategoryParams {
		return generated.CreateCategoryParams{
			ID:        pgUUID(id),
			Name:      name,
			Type:      string(t),
			SortOrder: sortOrder,
			CreatedAt: pgTimestamptz(created(6)),
		}
	}

	types := map[uuid.UUID]EntryType{
		demoSalaryID:        EntryTypeIncome,
		demoFreelanceID:     EntryTypeIncome,
		demoRentID:          EntryTypeExpense,
		demoGroceriesID:     EntryTypeExpense,
		demoUtilitiesID:     EntryTypeExpense,
		demoTransportID:     EntryTypeExpense,
		demoEntertainmentID: EntryTypeExpense,
	}
	tx := func(id string, accountID, categoryID uuid.UUID, bookedOn time.Time, amount, note, merchant string) generated.CreateTransactionParams {
		return generated.CreateTransactionParams{
			ID:         pgUUID(uuid.MustParse(id)),
			AccountID:  pgUUID(accountID),
			CategoryID: pgUUID(categoryID),
			Type:       string(types[categoryID]),
			BookedOn:   pgDate(bookedOn),
			Amount:     pgNumeric(decimal.RequireFromString(amount)),
			Note:       note,
			Merchant:   pgText(&merchant),
			CreatedAt:  pgTimestamptz(bookedOn.Add(9 * time.Hour)),
		}
	}

	return demoData{
		accounts: []generated.CreateAccountParams{
			account(demoCheckingID, "Checking", "2450.50"),
			account(demoCreditID, "Credit Card", "-230.40"),
		},
		categories: []generated.CreateCategoryParams{
			category(demoSalaryID, "Salary", EntryTypeIncome, 1),
			category(demoFreelanceID, "Freelance", EntryTypeIncome, 2),
			category(demoRentID, "Rent", EntryTypeExpense, 10),
			category(demoGroceriesID, "Groceries", EntryTypeExpense, 11),
			category(demoUtilitiesID, "Utilities", EntryTypeExpense, 12),
			category(demoTransportID, "Transport", EntryTypeExpense, 13),
			category(demoEntertainmentID, "Entertainment", EntryTypeExpense, 14),
		},
		transactions: []generated.CreateTransactionParams{
			tx("aaaaaaa1-aaaa-aaaa-aaaa-aaaaaaaaaaa1", demoCheckingID, demoSalaryID, base, "3200", "Salary first month", "Employer Ltd"),
			tx("aaaaaaa2-aaaa-aaaa-aaaa-aaaaaaaaaaa2", demoCheckingID, demoRentID, base.AddDate(0, 0, 1), "1200", "Rent", "Landlord"),
			tx("aaaaaaa3-aaaa-aaaa-aaaa-aaaaaaaaaaa3", demoCheckingID, demoUtilitiesID, base.AddDate(0, 0, 3), "160", "Gas and power", "City Energy"),
			tx("aaaaaaa4-aaaa-aaaa-aaaa-aaaaaaaaaaa4", demoCreditID, demoGroceriesID, base.AddDate(0, 0, 5), "220.50", "Weekly shopping", "Supermarket"),
			tx("aaaaaaa5-aaaa-aaaa-aaaa-aaaaaaaaaaa5", demoCheckingID, demoTransportID, base.AddDate(0, 0, 7), "78.90", "Monthly pass", "Metro"),
			tx("aaaaaaa6-aaaa-aaaa-aaaa-aaaaaaaaaaa6", demoCreditID, demoEntertainmentID, base.AddDate(0, 0, 9), "45", "Cinema", "Cinemax"),
			tx("aaaaaaa7-aaaa-aaaa-aaaa-aaaaaaaaaaa7", demoCheckingID, demoFreelanceID, base.AddDate(0, 1, 2), "850", "Web project", "Freelance client"),
			tx("aaaaaaa8-aaaa-aaaa-aaaa-aaaaaaaaaaa8", demoCreditID, demoGroceriesID, base.AddDate(0, 1, 5), "195.30", "Weekly shopping", "Organic Market"),
			tx("aaaaaaa9-aaaa-aaaa-aaaa-aaaaaaaaaaa9", demoCheckingID, demoTransportID, base.AddDate(0, 1, 10), "65", "Train ticket", "Rail"),
			tx("aaaaaa10-aaaa-aaaa-aaaa-aaaaaaaaaa10", demoCreditID, demoEntertainmentID, base.AddDate(0, 2, 4), "89.99", "Concert", "Concert Hall"),
			tx("aaaaaa11-aaaa-aaaa-aaaa-aaaaaaaaaa11", demoCheckingID, demoSalaryID, base.AddDate(0, 1, 0), "3200", "Salary second month", "Employer Ltd"),
		},
	}
}

func demoDataExists(ctx context.Context, q generated.Querier, d demoData) (bool, error) {
	exists, err := q.AccountsExist(ctx, pgUUIDs(d.accountIDs()))
	if err != nil || exists {
		return exists, err
	}
	exists, err = q.CategoriesExist(ctx, pgUUIDs(d.categoryIDs()))
	if err != nil || exists {
		return exists, err
	}
	return q.TransactionsExist(ctx, pgUUIDs(d.transactionIDs()))
}

// DemoDataExists reports whether any demo row is present, archived or not.
func (s *Store) DemoDataExists(ctx context.Context) (bool, error) {
	exists, err := demoDataExists(ctx, s.runner.Queries(), buildDemoData(s.timestamp()))
	if err != nil {
		return false, fmt.Errorf("check demo data: %w", err)
	}
	return exists, nil
}

// SeedDemoData inserts the demo accounts, categories and transactions in
// one unit of work. It returns ErrDemoDataExists if any demo row is present.
func (s *Store) SeedDemoData(ctx context.Context) error {
	d := buildDemoData(s.timestamp())

	return s.runner.InTx(ctx, func(q generated.Querier) error {
		exists, err := demoDataExists(ctx, q, d)
		if err != nil {
			return fmt.Errorf("check demo data: %w", err)
		}
		if exists {
			return ErrDemoDataExists
		}

		for _, a := range d.accounts {
			if _, err := q.CreateAccount(ctx, a); err != nil {
				return fmt.Errorf("seed account %s: %w", a.Name, err)
			}
		}
		for _, c := range d.categories {
			if _, err := q.CreateCategory(ctx, c); err != nil {
				return fmt.Errorf("seed category %s: %w", c.Name, err)
			}
		}
		for _, t := range d.transactions {
			if _, err := q.CreateTransaction(ctx, t); err != nil {
				return fmt.Errorf("seed transaction: %w", err)
			}
		}
		return nil
	})
}

// ClearDemoData physically removes the demo rows in one unit of work.
// Other transactions still pointing at demo categories move to
// Uncategorized; those booked on demo accounts go with the accounts.
// It returns ErrNotFound when there is nothing to remove.
func (s *Store) ClearDemoData(ctx context.Context) error {
	d := buildDemoData(s.timestamp())

	return s.runner.InTx(ctx, func(q generated.Querier) error {
		exists, err := demoDataExists(ctx, q, d)
		if err != nil {
			return fmt.Errorf("check demo data: %w", err)
		}
		if !exists {
			return ErrNotFound
		}

		if _, err := q.DeleteTransactions(ctx, pgUUIDs(d.transactionIDs())); err != nil {
			return fmt.Errorf("delete demo transactions: %w", err)
		}

		if _, err := q.DeleteAccounts(ctx, pgUUIDs(d.accountIDs())); err != nil {
			return fmt.Errorf("delete demo accounts: %w", err)
		}

		categoryIDs := pgUUIDs(d.categoryIDs())
		uncategorized, err := s.ensureUncategorized(ctx, q)
		if err != nil {
			return err
		}
		_, err = q.ReassignTransactionsCategory(ctx, generated.ReassignTransactionsCategoryParams{
			CategoryID:      pgUUID(uncategorized.ID),
			FromCategoryIds: categoryIDs,
		})
		if err != nil {
			return fmt.Errorf("reassign demo category transactions: %w", err)
		}
		if _, err := q.DeleteCategories(ctx, categoryIDs); err != nil {
			return fmt.Errorf("delete demo categories: %w", err)
		}
		return nil
	})
}
