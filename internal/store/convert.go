package store

import (
	"time"

	"pocketbook/db/generated"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgtype"
	"github.com/shopspring/decimal"
)

func pgUUID(id uuid.UUID) pgtype.UUID {
	return pgtype.UUID{Bytes: id, Valid: true}
}

func pgUUIDs(ids []uuid.UUID) []pgtype.UUID {
	out := make([]pgtype.UUID, 0, len(ids))
	for _, id := range ids {
		out = append(out, pgUUID(id))
	}
	return out
}

func pgNumeric(d decimal.Decimal) pgtype.Numeric {
	return pgtype.Numeric{Int: d.Coefficient(), Exp: d.Exponent(), Valid: true}
}

func fromNumeric(n pgtype.Numeric) decimal.Decimal {
	if !n.Valid || n.Int == nil {
		return decimal.Zero
	}
	return decimal.NewFromBigInt(n.Int, n.Exp)
}

func pgTimestamptz(t time.Time) pgtype.Timestamptz {
	return pgtype.Timestamptz{Time: t, Valid: true}
}

// DateOf strips the time of day, keeping the calendar date in UTC.
func DateOf(t time.Time) time.Time {
	y, m, d := t.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

func pgDate(t time.Time) pgtype.Date {
	return pgtype.Date{Time: DateOf(t), Valid: true}
}

func pgText(s *string) pgtype.Text {
	if s == nil {
		return pgtype.Text{}
	}
	return pgtype.Text{String: *s, Valid: true}
}

func toAccount(a generated.Account) Account {
	return Account{
		ID:         uuid.UUID(a.ID.Bytes),
		Name:       a.Name,
		Balance:    fromNumeric(a.Balance),
		CreatedAt:  a.CreatedAt.Time.UTC(),
		IsArchived: a.IsArchived,
	}
}

func toCategory(c generated.Category) Category {
	return Category{
		ID:         uuid.UUID(c.ID.Bytes),
		Name:       c.Name,
		Type:       EntryType(c.Type),
		SortOrder:  int(c.SortOrder),
		IsArchived: c.IsArchived,
		CreatedAt:  c.CreatedAt.Time.UTC(),
	}
}

func toTransaction(t generated.Transaction) Transaction {
	result := Transaction{
		ID:         uuid.UUID(t.ID.Bytes),
		AccountID:  uuid.UUID(t.AccountID.Bytes),
		CategoryID: uuid.UUID(t.CategoryID.Bytes),
		Type:       EntryType(t.Type),
		BookedOn:   DateOf(t.BookedOn.Time),
		Amount:     fromNumeric(t.Amount),
		Note:       t.Note,
		CreatedAt:  t.CreatedAt.Time.UTC(),
		IsArchived: t.IsArchived,
	}
	if t.Merchant.Valid {
		merchant := t.Merchant.String
		result.Merchant = &merchant
	}
	return result
}

func toTransactions(rows []generated.Transaction) []Transaction {
	items := make([]Transaction, 0, len(rows))
	for _, row := range rows {
		items = append(items, toTransaction(row))
	}
	return items
}

func toSettings(s generated.UserSetting) Settings {
	return Settings{
		ID:           uuid.UUID(s.ID.Bytes),
		CurrencyCode: s.CurrencyCode,
		CreatedAt:    s.CreatedAt.Time.UTC(),
		UpdatedAt:    s.UpdatedAt.Time.UTC(),
	}
}
