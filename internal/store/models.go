package store

import (
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// EntryType tells whether money flows in or out. It is authoritative on
// transactions and does not depend on the amount sign.
type EntryType string

const (
	EntryTypeExpense EntryType = "expense"
	EntryTypeIncome  EntryType = "income"
)

func ParseEntryType(s string) (EntryType, error) {
	switch EntryType(strings.ToLower(strings.TrimSpace(s))) {
	case EntryTypeExpense:
		return EntryTypeExpense, nil
	case EntryTypeIncome:
		return EntryTypeIncome, nil
	}
	return "", fmt.Errorf("type must be %q or %q", EntryTypeExpense, EntryTypeIncome)
}

var (
	// UncategorizedCategoryID is the fixed id of the fallback category.
	UncategorizedCategoryID = uuid.MustParse("00000000-0000-0000-0000-000000000002")
	// SettingsID is the fixed id of the settings row.
	SettingsID = uuid.MustParse("00000000-0000-0000-0000-000000000001")
)

const (
	UncategorizedCategoryName = "Uncategorized"
	DefaultCurrencyCode       = "EUR"
)

type Account struct {
	ID         uuid.UUID
	Name       string
	Balance    decimal.Decimal
	CreatedAt  time.Time
	IsArchived bool
}

type AccountInput struct {
	Name    string
	Balance decimal.Decimal
}

type Category struct {
	ID         uuid.UUID
	Name       string
	Type       EntryType
	SortOrder  int
	IsArchived bool
	CreatedAt  time.Time
}

type CategoryInput struct {
	Name      string
	Type      EntryType
	SortOrder int
	// IsArchived on update archives the category through ArchiveCategories.
	IsArchived bool
}

type Transaction struct {
	ID         uuid.UUID
	AccountID  uuid.UUID
	CategoryID uuid.UUID
	Type       EntryType
	// BookedOn is a calendar date at midnight UTC.
	BookedOn   time.Time
	Amount     decimal.Decimal
	Note       string
	Merchant   *string
	CreatedAt  time.Time
	IsArchived bool
}

type TransactionInput struct {
	AccountID  uuid.UUID
	CategoryID uuid.UUID
	Type       EntryType
	BookedOn   time.Time
	Amount     decimal.Decimal
	Note       string
	Merchant   *string
}

// TransactionFilter narrows GetPaged. Nil fields and an empty SearchTerm
// are ignored.
type TransactionFilter struct {
	AccountID  *uuid.UUID
	CategoryID *uuid.UUID
	Type       *EntryType
	BookedFrom *time.Time
	BookedTo   *time.Time
	MinAmount  *decimal.Decimal
	MaxAmount  *decimal.Decimal
	SearchTerm string
}

type Settings struct {
	ID           uuid.UUID
	CurrencyCode string
	CreatedAt    time.Time
	UpdatedAt    time.Time
}
