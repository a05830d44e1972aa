package main

import (
	"time"

	"pocketbook/internal/store"

	"github.com/shopspring/decimal"
)

const dateLayout = "2006-01-02"

// Account represents a money account such as a bank account or wallet
type Account struct {
	ID         string          `json:"id"`
	Name       string          `json:"name"`
	Balance    decimal.Decimal `json:"balance" swaggertype:"number"`
	CreatedAt  time.Time       `json:"createdAt"`
	IsArchived bool            `json:"isArchived"`
}

// AccountRequest is the body of account create and update calls
type AccountRequest struct {
	Name    string          `json:"name"`
	Balance decimal.Decimal `json:"balance" swaggertype:"number"`
}

// Category represents an expense or income category
type Category struct {
	ID         string    `json:"id"`
	Name       string    `json:"name"`
	Type       string    `json:"type"`
	SortOrder  int       `json:"sortOrder"`
	IsArchived bool      `json:"isArchived"`
	CreatedAt  time.Time `json:"createdAt"`
}

// CategoryRequest is the body of category create and update calls.
// Type defaults to expense. Setting IsArchived on update archives the
// category and moves its transactions to Uncategorized.
type CategoryRequest struct {
	Name       string `json:"name"`
	Type       string `json:"type"`
	SortOrder  int    `json:"sortOrder"`
	IsArchived bool   `json:"isArchived"`
}

// Transaction represents a booked transaction
type Transaction struct {
	ID         string          `json:"id"`
	AccountID  string          `json:"accountId"`
	CategoryID string          `json:"categoryId"`
	Type       string          `json:"type"`
	BookedOn   string          `json:"bookedOn" example:"2024-01-31"`
	Amount     decimal.Decimal `json:"amount" swaggertype:"number"`
	Note       string          `json:"note"`
	Merchant   *string         `json:"merchant"`
	CreatedAt  time.Time       `json:"createdAt"`
	IsArchived bool            `json:"isArchived"`
}

// TransactionRequest is the body of transaction create and update calls.
// Type defaults to the category's type when omitted.
type TransactionRequest struct {
	AccountID  string           `json:"accountId"`
	CategoryID string           `json:"categoryId"`
	Type       string           `json:"type"`
	BookedOn   string           `json:"bookedOn" example:"2024-01-31"`
	Amount     *decimal.Decimal `json:"amount" swaggertype:"number"`
	Note       string           `json:"note"`
	Merchant   *string          `json:"merchant"`
}

// TransactionPage is one page of the filtered transaction list
type TransactionPage struct {
	Items      []Transaction `json:"items"`
	TotalCount int64         `json:"totalCount"`
	Page       int           `json:"page"`
	PageSize   int           `json:"pageSize"`
	TotalPages int           `json:"totalPages"`
}

// ArchiveManyRequest lists the ids to archive in one call
type ArchiveManyRequest struct {
	IDs []string `json:"ids"`
}

// Settings holds the user preferences
type Settings struct {
	CurrencyCode string `json:"currencyCode" example:"EUR"`
}

// DemoDataStatus reports whether demo data is present
type DemoDataStatus struct {
	Exists bool `json:"exists"`
}

// ValidationErrorResponse is returned for rejected request bodies
type ValidationErrorResponse struct {
	Error  string              `json:"error"`
	Errors map[string][]string `json:"errors"`
}

func convertAccount(a store.Account) Account {
	return Account{
		ID:         a.ID.String(),
		Name:       a.Name,
		Balance:    a.Balance,
		CreatedAt:  a.CreatedAt,
		IsArchived: a.IsArchived,
	}
}

func convertCategory(c store.Category) Category {
	return Category{
		ID:         c.ID.String(),
		Name:       c.Name,
		Type:       string(c.Type),
		SortOrder:  c.SortOrder,
		IsArchived: c.IsArchived,
		CreatedAt:  c.CreatedAt,
	}
}

func convertTransaction(t store.Transaction) Transaction {
	return Transaction{
		ID:         t.ID.String(),
		AccountID:  t.AccountID.String(),
		CategoryID: t.CategoryID.String(),
		Type:       string(t.Type),
		BookedOn:   t.BookedOn.Format(dateLayout),
		Amount:     t.Amount,
		Note:       t.Note,
		Merchant:   t.Merchant,
		CreatedAt:  t.CreatedAt,
		IsArchived: t.IsArchived,
	}
}

func convertTransactions(rows []store.Transaction) []Transaction {
	transactions := make([]Transaction, 0, len(rows))
	for _, row := range rows {
		transactions = append(transactions, convertTransaction(row))
	}
	return transactions
}
