package store

import (
	"context"
	"fmt"

	"pocketbook/db/generated"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// moneyPlaces matches the NUMERIC(18, 2) columns.
const moneyPlaces = 2

func roundMoney(d decimal.Decimal) decimal.Decimal {
	return d.Round(moneyPlaces)
}

func (s *Store) ListAccounts(ctx context.Context) ([]Account, error) {
	rows, err := s.runner.Queries().ListAccounts(ctx)
	if err != nil {
		return nil, fmt.Errorf("list accounts: %w", err)
	}
	accounts := make([]Account, 0, len(rows))
	for _, row := range rows {
		accounts = append(accounts, toAccount(row))
	}
	return accounts, nil
}

func (s *Store) GetAccount(ctx context.Context, id uuid.UUID) (Account, error) {
	row, err := s.runner.Queries().GetAccount(ctx, pgUUID(id))
	if isNoRows(err) {
		return Account{}, ErrNotFound
	}
	if err != nil {
		return Account{}, fmt.Errorf("get account: %w", err)
	}
	return toAccount(row), nil
}

func (s *Store) CreateAccount(ctx context.Context, in AccountInput) (Account, error) {
	row, err := s.runner.Queries().CreateAccount(ctx, generated.CreateAccountParams{
		ID:        pgUUID(uuid.New()),
		Name:      in.Name,
		Balance:   pgNumeric(roundMoney(in.Balance)),
		CreatedAt: pgTimestamptz(s.timestamp()),
	})
	if err != nil {
		return Account{}, fmt.Errorf("create account: %w", err)
	}
	return toAccount(row), nil
}

// UpdateAccount replaces name and balance of an active account.
func (s *Store) UpdateAccount(ctx context.Context, id uuid.UUID, in AccountInput) (Account, error) {
	row, err := s.runner.Queries().UpdateAccount(ctx, generated.UpdateAccountParams{
		ID:      pgUUID(id),
		Name:    in.Name,
		Balance: pgNumeric(roundMoney(in.Balance)),
	})
	if isNoRows(err) {
		return Account{}, ErrNotFound
	}
	if err != nil {
		return Account{}, fmt.Errorf("update account: %w", err)
	}
	return toAccount(row), nil
}

// DeleteAccount archives one active account and its transactions.
func (s *Store) DeleteAccount(ctx context.Context, id uuid.UUID) error {
	if _, err := s.GetAccount(ctx, id); err != nil {
		return err
	}
	return s.ArchiveAccounts(ctx, []uuid.UUID{id})
}
