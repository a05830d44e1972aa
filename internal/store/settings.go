package store

import (
	"context"
	"fmt"

	"pocketbook/db/generated"
)

// GetSettings returns the settings row, creating it with the default
// currency on first access. A concurrent creator wins the primary key race
// and the row is read again.
func (s *Store) GetSettings(ctx context.Context) (Settings, error) {
	q := s.runner.Queries()

	row, err := q.GetUserSettings(ctx, pgUUID(SettingsID))
	if err == nil {
		return toSettings(row), nil
	}
	if !isNoRows(err) {
		return Settings{}, fmt.Errorf("get settings: %w", err)
	}

	now := pgTimestamptz(s.timestamp())
	row, err = q.CreateUserSettings(ctx, generated.CreateUserSettingsParams{
		ID:           pgUUID(SettingsID),
		CurrencyCode: DefaultCurrencyCode,
		CreatedAt:    now,
		UpdatedAt:    now,
	})
	if err == nil {
		return toSettings(row), nil
	}
	if !IsUniqueViolation(err) {
		return Settings{}, fmt.Errorf("create settings: %w", err)
	}

	row, err = q.GetUserSettings(ctx, pgUUID(SettingsID))
	if err != nil {
		return Settings{}, fmt.Errorf("get settings: %w", err)
	}
	return toSettings(row), nil
}

// SetCurrencyCode upserts the currency. code must already be normalized.
func (s *Store) SetCurrencyCode(ctx context.Context, code string) (Settings, error) {
	row, err := s.runner.Queries().UpsertUserSettingsCurrency(ctx, generated.UpsertUserSettingsCurrencyParams{
		ID:           pgUUID(SettingsID),
		CurrencyCode: code,
		Now:          pgTimestamptz(s.timestamp()),
	})
	if err != nil {
		return Settings{}, fmt.Errorf("set currency code: %w", err)
	}
	return toSettings(row), nil
}
