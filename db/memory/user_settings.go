package memory

import (
	"context"

	"pocketbook/db/generated"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgtype"
)

func (q *queries) CreateUserSettings(ctx context.Context, arg generated.CreateUserSettingsParams) (generated.UserSetting, error) {
	var created generated.UserSetting
	err := q.write(ctx, func(d *dataset) error {
		if _, ok := d.settings[arg.ID.Bytes]; ok {
			return uniqueViolation("user_settings")
		}
		created = generated.UserSetting{
			ID:           arg.ID,
			CurrencyCode: arg.CurrencyCode,
			CreatedAt:    arg.CreatedAt,
			UpdatedAt:    arg.UpdatedAt,
		}
		d.settings[arg.ID.Bytes] = created
		return nil
	})
	return created, err
}

func (q *queries) GetUserSettings(ctx context.Context, id pgtype.UUID) (generated.UserSetting, error) {
	var found generated.UserSetting
	err := q.with(ctx, func(d *dataset) error {
		s, ok := d.settings[id.Bytes]
		if !ok {
			return pgx.ErrNoRows
		}
		found = s
		return nil
	})
	return found, err
}

func (q *queries) UpsertUserSettingsCurrency(ctx context.Context, arg generated.UpsertUserSettingsCurrencyParams) (generated.UserSetting, error) {
	var result generated.UserSetting
	err := q.write(ctx, func(d *dataset) error {
		s, ok := d.settings[arg.ID.Bytes]
		if !ok {
			s = generated.UserSetting{ID: arg.ID, CreatedAt: arg.Now}
		}
		s.CurrencyCode = arg.CurrencyCode
		s.UpdatedAt = arg.Now
		d.settings[arg.ID.Bytes] = s
		result = s
		return nil
	})
	return result, err
}
