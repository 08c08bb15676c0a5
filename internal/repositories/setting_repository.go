package repository

import (
	"context"
	"database/sql"
	"maps"
	"slices"

	"github.com/geekfaka/storefront/internal/models"
	"github.com/lib/pq"
)

type SettingRepository interface {
	GetSetting(ctx context.Context, key string) (*models.SystemSetting, error)
	GetSettings(ctx context.Context, keys []string) (map[string]string, error)
	UpsertSettings(ctx context.Context, values map[string]string) error
}

type settingRepository struct {
	DB *sql.DB
}

func NewSettingRepo(db *sql.DB) SettingRepository {
	return &settingRepository{DB: db}
}

func (r *settingRepository) GetSetting(ctx context.Context, key string) (*models.SystemSetting, error) {
	dbCtx, cancel := withQueryTimeout(ctx)
	defer cancel()

	setting := &models.SystemSetting{}

	err := r.DB.QueryRowContext(dbCtx, `SELECT key, value, updated_at FROM system_settings WHERE key = $1`, key).
		Scan(&setting.Key, &setting.Value, &setting.UpdatedAt)
	if err != nil {
		return nil, mapError(err)
	}

	return setting, nil
}

func (r *settingRepository) GetSettings(ctx context.Context, keys []string) (map[string]string, error) {
	dbCtx, cancel := withQueryTimeout(ctx)
	defer cancel()

	rows, err := r.DB.QueryContext(dbCtx, `SELECT key, value FROM system_settings WHERE key = ANY($1)`, pq.Array(keys))
	if err != nil {
		return nil, err
	}

	defer rows.Close()

	settings := make(map[string]string, len(keys))

	for rows.Next() {
		var key, value string

		if err := rows.Scan(&key, &value); err != nil {
			return nil, err
		}

		settings[key] = value
	}

	return settings, rows.Err()
}

func (r *settingRepository) UpsertSettings(ctx context.Context, values map[string]string) error {
	dbCtx, cancel := withQueryTimeout(ctx)
	defer cancel()

	keys := slices.Sorted(maps.Keys(values))
	vals := make([]string, 0, len(keys))

	for _, k := range keys {
		vals = append(vals, values[k])
	}

	query := `
		INSERT INTO system_settings (key, value, updated_at)
		SELECT k, v, NOW() FROM unnest($1::text[], $2::text[]) AS t(k, v)
		ON CONFLICT (key) DO UPDATE SET value = EXCLUDED.value, updated_at = NOW()`

	_, err := r.DB.ExecContext(dbCtx, query, pq.Array(keys), pq.Array(vals))

	return err
}
