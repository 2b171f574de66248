package postgresql

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/lengolf/backoffice-go/internal/domain/setting"
	"github.com/lengolf/backoffice-go/internal/pkg/database"
)

type settingRepository struct {
	db *database.DB
}

func NewSettingRepository(db *database.DB) setting.Repository {
	return &settingRepository{db: db}
}

func (r *settingRepository) Get(ctx context.Context, key string) (string, error) {
	q := GetQuerier(ctx, r.db)

	var value string
	err := q.QueryRow(ctx, `SELECT value FROM settings WHERE key = $1`, key).Scan(&value)
	if err != nil {
		if err == pgx.ErrNoRows {
			return "", setting.ErrSettingNotFound
		}
		return "", fmt.Errorf("failed to get setting %s: %w", key, err)
	}

	return value, nil
}

func (r *settingRepository) Set(ctx context.Context, key, value string) error {
	q := GetQuerier(ctx, r.db)

	query := `
		INSERT INTO settings (key, value)
		VALUES ($1, $2)
		ON CONFLICT (key) DO UPDATE SET value = EXCLUDED.value
	`

	if _, err := q.Exec(ctx, query, key, value); err != nil {
		return fmt.Errorf("failed to set setting %s: %w", key, err)
	}
	return nil
}

func (r *settingRepository) GetAll(ctx context.Context) (map[string]string, error) {
	q := GetQuerier(ctx, r.db)

	rows, err := q.Query(ctx, `SELECT key, value FROM settings`)
	if err != nil {
		return nil, fmt.Errorf("failed to list settings: %w", err)
	}
	defer rows.Close()

	result := make(map[string]string)
	for rows.Next() {
		var key, value string
		if err := rows.Scan(&key, &value); err != nil {
			return nil, fmt.Errorf("failed to scan setting: %w", err)
		}
		result[key] = value
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to read settings rows: %w", err)
	}

	return result, nil
}
