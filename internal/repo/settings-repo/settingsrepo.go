package settingsrepo

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5"

	"github.com/akazarov/serptrack/internal/pg"
	"go.uber.org/zap"
)

type Repository struct {
	db pg.Database
}

func New(db pg.Database) *Repository {
	return &Repository{
		db: db,
	}
}

func (r *Repository) Get(ctx context.Context, key string) (string, bool, error) {
	query := `
        SELECT value
        FROM settings
        WHERE key = $1
    `
	var value string
	err := r.db.QueryRow(ctx, query, key).Scan(&value)
	if errors.Is(err, pgx.ErrNoRows) {
		return "", false, nil
	}
	if err != nil {
		zap.L().Error("can't read setting", zap.Error(err), zap.String("key", key))
		return "", false, err
	}
	return value, true, nil
}

func (r *Repository) Set(ctx context.Context, key, value string) error {
	query := `
        INSERT INTO settings (key, value)
        VALUES ($1, $2)
        ON CONFLICT (key) DO UPDATE SET value = EXCLUDED.value
    `
	_, err := r.db.Exec(ctx, query, key, value)
	if err != nil {
		zap.L().Error("can't write setting", zap.Error(err), zap.String("key", key))
		return err
	}
	return nil
}
