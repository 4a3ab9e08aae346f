package keywordrepo

import (
	"context"
	"errors"
	"time"

	"github.com/jackc/pgx/v5"

	"github.com/akazarov/serptrack/internal/domain"
	"github.com/akazarov/serptrack/internal/pg"
	"go.uber.org/zap"
)

const keywordColumns = "id, project_id, term, country, device, frequency, last_checked_at, queued_at, last_error, created_at"

type Repository struct {
	db        pg.Database
	txManager pg.TXManager
}

func New(db pg.Database, txManager pg.TXManager) *Repository {
	return &Repository{
		db:        db,
		txManager: txManager,
	}
}

func scanKeyword(row pgx.Row) (*domain.Keyword, error) {
	var kw domain.Keyword
	err := row.Scan(&kw.ID, &kw.ProjectID, &kw.Term, &kw.Country, &kw.Device, &kw.Frequency,
		&kw.LastCheckedAt, &kw.QueuedAt, &kw.LastError, &kw.CreatedAt)
	if err != nil {
		return nil, err
	}
	return &kw, nil
}

func (r *Repository) GetByID(ctx context.Context, id int) (*domain.Keyword, error) {
	query := `
        SELECT ` + keywordColumns + `
        FROM keywords
        WHERE id = $1
    `
	kw, err := scanKeyword(r.db.QueryRow(ctx, query, id))
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		zap.L().Error("can't find keyword", zap.Error(err))
		return nil, err
	}
	return kw, nil
}

func (r *Repository) collect(rows pgx.Rows) ([]domain.Keyword, error) {
	defer rows.Close()

	var keywords []domain.Keyword
	for rows.Next() {
		kw, err := scanKeyword(rows)
		if err != nil {
			zap.L().Error("can't scan keyword row", zap.Error(err))
			return nil, err
		}
		keywords = append(keywords, *kw)
	}
	return keywords, nil
}

func (r *Repository) FindByProjectID(ctx context.Context, projectID int) ([]domain.Keyword, error) {
	query := `
        SELECT ` + keywordColumns + `
        FROM keywords
        WHERE project_id = $1
        ORDER BY id ASC
    `
	rows, err := r.db.Query(ctx, query, projectID)
	if err != nil {
		zap.L().Error("can't get keywords by project", zap.Error(err))
		return nil, err
	}
	return r.collect(rows)
}

func (r *Repository) FindByIDs(ctx context.Context, ids []int) ([]domain.Keyword, error) {
	query := `
        SELECT ` + keywordColumns + `
        FROM keywords
        WHERE id = ANY($1)
        ORDER BY id ASC
    `
	rows, err := r.db.Query(ctx, query, ids)
	if err != nil {
		zap.L().Error("can't get keywords by ids", zap.Error(err))
		return nil, err
	}
	return r.collect(rows)
}

// FindDueForTracking selects keywords whose cadence says they should be
// checked again: daily after 24h, every_2_days after 48h, weekly after 168h.
// Manual keywords are never due.
func (r *Repository) FindDueForTracking(ctx context.Context, now time.Time) ([]domain.Keyword, error) {
	query := `
        SELECT ` + keywordColumns + `
        FROM keywords
        WHERE frequency <> 'manual'
          AND (last_checked_at IS NULL
            OR (frequency = 'daily' AND last_checked_at <= $1 - INTERVAL '24 hours')
            OR (frequency = 'every_2_days' AND last_checked_at <= $1 - INTERVAL '48 hours')
            OR (frequency = 'weekly' AND last_checked_at <= $1 - INTERVAL '168 hours'))
        ORDER BY id ASC
    `
	rows, err := r.db.Query(ctx, query, now)
	if err != nil {
		zap.L().Error("can't get due keywords", zap.Error(err))
		return nil, err
	}
	return r.collect(rows)
}

// FindQueued returns keywords whose deduction was committed but whose check
// never finished, e.g. after a crash.
func (r *Repository) FindQueued(ctx context.Context) ([]domain.Keyword, error) {
	query := `
        SELECT ` + keywordColumns + `
        FROM keywords
        WHERE queued_at IS NOT NULL
        ORDER BY queued_at ASC
    `
	rows, err := r.db.Query(ctx, query)
	if err != nil {
		zap.L().Error("can't get queued keywords", zap.Error(err))
		return nil, err
	}
	return r.collect(rows)
}

func (r *Repository) MarkQueued(ctx context.Context, id int, queuedAt time.Time) error {
	query := `
        UPDATE keywords
        SET queued_at = $1
        WHERE id = $2
    `
	_, err := r.db.Exec(ctx, query, queuedAt, id)
	if err != nil {
		zap.L().Error("can't mark keyword queued", zap.Error(err))
		return err
	}
	return nil
}

// MarkChecked stamps a completed check: clears the queue marker and moves
// the throttle window forward.
func (r *Repository) MarkChecked(ctx context.Context, id int, checkedAt time.Time) error {
	query := `
        UPDATE keywords
        SET last_checked_at = $1, queued_at = NULL
        WHERE id = $2
    `
	_, err := r.db.Exec(ctx, query, checkedAt, id)
	if err != nil {
		zap.L().Error("can't mark keyword checked", zap.Error(err))
		return err
	}
	return nil
}

func (r *Repository) SetLastError(ctx context.Context, id int, message string) error {
	query := `
        UPDATE keywords
        SET last_error = $1
        WHERE id = $2
    `
	_, err := r.db.Exec(ctx, query, message, id)
	if err != nil {
		zap.L().Error("can't set keyword error", zap.Error(err))
		return err
	}
	return nil
}

func (r *Repository) SavePosition(ctx context.Context, position *domain.KeywordPosition) (*domain.KeywordPosition, error) {
	query := `
        INSERT INTO keyword_positions (keyword_id, position, url, checked_at)
        VALUES ($1, $2, $3, $4)
        RETURNING id
    `
	err := r.db.QueryRow(ctx, query, position.KeywordID, position.Position, position.URL, position.CheckedAt).
		Scan(&position.ID)
	if err != nil {
		zap.L().Error("can't save keyword position", zap.Error(err))
		return nil, err
	}
	return position, nil
}

func (r *Repository) GetLatestPosition(ctx context.Context, keywordID int) (*domain.KeywordPosition, error) {
	query := `
        SELECT id, keyword_id, position, url, checked_at
        FROM keyword_positions
        WHERE keyword_id = $1
        ORDER BY checked_at DESC
        LIMIT 1
    `
	row := r.db.QueryRow(ctx, query, keywordID)

	var pos domain.KeywordPosition
	err := row.Scan(&pos.ID, &pos.KeywordID, &pos.Position, &pos.URL, &pos.CheckedAt)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		zap.L().Error("can't get latest position", zap.Error(err))
		return nil, err
	}
	return &pos, nil
}
