package projectrepo

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5"

	"github.com/akazarov/serptrack/internal/domain"
	"github.com/akazarov/serptrack/internal/pg"
	"go.uber.org/zap"
)

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

func (r *Repository) GetByID(ctx context.Context, id int) (*domain.Project, error) {
	query := `
        SELECT id, user_id, domain, country, frequency, created_at
        FROM projects
        WHERE id = $1
    `
	row := r.db.QueryRow(ctx, query, id)

	var project domain.Project
	err := row.Scan(&project.ID, &project.UserID, &project.Domain, &project.Country, &project.Frequency, &project.CreatedAt)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		zap.L().Error("can't find project", zap.Error(err))
		return nil, err
	}
	return &project, nil
}

func (r *Repository) Save(ctx context.Context, project *domain.Project) (*domain.Project, error) {
	query := `
        INSERT INTO projects (user_id, domain, country, frequency)
        VALUES ($1, $2, $3, $4)
        RETURNING id, created_at
    `
	err := r.db.QueryRow(ctx, query, project.UserID, project.Domain, project.Country, project.Frequency).
		Scan(&project.ID, &project.CreatedAt)
	if err != nil {
		zap.L().Error("can't save project", zap.Error(err))
		return nil, err
	}
	return project, nil
}

func (r *Repository) GetDomainLock(ctx context.Context, lockedDomain string) (*domain.DomainLock, error) {
	query := `
        SELECT id, domain, user_id, created_at
        FROM domain_locks
        WHERE domain = $1
    `
	row := r.db.QueryRow(ctx, query, lockedDomain)

	var lock domain.DomainLock
	err := row.Scan(&lock.ID, &lock.Domain, &lock.UserID, &lock.CreatedAt)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		zap.L().Error("can't find domain lock", zap.Error(err))
		return nil, err
	}
	return &lock, nil
}

func (r *Repository) CreateDomainLock(ctx context.Context, lockedDomain string, userID int) error {
	query := `
        INSERT INTO domain_locks (domain, user_id)
        VALUES ($1, $2)
    `
	_, err := r.db.Exec(ctx, query, lockedDomain, userID)
	if err != nil {
		zap.L().Error("can't create domain lock", zap.Error(err))
		return err
	}
	return nil
}
