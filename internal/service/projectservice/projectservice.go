package projectservice

import (
	"context"
	"errors"
	"fmt"

	"go.uber.org/zap"

	"github.com/akazarov/serptrack/internal/domain"
	"github.com/akazarov/serptrack/internal/pg"
	"github.com/akazarov/serptrack/pkg/domainmatch"
)

var (
	ErrDomainLocked  = errors.New("domain is reserved by another account")
	ErrInvalidDomain = errors.New("domain must not be empty")
)

type Repo interface {
	GetByID(ctx context.Context, id int) (*domain.Project, error)
	Save(ctx context.Context, project *domain.Project) (*domain.Project, error)
	GetDomainLock(ctx context.Context, lockedDomain string) (*domain.DomainLock, error)
	CreateDomainLock(ctx context.Context, lockedDomain string, userID int) error
}

type Service struct {
	repo      Repo
	txManager pg.TXManager
}

func New(repo Repo, txManager pg.TXManager) *Service {
	return &Service{
		repo:      repo,
		txManager: txManager,
	}
}

// Create registers a project for a domain. Each domain is locked to the
// first user who tracked it, permanently: the lock survives project
// deletion, so only the original owner may ever re-add the domain.
func (s *Service) Create(ctx context.Context, userID int, rawDomain, country, frequency string) (*domain.Project, error) {
	normalized := domainmatch.Normalize(rawDomain)
	if normalized == "" {
		return nil, ErrInvalidDomain
	}

	var project *domain.Project
	err := s.txManager.Begin(ctx, func(ctx context.Context) error {
		lock, err := s.repo.GetDomainLock(ctx, normalized)
		if err != nil {
			return fmt.Errorf("failed to check domain lock: %w", err)
		}
		if lock != nil && lock.UserID != userID {
			zap.L().Info("domain lock denied project creation",
				zap.String("domain", normalized),
				zap.Int("userID", userID),
				zap.Int("lockOwner", lock.UserID))
			return ErrDomainLocked
		}
		if lock == nil {
			if err := s.repo.CreateDomainLock(ctx, normalized, userID); err != nil {
				return fmt.Errorf("failed to create domain lock: %w", err)
			}
		}

		project, err = s.repo.Save(ctx, &domain.Project{
			UserID:    userID,
			Domain:    normalized,
			Country:   country,
			Frequency: frequency,
		})
		if err != nil {
			return fmt.Errorf("failed to save project: %w", err)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	zap.L().Info("project created",
		zap.Int("projectID", project.ID),
		zap.String("domain", project.Domain))
	return project, nil
}

func (s *Service) Get(ctx context.Context, id int) (*domain.Project, error) {
	return s.repo.GetByID(ctx, id)
}
