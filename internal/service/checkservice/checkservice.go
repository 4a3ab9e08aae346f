package checkservice

import (
	"context"
	"errors"
	"time"

	"go.uber.org/zap"

	"github.com/akazarov/serptrack/internal/domain"
	"github.com/akazarov/serptrack/internal/serp"
	"github.com/akazarov/serptrack/pkg/domainmatch"
)

type KeywordRepo interface {
	GetByID(ctx context.Context, id int) (*domain.Keyword, error)
	GetLatestPosition(ctx context.Context, keywordID int) (*domain.KeywordPosition, error)
	SavePosition(ctx context.Context, position *domain.KeywordPosition) (*domain.KeywordPosition, error)
	MarkChecked(ctx context.Context, id int, checkedAt time.Time) error
	SetLastError(ctx context.Context, id int, message string) error
}

type ProjectRepo interface {
	GetByID(ctx context.Context, id int) (*domain.Project, error)
}

// Result reports one completed check. Position 0 with a nil URL means the
// target domain did not appear in the scanned window.
type Result struct {
	Position int
	URL      *string
}

type Service struct {
	keywordRepo KeywordRepo
	projectRepo ProjectRepo
	provider    serp.Provider
}

func New(keywordRepo KeywordRepo, projectRepo ProjectRepo, provider serp.Provider) *Service {
	return &Service{
		keywordRepo: keywordRepo,
		projectRepo: projectRepo,
		provider:    provider,
	}
}

// Check resolves the current ranking of one keyword and appends a position
// row. A missing keyword or project is a logged no-op (nil result) so stale
// references never break a batch. A provider failure is recorded on the
// keyword and stored as rank 0 for this cycle.
func (s *Service) Check(ctx context.Context, keywordID int, isLive bool) (*Result, error) {
	keyword, err := s.keywordRepo.GetByID(ctx, keywordID)
	if err != nil {
		return nil, err
	}
	if keyword == nil {
		zap.L().Info("keyword not found, skipping check", zap.Int("keywordID", keywordID))
		return nil, nil
	}

	project, err := s.projectRepo.GetByID(ctx, keyword.ProjectID)
	if err != nil {
		return nil, err
	}
	if project == nil {
		zap.L().Info("project not found, skipping check",
			zap.Int("keywordID", keywordID), zap.Int("projectID", keyword.ProjectID))
		return nil, nil
	}

	position, matchedURL := 0, (*string)(nil)

	results, err := s.provider.FetchTopResults(ctx, serp.Query{
		Term:         keyword.Term,
		Country:      keyword.Country,
		Device:       keyword.Device,
		TargetDomain: project.Domain,
	})
	switch {
	case err == nil:
		for _, res := range results {
			if domainmatch.Matches(res.URL, project.Domain) {
				position = res.Rank
				url := res.URL
				matchedURL = &url
				break
			}
		}
		if err := s.keywordRepo.SetLastError(ctx, keyword.ID, ""); err != nil {
			return nil, err
		}
	case isProviderError(err):
		// rank 0 for this cycle; the batch keeps moving
		zap.L().Error("serp provider failed", zap.Error(err), zap.Int("keywordID", keywordID))
		if err := s.keywordRepo.SetLastError(ctx, keyword.ID, "could not determine ranking this cycle"); err != nil {
			return nil, err
		}
	default:
		return nil, err
	}

	previous, err := s.keywordRepo.GetLatestPosition(ctx, keyword.ID)
	if err != nil {
		return nil, err
	}

	checkedAt := time.Now()
	_, err = s.keywordRepo.SavePosition(ctx, &domain.KeywordPosition{
		KeywordID: keyword.ID,
		Position:  position,
		URL:       matchedURL,
		CheckedAt: checkedAt,
	})
	if err != nil {
		return nil, err
	}
	if err := s.keywordRepo.MarkChecked(ctx, keyword.ID, checkedAt); err != nil {
		return nil, err
	}

	fields := []zap.Field{
		zap.Int("keywordID", keyword.ID),
		zap.Int("position", position),
		zap.Bool("live", isLive),
	}
	if previous != nil {
		fields = append(fields, zap.Int("previousPosition", previous.Position))
	}
	zap.L().Info("keyword check completed", fields...)

	return &Result{Position: position, URL: matchedURL}, nil
}

func isProviderError(err error) bool {
	var provErr *serp.ProviderError
	return errors.As(err, &provErr)
}
