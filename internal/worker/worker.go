package worker

import (
	"context"
	"errors"
	"fmt"
	"time"

	"go.uber.org/zap"

	"github.com/akazarov/serptrack/internal/config"
	"github.com/akazarov/serptrack/internal/domain"
	"github.com/akazarov/serptrack/internal/service/balanceservice"
	"github.com/akazarov/serptrack/internal/service/checkservice"
	"github.com/akazarov/serptrack/internal/service/pricingservice"
	"github.com/akazarov/serptrack/pkg/metrics"
)

// throttleWindow is the minimum gap between two billed checks of the same
// keyword. Live checks bypass it.
const throttleWindow = 24 * time.Hour

type KeywordRepo interface {
	FindByIDs(ctx context.Context, ids []int) ([]domain.Keyword, error)
	FindByProjectID(ctx context.Context, projectID int) ([]domain.Keyword, error)
	FindDueForTracking(ctx context.Context, now time.Time) ([]domain.Keyword, error)
	FindQueued(ctx context.Context) ([]domain.Keyword, error)
	MarkQueued(ctx context.Context, id int, queuedAt time.Time) error
}

type ProjectRepo interface {
	GetByID(ctx context.Context, id int) (*domain.Project, error)
}

type Billing interface {
	Deduct(ctx context.Context, userID int, kind pricingservice.ActionKind, metadata string) (*balanceservice.DeductResult, error)
}

type Checker interface {
	Check(ctx context.Context, keywordID int, isLive bool) (*checkservice.Result, error)
}

// Summary reports one batch run. Skipped covers throttled keywords and
// users whose balance could not absorb the check.
type Summary struct {
	Processed int
	Skipped   int
	Failed    int
}

type Service struct {
	keywordRepo KeywordRepo
	projectRepo ProjectRepo
	billing     Billing
	checker     Checker
	interval    time.Duration

	now func() time.Time
}

func New(cfg *config.Config, keywordRepo KeywordRepo, projectRepo ProjectRepo, billing Billing, checker Checker) *Service {
	return &Service{
		keywordRepo: keywordRepo,
		projectRepo: projectRepo,
		billing:     billing,
		checker:     checker,
		interval:    time.Duration(cfg.TrackingInterval) * time.Second,
		now:         time.Now,
	}
}

// Start launches the auto-tracking loop in the background. It stops when
// ctx is canceled.
func (s *Service) Start(ctx context.Context) {
	zap.L().Info("Tracking worker started", zap.Duration("interval", s.interval))
	go s.run(ctx)
}

func (s *Service) run(ctx context.Context) {
	ticker := time.NewTicker(s.interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			zap.L().Info("Context canceled, stopping tracking worker")
			return
		case <-ticker.C:
			if _, err := s.AutoTracking(ctx); err != nil {
				zap.L().Error("Auto-tracking run failed", zap.Error(err))
			}
			if _, err := s.SyncPending(ctx); err != nil {
				zap.L().Error("Pending sync failed", zap.Error(err))
			}
		}
	}
}

// Enqueue runs standard checks for an explicit keyword list, or for every
// keyword of a project when keywordIDs is empty and projectID is set.
func (s *Service) Enqueue(ctx context.Context, projectID *int, keywordIDs []int) (*Summary, error) {
	keywords, err := s.resolveKeywords(ctx, projectID, keywordIDs)
	if err != nil {
		return nil, err
	}
	return s.processBatch(ctx, keywords, "enqueue", pricingservice.ActionStandardCheck, false, true), nil
}

// Live runs immediate checks at the live rate. The recency throttle does
// not apply.
func (s *Service) Live(ctx context.Context, keywordIDs []int) (*Summary, error) {
	keywords, err := s.keywordRepo.FindByIDs(ctx, keywordIDs)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch keywords: %w", err)
	}
	return s.processBatch(ctx, keywords, "live", pricingservice.ActionLiveCheck, true, false), nil
}

// AutoTracking bills and checks every keyword whose schedule has come due.
func (s *Service) AutoTracking(ctx context.Context) (*Summary, error) {
	keywords, err := s.keywordRepo.FindDueForTracking(ctx, s.now())
	if err != nil {
		return nil, fmt.Errorf("failed to fetch due keywords: %w", err)
	}
	return s.processBatch(ctx, keywords, "auto", pricingservice.ActionStandardCheck, false, true), nil
}

// SyncPending re-runs keywords that were billed and queued but never
// completed, without charging again.
func (s *Service) SyncPending(ctx context.Context) (*Summary, error) {
	keywords, err := s.keywordRepo.FindQueued(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch queued keywords: %w", err)
	}

	summary := &Summary{}
	for _, keyword := range keywords {
		result, err := s.checker.Check(ctx, keyword.ID, false)
		if err != nil {
			zap.L().Error("Pending check failed",
				zap.Error(err), zap.Int("keywordID", keyword.ID))
			summary.Failed++
			continue
		}
		if result == nil {
			metrics.ChecksSkipped.WithLabelValues("stale").Inc()
			summary.Skipped++
			continue
		}
		metrics.ChecksProcessed.WithLabelValues("sync").Inc()
		summary.Processed++
	}
	return summary, nil
}

func (s *Service) resolveKeywords(ctx context.Context, projectID *int, keywordIDs []int) ([]domain.Keyword, error) {
	if len(keywordIDs) > 0 {
		keywords, err := s.keywordRepo.FindByIDs(ctx, keywordIDs)
		if err != nil {
			return nil, fmt.Errorf("failed to fetch keywords: %w", err)
		}
		return keywords, nil
	}
	if projectID == nil {
		return nil, nil
	}
	keywords, err := s.keywordRepo.FindByProjectID(ctx, *projectID)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch project keywords: %w", err)
	}
	return keywords, nil
}

// processBatch walks the batch one keyword at a time. A failure on one
// keyword never aborts the rest.
func (s *Service) processBatch(ctx context.Context, keywords []domain.Keyword, mode string, kind pricingservice.ActionKind, isLive, throttled bool) *Summary {
	summary := &Summary{}

	for _, keyword := range keywords {
		if ctx.Err() != nil {
			zap.L().Info("Batch interrupted", zap.String("mode", mode))
			break
		}
		switch s.processOne(ctx, keyword, kind, isLive, throttled) {
		case outcomeProcessed:
			metrics.ChecksProcessed.WithLabelValues(mode).Inc()
			summary.Processed++
		case outcomeSkipped:
			summary.Skipped++
		case outcomeFailed:
			summary.Failed++
		}
	}

	zap.L().Info("Batch completed",
		zap.String("mode", mode),
		zap.Int("processed", summary.Processed),
		zap.Int("skipped", summary.Skipped),
		zap.Int("failed", summary.Failed))
	return summary
}

type outcome int

const (
	outcomeProcessed outcome = iota
	outcomeSkipped
	outcomeFailed
)

func (s *Service) processOne(ctx context.Context, keyword domain.Keyword, kind pricingservice.ActionKind, isLive, throttled bool) outcome {
	if throttled && keyword.LastCheckedAt != nil && s.now().Sub(*keyword.LastCheckedAt) < throttleWindow {
		metrics.ChecksSkipped.WithLabelValues("recent").Inc()
		return outcomeSkipped
	}

	project, err := s.projectRepo.GetByID(ctx, keyword.ProjectID)
	if err != nil {
		zap.L().Error("Failed to fetch project",
			zap.Error(err), zap.Int("keywordID", keyword.ID))
		return outcomeFailed
	}
	if project == nil {
		metrics.ChecksSkipped.WithLabelValues("orphaned").Inc()
		return outcomeSkipped
	}

	metadata := fmt.Sprintf(`{"keyword_id": %d, "project_id": %d}`, keyword.ID, project.ID)
	if _, err := s.billing.Deduct(ctx, project.UserID, kind, metadata); err != nil {
		if errors.Is(err, balanceservice.ErrInsufficientBalance) {
			zap.L().Info("Balance exhausted, skipping keyword",
				zap.Int("keywordID", keyword.ID), zap.Int("userID", project.UserID))
			metrics.ChecksSkipped.WithLabelValues("insufficient_balance").Inc()
			return outcomeSkipped
		}
		zap.L().Error("Deduction failed",
			zap.Error(err), zap.Int("keywordID", keyword.ID))
		return outcomeFailed
	}

	if err := s.keywordRepo.MarkQueued(ctx, keyword.ID, s.now()); err != nil {
		zap.L().Error("Failed to queue keyword",
			zap.Error(err), zap.Int("keywordID", keyword.ID))
		return outcomeFailed
	}

	result, err := s.checker.Check(ctx, keyword.ID, isLive)
	if err != nil {
		zap.L().Error("Keyword check failed",
			zap.Error(err), zap.Int("keywordID", keyword.ID))
		return outcomeFailed
	}
	if result == nil {
		// the keyword or its project vanished after selection
		metrics.ChecksSkipped.WithLabelValues("stale").Inc()
		return outcomeSkipped
	}
	return outcomeProcessed
}
