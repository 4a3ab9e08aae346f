package pricingservice

import (
	"context"
	"errors"
	"fmt"
	"strconv"

	"go.uber.org/zap"
)

var (
	ErrUnknownAction = errors.New("unknown action kind")
	ErrInvalidCost   = errors.New("cost must not be negative")
)

// ActionKind enumerates every billable operation.
type ActionKind string

const (
	ActionStandardCheck   ActionKind = "standard_check"
	ActionLiveCheck       ActionKind = "live_check"
	ActionAIOverviewCheck ActionKind = "ai_overview_check"
	ActionSearchVolume    ActionKind = "search_volume"
	ActionCompetitors     ActionKind = "competitor_analysis"
	ActionKeywordResearch ActionKind = "keyword_research"
	ActionOnPageAudit     ActionKind = "onpage_audit"
	ActionRelatedKeywords ActionKind = "related_keywords"
)

// Compiled-in per-action costs in EUR. A settings row "pricing.<action>"
// takes precedence.
var defaultCosts = map[ActionKind]float64{
	ActionStandardCheck:   0.02,
	ActionLiveCheck:       0.03,
	ActionAIOverviewCheck: 0.03,
	ActionSearchVolume:    0.01,
	ActionCompetitors:     0.05,
	ActionKeywordResearch: 0.10,
	ActionOnPageAudit:     0.05,
	ActionRelatedKeywords: 0.02,
}

type SettingsRepo interface {
	Get(ctx context.Context, key string) (string, bool, error)
	Set(ctx context.Context, key, value string) error
}

// ParseAction validates an externally supplied action name.
func ParseAction(raw string) (ActionKind, error) {
	kind := ActionKind(raw)
	if _, ok := defaultCosts[kind]; !ok {
		return "", fmt.Errorf("%w: %s", ErrUnknownAction, raw)
	}
	return kind, nil
}

type Service struct {
	settingsRepo SettingsRepo
}

func New(settingsRepo SettingsRepo) *Service {
	return &Service{
		settingsRepo: settingsRepo,
	}
}

// Cost returns the price of one action. An unknown kind is a programming
// error, not a runtime condition, hence the panic. Settings failures fall
// back to the compiled-in table.
func (s *Service) Cost(ctx context.Context, kind ActionKind) float64 {
	def, ok := defaultCosts[kind]
	if !ok {
		panic(fmt.Sprintf("pricing: unknown action kind %q", kind))
	}

	value, found, err := s.settingsRepo.Get(ctx, "pricing."+string(kind))
	if err != nil || !found {
		return def
	}

	cost, err := strconv.ParseFloat(value, 64)
	if err != nil || cost < 0 {
		zap.L().Error("invalid pricing override, using default",
			zap.String("action", string(kind)), zap.String("value", value))
		return def
	}
	return cost
}

// SetCost persists a pricing override that takes precedence over the
// compiled-in table on subsequent reads.
func (s *Service) SetCost(ctx context.Context, kind ActionKind, cost float64) error {
	if _, ok := defaultCosts[kind]; !ok {
		return fmt.Errorf("%w: %s", ErrUnknownAction, kind)
	}
	if cost < 0 {
		return fmt.Errorf("%w, got %f", ErrInvalidCost, cost)
	}
	if err := s.settingsRepo.Set(ctx, "pricing."+string(kind), strconv.FormatFloat(cost, 'f', -1, 64)); err != nil {
		return fmt.Errorf("failed to store pricing override: %w", err)
	}
	zap.L().Info("pricing override stored",
		zap.String("action", string(kind)), zap.Float64("cost", cost))
	return nil
}
