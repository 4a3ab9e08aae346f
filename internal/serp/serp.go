package serp

import (
	"context"
	"fmt"

	"github.com/akazarov/serptrack/internal/config"
	"github.com/akazarov/serptrack/pkg/clients"
)

// Result is one organic search result. Rank is 1-based across pages.
type Result struct {
	Rank    int    `json:"rank"`
	URL     string `json:"url"`
	Title   string `json:"title"`
	Snippet string `json:"snippet"`
}

// Query describes one ranking lookup. TargetDomain lets the provider stop
// paging as soon as the wanted site has appeared.
type Query struct {
	Term         string
	Country      string
	Device       string
	TargetDomain string
}

// ProviderError carries the upstream failure message. Callers treat it as
// "rank not determined this cycle", never as a batch-stopping failure.
type ProviderError struct {
	Message string
}

func (e *ProviderError) Error() string {
	return fmt.Sprintf("serp provider error: %s", e.Message)
}

type Provider interface {
	FetchTopResults(ctx context.Context, query Query) ([]Result, error)
}

// NewProvider selects the implementation once at startup: a configured API
// key means the live client, otherwise the mock keeps development flowing.
func NewProvider(cfg *config.Config, client clients.HTTPClientI) Provider {
	if cfg.SerpAPIKey == "" {
		return NewMockProvider()
	}
	return NewLiveProvider(cfg, client)
}
