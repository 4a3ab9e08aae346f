package serp

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"time"

	"go.uber.org/zap"

	"github.com/akazarov/serptrack/internal/config"
	"github.com/akazarov/serptrack/pkg/clients"
	"github.com/akazarov/serptrack/pkg/domainmatch"
	"github.com/akazarov/serptrack/pkg/metrics"
)

const (
	maxPages  = 10
	pageSize  = 10
	pageDelay = 500 * time.Millisecond
)

type pageResponse struct {
	Error   string `json:"error,omitempty"`
	Results []struct {
		URL     string `json:"url"`
		Title   string `json:"title"`
		Snippet string `json:"snippet"`
	} `json:"results"`
}

// LiveProvider pages through the upstream API 10 results at a time, up to
// rank 100. The fixed delay between pages is plain pacing against the
// upstream per-account limit, not adaptive backoff.
type LiveProvider struct {
	baseURL string
	apiKey  string
	client  clients.HTTPClientI
	delay   time.Duration
}

func NewLiveProvider(cfg *config.Config, client clients.HTTPClientI) *LiveProvider {
	return &LiveProvider{
		baseURL: cfg.SerpAddress,
		apiKey:  cfg.SerpAPIKey,
		client:  client,
		delay:   pageDelay,
	}
}

func (p *LiveProvider) FetchTopResults(ctx context.Context, query Query) ([]Result, error) {
	var results []Result

	for page := 0; page < maxPages; page++ {
		if page > 0 {
			select {
			case <-ctx.Done():
				return nil, ctx.Err()
			case <-time.After(p.delay):
			}
		}

		pageResults, err := p.fetchPage(ctx, query, page*pageSize)
		if err != nil {
			metrics.SerpRequests.WithLabelValues("error").Inc()
			return nil, err
		}
		metrics.SerpRequests.WithLabelValues("ok").Inc()

		if len(pageResults) == 0 {
			break
		}
		results = append(results, pageResults...)

		if p.targetFound(pageResults, query.TargetDomain) {
			break
		}
	}
	return results, nil
}

func (p *LiveProvider) fetchPage(ctx context.Context, query Query, start int) ([]Result, error) {
	values := url.Values{}
	values.Set("q", query.Term)
	values.Set("country", query.Country)
	values.Set("device", query.Device)
	values.Set("num", fmt.Sprint(pageSize))
	values.Set("start", fmt.Sprint(start))

	statusCode, respBody, err := p.client.GetJSON(ctx, p.baseURL+"/api/v1/search", values, p.apiKey)
	if err != nil {
		return nil, &ProviderError{Message: err.Error()}
	}
	if statusCode != http.StatusOK {
		return nil, &ProviderError{Message: fmt.Sprintf("unexpected status code %d", statusCode)}
	}

	var resp pageResponse
	if err := json.Unmarshal(respBody, &resp); err != nil {
		return nil, &ProviderError{Message: fmt.Sprintf("failed to parse response: %v", err)}
	}
	if resp.Error != "" {
		return nil, &ProviderError{Message: resp.Error}
	}

	results := make([]Result, 0, len(resp.Results))
	for i, r := range resp.Results {
		results = append(results, Result{
			Rank:    start + i + 1,
			URL:     r.URL,
			Title:   r.Title,
			Snippet: r.Snippet,
		})
	}
	return results, nil
}

func (p *LiveProvider) targetFound(results []Result, target string) bool {
	if target == "" {
		return false
	}
	for _, r := range results {
		if domainmatch.Matches(r.URL, target) {
			zap.L().Debug("target domain found, stopping pagination",
				zap.String("target", target), zap.Int("rank", r.Rank))
			return true
		}
	}
	return false
}
