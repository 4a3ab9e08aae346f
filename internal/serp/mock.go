package serp

import (
	"context"
	"fmt"
	"math/rand"

	"go.uber.org/zap"
)

// MockProvider synthesizes a plausible random rank so development and tests
// keep flowing without upstream credentials.
type MockProvider struct {
	randRank func() int
}

func NewMockProvider() *MockProvider {
	return &MockProvider{
		randRank: func() int { return rand.Intn(100) + 1 },
	}
}

func (p *MockProvider) FetchTopResults(_ context.Context, query Query) ([]Result, error) {
	rank := p.randRank()
	zap.L().Debug("mock serp provider used",
		zap.String("term", query.Term), zap.Int("rank", rank))

	results := make([]Result, 0, rank)
	for i := 1; i < rank; i++ {
		results = append(results, Result{
			Rank:    i,
			URL:     fmt.Sprintf("https://competitor-%d.example.org/page", i),
			Title:   fmt.Sprintf("Result %d for %s", i, query.Term),
			Snippet: "synthetic result",
		})
	}
	results = append(results, Result{
		Rank:    rank,
		URL:     fmt.Sprintf("https://www.%s/", query.TargetDomain),
		Title:   fmt.Sprintf("Result %d for %s", rank, query.Term),
		Snippet: "synthetic result",
	})
	return results, nil
}
