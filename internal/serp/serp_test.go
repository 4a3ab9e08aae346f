package serp

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"net/url"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	gomock "go.uber.org/mock/gomock"

	"github.com/akazarov/serptrack/internal/config"
	"github.com/akazarov/serptrack/pkg/clients"
)

func newLive(t *testing.T) (*LiveProvider, *clients.MockHTTPClientI) {
	ctrl := gomock.NewController(t)
	client := clients.NewMockHTTPClientI(ctrl)
	cfg := &config.Config{SerpAddress: "http://localhost:8081", SerpAPIKey: "test-key"}
	provider := NewLiveProvider(cfg, client)
	provider.delay = time.Millisecond
	defer ctrl.Finish()
	return provider, client
}

func page(urls ...string) []byte {
	body := `{"results":[`
	for i, u := range urls {
		if i > 0 {
			body += ","
		}
		body += fmt.Sprintf(`{"url":%q,"title":"t","snippet":"s"}`, u)
	}
	return []byte(body + `]}`)
}

func fullPage(prefix string) []byte {
	urls := make([]string, 10)
	for i := range urls {
		urls[i] = fmt.Sprintf("https://%s-%d.org/x", prefix, i)
	}
	return page(urls...)
}

func TestLiveProvider_RequestShaping(t *testing.T) {
	provider, client := newLive(t)

	client.EXPECT().GetJSON(gomock.Any(), "http://localhost:8081/api/v1/search", gomock.Any(), "test-key").DoAndReturn(
		func(_ context.Context, _ string, query url.Values, _ string) (int, []byte, error) {
			assert.Equal(t, "best coffee", query.Get("q"))
			assert.Equal(t, "us", query.Get("country"))
			assert.Equal(t, "desktop", query.Get("device"))
			assert.Equal(t, "10", query.Get("num"))
			assert.Equal(t, "0", query.Get("start"))
			return http.StatusOK, page(), nil
		})

	_, err := provider.FetchTopResults(context.Background(), Query{
		Term: "best coffee", Country: "us", Device: "desktop", TargetDomain: "example.com",
	})
	assert.NoError(t, err)
}

func TestLiveProvider_TargetOnSecondPage(t *testing.T) {
	provider, client := newLive(t)

	// page 1 has no match, the target sits at rank 13 on page 2
	client.EXPECT().GetJSON(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).Return(http.StatusOK, fullPage("other"), nil)
	secondPage := page(
		"https://a.org/1", "https://b.org/2",
		"https://www.example.com/landing",
		"https://c.org/4",
	)
	client.EXPECT().GetJSON(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).Return(http.StatusOK, secondPage, nil)

	results, err := provider.FetchTopResults(context.Background(), Query{
		Term: "best coffee", Country: "us", Device: "desktop", TargetDomain: "example.com",
	})
	assert.NoError(t, err)
	assert.Len(t, results, 14)
	assert.Equal(t, 13, results[12].Rank)
	assert.Equal(t, "https://www.example.com/landing", results[12].URL)
}

func TestLiveProvider_EmptyPageStopsEarly(t *testing.T) {
	provider, client := newLive(t)

	client.EXPECT().GetJSON(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).Return(http.StatusOK, fullPage("other"), nil)
	client.EXPECT().GetJSON(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).Return(http.StatusOK, page(), nil)

	results, err := provider.FetchTopResults(context.Background(), Query{
		Term: "rare term", TargetDomain: "example.com",
	})
	assert.NoError(t, err)
	assert.Len(t, results, 10)
}

func TestLiveProvider_ScansAtMostTenPages(t *testing.T) {
	provider, client := newLive(t)

	client.EXPECT().GetJSON(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).Return(http.StatusOK, fullPage("other"), nil).Times(10)

	results, err := provider.FetchTopResults(context.Background(), Query{
		Term: "busy term", TargetDomain: "example.com",
	})
	assert.NoError(t, err)
	assert.Len(t, results, 100)
	assert.Equal(t, 100, results[99].Rank)
}

func TestLiveProvider_Errors(t *testing.T) {
	tests := []struct {
		name        string
		prepareMock func(client *clients.MockHTTPClientI)
	}{
		{
			name: "Transport error",
			prepareMock: func(client *clients.MockHTTPClientI) {
				client.EXPECT().GetJSON(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).Return(0, nil, errors.New("connection refused"))
			},
		},
		{
			name: "Unexpected status code",
			prepareMock: func(client *clients.MockHTTPClientI) {
				client.EXPECT().GetJSON(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).Return(http.StatusTooManyRequests, nil, nil)
			},
		},
		{
			name: "Provider-reported error payload",
			prepareMock: func(client *clients.MockHTTPClientI) {
				client.EXPECT().GetJSON(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).Return(http.StatusOK, []byte(`{"error":"quota exceeded"}`), nil)
			},
		},
		{
			name: "Malformed body",
			prepareMock: func(client *clients.MockHTTPClientI) {
				client.EXPECT().GetJSON(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).Return(http.StatusOK, []byte("<html>"), nil)
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			provider, client := newLive(t)
			tt.prepareMock(client)

			_, err := provider.FetchTopResults(context.Background(), Query{Term: "x"})
			var provErr *ProviderError
			assert.ErrorAs(t, err, &provErr)
		})
	}
}

func TestMockProvider_TargetAtSynthesizedRank(t *testing.T) {
	provider := NewMockProvider()
	provider.randRank = func() int { return 42 }

	results, err := provider.FetchTopResults(context.Background(), Query{
		Term: "anything", TargetDomain: "example.com",
	})
	assert.NoError(t, err)
	assert.Len(t, results, 42)
	assert.Equal(t, "https://www.example.com/", results[41].URL)
}

func TestNewProvider_Selection(t *testing.T) {
	client := clients.NewHTTPClient()

	provider := NewProvider(&config.Config{SerpAPIKey: ""}, client)
	assert.IsType(t, &MockProvider{}, provider)

	provider = NewProvider(&config.Config{SerpAPIKey: "key", SerpAddress: "http://localhost:8081"}, client)
	assert.IsType(t, &LiveProvider{}, provider)
}
