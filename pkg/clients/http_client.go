package clients

import (
	"context"
	"errors"
	"io"
	"net/http"
	"net/url"
	"time"
)

const timeout = time.Second * 15

// apiKeyHeader carries the SERP provider credential on every upstream call.
const apiKeyHeader = "X-Api-Key"

var ErrFailedCloseResponseBody = errors.New("failed close response body")

type HTTPClientI interface {
	Do(req *http.Request) (*http.Response, error)
	GetJSON(ctx context.Context, rawURL string, query url.Values, apiKey string) (statusCode int, respBody []byte, err error)
}

type HTTPClientAdapter struct {
	client *http.Client
}

func (h *HTTPClientAdapter) Do(req *http.Request) (*http.Response, error) {
	return h.client.Do(req)
}

// GetJSON issues a GET with the query string attached and the API key, if
// any, in the request header, and returns the raw body for the caller to
// decode.
func (h *HTTPClientAdapter) GetJSON(ctx context.Context, rawURL string, query url.Values, apiKey string) (statusCode int, respBody []byte, err error) {
	if len(query) > 0 {
		rawURL += "?" + query.Encode()
	}
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, rawURL, http.NoBody)
	if err != nil {
		return
	}

	req.Header.Set("Accept", "application/json")
	if apiKey != "" {
		req.Header.Set(apiKeyHeader, apiKey)
	}
	resp, err := h.client.Do(req)
	if err != nil {
		return
	}

	defer func() {
		if e := resp.Body.Close(); e != nil {
			err = errors.Join(err, ErrFailedCloseResponseBody)
		}
	}()

	respBody, err = io.ReadAll(resp.Body)
	if err != nil {
		return
	}
	statusCode = resp.StatusCode

	return
}

type HTTPClient struct {
	client HTTPClientI
}

func NewHTTPClient() *HTTPClient {
	return &HTTPClient{
		client: &HTTPClientAdapter{
			client: &http.Client{Timeout: timeout},
		},
	}
}

func (h *HTTPClient) GetJSON(ctx context.Context, rawURL string, query url.Values, apiKey string) (statusCode int, respBody []byte, err error) {
	return h.client.GetJSON(ctx, rawURL, query, apiKey)
}

func (h *HTTPClient) Do(req *http.Request) (*http.Response, error) {
	return h.client.Do(req)
}
