package newsapi_test

import (
	"context"
	"errors"
	"io"
	"net/http"
	"recon/pkg/domain"
	"recon/pkg/newsfeed/newsapi"
	"recon/pkg/serrors"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

// rtFunc allows using a function as an http.RoundTripper.
type rtFunc func(*http.Request) (*http.Response, error)

func (f rtFunc) RoundTrip(r *http.Request) (*http.Response, error) { return f(r) }

func newTestClient(fn rtFunc) *newsapi.Client {
	return newsapi.New(&http.Client{Transport: fn}, "", "test-key")
}

func respond(status int, body string) rtFunc {
	return func(*http.Request) (*http.Response, error) {
		return &http.Response{StatusCode: status, Body: io.NopCloser(strings.NewReader(body))}, nil
	}
}

func TestEverything_Success(t *testing.T) {
	c := newTestClient(func(r *http.Request) (*http.Response, error) {
		require.Equal(t, http.MethodGet, r.Method)
		require.Equal(t, "newsapi.org", r.URL.Host)
		require.Equal(t, "/v2/everything", r.URL.Path)
		require.Equal(t, `ransomware OR "data breach"`, r.URL.Query().Get("q"))
		require.Equal(t, "publishedAt", r.URL.Query().Get("sortBy"))
		require.Equal(t, "en", r.URL.Query().Get("language"))
		require.Equal(t, "test-key", r.Header.Get("X-Api-Key"))

		return respond(http.StatusOK, `{"status":"ok","totalResults":1,"articles":[{
			"source":{"id":null,"name":"The Hacker News"},
			"author":"Jane",
			"title":"Zero-day patched",
			"description":"An emergency update.",
			"url":"https://news.example/zero-day",
			"urlToImage":"https://news.example/zero-day.png",
			"publishedAt":"2024-05-01T10:00:00Z",
			"content":"Body"
		}]}`)(r)
	})

	articles, err := c.Everything(context.Background(), `ransomware OR "data breach"`)
	require.NoError(t, err)
	require.Equal(t, []domain.Article{{
		Source:      "The Hacker News",
		Author:      "Jane",
		Title:       "Zero-day patched",
		Description: "An emergency update.",
		URL:         "https://news.example/zero-day",
		ImageURL:    "https://news.example/zero-day.png",
		Content:     "Body",
		PublishedAt: time.Date(2024, 5, 1, 10, 0, 0, 0, time.UTC),
	}}, articles)
}

func TestEverything_Errors(t *testing.T) {
	tests := []struct {
		name     string
		rt       rtFunc
		wantKind error
		contains string
	}{
		{
			name:     "rate limited",
			rt:       respond(http.StatusTooManyRequests, `{"status":"error","code":"rateLimited","message":"too many"}`),
			wantKind: serrors.ErrRateLimited,
			contains: "too many",
		},
		{
			name:     "unauthorized",
			rt:       respond(http.StatusUnauthorized, `{"status":"error","code":"apiKeyInvalid","message":"bad key"}`),
			wantKind: serrors.ErrUnauthorized,
			contains: "bad key",
		},
		{
			name:     "other status carries provider message",
			rt:       respond(http.StatusBadRequest, `{"status":"error","code":"parameterInvalid","message":"q is required"}`),
			contains: "q is required",
		},
		{
			name:     "status error in body",
			rt:       respond(http.StatusOK, `{"status":"error","code":"unexpectedError","message":"boom"}`),
			contains: "boom",
		},
		{
			name:     "malformed body",
			rt:       respond(http.StatusOK, `{`),
			contains: "decode",
		},
		{
			name: "transport",
			rt: func(*http.Request) (*http.Response, error) {
				return nil, errors.New("dial tcp: refused")
			},
			contains: "refused",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := newTestClient(tt.rt).Everything(context.Background(), "q")
			require.Error(t, err)
			require.Contains(t, err.Error(), tt.contains)
			if tt.wantKind != nil {
				require.True(t, errors.Is(err, tt.wantKind))
			}
		})
	}
}
