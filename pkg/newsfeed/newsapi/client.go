// Package newsapi provides a newsfeed.Client implementation backed by the
// newsapi.org REST API.
package newsapi

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"recon/pkg/domain"
	"recon/pkg/newsfeed"
	"recon/pkg/serrors"
	"strings"
	"time"
)

// DefaultBaseURL is the public NewsAPI endpoint.
const DefaultBaseURL = "https://newsapi.org"

// Client talks to the NewsAPI REST API. It is safe for concurrent use.
type Client struct {
	httpClient *http.Client // httpClient performs HTTP requests to NewsAPI
	baseURL    string
	apiKey     string
}

type article struct {
	Source struct {
		Name string `json:"name"`
	} `json:"source"`
	Author      string    `json:"author"`
	Title       string    `json:"title"`
	Description string    `json:"description"`
	URL         string    `json:"url"`
	URLToImage  string    `json:"urlToImage"`
	PublishedAt time.Time `json:"publishedAt"`
	Content     string    `json:"content"`
}

type response struct {
	Status   string    `json:"status"`
	Code     string    `json:"code"`
	Message  string    `json:"message"`
	Articles []article `json:"articles"`
}

// Everything searches all articles matching query, sorted by publication date.
func (c *Client) Everything(ctx context.Context, query string) ([]domain.Article, error) {
	// https://newsapi.org/docs/endpoints/everything
	q := url.Values{
		"q":        {query},
		"sortBy":   {"publishedAt"},
		"language": {"en"},
	}
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+"/v2/everything?"+q.Encode(), nil)
	if err != nil {
		return nil, fmt.Errorf("could not create request: %w", err)
	}
	req.Header.Set("X-Api-Key", c.apiKey)
	req.Header.Set("Accept", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("could not send request: %w", err)
	}
	defer func() {
		_ = resp.Body.Close()
	}()

	b, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("could not read response body: %w", err)
	}

	var rs response
	decodeErr := json.Unmarshal(b, &rs)
	message := rs.Message
	if decodeErr != nil || message == "" {
		message = strings.TrimSpace(string(b))
	}

	switch {
	case resp.StatusCode == http.StatusTooManyRequests:
		return nil, serrors.With(serrors.ErrRateLimited, "rate limited: %s", message)
	case resp.StatusCode == http.StatusUnauthorized:
		return nil, serrors.With(serrors.ErrUnauthorized, "api key rejected: %s", message)
	case resp.StatusCode < 200 || resp.StatusCode >= 300:
		return nil, fmt.Errorf("search failed with status %d: %s", resp.StatusCode, message)
	case decodeErr != nil:
		return nil, fmt.Errorf("could not decode response: %w", decodeErr)
	case rs.Status == "error":
		return nil, fmt.Errorf("search failed (%s): %s", rs.Code, rs.Message)
	}

	out := make([]domain.Article, 0, len(rs.Articles))
	for _, a := range rs.Articles {
		out = append(out, domain.Article{
			Source:      a.Source.Name,
			Author:      a.Author,
			Title:       a.Title,
			Description: a.Description,
			URL:         a.URL,
			ImageURL:    a.URLToImage,
			Content:     a.Content,
			PublishedAt: a.PublishedAt,
		})
	}

	return out, nil
}

// Ensure Client conforms to the newsfeed.Client interface at compile time.
var _ newsfeed.Client = (*Client)(nil)

// New constructs a Client authenticated with apiKey. An empty baseURL selects
// DefaultBaseURL.
func New(httpClient *http.Client, baseURL, apiKey string) *Client {
	if baseURL == "" {
		baseURL = DefaultBaseURL
	}

	return &Client{
		httpClient: httpClient,
		baseURL:    strings.TrimRight(baseURL, "/"),
		apiKey:     apiKey,
	}
}
