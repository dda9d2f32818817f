// Package unavatar resolves avatars registered for an email address through
// the unavatar.io aggregator (Gravatar, Clearbit and friends).
package unavatar

import (
	"context"
	"encoding/json"
	"net/http"
	"net/url"
	"recon/pkg/logger"
	"recon/pkg/osint"
	"strings"

	"go.uber.org/zap"
)

// DefaultBaseURL is the public aggregator.
const DefaultBaseURL = "https://unavatar.io"

// fallbackMarker appears in the URL the aggregator hands out when it knows
// nothing about the address.
const fallbackMarker = "fallback"

// Client is an osint.AvatarResolver backed by unavatar.io.
// It is safe for concurrent use.
type Client struct {
	httpClient *http.Client
	baseURL    string
}

// ResolveAvatar implements osint.AvatarResolver.
func (c *Client) ResolveAvatar(ctx context.Context, email string) (string, bool) {
	ctx = logger.WithFields(ctx, zap.String("source", "unavatar"))

	resp, err := osint.Get(ctx, c.httpClient, c.baseURL+"/"+url.PathEscape(email)+"?json=true", "")
	if err != nil {
		logger.Warn(ctx, "avatar lookup failed", zap.Error(err))

		return "", false
	}
	if !resp.OK() {
		logger.Debug(ctx, "avatar registry answered with error", zap.Int("status", resp.StatusCode))

		return "", false
	}

	var body struct {
		URL string `json:"url"`
	}
	if err := json.Unmarshal(resp.Body, &body); err != nil {
		logger.Warn(ctx, "could not decode avatar response", zap.Error(err))

		return "", false
	}
	if body.URL == "" || strings.Contains(body.URL, fallbackMarker) {
		return "", false
	}

	return body.URL, true
}

var _ osint.AvatarResolver = (*Client)(nil)

// New constructs a Client. An empty baseURL selects DefaultBaseURL.
func New(httpClient *http.Client, baseURL string) *Client {
	if baseURL == "" {
		baseURL = DefaultBaseURL
	}

	return &Client{httpClient: httpClient, baseURL: strings.TrimRight(baseURL, "/")}
}
