// Package debounce classifies disposable email addresses with the free
// disposable.debounce.io reputation endpoint.
package debounce

import (
	"context"
	"net/http"
	"net/url"
	"recon/pkg/domain"
	"recon/pkg/logger"
	"recon/pkg/osint"
	"strings"

	"github.com/go-faster/errors"
	"github.com/go-faster/jx"
	"go.uber.org/zap"
)

// DefaultBaseURL is the public reputation endpoint.
const DefaultBaseURL = "https://disposable.debounce.io"

// Client is an osint.DisposableClassifier. It is safe for concurrent use.
type Client struct {
	httpClient *http.Client
	baseURL    string
}

// Classify implements osint.DisposableClassifier. The service transmits the
// verdict as the string "true" or "false"; only the literal string "true"
// marks the address disposable. Any failure yields domain.ReasonCheckFailed
// with IsDisposable false.
func (c *Client) Classify(ctx context.Context, email string) domain.DisposabilityResult {
	ctx = logger.WithFields(ctx, zap.String("source", "debounce"))
	failed := domain.DisposabilityResult{IsDisposable: false, Reason: domain.ReasonCheckFailed}

	resp, err := osint.Get(ctx, c.httpClient, c.baseURL+"/?"+url.Values{"email": {email}}.Encode(), "")
	if err != nil {
		logger.Warn(ctx, "disposable check failed", zap.Error(err))

		return failed
	}
	if !resp.OK() {
		logger.Warn(ctx, "disposable check answered with error", zap.Int("status", resp.StatusCode))

		return failed
	}

	disposable, err := DecodeVerdict(resp.Body)
	if err != nil {
		logger.Warn(ctx, "could not decode disposable check response", zap.Error(err))

		return failed
	}
	if disposable {
		return domain.DisposabilityResult{IsDisposable: true, Reason: domain.ReasonDisposable}
	}

	return domain.DisposabilityResult{IsDisposable: false, Reason: domain.ReasonLegitimate}
}

// DecodeVerdict reads the "disposable" field of a response body. A missing
// field or any value other than the string "true" means not disposable.
func DecodeVerdict(body []byte) (bool, error) {
	var disposable bool
	d := jx.DecodeBytes(body)
	if err := d.ObjBytes(func(d *jx.Decoder, key []byte) error {
		if string(key) != "disposable" || d.Next() != jx.String {
			return d.Skip()
		}
		v, err := d.Str()
		if err != nil {
			return errors.Wrap(err, "disposable")
		}
		disposable = v == "true"

		return nil
	}); err != nil {
		return false, errors.Wrap(err, "decode verdict")
	}

	return disposable, nil
}

var _ osint.DisposableClassifier = (*Client)(nil)

// New constructs a Client. An empty baseURL selects DefaultBaseURL.
func New(httpClient *http.Client, baseURL string) *Client {
	if baseURL == "" {
		baseURL = DefaultBaseURL
	}

	return &Client{httpClient: httpClient, baseURL: strings.TrimRight(baseURL, "/")}
}
