// Package platform checks whether a username exists on public code hosting
// and publishing platforms.
package platform

import (
	"context"
	"fmt"
	"net/http"
	"recon/pkg/domain"
	"recon/pkg/logger"
	"recon/pkg/osint"
	"strings"

	"go.uber.org/zap"
)

// Platform names, in the order the checkers are declared by Defaults.
const (
	NameGitHub    = "GitHub"
	NameGitLab    = "GitLab"
	NameDevTo     = "Dev.to"
	NameBitbucket = "Bitbucket"
)

// profile is what a platform response decodes to.
type profile struct {
	Found      bool
	ProfileURL string
	AvatarURL  string
}

// Checker performs one user lookup against one platform. The endpoint and
// response shape are platform specific; everything else is shared.
// It is safe for concurrent use.
type Checker struct {
	name       string
	httpClient *http.Client
	baseURL    string
	endpoint   func(baseURL, username string) string
	decode     func(body []byte, username string) (profile, error)
}

// Platform implements osint.PlatformChecker.
func (c *Checker) Platform() string { return c.name }

// Check implements osint.PlatformChecker. Only HTTP 200 counts as found;
// every other status, transport failure or undecodable body is reported as
// not found without partial data.
func (c *Checker) Check(ctx context.Context, username string) domain.PlatformResult {
	ctx = logger.WithFields(ctx, zap.String("source", c.name), zap.String("username", username))
	notFound := domain.PlatformResult{Platform: c.name, Found: false}

	resp, err := osint.Get(ctx, c.httpClient, c.endpoint(c.baseURL, username), "")
	if err != nil {
		logger.Warn(ctx, "platform lookup failed", zap.Error(err))

		return notFound
	}
	if resp.StatusCode != http.StatusOK {
		logger.Debug(ctx, "platform user not found", zap.Int("status", resp.StatusCode))

		return notFound
	}

	p, err := c.decode(resp.Body, username)
	if err != nil {
		logger.Warn(ctx, "could not decode platform response", zap.Error(err))

		return notFound
	}
	if !p.Found {
		return notFound
	}

	return domain.PlatformResult{
		Platform:   c.name,
		Found:      true,
		ProfileURL: p.ProfileURL,
		AvatarURL:  p.AvatarURL,
	}
}

var _ osint.PlatformChecker = (*Checker)(nil)

// BaseURLs overrides the API roots of the platforms. Empty fields select the
// public endpoints.
type BaseURLs struct {
	GitHub    string
	GitLab    string
	DevTo     string
	Bitbucket string
}

// Defaults returns the four platform checkers in declaration order: GitHub,
// GitLab, Dev.to, Bitbucket. Avatar selection relies on this order.
func Defaults(httpClient *http.Client, urls BaseURLs) []osint.PlatformChecker {
	return []osint.PlatformChecker{
		NewGitHub(httpClient, urls.GitHub),
		NewGitLab(httpClient, urls.GitLab),
		NewDevTo(httpClient, urls.DevTo),
		NewBitbucket(httpClient, urls.Bitbucket),
	}
}

func orDefault(baseURL, def string) string {
	if baseURL == "" {
		return def
	}

	return strings.TrimRight(baseURL, "/")
}

func decodeErr(name string, err error) error {
	return fmt.Errorf("could not decode %s response: %w", name, err)
}
