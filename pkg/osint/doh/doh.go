// Package doh validates email domains by resolving their mail exchange
// records through a public DNS-over-HTTPS resolver.
package doh

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

// Resolver modes.
const (
	// ModeJSON uses the JSON API of the resolver (/resolve).
	ModeJSON = "json"
	// ModeWire uses RFC 8484 wire format (/dns-query).
	ModeWire = "wire"
)

// DefaultBaseURL is the public resolver used when no base URL is configured.
const DefaultBaseURL = "https://dns.google"

// mxRecord is a single mail exchange answer.
type mxRecord struct {
	Preference int
	Host       string
}

// primaryMX picks the record with the lowest preference number. Ties keep the
// record that was listed first.
func primaryMX(records []mxRecord) domain.DomainResult {
	if len(records) == 0 {
		return domain.DomainResult{Valid: false, Server: domain.ServerNXDomain}
	}

	best := records[0]
	for _, r := range records[1:] {
		if r.Preference < best.Preference {
			best = r
		}
	}

	return domain.DomainResult{Valid: true, Server: strings.TrimSuffix(best.Host, ".")}
}

func lookupFailed(ctx context.Context, reason string, err error) domain.DomainResult {
	logger.Warn(ctx, "mx lookup failed", zap.String("reason", reason), zap.Error(err))

	return domain.DomainResult{Valid: false, Server: domain.ServerLookupFailed}
}

// New returns the resolver for the given mode.
func New(mode string, httpClient *http.Client, baseURL string) (osint.DomainValidator, error) {
	switch mode {
	case "", ModeJSON:
		return NewJSONResolver(httpClient, baseURL), nil
	case ModeWire:
		return NewWireResolver(httpClient, baseURL), nil
	default:
		return nil, fmt.Errorf("unknown resolver mode %q", mode)
	}
}

func baseOrDefault(baseURL string) string {
	if baseURL == "" {
		return DefaultBaseURL
	}

	return strings.TrimRight(baseURL, "/")
}
