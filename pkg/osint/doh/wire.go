package doh

import (
	"context"
	"encoding/base64"
	"fmt"
	"net/http"
	"recon/pkg/domain"
	"recon/pkg/logger"
	"recon/pkg/osint"

	"github.com/miekg/dns"
	"go.uber.org/zap"
)

// WireResolver resolves MX records with RFC 8484 wire-format GET requests.
// It is safe for concurrent use.
type WireResolver struct {
	httpClient *http.Client
	baseURL    string
}

// ValidateDomain implements osint.DomainValidator.
func (r *WireResolver) ValidateDomain(ctx context.Context, name string) domain.DomainResult {
	ctx = logger.WithFields(ctx, zap.String("source", "doh"), zap.String("domain", name))

	query := new(dns.Msg)
	query.SetQuestion(dns.Fqdn(name), dns.TypeMX)
	// RFC 8484 4.1: use ID 0 for cache friendliness
	query.Id = 0
	packed, err := query.Pack()
	if err != nil {
		return lookupFailed(ctx, "pack", err)
	}

	URL := r.baseURL + "/dns-query?dns=" + base64.RawURLEncoding.EncodeToString(packed)
	resp, err := osint.Get(ctx, r.httpClient, URL, "application/dns-message")
	if err != nil {
		return lookupFailed(ctx, "transport", err)
	}
	if !resp.OK() {
		return lookupFailed(ctx, "status", fmt.Errorf("unexpected status %d", resp.StatusCode))
	}

	answer := new(dns.Msg)
	if err := answer.Unpack(resp.Body); err != nil {
		return lookupFailed(ctx, "unpack", err)
	}
	if answer.Rcode != dns.RcodeSuccess {
		logger.Debug(ctx, "resolver reported failure", zap.String("rcode", dns.RcodeToString[answer.Rcode]))

		return domain.DomainResult{Valid: false, Server: domain.ServerNXDomain}
	}

	records := make([]mxRecord, 0, len(answer.Answer))
	for _, rr := range answer.Answer {
		if mx, ok := rr.(*dns.MX); ok {
			records = append(records, mxRecord{Preference: int(mx.Preference), Host: mx.Mx})
		}
	}

	return primaryMX(records)
}

var _ osint.DomainValidator = (*WireResolver)(nil)

// NewWireResolver constructs a WireResolver. An empty baseURL selects DefaultBaseURL.
func NewWireResolver(httpClient *http.Client, baseURL string) *WireResolver {
	return &WireResolver{httpClient: httpClient, baseURL: baseOrDefault(baseURL)}
}
