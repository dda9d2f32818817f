package doh

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"recon/pkg/domain"
	"recon/pkg/logger"
	"recon/pkg/osint"
	"strconv"
	"strings"

	"github.com/miekg/dns"
	"go.uber.org/zap"
)

// JSONResolver resolves MX records through the resolver's JSON API.
// It is safe for concurrent use.
type JSONResolver struct {
	httpClient *http.Client
	baseURL    string
}

// jsonResponse is the subset of the JSON API answer we read.
// https://developers.google.com/speed/public-dns/docs/doh/json
type jsonResponse struct {
	Status int `json:"Status"`
	Answer []struct {
		Type uint16 `json:"type"`
		Data string `json:"data"`
	} `json:"Answer"`
}

// ValidateDomain implements osint.DomainValidator.
func (r *JSONResolver) ValidateDomain(ctx context.Context, name string) domain.DomainResult {
	ctx = logger.WithFields(ctx, zap.String("source", "doh"), zap.String("domain", name))

	q := url.Values{}
	q.Set("name", name)
	q.Set("type", "MX")

	resp, err := osint.Get(ctx, r.httpClient, r.baseURL+"/resolve?"+q.Encode(), "application/dns-json")
	if err != nil {
		return lookupFailed(ctx, "transport", err)
	}
	if !resp.OK() {
		return lookupFailed(ctx, "status", fmt.Errorf("unexpected status %d", resp.StatusCode))
	}

	var body jsonResponse
	if err := json.Unmarshal(resp.Body, &body); err != nil {
		return lookupFailed(ctx, "decode", err)
	}
	if body.Status != dns.RcodeSuccess {
		logger.Debug(ctx, "resolver reported failure", zap.Int("status", body.Status))

		return domain.DomainResult{Valid: false, Server: domain.ServerNXDomain}
	}

	records := make([]mxRecord, 0, len(body.Answer))
	for _, a := range body.Answer {
		// CNAME answers may precede the MX set
		if a.Type != 0 && a.Type != dns.TypeMX {
			continue
		}
		rec, ok := parseMXData(a.Data)
		if !ok {
			logger.Debug(ctx, "skipping malformed mx answer", zap.String("data", a.Data))

			continue
		}
		records = append(records, rec)
	}

	return primaryMX(records)
}

// parseMXData parses the presentation form "<preference> <host>".
func parseMXData(data string) (mxRecord, bool) {
	fields := strings.Fields(data)
	if len(fields) < 2 {
		return mxRecord{}, false
	}
	pref, err := strconv.Atoi(fields[0])
	if err != nil {
		return mxRecord{}, false
	}

	return mxRecord{Preference: pref, Host: fields[len(fields)-1]}, true
}

var _ osint.DomainValidator = (*JSONResolver)(nil)

// NewJSONResolver constructs a JSONResolver. An empty baseURL selects DefaultBaseURL.
func NewJSONResolver(httpClient *http.Client, baseURL string) *JSONResolver {
	return &JSONResolver{httpClient: httpClient, baseURL: baseOrDefault(baseURL)}
}
