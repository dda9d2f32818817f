// Package xposedornot looks up breaches an email address appeared in using
// the free XposedOrNot breach index.
package xposedornot

import (
	"bytes"
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

// DefaultBaseURL is the public breach index API.
const DefaultBaseURL = "https://api.xposedornot.com"

// The index reports names only. Every record carries these placeholders.
var (
	placeholderDataClasses = []string{"Email", "Password"} //nolint: gochecknoglobals
	placeholderDate        = "Unknown"                      //nolint: gochecknoglobals
)

// Client is an osint.BreachLookup. It is safe for concurrent use.
type Client struct {
	httpClient *http.Client
	baseURL    string
}

// Breaches implements osint.BreachLookup. 404 and 500 are the index's way of
// saying "not found" and yield an empty list, as does any other failure.
func (c *Client) Breaches(ctx context.Context, email string) []domain.BreachRecord {
	ctx = logger.WithFields(ctx, zap.String("source", "xposedornot"))

	resp, err := osint.Get(ctx, c.httpClient, c.baseURL+"/v1/check-email/"+url.PathEscape(email), "")
	if err != nil {
		logger.Warn(ctx, "breach lookup failed", zap.Error(err))

		return []domain.BreachRecord{}
	}
	switch {
	case resp.StatusCode == http.StatusNotFound, resp.StatusCode == http.StatusInternalServerError:
		return []domain.BreachRecord{}
	case !resp.OK():
		logger.Warn(ctx, "breach index answered with error", zap.Int("status", resp.StatusCode))

		return []domain.BreachRecord{}
	}

	names, err := DecodeBreachNames(resp.Body)
	if err != nil {
		logger.Warn(ctx, "could not decode breach response", zap.Error(err))

		return []domain.BreachRecord{}
	}

	records := make([]domain.BreachRecord, 0, len(names))
	for _, name := range names {
		records = append(records, domain.BreachRecord{
			Name:        name,
			DataClasses: append([]string(nil), placeholderDataClasses...),
			Date:        placeholderDate,
		})
	}

	return records
}

// DecodeBreachNames extracts breach names from the "Breaches" member of a
// response (the key is matched case-insensitively). Entries are either bare
// strings or arrays whose first element is the name; anything else is
// skipped. Only the first element of an array entry is read, so a grouped
// entry such as ["Adobe","LinkedIn"] yields the single name "Adobe".
func DecodeBreachNames(body []byte) ([]string, error) {
	names := []string{}
	d := jx.DecodeBytes(body)
	err := d.ObjBytes(func(d *jx.Decoder, key []byte) error {
		if !bytes.EqualFold(key, []byte("breaches")) || d.Next() != jx.Array {
			return d.Skip()
		}

		return d.Arr(func(d *jx.Decoder) error {
			name, err := decodeEntry(d)
			if err != nil {
				return err
			}
			if name != "" {
				names = append(names, name)
			}

			return nil
		})
	})
	if err != nil {
		return nil, errors.Wrap(err, "decode breaches")
	}

	return names, nil
}

func decodeEntry(d *jx.Decoder) (string, error) {
	switch d.Next() {
	case jx.String:
		s, err := d.Str()
		if err != nil {
			return "", errors.Wrap(err, "entry")
		}

		return s, nil
	case jx.Array:
		var name string
		first := true
		if err := d.Arr(func(d *jx.Decoder) error {
			if !first || d.Next() != jx.String {
				first = false

				return d.Skip()
			}
			first = false
			s, err := d.Str()
			if err != nil {
				return err
			}
			name = s

			return nil
		}); err != nil {
			return "", errors.Wrap(err, "entry array")
		}

		return name, nil
	default:
		return "", d.Skip()
	}
}

var _ osint.BreachLookup = (*Client)(nil)

// New constructs a Client. An empty baseURL selects DefaultBaseURL.
func New(httpClient *http.Client, baseURL string) *Client {
	if baseURL == "" {
		baseURL = DefaultBaseURL
	}

	return &Client{httpClient: httpClient, baseURL: strings.TrimRight(baseURL, "/")}
}
