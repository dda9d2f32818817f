package osint

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"time"
)

// UserAgent is sent with every outgoing lookup. Some platform APIs reject
// requests without one.
const UserAgent = "recon/1.0"

// maxBodySize caps how much of a lookup response is read.
const maxBodySize = 1 << 20

// NewHTTPClient returns the HTTP client shared by all lookups. timeout bounds
// every single request; lookups apply no other deadline and never retry.
func NewHTTPClient(timeout time.Duration) *http.Client {
	return &http.Client{Timeout: timeout}
}

// Response is a fully read lookup response.
type Response struct {
	StatusCode int
	Body       []byte
}

// OK reports whether the status code is in the 2xx range.
func (r Response) OK() bool { return r.StatusCode >= 200 && r.StatusCode < 300 }

// Get performs a single GET request against a lookup endpoint and reads the
// body. Only transport failures are returned as errors; status codes are left
// to the caller.
func Get(ctx context.Context, client *http.Client, URL string, accept string) (Response, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, URL, nil)
	if err != nil {
		return Response{}, fmt.Errorf("could not create request: %w", err)
	}
	req.Header.Set("User-Agent", UserAgent)
	if accept == "" {
		accept = "application/json"
	}
	req.Header.Set("Accept", accept)

	resp, err := client.Do(req)
	if err != nil {
		return Response{}, fmt.Errorf("could not send request: %w", err)
	}
	defer func() {
		_ = resp.Body.Close()
	}()

	b, err := io.ReadAll(io.LimitReader(resp.Body, maxBodySize))
	if err != nil {
		return Response{StatusCode: resp.StatusCode}, fmt.Errorf("could not read response body: %w", err)
	}

	return Response{StatusCode: resp.StatusCode, Body: b}, nil
}
