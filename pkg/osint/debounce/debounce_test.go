package debounce_test

import (
	"context"
	"errors"
	"io"
	"net/http"
	"recon/pkg/domain"
	"recon/pkg/osint/debounce"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
)

// rtFunc allows using a function as an http.RoundTripper.
type rtFunc func(*http.Request) (*http.Response, error)

func (f rtFunc) RoundTrip(r *http.Request) (*http.Response, error) { return f(r) }

func respond(status int, body string) rtFunc {
	return func(*http.Request) (*http.Response, error) {
		return &http.Response{StatusCode: status, Body: io.NopCloser(strings.NewReader(body))}, nil
	}
}

var (
	disposable = domain.DisposabilityResult{IsDisposable: true, Reason: domain.ReasonDisposable}
	legitimate = domain.DisposabilityResult{IsDisposable: false, Reason: domain.ReasonLegitimate}
	failed     = domain.DisposabilityResult{IsDisposable: false, Reason: domain.ReasonCheckFailed}
)

func TestClassify(t *testing.T) {
	tests := []struct {
		name string
		rt   rtFunc
		want domain.DisposabilityResult
	}{
		{name: "disposable", rt: respond(http.StatusOK, `{"disposable":"true"}`), want: disposable},
		{name: "legitimate", rt: respond(http.StatusOK, `{"disposable":"false"}`), want: legitimate},
		{name: "native boolean is not the string true", rt: respond(http.StatusOK, `{"disposable":true}`), want: legitimate},
		{name: "missing field", rt: respond(http.StatusOK, `{"other":1}`), want: legitimate},
		{name: "error status", rt: respond(http.StatusBadGateway, `{"disposable":"true"}`), want: failed},
		{name: "malformed body", rt: respond(http.StatusOK, `not json`), want: failed},
		{
			name: "transport error",
			rt: func(*http.Request) (*http.Response, error) {
				return nil, errors.New("timeout")
			},
			want: failed,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := debounce.New(&http.Client{Transport: tt.rt}, "")
			require.Equal(t, tt.want, c.Classify(context.Background(), "alice@mailinator.com"))
		})
	}
}

func TestClassify_RequestShape(t *testing.T) {
	c := debounce.New(&http.Client{Transport: rtFunc(func(r *http.Request) (*http.Response, error) {
		require.Equal(t, "disposable.debounce.io", r.URL.Host)
		require.Equal(t, "/", r.URL.Path)
		require.Equal(t, "alice+tag@example.com", r.URL.Query().Get("email"))

		return respond(http.StatusOK, `{"disposable":"false"}`)(r)
	})}, "")

	require.Equal(t, legitimate, c.Classify(context.Background(), "alice+tag@example.com"))
}

func TestDecodeVerdict(t *testing.T) {
	ok, err := debounce.DecodeVerdict([]byte(`{"success":"1","disposable":"true"}`))
	require.NoError(t, err)
	require.True(t, ok)

	_, err = debounce.DecodeVerdict([]byte(`[]`))
	require.Error(t, err)
}
