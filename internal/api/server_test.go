package api_test

import (
	"context"
	"crypto/rand"
	"crypto/rsa"
	"crypto/x509"
	"encoding/pem"
	"io"
	"net/http"
	"net/http/httptest"
	"recon/internal/api"
	"recon/internal/api/handler/v1handler"
	"recon/internal/learning"
	mocknews "recon/internal/news/mock"
	"recon/pkg/domain"
	"recon/pkg/metrics"
	"strings"
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func publicKeyPEM(t *testing.T) string {
	t.Helper()
	priv, err := rsa.GenerateKey(rand.Reader, 2048)
	require.NoError(t, err)
	der, err := x509.MarshalPKIXPublicKey(&priv.PublicKey)
	require.NoError(t, err)

	return string(pem.EncodeToMemory(&pem.Block{Type: "PUBLIC KEY", Bytes: der}))
}

type slowFeed struct {
	*mocknews.MockFeed
	delay time.Duration
}

func (s slowFeed) Latest(ctx context.Context, _ uint) ([]domain.Article, error) {
	select {
	case <-time.After(s.delay):
	case <-ctx.Done():
	}

	return nil, ctx.Err()
}

func newTestServer(t *testing.T, feed *mocknews.MockFeed, timeout time.Duration) (*httptest.Server, *prometheus.Registry) {
	t.Helper()
	reg := prometheus.NewRegistry()
	mp, err := metrics.NewMeterProvider(reg)
	require.NoError(t, err)
	lookups, err := metrics.NewLookups(mp)
	require.NoError(t, err)
	lookups.Analysis(context.Background(), string(domain.RiskSafe))

	srv, err := api.NewServer(api.Deps{Deps: v1handler.Deps{
		Feed:    feed,
		Catalog: learning.DefaultCatalog(),
	}}, api.Options{
		SecHandlerOptions: &v1handler.SecHandlerOptions{PublicKey: publicKeyPEM(t)},
		RequestTimeout:    timeout,
		MetricsPath:       "/metrics",
		AllowedOrigins:    []string{"*"},
		Gatherer:          reg,
	})
	require.NoError(t, err)

	ts := httptest.NewServer(srv.Handler)
	t.Cleanup(ts.Close)

	return ts, reg
}

func get(t *testing.T, url string) (*http.Response, string) {
	t.Helper()
	resp, err := http.Get(url) //nolint: noctx
	require.NoError(t, err)
	defer func() { _ = resp.Body.Close() }()
	b, err := io.ReadAll(resp.Body)
	require.NoError(t, err)

	return resp, string(b)
}

func TestNewServer_Routes(t *testing.T) {
	ctrl := gomock.NewController(t)
	feed := mocknews.NewMockFeed(ctrl)
	feed.EXPECT().Latest(gomock.Any(), uint(3)).Return([]domain.Article{{Title: "hello"}}, nil)
	ts, _ := newTestServer(t, feed, time.Second)

	resp, body := get(t, ts.URL+"/v1/news?limit=3")
	require.Equal(t, http.StatusOK, resp.StatusCode)
	require.Contains(t, body, `"hello"`)
	require.NotEmpty(t, resp.Header.Get("X-Request-Id"))
	require.Equal(t, "*", resp.Header.Get("Access-Control-Allow-Origin"))

	resp, body = get(t, ts.URL+"/specs/v1.yaml")
	require.Equal(t, http.StatusOK, resp.StatusCode)
	require.Equal(t, "application/yaml", resp.Header.Get("Content-Type"))
	require.True(t, strings.HasPrefix(body, "openapi:"))

	resp, _ = get(t, ts.URL+"/v1/docs/")
	require.Equal(t, http.StatusOK, resp.StatusCode)

	resp, body = get(t, ts.URL+"/metrics")
	require.Equal(t, http.StatusOK, resp.StatusCode)
	require.Contains(t, body, "recon_analysis_total")

	resp, _ = get(t, ts.URL+"/debug/pprof/cmdline")
	require.Equal(t, http.StatusOK, resp.StatusCode)

	resp, _ = get(t, ts.URL+"/v1/progress")
	require.Equal(t, http.StatusUnauthorized, resp.StatusCode)
}

func TestNewServer_RequestTimeout(t *testing.T) {
	ctrl := gomock.NewController(t)
	feed := mocknews.NewMockFeed(ctrl)
	reg := prometheus.NewRegistry()

	srv, err := api.NewServer(api.Deps{Deps: v1handler.Deps{
		Feed:    slowFeed{MockFeed: feed, delay: time.Second},
		Catalog: learning.DefaultCatalog(),
	}}, api.Options{
		SecHandlerOptions: &v1handler.SecHandlerOptions{PublicKey: publicKeyPEM(t)},
		RequestTimeout:    50 * time.Millisecond,
		MetricsPath:       "/metrics",
		Gatherer:          reg,
	})
	require.NoError(t, err)
	ts := httptest.NewServer(srv.Handler)
	defer ts.Close()

	resp, body := get(t, ts.URL+"/v1/news")
	require.Equal(t, http.StatusServiceUnavailable, resp.StatusCode)
	require.JSONEq(t, `{"code":"TIMEOUT","message":"request timed out"}`, body)
}

func TestNewServer_InvalidPublicKey(t *testing.T) {
	_, err := api.NewServer(api.Deps{}, api.Options{
		SecHandlerOptions: &v1handler.SecHandlerOptions{PublicKey: "nope"},
		MetricsPath:       "/metrics",
	})
	require.Error(t, err)
}
