package xposedornot_test

import (
	"context"
	"errors"
	"io"
	"net/http"
	"recon/pkg/domain"
	"recon/pkg/osint/xposedornot"
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

func record(name string) domain.BreachRecord {
	return domain.BreachRecord{Name: name, DataClasses: []string{"Email", "Password"}, Date: "Unknown"}
}

func TestBreaches(t *testing.T) {
	tests := []struct {
		name string
		rt   rtFunc
		want []domain.BreachRecord
	}{
		{
			name: "string entries",
			rt:   respond(http.StatusOK, `{"Breaches":["Adobe","LinkedIn"]}`),
			want: []domain.BreachRecord{record("Adobe"), record("LinkedIn")},
		},
		{
			name: "array entries use first element",
			rt:   respond(http.StatusOK, `{"breaches":[["Canva","extra"],["Dropbox"]]}`),
			want: []domain.BreachRecord{record("Canva"), record("Dropbox")},
		},
		{
			name: "empty and non-string entries skipped",
			rt:   respond(http.StatusOK, `{"breaches":["",[],[1,"x"],42,{"a":1},"Zynga"]}`),
			want: []domain.BreachRecord{record("Zynga")},
		},
		{
			name: "no breaches member",
			rt:   respond(http.StatusOK, `{"Error":"Not found"}`),
			want: []domain.BreachRecord{},
		},
		{name: "not found", rt: respond(http.StatusNotFound, `{"Error":"Not found"}`), want: []domain.BreachRecord{}},
		{name: "server error", rt: respond(http.StatusInternalServerError, ``), want: []domain.BreachRecord{}},
		{name: "other error status", rt: respond(http.StatusTooManyRequests, ``), want: []domain.BreachRecord{}},
		{name: "malformed body", rt: respond(http.StatusOK, `{"breaches":`), want: []domain.BreachRecord{}},
		{
			name: "transport error",
			rt: func(*http.Request) (*http.Response, error) {
				return nil, errors.New("no route to host")
			},
			want: []domain.BreachRecord{},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := xposedornot.New(&http.Client{Transport: tt.rt}, "")
			got := c.Breaches(context.Background(), "alice@example.com")
			require.NotNil(t, got)
			require.Equal(t, tt.want, got)
		})
	}
}

func TestBreaches_RequestShape(t *testing.T) {
	c := xposedornot.New(&http.Client{Transport: rtFunc(func(r *http.Request) (*http.Response, error) {
		require.Equal(t, "api.xposedornot.com", r.URL.Host)
		require.Equal(t, "/v1/check-email/alice@example.com", r.URL.Path)

		return respond(http.StatusNotFound, ``)(r)
	})}, "")

	require.Empty(t, c.Breaches(context.Background(), "alice@example.com"))
}

func TestBreaches_RecordsDoNotShareDataClasses(t *testing.T) {
	c := xposedornot.New(&http.Client{Transport: respond(http.StatusOK, `{"breaches":["A","B"]}`)}, "")
	got := c.Breaches(context.Background(), "alice@example.com")
	require.Len(t, got, 2)

	got[0].DataClasses[0] = "changed"
	require.Equal(t, "Email", got[1].DataClasses[0])
}

func TestDecodeBreachNames_GroupedEntryYieldsFirstName(t *testing.T) {
	names, err := xposedornot.DecodeBreachNames([]byte(`{"breaches":[["Adobe","LinkedIn","Canva"]]}`))
	require.NoError(t, err)
	require.Equal(t, []string{"Adobe"}, names)
}
