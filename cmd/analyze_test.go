package main

import (
	"bytes"
	"context"
	"fmt"
	"os"
	"path/filepath"
	"recon/internal/recon"
	mockrecon "recon/internal/recon/mock"
	"recon/pkg/domain"
	"recon/pkg/serrors"
	"strings"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func TestAnalyzeStream_LastSubmissionWins(t *testing.T) {
	ctrl := gomock.NewController(t)
	analyzer := mockrecon.NewMockAnalyzer(ctrl)

	release := make(chan struct{})
	analyzer.EXPECT().Analyze(gomock.Any(), "first@example.com").DoAndReturn(
		func(context.Context, string) (*domain.Dossier, error) {
			<-release

			return &domain.Dossier{Target: domain.Target{Email: "first@example.com"}}, nil
		})
	analyzer.EXPECT().Analyze(gomock.Any(), "second@example.com").DoAndReturn(
		func(context.Context, string) (*domain.Dossier, error) {
			defer close(release)

			return &domain.Dossier{Target: domain.Target{Email: "second@example.com"}}, nil
		})

	in := strings.NewReader("first@example.com\n\n  second@example.com  \n")
	d, err := analyzeStream(context.Background(), recon.NewSession(analyzer), in, 2)
	require.NoError(t, err)
	require.Equal(t, "second@example.com", d.Target.Email)
}

func TestAnalyzeStream_InvalidLastClearsResult(t *testing.T) {
	ctrl := gomock.NewController(t)
	analyzer := mockrecon.NewMockAnalyzer(ctrl)
	analyzer.EXPECT().Analyze(gomock.Any(), "ok@example.com").
		Return(&domain.Dossier{Target: domain.Target{Email: "ok@example.com"}}, nil).AnyTimes()
	analyzer.EXPECT().Analyze(gomock.Any(), "broken").
		Return(nil, serrors.With(serrors.ErrBadRequest, "invalid email address"))

	d, err := analyzeStream(context.Background(), recon.NewSession(analyzer), strings.NewReader("ok@example.com\nbroken\n"), defaultParallel)
	require.NoError(t, err)
	require.Nil(t, d)
}

func TestAnalyzeStream_BoundsConcurrentLookups(t *testing.T) {
	ctrl := gomock.NewController(t)
	analyzer := mockrecon.NewMockAnalyzer(ctrl)

	var inFlight, peak atomic.Int32
	analyzer.EXPECT().Analyze(gomock.Any(), gomock.Any()).DoAndReturn(
		func(_ context.Context, email string) (*domain.Dossier, error) {
			n := inFlight.Add(1)
			defer inFlight.Add(-1)
			for {
				p := peak.Load()
				if n <= p || peak.CompareAndSwap(p, n) {
					break
				}
			}
			time.Sleep(10 * time.Millisecond)

			return &domain.Dossier{Target: domain.Target{Email: email}}, nil
		}).Times(8)

	var in strings.Builder
	for i := range 8 {
		fmt.Fprintf(&in, "user%d@example.com\n", i)
	}

	d, err := analyzeStream(context.Background(), recon.NewSession(analyzer), strings.NewReader(in.String()), 3)
	require.NoError(t, err)
	require.Equal(t, "user7@example.com", d.Target.Email)
	require.LessOrEqual(t, peak.Load(), int32(3))
}

func TestPrintJSON(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, printJSON(&buf, &domain.Dossier{Risk: domain.RiskCritical}))
	require.Contains(t, buf.String(), `"risk": "Critical"`)
}

func TestConfigPath(t *testing.T) {
	require.Equal(t, "a.yml", configPath([]string{"serve", "-c", "a.yml"}))
	require.Equal(t, "b.yml", configPath([]string{"--config=b.yml", "migrate"}))
	require.Equal(t, "c.yml", configPath([]string{"-c=c.yml"}))

	dir := t.TempDir()
	t.Chdir(dir)
	require.Empty(t, configPath([]string{"analyze", "alice@example.com"}))

	require.NoError(t, os.WriteFile(filepath.Join(dir, defaultConfigPath), []byte("environment: development\n"), 0o600))
	require.Equal(t, defaultConfigPath, configPath(nil))
}
