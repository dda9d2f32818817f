package recon_test

import (
	"context"
	"errors"
	"recon/internal/recon"
	mockrecon "recon/internal/recon/mock"
	"recon/pkg/domain"
	"recon/pkg/serrors"
	"testing"

	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func dossierFor(email string) *domain.Dossier {
	return &domain.Dossier{Target: domain.Target{Email: email}, Risk: domain.RiskSafe}
}

func TestSession_StaleResultIsDropped(t *testing.T) {
	ctrl := gomock.NewController(t)
	analyzer := mockrecon.NewMockAnalyzer(ctrl)

	firstStarted := make(chan struct{})
	releaseFirst := make(chan struct{})
	analyzer.EXPECT().Analyze(gomock.Any(), "old@example.com").DoAndReturn(
		func(context.Context, string) (*domain.Dossier, error) {
			close(firstStarted)
			<-releaseFirst

			return dossierFor("old@example.com"), nil
		})
	analyzer.EXPECT().Analyze(gomock.Any(), "new@example.com").Return(dossierFor("new@example.com"), nil)

	s := recon.NewSession(analyzer)

	type result struct {
		d   *domain.Dossier
		err error
	}
	firstDone := make(chan result, 1)
	go func() {
		d, err := s.Submit(context.Background(), "old@example.com")
		firstDone <- result{d, err}
	}()
	<-firstStarted

	d, err := s.Submit(context.Background(), "new@example.com")
	require.NoError(t, err)
	require.Equal(t, "new@example.com", d.Target.Email)

	// the slow, older lookup completes after the newer one
	close(releaseFirst)
	first := <-firstDone
	require.Nil(t, first.d)
	require.True(t, errors.Is(first.err, recon.ErrStale))

	require.Equal(t, "new@example.com", s.Current().Target.Email)
}

func TestSession_InvalidSubmissionClearsCurrent(t *testing.T) {
	ctrl := gomock.NewController(t)
	analyzer := mockrecon.NewMockAnalyzer(ctrl)
	analyzer.EXPECT().Analyze(gomock.Any(), "alice@example.com").Return(dossierFor("alice@example.com"), nil)
	analyzer.EXPECT().Analyze(gomock.Any(), "broken").Return(nil, serrors.With(serrors.ErrBadRequest, "no @"))

	s := recon.NewSession(analyzer)
	require.Nil(t, s.Current())

	_, err := s.Submit(context.Background(), "alice@example.com")
	require.NoError(t, err)
	require.NotNil(t, s.Current())

	_, err = s.Submit(context.Background(), "broken")
	require.True(t, errors.Is(err, serrors.ErrBadRequest))
	require.Nil(t, s.Current())
}

func TestSession_BeginOrderDecidesNewest(t *testing.T) {
	ctrl := gomock.NewController(t)
	analyzer := mockrecon.NewMockAnalyzer(ctrl)
	analyzer.EXPECT().Analyze(gomock.Any(), gomock.Any()).DoAndReturn(
		func(_ context.Context, email string) (*domain.Dossier, error) {
			return dossierFor(email), nil
		}).Times(2)

	s := recon.NewSession(analyzer)
	first := s.Begin("first@example.com")
	second := s.Begin("second@example.com")

	// the newer submission runs before the older one
	d, err := second(context.Background())
	require.NoError(t, err)
	require.Equal(t, "second@example.com", d.Target.Email)

	_, err = first(context.Background())
	require.ErrorIs(t, err, recon.ErrStale)
	require.Equal(t, "second@example.com", s.Current().Target.Email)
}
