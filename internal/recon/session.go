package recon

import (
	"context"
	"recon/pkg/domain"
	"recon/pkg/serrors"
	"sync"
)

// ErrStale is returned by Session.Submit when a newer submission started
// before this one completed. The superseded dossier is discarded.
var ErrStale = serrors.NewKind("STALE")

// Session serializes the results of repeated lookups made on behalf of one
// caller. Each Submit starts a new generation and only the result of the
// newest generation is applied; in-flight lookups of older generations run to
// completion but their results are dropped.
type Session struct {
	analyzer Analyzer

	mu         sync.Mutex
	generation uint64
	current    *domain.Dossier
}

// NewSession creates a Session over analyzer.
func NewSession(analyzer Analyzer) *Session {
	return &Session{analyzer: analyzer}
}

// Submit analyzes email as the new active request. It returns the dossier
// once applied, ErrStale when a later Submit superseded it, or the
// validation error of a malformed address. A malformed address still
// supersedes earlier submissions.
func (s *Session) Submit(ctx context.Context, email string) (*domain.Dossier, error) {
	return s.Begin(email)(ctx)
}

// Begin registers email as the new active request and returns the function
// that runs its lookup with the semantics of Submit. Submissions are ordered
// by Begin, so callers that run lookups concurrently call Begin in order and
// the returned functions in any goroutine.
func (s *Session) Begin(email string) func(ctx context.Context) (*domain.Dossier, error) {
	s.mu.Lock()
	s.generation++
	gen := s.generation
	s.mu.Unlock()

	return func(ctx context.Context) (*domain.Dossier, error) {
		dossier, err := s.analyzer.Analyze(ctx, email)

		s.mu.Lock()
		defer s.mu.Unlock()
		if gen != s.generation {
			return nil, serrors.With(ErrStale, "lookup for %q was superseded", email)
		}
		if err != nil {
			s.current = nil

			return nil, err
		}
		s.current = dossier

		return dossier, nil
	}
}

// Current returns the dossier of the latest applied submission, or nil.
func (s *Session) Current() *domain.Dossier {
	s.mu.Lock()
	defer s.mu.Unlock()

	return s.current
}
