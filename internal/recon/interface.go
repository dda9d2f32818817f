// Package recon builds identity reconnaissance dossiers by fanning out to the
// OSINT lookups of pkg/osint and merging their results.
package recon

import (
	"context"
	"recon/pkg/domain"
)

//go:generate mockgen -package mockrecon -source=interface.go -destination=mock/mockrecon.go *
type Analyzer interface {
	// Analyze validates email and runs every lookup for it concurrently. The
	// only error it returns is a serrors.ErrBadRequest for a malformed address,
	// in which case no lookup is issued.
	Analyze(ctx context.Context, email string) (*domain.Dossier, error)
}
