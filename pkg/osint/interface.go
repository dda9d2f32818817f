// Package osint defines the leaf lookups an identity reconnaissance run is
// composed of. Every lookup talks to one unreliable public service and never
// returns an error: failures are logged and degraded to the documented
// negative result of that lookup.
package osint

import (
	"context"
	"recon/pkg/domain"
)

// DomainValidator resolves the mail exchange records of a domain.
//
//go:generate mockgen -package mockosint -source=interface.go -destination=mock/mockosint.go *
type DomainValidator interface {
	// ValidateDomain reports the primary mail exchange host of the domain, or
	// domain.ServerNXDomain / domain.ServerLookupFailed when there is none.
	ValidateDomain(ctx context.Context, name string) domain.DomainResult
}

// PlatformChecker looks up a username on a single public platform.
type PlatformChecker interface {
	// Platform returns the human readable platform name.
	Platform() string
	// Check reports whether username exists on the platform. Any failure is
	// reported as not found.
	Check(ctx context.Context, username string) domain.PlatformResult
}

// AvatarResolver queries an avatar registry keyed by email address.
type AvatarResolver interface {
	// ResolveAvatar returns the avatar URL registered for email, if any.
	ResolveAvatar(ctx context.Context, email string) (string, bool)
}

// DisposableClassifier tells whether an email address is a throwaway one.
type DisposableClassifier interface {
	// Classify never fails closed: when the reputation service cannot be
	// consulted the address is treated as legitimate.
	Classify(ctx context.Context, email string) domain.DisposabilityResult
}

// BreachLookup lists the breaches an email address appeared in.
type BreachLookup interface {
	// Breaches returns an empty list when the address is unknown or the
	// breach index cannot be consulted.
	Breaches(ctx context.Context, email string) []domain.BreachRecord
}
