package recon

import (
	"context"
	"fmt"
	"recon/internal/config"
	"recon/pkg/domain"
	"recon/pkg/logger"
	"recon/pkg/metrics"
	"recon/pkg/osint"
	"recon/pkg/osint/debounce"
	"recon/pkg/osint/doh"
	"recon/pkg/osint/platform"
	"recon/pkg/osint/unavatar"
	"recon/pkg/osint/xposedornot"
	"strings"
	"time"

	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/trace"
	"go.opentelemetry.io/otel/trace/noop"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"
)

// Metric sources of the non-platform lookups. Platform lookups use the
// lower-cased platform name.
const (
	SourceDNS        = "dns"
	SourceAvatar     = "avatar"
	SourceDisposable = "disposable"
	SourceBreaches   = "breaches"
)

// Deps are the lookups an analysis is composed of.
type Deps struct {
	Domains    osint.DomainValidator
	Avatars    osint.AvatarResolver
	Platforms  []osint.PlatformChecker
	Disposable osint.DisposableClassifier
	Breaches   osint.BreachLookup

	// Metrics is optional.
	Metrics *metrics.Lookups
	// Tracer is optional.
	Tracer trace.Tracer
}

// NewDeps builds the production lookups from the application config, sharing
// one HTTP client among them.
func NewDeps(cfg *config.Config, lookups *metrics.Lookups, tracer trace.Tracer) (Deps, error) {
	httpClient := osint.NewHTTPClient(cfg.Lookup.Timeout)

	validator, err := doh.New(cfg.Lookup.DNSMode, httpClient, cfg.Lookup.DNSBaseURL)
	if err != nil {
		return Deps{}, fmt.Errorf("could not create domain validator: %w", err)
	}

	return Deps{
		Domains: validator,
		Avatars: unavatar.New(httpClient, cfg.Lookup.AvatarBaseURL),
		Platforms: platform.Defaults(httpClient, platform.BaseURLs{
			GitHub:    cfg.Lookup.GitHubBaseURL,
			GitLab:    cfg.Lookup.GitLabBaseURL,
			DevTo:     cfg.Lookup.DevToBaseURL,
			Bitbucket: cfg.Lookup.BitbucketBaseURL,
		}),
		Disposable: debounce.New(httpClient, cfg.Lookup.DisposableBaseURL),
		Breaches:   xposedornot.New(httpClient, cfg.Lookup.BreachBaseURL),
		Metrics:    lookups,
		Tracer:     tracer,
	}, nil
}

// Options configure how lookup results are merged.
type Options struct {
	// AvatarPlatforms lists, in order of preference, the platforms whose avatar
	// may be used when the avatar registry has none. Platforms not listed are
	// reported but never supply the avatar.
	AvatarPlatforms []string
	// Now returns the completion timestamp of a dossier.
	Now func() time.Time
}

// DefaultOptions returns the merge rules used in production.
func DefaultOptions() Options {
	return Options{
		AvatarPlatforms: []string{platform.NameGitHub, platform.NameGitLab, platform.NameDevTo},
		Now:             time.Now,
	}
}

// analyzer is the concrete implementation of the Analyzer interface.
type analyzer struct {
	deps    Deps
	options Options
	lookups *metrics.Lookups
	tracer  trace.Tracer
}

// Analyze implements Analyzer. Every lookup is issued exactly once and
// concurrently; the call returns when the slowest one has settled. Lookups
// never fail, so neither does the join.
func (a *analyzer) Analyze(ctx context.Context, email string) (*domain.Dossier, error) {
	target, err := ParseTarget(email)
	if err != nil {
		return nil, err
	}

	ctx, span := a.tracer.Start(ctx, "recon.Analyze",
		trace.WithAttributes(attribute.String("recon.domain", target.Domain)))
	defer span.End()
	ctx = logger.WithFields(ctx, zap.String("domain", target.Domain))

	var (
		mx         domain.DomainResult
		avatar     string
		avatarOK   bool
		platforms  = make([]domain.PlatformResult, len(a.deps.Platforms))
		disposable domain.DisposabilityResult
		breaches   []domain.BreachRecord
	)

	var g errgroup.Group
	g.Go(func() error {
		a.lookup(ctx, SourceDNS, func(ctx context.Context) bool {
			mx = a.deps.Domains.ValidateDomain(ctx, target.Domain)

			return mx.Valid
		})

		return nil
	})
	g.Go(func() error {
		a.lookup(ctx, SourceAvatar, func(ctx context.Context) bool {
			avatar, avatarOK = a.deps.Avatars.ResolveAvatar(ctx, target.Email)

			return avatarOK
		})

		return nil
	})
	for i, checker := range a.deps.Platforms {
		g.Go(func() error {
			a.lookup(ctx, strings.ToLower(checker.Platform()), func(ctx context.Context) bool {
				platforms[i] = checker.Check(ctx, target.LocalPart)

				return platforms[i].Found
			})

			return nil
		})
	}
	g.Go(func() error {
		a.lookup(ctx, SourceDisposable, func(ctx context.Context) bool {
			disposable = a.deps.Disposable.Classify(ctx, target.Email)

			return disposable.IsDisposable
		})

		return nil
	})
	g.Go(func() error {
		a.lookup(ctx, SourceBreaches, func(ctx context.Context) bool {
			breaches = a.deps.Breaches.Breaches(ctx, target.Email)

			return len(breaches) > 0
		})

		return nil
	})
	_ = g.Wait()

	if breaches == nil {
		breaches = []domain.BreachRecord{}
	}

	dossier := &domain.Dossier{
		Target:      target,
		Domain:      mx,
		AvatarURL:   a.chooseAvatar(avatar, avatarOK, platforms),
		Platforms:   mergePlatforms(avatar, avatarOK, platforms),
		Disposable:  disposable,
		Breaches:    breaches,
		Risk:        domain.ClassifyRisk(mx, disposable, breaches),
		CompletedAt: a.options.Now(),
	}

	span.SetAttributes(attribute.String("recon.risk", string(dossier.Risk)))
	a.lookups.Analysis(ctx, string(dossier.Risk))
	logger.Debug(ctx, "analysis completed",
		zap.String("risk", string(dossier.Risk)),
		zap.Int("profiles", len(dossier.Profiles())),
		zap.Int("breaches", len(breaches)))

	return dossier, nil
}

// lookup runs fn inside its own span and records its latency and outcome.
func (a *analyzer) lookup(ctx context.Context, source string, fn func(ctx context.Context) bool) {
	ctx, span := a.tracer.Start(ctx, "recon.lookup",
		trace.WithAttributes(attribute.String("recon.source", source)))
	defer span.End()

	start := time.Now()
	positive := fn(ctx)
	a.lookups.Observe(ctx, source, start, positive)
	span.SetAttributes(attribute.Bool("recon.positive", positive))
}

// chooseAvatar prefers the avatar registry and falls back to the first found
// platform profile from Options.AvatarPlatforms, in checker order.
func (a *analyzer) chooseAvatar(avatar string, ok bool, platforms []domain.PlatformResult) string {
	if ok {
		return avatar
	}
	for _, p := range platforms {
		if !p.Found || p.AvatarURL == "" {
			continue
		}
		for _, name := range a.options.AvatarPlatforms {
			if p.Platform == name {
				return p.AvatarURL
			}
		}
	}

	return ""
}

// mergePlatforms puts the synthetic Gravatar entry first when the avatar
// registry matched. It is not deduplicated against platform avatars.
func mergePlatforms(avatar string, ok bool, platforms []domain.PlatformResult) []domain.PlatformResult {
	out := make([]domain.PlatformResult, 0, len(platforms)+1)
	if ok {
		out = append(out, domain.PlatformResult{
			Platform:  domain.PlatformGravatar,
			Found:     true,
			AvatarURL: avatar,
		})
	}

	return append(out, platforms...)
}

// New creates an Analyzer over deps. Missing Options fields take their
// DefaultOptions value.
func New(deps Deps, options Options) (Analyzer, error) {
	defaults := DefaultOptions()
	if options.AvatarPlatforms == nil {
		options.AvatarPlatforms = defaults.AvatarPlatforms
	}
	if options.Now == nil {
		options.Now = defaults.Now
	}

	lookups := deps.Metrics
	if lookups == nil {
		var err error
		if lookups, err = metrics.NewLookups(nil); err != nil {
			return nil, fmt.Errorf("could not create lookup metrics: %w", err)
		}
	}
	tracer := deps.Tracer
	if tracer == nil {
		tracer = noop.NewTracerProvider().Tracer("recon")
	}

	return &analyzer{
		deps:    deps,
		options: options,
		lookups: lookups,
		tracer:  tracer,
	}, nil
}
