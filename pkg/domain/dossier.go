package domain

import "time"

// Sentinel values reported in DomainResult.Server when no mail exchange host
// could be determined.
const (
	// ServerNXDomain is reported when the resolver answered but the domain has
	// no mail exchange records, or the resolver reported a failure status.
	ServerNXDomain = "NXDOMAIN"
	// ServerLookupFailed is reported when the resolver could not be reached or
	// returned an unexpected response.
	ServerLookupFailed = "Lookup Failed"
)

// Reasons reported in DisposabilityResult.Reason.
const (
	ReasonDisposable  = "Burner Domain Detected"
	ReasonLegitimate  = "Valid Mail Provider"
	ReasonCheckFailed = "Check Failed"
)

// PlatformGravatar is the synthetic platform name recorded when the avatar
// registry knows the email address.
const PlatformGravatar = "Gravatar"

// Target is a lookup target derived from an email address.
type Target struct {
	// Email is the address exactly as submitted.
	Email string `json:"email"`
	// LocalPart is the left-hand side of the address, used verbatim as a
	// candidate username on code hosting and publishing platforms.
	LocalPart string `json:"localPart"`
	// Domain is the right-hand side of the address, used for mail exchange resolution.
	Domain string `json:"domain"`
}

// PlatformResult is the outcome of a single platform presence check.
type PlatformResult struct {
	Platform   string `json:"platform"`
	Found      bool   `json:"found"`
	ProfileURL string `json:"profileUrl,omitempty"`
	AvatarURL  string `json:"avatarUrl,omitempty"`
}

// DomainResult is the outcome of mail exchange resolution for a domain.
type DomainResult struct {
	// Valid is true when at least one mail exchange record was found.
	Valid bool `json:"valid"`
	// Server is the primary mail exchange host, or one of ServerNXDomain and
	// ServerLookupFailed.
	Server string `json:"server"`
}

// DisposabilityResult tells whether an email address belongs to a throwaway provider.
type DisposabilityResult struct {
	IsDisposable bool   `json:"isDisposable"`
	Reason       string `json:"reason"`
}

// BreachRecord describes a single breach an email address appeared in.
type BreachRecord struct {
	Name        string   `json:"name"`
	DataClasses []string `json:"dataClasses"`
	Date        string   `json:"date"`
}

// RiskLevel is the overall classification of a dossier. It is always derived
// from the other dossier fields with ClassifyRisk.
type RiskLevel string

const (
	// RiskInvalidDomain means the domain has no reachable mail exchange.
	RiskInvalidDomain RiskLevel = "Invalid Domain"
	// RiskHighRiskDisposable means the address belongs to a throwaway provider.
	RiskHighRiskDisposable RiskLevel = "High Risk (Burner)"
	// RiskCritical means the address appeared in at least one breach.
	RiskCritical RiskLevel = "Critical"
	// RiskSafe means none of the above applies.
	RiskSafe RiskLevel = "Safe"
)

// ClassifyRisk computes the risk level. Precedence is fixed: an invalid domain
// wins over disposability, which wins over any number of breaches.
func ClassifyRisk(d DomainResult, disp DisposabilityResult, breaches []BreachRecord) RiskLevel {
	switch {
	case !d.Valid:
		return RiskInvalidDomain
	case disp.IsDisposable:
		return RiskHighRiskDisposable
	case len(breaches) > 0:
		return RiskCritical
	default:
		return RiskSafe
	}
}

// Dossier is the aggregated result of one identity reconnaissance lookup.
// It is built fresh for every lookup and never persisted.
type Dossier struct {
	Target Target       `json:"target"`
	Domain DomainResult `json:"domain"`
	// AvatarURL is the chosen avatar candidate, empty when none was found.
	AvatarURL string `json:"avatarUrl,omitempty"`
	// Platforms lists the synthetic Gravatar entry (only when the avatar
	// registry matched) followed by one result per platform checker in
	// declaration order.
	Platforms  []PlatformResult    `json:"platforms"`
	Disposable DisposabilityResult `json:"disposable"`
	Breaches   []BreachRecord      `json:"breaches"`
	Risk       RiskLevel           `json:"risk"`

	CompletedAt time.Time `json:"completedAt"`
}

// Profiles returns the platform entries that were found.
func (d *Dossier) Profiles() []PlatformResult {
	out := make([]PlatformResult, 0, len(d.Platforms))
	for _, p := range d.Platforms {
		if p.Found {
			out = append(out, p)
		}
	}

	return out
}
