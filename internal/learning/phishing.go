package learning

import (
	"strings"
)

// BadgePhishingHunter is awarded for spotting a phishing email in the
// simulation.
const BadgePhishingHunter = "Phishing Hunter"

// Explanations shown after a phishing simulation guess.
const (
	ExplanationPhishing = "Suspicious domain or urgent reset language."
	ExplanationSafe     = "Newsletter style or trusted sender."
)

// PhishingEmail is one inbox entry of the phishing simulation. Whether it is
// phishing is decided by ClassifyPhishing and never serialized.
type PhishingEmail struct {
	ID      int    `json:"id"`
	From    string `json:"from"`
	Subject string `json:"subject"`
	Snippet string `json:"snippet"`
}

// lureMarkers are look-alike links used by the simulated phishing emails.
var lureMarkers = []string{ //nolint: gochecknoglobals
	"https://yourcompany.reset-now.com",
	"bank-secure-login",
}

// ClassifyPhishing reports whether e is a phishing email: its subject asks
// for a reset or its body links to a known look-alike domain.
func ClassifyPhishing(e PhishingEmail) bool {
	if strings.Contains(strings.ToLower(e.Subject), "reset") {
		return true
	}
	for _, marker := range lureMarkers {
		if strings.Contains(e.Snippet, marker) {
			return true
		}
	}

	return false
}

// PhishingExplanation returns the explanation for a verdict.
func PhishingExplanation(phishing bool) string {
	if phishing {
		return ExplanationPhishing
	}

	return ExplanationSafe
}

func defaultPhishingEmails() []PhishingEmail {
	return []PhishingEmail{
		{
			ID: 1, From: "it-support@yourcompany.com", Subject: "Password reset required",
			Snippet: "Please reset your password immediately: https://yourcompany.reset-now.com",
		},
		{ID: 2, From: "news@trustedsite.com", Subject: "Weekly digest", Snippet: "Top stories for today"},
		{
			ID: 3, From: "security@bank.com", Subject: "Unusual login attempt",
			Snippet: "Verify here: https://bank-secure-login.com",
		},
	}
}
