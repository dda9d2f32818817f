package domain_test

import (
	"encoding/json"
	"recon/pkg/domain"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
)

func TestClassifyRisk(t *testing.T) {
	valid := domain.DomainResult{Valid: true, Server: "mx.example.com"}
	invalid := domain.DomainResult{Valid: false, Server: domain.ServerNXDomain}
	burner := domain.DisposabilityResult{IsDisposable: true, Reason: domain.ReasonDisposable}
	legit := domain.DisposabilityResult{IsDisposable: false, Reason: domain.ReasonLegitimate}
	breached := []domain.BreachRecord{{Name: "ExampleCo", DataClasses: []string{"Email", "Password"}, Date: "Unknown"}}

	tests := []struct {
		name     string
		domain   domain.DomainResult
		disp     domain.DisposabilityResult
		breaches []domain.BreachRecord
		want     domain.RiskLevel
	}{
		{"invalid domain wins over everything", invalid, burner, breached, domain.RiskInvalidDomain},
		{"lookup failure counts as invalid", domain.DomainResult{Server: domain.ServerLookupFailed}, legit, nil, domain.RiskInvalidDomain},
		{"disposable wins over breaches", valid, burner, breached, domain.RiskHighRiskDisposable},
		{"breach makes it critical", valid, legit, breached, domain.RiskCritical},
		{"clean identity is safe", valid, legit, nil, domain.RiskSafe},
		{"empty breach list is safe", valid, legit, []domain.BreachRecord{}, domain.RiskSafe},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			require.Equal(t, tt.want, domain.ClassifyRisk(tt.domain, tt.disp, tt.breaches))
		})
	}
}

func TestDossier_Profiles(t *testing.T) {
	d := domain.Dossier{Platforms: []domain.PlatformResult{
		{Platform: domain.PlatformGravatar, Found: true},
		{Platform: "GitHub", Found: false},
		{Platform: "GitLab", Found: true, ProfileURL: "https://gitlab.com/alice"},
	}}

	profiles := d.Profiles()
	require.Len(t, profiles, 2)
	require.Equal(t, domain.PlatformGravatar, profiles[0].Platform)
	require.Equal(t, "GitLab", profiles[1].Platform)
}

func TestUserID_JSON(t *testing.T) {
	id := domain.UserID(uuid.New())
	b, err := json.Marshal(domain.Progress{UserID: id})
	require.NoError(t, err)
	require.Contains(t, string(b), `"userId":"`+id.String()+`"`)

	var p domain.Progress
	require.NoError(t, json.Unmarshal(b, &p))
	require.Equal(t, id, p.UserID)
}
