package learning_test

import (
	"recon/internal/learning"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestEstimatePasswordStrength(t *testing.T) {
	tests := []struct {
		password  string
		wantScore int
		wantLabel string
	}{
		{password: "", wantScore: 0, wantLabel: learning.StrengthWeak},
		{password: "password", wantScore: 1, wantLabel: learning.StrengthWeak},
		{password: "12345", wantScore: 0, wantLabel: learning.StrengthWeak},
		{password: "PASSWORD123!", wantScore: 39, wantLabel: learning.StrengthWeak},
		{password: "abcdefghi1", wantScore: 50, wantLabel: learning.StrengthWeak},
		{password: "correct-horse-battery-staple", wantScore: 70, wantLabel: learning.StrengthOkay},
		{password: "Abcdefg1!x", wantScore: 80, wantLabel: learning.StrengthOkay},
		{password: "Abcdefghij1!", wantScore: 84, wantLabel: learning.StrengthStrong},
		{password: "Tr0ub4dor&3-Horse-Staple!", wantScore: 100, wantLabel: learning.StrengthStrong},
	}

	for _, tt := range tests {
		t.Run(tt.password, func(t *testing.T) {
			score, label := learning.EstimatePasswordStrength(tt.password)
			require.Equal(t, tt.wantScore, score)
			require.Equal(t, tt.wantLabel, label)
		})
	}
}

func TestEstimatePasswordStrength_CountsRunes(t *testing.T) {
	// five runes, each two UTF-16 code units and four bytes long
	score, label := learning.EstimatePasswordStrength("🔒🔒🔒🔒🔒")
	require.Equal(t, 2*5+15, score)
	require.Equal(t, learning.StrengthWeak, label)
}
