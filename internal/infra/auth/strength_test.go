package auth

import (
	"testing"

	"storefront/config"

	"github.com/stretchr/testify/assert"
)

func TestStrengthScorer_Score(t *testing.T) {
	scorer := NewStrengthScorer(&config.PasswordStrengthConfig{
		MinLength:        8,
		RequireUppercase: true,
		RequireLowercase: true,
		RequireNumbers:   true,
		RequireSpecial:   true,
	})

	tests := []struct {
		name     string
		password string
		score    int
		label    string
	}{
		{"empty", "", 0, "Muy débil"},
		{"lowercase only", "abc", 1, "Muy débil"},
		{"two requirements", "abcdefgh", 2, "Débil"},
		{"three requirements", "Abcdefgh", 3, "Regular"},
		{"four requirements", "Abcdefg1", 4, "Buena"},
		{"all requirements", "Abcdef1!", 5, "Excelente"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			report := scorer.Score(tt.password)
			assert.Equal(t, tt.score, report.Score)
			assert.Equal(t, tt.label, report.Label)
			assert.Len(t, report.Missing, 5-tt.score)
		})
	}
}

func TestStrengthScorer_DisabledRequirementCountsAsMet(t *testing.T) {
	scorer := NewStrengthScorer(&config.PasswordStrengthConfig{
		MinLength:      6,
		RequireSpecial: false,
	})

	report := scorer.Score("abc123")
	assert.Equal(t, 5, report.Score, "disabled requirements never lower the score")
	assert.Equal(t, "Excelente", report.Label)
}

func TestStrengthScorer_MissingHints(t *testing.T) {
	scorer := NewStrengthScorer(nil)

	report := scorer.Score("abc")
	assert.Contains(t, report.Missing, "mínimo 8 caracteres")
	assert.Contains(t, report.Missing, "una mayúscula")
	assert.Contains(t, report.Missing, "un número")
	assert.Contains(t, report.Missing, "un carácter especial")
	assert.NotContains(t, report.Missing, "una minúscula")
}
