// Package auth implements the cosmetic password checks of the
// registration form.
package auth

import (
	"strconv"
	"unicode"

	"storefront/config"
	"storefront/internal/domain/service"
)

const defaultMinLength = 8

// strengthLabels maps the number of satisfied requirements to the
// Spanish label shown next to the strength meter.
var strengthLabels = [6]string{
	"Muy débil",
	"Muy débil",
	"Débil",
	"Regular",
	"Buena",
	"Excelente",
}

type strengthScorer struct {
	cfg config.PasswordStrengthConfig
}

// NewStrengthScorer creates a scorer with the configured requirements.
// Disabled requirements count as satisfied so the score stays on the
// same 0..5 scale.
func NewStrengthScorer(cfg *config.PasswordStrengthConfig) service.PasswordStrengthScorer {
	resolved := config.PasswordStrengthConfig{
		MinLength:        defaultMinLength,
		RequireUppercase: true,
		RequireLowercase: true,
		RequireNumbers:   true,
		RequireSpecial:   true,
	}
	if cfg != nil {
		resolved = *cfg
		if resolved.MinLength <= 0 {
			resolved.MinLength = defaultMinLength
		}
	}

	return &strengthScorer{cfg: resolved}
}

// Score rates the password and lists the unmet requirements.
func (s *strengthScorer) Score(password string) service.StrengthReport {
	var hasUpper, hasLower, hasNumber, hasSpecial bool
	length := 0
	for _, r := range password {
		length++
		switch {
		case unicode.IsUpper(r):
			hasUpper = true
		case unicode.IsLower(r):
			hasLower = true
		case unicode.IsDigit(r):
			hasNumber = true
		default:
			hasSpecial = true
		}
	}

	checks := []struct {
		required bool
		passed   bool
		hint     string
	}{
		{true, length >= s.cfg.MinLength, "mínimo " + strconv.Itoa(s.cfg.MinLength) + " caracteres"},
		{s.cfg.RequireUppercase, hasUpper, "una mayúscula"},
		{s.cfg.RequireLowercase, hasLower, "una minúscula"},
		{s.cfg.RequireNumbers, hasNumber, "un número"},
		{s.cfg.RequireSpecial, hasSpecial, "un carácter especial"},
	}

	report := service.StrengthReport{}
	for _, check := range checks {
		if !check.required || check.passed {
			report.Score++

			continue
		}
		report.Missing = append(report.Missing, check.hint)
	}
	report.Label = strengthLabels[report.Score]

	return report
}
