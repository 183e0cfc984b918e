package service

// StrengthReport is the cosmetic password strength assessment shown in
// the registration form. It never blocks registration.
type StrengthReport struct {
	// Score counts satisfied requirements, 0 through 5.
	Score int

	// Label is the Spanish strength label, "Muy débil" through "Excelente".
	Label string

	// Missing lists the unmet requirements as user-facing hints.
	Missing []string
}

// PasswordStrengthScorer rates a candidate password against the
// configured requirements.
type PasswordStrengthScorer interface {
	Score(password string) StrengthReport
}
