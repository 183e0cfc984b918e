// Package entity contains the core business objects of the project,
// each representing a unique, identifiable concept within the domain.
package entity

import (
	"strings"
	"time"
)

// IdentityKind distinguishes how the current identity came to exist.
// It carries no authorization weight: guests are as "authenticated" as
// registered shoppers for every storefront operation.
type IdentityKind string

const (
	// KindRegistered is an identity created through the login or registration form.
	KindRegistered IdentityKind = "registered"

	// KindLegacy is an identity synthesized from the old two-key login
	// representation during the one-time schema migration.
	KindLegacy IdentityKind = "legacy"

	// KindGuest is an anonymous identity chosen explicitly by the shopper.
	KindGuest IdentityKind = "guest"
)

// UserIdentity is the single "current user" of the storefront. IDs are
// derived from a login timestamp plus a kind prefix, mirroring the
// persisted scheme; they are not globally unique across devices.
type UserIdentity struct {
	ID           string       // Timestamp-derived identifier, e.g. "guest_1700000000000".
	Email        string       // Primary contact email; empty for guests.
	Name         string       // Display name shown in greetings and checkout messages.
	Kind         IdentityKind // How this identity was established.
	LoginAt      time.Time    // When the identity logged in; anchors the session TTL.
	WelcomeShown bool         // Idempotence guard so the welcome notification fires once.
}

// DisplayName returns the name to greet the shopper with, falling back
// to the local part of the email when no name was captured.
func (u *UserIdentity) DisplayName() string {
	if u.Name != "" {
		return u.Name
	}
	if u.Email != "" {
		if at := strings.Index(u.Email, "@"); at > 0 {
			return u.Email[:at]
		}

		return u.Email
	}

	return "Usuario"
}

// Session wraps zero-or-one UserIdentity with a fixed validity window
// starting at the identity's login time.
type Session struct {
	User    *UserIdentity // The active identity; nil means logged out.
	LoginAt time.Time     // Copy of the identity's login time, kept for legacy readers.
}

// ExpiredAt reports whether the session has outlived the given TTL at
// the provided instant.
func (s *Session) ExpiredAt(now time.Time, ttl time.Duration) bool {
	return now.Sub(s.LoginAt) >= ttl
}
