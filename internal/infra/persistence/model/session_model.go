// Package model defines the persisted JSON shapes of storefront state.
// Field names mirror the storage schema this service migrated from, so
// blobs written by the previous storefront remain readable.
package model

import (
	"encoding/json"
)

// FlexibleID absorbs the two historical identifier encodings: plain
// millisecond timestamps (JSON numbers) for registered shoppers and
// prefixed strings ("guest_...", "legacy_...") for everyone else.
// It always marshals as a string.
type FlexibleID string

// UnmarshalJSON accepts either a JSON string or a JSON number.
func (f *FlexibleID) UnmarshalJSON(data []byte) error {
	var asString string
	if err := json.Unmarshal(data, &asString); err == nil {
		*f = FlexibleID(asString)

		return nil
	}

	var asNumber json.Number
	if err := json.Unmarshal(data, &asNumber); err != nil {
		return err
	}
	*f = FlexibleID(asNumber.String())

	return nil
}

// IdentityModel is the persisted form of a user identity.
type IdentityModel struct {
	ID           FlexibleID `json:"id"`
	Email        string     `json:"email,omitempty"`
	Name         string     `json:"name"`
	Kind         string     `json:"kind,omitempty"`
	IsGuest      bool       `json:"isGuest,omitempty"`
	IsLegacy     bool       `json:"isLegacy,omitempty"`
	LoginTime    int64      `json:"loginTime"`
	WelcomeShown bool       `json:"welcomeShown,omitempty"`
}

// SessionModel is the persisted session blob: the identity plus a
// duplicated login timestamp kept at the top level for legacy readers.
type SessionModel struct {
	User      *IdentityModel `json:"user"`
	LoginTime int64          `json:"loginTime"`
}

// LegacyUserModel is the old single-user blob stored under the "user"
// key, read only during the cart key fallback chain and migration.
type LegacyUserModel struct {
	Email string `json:"email"`
	Name  string `json:"name"`
}
