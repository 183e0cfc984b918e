// Package repository defines the interfaces for the persistence layer.
// These interfaces act as a contract between the domain/application layers and the infrastructure layer.
package repository

import (
	"context"
	"errors"
)

// ErrKeyNotFound is returned when a key has no persisted value.
var ErrKeyNotFound = errors.New("key not found")

// KVStore is the flat string key/value namespace backing all storefront
// state. It mirrors browser local storage: best-effort, no transactions,
// values are JSON blobs or plain strings.
type KVStore interface {
	// Get retrieves the value stored under key, or ErrKeyNotFound.
	Get(ctx context.Context, key string) (string, error)

	// Set stores value under key, overwriting any previous value.
	Set(ctx context.Context, key string, value string) error

	// Delete removes the value stored under key. Deleting an absent key is not an error.
	Delete(ctx context.Context, key string) error
}

// Persisted key names. The camel-case spelling is inherited from the
// storage schema this service migrated from and must not change, or
// existing data becomes unreachable.
const (
	KeySession       = "userSession"     // JSON session blob.
	KeyUserName      = "userName"        // Denormalized display name for legacy readers.
	KeyUserEmail     = "userEmail"       // Denormalized email for legacy readers.
	KeyLegacyLogged  = "isLogged"        // Legacy login flag ("true"/"false").
	KeyLegacyUser    = "user"            // Legacy single-user JSON blob.
	KeyDiscount      = "currentDiscount" // Active discount fraction as a decimal string.
	KeyWishlist      = "wishlist"        // JSON array of saved products.
	KeyNewsletter    = "newsletterPref"  // Preference flag; absent means enabled.
	KeyOrderUpdates  = "orderUpdates"    // Preference flag; absent means enabled.
	KeyNewArrivals   = "newArrivals"     // Preference flag; absent means enabled.
	KeySchemaVersion = "schemaVersion"   // Marks completed one-time migrations.
	KeyCartGuest     = "cart_guest"      // Cart for sessions without an email.
)

// CartKeyForEmail derives the storage key of the cart belonging to the
// identity with the given email.
func CartKeyForEmail(email string) string {
	return "cart_" + email
}

// SchemaVersionCurrent is the storage schema after the legacy two-key
// login representation has been folded into the session blob.
const SchemaVersionCurrent = 2
