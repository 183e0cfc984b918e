package entity

// Preferences are the shopper's notification flags plus the display
// name shown in the account area. Flags default to enabled: only an
// explicitly persisted "false" disables one.
type Preferences struct {
	Name         string // Display name; saving requires it to be non-empty.
	Email        string // Contact email, read-only here (set at login).
	Newsletter   bool   // Marketing newsletter opt-in.
	OrderUpdates bool   // Order status notifications.
	NewArrivals  bool   // New product announcements.
}

// DefaultPreferences returns the flags a shopper has before saving any.
func DefaultPreferences() *Preferences {
	return &Preferences{
		Newsletter:   true,
		OrderUpdates: true,
		NewArrivals:  true,
	}
}
