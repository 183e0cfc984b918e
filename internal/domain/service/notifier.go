// Package service defines the interfaces for domain-level collaborators
// implemented by the infrastructure layer.
package service

import "context"

// NotificationLevel classifies a storefront notification.
type NotificationLevel string

const (
	NotifyInfo    NotificationLevel = "info"
	NotifySuccess NotificationLevel = "success"
	NotifyError   NotificationLevel = "error"
)

// Notifier delivers user-facing notifications (the toast surface of the
// storefront). Implementations must be safe to call from timers.
type Notifier interface {
	Notify(ctx context.Context, level NotificationLevel, message string)
}
