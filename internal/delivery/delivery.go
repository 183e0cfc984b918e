// Package delivery defines the contract every transport entrypoint
// implements.
package delivery

import "context"

// Delivery is a long-running transport (HTTP server, worker) managed by
// the application lifecycle.
type Delivery interface {
	// Serve blocks until the delivery stops or ctx is canceled.
	Serve(ctx context.Context) error
}
