// Package delivery defines the contract implemented by all transport servers.
package delivery

import "context"

// Delivery is a long-running transport (e.g., an HTTP server) managed by the
// application lifecycle.
type Delivery interface {
	Serve(ctx context.Context) error
}
