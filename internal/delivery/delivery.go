// Package delivery defines the contract every transport front end
// (HTTP server, background worker) fulfills so main can start them
// uniformly.
package delivery

import "context"

// Delivery is a long-running server. Serve blocks until the delivery
// stops or fails; shutdown is driven by fx lifecycle hooks.
type Delivery interface {
	Serve(ctx context.Context) error
}
