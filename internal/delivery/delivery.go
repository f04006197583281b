// Package delivery defines the contract every transport entry point
// implements, so the application can run them uniformly.
package delivery

import "context"

// Delivery is a serving surface such as an HTTP server.
type Delivery interface {
	// Serve blocks until the surface stops or fails.
	Serve(ctx context.Context) error
}
