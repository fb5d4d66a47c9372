// Package delivery holds the transports that drive the use cases.
package delivery

import "context"

// Delivery is a long-running transport started by the fx graph.
type Delivery interface {
	// Serve blocks until the transport stops. A clean shutdown returns nil.
	Serve(ctx context.Context) error
}
