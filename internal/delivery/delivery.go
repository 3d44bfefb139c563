// Package delivery defines the entry points that expose the application
// to the outside world (HTTP API, Pub/Sub push worker).
package delivery

import "context"

// Delivery is implemented by every server the application can run.
type Delivery interface {
	// Serve starts the delivery and blocks until it stops.
	Serve(ctx context.Context) error
}
