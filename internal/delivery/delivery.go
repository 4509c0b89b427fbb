// Package delivery defines the contract every transport front end of the
// service fulfills, so binaries can start any mix of them uniformly.
package delivery

import "context"

// Delivery is a server that accepts external traffic. Serve blocks until the
// server stops; shutdown is driven by the lifecycle hooks registered at
// construction.
type Delivery interface {
	Serve(ctx context.Context) error
}
