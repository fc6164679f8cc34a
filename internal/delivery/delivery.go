// Package delivery defines the contract every transport entry point fulfils.
package delivery

import "context"

// Delivery is a server that accepts external traffic. Implementations are
// collected by the injector and started together.
type Delivery interface {
	Serve(ctx context.Context) error
}
