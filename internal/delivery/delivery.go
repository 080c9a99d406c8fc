// Package delivery holds the transports that expose the loyalty usecases.
package delivery

import "context"

// Delivery is a long-running transport started by a cmd binary.
type Delivery interface {
	Serve(ctx context.Context) error
}
