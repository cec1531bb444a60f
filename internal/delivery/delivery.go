// Package delivery defines the contract every transport entry point of the
// service implements.
package delivery

import "context"

// Delivery is a serving surface (HTTP today) started by the application
// lifecycle.
type Delivery interface {
	Serve(ctx context.Context) error
}
