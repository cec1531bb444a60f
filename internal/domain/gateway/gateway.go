// Package gateway defines the interfaces for the upstream backend services.
// These interfaces act as a contract between the application layer and the
// HTTP clients in the infrastructure layer: every backend failure is mapped
// to the uniform taxonomy below before it crosses this boundary, so no layer
// above ever inspects raw transport errors.
package gateway

import (
	"errors"
	"fmt"
)

// Credential is an opaque caller credential (the verbatim Authorization
// header value). It is threaded explicitly through every operation that
// forwards it; the composite never inspects its contents and never reads it
// from ambient context.
type Credential string

// IsZero reports whether no credential was supplied.
func (c Credential) IsZero() bool {
	return c == ""
}

// ErrNotFound is returned when the targeted backend answers 404 for the
// referenced entity.
var ErrNotFound = errors.New("entity not found")

// RejectedError is returned when a backend refuses a write with a 4xx other
// than 404. Reason carries the backend-supplied message.
type RejectedError struct {
	Reason string
}

func (e *RejectedError) Error() string {
	return "backend rejected request: " + e.Reason
}

// UnavailableError is returned when a backend cannot be reached, times out,
// or answers with a 5xx. It is transient by nature but never retried here;
// resubmission is the caller's responsibility.
type UnavailableError struct {
	Service string
	Status  int
	Err     error
}

func (e *UnavailableError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s service unavailable: %v", e.Service, e.Err)
	}

	return fmt.Sprintf("%s service unavailable: status %d", e.Service, e.Status)
}

func (e *UnavailableError) Unwrap() error {
	return e.Err
}
