// Package entity contains the composite service's view of the objects owned
// by the upstream backends. None of these are persisted here; they are decoded
// from backend responses and assembled into per-request views.
package entity

import (
	"github.com/google/uuid"
)

// User is the canonical identity record owned by the Users backend.
// The composite never mutates it except by forwarding calls unchanged.
type User struct {
	ID          uuid.UUID `json:"id"`
	Name        string    `json:"name"`
	Role        string    `json:"role"`
	PhoneNumber string    `json:"phoneNumber"`
	Merch       string    `json:"merch"`
	Email       string    `json:"email"`
}
