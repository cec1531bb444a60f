// Package service defines domain-level service contracts implemented by the
// infrastructure layer.
package service

import (
	"context"

	"github.com/google/uuid"
)

// UserDirectory answers whether a user exists, for the logical foreign key
// gates applied before cross-service writes.
//
// Implementations must distinguish "the user does not exist" from "the Users
// backend could not answer": the latter is propagated as an error, never
// coerced to false. An unreachable backend must not let invalid references
// through or wrongly block valid writes.
type UserDirectory interface {
	Exists(ctx context.Context, userID uuid.UUID) (bool, error)
}
