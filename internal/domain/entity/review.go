package entity

import (
	"github.com/google/uuid"
)

// Review is owned by the Reviews backend. WriterID and SellerID are logical
// foreign keys into the Users backend.
//
// The Reviews backend has shipped two field names for the score over its
// lifetime, so both are kept optional and Score resolves them.
type Review struct {
	ID       uuid.UUID `json:"id"`
	WriterID uuid.UUID `json:"writer_id"`
	SellerID uuid.UUID `json:"seller_id"`
	Rating   *float64  `json:"rating,omitempty"`
	Stars    *float64  `json:"stars,omitempty"`
	Comment  *string   `json:"comment,omitempty"`
}

// Score returns the review's numeric score: rating when present, otherwise
// the legacy stars field, otherwise 0.
func (r Review) Score() float64 {
	if r.Rating != nil {
		return *r.Rating
	}
	if r.Stars != nil {
		return *r.Stars
	}

	return 0
}
