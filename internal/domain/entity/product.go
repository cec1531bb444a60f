package entity

import (
	"github.com/google/uuid"
)

// Product is owned by the Products backend. SellerID is a logical foreign key
// into the Users backend; its existence is checked by the composite at create
// time because the backends cannot enforce it across service boundaries.
type Product struct {
	ID           uuid.UUID `json:"id"`
	ProductName  string    `json:"product_name"`
	Category     string    `json:"category"`
	SellerID     uuid.UUID `json:"seller_id"`
	Price        float64   `json:"price"`
	Availability int       `json:"availability"`
	Quantity     int       `json:"quantity"`
	Description  *string   `json:"description,omitempty"`
	Condition    *string   `json:"condition,omitempty"`
}
