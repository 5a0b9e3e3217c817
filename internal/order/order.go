// Package order holds the order record, its durable store, and the intake
// pipeline that turns submissions into persisted orders.
package order

import (
	"time"

	"github.com/google/uuid"
)

// Order is a durable record of a customer's request for a quantity of one
// product. Once written it is never mutated; corrections are new orders.
//
// ProductName and Price are copied from the catalog at submission time so
// later catalog edits never retroactively change history, and so historical
// orders stay renderable if the product disappears.
type Order struct {
	ID          string    `json:"id"`
	ProductID   string    `json:"product_id"`
	ProductName string    `json:"product_name"`
	Price       float64   `json:"price"`
	Qty         float64   `json:"qty"`
	Name        string    `json:"name"`
	Phone       string    `json:"phone"`
	Note        string    `json:"note,omitempty"`
	Lang        string    `json:"lang"`
	CreatedAt   time.Time `json:"time"`
}

// Total is the denormalized line total.
func (o Order) Total() float64 { return o.Qty * o.Price }

// NewID generates a collision-free order identifier.
func NewID() string {
	return "o" + uuid.NewString()
}
