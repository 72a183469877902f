package command

import (
	"time"

	"github.com/shopspring/decimal"
)

// Product is the internal representation of a product.
type Product struct {
	ID          string
	DisplayName string
	TotalRating float64
	Price       decimal.Decimal
	CreatedAt   time.Time
	IsDeleted   bool
}

// CreateProduct carries the fields needed to create a product.
type CreateProduct struct {
	DisplayName string
	Price       decimal.Decimal
}
