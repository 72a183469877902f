package dto

import (
	"time"

	"github.com/shopspring/decimal"
)

// Product is the wire representation of a product.
type Product struct {
	ID          string          `json:"id" binding:"required"`
	DisplayName string          `json:"displayName" binding:"required"`
	TotalRating float64         `json:"totalRating"`
	Price       decimal.Decimal `json:"price"`
	CreatedAt   time.Time       `json:"createdAt"`
	IsDeleted   bool            `json:"isDeleted"`
}

// CreateProduct is the payload for POST /api/products.
type CreateProduct struct {
	DisplayName string          `json:"displayName" binding:"required"`
	Price       decimal.Decimal `json:"price" binding:"required"`
}
