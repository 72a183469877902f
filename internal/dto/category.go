package dto

import "time"

// Category is the wire representation of a category.
type Category struct {
	ID          string    `json:"id" binding:"required"`
	DisplayName string    `json:"displayName" binding:"required"`
	CreatedAt   time.Time `json:"createdAt"`
	IsDeleted   bool      `json:"isDeleted"`
}

// CreateCategory is the payload for POST /api/category.
type CreateCategory struct {
	DisplayName string `json:"displayName" binding:"required"`
}
