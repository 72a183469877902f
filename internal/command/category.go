package command

import "time"

// Category is the internal representation of a category.
type Category struct {
	ID          string
	DisplayName string
	CreatedAt   time.Time
	IsDeleted   bool
}

// CreateCategory carries the fields needed to create a category.
type CreateCategory struct {
	DisplayName string
}
