package command

import "time"

// Role is the internal, transport-agnostic representation of a role used
// between the service and adapter layers.
type Role struct {
	ID          string
	DisplayName string
	CreatedAt   time.Time
	IsDeleted   bool
}

// CreateRole carries the fields needed to create a role.
type CreateRole struct {
	DisplayName string
}
