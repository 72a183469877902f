package dto

import "time"

// Role is the wire representation of a role.
type Role struct {
	ID          string    `json:"id" binding:"required"`
	DisplayName string    `json:"displayName" binding:"required"`
	CreatedAt   time.Time `json:"createdAt"`
	IsDeleted   bool      `json:"isDeleted"`
}

// CreateRole is the payload for POST /api/roles.
type CreateRole struct {
	DisplayName string `json:"displayName" binding:"required"`
}

// RoleManage is the payload for the grant/revoke endpoints.
type RoleManage struct {
	RoleID string `json:"roleId" binding:"required"`
	UserID string `json:"userId" binding:"required"`
}
