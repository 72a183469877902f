package dto

import "time"

// User is the wire representation of a user. Passwords are write-only and
// never serialized back.
type User struct {
	ID        string    `json:"id" binding:"required"`
	UserName  string    `json:"userName" binding:"required"`
	FirstName string    `json:"firstName"`
	LastName  string    `json:"lastName"`
	Roles     []Role    `json:"roles"`
	CreatedAt time.Time `json:"createdAt"`
	IsDeleted bool      `json:"isDeleted"`
}

// CreateUser is the payload for POST /api/users. RoleID optionally grants
// an existing role at creation time.
type CreateUser struct {
	UserName  string `json:"userName" binding:"required"`
	FirstName string `json:"firstName" binding:"required"`
	LastName  string `json:"lastName" binding:"required"`
	Password  string `json:"password" binding:"required,min=6"`
	RoleID    string `json:"roleId"`
}
