package command

import "time"

// User is the internal representation of a user. Password never appears
// here; it exists only on the create path and in the persisted document.
type User struct {
	ID        string
	UserName  string
	FirstName string
	LastName  string
	Roles     []Role
	CreatedAt time.Time
	IsDeleted bool
}

// Credentials is the sign-in view of a user. It is the one internal shape
// that carries the persisted password hash.
type Credentials struct {
	UserID       string
	UserName     string
	PasswordHash string
	Role         string
}

// CreateUser carries the fields needed to create a user. Password is the
// already-hashed credential; RoleID optionally references an existing role
// the new user is granted at creation.
type CreateUser struct {
	UserName  string
	FirstName string
	LastName  string
	Password  string
	RoleID    string
}
