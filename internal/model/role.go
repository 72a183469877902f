package model

import (
	"time"

	"github.com/google/uuid"
)

// Default roles seeded at startup and referenced by the authorization guards.
const (
	RoleAdmin = "Admin"
	RoleBuyer = "Buyer"
)

// Role is the persisted role document. Users are linked many-to-many via the
// user_roles join table.
type Role struct {
	ID          uuid.UUID `gorm:"type:uuid;default:gen_random_uuid();primaryKey"`
	DisplayName string    `gorm:"type:varchar(100);uniqueIndex;not null"`
	Users       []User    `gorm:"many2many:user_roles;"`
	CreatedAt   time.Time `gorm:"autoCreateTime"`
	IsDeleted   bool      `gorm:"not null;default:false"`
}
