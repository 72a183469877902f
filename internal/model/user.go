package model

import (
	"time"

	"github.com/google/uuid"
)

// User is the persisted user document. The password column holds a bcrypt
// hash and never crosses the DTO boundary.
type User struct {
	ID        uuid.UUID `gorm:"type:uuid;default:gen_random_uuid();primaryKey"`
	UserName  string    `gorm:"type:varchar(255);uniqueIndex;not null"`
	FirstName string    `gorm:"type:varchar(255);not null"`
	LastName  string    `gorm:"type:varchar(255);not null"`
	Password  string    `gorm:"type:varchar(255);not null"`
	Roles     []Role    `gorm:"many2many:user_roles;"`
	CreatedAt time.Time `gorm:"autoCreateTime"`
	IsDeleted bool      `gorm:"not null;default:false"`
}
