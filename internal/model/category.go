package model

import (
	"time"

	"github.com/google/uuid"
)

// Category is the persisted category document.
type Category struct {
	ID          uuid.UUID `gorm:"type:uuid;default:gen_random_uuid();primaryKey"`
	DisplayName string    `gorm:"type:varchar(255);not null"`
	CreatedAt   time.Time `gorm:"autoCreateTime"`
	IsDeleted   bool      `gorm:"not null;default:false"`
}
