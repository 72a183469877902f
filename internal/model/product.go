package model

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// Product is the persisted product document.
type Product struct {
	ID          uuid.UUID       `gorm:"type:uuid;default:gen_random_uuid();primaryKey"`
	DisplayName string          `gorm:"type:varchar(255);not null"`
	TotalRating float64         `gorm:"type:decimal(10,2);not null;default:0"`
	Price       decimal.Decimal `gorm:"type:decimal(18,2);not null"`
	CreatedAt   time.Time       `gorm:"autoCreateTime"`
	IsDeleted   bool            `gorm:"not null;default:false"`
}
