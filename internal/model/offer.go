package model

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// ProductOffer is a percent discount on a product within a date window.
// Overlapping offers are resolved by the highest discount.
type ProductOffer struct {
	ID          uuid.UUID       `gorm:"type:uuid;primaryKey;default:gen_random_uuid()"`
	ProductID   uuid.UUID       `gorm:"type:uuid;index;not null"`
	DiscountPct decimal.Decimal `gorm:"type:decimal(5,2);not null"`
	StartsAt    time.Time       `gorm:"not null"`
	EndsAt      time.Time       `gorm:"not null"`
	Active      bool            `gorm:"not null;default:true"`
	CreatedAt   time.Time

	Product *Product `gorm:"foreignKey:ProductID"`
}

func (ProductOffer) TableName() string { return "product_offers" }
