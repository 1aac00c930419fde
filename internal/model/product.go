package model

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// Product is one catalog entry. Stock lives per store in ProductStock;
// prices are unit sale prices; cost tracking stays in the database layer.
type Product struct {
	ID          uuid.UUID `gorm:"type:uuid;primaryKey;default:gen_random_uuid()"`
	Barcode     string    `gorm:"uniqueIndex;not null"`
	Name        string    `gorm:"index;not null"`
	Description *string
	Category    string          `gorm:"not null"`
	Price       decimal.Decimal `gorm:"type:decimal(12,2);not null"`
	Unit        string          `gorm:"not null;default:'unidad'"`
	Active      bool            `gorm:"not null;default:true"`
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

func (Product) TableName() string { return "products" }

// ProductStock is the per-store stock row for a product.
type ProductStock struct {
	ID        uuid.UUID `gorm:"type:uuid;primaryKey;default:gen_random_uuid()"`
	ProductID uuid.UUID `gorm:"type:uuid;index:idx_product_store,unique;not null"`
	StoreID   uuid.UUID `gorm:"type:uuid;index:idx_product_store,unique;not null"`
	Quantity  int       `gorm:"not null;default:0"`
	MinStock  int       `gorm:"not null;default:5"`
	UpdatedAt time.Time

	Product *Product `gorm:"foreignKey:ProductID"`
}

func (ProductStock) TableName() string { return "product_stocks" }
