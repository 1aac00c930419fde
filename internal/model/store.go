package model

import (
	"time"

	"github.com/google/uuid"
)

// Store is a physical point of sale.
type Store struct {
	ID        uuid.UUID `gorm:"type:uuid;primaryKey;default:gen_random_uuid()"`
	Name      string    `gorm:"not null"`
	Address   *string
	Active    bool `gorm:"not null;default:true"`
	CreatedAt time.Time
}

func (Store) TableName() string { return "stores" }

// Employee belongs to a store and authenticates with a numeric PIN. The PIN
// itself is never stored: only its bcrypt hash, verified server-side by the
// verify_employee_pin procedure.
type Employee struct {
	ID      uuid.UUID `gorm:"type:uuid;primaryKey;default:gen_random_uuid()"`
	StoreID uuid.UUID `gorm:"type:uuid;index;not null"`
	Name    string    `gorm:"not null"`
	// Role: "cajero" | "encargado" | "admin"
	Role      string `gorm:"type:varchar(20);not null;default:'cajero'"`
	PinHash   string `gorm:"not null"`
	Active    bool   `gorm:"not null;default:true"`
	CreatedAt time.Time
}

func (Employee) TableName() string { return "employees" }
