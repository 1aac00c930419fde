package model

import (
	"encoding/json"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// CashClosure is a persisted snapshot of a day's closure summary for a store.
// The summary JSON is the exact response body served by the closure endpoint
// at the moment of closing, so historic closures survive later rule changes.
type CashClosure struct {
	ID          uuid.UUID       `gorm:"type:uuid;primaryKey;default:gen_random_uuid()"`
	StoreID     uuid.UUID       `gorm:"type:uuid;index:idx_closure_store_day,unique;not null"`
	Day         string          `gorm:"type:varchar(10);index:idx_closure_store_day,unique;not null"`
	TotalAmount decimal.Decimal `gorm:"type:decimal(12,2);not null"`
	Tickets     int             `gorm:"not null"`
	NetCash     decimal.Decimal `gorm:"type:decimal(12,2);not null"`
	Summary     json.RawMessage `gorm:"type:jsonb"`
	ClosedBy    *uuid.UUID      `gorm:"type:uuid"`
	CreatedAt   time.Time
}

func (CashClosure) TableName() string { return "cash_closures" }
