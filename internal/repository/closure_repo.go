package repository

import (
	"context"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/juampy12/super-juampy-sub000/internal/model"
)

// ClosureRepository persists daily closure snapshots. One row per store per
// store-local day; re-closing a day overwrites the previous snapshot.
type ClosureRepository interface {
	Upsert(ctx context.Context, c *model.CashClosure) error
	FindByStoreAndDay(ctx context.Context, storeID uuid.UUID, day string) (*model.CashClosure, error)
}

type closureRepo struct{ db *gorm.DB }

func NewClosureRepository(db *gorm.DB) ClosureRepository { return &closureRepo{db: db} }

func (r *closureRepo) Upsert(ctx context.Context, c *model.CashClosure) error {
	return r.db.WithContext(ctx).Exec(`
		INSERT INTO cash_closures (store_id, day, total_amount, tickets, net_cash, summary, closed_by, created_at)
		VALUES (?, ?, ?, ?, ?, ?::jsonb, ?, now())
		ON CONFLICT (store_id, day)
		DO UPDATE SET total_amount = EXCLUDED.total_amount,
		              tickets      = EXCLUDED.tickets,
		              net_cash     = EXCLUDED.net_cash,
		              summary      = EXCLUDED.summary,
		              closed_by    = EXCLUDED.closed_by,
		              created_at   = now()
	`, c.StoreID, c.Day, c.TotalAmount, c.Tickets, c.NetCash, string(c.Summary), c.ClosedBy).Error
}

func (r *closureRepo) FindByStoreAndDay(ctx context.Context, storeID uuid.UUID, day string) (*model.CashClosure, error) {
	var c model.CashClosure
	err := r.db.WithContext(ctx).
		Where("store_id = ? AND day = ?", storeID, day).
		First(&c).Error
	return &c, err
}
