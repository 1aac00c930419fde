// Package worker runs async jobs over a Redis list queue: producers LPush,
// the pool consumes with BRPOP. Currently the only job type is the low-stock
// recheck enqueued after each confirmed sale.
package worker

import (
	"context"
	"encoding/json"
	"time"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog/log"

	"github.com/juampy12/super-juampy-sub000/internal/repository"
)

const (
	QueueStockAlerts = "jobs:stock-alerts"

	// alertsCacheTTL bounds staleness of the cached alert list when no sale
	// happens for a while.
	alertsCacheTTL = 10 * time.Minute
)

// Job is the generic envelope for all async tasks.
type Job struct {
	Type    string          `json:"type"`
	Payload json.RawMessage `json:"payload"`
}

// Dispatcher enqueues async jobs into Redis lists.
type Dispatcher struct {
	rdb *redis.Client
}

func NewDispatcher(rdb *redis.Client) *Dispatcher {
	return &Dispatcher{rdb: rdb}
}

// EnqueueStockAlert pushes a low-stock recheck job for a store.
func (d *Dispatcher) EnqueueStockAlert(ctx context.Context, payload interface{}) error {
	data, err := json.Marshal(payload)
	if err != nil {
		return err
	}
	job := Job{Type: "stock-alert", Payload: data}
	encoded, err := json.Marshal(job)
	if err != nil {
		return err
	}
	return d.rdb.LPush(ctx, QueueStockAlerts, encoded).Err()
}

// StockAlertWorker refreshes the cached low-stock list of a store by calling
// the low_stock_products function and storing the result in Redis, where the
// alerts endpoint reads it.
type StockAlertWorker struct {
	rdb      *redis.Client
	products repository.ProductRepository
}

func NewStockAlertWorker(rdb *redis.Client, products repository.ProductRepository) *StockAlertWorker {
	return &StockAlertWorker{rdb: rdb, products: products}
}

// AlertsKey is the Redis key holding the cached alert list for a store.
func AlertsKey(storeID string) string { return "alerts:stock:" + storeID }

type stockAlertPayload struct {
	StoreID string `json:"store_id"`
}

func (w *StockAlertWorker) Handle(ctx context.Context, payload json.RawMessage) {
	var p stockAlertPayload
	if err := json.Unmarshal(payload, &p); err != nil {
		log.Error().Err(err).Msg("stock-alert: bad payload")
		return
	}
	storeID, err := uuid.Parse(p.StoreID)
	if err != nil {
		log.Error().Str("store_id", p.StoreID).Msg("stock-alert: invalid store id")
		return
	}

	rows, err := w.products.LowStock(ctx, storeID)
	if err != nil {
		log.Error().Err(err).Str("store_id", p.StoreID).Msg("stock-alert: low_stock_products failed")
		return
	}

	b, err := json.Marshal(rows)
	if err != nil {
		return
	}
	if err := w.rdb.Set(ctx, AlertsKey(p.StoreID), b, alertsCacheTTL).Err(); err != nil {
		log.Error().Err(err).Msg("stock-alert: cache write failed")
		return
	}
	log.Debug().Str("store_id", p.StoreID).Int("alerts", len(rows)).Msg("stock alerts refreshed")
}

// StartWorkerPool launches numWorkers goroutines consuming the alert queue.
// Each goroutine blocks on BRPOP, zero CPU when idle.
func StartWorkerPool(ctx context.Context, rdb *redis.Client, w *StockAlertWorker, numWorkers int) {
	for i := 0; i < numWorkers; i++ {
		go runWorker(ctx, rdb, w, i)
	}
	log.Info().Msgf("worker pool started with %d workers", numWorkers)
}

func runWorker(ctx context.Context, rdb *redis.Client, w *StockAlertWorker, id int) {
	for {
		select {
		case <-ctx.Done():
			log.Info().Msgf("worker %d shutting down", id)
			return
		default:
			// Blocking pop, waits up to 5s then loops to check ctx
			result, err := rdb.BRPop(ctx, 5*time.Second, QueueStockAlerts).Result()
			if err != nil {
				continue // timeout or context cancelled
			}
			if len(result) < 2 {
				continue
			}
			var job Job
			if err := json.Unmarshal([]byte(result[1]), &job); err != nil {
				log.Error().Err(err).Msg("failed to unmarshal job")
				continue
			}
			w.Handle(ctx, job.Payload)
		}
	}
}
