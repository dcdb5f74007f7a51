package jobs

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"

	"github.com/hibiken/asynq"

	"github.com/warebridge/warebridge/internal/masterdata"
	"github.com/warebridge/warebridge/internal/stocklevels"
)

const warmupPageSize = 200

// StockWarmupJob pulls stock levels per warehouse from the legacy backend
// and stores the normalized rows in the cache the read path serves from.
type StockWarmupJob struct {
	master *masterdata.Client
	stock  *stocklevels.Client
	cache  *stocklevels.Cache
	logger *slog.Logger
}

// NewStockWarmupJob wires the warmup job dependencies.
func NewStockWarmupJob(master *masterdata.Client, stock *stocklevels.Client, cache *stocklevels.Cache, logger *slog.Logger) *StockWarmupJob {
	return &StockWarmupJob{master: master, stock: stock, cache: cache, logger: logger}
}

// Handle processes TaskStockWarmup tasks. A warehouse that fails to warm
// is logged and skipped; the run only errors when nothing could be warmed.
func (j *StockWarmupJob) Handle(ctx context.Context, t *asynq.Task) error {
	var payload StockWarmupPayload
	if err := json.Unmarshal(t.Payload(), &payload); err != nil {
		return asynq.SkipRetry
	}

	ids, err := j.warehouseIDs(ctx, payload.WarehouseID)
	if err != nil {
		return fmt.Errorf("list warehouses: %w", err)
	}

	warmed := 0
	for _, id := range ids {
		rows, err := j.collect(ctx, id)
		if err != nil {
			j.logger.Warn("stock warmup skipped warehouse", slog.String("warehouse_id", id), slog.Any("error", err))
			continue
		}
		if err := j.cache.Put(ctx, id, rows); err != nil {
			j.logger.Warn("stock warmup cache write failed", slog.String("warehouse_id", id), slog.Any("error", err))
			continue
		}
		warmed++
	}
	j.logger.Info("stock warmup finished", slog.Int("warehouses", warmed), slog.Int("requested", len(ids)))
	if warmed == 0 && len(ids) > 0 {
		return fmt.Errorf("stock warmup: no warehouse warmed out of %d", len(ids))
	}
	return nil
}

func (j *StockWarmupJob) warehouseIDs(ctx context.Context, only string) ([]string, error) {
	if only != "" {
		return []string{only}, nil
	}
	var ids []string
	for page := 1; ; page++ {
		list, err := j.master.ListWarehouses(ctx, masterdata.ListParams{Page: page, Limit: warmupPageSize})
		if err != nil {
			return nil, err
		}
		for _, w := range list.Items {
			if w.IsDeleted {
				continue
			}
			ids = append(ids, w.ID)
		}
		if len(list.Items) < warmupPageSize {
			return ids, nil
		}
	}
}

func (j *StockWarmupJob) collect(ctx context.Context, warehouseID string) ([]stocklevels.StockLevel, error) {
	var rows []stocklevels.StockLevel
	for page := 1; ; page++ {
		list, err := j.stock.List(ctx, stocklevels.ListParams{
			Page:        page,
			Limit:       warmupPageSize,
			WarehouseID: warehouseID,
		})
		if err != nil {
			return nil, err
		}
		for _, row := range list.Items {
			if row.IsDeleted {
				continue
			}
			rows = append(rows, row)
		}
		if len(list.Items) < warmupPageSize {
			return rows, nil
		}
	}
}
