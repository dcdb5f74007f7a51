package jobs

import (
	"encoding/json"

	"github.com/hibiken/asynq"
)

const (
	// QueueDefault is the default queue name for background jobs.
	QueueDefault = "default"
	// TaskStockWarmup is the task type for refreshing the stock level cache.
	TaskStockWarmup = "stock:warmup"
)

// StockWarmupPayload scopes a warmup run. An empty WarehouseID warms every
// active warehouse.
type StockWarmupPayload struct {
	WarehouseID string `json:"warehouse_id,omitempty"`
}

// NewStockWarmupTask constructs an Asynq task.
func NewStockWarmupTask(payload StockWarmupPayload) (*asynq.Task, error) {
	data, err := json.Marshal(payload)
	if err != nil {
		return nil, err
	}
	return asynq.NewTask(TaskStockWarmup, data), nil
}
