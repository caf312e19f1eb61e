package worker

import (
	"context"
	"encoding/json"

	"order-store/internal/broker"
	"order-store/internal/models"
	"order-store/internal/util"

	"github.com/segmentio/kafka-go"
	"go.uber.org/zap"
)

// AuditWorker consumes entity lifecycle events and writes one structured
// audit log line per event.
type AuditWorker struct {
	consumer *broker.Consumer
	logger   *zap.Logger
}

// NewAuditWorker creates a new audit worker
func NewAuditWorker(consumer *broker.Consumer) *AuditWorker {
	return &AuditWorker{
		consumer: consumer,
		logger:   util.GetLogger(),
	}
}

// Start starts the worker. Blocks until ctx is cancelled.
func (w *AuditWorker) Start(ctx context.Context) error {
	w.logger.Info("Starting audit worker")
	return w.consumer.StartConsuming(ctx, w.handleMessage)
}

// Stop stops the worker
func (w *AuditWorker) Stop() error {
	w.logger.Info("Stopping audit worker")
	return w.consumer.Close()
}

func (w *AuditWorker) handleMessage(ctx context.Context, msg kafka.Message) error {
	var event models.EntityEvent
	if err := json.Unmarshal(msg.Value, &event); err != nil {
		// malformed events are logged and skipped, not retried
		w.logger.Warn("Skipping malformed entity event", zap.Error(err))
		return nil
	}

	w.logger.Info("audit",
		zap.String("event_id", event.EventID),
		zap.String("event_type", event.EventType),
		zap.String("entity", event.Entity),
		zap.String("action", event.Action),
		zap.Int64("entity_id", event.EntityID),
		zap.Time("occurred_at", event.Timestamp))

	return nil
}
