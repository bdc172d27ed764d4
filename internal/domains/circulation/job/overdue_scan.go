package job

import (
	"context"
	"encoding/json"
	"time"

	"github.com/hibiken/asynq"

	"library-backend/internal/domains/circulation"
	"library-backend/pkg/logger"
)

// TypeOverdueScan is the asynq task type for the periodic overdue loan scan.
const TypeOverdueScan = "circulation:overdue_scan"

type OverdueScanPayload struct {
	// ScheduledAt records when the scheduler enqueued the task, for
	// observability only. The scan itself uses the processing time.
	ScheduledAt time.Time `json:"scheduled_at"`
}

func NewOverdueScanTask() (*asynq.Task, error) {
	payload, err := json.Marshal(OverdueScanPayload{ScheduledAt: time.Now().UTC()})
	if err != nil {
		return nil, err
	}
	return asynq.NewTask(TypeOverdueScan, payload), nil
}

// OverdueScanHandler flags open loans past their due date. The scan is a
// single idempotent UPDATE, so overlapping or repeated runs are harmless.
type OverdueScanHandler struct {
	svc circulation.Service
}

func NewOverdueScanHandler(svc circulation.Service) *OverdueScanHandler {
	return &OverdueScanHandler{svc: svc}
}

func (h *OverdueScanHandler) ProcessTask(ctx context.Context, t *asynq.Task) error {
	marked, err := h.svc.DetectOverdue(ctx, time.Now().UTC())
	if err != nil {
		return err
	}

	logger.Info("overdue scan completed", map[string]interface{}{
		"marked": marked,
	})
	return nil
}
