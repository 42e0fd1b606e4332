package worker

import (
	"context"
	"errors"

	"github.com/senghong-shop/internal/logger"
	"github.com/senghong-shop/internal/provider"
	"github.com/senghong-shop/internal/queue"

	"github.com/hibiken/asynq"
)

// Consumer 异步任务消费者
type Consumer struct {
	*provider.Container
}

// NewConsumer 创建消费者
func NewConsumer(c *provider.Container) *Consumer {
	return &Consumer{
		Container: c,
	}
}

// Register 注册消费者
func (c *Consumer) Register(mux *asynq.ServeMux) {
	if c == nil || mux == nil {
		logger.Debugw("worker_register_skip_nil", "consumer_nil", c == nil, "mux_nil", mux == nil)
		return
	}
	mux.HandleFunc(queue.TaskCheckoutHandoff, c.handleCheckoutHandoff)
}

// handleCheckoutHandoff 落库结账交接记录；载荷无效时跳过重试
func (c *Consumer) handleCheckoutHandoff(_ context.Context, task *asynq.Task) error {
	if c == nil || c.Container == nil || task == nil {
		logger.Debugw("worker_checkout_handoff_skip_nil", "consumer_nil", c == nil, "task_nil", task == nil)
		return nil
	}
	payload, err := queue.ParseCheckoutHandoffPayload(task)
	if err != nil {
		logger.Warnw("worker_checkout_handoff_payload_invalid", "error", err)
		return errors.Join(err, asynq.SkipRetry)
	}
	if c.CheckoutLogRepo == nil {
		logger.Warnw("worker_checkout_handoff_skip_store_disabled", "handoff_id", payload.Log.ID)
		return nil
	}
	if err := c.CheckoutLogRepo.Create(&payload.Log); err != nil {
		logger.Warnw("worker_checkout_handoff_save_failed", "handoff_id", payload.Log.ID, "error", err)
		return err
	}
	logger.Infow("worker_checkout_handoff_saved",
		"handoff_id", payload.Log.ID,
		"session_id", payload.Log.SessionID,
		"delivery_mode", payload.Log.DeliveryMode,
	)
	return nil
}
