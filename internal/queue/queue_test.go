package queue

import (
	"errors"
	"testing"

	"github.com/senghong-shop/internal/config"
	"github.com/senghong-shop/internal/models"

	"github.com/hibiken/asynq"
)

func TestCheckoutHandoffTaskRoundTrip(t *testing.T) {
	task, err := NewCheckoutHandoffTask(CheckoutHandoffPayload{Log: models.CheckoutLog{
		ID:         "h-1",
		SessionID:  "s-1",
		TotalPrice: models.NewMoneyFromFloat(12.5),
	}})
	if err != nil {
		t.Fatalf("create task failed: %v", err)
	}
	if task.Type() != TaskCheckoutHandoff {
		t.Fatalf("unexpected task type: %s", task.Type())
	}
	payload, err := ParseCheckoutHandoffPayload(task)
	if err != nil {
		t.Fatalf("parse payload failed: %v", err)
	}
	if payload.Log.SessionID != "s-1" || payload.Log.TotalPrice.String() != "12.50" {
		t.Fatalf("unexpected payload: %+v", payload.Log)
	}
}

func TestCheckoutHandoffTaskRequiresID(t *testing.T) {
	if _, err := NewCheckoutHandoffTask(CheckoutHandoffPayload{}); !errors.Is(err, ErrHandoffPayloadInvalid) {
		t.Fatalf("expected ErrHandoffPayloadInvalid, got %v", err)
	}
	if _, err := ParseCheckoutHandoffPayload(asynq.NewTask(TaskCheckoutHandoff, []byte(`{"log":{}}`))); !errors.Is(err, ErrHandoffPayloadInvalid) {
		t.Fatalf("expected ErrHandoffPayloadInvalid, got %v", err)
	}
}

func TestDisabledClientIsNoop(t *testing.T) {
	client, err := NewClient(&config.QueueConfig{Enabled: false})
	if err != nil {
		t.Fatalf("create client failed: %v", err)
	}
	if client.Enabled() {
		t.Fatalf("client should be disabled")
	}
	if err := client.EnqueueCheckoutHandoff(CheckoutHandoffPayload{}); err != nil {
		t.Fatalf("disabled enqueue should be noop: %v", err)
	}
}

func TestBuildServerConfigDefaults(t *testing.T) {
	opt, cfg := BuildServerConfig(&config.QueueConfig{Host: " redis ", Port: 6380, DB: 2})
	if opt.Addr != "redis:6380" || opt.DB != 2 {
		t.Fatalf("unexpected redis opt: %+v", opt)
	}
	if cfg.Concurrency != 5 || cfg.Queues[DefaultQueue] != 1 {
		t.Fatalf("unexpected server config: %+v", cfg)
	}
}
