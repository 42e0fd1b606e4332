package queue

import (
	"encoding/json"
	"errors"
	"strings"

	"github.com/senghong-shop/internal/constants"
	"github.com/senghong-shop/internal/models"

	"github.com/hibiken/asynq"
)

const (
	// TaskCheckoutHandoff 结账交接记录任务
	TaskCheckoutHandoff = constants.TaskCheckoutHandoff
)

// ErrHandoffPayloadInvalid 交接任务载荷缺少必要字段
var ErrHandoffPayloadInvalid = errors.New("checkout handoff payload invalid")

// CheckoutHandoffPayload 结账交接任务载荷
type CheckoutHandoffPayload struct {
	Log models.CheckoutLog `json:"log"`
}

// NewCheckoutHandoffTask 创建结账交接任务
func NewCheckoutHandoffTask(payload CheckoutHandoffPayload) (*asynq.Task, error) {
	if strings.TrimSpace(payload.Log.ID) == "" {
		return nil, ErrHandoffPayloadInvalid
	}
	body, err := json.Marshal(payload)
	if err != nil {
		return nil, err
	}
	return asynq.NewTask(TaskCheckoutHandoff, body), nil
}

// ParseCheckoutHandoffPayload 解析结账交接任务载荷
func ParseCheckoutHandoffPayload(task *asynq.Task) (CheckoutHandoffPayload, error) {
	var payload CheckoutHandoffPayload
	if task == nil {
		return payload, ErrHandoffPayloadInvalid
	}
	if err := json.Unmarshal(task.Payload(), &payload); err != nil {
		return payload, err
	}
	if strings.TrimSpace(payload.Log.ID) == "" {
		return payload, ErrHandoffPayloadInvalid
	}
	return payload, nil
}
