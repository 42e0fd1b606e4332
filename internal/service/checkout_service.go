package service

import (
	"context"
	"strings"
	"time"

	"github.com/senghong-shop/internal/cart"
	"github.com/senghong-shop/internal/checkout"
	"github.com/senghong-shop/internal/config"
	"github.com/senghong-shop/internal/constants"
	"github.com/senghong-shop/internal/logger"
	"github.com/senghong-shop/internal/models"
	"github.com/senghong-shop/internal/queue"
	"github.com/senghong-shop/internal/repository"

	"github.com/google/uuid"
)

// CheckoutInput 结账参数
type CheckoutInput struct {
	SessionID    string
	RequestID    string
	DeliveryMode string
	DeliveryTime string
}

// CheckoutResult 结账结果：下单消息与聊天跳转链接
type CheckoutResult struct {
	HandoffID    string                `json:"handoff_id,omitempty"`
	DeliveryMode checkout.DeliveryMode `json:"delivery_mode"`
	Message      string                `json:"message"`
	URL          string                `json:"url"`
	Summary      cart.Summary          `json:"summary"`
	Currency     string                `json:"currency"`
}

// CheckoutService 结账交接服务
type CheckoutService struct {
	cfg      config.CheckoutConfig
	carts    *CartService
	logs     repository.CheckoutLogRepository
	queue    *queue.Client
	location *time.Location
	now      func() time.Time
}

// NewCheckoutService 创建结账服务；logs 为 nil 时不记录交接
func NewCheckoutService(cfg config.CheckoutConfig, carts *CartService, logs repository.CheckoutLogRepository, queueClient *queue.Client) *CheckoutService {
	return &CheckoutService{
		cfg:      cfg,
		carts:    carts,
		logs:     logs,
		queue:    queueClient,
		location: cfg.Location(),
		now:      time.Now,
	}
}

// Preview 预览下单消息，不校验送达时间也不记录
func (s *CheckoutService) Preview(ctx context.Context, input CheckoutInput) (*CheckoutResult, error) {
	mode, err := checkout.ParseDeliveryMode(input.DeliveryMode)
	if err != nil {
		return nil, err
	}
	state, err := s.carts.GetCart(ctx, input.SessionID)
	if err != nil {
		return nil, err
	}
	return s.build(state, mode, input.DeliveryTime), nil
}

// Checkout 校验后生成跳转链接并记录交接；记录失败只写日志，不影响返回链接。购物车保持不变。
func (s *CheckoutService) Checkout(ctx context.Context, input CheckoutInput) (*CheckoutResult, error) {
	mode, err := checkout.ParseDeliveryMode(input.DeliveryMode)
	if err != nil {
		return nil, err
	}
	if err := checkout.Validate(mode, input.DeliveryTime); err != nil {
		return nil, err
	}
	state, err := s.carts.GetCart(ctx, input.SessionID)
	if err != nil {
		return nil, err
	}
	if state.IsEmpty() {
		return nil, ErrCartEmpty
	}

	result := s.build(state, mode, input.DeliveryTime)
	result.HandoffID = uuid.NewString()

	log := models.CheckoutLog{
		ID:           result.HandoffID,
		SessionID:    strings.TrimSpace(input.SessionID),
		RequestID:    input.RequestID,
		DeliveryMode: string(mode),
		DeliveryTime: strings.TrimSpace(input.DeliveryTime),
		LineCount:    len(state.Items),
		TotalItems:   result.Summary.TotalItems,
		TotalPrice:   result.Summary.TotalPrice,
		Currency:     result.Currency,
		Message:      result.Message,
		URL:          result.URL,
		CreatedAt:    s.now(),
	}
	s.record(log)
	logger.Infow("checkout_handoff_created",
		"handoff_id", log.ID,
		"session_id", log.SessionID,
		"delivery_mode", log.DeliveryMode,
		"total_items", log.TotalItems,
		"total_price", log.TotalPrice.String(),
	)
	return result, nil
}

// ListHandoffs 分页查询交接记录
func (s *CheckoutService) ListHandoffs(filter repository.CheckoutLogListFilter) ([]models.CheckoutLog, int64, error) {
	if s.logs == nil {
		return nil, 0, ErrHandoffStoreMissing
	}
	return s.logs.List(filter)
}

// GetHandoff 查询当前会话的单条交接记录；其他会话的记录视为不存在
func (s *CheckoutService) GetHandoff(sessionID, id string) (*models.CheckoutLog, error) {
	if s.logs == nil {
		return nil, ErrHandoffStoreMissing
	}
	log, err := s.logs.GetByID(normalizeID(id))
	if err != nil {
		return nil, err
	}
	if log == nil || log.SessionID != strings.TrimSpace(sessionID) {
		return nil, ErrNotFound
	}
	return log, nil
}

func (s *CheckoutService) build(state cart.State, mode checkout.DeliveryMode, deliveryTime string) *CheckoutResult {
	message := checkout.FormatMessage(state.Items, mode, deliveryTime, s.now(), s.location)
	currency := strings.TrimSpace(s.cfg.Currency)
	if currency == "" {
		currency = constants.SiteCurrencyDefault
	}
	return &CheckoutResult{
		DeliveryMode: mode,
		Message:      message,
		URL:          checkout.BuildURL(s.cfg.ChatBaseURL, s.cfg.ChatHandle, message),
		Summary:      cart.Totals(state.Items),
		Currency:     currency,
	}
}

// record 队列启用时异步落库，否则直接写入
func (s *CheckoutService) record(log models.CheckoutLog) {
	if s.queue.Enabled() {
		err := s.queue.EnqueueCheckoutHandoff(queue.CheckoutHandoffPayload{Log: log})
		if err == nil {
			return
		}
		logger.Warnw("checkout_handoff_enqueue_failed", "handoff_id", log.ID, "error", err)
	}
	if s.logs == nil {
		logger.Debugw("checkout_handoff_not_recorded", "handoff_id", log.ID, "reason", "store_disabled")
		return
	}
	if err := s.logs.Create(&log); err != nil {
		logger.Errorw("checkout_handoff_record_failed", "handoff_id", log.ID, "error", err)
	}
}
