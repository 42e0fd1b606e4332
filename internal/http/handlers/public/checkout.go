package public

import (
	"strconv"

	handlershared "github.com/senghong-shop/internal/http/handlers/shared"
	"github.com/senghong-shop/internal/http/response"
	"github.com/senghong-shop/internal/i18n"
	"github.com/senghong-shop/internal/repository"
	"github.com/senghong-shop/internal/service"

	"github.com/gin-gonic/gin"
)

// CheckoutRequest 结账请求
type CheckoutRequest struct {
	DeliveryMode string `json:"delivery_mode"` // delivery / pickup，默认 delivery
	DeliveryTime string `json:"delivery_time"`
}

func (h *Handler) bindCheckout(c *gin.Context) (service.CheckoutInput, bool) {
	sessionID, ok := getSessionID(c)
	if !ok {
		return service.CheckoutInput{}, false
	}
	var req CheckoutRequest
	if c.Request.ContentLength != 0 {
		if err := c.ShouldBindJSON(&req); err != nil {
			respondError(c, response.CodeBadRequest, "error.bad_request", nil)
			return service.CheckoutInput{}, false
		}
	}
	return service.CheckoutInput{
		SessionID:    sessionID,
		RequestID:    handlershared.RequestID(c),
		DeliveryMode: req.DeliveryMode,
		DeliveryTime: req.DeliveryTime,
	}, true
}

// PreviewCheckout 预览下单消息与跳转链接（不记录）
func (h *Handler) PreviewCheckout(c *gin.Context) {
	input, ok := h.bindCheckout(c)
	if !ok {
		return
	}
	result, err := h.CheckoutService.Preview(c.Request.Context(), input)
	if err != nil {
		respondWithMappedError(c, err, checkoutErrorRules, response.CodeInternal, "error.internal")
		return
	}
	response.Success(c, result)
}

// Checkout 生成聊天跳转链接并记录交接；购物车保持不变
func (h *Handler) Checkout(c *gin.Context) {
	input, ok := h.bindCheckout(c)
	if !ok {
		return
	}
	result, err := h.CheckoutService.Checkout(c.Request.Context(), input)
	if err != nil {
		respondWithMappedError(c, err, checkoutErrorRules, response.CodeInternal, "error.internal")
		return
	}
	response.SuccessWithMsg(c, i18n.T(i18n.ResolveLocale(c), "checkout.handoff_ready"), result)
}

// ListCheckoutHistory 当前会话的结账交接记录
func (h *Handler) ListCheckoutHistory(c *gin.Context) {
	sessionID, ok := getSessionID(c)
	if !ok {
		return
	}
	page, _ := strconv.Atoi(c.DefaultQuery("page", "1"))
	pageSize, _ := strconv.Atoi(c.DefaultQuery("page_size", "20"))
	page, pageSize = handlershared.NormalizePagination(page, pageSize)

	items, total, err := h.CheckoutService.ListHandoffs(repository.CheckoutLogListFilter{
		Page:      page,
		PageSize:  pageSize,
		SessionID: sessionID,
	})
	if err != nil {
		respondWithMappedError(c, err, checkoutErrorRules, response.CodeInternal, "error.internal")
		return
	}
	response.SuccessWithPage(c, items, response.NewPagination(page, pageSize, total))
}

// GetCheckoutHandoff 当前会话的单条交接记录
func (h *Handler) GetCheckoutHandoff(c *gin.Context) {
	sessionID, ok := getSessionID(c)
	if !ok {
		return
	}
	log, err := h.CheckoutService.GetHandoff(sessionID, c.Param("id"))
	if err != nil {
		respondWithMappedError(c, err, checkoutErrorRules, response.CodeInternal, "error.internal")
		return
	}
	response.Success(c, log)
}
