package public

import (
	"github.com/senghong-shop/internal/cart"
	"github.com/senghong-shop/internal/http/response"
	"github.com/senghong-shop/internal/service"

	"github.com/gin-gonic/gin"
)

// CartOptionRequest 规格选择
type CartOptionRequest struct {
	Color    string `json:"color"`
	Size     string `json:"size"`
	Quantity int    `json:"quantity"`
}

// AddCartItemRequest 加入购物车请求
type AddCartItemRequest struct {
	ProductID string              `json:"product_id" binding:"required"`
	Options   []CartOptionRequest `json:"options"`
}

// UpdateCartOptionRequest 修改规格数量请求
type UpdateCartOptionRequest struct {
	Color    string `json:"color"`
	Size     string `json:"size"`
	Quantity int    `json:"quantity"`
}

// GetCart 获取购物车
func (h *Handler) GetCart(c *gin.Context) {
	sessionID, ok := getSessionID(c)
	if !ok {
		return
	}
	state, err := h.CartService.GetCart(c.Request.Context(), sessionID)
	if err != nil {
		respondWithMappedError(c, err, cartErrorRules, response.CodeInternal, "error.session_unavailable")
		return
	}
	response.Success(c, state)
}

// AddCartItem 加入购物车（同款同规格合并数量）
func (h *Handler) AddCartItem(c *gin.Context) {
	sessionID, ok := getSessionID(c)
	if !ok {
		return
	}
	var req AddCartItemRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondError(c, response.CodeBadRequest, "error.bad_request", nil)
		return
	}
	options := make([]cart.Option, 0, len(req.Options))
	for _, opt := range req.Options {
		options = append(options, cart.Option{Color: opt.Color, Size: opt.Size, Quantity: opt.Quantity})
	}
	state, err := h.CartService.AddItem(c.Request.Context(), sessionID, service.AddItemInput{
		ProductID: req.ProductID,
		Options:   options,
	})
	if err != nil {
		respondWithMappedError(c, err, cartErrorRules, response.CodeInternal, "error.internal")
		return
	}
	response.Success(c, state)
}

// UpdateCartOption 修改规格数量，数量 ≤ 0 时移除
func (h *Handler) UpdateCartOption(c *gin.Context) {
	sessionID, ok := getSessionID(c)
	if !ok {
		return
	}
	var req UpdateCartOptionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondError(c, response.CodeBadRequest, "error.bad_request", nil)
		return
	}
	key := cart.NewOptionKey(req.Color, req.Size)
	state, err := h.CartService.UpdateOptionQuantity(c.Request.Context(), sessionID, c.Param("product_id"), key, req.Quantity)
	if err != nil {
		respondWithMappedError(c, err, cartErrorRules, response.CodeInternal, "error.internal")
		return
	}
	response.Success(c, state)
}

// RemoveCartOption 移除规格
func (h *Handler) RemoveCartOption(c *gin.Context) {
	sessionID, ok := getSessionID(c)
	if !ok {
		return
	}
	key := cart.NewOptionKey(c.Query("color"), c.Query("size"))
	state, err := h.CartService.RemoveOption(c.Request.Context(), sessionID, c.Param("product_id"), key)
	if err != nil {
		respondWithMappedError(c, err, cartErrorRules, response.CodeInternal, "error.internal")
		return
	}
	response.Success(c, state)
}

// RemoveCartItem 删除商品行
func (h *Handler) RemoveCartItem(c *gin.Context) {
	sessionID, ok := getSessionID(c)
	if !ok {
		return
	}
	state, err := h.CartService.RemoveItem(c.Request.Context(), sessionID, c.Param("product_id"))
	if err != nil {
		respondWithMappedError(c, err, cartErrorRules, response.CodeInternal, "error.internal")
		return
	}
	response.Success(c, state)
}

// ClearCart 清空购物车
func (h *Handler) ClearCart(c *gin.Context) {
	sessionID, ok := getSessionID(c)
	if !ok {
		return
	}
	state, err := h.CartService.Clear(c.Request.Context(), sessionID)
	if err != nil {
		respondWithMappedError(c, err, cartErrorRules, response.CodeInternal, "error.internal")
		return
	}
	response.Success(c, state)
}
