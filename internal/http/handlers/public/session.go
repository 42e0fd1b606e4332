package public

import (
	"github.com/senghong-shop/internal/catalog"
	"github.com/senghong-shop/internal/http/response"
	"github.com/senghong-shop/internal/session"

	"github.com/gin-gonic/gin"
)

// ShowCategoryRequest 切换分类请求
type ShowCategoryRequest struct {
	Category string `json:"category" binding:"required"`
}

// ShowEventRequest 切换活动请求
type ShowEventRequest struct {
	EventID string `json:"event_id" binding:"required"`
}

// SetSearchRequest 搜索请求
type SetSearchRequest struct {
	Query string `json:"query"`
}

// VisibleProductsResponse 当前视图商品
type VisibleProductsResponse struct {
	View  session.View      `json:"view"`
	Items []catalog.Product `json:"items"`
	Total int               `json:"total"`
}

// GetSession 获取访客会话（不存在时创建）
func (h *Handler) GetSession(c *gin.Context) {
	sessionID, ok := getSessionID(c)
	if !ok {
		return
	}
	state, err := h.CartService.GetSession(c.Request.Context(), sessionID)
	if err != nil {
		respondWithMappedError(c, err, sessionErrorRules, response.CodeInternal, "error.session_unavailable")
		return
	}
	response.Success(c, state)
}

// ShowCategory 切换到分类视图
func (h *Handler) ShowCategory(c *gin.Context) {
	sessionID, ok := getSessionID(c)
	if !ok {
		return
	}
	var req ShowCategoryRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondError(c, response.CodeBadRequest, "error.bad_request", nil)
		return
	}
	state, err := h.CartService.ShowCategory(c.Request.Context(), sessionID, req.Category)
	if err != nil {
		respondWithMappedError(c, err, sessionErrorRules, response.CodeInternal, "error.session_unavailable")
		return
	}
	response.Success(c, state.View)
}

// ShowEvent 切换到活动视图
func (h *Handler) ShowEvent(c *gin.Context) {
	sessionID, ok := getSessionID(c)
	if !ok {
		return
	}
	var req ShowEventRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondError(c, response.CodeBadRequest, "error.bad_request", nil)
		return
	}
	state, err := h.CartService.ShowEvent(c.Request.Context(), sessionID, req.EventID)
	if err != nil {
		respondWithMappedError(c, err, concatMappedHandlerErrors(sessionErrorRules, catalogErrorRules), response.CodeInternal, "error.session_unavailable")
		return
	}
	response.Success(c, state.View)
}

// BackToHome 回到首页视图
func (h *Handler) BackToHome(c *gin.Context) {
	sessionID, ok := getSessionID(c)
	if !ok {
		return
	}
	state, err := h.CartService.BackToHome(c.Request.Context(), sessionID)
	if err != nil {
		respondWithMappedError(c, err, sessionErrorRules, response.CodeInternal, "error.session_unavailable")
		return
	}
	response.Success(c, state.View)
}

// SetSearch 设置搜索关键词（空字符串清空）
func (h *Handler) SetSearch(c *gin.Context) {
	sessionID, ok := getSessionID(c)
	if !ok {
		return
	}
	var req SetSearchRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondError(c, response.CodeBadRequest, "error.bad_request", nil)
		return
	}
	state, err := h.CartService.SetSearch(c.Request.Context(), sessionID, req.Query)
	if err != nil {
		respondWithMappedError(c, err, sessionErrorRules, response.CodeInternal, "error.session_unavailable")
		return
	}
	response.Success(c, state.View)
}

// GetVisibleProducts 当前视图下的商品
func (h *Handler) GetVisibleProducts(c *gin.Context) {
	sessionID, ok := getSessionID(c)
	if !ok {
		return
	}
	view, items, err := h.CartService.VisibleProducts(c.Request.Context(), sessionID)
	if err != nil {
		respondWithMappedError(c, err, sessionErrorRules, response.CodeInternal, "error.session_unavailable")
		return
	}
	response.Success(c, VisibleProductsResponse{View: view, Items: items, Total: len(items)})
}
