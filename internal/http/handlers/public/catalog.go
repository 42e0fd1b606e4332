package public

import (
	"strconv"
	"strings"

	"github.com/senghong-shop/internal/catalog"
	"github.com/senghong-shop/internal/constants"
	"github.com/senghong-shop/internal/http/response"

	"github.com/gin-gonic/gin"
)

// ProductListResponse 商品列表响应
type ProductListResponse struct {
	Items []catalog.Product `json:"items"`
	Total int               `json:"total"`
	Ready bool              `json:"ready"`
}

// GetConfig 获取店铺公开配置
func (h *Handler) GetConfig(c *gin.Context) {
	checkoutCfg := h.Config.Checkout
	currency := strings.TrimSpace(checkoutCfg.Currency)
	if currency == "" {
		currency = constants.SiteCurrencyDefault
	}
	response.Success(c, gin.H{
		"store_name":       checkoutCfg.StoreName,
		"chat_handle":      strings.TrimPrefix(strings.TrimSpace(checkoutCfg.ChatHandle), "@"),
		"currency":         currency,
		"delivery_modes":   constants.DeliveryModes,
		"default_category": h.Config.Session.DefaultCategory,
		"languages":        constants.SupportedLocales,
		"catalog_ready":    h.CatalogService.Ready(),
	})
}

// GetProducts 获取商品列表（按分类 / 活动 / 关键词筛选）
func (h *Handler) GetProducts(c *gin.Context) {
	limit, _ := strconv.Atoi(c.DefaultQuery("limit", "0"))
	filter := catalog.Filter{
		Category: c.Query("category"),
		EventID:  c.Query("event"),
		Search:   c.Query("search"),
		Limit:    limit,
	}
	if filter.EventID != "" {
		if _, err := h.CatalogService.GetEvent(filter.EventID); err != nil {
			respondWithMappedError(c, err, catalogErrorRules, response.CodeInternal, "error.internal")
			return
		}
	}
	items := h.CatalogService.ListProducts(filter)
	response.Success(c, ProductListResponse{
		Items: items,
		Total: len(items),
		Ready: h.CatalogService.Ready(),
	})
}

// GetProduct 获取商品详情
func (h *Handler) GetProduct(c *gin.Context) {
	product, err := h.CatalogService.GetProduct(c.Param("id"))
	if err != nil {
		respondWithMappedError(c, err, catalogErrorRules, response.CodeInternal, "error.internal")
		return
	}
	response.Success(c, product)
}

// GetCategories 获取分类列表
func (h *Handler) GetCategories(c *gin.Context) {
	response.Success(c, h.CatalogService.Categories())
}

// GetEvents 获取当前生效的活动
func (h *Handler) GetEvents(c *gin.Context) {
	response.Success(c, h.CatalogService.ActiveEvents())
}

// GetHome 获取首页分区
func (h *Handler) GetHome(c *gin.Context) {
	response.Success(c, h.CatalogService.Home())
}
