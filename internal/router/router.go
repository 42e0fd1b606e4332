package router

import (
	"fmt"
	"strings"

	"github.com/senghong-shop/internal/cache"
	"github.com/senghong-shop/internal/config"
	"github.com/senghong-shop/internal/constants"
	publichandlers "github.com/senghong-shop/internal/http/handlers/public"
	"github.com/senghong-shop/internal/http/response"
	"github.com/senghong-shop/internal/logger"
	"github.com/senghong-shop/internal/provider"

	"github.com/gin-gonic/gin"
)

// SetupRouter 初始化路由
func SetupRouter(cfg *config.Config, c *provider.Container) *gin.Engine {
	log := logger.L
	if log == nil {
		log = logger.Init(cfg.Server.Mode, cfg.Log.ToLoggerOptions())
	}
	r := gin.New()

	publicHandler := publichandlers.New(c)
	redisPrefix := strings.TrimSpace(cfg.Redis.Prefix)
	if redisPrefix == "" {
		redisPrefix = constants.RedisPrefixDefault
	}
	checkoutHandlers := make([]gin.HandlerFunc, 0, 3)
	for _, limit := range checkoutRateLimits(cfg.Security, redisPrefix) {
		checkoutHandlers = append(checkoutHandlers, RateLimitMiddleware(cache.Client(), limit.rule, limit.keyFunc))
	}
	checkoutHandlers = append(checkoutHandlers, publicHandler.Checkout)

	// 中间件
	r.Use(gin.Recovery())
	r.Use(RequestIDMiddleware())
	r.Use(SessionMiddleware())
	r.Use(LoggerMiddleware(log))
	r.Use(CORSMiddleware(cfg.CORS))

	// API 路由组
	apiV1 := r.Group("/api/v1")
	{
		// 公开接口
		public := apiV1.Group("/public")
		{
			public.GET("/config", publicHandler.GetConfig)
			public.GET("/products", publicHandler.GetProducts)
			public.GET("/products/:id", publicHandler.GetProduct)
			public.GET("/categories", publicHandler.GetCategories)
			public.GET("/events", publicHandler.GetEvents)
			public.GET("/home", publicHandler.GetHome)
		}

		// 访客会话与浏览视图
		sess := apiV1.Group("/session")
		{
			sess.GET("", publicHandler.GetSession)
			sess.POST("/view/category", publicHandler.ShowCategory)
			sess.POST("/view/event", publicHandler.ShowEvent)
			sess.POST("/view/home", publicHandler.BackToHome)
			sess.PUT("/view/search", publicHandler.SetSearch)
			sess.GET("/view/products", publicHandler.GetVisibleProducts)
		}

		// 购物车
		cartGroup := apiV1.Group("/cart")
		{
			cartGroup.GET("", publicHandler.GetCart)
			cartGroup.DELETE("", publicHandler.ClearCart)
			cartGroup.POST("/items", publicHandler.AddCartItem)
			cartGroup.PUT("/items/:product_id/options", publicHandler.UpdateCartOption)
			cartGroup.DELETE("/items/:product_id/options", publicHandler.RemoveCartOption)
			cartGroup.DELETE("/items/:product_id", publicHandler.RemoveCartItem)
		}

		// 结账跳转
		checkoutGroup := apiV1.Group("/checkout")
		{
			checkoutGroup.POST("/preview", publicHandler.PreviewCheckout)
			checkoutGroup.POST("", checkoutHandlers...)
			checkoutGroup.GET("/history", publicHandler.ListCheckoutHistory)
			checkoutGroup.GET("/history/:id", publicHandler.GetCheckoutHandoff)
		}
	}

	// 健康检查
	r.GET("/health", func(ctx *gin.Context) {
		response.Success(ctx, gin.H{
			"status":        "ok",
			"catalog_ready": c.CatalogService.Ready(),
			"products":      c.CatalogService.Catalog().Len(),
		})
	})

	return r
}

type scopedRateLimit struct {
	rule    RateLimitRule
	keyFunc RateLimitKeyFunc
}

// checkoutRateLimits 结账限流：按会话 + IP 限制单个购物车，按 IP 限制轮换会话的客户端
func checkoutRateLimits(cfg config.SecurityConfig, redisPrefix string) []scopedRateLimit {
	return []scopedRateLimit{
		{
			rule: RateLimitRule{
				Prefix:        fmt.Sprintf("%s:rate:checkout", redisPrefix),
				WindowSeconds: cfg.CheckoutRateLimit.WindowSeconds,
				MaxRequests:   cfg.CheckoutRateLimit.MaxRequests,
				MessageKey:    "checkout.rate_limited_seconds",
			},
			keyFunc: KeyBySession,
		},
		{
			rule: RateLimitRule{
				Prefix:        fmt.Sprintf("%s:rate:checkout_ip", redisPrefix),
				WindowSeconds: cfg.CheckoutIPRateLimit.WindowSeconds,
				MaxRequests:   cfg.CheckoutIPRateLimit.MaxRequests,
				MessageKey:    "checkout.rate_limited_seconds",
			},
			keyFunc: KeyByIP,
		},
	}
}
