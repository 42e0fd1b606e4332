package provider

import (
	"github.com/senghong-shop/internal/cache"
	"github.com/senghong-shop/internal/catalog"
	"github.com/senghong-shop/internal/config"
	"github.com/senghong-shop/internal/logger"
	"github.com/senghong-shop/internal/models"
	"github.com/senghong-shop/internal/queue"
	"github.com/senghong-shop/internal/repository"
	"github.com/senghong-shop/internal/service"
)

// Container 依赖注入容器
type Container struct {
	Config      *config.Config
	QueueClient *queue.Client

	// Repositories
	SessionRepo     repository.SessionRepository
	MemorySessions  *repository.MemorySessionRepository // 仅在未启用 Redis 时非空，需要定期清理
	CheckoutLogRepo repository.CheckoutLogRepository   // 数据库未启用时为 nil

	// Sources
	CatalogSource catalog.SheetSource

	// Services
	CatalogService  *service.CatalogService
	CartService     *service.CartService
	CheckoutService *service.CheckoutService
}

// NewContainer 初始化容器
func NewContainer(cfg *config.Config) *Container {
	// 初始化缓存
	if err := cache.InitRedis(&cfg.Redis); err != nil {
		logger.Warnw("provider_init_redis_failed", "error", err)
	}

	// 初始化队列客户端
	var queueClient *queue.Client
	if cfg.Queue.Enabled {
		qc, err := queue.NewClient(&cfg.Queue)
		if err != nil {
			logger.Errorw("provider_init_queue_client_failed", "error", err)
		} else {
			queueClient = qc
		}
	}

	c := &Container{
		Config:      cfg,
		QueueClient: queueClient,
	}

	// 1. 初始化 Repositories
	c.initRepositories()

	// 2. 初始化 Services
	c.initServices()

	return c
}

func (c *Container) initRepositories() {
	ttl := c.Config.Session.TTL()
	if cache.Enabled() {
		c.SessionRepo = repository.NewRedisSessionRepository(ttl)
	} else {
		c.MemorySessions = repository.NewMemorySessionRepository(ttl)
		c.SessionRepo = c.MemorySessions
	}
	logger.Infow("provider_session_store", "redis", cache.Enabled(), "ttl", ttl.String())

	if models.DB != nil {
		c.CheckoutLogRepo = repository.NewCheckoutLogRepository(models.DB)
	} else {
		logger.Infow("provider_checkout_log_disabled", "reason", "database_disabled")
	}
}

func (c *Container) initServices() {
	cat := c.Config.Catalog
	c.CatalogSource = catalog.NewClient(cat.BaseURL, cat.SheetID, cat.Timeout())
	c.CatalogService = service.NewCatalogService(cat, c.CatalogSource)
	c.CartService = service.NewCartService(c.SessionRepo, c.CatalogService, c.Config.Session.DefaultCategory)
	c.CheckoutService = service.NewCheckoutService(c.Config.Checkout, c.CartService, c.CheckoutLogRepo, c.QueueClient)
}
