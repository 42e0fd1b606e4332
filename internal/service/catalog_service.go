package service

import (
	"context"
	"errors"
	"strings"
	"sync"
	"time"

	"github.com/senghong-shop/internal/cache"
	"github.com/senghong-shop/internal/catalog"
	"github.com/senghong-shop/internal/config"
	"github.com/senghong-shop/internal/constants"
	"github.com/senghong-shop/internal/logger"

	"golang.org/x/sync/singleflight"
)

const catalogLoadKey = "catalog_load"

// CategorySummary 分类概要
type CategorySummary struct {
	Name          string `json:"name"`
	NameKH        string `json:"name_kh"`
	Description   string `json:"description"`
	DescriptionKH string `json:"description_kh"`
	DisplayOrder  int    `json:"display_order"`
	ProductCount  int    `json:"product_count"`
}

// EventSection 首页活动分区
type EventSection struct {
	Event    catalog.Event     `json:"event"`
	Products []catalog.Product `json:"products"`
}

// CategorySection 首页分类分区
type CategorySection struct {
	Category CategorySummary   `json:"category"`
	Products []catalog.Product `json:"products"`
}

// HomeSections 首页数据
type HomeSections struct {
	Events     []EventSection    `json:"events"`
	Categories []CategorySection `json:"categories"`
}

// CatalogService 商品目录服务：启动时加载一次，之后只读
type CatalogService struct {
	cfg    config.CatalogConfig
	source catalog.SheetSource
	events []catalog.Event
	now    func() time.Time

	group    singleflight.Group
	warmOnce sync.Once

	mu      sync.RWMutex
	current *catalog.Catalog
	loaded  bool
}

// NewCatalogService 创建商品目录服务
func NewCatalogService(cfg config.CatalogConfig, source catalog.SheetSource) *CatalogService {
	return &CatalogService{
		cfg:     cfg,
		source:  source,
		events:  catalog.EventsFromConfig(cfg.Events),
		now:     time.Now,
		current: catalog.NewCatalog(nil, nil),
	}
}

// Warmup 后台触发一次加载，不阻塞调用方，失败不重试
func (s *CatalogService) Warmup(ctx context.Context) {
	s.warmOnce.Do(func() {
		go func() {
			if _, err := s.Load(ctx); err != nil {
				logger.Errorw("catalog_warmup_failed", "error", err)
			}
		}()
	})
}

// Load 加载商品目录；并发调用合并为一次。失败时目录保持为空。
func (s *CatalogService) Load(ctx context.Context) (*catalog.Catalog, error) {
	result, err, _ := s.group.Do(catalogLoadKey, func() (interface{}, error) {
		return s.load(ctx)
	})
	c, _ := result.(*catalog.Catalog)
	if c == nil {
		c = catalog.NewCatalog(nil, nil)
	}
	return c, err
}

func (s *CatalogService) load(ctx context.Context) (*catalog.Catalog, error) {
	cacheKey := cache.CatalogSnapshotKey(s.cfg.SheetID)
	var snapshot catalog.Snapshot
	found, err := cache.GetJSON(ctx, cacheKey, &snapshot)
	if err != nil {
		logger.Warnw("catalog_snapshot_read_failed", "error", err)
	}
	if found && len(snapshot.Products) > 0 {
		c := catalog.FromSnapshot(snapshot)
		s.store(c)
		logger.Infow("catalog_loaded_from_cache", "products", c.Len())
		return c, nil
	}

	if s.source == nil {
		s.store(catalog.NewCatalog(nil, nil))
		return nil, ErrCatalogUnavailable
	}

	c, err := catalog.Load(ctx, s.source, catalog.LoadOptions{
		CategoriesTab:    s.cfg.CategoriesTab,
		ProductTabs:      s.cfg.ProductTabs,
		PlaceholderImage: s.cfg.PlaceholderImage,
	})
	if err != nil {
		s.store(catalog.NewCatalog(nil, nil))
		return c, err
	}
	s.store(c)

	if ttl := time.Duration(s.cfg.CacheTTLSeconds) * time.Second; ttl > 0 {
		if err := cache.SetJSON(ctx, cacheKey, c.Snapshot(), ttl); err != nil {
			logger.Warnw("catalog_snapshot_write_failed", "error", err)
		}
	}
	return c, nil
}

func (s *CatalogService) store(c *catalog.Catalog) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.current = c
	s.loaded = true
}

// Ready 是否已完成首次加载（无论成功与否）
func (s *CatalogService) Ready() bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.loaded
}

// Catalog 当前目录
func (s *CatalogService) Catalog() *catalog.Catalog {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.current
}

// ListProducts 按条件筛选商品
func (s *CatalogService) ListProducts(filter catalog.Filter) []catalog.Product {
	return filter.Apply(s.Catalog().Products())
}

// GetProduct 按 ID 获取商品
func (s *CatalogService) GetProduct(id string) (catalog.Product, error) {
	p, ok := s.Catalog().Product(id)
	if !ok {
		if !s.Ready() {
			return catalog.Product{}, ErrCatalogUnavailable
		}
		return catalog.Product{}, ErrProductNotFound
	}
	return p, nil
}

// Categories 返回分类概要（按商品中首次出现顺序）
func (s *CatalogService) Categories() []CategorySummary {
	c := s.Catalog()
	products := c.Products()
	counts := make(map[string]int)
	for _, p := range products {
		counts[p.Category]++
	}
	names := catalog.Categories(products)
	result := make([]CategorySummary, 0, len(names))
	for _, name := range names {
		summary := CategorySummary{
			Name:         name,
			NameKH:       name,
			DisplayOrder: constants.CategoryDisplayOrderLast,
			ProductCount: counts[name],
		}
		if info, ok := c.CategoryInfo(name); ok {
			summary.NameKH = info.NameKH
			summary.Description = info.Description
			summary.DescriptionKH = info.DescriptionKH
			if info.DisplayOrder != 0 {
				summary.DisplayOrder = info.DisplayOrder
			}
		}
		result = append(result, summary)
	}
	return result
}

// Events 全部配置的活动
func (s *CatalogService) Events() []catalog.Event {
	return append([]catalog.Event(nil), s.events...)
}

// ActiveEvents 当前生效的活动
func (s *CatalogService) ActiveEvents() []catalog.Event {
	return catalog.ActiveEvents(s.events, s.now())
}

// GetEvent 按 ID 获取活动
func (s *CatalogService) GetEvent(id string) (catalog.Event, error) {
	event, ok := catalog.FindEvent(s.events, id)
	if !ok {
		return catalog.Event{}, ErrEventNotFound
	}
	return event, nil
}

// Home 首页分区：生效活动与前若干分类，各取前若干商品，空分区省略
func (s *CatalogService) Home() HomeSections {
	products := s.Catalog().Products()
	home := HomeSections{
		Events:     make([]EventSection, 0),
		Categories: make([]CategorySection, 0),
	}
	for _, event := range s.ActiveEvents() {
		items := catalog.Limit(catalog.ByEvent(products, event.ID), constants.HomeSectionProductLimit)
		if len(items) == 0 {
			continue
		}
		home.Events = append(home.Events, EventSection{Event: event, Products: items})
	}

	categories := s.Categories()
	if len(categories) > constants.HomeSectionCategoryLimit {
		categories = categories[:constants.HomeSectionCategoryLimit]
	}
	for _, category := range categories {
		items := make([]catalog.Product, 0, constants.HomeSectionProductLimit)
		for _, p := range products {
			if p.Category != category.Name {
				continue
			}
			items = append(items, p)
			if len(items) == constants.HomeSectionProductLimit {
				break
			}
		}
		if len(items) == 0 {
			continue
		}
		home.Categories = append(home.Categories, CategorySection{Category: category, Products: items})
	}
	return home
}

// IsNotFound 判断目录查询错误是否为未找到
func IsNotFound(err error) bool {
	return errors.Is(err, ErrProductNotFound) || errors.Is(err, ErrEventNotFound)
}

func normalizeID(raw string) string {
	return strings.TrimSpace(raw)
}
