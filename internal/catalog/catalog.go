package catalog

import (
	"strings"
	"time"
)

// Catalog 内存中的只读商品目录
type Catalog struct {
	products   []Product
	categories map[string]Category
	index      map[string]int
	loadedAt   time.Time
}

// Snapshot 目录快照，用于缓存序列化
type Snapshot struct {
	Products   []Product           `json:"products"`
	Categories map[string]Category `json:"categories"`
	LoadedAt   time.Time           `json:"loaded_at"`
}

// NewCatalog 以给定商品（已排序）与分类构建目录
func NewCatalog(products []Product, categories map[string]Category) *Catalog {
	if products == nil {
		products = []Product{}
	}
	if categories == nil {
		categories = map[string]Category{}
	}
	index := make(map[string]int, len(products))
	for i, p := range products {
		index[p.ID] = i
	}
	return &Catalog{
		products:   products,
		categories: categories,
		index:      index,
		loadedAt:   time.Now(),
	}
}

// FromSnapshot 从快照恢复目录
func FromSnapshot(snapshot Snapshot) *Catalog {
	c := NewCatalog(snapshot.Products, snapshot.Categories)
	if !snapshot.LoadedAt.IsZero() {
		c.loadedAt = snapshot.LoadedAt
	}
	return c
}

// Snapshot 导出快照
func (c *Catalog) Snapshot() Snapshot {
	return Snapshot{
		Products:   c.Products(),
		Categories: c.categories,
		LoadedAt:   c.loadedAt,
	}
}

// Products 返回全部商品的副本
func (c *Catalog) Products() []Product {
	return append([]Product(nil), c.products...)
}

// Len 商品数量
func (c *Catalog) Len() int {
	return len(c.products)
}

// LoadedAt 加载时间
func (c *Catalog) LoadedAt() time.Time {
	return c.loadedAt
}

// Product 按 ID 查找商品
func (c *Catalog) Product(id string) (Product, bool) {
	idx, ok := c.index[strings.TrimSpace(id)]
	if !ok {
		return Product{}, false
	}
	return c.products[idx], true
}

// CategoryInfo 查找分类表信息（忽略大小写）
func (c *Catalog) CategoryInfo(name string) (Category, bool) {
	info, ok := c.categories[strings.ToLower(strings.TrimSpace(name))]
	return info, ok
}
