package catalog

import (
	"context"
	"errors"
	"sort"

	"github.com/senghong-shop/internal/logger"

	"golang.org/x/sync/errgroup"
)

// ErrNoProductData 所有商品工作表均无数据
var ErrNoProductData = errors.New("no product data in any sheet tab")

// LoadOptions 加载参数
type LoadOptions struct {
	CategoriesTab    string
	ProductTabs      []string
	PlaceholderImage string
}

// Load 并发读取分类表与候选商品表，取第一个非空商品表构建目录。
// 单个工作表失败只记录日志并视为无数据。
func Load(ctx context.Context, source SheetSource, opts LoadOptions) (*Catalog, error) {
	var categoryRows []Row
	productRows := make([][]Row, len(opts.ProductTabs))

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(4)
	if opts.CategoriesTab != "" {
		g.Go(func() error {
			categoryRows = fetchOrWarn(gctx, source, opts.CategoriesTab)
			return nil
		})
	}
	for idx, tab := range opts.ProductTabs {
		g.Go(func() error {
			productRows[idx] = fetchOrWarn(gctx, source, tab)
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return NewCatalog(nil, nil), err
	}
	if err := ctx.Err(); err != nil {
		return NewCatalog(nil, nil), err
	}

	categories := NormalizeCategories(categoryRows)
	for idx, rows := range productRows {
		if len(rows) == 0 {
			continue
		}
		products := make([]Product, 0, len(rows))
		for rowIndex, row := range rows {
			products = append(products, NormalizeProduct(row, rowIndex, categories, opts.PlaceholderImage))
		}
		sort.SliceStable(products, func(i, j int) bool {
			return products[i].DisplayOrder < products[j].DisplayOrder
		})
		logger.Infow("catalog_loaded",
			"tab", opts.ProductTabs[idx],
			"products", len(products),
			"categories", len(categories),
		)
		return NewCatalog(products, categories), nil
	}
	return NewCatalog(nil, categories), ErrNoProductData
}

func fetchOrWarn(ctx context.Context, source SheetSource, tab string) []Row {
	rows, err := source.FetchTab(ctx, tab)
	if err != nil {
		logger.Warnw("catalog_tab_fetch_failed", "tab", tab, "error", err)
		return nil
	}
	if len(rows) == 0 {
		logger.Infow("catalog_tab_empty", "tab", tab)
	}
	return rows
}
