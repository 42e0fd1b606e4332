package service

import (
	"context"
	"errors"
	"sync/atomic"
	"testing"
	"time"

	"github.com/senghong-shop/internal/catalog"
	"github.com/senghong-shop/internal/config"
	"github.com/senghong-shop/internal/repository"
)

type stubSheetSource struct {
	tabs  map[string][]catalog.Row
	calls int32
}

func (s *stubSheetSource) FetchTab(_ context.Context, tab string) ([]catalog.Row, error) {
	atomic.AddInt32(&s.calls, 1)
	rows, ok := s.tabs[tab]
	if !ok {
		return nil, errors.New("tab missing")
	}
	return rows, nil
}

func testCatalogConfig() config.CatalogConfig {
	return config.CatalogConfig{
		SheetID:          "sheet-1",
		CategoriesTab:    "Categories",
		ProductTabs:      []string{"Sheet1", "Products"},
		PlaceholderImage: "/placeholder.png",
		Events: []config.EventConfig{
			{ID: "summer", Title: "Summer Sale", Description: "Hot deals", DiscountPercentage: 20, Active: true},
			{ID: "old", Title: "Old Sale", Active: false},
		},
	}
}

func testSheetSource() *stubSheetSource {
	return &stubSheetSource{tabs: map[string][]catalog.Row{
		"Categories": {
			{"Category": "clothes", "Category_KH": "សម្លៀកបំពាក់", "Display Order": "1"},
			{"Category": "coffee", "Display Order": "2"},
		},
		"Sheet1": {},
		"Products": {
			{"Name": "T-Shirt", "Category": "clothes", "Price": "$10", "Colors": "Red, Blue", "Sizes": "M, L", "Event": "summer"},
			{"Name": "Hoodie", "Category": "clothes", "Price": "25", "Discount": "20", "Colors": "Black", "Sizes": "L"},
			{"Name": "Latte", "Category": "coffee", "Price": "2.5", "Description": "Milk coffee"},
		},
	}}
}

func newLoadedCatalogService(t *testing.T) *CatalogService {
	t.Helper()
	svc := NewCatalogService(testCatalogConfig(), testSheetSource())
	if _, err := svc.Load(context.Background()); err != nil {
		t.Fatalf("load catalog failed: %v", err)
	}
	return svc
}

func newTestCartService(t *testing.T) *CartService {
	t.Helper()
	svc := NewCartService(repository.NewMemorySessionRepository(time.Hour), newLoadedCatalogService(t), "clothes")
	svc.now = func() time.Time { return time.Date(2025, 3, 1, 9, 30, 0, 0, time.UTC) }
	return svc
}
