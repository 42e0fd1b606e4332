package service

import (
	"context"
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/senghong-shop/internal/cart"
	"github.com/senghong-shop/internal/checkout"
	"github.com/senghong-shop/internal/config"
	"github.com/senghong-shop/internal/models"
	"github.com/senghong-shop/internal/queue"
	"github.com/senghong-shop/internal/repository"

	"github.com/glebarez/sqlite"
	"gorm.io/gorm"
)

func setupCheckoutServiceTest(t *testing.T) (*CheckoutService, *CartService, *repository.GormCheckoutLogRepository) {
	t.Helper()
	dsn := "file:" + strings.ReplaceAll(t.Name(), "/", "_") + "?mode=memory&cache=shared"
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{})
	if err != nil {
		t.Fatalf("open sqlite failed: %v", err)
	}
	if err := db.AutoMigrate(&models.CheckoutLog{}); err != nil {
		t.Fatalf("migrate checkout log failed: %v", err)
	}
	logs := repository.NewCheckoutLogRepository(db)

	queueClient, err := queue.NewClient(nil)
	if err != nil {
		t.Fatalf("new queue client failed: %v", err)
	}
	carts := newTestCartService(t)
	svc := NewCheckoutService(config.CheckoutConfig{
		ChatBaseURL: "https://t.me",
		ChatHandle:  "@shop",
		Currency:    "USD",
	}, carts, logs, queueClient)
	svc.now = func() time.Time { return time.Date(2025, time.March, 7, 9, 5, 3, 0, time.UTC) }
	return svc, carts, logs
}

func TestCheckoutServiceRejectsMissingDeliveryTime(t *testing.T) {
	svc, carts, _ := setupCheckoutServiceTest(t)
	ctx := context.Background()
	if _, err := carts.AddItem(ctx, "s1", AddItemInput{ProductID: "3", Options: []cart.Option{{Quantity: 1}}}); err != nil {
		t.Fatalf("add item failed: %v", err)
	}
	_, err := svc.Checkout(ctx, CheckoutInput{SessionID: "s1", DeliveryMode: "delivery", DeliveryTime: "   "})
	if !errors.Is(err, checkout.ErrDeliveryTimeRequired) {
		t.Fatalf("expected ErrDeliveryTimeRequired, got %v", err)
	}
	_, err = svc.Checkout(ctx, CheckoutInput{SessionID: "s1", DeliveryMode: "drone"})
	if !errors.Is(err, checkout.ErrDeliveryModeInvalid) {
		t.Fatalf("expected ErrDeliveryModeInvalid, got %v", err)
	}
}

func TestCheckoutServiceRejectsEmptyCart(t *testing.T) {
	svc, _, _ := setupCheckoutServiceTest(t)
	_, err := svc.Checkout(context.Background(), CheckoutInput{SessionID: "s1", DeliveryMode: "pickup"})
	if !errors.Is(err, ErrCartEmpty) {
		t.Fatalf("expected ErrCartEmpty, got %v", err)
	}
}

func TestCheckoutServiceCreatesHandoff(t *testing.T) {
	svc, carts, logs := setupCheckoutServiceTest(t)
	ctx := context.Background()
	_, err := carts.AddItem(ctx, "s1", AddItemInput{
		ProductID: "1",
		Options:   []cart.Option{{Color: "red", Size: "m", Quantity: 2}},
	})
	if err != nil {
		t.Fatalf("add item failed: %v", err)
	}

	result, err := svc.Checkout(ctx, CheckoutInput{
		SessionID:    "s1",
		RequestID:    "req-1",
		DeliveryMode: "delivery",
		DeliveryTime: "6pm",
	})
	if err != nil {
		t.Fatalf("checkout failed: %v", err)
	}
	wantMessage := "Order Time: 07/03/2025, 09:05:03\n\n" +
		"Item 1: T-Shirt\n   Amount: 2\n   Size: M\n   Color: Red\n\n" +
		"Preferred Delivery Time: 6pm\n\n" +
		"Thank you!"
	if result.Message != wantMessage {
		t.Fatalf("unexpected message:\n%q\nwant\n%q", result.Message, wantMessage)
	}
	if !strings.HasPrefix(result.URL, "https://t.me/shop?text=Order%20Time%3A%2007%2F03%2F2025") {
		t.Fatalf("unexpected url: %s", result.URL)
	}
	if result.Summary.TotalItems != 2 || result.Summary.TotalPrice.String() != "20.00" {
		t.Fatalf("unexpected summary: %+v", result.Summary)
	}
	if result.HandoffID == "" {
		t.Fatalf("expected handoff id")
	}

	stored, err := logs.GetByID(result.HandoffID)
	if err != nil {
		t.Fatalf("get handoff failed: %v", err)
	}
	if stored == nil || stored.SessionID != "s1" || stored.RequestID != "req-1" || stored.URL != result.URL {
		t.Fatalf("unexpected stored handoff: %+v", stored)
	}

	state, err := carts.GetCart(ctx, "s1")
	if err != nil {
		t.Fatalf("get cart failed: %v", err)
	}
	if state.TotalItems != 2 {
		t.Fatalf("expected cart kept after checkout, got %d", state.TotalItems)
	}

	items, total, err := svc.ListHandoffs(repository.CheckoutLogListFilter{SessionID: "s1", Page: 1, PageSize: 10})
	if err != nil {
		t.Fatalf("list handoffs failed: %v", err)
	}
	if total != 1 || len(items) != 1 {
		t.Fatalf("expected one handoff, got %d/%d", len(items), total)
	}
	got, err := svc.GetHandoff("s1", result.HandoffID)
	if err != nil || got.ID != result.HandoffID {
		t.Fatalf("get own handoff failed: %+v %v", got, err)
	}
	if _, err := svc.GetHandoff("s2", result.HandoffID); !errors.Is(err, ErrNotFound) {
		t.Fatalf("other session should not see handoff, got %v", err)
	}
	if _, err := svc.GetHandoff("s1", "missing"); !errors.Is(err, ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
}

func TestCheckoutServicePreviewSkipsDeliveryTime(t *testing.T) {
	svc, carts, logs := setupCheckoutServiceTest(t)
	ctx := context.Background()
	if _, err := carts.AddItem(ctx, "s1", AddItemInput{ProductID: "3", Options: []cart.Option{{Quantity: 1}}}); err != nil {
		t.Fatalf("add item failed: %v", err)
	}
	result, err := svc.Preview(ctx, CheckoutInput{SessionID: "s1"})
	if err != nil {
		t.Fatalf("preview failed: %v", err)
	}
	if result.HandoffID != "" || result.DeliveryMode != checkout.ModeDelivery {
		t.Fatalf("unexpected preview: %+v", result)
	}
	if strings.Contains(result.Message, "Preferred Delivery Time") {
		t.Fatalf("blank delivery time must not be rendered: %q", result.Message)
	}
	_, total, err := logs.List(repository.CheckoutLogListFilter{Page: 1, PageSize: 10})
	if err != nil {
		t.Fatalf("list failed: %v", err)
	}
	if total != 0 {
		t.Fatalf("preview must not record handoffs, got %d", total)
	}
}

func TestCheckoutServiceWithoutStore(t *testing.T) {
	carts := newTestCartService(t)
	svc := NewCheckoutService(config.CheckoutConfig{ChatHandle: "shop"}, carts, nil, nil)
	ctx := context.Background()
	if _, err := carts.AddItem(ctx, "s1", AddItemInput{ProductID: "3", Options: []cart.Option{{Quantity: 1}}}); err != nil {
		t.Fatalf("add item failed: %v", err)
	}
	result, err := svc.Checkout(ctx, CheckoutInput{SessionID: "s1", DeliveryMode: "pickup"})
	if err != nil {
		t.Fatalf("checkout without store failed: %v", err)
	}
	if result.Currency != "USD" {
		t.Fatalf("expected default currency, got %q", result.Currency)
	}
	if _, _, err := svc.ListHandoffs(repository.CheckoutLogListFilter{}); !errors.Is(err, ErrHandoffStoreMissing) {
		t.Fatalf("expected ErrHandoffStoreMissing, got %v", err)
	}
}
