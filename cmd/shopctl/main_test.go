package main

import (
	"bytes"
	"strings"
	"testing"
	"time"

	"github.com/senghong-shop/internal/catalog"
	"github.com/senghong-shop/internal/config"
	"github.com/senghong-shop/internal/models"
	"github.com/senghong-shop/internal/repository"

	"github.com/spf13/cobra"
)

func newTestCommand(in string) (*cobra.Command, *bytes.Buffer) {
	out := &bytes.Buffer{}
	cmd := &cobra.Command{}
	cmd.SetOut(out)
	cmd.SetIn(strings.NewReader(in))
	return cmd, out
}

func TestRunLinkUsesConfiguredHandle(t *testing.T) {
	cfg = &config.Config{Checkout: config.CheckoutConfig{ChatBaseURL: "https://t.me", ChatHandle: "@shop"}}
	linkHandle = ""
	cmd, out := newTestCommand("")

	if err := runLink(cmd, []string{"Hi there"}); err != nil {
		t.Fatalf("run link failed: %v", err)
	}
	if got := strings.TrimSpace(out.String()); got != "https://t.me/shop?text=Hi%20there" {
		t.Fatalf("unexpected link: %s", got)
	}
}

func TestRunLinkReadsStdinAndOverridesHandle(t *testing.T) {
	cfg = &config.Config{Checkout: config.CheckoutConfig{ChatHandle: "shop"}}
	linkHandle = "other"
	defer func() { linkHandle = "" }()
	cmd, out := newTestCommand("a&b\n")

	if err := runLink(cmd, nil); err != nil {
		t.Fatalf("run link failed: %v", err)
	}
	if got := strings.TrimSpace(out.String()); got != "https://t.me/other?text=a%26b" {
		t.Fatalf("unexpected link: %s", got)
	}
}

func TestPrintProducts(t *testing.T) {
	cmd, out := newTestCommand("")
	products := []catalog.Product{{
		ID:         "1",
		Name:       "T-Shirt",
		Category:   "Clothes",
		Price:      models.NewMoneyFromFloat(10),
		Discount:   20,
		FinalPrice: models.NewMoneyFromFloat(8),
		Colors:     []string{"Red", "Blue"},
		Sizes:      []string{"M"},
	}}

	if err := printProducts(cmd, products); err != nil {
		t.Fatalf("print products failed: %v", err)
	}
	text := out.String()
	for _, want := range []string{"T-Shirt", "10.00", "8.00", "20%", "Red,Blue", "1 products"} {
		if !strings.Contains(text, want) {
			t.Fatalf("output missing %q:\n%s", want, text)
		}
	}
}

func TestRunHandoffsRequiresDatabase(t *testing.T) {
	cfg = &config.Config{}
	cmd, _ := newTestCommand("")
	if err := runHandoffs(cmd, nil); err == nil {
		t.Fatalf("expected error when database disabled")
	}
}

type recordingLogRepo struct {
	filter repository.CheckoutLogListFilter
	items  []models.CheckoutLog
}

func (r *recordingLogRepo) Create(*models.CheckoutLog) error { return nil }

func (r *recordingLogRepo) GetByID(string) (*models.CheckoutLog, error) { return nil, nil }

func (r *recordingLogRepo) List(filter repository.CheckoutLogListFilter) ([]models.CheckoutLog, int64, error) {
	r.filter = filter
	return r.items, int64(len(r.items)), nil
}

func TestListHandoffsAppliesTimeRange(t *testing.T) {
	handoffsLimit, handoffsSince, handoffsUntil = 5, "2025-03-01", "2025-03-07T12:00:00Z"
	defer func() { handoffsLimit, handoffsSince, handoffsUntil = 20, "", "" }()
	repo := &recordingLogRepo{items: []models.CheckoutLog{{
		ID:           "h-1",
		SessionID:    "s1",
		DeliveryMode: "pickup",
		TotalItems:   2,
		TotalPrice:   models.NewMoneyFromFloat(20),
		Currency:     "USD",
		CreatedAt:    time.Date(2025, time.March, 2, 8, 0, 0, 0, time.UTC),
	}}}
	cmd, out := newTestCommand("")

	if err := listHandoffs(cmd, repo); err != nil {
		t.Fatalf("list handoffs failed: %v", err)
	}
	if repo.filter.PageSize != 5 || repo.filter.CreatedFrom == nil || repo.filter.CreatedTo == nil {
		t.Fatalf("unexpected filter: %+v", repo.filter)
	}
	if !repo.filter.CreatedFrom.Equal(time.Date(2025, time.March, 1, 0, 0, 0, 0, time.UTC)) {
		t.Fatalf("unexpected since: %v", repo.filter.CreatedFrom)
	}
	if !repo.filter.CreatedTo.Equal(time.Date(2025, time.March, 7, 12, 0, 0, 0, time.UTC)) {
		t.Fatalf("unexpected until: %v", repo.filter.CreatedTo)
	}
	if !strings.Contains(out.String(), "h-1") || !strings.Contains(out.String(), "20.00 USD") {
		t.Fatalf("unexpected output:\n%s", out.String())
	}
}

func TestListHandoffsRejectsBadTime(t *testing.T) {
	handoffsSince = "yesterday"
	defer func() { handoffsSince = "" }()
	cmd, _ := newTestCommand("")
	if err := listHandoffs(cmd, &recordingLogRepo{}); err == nil {
		t.Fatalf("expected invalid --since to fail")
	}
}
