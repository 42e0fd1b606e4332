package checkout

import (
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/senghong-shop/internal/cart"
	"github.com/senghong-shop/internal/models"
)

var fixedNow = time.Date(2025, time.March, 7, 9, 5, 3, 0, time.UTC)

func sampleItems() []cart.Item {
	return []cart.Item{
		{
			ProductID: "1",
			Name:      "Red Shirt",
			Price:     models.NewMoneyFromFloat(10),
			Options: []cart.Option{
				{Color: "Red", Size: "M", Quantity: 2},
				{Color: "Red", Size: "L", Quantity: 1},
			},
		},
		{
			ProductID: "2",
			Name:      "Cap",
			Price:     models.NewMoneyFromFloat(5),
			Options:   []cart.Option{{Color: "Black", Size: "One", Quantity: 1}},
		},
	}
}

func TestFormatMessageEmptyCart(t *testing.T) {
	got := FormatMessage(nil, ModeDelivery, "", fixedNow, time.UTC)
	want := "Order Time: 07/03/2025, 09:05:03\n\nThank you!"
	if got != want {
		t.Fatalf("unexpected empty message:\n%q\nwant\n%q", got, want)
	}
}

func TestFormatMessageDelivery(t *testing.T) {
	got := FormatMessage(sampleItems(), ModeDelivery, " Tomorrow 10am ", fixedNow, time.UTC)
	want := "Order Time: 07/03/2025, 09:05:03\n\n" +
		"Item 1: Red Shirt\n   Amount: 2\n   Size: M\n   Color: Red\n\n" +
		"Item 2: Red Shirt\n   Amount: 1\n   Size: L\n   Color: Red\n\n" +
		"Item 2: Cap\n   Amount: 1\n   Size: One\n   Color: Black\n\n" +
		"Preferred Delivery Time: Tomorrow 10am\n\n" +
		"Thank you!"
	if got != want {
		t.Fatalf("unexpected delivery message:\n%q\nwant\n%q", got, want)
	}
}

func TestFormatMessagePickupIgnoresDeliveryTime(t *testing.T) {
	got := FormatMessage(sampleItems(), ModePickup, "Tomorrow 10am", fixedNow, time.UTC)
	if !strings.Contains(got, "Pickup Option Selected\n\n") {
		t.Fatalf("pickup notice missing: %q", got)
	}
	if strings.Contains(got, "Preferred Delivery Time") {
		t.Fatalf("pickup message should not contain delivery time: %q", got)
	}
	if !strings.HasSuffix(got, "Thank you!") {
		t.Fatalf("message should end with thank you: %q", got)
	}
}

func TestFormatMessageDeliveryWithoutTimeOmitsLine(t *testing.T) {
	got := FormatMessage(sampleItems(), ModeDelivery, "   ", fixedNow, time.UTC)
	if strings.Contains(got, "Preferred Delivery Time") || strings.Contains(got, "Pickup") {
		t.Fatalf("blank delivery time should add no mode line: %q", got)
	}
}

func TestFormatMessageKeepsDeliveryTimeAsGiven(t *testing.T) {
	got := FormatMessage(sampleItems(), ModeDelivery, " after 5pm ", fixedNow, time.UTC)
	if !strings.Contains(got, "Preferred Delivery Time:  after 5pm \n\n") {
		t.Fatalf("delivery time should be written unchanged: %q", got)
	}
}

func TestFormatMessageUsesLocation(t *testing.T) {
	loc := time.FixedZone("ICT", 7*3600)
	got := FormatMessage(nil, ModePickup, "", fixedNow, loc)
	if !strings.HasPrefix(got, "Order Time: 07/03/2025, 16:05:03\n\n") {
		t.Fatalf("order time should be rendered in location: %q", got)
	}
}

func TestValidate(t *testing.T) {
	if err := Validate(ModeDelivery, ""); !errors.Is(err, ErrDeliveryTimeRequired) {
		t.Fatalf("expected ErrDeliveryTimeRequired, got %v", err)
	}
	if err := Validate(ModeDelivery, "  "); !errors.Is(err, ErrDeliveryTimeRequired) {
		t.Fatalf("expected ErrDeliveryTimeRequired for blank, got %v", err)
	}
	if err := Validate(ModeDelivery, "6pm"); err != nil {
		t.Fatalf("delivery with time should pass: %v", err)
	}
	if err := Validate(ModePickup, ""); err != nil {
		t.Fatalf("pickup should pass without time: %v", err)
	}
	if err := Validate("drone", "6pm"); !errors.Is(err, ErrDeliveryModeInvalid) {
		t.Fatalf("expected ErrDeliveryModeInvalid, got %v", err)
	}
}

func TestParseDeliveryMode(t *testing.T) {
	cases := map[string]DeliveryMode{
		"":         ModeDelivery,
		"delivery": ModeDelivery,
		" PICKUP ": ModePickup,
	}
	for raw, want := range cases {
		got, err := ParseDeliveryMode(raw)
		if err != nil || got != want {
			t.Fatalf("ParseDeliveryMode(%q) = %q, %v", raw, got, err)
		}
	}
	if _, err := ParseDeliveryMode("courier"); !errors.Is(err, ErrDeliveryModeInvalid) {
		t.Fatalf("expected ErrDeliveryModeInvalid, got %v", err)
	}
}
