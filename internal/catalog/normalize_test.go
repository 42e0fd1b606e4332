package catalog

import (
	"testing"
)

func TestNormalizeProductResolvesSynonyms(t *testing.T) {
	categories := NormalizeCategories([]Row{
		{"Category": "Clothes", "Category_KH": "សម្លៀកបំពាក់", "Display Order": "2", "Description_KH": "ខោអាវ"},
	})
	row := Row{
		"Product Name": "Red Shirt",
		"Photo":        "/img/red.png",
		"Cost":         "$12.50",
		"Type":         "clothes",
		"Desc":         "Cotton shirt",
		"Discount %":   "20",
		"Colors":       "Red, Blue ,",
		"Size":         "M,L",
		"Event ID":     "new-arrivals-2025",
	}

	p := NormalizeProduct(row, 4, categories, "/placeholder.png")
	if p.ID != "5" {
		t.Fatalf("expected id 5, got %s", p.ID)
	}
	if p.Name != "Red Shirt" || p.NameKH != "Red Shirt" {
		t.Fatalf("unexpected names: %q %q", p.Name, p.NameKH)
	}
	if p.Image != "/img/red.png" {
		t.Fatalf("unexpected image: %s", p.Image)
	}
	if p.Price.String() != "12.50" || p.FinalPrice.String() != "10.00" {
		t.Fatalf("unexpected prices: %s %s", p.Price.String(), p.FinalPrice.String())
	}
	if p.CategoryKH != "សម្លៀកបំពាក់" || p.DisplayOrder != 2 {
		t.Fatalf("category info not applied: %q %d", p.CategoryKH, p.DisplayOrder)
	}
	if p.DescriptionKH != "Cotton shirt" {
		t.Fatalf("product description should win over category text: %q", p.DescriptionKH)
	}
	if len(p.Colors) != 2 || p.Colors[1] != "Blue" {
		t.Fatalf("unexpected colors: %v", p.Colors)
	}
	if len(p.Sizes) != 2 || len(p.EventIDs) != 1 {
		t.Fatalf("unexpected sizes/events: %v %v", p.Sizes, p.EventIDs)
	}
}

func TestNormalizeProductDefaults(t *testing.T) {
	p := NormalizeProduct(Row{"Name": "Mystery", "Price": "abc", "Options": "{not json"}, 0, nil, "/placeholder.png")
	if p.Image != "/placeholder.png" {
		t.Fatalf("expected placeholder image, got %s", p.Image)
	}
	if !p.Price.IsZero() {
		t.Fatalf("invalid price should be zero, got %s", p.Price.String())
	}
	if p.Category != "Uncategorized" || p.CategoryKH != "Uncategorized" {
		t.Fatalf("expected Uncategorized, got %q %q", p.Category, p.CategoryKH)
	}
	if p.DisplayOrder != 999 {
		t.Fatalf("expected display order 999, got %d", p.DisplayOrder)
	}
	if len(p.Options) != 0 {
		t.Fatalf("malformed options should be empty, got %v", p.Options)
	}
}

func TestNormalizeProductReadsOptionLists(t *testing.T) {
	row := Row{"Name": "Hoodie", "Options (JSON)": `{"colors":["Grey","Navy"],"sizes":["S"]}`}
	p := NormalizeProduct(row, 0, nil, "")
	if len(p.Colors) != 2 || p.Colors[0] != "Grey" {
		t.Fatalf("expected colors from options, got %v", p.Colors)
	}
	if len(p.Sizes) != 1 || p.Sizes[0] != "S" {
		t.Fatalf("expected sizes from options, got %v", p.Sizes)
	}
}

func TestNormalizeCategoriesSkipsNamelessRows(t *testing.T) {
	got := NormalizeCategories([]Row{
		{"Category": ""},
		{"category": "Shoes", "order": "x"},
		{"Category": "Bags", "display_order": 3.0},
	})
	if len(got) != 2 {
		t.Fatalf("expected 2 categories, got %d", len(got))
	}
	if got["shoes"].DisplayOrder != 0 || got["shoes"].NameKH != "Shoes" {
		t.Fatalf("unexpected shoes category: %+v", got["shoes"])
	}
	if got["bags"].DisplayOrder != 3 {
		t.Fatalf("unexpected bags order: %d", got["bags"].DisplayOrder)
	}
}

func TestParsePrice(t *testing.T) {
	cases := map[string]string{
		"10":    "10.00",
		"$4.5":  "4.50",
		"7.999": "8.00",
		"12usd": "12.00",
		"":      "0.00",
		"free":  "0.00",
		".75":   "0.75",
		"3.":    "3.00",
	}
	for raw, want := range cases {
		if got := ParsePrice(raw).String(); got != want {
			t.Fatalf("ParsePrice(%q) = %s, want %s", raw, got, want)
		}
	}
}
