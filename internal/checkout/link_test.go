package checkout

import (
	"net/url"
	"testing"
)

func TestEncodeURIComponent(t *testing.T) {
	cases := map[string]string{
		"abc-XYZ_019.!~*'()": "abc-XYZ_019.!~*'()",
		"a b":                "a%20b",
		"Item 1: Shirt\n":    "Item%201%3A%20Shirt%0A",
		"a+b=c&d/e?f#g":      "a%2Bb%3Dc%26d%2Fe%3Ff%23g",
		"100%":               "100%25",
		"ខ្មែរ":              "%E1%9E%81%E1%9F%92%E1%9E%98%E1%9F%82%E1%9E%9A",
	}
	for in, want := range cases {
		if got := EncodeURIComponent(in); got != want {
			t.Fatalf("EncodeURIComponent(%q) = %q, want %q", in, got, want)
		}
	}
}

func TestBuildURLRoundTripsMessage(t *testing.T) {
	message := "Order Time: 07/03/2025, 09:05:03\n\nThank you!"
	link := BuildURL("https://t.me/", "@Shong09111", message)

	parsed, err := url.Parse(link)
	if err != nil {
		t.Fatalf("parse link failed: %v", err)
	}
	if parsed.Host != "t.me" || parsed.Path != "/Shong09111" {
		t.Fatalf("unexpected link target: %s", link)
	}
	if got := parsed.Query().Get("text"); got != message {
		t.Fatalf("decoded text mismatch: %q", got)
	}
}

func TestBuildURLDefaultsBase(t *testing.T) {
	got := BuildURL("", "shop", "hi there")
	if got != "https://t.me/shop?text=hi%20there" {
		t.Fatalf("unexpected url: %s", got)
	}
}
