package openfoodfacts

import (
	"testing"
)

func TestMapProductMergesCategories(t *testing.T) {
	product := mapProduct(&offProduct{
		ProductName:    "Nutella",
		Brands:         "Ferrero",
		Categories:     "Spreads, Sweet spreads",
		CategoriesTags: []string{"en:spreads", "en:hazelnut-spreads", "fr:pates-a-tartiner"},
	})

	want := []string{"Spreads", "Sweet spreads", "spreads", "hazelnut spreads", "pates a tartiner"}
	if len(product.Categories) != len(want) {
		t.Fatalf("categories = %v, want %v", product.Categories, want)
	}
	for i, c := range want {
		if product.Categories[i] != c {
			t.Fatalf("categories[%d] = %q, want %q", i, product.Categories[i], c)
		}
	}
}

func TestMapProductNameFieldOrder(t *testing.T) {
	product := mapProduct(&offProduct{
		ProductNameEn: "Hazelnut Spread",
		GenericName:   "Chocolate spread",
	})

	if product.NameFields[0] != "" {
		t.Fatalf("product_name must stay first even when empty, got %q", product.NameFields[0])
	}
	if product.NameFields[1] != "Hazelnut Spread" {
		t.Fatalf("name fields out of order: %v", product.NameFields)
	}
}

func TestMapProductPrefersFrontImage(t *testing.T) {
	product := mapProduct(&offProduct{
		ImageURL:      "https://img.off/full.jpg",
		ImageFrontURL: "https://img.off/front.jpg",
	})
	if product.ImageURL != "https://img.off/front.jpg" {
		t.Fatalf("image url = %q, want the front image", product.ImageURL)
	}
}

func TestCleanTag(t *testing.T) {
	tests := []struct{ in, want string }{
		{"en:hazelnut-spreads", "hazelnut spreads"},
		{"fr:pates-a-tartiner", "pates a tartiner"},
		{"no-prefix-here", "no prefix here"},
	}
	for _, tt := range tests {
		if got := cleanTag(tt.in); got != tt.want {
			t.Fatalf("cleanTag(%q) = %q, want %q", tt.in, got, tt.want)
		}
	}
}
