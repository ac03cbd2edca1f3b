package openfoodfacts

import (
	"Pento-Service/domain"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"regexp"
	"strings"
	"time"
)

const defaultBaseURL = "https://world.openfoodfacts.org/api/v2/product"

var tagPrefix = regexp.MustCompile(`^[a-z]{2}:`)

type (
	// ProductLookupClient fetches a packaged product by barcode. A missing
	// product is domain.ErrProductNotFound, a normal outcome.
	ProductLookupClient interface {
		FetchByBarcode(ctx context.Context, barcode string) (*domain.BarcodeProduct, error)
	}

	offClient struct {
		baseURL    string
		httpClient *http.Client
	}

	// offProduct mirrors the Open Food Facts wire shape, restricted to the
	// fields the normalizer consumes.
	offProduct struct {
		ProductName            string         `json:"product_name"`
		ProductNameEn          string         `json:"product_name_en"`
		GenericName            string         `json:"generic_name"`
		GenericNameEn          string         `json:"generic_name_en"`
		AbbreviatedProductName string         `json:"abbreviated_product_name"`
		ProductNameFr          string         `json:"product_name_fr"`
		ProductNameDe          string         `json:"product_name_de"`
		ProductNameEs          string         `json:"product_name_es"`
		ProductNameIt          string         `json:"product_name_it"`
		ProductNamePt          string         `json:"product_name_pt"`
		ProductNameNl          string         `json:"product_name_nl"`
		ProductNameVi          string         `json:"product_name_vi"`
		GenericNameFr          string         `json:"generic_name_fr"`
		GenericNameDe          string         `json:"generic_name_de"`
		Brands                 string         `json:"brands"`
		Categories             string         `json:"categories"`
		CategoriesTags         []string       `json:"categories_tags"`
		CategoriesHierarchy    []string       `json:"categories_hierarchy"`
		FoodGroups             string         `json:"food_groups"`
		FoodGroupsTags         []string       `json:"food_groups_tags"`
		IngredientsText        string         `json:"ingredients_text"`
		IngredientsTextEn      string         `json:"ingredients_text_en"`
		Nutriments             map[string]any `json:"nutriments"`
		Quantity               string         `json:"quantity"`
		ServingSize            string         `json:"serving_size"`
		ServingQuantity        float64        `json:"serving_quantity"`
		ProductQuantity        float64        `json:"product_quantity"`
		ImageURL               string         `json:"image_url"`
		ImageFrontURL          string         `json:"image_front_url"`
		ImageFrontSmallURL     string         `json:"image_front_small_url"`
		ImageSmallURL          string         `json:"image_small_url"`
		Labels                 string         `json:"labels"`
		LabelsTags             []string       `json:"labels_tags"`
		Packaging              string         `json:"packaging"`
		PackagingTags          []string       `json:"packaging_tags"`
		NutriscoreGrade        string         `json:"nutriscore_grade"`
		NovaGroup              int            `json:"nova_group"`
		EcoscoreGrade          string         `json:"ecoscore_grade"`
		Keywords               []string       `json:"_keywords"`
	}

	offResponse struct {
		Status  int         `json:"status"`
		Code    string      `json:"code"`
		Product *offProduct `json:"product"`
	}
)

func NewProductLookupClient(baseURL string) ProductLookupClient {
	if baseURL == "" {
		baseURL = defaultBaseURL
	}
	return &offClient{
		baseURL:    strings.TrimRight(baseURL, "/"),
		httpClient: &http.Client{Timeout: 30 * time.Second},
	}
}

func (c *offClient) FetchByBarcode(ctx context.Context, barcode string) (*domain.BarcodeProduct, error) {
	url := fmt.Sprintf("%s/%s.json", c.baseURL, barcode)
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, err
	}
	req.Header.Set("User-Agent", "PentoService/1.0 - Food tracking app")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, domain.NewFailure(domain.KindUpstreamUnavailable, "open food facts request failed", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode == http.StatusNotFound {
		return nil, domain.ErrProductNotFound
	}
	if resp.StatusCode != http.StatusOK {
		return nil, domain.NewFailure(
			domain.KindUpstreamUnavailable,
			fmt.Sprintf("open food facts API returned status %d for barcode %s", resp.StatusCode, barcode),
			nil,
		)
	}

	var decoded offResponse
	if err := json.NewDecoder(resp.Body).Decode(&decoded); err != nil {
		return nil, domain.NewFailure(domain.KindUpstreamUnavailable, "failed to decode open food facts response", err)
	}

	if decoded.Status != 1 || decoded.Product == nil {
		return nil, domain.ErrProductNotFound
	}

	return mapProduct(decoded.Product), nil
}

func mapProduct(p *offProduct) *domain.BarcodeProduct {
	return &domain.BarcodeProduct{
		NameFields: []string{
			p.ProductName,
			p.ProductNameEn,
			p.GenericName,
			p.GenericNameEn,
			p.AbbreviatedProductName,
			p.ProductNameFr,
			p.ProductNameDe,
			p.ProductNameEs,
			p.ProductNameIt,
			p.ProductNamePt,
			p.ProductNameNl,
			p.ProductNameVi,
			p.GenericNameFr,
			p.GenericNameDe,
		},
		Brand:           p.Brands,
		Categories:      mergeTagged(splitList(p.Categories), p.CategoriesTags, p.CategoriesHierarchy),
		FoodGroupHints:  foodGroupHints(p),
		Quantity:        p.Quantity,
		ServingSize:     p.ServingSize,
		ServingQuantity: p.ServingQuantity,
		ProductQuantity: p.ProductQuantity,
		Ingredients:     firstNonEmpty(p.IngredientsText, p.IngredientsTextEn),
		Labels:          mergeTagged(splitList(p.Labels), p.LabelsTags),
		Packaging:       mergeTagged(splitList(p.Packaging), p.PackagingTags),
		Keywords:        p.Keywords,
		Nutriments:      p.Nutriments,
		NutriscoreGrade: p.NutriscoreGrade,
		NovaGroup:       p.NovaGroup,
		EcoscoreGrade:   p.EcoscoreGrade,
		ImageURL:        firstNonEmpty(p.ImageFrontURL, p.ImageURL, p.ImageFrontSmallURL, p.ImageSmallURL),
	}
}

func foodGroupHints(p *offProduct) []string {
	var hints []string
	if p.FoodGroups != "" {
		hints = append(hints, p.FoodGroups)
	}
	for _, tag := range p.FoodGroupsTags {
		hints = append(hints, cleanTag(tag))
	}
	return hints
}

// mergeTagged joins a comma-separated list with tag lists, stripping the
// language prefix and dashes from tags and dropping duplicates.
func mergeTagged(base []string, tagLists ...[]string) []string {
	seen := make(map[string]bool)
	var out []string
	add := func(v string) {
		v = strings.TrimSpace(v)
		if v == "" || seen[v] {
			return
		}
		seen[v] = true
		out = append(out, v)
	}

	for _, v := range base {
		add(v)
	}
	for _, tags := range tagLists {
		for _, tag := range tags {
			add(cleanTag(tag))
		}
	}
	return out
}

func cleanTag(tag string) string {
	return strings.ReplaceAll(tagPrefix.ReplaceAllString(tag, ""), "-", " ")
}

func splitList(s string) []string {
	if s == "" {
		return nil
	}
	parts := strings.Split(s, ",")
	var out []string
	for _, p := range parts {
		if trimmed := strings.TrimSpace(p); trimmed != "" {
			out = append(out, trimmed)
		}
	}
	return out
}

func firstNonEmpty(values ...string) string {
	for _, v := range values {
		if v != "" {
			return v
		}
	}
	return ""
}
