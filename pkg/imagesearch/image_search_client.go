package imagesearch

import (
	"Pento-Service/domain"
	"context"
	"encoding/json"
	"fmt"
	"log"
	"net/http"
	"net/url"
	"time"
)

const searchURL = "https://www.googleapis.com/customsearch/v1"

type (
	// ImageSearchClient finds a representative image for a food name. A
	// miss or an unconfigured client degrades to an empty result; it never
	// fails the caller's batch.
	ImageSearchClient interface {
		SearchFoodImage(ctx context.Context, foodName string) (domain.ImageResult, error)
	}

	googleImageSearch struct {
		apiKey         string
		searchEngineID string
		httpClient     *http.Client
	}
)

func NewImageSearchClient(apiKey, searchEngineID string) ImageSearchClient {
	return &googleImageSearch{
		apiKey:         apiKey,
		searchEngineID: searchEngineID,
		httpClient:     &http.Client{Timeout: 15 * time.Second},
	}
}

func (c *googleImageSearch) SearchFoodImage(ctx context.Context, foodName string) (domain.ImageResult, error) {
	if c.apiKey == "" || c.searchEngineID == "" {
		log.Println("Google Custom Search credentials not configured, skipping image search")
		return domain.ImageResult{}, nil
	}

	query := url.QueryEscape(foodName + " food")
	reqURL := fmt.Sprintf(
		"%s?key=%s&cx=%s&q=%s&searchType=image&num=1&safe=active",
		searchURL, c.apiKey, c.searchEngineID, query,
	)

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, reqURL, nil)
	if err != nil {
		return domain.ImageResult{}, err
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return domain.ImageResult{}, err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return domain.ImageResult{}, fmt.Errorf("image search API error: %s", resp.Status)
	}

	var searchResp struct {
		Items []struct {
			Link  string `json:"link"`
			Title string `json:"title"`
		} `json:"items"`
	}

	if err := json.NewDecoder(resp.Body).Decode(&searchResp); err != nil {
		return domain.ImageResult{}, err
	}

	if len(searchResp.Items) == 0 {
		return domain.ImageResult{}, nil
	}

	return domain.ImageResult{
		ImageURL: searchResp.Items[0].Link,
		Title:    searchResp.Items[0].Title,
	}, nil
}
