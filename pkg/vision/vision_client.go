package vision

import (
	"Pento-Service/domain"
	"bytes"
	"context"
	"encoding/base64"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"
)

const annotateURL = "https://vision.googleapis.com/v1/images:annotate"

type (
	// OCRClient extracts text from a receipt image. It fails when the image
	// carries no detectable text.
	OCRClient interface {
		ExtractText(ctx context.Context, image []byte) (string, error)
	}

	visionClient struct {
		apiKey     string
		httpClient *http.Client
	}
)

func NewOCRClient(apiKey string) OCRClient {
	return &visionClient{
		apiKey:     apiKey,
		httpClient: &http.Client{Timeout: 30 * time.Second},
	}
}

func (c *visionClient) ExtractText(ctx context.Context, image []byte) (string, error) {
	if c.apiKey == "" {
		return "", domain.NewFailure(domain.KindConfiguration, "GOOGLE_VISION_API_KEY is not configured", nil)
	}

	requestBody := map[string]interface{}{
		"requests": []map[string]interface{}{
			{
				"image": map[string]interface{}{
					"content": base64.StdEncoding.EncodeToString(image),
				},
				"features": []map[string]interface{}{
					{"type": "DOCUMENT_TEXT_DETECTION"},
				},
			},
		},
	}

	requestJSON, err := json.Marshal(requestBody)
	if err != nil {
		return "", err
	}

	url := fmt.Sprintf("%s?key=%s", annotateURL, c.apiKey)
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, url, bytes.NewBuffer(requestJSON))
	if err != nil {
		return "", err
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return "", domain.NewFailure(domain.KindUpstreamUnavailable, "vision OCR request failed", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		bodyBytes, _ := io.ReadAll(resp.Body)
		return "", domain.NewFailure(
			domain.KindUpstreamUnavailable,
			fmt.Sprintf("vision API error: %s - %s", resp.Status, string(bodyBytes)),
			nil,
		)
	}

	var visionResp struct {
		Responses []struct {
			FullTextAnnotation struct {
				Text string `json:"text"`
			} `json:"fullTextAnnotation"`
			Error *struct {
				Message string `json:"message"`
			} `json:"error"`
		} `json:"responses"`
	}

	if err := json.NewDecoder(resp.Body).Decode(&visionResp); err != nil {
		return "", domain.NewFailure(domain.KindUpstreamUnavailable, "failed to decode vision response", err)
	}

	if len(visionResp.Responses) == 0 {
		return "", domain.NewFailure(domain.KindUpstreamUnavailable, "vision returned no responses", domain.ErrOCRFailed)
	}
	if visionResp.Responses[0].Error != nil {
		return "", domain.NewFailure(domain.KindUpstreamUnavailable, visionResp.Responses[0].Error.Message, domain.ErrOCRFailed)
	}

	text := strings.TrimSpace(visionResp.Responses[0].FullTextAnnotation.Text)
	if text == "" {
		return "", domain.NewFailure(domain.KindUpstreamUnavailable, "no text detected in the provided image", domain.ErrOCRFailed)
	}

	return text, nil
}
