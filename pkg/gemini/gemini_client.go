package gemini

import (
	"Pento-Service/domain"
	"bytes"
	"context"
	"encoding/base64"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"regexp"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"
)

const defaultModel = "gemini-2.5-pro"

var jsonPattern = regexp.MustCompile(`(?s)[\[{].*[\]}]`)

type (
	// GeminiClient is the AI-recognition collaborator. It is constructed
	// once at process start and passed by reference into the services that
	// need it; nothing reads credentials from ambient state at call time.
	GeminiClient interface {
		RecognizeFromImage(ctx context.Context, image []byte, mimeType string) ([]domain.RawScanItem, error)
		RecognizeFromReceiptText(ctx context.Context, ocrText string) ([]domain.RawScanItem, error)
		NormalizeBarcodeProduct(ctx context.Context, info domain.ExtractedProductInfo) (domain.RawScanItem, error)
		Chat(ctx context.Context, message string) (string, error)
	}

	geminiClient struct {
		apiKey     string
		model      string
		httpClient *http.Client
		validate   *validator.Validate
	}
)

func NewGeminiClient(apiKey, model string) GeminiClient {
	if model == "" {
		model = defaultModel
	}
	return &geminiClient{
		apiKey:     apiKey,
		model:      model,
		httpClient: &http.Client{Timeout: 60 * time.Second},
		validate:   validator.New(),
	}
}

const visionPrompt = `You are a food information expert. Analyze this food image and identify what food items are visible.

Generate a JSON response with the following structure:

{
  "name": "string (the primary food item name, be specific)",
  "foodGroup": "string (with enum values: %s)",
  "notes": "string (description of the food, its characteristics, or preparation state)",
  "typicalShelfLifeDays_Pantry": number (typical shelf life in days when stored in pantry, 0 if not applicable),
  "typicalShelfLifeDays_Fridge": number (typical shelf life in days when stored in fridge, 0 if not applicable),
  "typicalShelfLifeDays_Freezer": number (typical shelf life in days when stored in freezer, 0 if not applicable),
  "unitType": "string (%s)"
}

Rules:
- If multiple distinct food items are detected, return an array of objects (max 5 items)
- If it's a single food item or dish, return a single object
- Be accurate with shelf life estimates based on standard food safety guidelines for fresh, unprocessed foods
- For unitType, use the most appropriate unit based on how the food is typically measured
- IMPORTANT: If foodGroup is "MixedDishes", unitType MUST always be "Count"
- If the image contains prepared/cooked food, estimate shelf life for the prepared state
- Return ONLY valid JSON, no additional text or explanation`

const receiptPrompt = `You are a food receipt analyst. Based on the OCR text from a grocery bill, extract individual food items and map them to structured data.

The OCR text will be provided between triple quotes. Ignore prices or quantities unless helpful for determining unit types. Focus on grocery food items (skip non-food entries).

Return STRICT JSON (no markdown) with this structure:
[
  {
    "name": "string (specific food item)",
    "foodGroup": "string (one of: %s)",
    "notes": "string (include quantity info if available)",
    "typicalShelfLifeDays_Pantry": number (typical shelf life in days when stored in pantry, 0 if not applicable),
    "typicalShelfLifeDays_Fridge": number (typical shelf life in days when stored in fridge, 0 if not applicable),
    "typicalShelfLifeDays_Freezer": number (typical shelf life in days when stored in freezer, 0 if not applicable),
    "unitType": "string (%s)"
  }
]

Rules:
- Maximum 10 items.
- If foodGroup is "MixedDishes", unitType must be "Count".
- Shelf life values must be integers (0 when not applicable).
- For unitType, use the most appropriate unit based on OCR text
- Be accurate with shelf life estimates based on standard food safety guidelines for fresh, unprocessed foods
- Only output JSON, no explanation.

OCR TEXT:
"""
%s
"""`

const barcodePrompt = `You are a food information expert. A packaged product was looked up by barcode; its extracted metadata follows as JSON. Map it to one structured food item.

Return STRICT JSON (no markdown) with this structure:
{
  "name": "string (concise consumer-facing product name)",
  "foodGroup": "string (one of: %s)",
  "notes": "string (brand, quantity or other useful detail)",
  "typicalShelfLifeDays_Pantry": number (typical shelf life in days when stored in pantry, 0 if not applicable),
  "typicalShelfLifeDays_Fridge": number (typical shelf life in days when stored in fridge, 0 if not applicable),
  "typicalShelfLifeDays_Freezer": number (typical shelf life in days when stored in freezer, 0 if not applicable),
  "unitType": "string (%s)"
}

Rules:
- If foodGroup is "MixedDishes", unitType must be "Count".
- Shelf life values must be integers (0 when not applicable) and reflect the packaged, unopened product.
- Only output JSON, no explanation.

PRODUCT METADATA:
%s`

const chatSystemPrompt = `You are PENTO Assistant for "The Smart Households Food Management System" mobile app.

Answer briefly, clearly, and helpfully in the user's language.

Only answer questions related to: food inventory, barcode scanning, food recognition, expiry tracking, AI recipe suggestions, grocery planning, food sharing/giveaway, notifications, and app usage/onboarding. If a question is unrelated, politely say: "Sorry, this is outside the app's scope. Please ask about food management features, recipes, expiry tracking, or app usage."

When helpful, suggest in-app flows (e.g., open Scanner, add item, set expiry, view alerts).`

func (c *geminiClient) RecognizeFromImage(ctx context.Context, image []byte, mimeType string) ([]domain.RawScanItem, error) {
	prompt := fmt.Sprintf(visionPrompt, domain.FoodGroupEnumString, domain.UnitTypeEnumString)

	parts := []map[string]interface{}{
		{"text": prompt},
		{
			"inline_data": map[string]interface{}{
				"mime_type": mimeType,
				"data":      base64.StdEncoding.EncodeToString(image),
			},
		},
	}

	text, err := c.generate(ctx, parts)
	if err != nil {
		return nil, err
	}

	return c.decodeScanItems(text)
}

func (c *geminiClient) RecognizeFromReceiptText(ctx context.Context, ocrText string) ([]domain.RawScanItem, error) {
	prompt := fmt.Sprintf(receiptPrompt, domain.FoodGroupEnumString, domain.UnitTypeEnumString, ocrText)

	text, err := c.generate(ctx, []map[string]interface{}{{"text": prompt}})
	if err != nil {
		return nil, err
	}

	return c.decodeScanItems(text)
}

func (c *geminiClient) NormalizeBarcodeProduct(ctx context.Context, info domain.ExtractedProductInfo) (domain.RawScanItem, error) {
	infoJSON, err := json.Marshal(info)
	if err != nil {
		return domain.RawScanItem{}, err
	}

	prompt := fmt.Sprintf(barcodePrompt, domain.FoodGroupEnumString, domain.UnitTypeEnumString, string(infoJSON))

	text, err := c.generate(ctx, []map[string]interface{}{{"text": prompt}})
	if err != nil {
		return domain.RawScanItem{}, err
	}

	items, err := c.decodeScanItems(text)
	if err != nil {
		return domain.RawScanItem{}, err
	}
	if len(items) == 0 {
		return domain.RawScanItem{}, domain.NewFailure(domain.KindUpstreamUnavailable, "gemini returned no item for the product", domain.ErrInvalidScanPayload)
	}

	return items[0], nil
}

func (c *geminiClient) Chat(ctx context.Context, message string) (string, error) {
	prompt := fmt.Sprintf("%s\n\nUser ask: %s", chatSystemPrompt, message)

	text, err := c.generate(ctx, []map[string]interface{}{{"text": prompt}})
	if err != nil {
		return "", err
	}
	return text, nil
}

func (c *geminiClient) generate(ctx context.Context, parts []map[string]interface{}) (string, error) {
	if c.apiKey == "" {
		return "", domain.NewFailure(domain.KindConfiguration, "GEMINI_API_KEY is not configured", nil)
	}

	url := fmt.Sprintf(
		"https://generativelanguage.googleapis.com/v1beta/models/%s:generateContent?key=%s",
		c.model, c.apiKey,
	)

	requestBody := map[string]interface{}{
		"contents": []map[string]interface{}{
			{"parts": parts},
		},
		"generationConfig": map[string]interface{}{
			"temperature": 0.1,
			"topP":        0.8,
			"topK":        40,
		},
	}

	requestJSON, err := json.Marshal(requestBody)
	if err != nil {
		return "", err
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, url, bytes.NewBuffer(requestJSON))
	if err != nil {
		return "", err
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return "", domain.NewFailure(domain.KindUpstreamUnavailable, "gemini request failed", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		bodyBytes, _ := io.ReadAll(resp.Body)
		return "", domain.NewFailure(
			domain.KindUpstreamUnavailable,
			fmt.Sprintf("gemini API error: %s - %s", resp.Status, string(bodyBytes)),
			nil,
		)
	}

	var geminiResp struct {
		Candidates []struct {
			Content struct {
				Parts []struct {
					Text string `json:"text"`
				} `json:"parts"`
			} `json:"content"`
		} `json:"candidates"`
	}

	if err := json.NewDecoder(resp.Body).Decode(&geminiResp); err != nil {
		return "", domain.NewFailure(domain.KindUpstreamUnavailable, "failed to decode gemini response", err)
	}

	if len(geminiResp.Candidates) == 0 || len(geminiResp.Candidates[0].Content.Parts) == 0 {
		return "", domain.NewFailure(domain.KindUpstreamUnavailable, "gemini returned no content", nil)
	}

	text := strings.TrimSpace(geminiResp.Candidates[0].Content.Parts[0].Text)
	if text == "" {
		return "", domain.NewFailure(domain.KindUpstreamUnavailable, "gemini returned no content", nil)
	}

	return text, nil
}

// decodeScanItems decodes a model response into validated scan items. The
// decode fails closed: a payload with a missing name, an unknown food group,
// or an unknown unit type is rejected rather than propagated with holes.
func (c *geminiClient) decodeScanItems(text string) ([]domain.RawScanItem, error) {
	cleaned := stripCodeFences(text)
	if match := jsonPattern.FindString(cleaned); match != "" {
		cleaned = match
	}

	var items []domain.RawScanItem
	if err := json.Unmarshal([]byte(cleaned), &items); err != nil {
		// Single-object responses count as arrays of one.
		var single domain.RawScanItem
		if singleErr := json.Unmarshal([]byte(cleaned), &single); singleErr != nil {
			return nil, domain.NewFailure(
				domain.KindUpstreamUnavailable,
				fmt.Sprintf("failed to parse gemini response: %v", err),
				domain.ErrInvalidScanPayload,
			)
		}
		items = []domain.RawScanItem{single}
	}

	for i, item := range items {
		if err := c.validate.Struct(item); err != nil {
			return nil, domain.NewFailure(
				domain.KindUpstreamUnavailable,
				fmt.Sprintf("gemini item %d failed validation: %v", i, err),
				domain.ErrInvalidScanPayload,
			)
		}
	}

	return items, nil
}

func stripCodeFences(text string) string {
	text = strings.TrimSpace(text)
	if strings.HasPrefix(text, "```json") {
		text = strings.TrimPrefix(text, "```json")
		text = strings.TrimSuffix(text, "```")
	} else if strings.HasPrefix(text, "```") {
		text = strings.TrimPrefix(text, "```")
		text = strings.TrimSuffix(text, "```")
	}
	return strings.TrimSpace(text)
}
