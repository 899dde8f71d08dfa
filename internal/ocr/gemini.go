package ocr

import (
	"context"
	"encoding/json"
	"fmt"

	"google.golang.org/genai"

	"billsplit/internal/models"
)

const extractionPrompt = `Analyze the attached bill or receipt image and extract its details as JSON:
- items: list of {name, price, quantity}. name must be non-empty, price a positive number, quantity a positive integer.
- tax_rate: the tax applied to the bill as a decimal fraction between 0.0 and 1.0. Use 0.0 if not visible.
- service_charge: the service charge as a decimal fraction between 0.0 and 1.0. Use 0.0 if not visible.
Only extract items that appear on the bill. Do not include who paid or who consumed anything.`

// billSchema constrains the model output to the OCRBill shape.
var billSchema = &genai.Schema{
	Type: genai.TypeObject,
	Properties: map[string]*genai.Schema{
		"tax_rate":       {Type: genai.TypeNumber},
		"service_charge": {Type: genai.TypeNumber},
		"items": {
			Type: genai.TypeArray,
			Items: &genai.Schema{
				Type: genai.TypeObject,
				Properties: map[string]*genai.Schema{
					"name":     {Type: genai.TypeString},
					"price":    {Type: genai.TypeNumber},
					"quantity": {Type: genai.TypeInteger},
				},
				Required: []string{"name", "price", "quantity"},
			},
		},
	},
	Required: []string{"items"},
}

// Gemini extracts bill details using the Gemini API with a constrained
// JSON response schema.
type Gemini struct {
	client *genai.Client
	model  string
}

var _ Extractor = (*Gemini)(nil)

// NewGemini creates a Gemini-backed extractor with the given API key and
// model name (e.g. "gemini-2.0-flash").
func NewGemini(ctx context.Context, apiKey, model string) (*Gemini, error) {
	client, err := genai.NewClient(ctx, &genai.ClientConfig{
		APIKey:  apiKey,
		Backend: genai.BackendGeminiAPI,
	})
	if err != nil {
		return nil, fmt.Errorf("create gemini client: %w", err)
	}
	return &Gemini{client: client, model: model}, nil
}

// Extract sends the image to Gemini and decodes the structured response.
// Items the model got obviously wrong (blank name, non-positive price or
// quantity) are dropped, and out-of-range rates are clamped to zero, since
// the user corrects the result anyway.
func (g *Gemini) Extract(ctx context.Context, image []byte, mimeType string) (*models.OCRBill, error) {
	contents := []*genai.Content{
		genai.NewContentFromParts([]*genai.Part{
			genai.NewPartFromBytes(image, mimeType),
			genai.NewPartFromText(extractionPrompt),
		}, genai.RoleUser),
	}

	resp, err := g.client.Models.GenerateContent(ctx, g.model, contents, &genai.GenerateContentConfig{
		ResponseMIMEType: "application/json",
		ResponseSchema:   billSchema,
	})
	if err != nil {
		return nil, fmt.Errorf("generate content: %w", err)
	}

	var bill models.OCRBill
	if err := json.Unmarshal([]byte(resp.Text()), &bill); err != nil {
		return nil, fmt.Errorf("decode extraction response: %w", err)
	}
	return sanitize(&bill), nil
}

func sanitize(bill *models.OCRBill) *models.OCRBill {
	out := &models.OCRBill{
		TaxRate:       bill.TaxRate,
		ServiceCharge: bill.ServiceCharge,
	}
	if out.TaxRate < 0 || out.TaxRate > 1 {
		out.TaxRate = 0
	}
	if out.ServiceCharge < 0 || out.ServiceCharge > 1 {
		out.ServiceCharge = 0
	}
	for _, item := range bill.Items {
		if item.Name == "" || item.Price <= 0 || item.Quantity <= 0 {
			continue
		}
		out.Items = append(out.Items, item)
	}
	return out
}
