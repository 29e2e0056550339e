package extract

import (
	"context"
	"fmt"

	"google.golang.org/genai"
)

// GeminiClient calls the Gemini API with an inline PDF and the extraction
// prompt.
type GeminiClient struct {
	client *genai.Client
	model  string
}

// NewGeminiClient creates a client bound to the given model name. An empty
// apiKey defers to the SDK's own environment handling.
func NewGeminiClient(ctx context.Context, apiKey, model string) (*GeminiClient, error) {
	client, err := genai.NewClient(ctx, &genai.ClientConfig{
		APIKey:      apiKey,
		HTTPOptions: genai.HTTPOptions{APIVersion: "v1"},
	})
	if err != nil {
		return nil, fmt.Errorf("NewGeminiClient: create genai client: %w", err)
	}
	return &GeminiClient{client: client, model: model}, nil
}

// GenerateJSON sends the document and prompt to the model and returns the
// raw response text.
func (c *GeminiClient) GenerateJSON(ctx context.Context, document []byte, prompt string) (string, error) {
	contents := []*genai.Content{
		{
			Role: "user",
			Parts: []*genai.Part{
				{Text: prompt},
				{
					InlineData: &genai.Blob{
						MIMEType: "application/pdf",
						Data:     document,
					},
				},
			},
		},
	}

	// Low temperature and a large output budget: statements are multi-page
	// and the output must be reproducible.
	cfg := &genai.GenerateContentConfig{
		Temperature:     genai.Ptr(float32(0.1)),
		MaxOutputTokens: 65536,
	}

	resp, err := c.client.Models.GenerateContent(ctx, c.model, contents, cfg)
	if err != nil {
		return "", fmt.Errorf("GenerateJSON: generate content: %w", err)
	}

	text := resp.Text()
	if text == "" {
		return "", fmt.Errorf("GenerateJSON: empty response from model")
	}
	return text, nil
}
