package chatgpt

import (
	"context"
	"errors"
	"fmt"

	"github.com/sashabaranov/go-openai"

	"github.com/dskvich/telemage/pkg/domain"
)

type imageClient struct {
	api *openai.Client
}

// NewImageClient creates a text-to-image client. An empty baseURL keeps the public OpenAI endpoint.
func NewImageClient(token, baseURL string) *imageClient {
	cfg := openai.DefaultConfig(token)
	if baseURL != "" {
		cfg.BaseURL = baseURL
	}

	return &imageClient{
		api: openai.NewClientWithConfig(cfg),
	}
}

func (c *imageClient) GenerateImage(ctx context.Context, prompt string) (domain.Generation, error) {
	req := openai.ImageRequest{
		Prompt:         prompt,
		N:              1,
		Size:           openai.CreateImageSize512x512,
		ResponseFormat: openai.CreateImageResponseFormatB64JSON,
	}

	resp, err := c.api.CreateImage(ctx, req)
	if err != nil {
		var apiErr *openai.APIError
		if errors.As(err, &apiErr) {
			return domain.Generation{Kind: domain.GenerationFailed, Error: apiErr.Message}, nil
		}
		return domain.Generation{}, fmt.Errorf("creating image: %w", err)
	}

	if len(resp.Data) == 0 || resp.Data[0].B64JSON == "" {
		return domain.Generation{Kind: domain.GenerationUnknown}, nil
	}

	return domain.Generation{
		Kind:     domain.GenerationImage,
		B64Image: resp.Data[0].B64JSON,
		Created:  resp.Created,
	}, nil
}
