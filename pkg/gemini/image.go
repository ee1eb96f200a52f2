package gemini

import (
	"context"

	"google.golang.org/genai"

	"github.com/shrovate/shrovate/pkg/chat"
)

// SynthesizeImage generates an image from a text prompt and returns the
// first inline image part of the response.
func (c *Client) SynthesizeImage(ctx context.Context, prompt string) (*chat.ImageResult, error) {
	resp, err := c.genai.Models.GenerateContent(ctx, c.models.Image, []*genai.Content{
		{Role: "user", Parts: []*genai.Part{{Text: prompt}}},
	}, nil)
	if err != nil {
		return nil, unwrapErr(err)
	}

	if len(resp.Candidates) > 0 && resp.Candidates[0].Content != nil {
		for _, part := range resp.Candidates[0].Content.Parts {
			if part.InlineData != nil {
				return &chat.ImageResult{
					MIMEType: part.InlineData.MIMEType,
					Data:     part.InlineData.Data,
				}, nil
			}
		}
	}
	return &chat.ImageResult{}, nil
}
