package gemini

import (
	"context"

	"google.golang.org/genai"

	"github.com/shrovate/shrovate/pkg/chat"
)

// transcribePrompt is the fixed instruction for audio transcription.
const transcribePrompt = "Transcribe this audio precisely. Return only the text."

// UnderstandMedia analyzes attached image or video bytes and returns
// the model's description.
func (c *Client) UnderstandMedia(ctx context.Context, req *chat.MediaRequest) (*chat.TextResult, error) {
	cfg := &genai.GenerateContentConfig{}
	if req.SystemInstruction != "" {
		cfg.SystemInstruction = &genai.Content{
			Parts: []*genai.Part{{Text: req.SystemInstruction}},
		}
	}

	resp, err := c.genai.Models.GenerateContent(ctx, c.models.Media, []*genai.Content{
		{Role: "user", Parts: []*genai.Part{
			{InlineData: &genai.Blob{MIMEType: req.MIMEType, Data: req.Data}},
			{Text: req.Prompt},
		}},
	}, cfg)
	if err != nil {
		return nil, unwrapErr(err)
	}

	return &chat.TextResult{Text: responseText(resp)}, nil
}

// EditImage rewrites an attached image per the prompt. The response may
// contain a replacement image, commentary text, or both.
func (c *Client) EditImage(ctx context.Context, req *chat.MediaRequest) (*chat.EditResult, error) {
	resp, err := c.genai.Models.GenerateContent(ctx, c.models.Image, []*genai.Content{
		{Role: "user", Parts: []*genai.Part{
			{InlineData: &genai.Blob{MIMEType: req.MIMEType, Data: req.Data}},
			{Text: req.Prompt},
		}},
	}, nil)
	if err != nil {
		return nil, unwrapErr(err)
	}

	result := &chat.EditResult{}
	if len(resp.Candidates) > 0 && resp.Candidates[0].Content != nil {
		for _, part := range resp.Candidates[0].Content.Parts {
			switch {
			case part.InlineData != nil:
				result.MIMEType = part.InlineData.MIMEType
				result.Image = part.InlineData.Data
			case part.Text != "":
				result.Text += part.Text
			}
		}
	}
	return result, nil
}

// Transcribe converts recorded audio into plain text. Failures
// propagate untouched; there is no fallback text.
func (c *Client) Transcribe(ctx context.Context, data []byte, mimeType string) (string, error) {
	resp, err := c.genai.Models.GenerateContent(ctx, c.models.Standard, []*genai.Content{
		{Role: "user", Parts: []*genai.Part{
			{InlineData: &genai.Blob{MIMEType: mimeType, Data: data}},
			{Text: transcribePrompt},
		}},
	}, nil)
	if err != nil {
		return "", unwrapErr(err)
	}
	return responseText(resp), nil
}
