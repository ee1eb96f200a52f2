package gemini

import (
	"context"
	"strings"

	"google.golang.org/genai"

	"github.com/shrovate/shrovate/pkg/chat"
)

// GenerateText produces a text completion. The reasoning tier selects
// the model; search grounding and the thinking budget follow the
// request flags.
func (c *Client) GenerateText(ctx context.Context, req *chat.TextRequest) (*chat.TextResult, error) {
	model := c.models.Standard
	switch req.Tier {
	case chat.ModeTurbo:
		model = c.models.Turbo
	case chat.ModeThinking:
		model = c.models.Thinking
	}

	cfg := &genai.GenerateContentConfig{}
	if req.SystemInstruction != "" {
		cfg.SystemInstruction = &genai.Content{
			Parts: []*genai.Part{{Text: req.SystemInstruction}},
		}
	}
	if req.EnableSearch {
		cfg.Tools = []*genai.Tool{{GoogleSearch: &genai.GoogleSearch{}}}
	}
	if req.ThinkingBudget > 0 {
		cfg.ThinkingConfig = &genai.ThinkingConfig{
			ThinkingBudget: genai.Ptr(req.ThinkingBudget),
		}
	}

	resp, err := c.genai.Models.GenerateContent(ctx, model, []*genai.Content{
		{Role: "user", Parts: []*genai.Part{{Text: req.Prompt}}},
	}, cfg)
	if err != nil {
		return nil, unwrapErr(err)
	}

	result := &chat.TextResult{Text: responseText(resp)}

	// Collect grounding citations. A citation needs a non-empty URI;
	// a missing title is acceptable and left absent.
	if len(resp.Candidates) > 0 && resp.Candidates[0].GroundingMetadata != nil {
		for _, chunk := range resp.Candidates[0].GroundingMetadata.GroundingChunks {
			if chunk.Web == nil || chunk.Web.URI == "" {
				continue
			}
			result.Sources = append(result.Sources, chat.WebSource{
				URI:   chunk.Web.URI,
				Title: chunk.Web.Title,
			})
		}
	}

	return result, nil
}

// responseText concatenates the text parts of the first candidate.
func responseText(resp *genai.GenerateContentResponse) string {
	if resp == nil || len(resp.Candidates) == 0 || resp.Candidates[0].Content == nil {
		return ""
	}
	var sb strings.Builder
	for _, part := range resp.Candidates[0].Content.Parts {
		sb.WriteString(part.Text)
	}
	return sb.String()
}
