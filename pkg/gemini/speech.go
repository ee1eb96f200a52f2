package gemini

import (
	"context"
	"encoding/base64"
	"fmt"

	"google.golang.org/genai"
)

// SynthesizeSpeech renders text as speech with the named prebuilt voice
// and returns the base64 raw PCM payload (16-bit LE, mono, 24 kHz).
func (c *Client) SynthesizeSpeech(ctx context.Context, text, voice string) (string, error) {
	cfg := &genai.GenerateContentConfig{
		ResponseModalities: []string{"AUDIO"},
		SpeechConfig: &genai.SpeechConfig{
			VoiceConfig: &genai.VoiceConfig{
				PrebuiltVoiceConfig: &genai.PrebuiltVoiceConfig{VoiceName: voice},
			},
		},
	}

	resp, err := c.genai.Models.GenerateContent(ctx, c.models.Speech, []*genai.Content{
		{Role: "user", Parts: []*genai.Part{{Text: text}}},
	}, cfg)
	if err != nil {
		return "", unwrapErr(err)
	}

	if len(resp.Candidates) > 0 && resp.Candidates[0].Content != nil {
		for _, part := range resp.Candidates[0].Content.Parts {
			if part.InlineData != nil {
				return base64.StdEncoding.EncodeToString(part.InlineData.Data), nil
			}
		}
	}
	return "", fmt.Errorf("speech response carried no audio part")
}
