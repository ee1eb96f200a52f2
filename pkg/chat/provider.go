package chat

import "context"

// TextRequest asks the provider for a text completion.
type TextRequest struct {
	Prompt            string
	SystemInstruction string

	// Tier selects the underlying model.
	Tier Mode

	// EnableSearch attaches the provider's search-grounding tool.
	EnableSearch bool

	// ThinkingBudget is the reasoning token budget, 0 for none.
	ThinkingBudget int32
}

// TextResult is a text completion with optional grounding citations.
type TextResult struct {
	Text    string
	Sources []WebSource
}

// MediaRequest asks the provider to interpret or edit attached media.
type MediaRequest struct {
	Prompt            string
	SystemInstruction string
	Data              []byte
	MIMEType          string
}

// EditResult is the outcome of an image edit: a replacement image,
// commentary text, or both.
type EditResult struct {
	Text     string
	MIMEType string
	Image    []byte
}

// ImageResult is a synthesized image.
type ImageResult struct {
	MIMEType string
	Data     []byte
}

// VideoRequest asks the provider to synthesize a video clip.
type VideoRequest struct {
	Prompt      string
	Resolution  string
	AspectRatio string
}

// VideoResult is a finished, downloaded video.
type VideoResult struct {
	MIMEType string
	Data     []byte
}

// VideoJob is a handle to an asynchronous video synthesis job.
type VideoJob interface {
	// Poll refreshes the job state and reports whether it finished.
	Poll(ctx context.Context) (done bool, err error)

	// Result downloads the finished video. Valid only after Poll has
	// reported done.
	Result(ctx context.Context) (*VideoResult, error)
}

// Provider is the remote generative capability boundary. All
// substantive computation is delegated through it; implementations
// must be safe for use from a single in-flight call at a time.
type Provider interface {
	GenerateText(ctx context.Context, req *TextRequest) (*TextResult, error)
	UnderstandMedia(ctx context.Context, req *MediaRequest) (*TextResult, error)
	EditImage(ctx context.Context, req *MediaRequest) (*EditResult, error)
	SynthesizeImage(ctx context.Context, prompt string) (*ImageResult, error)
	SynthesizeVideo(ctx context.Context, req *VideoRequest) (VideoJob, error)

	// SynthesizeSpeech returns base64 raw PCM (16-bit LE, mono, 24 kHz)
	// spoken by the named voice.
	SynthesizeSpeech(ctx context.Context, text, voice string) (string, error)

	// Transcribe converts recorded audio to plain text.
	Transcribe(ctx context.Context, data []byte, mimeType string) (string, error)
}
