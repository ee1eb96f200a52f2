package gemini

import (
	"context"
	"fmt"
	"net/http"
	"time"

	"google.golang.org/genai"

	"github.com/shrovate/shrovate/pkg/chat"
)

// Default model assignments for each capability.
const (
	// ModelFlash is the default text model.
	ModelFlash = "gemini-2.5-flash"

	// ModelFlashLite is the fastest, lightest text model.
	ModelFlashLite = "gemini-2.5-flash-lite"

	// ModelPro is the most capable model, used for deep reasoning and
	// media understanding.
	ModelPro = "gemini-3-pro-preview"

	// ModelFlashImage handles image synthesis and editing.
	ModelFlashImage = "gemini-2.5-flash-image"

	// ModelVeo handles video synthesis.
	ModelVeo = "veo-3.1-fast-generate-preview"

	// ModelTTS handles speech synthesis.
	ModelTTS = "gemini-2.5-flash-preview-tts"
)

// DefaultDownloadTimeout bounds a single video download request.
const DefaultDownloadTimeout = 2 * time.Minute

// Models assigns a concrete model to each capability. Zero fields fall
// back to the package defaults.
type Models struct {
	Turbo    string
	Standard string
	Thinking string
	Media    string
	Image    string
	Video    string
	Speech   string
}

func (m *Models) applyDefaults() {
	if m.Turbo == "" {
		m.Turbo = ModelFlashLite
	}
	if m.Standard == "" {
		m.Standard = ModelFlash
	}
	if m.Thinking == "" {
		m.Thinking = ModelPro
	}
	if m.Media == "" {
		m.Media = ModelPro
	}
	if m.Image == "" {
		m.Image = ModelFlashImage
	}
	if m.Video == "" {
		m.Video = ModelVeo
	}
	if m.Speech == "" {
		m.Speech = ModelTTS
	}
}

// Client calls the Gemini API. It implements chat.Provider.
type Client struct {
	genai  *genai.Client
	apiKey string
	models Models
	http   *http.Client
}

var _ chat.Provider = (*Client)(nil)

// Option configures the client.
type Option func(*Client)

// WithModels overrides the default capability-to-model assignments.
func WithModels(m Models) Option {
	return func(c *Client) {
		c.models = m
	}
}

// WithHTTPClient sets the HTTP client used for media downloads.
func WithHTTPClient(h *http.Client) Option {
	return func(c *Client) {
		c.http = h
	}
}

// NewClient creates a Gemini API client. A missing API key is a
// configuration error detected here, before any call is attempted.
func NewClient(ctx context.Context, apiKey string, opts ...Option) (*Client, error) {
	if apiKey == "" {
		return nil, ErrMissingAPIKey
	}

	c := &Client{apiKey: apiKey}
	for _, opt := range opts {
		opt(c)
	}
	c.models.applyDefaults()
	if c.http == nil {
		c.http = &http.Client{Timeout: DefaultDownloadTimeout}
	}

	gc, err := genai.NewClient(ctx, &genai.ClientConfig{APIKey: apiKey})
	if err != nil {
		return nil, fmt.Errorf("gemini client: %w", err)
	}
	c.genai = gc
	return c, nil
}
