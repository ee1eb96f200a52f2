package chat

import (
	"time"

	"github.com/google/uuid"
)

// Sender identifies the author of a turn.
type Sender string

const (
	// SenderUser marks turns typed (or spoken) by the operator.
	SenderUser Sender = "USER"

	// SenderSystem marks turns produced by the assistant.
	SenderSystem Sender = "SHROVATE"
)

// WebSource is a grounding citation returned with a search-augmented
// text response.
type WebSource struct {
	URI   string `json:"uri"`
	Title string `json:"title,omitempty"`
}

// Turn is one message in the conversation. A turn is immutable once it
// has been appended to a Store; the store is its sole owner.
type Turn struct {
	// ID is unique within the session.
	ID string `json:"id"`

	Sender Sender `json:"sender"`

	// Text may be empty when only media is present.
	Text string `json:"text"`

	// ImageURL and VideoURL are self-contained data URIs for attached
	// or generated visual media.
	ImageURL string `json:"imageUrl,omitempty"`
	VideoURL string `json:"videoUrl,omitempty"`

	// AudioData is base64 raw PCM (16-bit LE, mono, 24 kHz). Present
	// only on system turns produced under voice mode.
	AudioData string `json:"audioData,omitempty"`

	// WebSources is present only when the remote call performed
	// grounded search.
	WebSources []WebSource `json:"webSources,omitempty"`

	Timestamp time.Time `json:"timestamp"`

	// IsError marks a surfaced failure rather than real content.
	IsError bool `json:"isError,omitempty"`
}

// AttachmentKind distinguishes staged visual media.
type AttachmentKind string

const (
	AttachmentImage AttachmentKind = "image"
	AttachmentVideo AttachmentKind = "video"
)

// Attachment is a transient media payload staged for the next send. It
// exists only between selection and send and is never owned by more
// than one in-flight send.
type Attachment struct {
	// Data is the base64 payload without a data-URI prefix.
	Data string `json:"data"`

	MIMEType string `json:"mimeType"`

	// Preview is a data URI suitable for direct rendering.
	Preview string `json:"preview"`

	Kind AttachmentKind `json:"kind"`
}

// NewUserTurn creates a turn for operator input. A staged attachment
// contributes its preview URI so the history renders the sent media.
func NewUserTurn(text string, att *Attachment) *Turn {
	t := &Turn{
		ID:        uuid.NewString(),
		Sender:    SenderUser,
		Text:      text,
		Timestamp: time.Now(),
	}
	if att != nil {
		switch att.Kind {
		case AttachmentVideo:
			t.VideoURL = att.Preview
		default:
			t.ImageURL = att.Preview
		}
	}
	return t
}

// NewSystemTurn creates an assistant turn from a completed reply.
func NewSystemTurn(reply *Reply) *Turn {
	return &Turn{
		ID:         uuid.NewString(),
		Sender:     SenderSystem,
		Text:       reply.Text,
		ImageURL:   reply.ImageURL,
		VideoURL:   reply.VideoURL,
		AudioData:  reply.AudioData,
		WebSources: reply.WebSources,
		Timestamp:  time.Now(),
	}
}

// NewErrorTurn creates the fixed failure turn rendered when a primary
// capability call fails.
func NewErrorTurn() *Turn {
	return &Turn{
		ID:        uuid.NewString(),
		Sender:    SenderSystem,
		Text:      "ERROR: Connection to Gemini Core failed.",
		Timestamp: time.Now(),
		IsError:   true,
	}
}
