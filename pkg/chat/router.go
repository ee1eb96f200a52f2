package chat

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/shrovate/shrovate/pkg/media"
)

// systemPersona is the instruction sent with every understanding or
// text-generation call. The bracketed tags it teaches the model are the
// serialization form of the synthesis directives parsed by
// ParseDirective.
const systemPersona = `You are **SHROVATE**, a friendly and simple Hinglish-speaking AI helper.

### 1. LANGUAGE MODE
- If the user types in **Hindi or Hinglish**, reply in **Hinglish**.
- If the user types in **English**, reply in **English**.
- Automatically detect the user's language.

### 2. TONE + STYLE
- Speak like a real human: short sentences, slightly casual, friendly, and clear.
- Explain like a teacher but in simple everyday language.

### 3. PHYSICS & SCIENCE (VISUAL + REAL WORLD)
When the user asks any question related to **physics**:
- **Real-World Examples**: MANDATORY.
- **Visual Generation**: ALWAYS generate a futuristic schematic diagram by appending this tag:
  [GENERATE_IMAGE: <detailed description>]

### 4. VIDEO GENERATION PROTOCOL
If the user explicitly asks to "generate a video", "create a video", or "make a video of X":
- Do NOT generate an image.
- Append this specific tag at the end of your response:
  [GENERATE_VIDEO: <concise video prompt>]
- Keep the video prompt descriptive but under 200 characters.

### 5. VOICE COMMAND PROTOCOL
- If the user says: "Voice on", "Listen", "Speak": Activate voice-friendly mode.
`

// voicePersonaSuffix is appended to the system instruction while voice
// mode is active.
const voicePersonaSuffix = "\n\n[SYSTEM STATE: VOICE MODE ACTIVE]\n- Keep answers SHORT, SPOKEN-STYLE, and CONVERSATIONAL."

// imageStyleTemplate wraps synthesis prompts extracted from image
// directives.
const imageStyleTemplate = "A high-tech, futuristic neon blue schematic diagram: %s. Cyberpunk aesthetic, white and cyan lines on black."

// videoErrorNote is appended to the visible text when the follow-up
// video synthesis fails; the turn itself still succeeds.
const videoErrorNote = "\n[SYSTEM ERROR: Video generation protocol failed.]"

const (
	fallbackVideoAnalysis = "Video analysis complete."
	fallbackImageAnalysis = "Analysis complete."
	fallbackImageEdit     = "Image edit complete."
	fallbackEmptyText     = "System Error: Empty response received."

	defaultVideoPrompt = "Analyze this video and describe what is happening in detail."
	defaultImagePrompt = "Analyze this image in detail."
	defaultEditPrompt  = "Edit this image"

	thinkingBudget = 32768
)

// editKeywords denote an edit intent for an attached image.
var editKeywords = []string{
	"edit", "add", "remove", "change", "filter", "style", "make", "turn", "background",
}

// ErrVideoTimeout is returned by the video polling loop when the job
// does not finish within the router's wait budget. It is distinct from
// a remote rejection.
var ErrVideoTimeout = errors.New("video synthesis timed out")

// Request is one user turn presented to the router. Mode state is
// threaded in explicitly; the caller resolves it once before the call.
type Request struct {
	Prompt     string
	VoiceMode  bool
	Mode       Mode
	Attachment *Attachment
}

// Reply is the completed system turn payload assembled by the router.
type Reply struct {
	Text       string
	ImageURL   string
	VideoURL   string
	AudioData  string
	WebSources []WebSource
}

// Router decides which remote capability to invoke for a user turn.
//
// The router holds no state between invocations. Failures of the
// primary capability call propagate; follow-up synthesis and speech
// failures degrade gracefully within the same call.
type Router struct {
	Provider Provider

	// Logger receives swallowed secondary-call failures. Defaults to
	// slog.Default.
	Logger *slog.Logger

	// PollInterval is the delay between video job status checks.
	// Defaults to 5 seconds.
	PollInterval time.Duration

	// VideoWaitBudget bounds the total video polling time. Defaults to
	// 10 minutes.
	VideoWaitBudget time.Duration

	// Voice is the speech synthesis voice identity. Defaults to "Aoife".
	Voice string
}

// NewRouter creates a router over the given capability provider.
func NewRouter(p Provider) *Router {
	return &Router{Provider: p}
}

func (r *Router) logger() *slog.Logger {
	if r.Logger != nil {
		return r.Logger
	}
	return slog.Default()
}

func (r *Router) pollInterval() time.Duration {
	if r.PollInterval > 0 {
		return r.PollInterval
	}
	return 5 * time.Second
}

func (r *Router) videoWaitBudget() time.Duration {
	if r.VideoWaitBudget > 0 {
		return r.VideoWaitBudget
	}
	return 10 * time.Minute
}

func (r *Router) voice() string {
	if r.Voice != "" {
		return r.Voice
	}
	return "Aoife"
}

// Respond produces the system turn payload for one user turn. The
// branches below are mutually exclusive and evaluated in fixed order;
// speech synthesis applies after whichever branch fired.
func (r *Router) Respond(ctx context.Context, req *Request) (*Reply, error) {
	instruction := systemPersona
	if req.VoiceMode {
		instruction += voicePersonaSuffix
	}

	var (
		reply *Reply
		err   error
	)
	switch {
	case req.Attachment != nil && req.Attachment.Kind == AttachmentVideo:
		reply, err = r.respondVideoAttachment(ctx, req, instruction)
	case req.Attachment != nil:
		reply, err = r.respondImageAttachment(ctx, req, instruction)
	default:
		reply, err = r.respondText(ctx, req, instruction)
	}
	if err != nil {
		return nil, err
	}

	if req.VoiceMode && reply.Text != "" {
		audio, ttsErr := r.Provider.SynthesizeSpeech(ctx, reply.Text, r.voice())
		if ttsErr != nil {
			r.logger().Error("speech synthesis failed", "error", ttsErr)
		} else {
			reply.AudioData = audio
		}
	}

	return reply, nil
}

// respondVideoAttachment handles branch 1: video understanding.
func (r *Router) respondVideoAttachment(ctx context.Context, req *Request, instruction string) (*Reply, error) {
	data, err := media.DecodeBlob(req.Attachment.Data)
	if err != nil {
		return nil, err
	}
	prompt := req.Prompt
	if prompt == "" {
		prompt = defaultVideoPrompt
	}
	res, err := r.Provider.UnderstandMedia(ctx, &MediaRequest{
		Prompt:            prompt,
		SystemInstruction: instruction,
		Data:              data,
		MIMEType:          req.Attachment.MIMEType,
	})
	if err != nil {
		return nil, err
	}
	text := res.Text
	if text == "" {
		text = fallbackVideoAnalysis
	}
	return &Reply{Text: text}, nil
}

// respondImageAttachment handles branch 2: image edit or analysis,
// chosen by an edit-intent keyword scan over the prompt.
func (r *Router) respondImageAttachment(ctx context.Context, req *Request, instruction string) (*Reply, error) {
	data, err := media.DecodeBlob(req.Attachment.Data)
	if err != nil {
		return nil, err
	}

	if hasEditIntent(req.Prompt) {
		prompt := req.Prompt
		if prompt == "" {
			prompt = defaultEditPrompt
		}
		res, err := r.Provider.EditImage(ctx, &MediaRequest{
			Prompt:   prompt,
			Data:     data,
			MIMEType: req.Attachment.MIMEType,
		})
		if err != nil {
			return nil, err
		}
		reply := &Reply{Text: res.Text}
		if reply.Text == "" {
			reply.Text = fallbackImageEdit
		}
		if len(res.Image) > 0 {
			reply.ImageURL = media.DataURI(res.MIMEType, res.Image)
		}
		return reply, nil
	}

	prompt := req.Prompt
	if prompt == "" {
		prompt = defaultImagePrompt
	}
	res, err := r.Provider.UnderstandMedia(ctx, &MediaRequest{
		Prompt:            prompt,
		SystemInstruction: instruction,
		Data:              data,
		MIMEType:          req.Attachment.MIMEType,
	})
	if err != nil {
		return nil, err
	}
	text := res.Text
	if text == "" {
		text = fallbackImageAnalysis
	}
	return &Reply{Text: text}, nil
}

// respondText handles branch 3: text generation plus optional
// directive-triggered synthesis.
func (r *Router) respondText(ctx context.Context, req *Request, instruction string) (*Reply, error) {
	treq := &TextRequest{
		Prompt:            req.Prompt,
		SystemInstruction: instruction,
		Tier:              req.Mode,
	}
	switch req.Mode {
	case ModeStandard:
		treq.EnableSearch = true
	case ModeThinking:
		treq.ThinkingBudget = thinkingBudget
	}

	res, err := r.Provider.GenerateText(ctx, treq)
	if err != nil {
		return nil, err
	}

	text := res.Text
	if text == "" {
		text = fallbackEmptyText
	}
	reply := &Reply{WebSources: res.Sources}

	clean, directive := ParseDirective(text)
	reply.Text = clean
	switch directive.Kind {
	case DirectiveVideo:
		uri, vidErr := r.synthesizeVideo(ctx, directive.Prompt)
		if vidErr != nil {
			r.logger().Error("video synthesis failed", "error", vidErr)
			reply.Text += videoErrorNote
		} else {
			reply.VideoURL = uri
		}
	case DirectiveImage:
		styled := fmt.Sprintf(imageStyleTemplate, directive.Prompt)
		img, imgErr := r.Provider.SynthesizeImage(ctx, styled)
		if imgErr != nil {
			r.logger().Error("image synthesis failed", "error", imgErr)
		} else if img != nil && len(img.Data) > 0 {
			reply.ImageURL = media.DataURI(img.MIMEType, img.Data)
		}
	}

	return reply, nil
}

// synthesizeVideo submits a video job and polls it to completion,
// bounded by the router's wait budget.
func (r *Router) synthesizeVideo(ctx context.Context, prompt string) (string, error) {
	ctx, cancel := context.WithTimeout(ctx, r.videoWaitBudget())
	defer cancel()

	job, err := r.Provider.SynthesizeVideo(ctx, &VideoRequest{
		Prompt:      prompt,
		Resolution:  "720p",
		AspectRatio: "16:9",
	})
	if err != nil {
		return "", err
	}

	// Check immediately before the first ticker interval.
	done, err := job.Poll(ctx)
	if err != nil {
		return "", pollErr(ctx, err)
	}

	ticker := time.NewTicker(r.pollInterval())
	defer ticker.Stop()
	for !done {
		select {
		case <-ctx.Done():
			return "", pollErr(ctx, ctx.Err())
		case <-ticker.C:
			done, err = job.Poll(ctx)
			if err != nil {
				return "", pollErr(ctx, err)
			}
		}
	}

	result, err := job.Result(ctx)
	if err != nil {
		return "", pollErr(ctx, err)
	}
	mime := result.MIMEType
	if mime == "" {
		mime = "video/mp4"
	}
	return media.DataURI(mime, result.Data), nil
}

// pollErr maps a wait-budget expiry onto ErrVideoTimeout so callers can
// tell a timeout from a remote rejection.
func pollErr(ctx context.Context, err error) error {
	if errors.Is(ctx.Err(), context.DeadlineExceeded) {
		return fmt.Errorf("%w: %v", ErrVideoTimeout, err)
	}
	return err
}

// hasEditIntent reports whether the prompt contains any edit keyword,
// case-insensitively.
func hasEditIntent(prompt string) bool {
	lower := strings.ToLower(prompt)
	for _, kw := range editKeywords {
		if strings.Contains(lower, kw) {
			return true
		}
	}
	return false
}
