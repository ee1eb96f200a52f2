// Package console serves the SHROVATE dashboard: the boot sequence and
// chat page, a websocket chat channel, an SSE turn feed, transcription,
// voice-command dispatch, and the downloadable artifacts.
//
// The rendering itself happens in the browser; this server owns the
// conversation store, the session mode state, and the response router,
// and keeps at most one router invocation in flight per session.
package console

import (
	"context"
	"embed"
	"errors"
	"html/template"
	"log/slog"
	"sync/atomic"
	"time"

	"github.com/gorilla/websocket"

	"github.com/shrovate/shrovate/pkg/chat"
	"github.com/shrovate/shrovate/pkg/helperd"
	"github.com/shrovate/shrovate/pkg/voicecmd"
)

//go:embed templates/*
var templateFS embed.FS

var tmpl = template.Must(template.ParseFS(templateFS, "templates/*.html"))

// greeting is the first system turn of every session.
const greeting = "SHROVATE System initialized. Neural link established. How may I assist you, Operator?"

// ErrBusy is returned when a send arrives while a turn is in flight.
// The session allows at most one outstanding router invocation.
var ErrBusy = errors.New("a turn is already in flight")

// Server is the dashboard web server for one session.
type Server struct {
	addr     string
	store    *chat.Store
	session  *chat.Session
	router   *chat.Router
	provider chat.Provider
	commands *voicecmd.Registry
	helper   *helperd.Client
	logger   *slog.Logger

	busy     atomic.Bool
	upgrader websocket.Upgrader
}

// Option configures the server.
type Option func(*Server)

// WithHelperBaseURL points the voice-command dispatch at a control
// daemon on a non-default address.
func WithHelperBaseURL(baseURL string) Option {
	return func(s *Server) {
		s.helper.BaseURL = baseURL
	}
}

// WithCommands replaces the stock voice-command registry.
func WithCommands(r *voicecmd.Registry) Option {
	return func(s *Server) {
		s.commands = r
	}
}

// New creates a console server over the given capability provider.
func New(provider chat.Provider, addr string, opts ...Option) *Server {
	s := &Server{
		addr:     addr,
		store:    chat.NewStore(),
		session:  chat.NewSession(),
		router:   chat.NewRouter(provider),
		provider: provider,
		commands: voicecmd.Default(),
		helper:   helperd.NewClient(),
		logger:   slog.Default(),
		upgrader: websocket.Upgrader{
			ReadBufferSize:  1 << 16,
			WriteBufferSize: 1 << 16,
		},
	}
	for _, opt := range opts {
		opt(s)
	}
	s.store.Append(&chat.Turn{
		ID:        "init",
		Sender:    chat.SenderSystem,
		Text:      greeting,
		Timestamp: time.Now(),
	})
	return s
}

// Store exposes the conversation store, e.g. for the terminal client.
func (s *Server) Store() *chat.Store { return s.store }

// Session exposes the session mode state.
func (s *Server) Session() *chat.Session { return s.session }

// send runs one user turn through the router, enforcing the
// single-in-flight rule and the append ordering: the user turn lands
// before the remote call starts, the system or error turn strictly
// after it settles.
func (s *Server) send(ctx context.Context, prompt string, att *chat.Attachment) (*chat.Turn, error) {
	if !s.busy.CompareAndSwap(false, true) {
		return nil, ErrBusy
	}
	defer s.busy.Store(false)

	// Single consistent read point for the session mode: a voice
	// directive in this turn's text takes effect for this same turn.
	voiceMode := s.session.ApplyVoiceDirective(prompt)
	mode := s.session.Mode()

	s.store.Append(chat.NewUserTurn(prompt, att))

	reply, err := s.router.Respond(ctx, &chat.Request{
		Prompt:     prompt,
		VoiceMode:  voiceMode,
		Mode:       mode,
		Attachment: att,
	})
	if err != nil {
		s.logger.Error("router call failed", "error", err)
		turn := chat.NewErrorTurn()
		s.store.Append(turn)
		return turn, nil
	}

	turn := chat.NewSystemTurn(reply)
	s.store.Append(turn)
	return turn, nil
}
