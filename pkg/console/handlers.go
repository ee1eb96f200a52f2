package console

import (
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"time"

	"github.com/shrovate/shrovate/pkg/chat"
	"github.com/shrovate/shrovate/pkg/media"
	"github.com/shrovate/shrovate/pkg/voicecmd"
)

// Handler returns the console's HTTP handler.
func (s *Server) Handler() http.Handler {
	mux := http.NewServeMux()
	mux.HandleFunc("/", s.handleIndex)
	mux.HandleFunc("/api/chat", s.handleChat)
	mux.HandleFunc("/api/turns", s.handleTurns)
	mux.HandleFunc("/api/events", s.handleEvents)
	mux.HandleFunc("/api/transcribe", s.handleTranscribe)
	mux.HandleFunc("/api/command", s.handleCommand)
	mux.HandleFunc("/api/mode", s.handleMode)
	mux.HandleFunc("/api/status", s.handleStatus)
	mux.HandleFunc("/api/transcript", s.handleTranscript)
	mux.HandleFunc("/api/launcher", s.handleLauncher)
	return mux
}

// ListenAndServe runs the console until the listener fails.
func (s *Server) ListenAndServe() error {
	s.logger.Info("console starting", "addr", s.addr)
	return http.ListenAndServe(s.addr, s.Handler())
}

func (s *Server) handleIndex(w http.ResponseWriter, r *http.Request) {
	if r.URL.Path != "/" {
		http.NotFound(w, r)
		return
	}
	if err := tmpl.ExecuteTemplate(w, "index.html", nil); err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
	}
}

func (s *Server) handleTurns(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, s.store.Turns())
}

// chatMessage is one frame on the websocket chat channel, in either
// direction.
type chatMessage struct {
	Type       string           `json:"type"` // send | turn | error | busy
	Prompt     string           `json:"prompt,omitempty"`
	Attachment *chat.Attachment `json:"attachment,omitempty"`
	Turn       *chat.Turn       `json:"turn,omitempty"`
	Error      string           `json:"error,omitempty"`
}

// handleChat upgrades to a websocket. The client sends "send" frames;
// the server streams every appended turn back, history first.
func (s *Server) handleChat(w http.ResponseWriter, r *http.Request) {
	conn, err := s.upgrader.Upgrade(w, r, nil)
	if err != nil {
		s.logger.Error("websocket upgrade failed", "error", err)
		return
	}
	defer conn.Close()

	turns, cancel := s.store.Subscribe(64)
	defer cancel()

	// Replay history so a reconnecting client catches up.
	for _, t := range s.store.Turns() {
		if err := conn.WriteJSON(chatMessage{Type: "turn", Turn: t}); err != nil {
			return
		}
	}

	writes := make(chan chatMessage, 64)
	done := make(chan struct{})
	defer close(done)

	go func() {
		for {
			select {
			case <-done:
				return
			case t, ok := <-turns:
				if !ok {
					return
				}
				select {
				case writes <- chatMessage{Type: "turn", Turn: t}:
				case <-done:
					return
				}
			}
		}
	}()

	go func() {
		for {
			select {
			case <-done:
				return
			case msg := <-writes:
				if err := conn.WriteJSON(msg); err != nil {
					return
				}
			}
		}
	}()

	for {
		var msg chatMessage
		if err := conn.ReadJSON(&msg); err != nil {
			return
		}
		if msg.Type != "send" {
			continue
		}
		if msg.Prompt == "" && msg.Attachment == nil {
			continue
		}
		if _, err := s.send(r.Context(), msg.Prompt, msg.Attachment); err != nil {
			kind := "error"
			if errors.Is(err, ErrBusy) {
				kind = "busy"
			}
			writes <- chatMessage{Type: kind, Error: err.Error()}
		}
	}
}

// handleEvents serves the SSE turn feed.
func (s *Server) handleEvents(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "text/event-stream")
	w.Header().Set("Cache-Control", "no-cache")
	w.Header().Set("Connection", "keep-alive")

	flusher, ok := w.(http.Flusher)
	if !ok {
		http.Error(w, "streaming unsupported", http.StatusInternalServerError)
		return
	}

	turns, cancel := s.store.Subscribe(64)
	defer cancel()

	fmt.Fprintf(w, "data: {\"type\":\"connected\"}\n\n")
	flusher.Flush()

	for {
		select {
		case <-r.Context().Done():
			return
		case t, ok := <-turns:
			if !ok {
				return
			}
			payload, err := json.Marshal(t)
			if err != nil {
				continue
			}
			fmt.Fprintf(w, "data: %s\n\n", payload)
			flusher.Flush()
		}
	}
}

func (s *Server) handleTranscribe(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		http.Error(w, "method not allowed", http.StatusMethodNotAllowed)
		return
	}
	var req struct {
		Data     string `json:"data"`
		MIMEType string `json:"mimeType"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}
	raw, err := media.DecodeBlob(req.Data)
	if err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}
	if req.MIMEType == "" {
		req.MIMEType = "audio/webm"
	}
	text, err := s.provider.Transcribe(r.Context(), raw, req.MIMEType)
	if err != nil {
		s.logger.Error("transcription failed", "error", err)
		http.Error(w, "transcription failed", http.StatusBadGateway)
		return
	}
	writeJSON(w, map[string]string{"text": text})
}

// commandResponse tells the page what to do with a matched voice
// command. Actions the browser owns (open URL, screen capture) are
// echoed back; daemon actions are executed server-side.
type commandResponse struct {
	Matched bool   `json:"matched"`
	Action  string `json:"action,omitempty"`
	Target  string `json:"target,omitempty"`
	Notice  string `json:"notice,omitempty"`
}

func (s *Server) handleCommand(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		http.Error(w, "method not allowed", http.StatusMethodNotAllowed)
		return
	}
	var req struct {
		Text string `json:"text"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	action, ok := s.commands.Match(req.Text)
	if !ok {
		writeJSON(w, commandResponse{})
		return
	}

	resp := commandResponse{Matched: true}
	switch action.Kind {
	case voicecmd.OpenURL:
		resp.Action, resp.Target = "open-url", action.Target
	case voicecmd.StartRecording:
		resp.Action = "start-recording"
	case voicecmd.StopRecording:
		resp.Action = "stop-recording"
	case voicecmd.LaunchApp:
		resp.Action = "daemon"
		resp.Notice = s.daemonNotice(s.helper.Launch(r.Context(), action.Target))
	case voicecmd.Shutdown:
		resp.Action = "daemon"
		resp.Notice = s.daemonNotice(s.helper.Shutdown(r.Context()))
	case voicecmd.Restart:
		resp.Action = "daemon"
		resp.Notice = s.daemonNotice(s.helper.Restart(r.Context()))
	case voicecmd.Lock:
		resp.Action = "daemon"
		resp.Notice = s.daemonNotice(s.helper.Lock(r.Context()))
	}
	writeJSON(w, resp)
}

// daemonNotice converts a daemon error into a user-visible advisory.
// Daemon failures never affect chat state.
func (s *Server) daemonNotice(err error) string {
	if err == nil {
		return ""
	}
	s.logger.Warn("control daemon call failed", "error", err)
	return "Local Command Node Offline. Ensure the helper daemon is running on port 5000."
}

func (s *Server) handleMode(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		http.Error(w, "method not allowed", http.StatusMethodNotAllowed)
		return
	}
	var req struct {
		Mode  *chat.Mode `json:"mode,omitempty"`
		Voice *bool      `json:"voice,omitempty"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}
	if req.Mode != nil {
		if !req.Mode.Valid() {
			http.Error(w, "unknown mode", http.StatusBadRequest)
			return
		}
		s.session.SetMode(*req.Mode)
	}
	if req.Voice != nil {
		s.session.SetVoiceMode(*req.Voice)
	}
	s.writeStatus(w)
}

func (s *Server) handleStatus(w http.ResponseWriter, r *http.Request) {
	s.writeStatus(w)
}

func (s *Server) writeStatus(w http.ResponseWriter) {
	writeJSON(w, map[string]any{
		"voiceMode": s.session.VoiceMode(),
		"mode":      s.session.Mode(),
		"busy":      s.busy.Load(),
		"turns":     s.store.Len(),
	})
}

// handleTranscript materializes the conversation as a plain-text file.
func (s *Server) handleTranscript(w http.ResponseWriter, r *http.Request) {
	name := "SHROVATE_LOG_" + time.Now().Format("2006-01-02T15-04-05") + ".txt"
	w.Header().Set("Content-Type", "text/plain; charset=utf-8")
	w.Header().Set("Content-Disposition", `attachment; filename="`+name+`"`)
	fmt.Fprint(w, chat.Transcript(s.store.Turns()))
}

func writeJSON(w http.ResponseWriter, v any) {
	w.Header().Set("Content-Type", "application/json")
	if err := json.NewEncoder(w).Encode(v); err != nil {
		slog.Error("failed to encode response", "error", err)
	}
}
