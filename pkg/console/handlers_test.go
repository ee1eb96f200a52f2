package console

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/shrovate/shrovate/pkg/chat"
	"github.com/shrovate/shrovate/pkg/helperd"
	"github.com/shrovate/shrovate/pkg/media"
)

func postJSON(t *testing.T, h http.Handler, path, body string) *httptest.ResponseRecorder {
	t.Helper()
	req := httptest.NewRequest(http.MethodPost, path, strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	h.ServeHTTP(w, req)
	return w
}

func TestHandleTurns(t *testing.T) {
	s := New(&stubProvider{}, "127.0.0.1:0")
	s.Store().Append(chat.NewUserTurn("hello", nil))

	req := httptest.NewRequest(http.MethodGet, "/api/turns", nil)
	w := httptest.NewRecorder()
	s.Handler().ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Fatalf("status = %d", w.Code)
	}
	var turns []*chat.Turn
	if err := json.NewDecoder(w.Body).Decode(&turns); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if len(turns) != 2 || turns[1].Text != "hello" {
		t.Errorf("turns = %+v", turns)
	}
}

func TestHandleTranscribe(t *testing.T) {
	var gotMIME string
	p := &stubProvider{
		transcribe: func(data []byte, mimeType string) (string, error) {
			gotMIME = mimeType
			if string(data) != "audio-bytes" {
				t.Errorf("data = %q", data)
			}
			return "open youtube", nil
		},
	}
	s := New(p, "127.0.0.1:0")

	body := `{"data":"` + media.EncodeBlob([]byte("audio-bytes")) + `"}`
	w := postJSON(t, s.Handler(), "/api/transcribe", body)

	if w.Code != http.StatusOK {
		t.Fatalf("status = %d: %s", w.Code, w.Body.String())
	}
	if gotMIME != "audio/webm" {
		t.Errorf("mime = %q, want default audio/webm", gotMIME)
	}
	var resp map[string]string
	if err := json.NewDecoder(w.Body).Decode(&resp); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if resp["text"] != "open youtube" {
		t.Errorf("text = %q", resp["text"])
	}
}

func TestHandleTranscribe_Failure(t *testing.T) {
	s := New(&stubProvider{}, "127.0.0.1:0") // transcribe not stubbed
	body := `{"data":"` + media.EncodeBlob([]byte("x")) + `"}`
	if w := postJSON(t, s.Handler(), "/api/transcribe", body); w.Code != http.StatusBadGateway {
		t.Errorf("status = %d, want 502", w.Code)
	}
}

func TestHandleTranscribe_BadPayload(t *testing.T) {
	s := New(&stubProvider{}, "127.0.0.1:0")
	if w := postJSON(t, s.Handler(), "/api/transcribe", `{"data":"!!"}`); w.Code != http.StatusBadRequest {
		t.Errorf("status = %d, want 400", w.Code)
	}
}

func TestHandleTranscribe_MethodNotAllowed(t *testing.T) {
	s := New(&stubProvider{}, "127.0.0.1:0")
	req := httptest.NewRequest(http.MethodGet, "/api/transcribe", nil)
	w := httptest.NewRecorder()
	s.Handler().ServeHTTP(w, req)
	if w.Code != http.StatusMethodNotAllowed {
		t.Errorf("status = %d, want 405", w.Code)
	}
}

func TestHandleCommand_OpenURL(t *testing.T) {
	s := New(&stubProvider{}, "127.0.0.1:0")
	w := postJSON(t, s.Handler(), "/api/command", `{"text":"open youtube"}`)

	var resp commandResponse
	if err := json.NewDecoder(w.Body).Decode(&resp); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if !resp.Matched || resp.Action != "open-url" || resp.Target != "https://youtube.com" {
		t.Errorf("resp = %+v", resp)
	}
}

func TestHandleCommand_Unmatched(t *testing.T) {
	s := New(&stubProvider{}, "127.0.0.1:0")
	w := postJSON(t, s.Handler(), "/api/command", `{"text":"sing a song"}`)

	var resp commandResponse
	if err := json.NewDecoder(w.Body).Decode(&resp); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if resp.Matched {
		t.Errorf("resp = %+v, want unmatched", resp)
	}
}

func TestHandleCommand_DaemonLaunch(t *testing.T) {
	var gotApp string
	daemon := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotApp = r.URL.Query().Get("app")
	}))
	defer daemon.Close()

	s := New(&stubProvider{}, "127.0.0.1:0")
	s.helper = &helperd.Client{BaseURL: daemon.URL}

	w := postJSON(t, s.Handler(), "/api/command", `{"text":"open code"}`)
	var resp commandResponse
	if err := json.NewDecoder(w.Body).Decode(&resp); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if resp.Action != "daemon" || resp.Notice != "" {
		t.Errorf("resp = %+v", resp)
	}
	if gotApp != "code" {
		t.Errorf("launched app = %q", gotApp)
	}
}

func TestHandleCommand_DaemonOffline(t *testing.T) {
	daemon := httptest.NewServer(http.HandlerFunc(func(http.ResponseWriter, *http.Request) {}))
	daemon.Close()

	s := New(&stubProvider{}, "127.0.0.1:0")
	s.helper = &helperd.Client{BaseURL: daemon.URL}

	w := postJSON(t, s.Handler(), "/api/command", `{"text":"shutdown pc"}`)
	var resp commandResponse
	if err := json.NewDecoder(w.Body).Decode(&resp); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if !strings.Contains(resp.Notice, "Local Command Node Offline") {
		t.Errorf("notice = %q, want offline advisory", resp.Notice)
	}
}

func TestHandleMode(t *testing.T) {
	s := New(&stubProvider{}, "127.0.0.1:0")
	w := postJSON(t, s.Handler(), "/api/mode", `{"mode":"thinking","voice":true}`)
	if w.Code != http.StatusOK {
		t.Fatalf("status = %d", w.Code)
	}
	if s.Session().Mode() != chat.ModeThinking {
		t.Errorf("mode = %q", s.Session().Mode())
	}
	if !s.Session().VoiceMode() {
		t.Error("voice should be on")
	}
}

func TestHandleMode_Invalid(t *testing.T) {
	s := New(&stubProvider{}, "127.0.0.1:0")
	if w := postJSON(t, s.Handler(), "/api/mode", `{"mode":"warp"}`); w.Code != http.StatusBadRequest {
		t.Errorf("status = %d, want 400", w.Code)
	}
	if s.Session().Mode() != chat.ModeStandard {
		t.Errorf("mode changed to %q", s.Session().Mode())
	}
}

func TestHandleStatus(t *testing.T) {
	s := New(&stubProvider{}, "127.0.0.1:0")
	req := httptest.NewRequest(http.MethodGet, "/api/status", nil)
	w := httptest.NewRecorder()
	s.Handler().ServeHTTP(w, req)

	var status struct {
		VoiceMode bool   `json:"voiceMode"`
		Mode      string `json:"mode"`
		Busy      bool   `json:"busy"`
		Turns     int    `json:"turns"`
	}
	if err := json.NewDecoder(w.Body).Decode(&status); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if status.Mode != "standard" || status.VoiceMode || status.Busy || status.Turns != 1 {
		t.Errorf("status = %+v", status)
	}
}

func TestHandleTranscript(t *testing.T) {
	s := New(&stubProvider{}, "127.0.0.1:0")
	req := httptest.NewRequest(http.MethodGet, "/api/transcript", nil)
	w := httptest.NewRecorder()
	s.Handler().ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Fatalf("status = %d", w.Code)
	}
	if cd := w.Header().Get("Content-Disposition"); !strings.Contains(cd, "SHROVATE_LOG_") {
		t.Errorf("Content-Disposition = %q", cd)
	}
	if !strings.Contains(w.Body.String(), greeting) {
		t.Error("transcript missing greeting")
	}
}

func TestHandleLauncher(t *testing.T) {
	s := New(&stubProvider{}, "127.0.0.1:0")
	req := httptest.NewRequest(http.MethodGet, "/api/launcher", nil)
	req.Host = "127.0.0.1:8080"
	w := httptest.NewRecorder()
	s.Handler().ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Fatalf("status = %d", w.Code)
	}
	if cd := w.Header().Get("Content-Disposition"); !strings.Contains(cd, "SHROVATE_LAUNCHER.html") {
		t.Errorf("Content-Disposition = %q", cd)
	}
	if !strings.Contains(w.Body.String(), "http://127.0.0.1:8080/") {
		t.Error("launcher page missing console address")
	}
}

func TestHandleIndex(t *testing.T) {
	s := New(&stubProvider{}, "127.0.0.1:0")
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	w := httptest.NewRecorder()
	s.Handler().ServeHTTP(w, req)
	if w.Code != http.StatusOK {
		t.Fatalf("status = %d", w.Code)
	}
	if !strings.Contains(w.Body.String(), "SHROVATE") {
		t.Error("index page missing title")
	}

	req = httptest.NewRequest(http.MethodGet, "/nope", nil)
	w = httptest.NewRecorder()
	s.Handler().ServeHTTP(w, req)
	if w.Code != http.StatusNotFound {
		t.Errorf("status = %d, want 404", w.Code)
	}
}
