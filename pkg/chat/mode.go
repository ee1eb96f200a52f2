package chat

import (
	"regexp"
	"strings"
	"sync"
)

// Mode is the reasoning tier selected by the operator.
type Mode string

const (
	// ModeTurbo uses the fastest, lightest model with no extra tools.
	ModeTurbo Mode = "turbo"

	// ModeStandard uses the default model with search grounding.
	ModeStandard Mode = "standard"

	// ModeThinking uses the most capable model with a large reasoning
	// budget and no grounding tool.
	ModeThinking Mode = "thinking"
)

// Valid reports whether m is a known mode.
func (m Mode) Valid() bool {
	switch m {
	case ModeTurbo, ModeStandard, ModeThinking:
		return true
	}
	return false
}

var (
	voiceOnRE  = regexp.MustCompile(`\b(voice\s*on|listen|speak|answer\s*in\s*voice)\b`)
	voiceOffRE = regexp.MustCompile(`\b(voice\s*off|text\s*mode)\b`)
)

// DetectVoiceToggle scans user text for a natural-language voice-mode
// directive. It returns the requested state and whether a directive was
// found. An activation phrase wins when both appear.
func DetectVoiceToggle(text string) (on, ok bool) {
	lower := strings.ToLower(text)
	if voiceOnRE.MatchString(lower) {
		return true, true
	}
	if voiceOffRE.MatchString(lower) {
		return false, true
	}
	return false, false
}

// Session holds the session-scoped mode state: voice output and the
// reasoning tier. It is written by explicit operator toggles or by
// voice directives detected in user text, and read once per turn when
// the send handler resolves the router request. A toggle carried in a
// turn's own text therefore applies to that same turn.
type Session struct {
	mu        sync.Mutex
	voiceMode bool
	mode      Mode
}

// NewSession creates a session with voice off and the standard tier.
func NewSession() *Session {
	return &Session{mode: ModeStandard}
}

// VoiceMode returns the current voice output setting.
func (s *Session) VoiceMode() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.voiceMode
}

// SetVoiceMode sets the voice output setting.
func (s *Session) SetVoiceMode(on bool) {
	s.mu.Lock()
	s.voiceMode = on
	s.mu.Unlock()
}

// Mode returns the current reasoning tier.
func (s *Session) Mode() Mode {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.mode
}

// SetMode sets the reasoning tier. Unknown values are ignored.
func (s *Session) SetMode(m Mode) {
	if !m.Valid() {
		return
	}
	s.mu.Lock()
	s.mode = m
	s.mu.Unlock()
}

// ApplyVoiceDirective detects a voice toggle in user text, applies it,
// and returns the voice-mode value the triggering turn should use.
func (s *Session) ApplyVoiceDirective(text string) bool {
	if on, ok := DetectVoiceToggle(text); ok {
		s.SetVoiceMode(on)
		return on
	}
	return s.VoiceMode()
}
