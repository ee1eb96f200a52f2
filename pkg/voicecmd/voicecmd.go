// Package voicecmd maps transcribed speech onto local console actions.
//
// Matching is a prioritized rule list: an exact-match table evaluated
// first, then ordered substring heuristics as fallback. The registry is
// fully declarative so the behavior stays auditable; it never touches
// the remote AI capability.
package voicecmd

import "strings"

// Kind identifies a local action triggered by a voice command.
type Kind int

const (
	// OpenURL opens a website in the operator's browser.
	OpenURL Kind = iota

	// LaunchApp asks the local control daemon to launch an application.
	LaunchApp

	// Shutdown asks the local control daemon to shut the machine down.
	Shutdown

	// Restart asks the local control daemon to restart the machine.
	Restart

	// Lock asks the local control daemon to lock the machine.
	Lock

	// StartRecording starts a screen capture in the browser layer.
	StartRecording

	// StopRecording stops the screen capture.
	StopRecording
)

// Action is the resolved outcome of a matched command.
type Action struct {
	Kind Kind

	// Target carries the URL for OpenURL or the app name for LaunchApp.
	Target string
}

// Rule is one entry of the registry. Exact rules match the whole
// normalized phrase; Contains rules match when every listed substring
// is present.
type Rule struct {
	Exact    string
	Contains []string
	Action   Action
}

// Registry is an ordered command rule list.
type Registry struct {
	exact      map[string]Action
	heuristics []Rule
}

// New builds a registry from rules. Exact rules go into the table;
// Contains rules keep their relative order as fallback heuristics.
func New(rules []Rule) *Registry {
	r := &Registry{exact: make(map[string]Action)}
	for _, rule := range rules {
		if rule.Exact != "" {
			r.exact[strings.ToLower(rule.Exact)] = rule.Action
			continue
		}
		if len(rule.Contains) > 0 {
			r.heuristics = append(r.heuristics, rule)
		}
	}
	return r
}

// Match resolves a transcribed phrase to an action. The phrase is
// case-normalized and trimmed; the exact table wins, then heuristics
// are evaluated top to bottom.
func (r *Registry) Match(text string) (Action, bool) {
	phrase := strings.ToLower(strings.TrimSpace(text))
	if a, ok := r.exact[phrase]; ok {
		return a, true
	}
	for _, rule := range r.heuristics {
		if containsAll(phrase, rule.Contains) {
			return rule.Action, true
		}
	}
	return Action{}, false
}

func containsAll(phrase string, subs []string) bool {
	for _, s := range subs {
		if !strings.Contains(phrase, s) {
			return false
		}
	}
	return true
}

// Default returns the stock console command set.
func Default() *Registry {
	return New([]Rule{
		{Exact: "open youtube", Action: Action{Kind: OpenURL, Target: "https://youtube.com"}},
		{Exact: "open google", Action: Action{Kind: OpenURL, Target: "https://google.com"}},
		{Exact: "open github", Action: Action{Kind: OpenURL, Target: "https://github.com"}},
		{Exact: "open arduino ide", Action: Action{Kind: LaunchApp, Target: "arduino"}},
		{Exact: "open code", Action: Action{Kind: LaunchApp, Target: "code"}},
		{Exact: "open vs code", Action: Action{Kind: LaunchApp, Target: "code"}},
		{Exact: "start screen recording", Action: Action{Kind: StartRecording}},
		{Exact: "stop recording", Action: Action{Kind: StopRecording}},
		{Exact: "shutdown pc", Action: Action{Kind: Shutdown}},
		{Exact: "restart pc", Action: Action{Kind: Restart}},
		{Exact: "lock pc", Action: Action{Kind: Lock}},

		// Fallback heuristics, evaluated in this order.
		{Contains: []string{"open", "youtube"}, Action: Action{Kind: OpenURL, Target: "https://youtube.com"}},
		{Contains: []string{"open", "github"}, Action: Action{Kind: OpenURL, Target: "https://github.com"}},
		{Contains: []string{"open", "google"}, Action: Action{Kind: OpenURL, Target: "https://google.com"}},
		{Contains: []string{"start", "record"}, Action: Action{Kind: StartRecording}},
		{Contains: []string{"stop", "record"}, Action: Action{Kind: StopRecording}},
		{Contains: []string{"shutdown"}, Action: Action{Kind: Shutdown}},
	})
}
