package voicecmd

import "testing"

func TestDefaultExactMatches(t *testing.T) {
	r := Default()
	tests := []struct {
		phrase string
		want   Action
	}{
		{"open youtube", Action{Kind: OpenURL, Target: "https://youtube.com"}},
		{"Open Google", Action{Kind: OpenURL, Target: "https://google.com"}},
		{"  open github  ", Action{Kind: OpenURL, Target: "https://github.com"}},
		{"open arduino ide", Action{Kind: LaunchApp, Target: "arduino"}},
		{"open code", Action{Kind: LaunchApp, Target: "code"}},
		{"open vs code", Action{Kind: LaunchApp, Target: "code"}},
		{"start screen recording", Action{Kind: StartRecording}},
		{"stop recording", Action{Kind: StopRecording}},
		{"SHUTDOWN PC", Action{Kind: Shutdown}},
		{"restart pc", Action{Kind: Restart}},
		{"lock pc", Action{Kind: Lock}},
	}
	for _, tt := range tests {
		got, ok := r.Match(tt.phrase)
		if !ok {
			t.Errorf("Match(%q): no match", tt.phrase)
			continue
		}
		if got != tt.want {
			t.Errorf("Match(%q) = %+v, want %+v", tt.phrase, got, tt.want)
		}
	}
}

func TestDefaultHeuristics(t *testing.T) {
	r := Default()
	tests := []struct {
		phrase string
		want   Action
	}{
		{"please open youtube for me", Action{Kind: OpenURL, Target: "https://youtube.com"}},
		{"can you open github now", Action{Kind: OpenURL, Target: "https://github.com"}},
		{"open a google search", Action{Kind: OpenURL, Target: "https://google.com"}},
		{"start a screen record", Action{Kind: StartRecording}},
		{"stop the record", Action{Kind: StopRecording}},
		{"shutdown everything", Action{Kind: Shutdown}},
	}
	for _, tt := range tests {
		got, ok := r.Match(tt.phrase)
		if !ok {
			t.Errorf("Match(%q): no match", tt.phrase)
			continue
		}
		if got != tt.want {
			t.Errorf("Match(%q) = %+v, want %+v", tt.phrase, got, tt.want)
		}
	}
}

func TestHeuristicOrder(t *testing.T) {
	// "open youtube and github" hits both URL heuristics; the earlier
	// rule must win.
	got, ok := Default().Match("open youtube and github")
	if !ok {
		t.Fatal("no match")
	}
	if got.Target != "https://youtube.com" {
		t.Errorf("target = %q, want youtube", got.Target)
	}
}

func TestNoMatch(t *testing.T) {
	r := Default()
	for _, phrase := range []string{"", "what time is it", "open sesame"} {
		if a, ok := r.Match(phrase); ok {
			t.Errorf("Match(%q) = %+v, want no match", phrase, a)
		}
	}
}

func TestCustomRegistry(t *testing.T) {
	r := New([]Rule{
		{Exact: "ping", Action: Action{Kind: OpenURL, Target: "https://example.com"}},
		{Contains: []string{"lock"}, Action: Action{Kind: Lock}},
		{}, // empty rule is ignored
	})
	if a, ok := r.Match("PING"); !ok || a.Target != "https://example.com" {
		t.Errorf("exact rule: (%+v, %v)", a, ok)
	}
	if a, ok := r.Match("please lock it"); !ok || a.Kind != Lock {
		t.Errorf("contains rule: (%+v, %v)", a, ok)
	}
}
