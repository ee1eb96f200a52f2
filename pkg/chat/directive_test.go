package chat

import "testing"

func TestParseDirective(t *testing.T) {
	tests := []struct {
		name       string
		in         string
		wantClean  string
		wantKind   DirectiveKind
		wantPrompt string
	}{
		{
			name:      "no directive",
			in:        "Just a plain answer.",
			wantClean: "Just a plain answer.",
			wantKind:  DirectiveNone,
		},
		{
			name:       "image directive stripped",
			in:         "Here is the idea. [GENERATE_IMAGE: a resonant circuit]",
			wantClean:  "Here is the idea.",
			wantKind:   DirectiveImage,
			wantPrompt: "a resonant circuit",
		},
		{
			name:       "video directive stripped",
			in:         "Rolling the cameras. [GENERATE_VIDEO: a rocket launch]",
			wantClean:  "Rolling the cameras.",
			wantKind:   DirectiveVideo,
			wantPrompt: "a rocket launch",
		},
		{
			name:       "video wins over image",
			in:         "A [GENERATE_IMAGE: sketch] B [GENERATE_VIDEO: clip] C",
			wantClean:  "A [GENERATE_IMAGE: sketch] B  C",
			wantKind:   DirectiveVideo,
			wantPrompt: "clip",
		},
		{
			name:       "only first occurrence stripped",
			in:         "[GENERATE_IMAGE: one] and [GENERATE_IMAGE: two]",
			wantClean:  "and [GENERATE_IMAGE: two]",
			wantKind:   DirectiveImage,
			wantPrompt: "one",
		},
		{
			name:       "non-greedy capture stops at first bracket",
			in:         "[GENERATE_IMAGE: a] tail]",
			wantClean:  "tail]",
			wantKind:   DirectiveImage,
			wantPrompt: "a",
		},
		{
			name:       "empty prompt",
			in:         "text [GENERATE_IMAGE:]",
			wantClean:  "text",
			wantKind:   DirectiveImage,
			wantPrompt: "",
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			clean, d := ParseDirective(tt.in)
			if clean != tt.wantClean {
				t.Errorf("clean = %q, want %q", clean, tt.wantClean)
			}
			if d.Kind != tt.wantKind {
				t.Errorf("kind = %v, want %v", d.Kind, tt.wantKind)
			}
			if d.Prompt != tt.wantPrompt {
				t.Errorf("prompt = %q, want %q", d.Prompt, tt.wantPrompt)
			}
		})
	}
}
