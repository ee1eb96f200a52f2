package chat

import (
	"regexp"
	"strings"
)

// DirectiveKind tags an inline synthesis directive parsed from
// generated text.
type DirectiveKind int

const (
	// DirectiveNone means the text carried no directive.
	DirectiveNone DirectiveKind = iota

	// DirectiveImage requests a follow-up image synthesis.
	DirectiveImage

	// DirectiveVideo requests a follow-up video synthesis.
	DirectiveVideo
)

// Directive is the typed form of a bracketed synthesis tag. The bracket
// syntax exists only at the serialization boundary with the model's
// unstructured text channel; it is parsed exactly once, here.
type Directive struct {
	Kind   DirectiveKind
	Prompt string
}

var (
	imageTagRE = regexp.MustCompile(`\[GENERATE_IMAGE:\s*(.*?)\]`)
	videoTagRE = regexp.MustCompile(`\[GENERATE_VIDEO:\s*(.*?)\]`)
)

// ParseDirective extracts the first inline synthesis directive from
// generated text, returning the text with the matched tag stripped and
// the parsed directive. A video directive takes priority over an image
// directive when both are present. Only the first occurrence of the
// winning tag is stripped.
func ParseDirective(text string) (string, Directive) {
	if clean, prompt, ok := stripFirst(videoTagRE, text); ok {
		return clean, Directive{Kind: DirectiveVideo, Prompt: prompt}
	}
	if clean, prompt, ok := stripFirst(imageTagRE, text); ok {
		return clean, Directive{Kind: DirectiveImage, Prompt: prompt}
	}
	return text, Directive{Kind: DirectiveNone}
}

func stripFirst(re *regexp.Regexp, text string) (clean, prompt string, ok bool) {
	loc := re.FindStringSubmatchIndex(text)
	if loc == nil {
		return "", "", false
	}
	prompt = text[loc[2]:loc[3]]
	clean = strings.TrimSpace(text[:loc[0]] + text[loc[1]:])
	return clean, prompt, true
}
