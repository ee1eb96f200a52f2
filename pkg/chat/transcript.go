package chat

import "strings"

// transcriptSeparator divides entries in the plain-text transcript.
const transcriptSeparator = "\n\n------------------------------------------------\n\n"

// Transcript renders the conversation as a plain-text log suitable for
// saving to a file. Media payloads are marked, not inlined; grounding
// citations are listed by URI.
func Transcript(turns []*Turn) string {
	entries := make([]string, 0, len(turns))
	for _, t := range turns {
		var sb strings.Builder
		sb.WriteString("[")
		sb.WriteString(t.Timestamp.Format("2006-01-02 15:04:05"))
		sb.WriteString("] ")
		sb.WriteString(string(t.Sender))
		sb.WriteString(":\n")
		sb.WriteString(t.Text)
		sb.WriteString("\n")
		if t.ImageURL != "" {
			sb.WriteString("[ATTACHED_IMAGE]")
		}
		if t.VideoURL != "" {
			sb.WriteString("[ATTACHED_VIDEO]")
		}
		if len(t.WebSources) > 0 {
			uris := make([]string, len(t.WebSources))
			for i, s := range t.WebSources {
				uris[i] = s.URI
			}
			sb.WriteString("\n[SOURCES: ")
			sb.WriteString(strings.Join(uris, ", "))
			sb.WriteString("]")
		}
		entries = append(entries, sb.String())
	}
	return strings.Join(entries, transcriptSeparator)
}
