package media

import (
	"encoding/base64"
	"fmt"
	"strings"
)

// DataURI builds a self-contained data URI from raw bytes.
func DataURI(mimeType string, data []byte) string {
	return "data:" + mimeType + ";base64," + base64.StdEncoding.EncodeToString(data)
}

// EncodeBlob returns the base64 payload for raw bytes.
func EncodeBlob(data []byte) string {
	return base64.StdEncoding.EncodeToString(data)
}

// DecodeBlob decodes a base64 payload back into raw bytes. A data-URI
// prefix ("data:<mime>;base64,"), if present, is stripped first.
func DecodeBlob(s string) ([]byte, error) {
	s = StripDataURI(s)
	data, err := base64.StdEncoding.DecodeString(s)
	if err != nil {
		return nil, fmt.Errorf("decode base64 blob: %w", err)
	}
	return data, nil
}

// StripDataURI removes a data-URI prefix, returning the bare base64
// payload. Strings without a prefix are returned unchanged.
func StripDataURI(s string) string {
	if !strings.HasPrefix(s, "data:") {
		return s
	}
	if i := strings.IndexByte(s, ','); i >= 0 {
		return s[i+1:]
	}
	return s
}

// DataURIMIMEType extracts the MIME type from a data URI, or "" if the
// string is not a data URI.
func DataURIMIMEType(s string) string {
	if !strings.HasPrefix(s, "data:") {
		return ""
	}
	rest := s[len("data:"):]
	end := strings.IndexAny(rest, ";,")
	if end < 0 {
		return ""
	}
	return rest[:end]
}
