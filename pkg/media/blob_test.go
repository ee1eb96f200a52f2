package media

import (
	"bytes"
	"testing"
)

func TestBlobRoundTrip(t *testing.T) {
	original := []byte{0x00, 0x01, 0xfe, 0xff, 0x7f, 0x80, 0x42}

	encoded := EncodeBlob(original)
	decoded, err := DecodeBlob(encoded)
	if err != nil {
		t.Fatalf("DecodeBlob: %v", err)
	}
	if !bytes.Equal(decoded, original) {
		t.Errorf("round trip mismatch: got %v, want %v", decoded, original)
	}
}

func TestDecodeBlob_StripsDataURI(t *testing.T) {
	original := []byte("hello shrovate")
	uri := DataURI("text/plain", original)

	decoded, err := DecodeBlob(uri)
	if err != nil {
		t.Fatalf("DecodeBlob: %v", err)
	}
	if !bytes.Equal(decoded, original) {
		t.Errorf("got %q, want %q", decoded, original)
	}
}

func TestDecodeBlob_Invalid(t *testing.T) {
	if _, err := DecodeBlob("!!not base64!!"); err == nil {
		t.Error("expected error for invalid base64")
	}
}

func TestDataURI(t *testing.T) {
	uri := DataURI("image/png", []byte{1, 2, 3})
	want := "data:image/png;base64,AQID"
	if uri != want {
		t.Errorf("DataURI = %q, want %q", uri, want)
	}
}

func TestStripDataURI(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"data:image/png;base64,AQID", "AQID"},
		{"AQID", "AQID"},
		{"data:bare", "data:bare"},
		{"", ""},
	}
	for _, tt := range tests {
		if got := StripDataURI(tt.in); got != tt.want {
			t.Errorf("StripDataURI(%q) = %q, want %q", tt.in, got, tt.want)
		}
	}
}

func TestDataURIMIMEType(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"data:image/png;base64,AQID", "image/png"},
		{"data:video/mp4,xyz", "video/mp4"},
		{"AQID", ""},
		{"data:noterminator", ""},
	}
	for _, tt := range tests {
		if got := DataURIMIMEType(tt.in); got != tt.want {
			t.Errorf("DataURIMIMEType(%q) = %q, want %q", tt.in, got, tt.want)
		}
	}
}
