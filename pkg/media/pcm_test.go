package media

import (
	"encoding/base64"
	"encoding/binary"
	"math"
	"testing"
	"time"
)

func pcm16Bytes(samples []int16) []byte {
	out := make([]byte, len(samples)*2)
	for i, s := range samples {
		binary.LittleEndian.PutUint16(out[i*2:], uint16(s))
	}
	return out
}

func TestDecodePCM16_KnownVector(t *testing.T) {
	raw := pcm16Bytes([]int16{0, 16384, -16384, 32767})

	got, err := DecodePCM16(raw)
	if err != nil {
		t.Fatalf("DecodePCM16: %v", err)
	}

	want := []float32{0, 0.5, -0.5, 32767.0 / 32768.0}
	if len(got) != len(want) {
		t.Fatalf("got %d samples, want %d", len(got), len(want))
	}
	for i := range want {
		if math.Abs(float64(got[i]-want[i])) > 1e-6 {
			t.Errorf("sample %d = %v, want %v", i, got[i], want[i])
		}
	}
}

func TestDecodePCM16_OddLength(t *testing.T) {
	if _, err := DecodePCM16([]byte{1, 2, 3}); err == nil {
		t.Error("expected error for odd-length payload")
	}
}

func TestDecodeSpeech(t *testing.T) {
	// One second of silence at 24 kHz.
	raw := make([]byte, SpeechSampleRate*2)
	buf, err := DecodeSpeech(base64.StdEncoding.EncodeToString(raw))
	if err != nil {
		t.Fatalf("DecodeSpeech: %v", err)
	}
	if buf.SampleRate != SpeechSampleRate {
		t.Errorf("SampleRate = %d, want %d", buf.SampleRate, SpeechSampleRate)
	}
	if buf.Channels != 1 {
		t.Errorf("Channels = %d, want 1", buf.Channels)
	}
	if got := buf.Duration(); got != time.Second {
		t.Errorf("Duration = %v, want 1s", got)
	}
}

func TestDecodeSpeech_BadBase64(t *testing.T) {
	if _, err := DecodeSpeech("***"); err == nil {
		t.Error("expected error for invalid base64")
	}
}
