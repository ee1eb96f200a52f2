package media

import (
	"encoding/binary"
	"fmt"
	"time"
)

// SpeechSampleRate is the sample rate of synthesized speech payloads.
const SpeechSampleRate = 24000

// SpeechChannels is the channel count of synthesized speech payloads.
const SpeechChannels = 1

// Buffer is a single-channel audio buffer of normalized samples, ready
// for playback.
type Buffer struct {
	// SampleRate is the playback rate in Hz.
	SampleRate int

	// Channels is the number of interleaved channels.
	Channels int

	// Samples holds the decoded samples, normalized to [-1, 1].
	Samples []float32
}

// Duration returns the playback duration of the buffer.
func (b *Buffer) Duration() time.Duration {
	if b.SampleRate == 0 || b.Channels == 0 {
		return 0
	}
	frames := len(b.Samples) / b.Channels
	return time.Duration(frames) * time.Second / time.Duration(b.SampleRate)
}

// DecodePCM16 reinterprets raw bytes as 16-bit little-endian signed
// samples and normalizes each sample to the [-1, 1] range.
func DecodePCM16(data []byte) ([]float32, error) {
	if len(data)%2 != 0 {
		return nil, fmt.Errorf("pcm16 payload has odd length %d", len(data))
	}
	samples := make([]float32, len(data)/2)
	for i := range samples {
		s := int16(binary.LittleEndian.Uint16(data[i*2:]))
		samples[i] = float32(s) / 32768.0
	}
	return samples, nil
}

// DecodeSpeech decodes a base64 speech payload into a playable buffer.
// The decode is fully synchronous: the returned buffer holds the whole
// payload, there is no partial or streamed form.
func DecodeSpeech(base64Data string) (*Buffer, error) {
	raw, err := DecodeBlob(base64Data)
	if err != nil {
		return nil, err
	}
	samples, err := DecodePCM16(raw)
	if err != nil {
		return nil, err
	}
	return &Buffer{
		SampleRate: SpeechSampleRate,
		Channels:   SpeechChannels,
		Samples:    samples,
	}, nil
}
