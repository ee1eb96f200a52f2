// Package media provides codec helpers for the payloads that cross the
// chat boundary: base64 blobs, data URIs, and raw PCM speech audio.
//
// All media in a conversation is self-contained. Attachments and
// generated images/videos travel as data URIs, and synthesized speech
// travels as base64-encoded 16-bit little-endian mono PCM at 24 kHz.
// This package converts between those representations and playable
// sample buffers.
package media
