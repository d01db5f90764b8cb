// Package protocol defines the wire contract between the generator and
// rendering collaborators: request/response types for one-shot generation
// and the message envelopes used on the streaming endpoint.
package protocol

import "github.com/voxelforge/buildgen/pkg/building"

// Version is the wire protocol version.
const Version = "1.0"

// Streaming message type tags.
const (
	TypeElement = "ELEMENT"
	TypePalette = "PALETTE"
	TypeDone    = "DONE"
	TypeError   = "ERROR"
)

// GenerateRequest asks for one building. Either a preset name or a full
// spec may be given; spec wins when both are present. A zero seed asks
// the server to pick one.
type GenerateRequest struct {
	Seed   int64          `json:"seed,omitempty"`
	Preset string         `json:"preset,omitempty"`
	Spec   *building.Spec `json:"spec,omitempty"`
}

// BuildingResponse is the one-shot result: the resolved spec and seed
// plus everything the collaborator needs to place and color the pieces.
type BuildingResponse struct {
	Seed     int64                    `json:"seed"`
	Spec     building.Spec            `json:"spec"`
	Elements []building.PlacedElement `json:"elements"`
	Palette  building.Palette         `json:"palette"`
}

// ElementMsg carries one placed element on the stream.
type ElementMsg struct {
	Type    string                 `json:"type"`
	Element building.PlacedElement `json:"element"`
}

// PaletteMsg carries the palette, sent once after all elements.
type PaletteMsg struct {
	Type    string           `json:"type"`
	Palette building.Palette `json:"palette"`
}

// DoneMsg closes a successful stream.
type DoneMsg struct {
	Type     string `json:"type"`
	Seed     int64  `json:"seed"`
	Elements int    `json:"elements"`
}

// ErrorMsg reports a failure on either surface.
type ErrorMsg struct {
	Type    string `json:"type"`
	Code    string `json:"code"`
	Message string `json:"message"`
}
