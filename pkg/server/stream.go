package server

import (
	"errors"
	"log"
	"net/http"
	"time"

	"github.com/gorilla/websocket"

	"github.com/voxelforge/buildgen/pkg/building"
	"github.com/voxelforge/buildgen/pkg/protocol"
)

const writeTimeout = 5 * time.Second

// handleStream upgrades the connection, reads one GenerateRequest and
// streams the building piece by piece: ELEMENT messages, then PALETTE,
// then DONE. Failures close the stream with a single ERROR message.
func (s *Server) handleStream(w http.ResponseWriter, r *http.Request) {
	conn, err := s.upgrader.Upgrade(w, r, nil)
	if err != nil {
		return
	}
	defer conn.Close()

	_ = conn.SetReadDeadline(time.Now().Add(30 * time.Second))
	var req protocol.GenerateRequest
	if err := conn.ReadJSON(&req); err != nil {
		streamError(conn, protocol.ErrBadRequest, "decode request: "+err.Error())
		return
	}

	spec, err := s.resolveSpec(req)
	if err != nil {
		streamError(conn, protocol.ErrUnknownPreset, err.Error())
		return
	}

	seed := s.pickSeed(req.Seed)
	count := 0
	emit := func(e building.PlacedElement) error {
		count++
		return writeStream(conn, protocol.ElementMsg{Type: protocol.TypeElement, Element: e})
	}

	palette, err := building.GenerateStream(spec, seed, emit)
	if err != nil {
		if errors.Is(err, building.ErrInvalidSpec) {
			streamError(conn, protocol.ErrBadSpec, err.Error())
			return
		}
		// Emit failures mean the peer is gone; nothing left to say.
		log.Printf("Stream generate: %v", err)
		return
	}

	if err := writeStream(conn, protocol.PaletteMsg{Type: protocol.TypePalette, Palette: palette}); err != nil {
		return
	}
	_ = writeStream(conn, protocol.DoneMsg{Type: protocol.TypeDone, Seed: seed, Elements: count})
}

func writeStream(conn *websocket.Conn, v any) error {
	_ = conn.SetWriteDeadline(time.Now().Add(writeTimeout))
	return conn.WriteJSON(v)
}

func streamError(conn *websocket.Conn, code, message string) {
	_ = writeStream(conn, protocol.ErrorMsg{
		Type:    protocol.TypeError,
		Code:    code,
		Message: message,
	})
}
