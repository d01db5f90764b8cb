package server

import (
	"encoding/json"
	"errors"
	"fmt"
	"log"
	"net/http"
	"sort"
	"strconv"

	"github.com/voxelforge/buildgen/pkg/building"
	"github.com/voxelforge/buildgen/pkg/protocol"
	"github.com/voxelforge/buildgen/pkg/store"
)

// resolveSpec turns a request into a concrete spec. An explicit spec
// wins over a preset name; with neither, the cottage preset applies.
func (s *Server) resolveSpec(req protocol.GenerateRequest) (building.Spec, error) {
	if req.Spec != nil {
		return *req.Spec, nil
	}
	name := req.Preset
	if name == "" {
		name = "cottage"
	}
	spec, ok := s.presets[name]
	if !ok {
		return building.Spec{}, fmt.Errorf("%w: %s", errUnknownPreset, name)
	}
	return spec, nil
}

var errUnknownPreset = errors.New("unknown preset")

func (s *Server) handleGenerate(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		writeError(w, http.StatusMethodNotAllowed, protocol.ErrBadRequest, "POST required")
		return
	}

	var req protocol.GenerateRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, protocol.ErrBadRequest, fmt.Sprintf("decode request: %v", err))
		return
	}

	spec, err := s.resolveSpec(req)
	if err != nil {
		writeError(w, http.StatusBadRequest, protocol.ErrUnknownPreset, err.Error())
		return
	}

	seed := s.pickSeed(req.Seed)
	b, err := building.Generate(spec, seed)
	if err != nil {
		if errors.Is(err, building.ErrInvalidSpec) {
			writeError(w, http.StatusBadRequest, protocol.ErrBadSpec, err.Error())
			return
		}
		writeError(w, http.StatusInternalServerError, protocol.ErrInternal, err.Error())
		return
	}
	s.record(b)

	writeJSON(w, http.StatusOK, protocol.BuildingResponse{
		Seed:     b.Seed,
		Spec:     b.Spec,
		Elements: b.Elements,
		Palette:  b.Palette,
	})
}

func (s *Server) handlePresets(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		writeError(w, http.StatusMethodNotAllowed, protocol.ErrBadRequest, "GET required")
		return
	}
	names := make([]string, 0, len(s.presets))
	for name := range s.presets {
		names = append(names, name)
	}
	sort.Strings(names)

	out := make(map[string]building.Spec, len(s.presets))
	for _, name := range names {
		out[name] = s.presets[name]
	}
	writeJSON(w, http.StatusOK, struct {
		Names   []string                 `json:"names"`
		Presets map[string]building.Spec `json:"presets"`
	}{Names: names, Presets: out})
}

func (s *Server) handleRecent(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		writeError(w, http.StatusMethodNotAllowed, protocol.ErrBadRequest, "GET required")
		return
	}
	if s.index == nil {
		writeError(w, http.StatusNotFound, protocol.ErrBadRequest, "run index disabled")
		return
	}

	limit := 20
	if v := r.URL.Query().Get("limit"); v != "" {
		n, err := strconv.Atoi(v)
		if err != nil || n <= 0 {
			writeError(w, http.StatusBadRequest, protocol.ErrBadRequest, "limit must be a positive integer")
			return
		}
		limit = n
	}

	runs, err := s.index.Recent(limit)
	if err != nil {
		writeError(w, http.StatusInternalServerError, protocol.ErrInternal, err.Error())
		return
	}
	if runs == nil {
		runs = []store.Run{}
	}
	writeJSON(w, http.StatusOK, struct {
		Runs []store.Run `json:"runs"`
	}{Runs: runs})
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		log.Printf("Write response: %v", err)
	}
}

func writeError(w http.ResponseWriter, status int, code, message string) {
	writeJSON(w, status, protocol.ErrorMsg{
		Type:    protocol.TypeError,
		Code:    code,
		Message: message,
	})
}
