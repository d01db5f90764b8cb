// Package snapshot writes generated buildings to zstd-compressed JSON
// files so a rendering collaborator can consume a run offline.
package snapshot

import (
	"bufio"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"github.com/klauspost/compress/zstd"

	"github.com/voxelforge/buildgen/pkg/building"
)

// FormatVersion is bumped on incompatible snapshot layout changes.
const FormatVersion = 1

// Header identifies a snapshot file.
type Header struct {
	Version int   `json:"version"`
	Seed    int64 `json:"seed"`
}

// SnapshotV1 is the on-disk layout.
type SnapshotV1 struct {
	Header   Header             `json:"header"`
	Building *building.Building `json:"building"`
}

// Write stores the building at path, creating parent directories as
// needed.
func Write(path string, b *building.Building) error {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return err
	}

	f, err := os.Create(path)
	if err != nil {
		return err
	}
	defer f.Close()

	bw := bufio.NewWriter(f)
	zw, err := zstd.NewWriter(bw)
	if err != nil {
		return err
	}

	snap := SnapshotV1{
		Header:   Header{Version: FormatVersion, Seed: b.Seed},
		Building: b,
	}
	if err := json.NewEncoder(zw).Encode(&snap); err != nil {
		_ = zw.Close()
		return err
	}
	if err := zw.Close(); err != nil {
		return err
	}
	if err := bw.Flush(); err != nil {
		return err
	}
	return f.Sync()
}

// Read loads a building snapshot from path.
func Read(path string) (*building.Building, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	zr, err := zstd.NewReader(bufio.NewReader(f))
	if err != nil {
		return nil, err
	}
	defer zr.Close()

	var snap SnapshotV1
	if err := json.NewDecoder(zr).Decode(&snap); err != nil {
		return nil, fmt.Errorf("snapshot %s: %w", path, err)
	}
	if snap.Header.Version != FormatVersion {
		return nil, fmt.Errorf("snapshot %s: unsupported version %d", path, snap.Header.Version)
	}
	if snap.Building == nil {
		return nil, fmt.Errorf("snapshot %s: missing building", path)
	}
	return snap.Building, nil
}
