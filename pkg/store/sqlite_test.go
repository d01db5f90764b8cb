package store

import (
	"path/filepath"
	"testing"

	"github.com/voxelforge/buildgen/pkg/building"
	"github.com/voxelforge/buildgen/pkg/noise"
)

func openTestIndex(t *testing.T) *Index {
	t.Helper()
	ix, err := Open(filepath.Join(t.TempDir(), "runs.db"))
	if err != nil {
		t.Fatalf("open: %v", err)
	}
	t.Cleanup(func() { _ = ix.Close() })
	return ix
}

func generateTestBuilding(t *testing.T, seed int64) *building.Building {
	t.Helper()
	b, err := building.Generate(building.Spec{
		Width: 5, Height: 3, Depth: 5,
		Noise:          noise.Params{Amplitude: 2, Frequency: 0.12, Octaves: 2, Persistence: 0.5},
		HeightDampener: 3,
		WindowChance:   0.4,
		DoorChance:     0.3,
	}, seed)
	if err != nil {
		t.Fatalf("generate: %v", err)
	}
	return b
}

func TestRecordAndRecent(t *testing.T) {
	ix := openTestIndex(t)

	for seed := int64(1); seed <= 3; seed++ {
		run, err := NewRun(generateTestBuilding(t, seed))
		if err != nil {
			t.Fatalf("new run: %v", err)
		}
		if _, err := ix.Record(run); err != nil {
			t.Fatalf("record: %v", err)
		}
	}

	runs, err := ix.Recent(10)
	if err != nil {
		t.Fatalf("recent: %v", err)
	}
	if len(runs) != 3 {
		t.Fatalf("recent returned %d runs, want 3", len(runs))
	}
	// Newest first.
	if runs[0].Seed != 3 || runs[2].Seed != 1 {
		t.Errorf("run order = %d, %d, %d; want 3, 2, 1", runs[0].Seed, runs[1].Seed, runs[2].Seed)
	}
	if runs[0].Elements == 0 {
		t.Error("recorded run has zero elements")
	}
	if runs[0].SpecJSON == "" || runs[0].Palette == "" {
		t.Error("spec or palette JSON not recorded")
	}
}

func TestRecentLimit(t *testing.T) {
	ix := openTestIndex(t)
	for seed := int64(1); seed <= 5; seed++ {
		run, err := NewRun(generateTestBuilding(t, seed))
		if err != nil {
			t.Fatal(err)
		}
		if _, err := ix.Record(run); err != nil {
			t.Fatal(err)
		}
	}
	runs, err := ix.Recent(2)
	if err != nil {
		t.Fatalf("recent: %v", err)
	}
	if len(runs) != 2 {
		t.Errorf("recent(2) returned %d runs", len(runs))
	}
}

func TestNewRunCounts(t *testing.T) {
	b := generateTestBuilding(t, 42)
	run, err := NewRun(b)
	if err != nil {
		t.Fatalf("new run: %v", err)
	}
	total := run.Floors + run.Roofs + run.Walls + run.Pillars
	if total != run.Elements {
		t.Errorf("category counts sum to %d, want %d", total, run.Elements)
	}
	if run.Elements != len(b.Elements) {
		t.Errorf("run.Elements = %d, want %d", run.Elements, len(b.Elements))
	}
}

func TestOpenRejectsEmptyPath(t *testing.T) {
	if _, err := Open(""); err == nil {
		t.Error("empty path accepted")
	}
}
