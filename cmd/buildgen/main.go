package main

import (
	"encoding/json"
	"flag"
	"log"
	"os"
	"os/signal"
	"strings"
	"syscall"
	"time"

	"github.com/voxelforge/buildgen/pkg/building"
	"github.com/voxelforge/buildgen/pkg/preset"
	"github.com/voxelforge/buildgen/pkg/server"
	"github.com/voxelforge/buildgen/pkg/snapshot"
	"github.com/voxelforge/buildgen/pkg/store"
)

func main() {
	serve := flag.Bool("serve", false, "Run the generation server instead of a one-shot build")
	address := flag.String("address", ":8420", "Server address to listen on")
	seed := flag.Int64("seed", 0, "Generation seed (0 = random)")
	presetName := flag.String("preset", "cottage", "Built-in or file-defined preset to generate")
	presetPath := flag.String("presets", "", "Optional YAML file with preset overrides")
	storePath := flag.String("db", "", "Optional SQLite run index path")
	out := flag.String("out", "", "Output path (.zst writes a compressed snapshot, otherwise JSON; empty = stdout)")
	flag.Parse()

	if *serve {
		runServer(*address, *storePath, *presetPath)
		return
	}
	runOnce(*seed, *presetName, *presetPath, *storePath, *out)
}

func newSeed() int64 {
	return time.Now().UnixNano()
}

func runServer(address, storePath, presetPath string) {
	srv, err := server.New(server.Config{
		Address:    address,
		StorePath:  storePath,
		PresetPath: presetPath,
	})
	if err != nil {
		log.Fatalf("Failed to create server: %v", err)
	}
	if err := srv.Start(); err != nil {
		log.Fatalf("Failed to start server: %v", err)
	}

	log.Printf("Building generator serving on %s", address)

	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)

	select {
	case sig := <-sigCh:
		log.Printf("Shutting down (received signal: %v)...", sig)
	case <-srv.StopChan():
		log.Println("Shutting down (internal)...")
	}

	srv.Stop()
	log.Println("Server stopped.")
}

func runOnce(seed int64, presetName, presetPath, storePath, out string) {
	presets, err := preset.Load(presetPath)
	if err != nil {
		log.Fatalf("Failed to load presets: %v", err)
	}
	spec, ok := presets[presetName]
	if !ok {
		log.Fatalf("Unknown preset: %s", presetName)
	}

	if seed == 0 {
		seed = newSeed()
	}

	b, err := building.Generate(spec, seed)
	if err != nil {
		log.Fatalf("Generation failed: %v", err)
	}
	log.Printf("Generated %d elements (preset %s, seed %d)", len(b.Elements), presetName, seed)

	if storePath != "" {
		recordRun(storePath, b)
	}

	switch {
	case out == "":
		enc := json.NewEncoder(os.Stdout)
		enc.SetIndent("", "  ")
		if err := enc.Encode(b); err != nil {
			log.Fatalf("Failed to write building: %v", err)
		}
	case strings.HasSuffix(out, ".zst"):
		if err := snapshot.Write(out, b); err != nil {
			log.Fatalf("Failed to write snapshot: %v", err)
		}
		log.Printf("Snapshot written to %s", out)
	default:
		data, err := json.MarshalIndent(b, "", "  ")
		if err != nil {
			log.Fatalf("Failed to encode building: %v", err)
		}
		if err := os.WriteFile(out, data, 0o644); err != nil {
			log.Fatalf("Failed to write %s: %v", out, err)
		}
		log.Printf("Building written to %s", out)
	}
}

func recordRun(storePath string, b *building.Building) {
	ix, err := store.Open(storePath)
	if err != nil {
		log.Fatalf("Failed to open run index: %v", err)
	}
	defer ix.Close()

	run, err := store.NewRun(b)
	if err != nil {
		log.Fatalf("Failed to summarize run: %v", err)
	}
	id, err := ix.Record(run)
	if err != nil {
		log.Fatalf("Failed to record run: %v", err)
	}
	log.Printf("Run recorded as #%d in %s", id, storePath)
}
