// Package server exposes the building generator over HTTP and a
// WebSocket streaming endpoint for rendering collaborators.
package server

import (
	"context"
	"fmt"
	"log"
	"math/rand"
	"net"
	"net/http"
	"sync"
	"time"

	"github.com/gorilla/websocket"

	"github.com/voxelforge/buildgen/pkg/building"
	"github.com/voxelforge/buildgen/pkg/preset"
	"github.com/voxelforge/buildgen/pkg/store"
)

// Config holds server configuration.
type Config struct {
	Address    string
	StorePath  string
	PresetPath string
}

// DefaultConfig returns a default server configuration.
func DefaultConfig() Config {
	return Config{
		Address:   ":8420",
		StorePath: "data/runs.db",
	}
}

// Server serves generation requests.
type Server struct {
	config   Config
	presets  map[string]building.Spec
	index    *store.Index
	listener net.Listener
	httpSrv  *http.Server
	upgrader websocket.Upgrader
	rng      *rand.Rand
	mu       sync.Mutex
	stopCh   chan struct{}
	stopOnce sync.Once
}

// New creates a new server with the given configuration.
func New(config Config) (*Server, error) {
	presets, err := preset.Load(config.PresetPath)
	if err != nil {
		return nil, fmt.Errorf("load presets: %w", err)
	}

	var index *store.Index
	if config.StorePath != "" {
		index, err = store.Open(config.StorePath)
		if err != nil {
			return nil, fmt.Errorf("open run index: %w", err)
		}
	}

	s := &Server{
		config:  config,
		presets: presets,
		index:   index,
		upgrader: websocket.Upgrader{
			ReadBufferSize:  64 * 1024,
			WriteBufferSize: 64 * 1024,
			CheckOrigin:     func(r *http.Request) bool { return true },
		},
		rng:    rand.New(rand.NewSource(time.Now().UnixNano())),
		stopCh: make(chan struct{}),
	}

	mux := http.NewServeMux()
	mux.HandleFunc("/v1/building", s.handleGenerate)
	mux.HandleFunc("/v1/presets", s.handlePresets)
	mux.HandleFunc("/v1/buildings", s.handleRecent)
	mux.HandleFunc("/v1/stream", s.handleStream)
	s.httpSrv = &http.Server{
		Handler:           mux,
		ReadHeaderTimeout: 10 * time.Second,
	}
	return s, nil
}

// Handler returns the HTTP handler, exposed for tests.
func (s *Server) Handler() http.Handler {
	return s.httpSrv.Handler
}

// Start begins listening for connections.
func (s *Server) Start() error {
	var err error
	s.listener, err = net.Listen("tcp", s.config.Address)
	if err != nil {
		return fmt.Errorf("failed to listen on %s: %w", s.config.Address, err)
	}
	log.Printf("Server listening on %s", s.listener.Addr())

	go func() {
		if err := s.httpSrv.Serve(s.listener); err != nil && err != http.ErrServerClosed {
			log.Printf("Serve: %v", err)
		}
	}()
	return nil
}

// Stop gracefully shuts down the server.
func (s *Server) Stop() {
	s.stopOnce.Do(func() { close(s.stopCh) })

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := s.httpSrv.Shutdown(ctx); err != nil {
		log.Printf("Shutdown: %v", err)
	}
	if s.index != nil {
		if err := s.index.Close(); err != nil {
			log.Printf("Close run index: %v", err)
		}
	}
}

// StopChan is closed when the server initiates shutdown itself.
func (s *Server) StopChan() <-chan struct{} {
	return s.stopCh
}

// pickSeed returns the request seed, or a fresh one when the request
// leaves it zero.
func (s *Server) pickSeed(seed int64) int64 {
	if seed != 0 {
		return seed
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.rng.Int63()
}

func (s *Server) record(b *building.Building) {
	if s.index == nil {
		return
	}
	run, err := store.NewRun(b)
	if err != nil {
		log.Printf("Summarize run: %v", err)
		return
	}
	if _, err := s.index.Record(run); err != nil {
		log.Printf("Record run: %v", err)
	}
}
