package server

import (
	"context"
	"errors"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/csvdeck/csvdeck-api/internal/engine"
	"github.com/rs/zerolog/log"
)

//go:generate mockgen -destination=./server_mock.go -package=server -source=server.go

const (
	serverName = "CSVDeck http server"

	defaultMaxUploadBytes = 32 << 20 // 32 MiB
	defaultPageLimit      = 100
	shutdownTimeout       = 5 * time.Second
)

// dataset is the slice of the engine the server needs.
type dataset interface {
	Load(filename string, r io.Reader) (*engine.LoadResult, error)
	Records(filters map[string]string, skip, limit int) (*engine.ResultSet, error)
	Search(term string, skip, limit int) (*engine.ResultSet, error)
}

// httpServer abstracts *http.Server so the lifecycle can be tested without
// binding a socket.
type httpServer interface {
	Addr() string
	ListenAndServe() error
	Shutdown(ctx context.Context) error
}

// stdServer adapts *http.Server, whose Addr is a field, to the httpServer
// interface.
type stdServer struct {
	*http.Server
}

func (s *stdServer) Addr() string {
	return s.Server.Addr
}

// Server implements the app.Dependency interface for the HTTP API.
type Server struct {
	address string
	port    int
	server  httpServer

	dataset          dataset
	maxUploadBytes   int64
	defaultPageLimit int
}

type Config struct {
	Address string
	Port    int
	Dataset dataset

	// MaxUploadBytes bounds how much of a multipart upload is held in memory.
	MaxUploadBytes int64
	// DefaultPageLimit applies when a query omits the limit parameter.
	DefaultPageLimit int
}

func (c *Config) validate() error {
	var errGrp []error

	if c.Address == "" {
		errGrp = append(errGrp, errors.New("address is required"))
	}
	if c.Port < 1 || c.Port > 65535 {
		errGrp = append(errGrp, errors.New("port must be between 1 and 65535"))
	}
	if c.Dataset == nil {
		errGrp = append(errGrp, errors.New("dataset is required"))
	}

	return errors.Join(errGrp...)
}

// New returns a new CSVDeck HTTP server serving the upload and query
// endpoints over the given dataset engine.
func New(cfg *Config) (*Server, error) {
	if err := cfg.validate(); err != nil {
		return nil, err
	}

	maxUpload := cfg.MaxUploadBytes
	if maxUpload <= 0 {
		maxUpload = defaultMaxUploadBytes
	}
	pageLimit := cfg.DefaultPageLimit
	if pageLimit <= 0 {
		pageLimit = defaultPageLimit
	}

	s := &Server{
		address:          cfg.Address,
		port:             cfg.Port,
		dataset:          cfg.Dataset,
		maxUploadBytes:   maxUpload,
		defaultPageLimit: pageLimit,
	}

	s.server = &stdServer{
		Server: &http.Server{
			Addr:              fmt.Sprintf("%s:%d", cfg.Address, cfg.Port),
			Handler:           s.routes(),
			ReadHeaderTimeout: 10 * time.Second,
		},
	}

	return s, nil
}

func (s *Server) Start() error {
	log.Info().Msgf("http server listening at %s", s.server.Addr())

	errCh := make(chan error, 1)

	// Serve in a goroutine so Start can report an immediate bind failure
	// without blocking the app runner.
	go func() {
		if err := s.server.ListenAndServe(); err != nil {
			errCh <- err
			log.Error().Err(err).Msg("http server failed")
			return
		}
		errCh <- nil
	}()

	// Block briefly for error or nil return
	select {
	case err := <-errCh:
		return err
	case <-time.After(500 * time.Millisecond):
		// Assume server started successfully
		return nil
	}
}

// Stop drains in-flight requests and shuts the listener down.
func (s *Server) Stop() error {
	log.Info().Msg("Stopping http server")

	ctx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()

	if err := s.server.Shutdown(ctx); err != nil {
		return fmt.Errorf("http server shutdown: %w", err)
	}
	return nil
}

// Name returns the name of the server.
func (s *Server) Name() string {
	return serverName
}
