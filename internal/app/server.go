// Package app wires the planning API runtime and HTTP lifecycle.
package app

import (
	"context"
	"errors"
	"fmt"
	"log"
	"net"
	"net/http"
	"path/filepath"
	"strings"

	"github.com/aashu-app/aashu/internal/api/rest"
	eventservice "github.com/aashu-app/aashu/internal/events/service"
	musicservice "github.com/aashu-app/aashu/internal/music/service"
	"github.com/aashu-app/aashu/internal/platform/config"
	"github.com/aashu-app/aashu/internal/platform/httpx"
	"github.com/aashu-app/aashu/internal/platform/timeouts"
	"github.com/aashu-app/aashu/internal/storage/sqlite"
	taskservice "github.com/aashu-app/aashu/internal/tasks/service"
	timerservice "github.com/aashu-app/aashu/internal/timers/service"
)

type serverEnv struct {
	DBPath    string `env:"AASHU_DB_PATH"`
	JWTSecret string `env:"AASHU_JWT_SECRET"`
}

func loadServerEnv() serverEnv {
	var cfg serverEnv
	_ = config.ParseEnv(&cfg)
	if strings.TrimSpace(cfg.DBPath) == "" {
		cfg.DBPath = filepath.Join("data", "planner.db")
	}
	return cfg
}

// Server hosts the planning REST API and storage lifecycle.
type Server struct {
	listener   net.Listener
	httpServer *http.Server
	store      *sqlite.Store
}

// New creates a configured API server listening on the provided port.
func New(port int) (*Server, error) {
	return NewWithAddr(fmt.Sprintf(":%d", port))
}

// NewWithAddr creates a configured API server for the provided address.
func NewWithAddr(addr string) (*Server, error) {
	env := loadServerEnv()
	if strings.TrimSpace(env.JWTSecret) == "" {
		return nil, fmt.Errorf("AASHU_JWT_SECRET is required")
	}

	listener, err := net.Listen("tcp", addr)
	if err != nil {
		return nil, fmt.Errorf("listen on %s: %w", addr, err)
	}

	store, err := sqlite.Open(env.DBPath)
	if err != nil {
		_ = listener.Close()
		return nil, fmt.Errorf("open planning store: %w", err)
	}

	handler := rest.New(
		taskservice.NewService(store),
		eventservice.NewService(store),
		timerservice.NewService(store),
		musicservice.NewService(store),
		[]byte(env.JWTSecret),
	)
	mux := http.NewServeMux()
	handler.RegisterRoutes(mux)

	httpServer := &http.Server{
		Handler: httpx.Chain(mux,
			httpx.RequestID(),
			httpx.RecoverPanic(),
			httpx.Deadline(timeouts.StoreOperation),
			httpx.Trace("api"),
		),
		ReadHeaderTimeout: timeouts.ReadHeader,
	}

	return &Server{
		listener:   listener,
		httpServer: httpServer,
		store:      store,
	}, nil
}

// Addr returns the listener address for the server.
func (s *Server) Addr() string {
	if s == nil || s.listener == nil {
		return ""
	}
	return s.listener.Addr().String()
}

// Run creates and serves an API server until context cancellation.
func Run(ctx context.Context, port int) error {
	server, err := New(port)
	if err != nil {
		return err
	}
	return server.Serve(ctx)
}

// Serve starts the HTTP server until context cancellation, then shuts it
// down gracefully.
func (s *Server) Serve(ctx context.Context) error {
	if s == nil {
		return errors.New("server is nil")
	}
	if ctx == nil {
		ctx = context.Background()
	}
	defer s.Close()

	log.Printf("api server listening at %v", s.listener.Addr())
	serveErr := make(chan error, 1)
	go func() {
		serveErr <- s.httpServer.Serve(s.listener)
	}()

	select {
	case <-ctx.Done():
		shutdownCtx, cancel := context.WithTimeout(context.Background(), timeouts.Shutdown)
		defer cancel()
		if err := s.httpServer.Shutdown(shutdownCtx); err != nil {
			return fmt.Errorf("shutdown http server: %w", err)
		}
		err := <-serveErr
		if err == nil || errors.Is(err, http.ErrServerClosed) {
			return nil
		}
		return fmt.Errorf("serve http: %w", err)
	case err := <-serveErr:
		if err == nil || errors.Is(err, http.ErrServerClosed) {
			return nil
		}
		return fmt.Errorf("serve http: %w", err)
	}
}

// Close releases API server resources.
func (s *Server) Close() {
	if s == nil {
		return
	}
	if s.httpServer != nil {
		_ = s.httpServer.Close()
	}
	if s.store != nil {
		if err := s.store.Close(); err != nil {
			log.Printf("close planning store: %v", err)
		}
	}
	if s.listener != nil {
		_ = s.listener.Close()
	}
}
