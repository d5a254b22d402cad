// Package sshserve answers pathfinding runs over SSH via Wish.
//
// Each session runs once and prints the result line:
//
//	ssh -p 23235 host               # default grid size
//	ssh -p 23235 host 20 30         # 20x30 grid
//	ssh -p 23235 host 20 30 1234    # 20x30 grid, seed 1234
//	ssh -p 23235 host level wall-gap
package sshserve

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/signal"
	"path/filepath"
	"syscall"
	"time"

	"github.com/charmbracelet/log"
	"github.com/charmbracelet/ssh"
	"github.com/charmbracelet/wish"

	"github.com/vovakirdan/pathgrid/internal/app"
	"github.com/vovakirdan/pathgrid/internal/levels"
)

// Config holds configuration for the SSH server.
type Config struct {
	// Address is the host:port to listen on (e.g., ":23235").
	Address string

	// HostKeyPath is the path to the host key file.
	// If empty, a key will be auto-generated at ~/.pathgrid/host_key.
	HostKeyPath string

	// IdleTimeout is how long to wait before closing idle connections.
	IdleTimeout time.Duration

	// DefaultRows and DefaultCols size grids when the session gives none.
	DefaultRows int
	DefaultCols int
}

// Server wraps a Wish SSH server.
type Server struct {
	config Config
	server *ssh.Server
	runner *app.Runner
	logger *log.Logger
}

// New creates a new SSH server with the given configuration.
func New(cfg Config, runner *app.Runner, logger *log.Logger) (*Server, error) {
	if logger == nil {
		logger = log.Default()
	}

	srv := &Server{
		config: cfg,
		runner: runner,
		logger: logger,
	}

	hostKeyPath := cfg.HostKeyPath
	if hostKeyPath == "" {
		home, homeErr := os.UserHomeDir()
		if homeErr != nil {
			return nil, fmt.Errorf("cannot get home directory: %w", homeErr)
		}
		hostKeyPath = filepath.Join(home, ".pathgrid", "host_key")
	}

	hostKeyDir := filepath.Dir(hostKeyPath)
	if mkdirErr := os.MkdirAll(hostKeyDir, 0o700); mkdirErr != nil {
		return nil, fmt.Errorf("cannot create host key directory: %w", mkdirErr)
	}

	opts := []ssh.Option{
		wish.WithAddress(cfg.Address),
		wish.WithHostKeyPath(hostKeyPath),
		wish.WithIdleTimeout(cfg.IdleTimeout),
		wish.WithMiddleware(
			srv.runMiddleware,
			srv.loggingMiddleware,
		),
	}

	server, err := wish.NewServer(opts...)
	if err != nil {
		return nil, fmt.Errorf("cannot create SSH server: %w", err)
	}

	srv.server = server
	return srv, nil
}

// runMiddleware executes the session's request and writes the result line.
func (s *Server) runMiddleware(next ssh.Handler) ssh.Handler {
	return func(sess ssh.Session) {
		code := s.handle(sess)
		next(sess)
		_ = sess.Exit(code)
	}
}

func (s *Server) handle(sess ssh.Session) int {
	req, err := parseRequest(sess.Command(), s.config.DefaultRows, s.config.DefaultCols)
	if err != nil {
		fmt.Fprintf(sess.Stderr(), "Error: %v\n", err)
		fmt.Fprintln(sess.Stderr(), usage)
		return 1
	}

	var out app.Outcome
	switch req.kind {
	case requestLevel:
		lvl, lvlErr := levels.Builtin().LoadByID(req.levelID)
		if lvlErr != nil {
			fmt.Fprintf(sess.Stderr(), "Error: %v\n", lvlErr)
			return 1
		}
		out = s.runner.Level(lvl)
	default:
		seed := req.seed
		if seed == 0 {
			seed = uint64(time.Now().UnixNano())
		}
		var runErr error
		out, runErr = s.runner.Random("ssh", req.rows, req.cols, seed)
		if runErr != nil {
			fmt.Fprintf(sess.Stderr(), "Error: %v\n", runErr)
			return 1
		}
	}

	fmt.Fprintln(sess, app.Message(out))
	if out.ID != "" {
		fmt.Fprintf(sess, "Run: %s\n", out.ID)
	}
	return 0
}

// loggingMiddleware logs SSH session events.
func (s *Server) loggingMiddleware(next ssh.Handler) ssh.Handler {
	return func(sess ssh.Session) {
		s.logger.Info("session started",
			"user", sess.User(),
			"remote", sess.RemoteAddr().String(),
			"command", sess.Command(),
		)
		next(sess)
		s.logger.Info("session ended",
			"user", sess.User(),
			"remote", sess.RemoteAddr().String(),
		)
	}
}

// ListenAndServe starts the SSH server and blocks until shutdown.
func (s *Server) ListenAndServe() error {
	s.logger.Info("starting SSH server", "address", s.config.Address)

	// Setup signal handling for graceful shutdown
	done := make(chan os.Signal, 1)
	signal.Notify(done, os.Interrupt, syscall.SIGTERM)

	go func() {
		if err := s.server.ListenAndServe(); err != nil && !errors.Is(err, ssh.ErrServerClosed) {
			s.logger.Error("server error", "error", err)
		}
	}()

	<-done
	s.logger.Info("shutting down...")
	return s.Shutdown()
}

// Shutdown gracefully stops the server.
func (s *Server) Shutdown() error {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	return s.server.Shutdown(ctx)
}

// Addr returns the server's listen address string.
func (s *Server) Addr() string {
	return s.config.Address
}
