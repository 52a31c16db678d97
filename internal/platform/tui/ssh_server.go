package tui

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/signal"
	"path/filepath"
	"syscall"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/log"
	"github.com/charmbracelet/ssh"
	"github.com/charmbracelet/wish"
	"github.com/charmbracelet/wish/bubbletea"
	"github.com/google/uuid"

	"github.com/vovakirdan/tui-snake/internal/clock"
	"github.com/vovakirdan/tui-snake/internal/core"
	"github.com/vovakirdan/tui-snake/internal/engine"
	"github.com/vovakirdan/tui-snake/internal/games/snake"
	"github.com/vovakirdan/tui-snake/internal/storage"
)

// SSHServerConfig holds configuration for the SSH server.
type SSHServerConfig struct {
	// Address is the host:port to listen on (e.g., ":23234").
	Address string

	// HostKeyPath is the path to the host key file.
	// If empty, a key will be auto-generated at ~/.arcade/host_key.
	HostKeyPath string

	// IdleTimeout is how long to wait before closing idle connections.
	IdleTimeout time.Duration

	Rules  snake.Rules
	Theme  snake.Theme
	Border core.Color
}

// DefaultSSHServerConfig returns a config with sensible defaults.
func DefaultSSHServerConfig() SSHServerConfig {
	return SSHServerConfig{
		Address:     ":23234",
		IdleTimeout: 30 * time.Minute,
		Rules:       snake.DefaultRules(),
		Theme:       snake.DefaultTheme(),
		Border:      "#95a5a6",
	}
}

// SSHServer wraps a Wish SSH server. Every session plays its own game;
// all sessions share the store and therefore the leaderboard.
type SSHServer struct {
	config   SSHServerConfig
	server   *ssh.Server
	store    storage.Backend
	sessions *engine.SessionRegistry
	logger   *log.Logger
}

// NewSSHServer creates a new SSH server with the given configuration.
// The caller keeps ownership of store.
func NewSSHServer(cfg SSHServerConfig, store storage.Backend, logger *log.Logger) (*SSHServer, error) {
	if logger == nil {
		logger = log.NewWithOptions(os.Stderr, log.Options{
			ReportTimestamp: true,
			Prefix:          "snake-ssh",
		})
	}

	srv := &SSHServer{
		config:   cfg,
		store:    store,
		sessions: engine.NewSessionRegistry(),
		logger:   logger,
	}

	// Resolve host key path
	hostKeyPath := cfg.HostKeyPath
	if hostKeyPath == "" {
		home, homeErr := os.UserHomeDir()
		if homeErr != nil {
			return nil, fmt.Errorf("tui: cannot get home directory: %w", homeErr)
		}
		hostKeyPath = filepath.Join(home, ".arcade", "host_key")
	}

	// Ensure host key directory exists
	hostKeyDir := filepath.Dir(hostKeyPath)
	if mkdirErr := os.MkdirAll(hostKeyDir, 0o700); mkdirErr != nil {
		return nil, fmt.Errorf("tui: cannot create host key directory: %w", mkdirErr)
	}

	opts := []ssh.Option{
		wish.WithAddress(cfg.Address),
		wish.WithHostKeyPath(hostKeyPath),
		wish.WithIdleTimeout(cfg.IdleTimeout),
		wish.WithMiddleware(
			bubbletea.Middleware(srv.teaHandler),
			srv.loggingMiddleware,
		),
	}

	server, err := wish.NewServer(opts...)
	if err != nil {
		return nil, fmt.Errorf("tui: cannot create SSH server: %w", err)
	}

	srv.server = server
	return srv, nil
}

// teaHandler creates a game controller and Bubble Tea model for each SSH session.
func (s *SSHServer) teaHandler(sshSession ssh.Session) (tea.Model, []tea.ProgramOption) {
	pty, _, ok := sshSession.Pty()
	if !ok {
		s.logger.Warn("no PTY requested", "user", sshSession.User())
		return nil, nil
	}

	id := engine.SessionID(uuid.NewString())
	logger := s.logger.With("user", sshSession.User())

	sink := engine.NewFrameSink(id, 16)
	ctrl := engine.NewController(engine.ControllerConfig{
		Rules:     s.config.Rules,
		Store:     s.store,
		Results:   s.store,
		Scheduler: clock.NewReal(),
		Renderer:  sink,
		Logger:    logger,
		Session:   id,
	})

	s.sessions.Register(&engine.Session{
		ID:         id,
		User:       sshSession.User(),
		Controller: ctrl,
		StartedAt:  time.Now(),
	})
	s.logger.Info("game session opened", "user", sshSession.User(), "session", id, "active", s.ActiveSessions())

	go func() {
		<-sshSession.Context().Done()
		sink.Close()
		var played time.Duration
		if sess, ok := s.sessions.Get(id); ok {
			played = time.Since(sess.StartedAt).Round(time.Second)
		}
		s.sessions.Unregister(id)
		s.logger.Info("game session closed", "session", id, "played", played, "active", s.ActiveSessions())
	}()

	model := NewModel(ModelConfig{
		Controller: ctrl,
		Sink:       sink,
		Theme:      s.config.Theme,
		Border:     s.config.Border,
		Renderer:   NewScreenRenderer(bubbletea.MakeRenderer(sshSession)),
		Logger:     logger,
		User:       sshSession.User(),
		Width:      pty.Window.Width,
		Height:     pty.Window.Height,
	})

	return model, []tea.ProgramOption{
		tea.WithAltScreen(),
	}
}

// loggingMiddleware logs SSH session events.
func (s *SSHServer) loggingMiddleware(next ssh.Handler) ssh.Handler {
	return func(sshSession ssh.Session) {
		s.logger.Info("session started",
			"user", sshSession.User(),
			"remote", sshSession.RemoteAddr().String(),
		)
		next(sshSession)
		s.logger.Info("session ended",
			"user", sshSession.User(),
			"remote", sshSession.RemoteAddr().String(),
		)
	}
}

// ListenAndServe starts the SSH server and blocks until shutdown.
func (s *SSHServer) ListenAndServe() error {
	s.logger.Info("starting SSH server", "address", s.config.Address)

	// Setup signal handling for graceful shutdown
	done := make(chan os.Signal, 1)
	signal.Notify(done, os.Interrupt, syscall.SIGTERM)

	errCh := make(chan error, 1)
	go func() {
		if err := s.server.ListenAndServe(); err != nil && !errors.Is(err, ssh.ErrServerClosed) {
			s.logger.Error("server error", "error", err)
			errCh <- err
		}
	}()

	select {
	case <-done:
		s.logger.Info("shutting down...", "active", s.ActiveSessions())
		return s.Shutdown()
	case err := <-errCh:
		return fmt.Errorf("tui: ssh server: %w", err)
	}
}

// Shutdown stops every game and gracefully stops the server.
func (s *SSHServer) Shutdown() error {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	s.sessions.CloseAll()
	return s.server.Shutdown(ctx)
}

// Addr returns the server's listen address string.
func (s *SSHServer) Addr() string {
	return s.config.Address
}

// ActiveSessions returns the number of connected players.
func (s *SSHServer) ActiveSessions() int {
	return s.sessions.Count()
}
