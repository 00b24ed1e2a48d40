package app

import (
	"context"
	"fmt"
	"io"
	"log/slog"

	"github.com/vk/packer/internal/config"
	"github.com/vk/packer/internal/ctxlog"
	"github.com/vk/packer/internal/packer"
	"github.com/vk/packer/internal/publish"
	"github.com/vk/packer/internal/solver"
)

// Dialer opens the publisher results are pushed to.
type Dialer func(ctx context.Context, o publish.SocketIOOptions) (publish.Publisher, error)

func dialSocketIO(ctx context.Context, o publish.SocketIOOptions) (publish.Publisher, error) {
	return publish.DialSocketIO(ctx, o)
}

// App encapsulates the application's dependencies, configuration, and lifecycle.
type App struct {
	outW   io.Writer
	logger *slog.Logger
	config *Config
	model  *config.Model
	packer *packer.Packer
	dial   Dialer
}

// Option customises an App.
type Option func(*App)

// WithDialer replaces the socket.io dialer.
func WithDialer(d Dialer) Option {
	return func(a *App) { a.dial = d }
}

// NewApp is the constructor for the main application. Results are written
// to outW and logs to logW. The limits file, when configured, is read
// through loader.
func NewApp(outW, logW io.Writer, cfg *Config, loader config.Loader, opts ...Option) (*App, error) {
	logger := newLogger(cfg.LogLevel, cfg.LogFormat, logW)
	ctx := ctxlog.WithLogger(context.Background(), logger)
	logger.Debug("Logger configured successfully.")

	m := config.NewModel()
	if cfg.ConfigPath != "" {
		loaded, err := loader.Load(ctx, cfg.ConfigPath)
		if err != nil {
			return nil, fmt.Errorf("failed to load configuration: %w", err)
		}
		m = loaded
		logger.Debug("Configuration loaded.", "path", cfg.ConfigPath)
	}

	// The flag wins over the file.
	if cfg.Solver != "" {
		m.Solver = cfg.Solver
	}
	if m.Solver == "" {
		m.Solver = config.SolverBruteForce
	}
	s, err := solver.ByName(m.Solver, m.Limits.MaxThings)
	if err != nil {
		return nil, err
	}
	logger.Debug("Solver selected.", "solver", m.Solver, "max_things", m.Limits.MaxThings)

	a := &App{
		outW:   outW,
		logger: logger,
		config: cfg,
		model:  m,
		packer: packer.New(
			packer.WithLimits(m.Limits),
			packer.WithSolver(s),
			packer.WithWorkers(cfg.WorkerCount),
		),
		dial: dialSocketIO,
	}
	for _, opt := range opts {
		opt(a)
	}
	return a, nil
}

// Model returns the effective configuration. This is primarily for testing.
func (a *App) Model() *config.Model {
	return a.model
}
