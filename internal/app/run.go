package app

import (
	"context"
	"fmt"
	"io"
	"strings"

	"github.com/google/uuid"
	"github.com/vk/packer/internal/ctxlog"
	"github.com/vk/packer/internal/publish"
	"github.com/vk/packer/internal/server"
)

// Run executes the application. In batch mode it packs the input file and
// returns; in serve mode it blocks until ctx is cancelled.
func (a *App) Run(ctx context.Context) error {
	logger := a.logger.With("run_id", uuid.NewString())
	ctx = ctxlog.WithLogger(ctx, logger)
	logger.Debug("App.Run method started.")

	if a.config.Serving() {
		srv := server.New(logger, a.packer)
		return srv.ListenAndServe(ctx, fmt.Sprintf(":%d", a.config.ServePort))
	}

	logger.Info("Packing started.", "input", a.config.InputPath, "workers", a.config.WorkerCount, "solver", a.model.Solver)
	out, err := a.packer.PackFile(ctx, a.config.InputPath)
	if err != nil {
		return err
	}
	if _, err := io.WriteString(a.outW, out); err != nil {
		return fmt.Errorf("failed to write result: %w", err)
	}

	lines := strings.Split(strings.TrimSuffix(out, "\n"), "\n")
	if out == "" {
		lines = nil
	}
	logger.Info("Packing finished.", "tasks", len(lines))

	if err := a.publish(ctx, lines); err != nil {
		return fmt.Errorf("failed to publish results: %w", err)
	}

	logger.Debug("App.Run method finished.")
	return nil
}

// publisher opens the configured publisher. Without a URL results are
// discarded through publish.Nop.
func (a *App) publisher(ctx context.Context) (publish.Publisher, error) {
	if a.config.PublishURL == "" {
		return publish.Nop{}, nil
	}
	return a.dial(ctx, publish.SocketIOOptions{
		URL:                a.config.PublishURL,
		Namespace:          a.config.PublishNamespace,
		Event:              a.config.PublishEvent,
		InsecureSkipVerify: a.config.PublishInsecure,
	})
}

func (a *App) publish(ctx context.Context, lines []string) error {
	if len(lines) == 0 {
		return nil
	}

	p, err := a.publisher(ctx)
	if err != nil {
		return err
	}
	defer p.Close()

	if err := publish.All(ctx, p, lines); err != nil {
		return err
	}
	if a.config.PublishURL != "" {
		ctxlog.FromContext(ctx).Info("Results published.", "url", a.config.PublishURL, "count", len(lines))
	}
	return nil
}
