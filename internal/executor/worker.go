package executor

import (
	"context"

	"github.com/vk/packer/internal/ctxlog"
	"github.com/vk/packer/internal/inmemorystore"
)

// worker is the core processing loop for a single concurrent worker.
func (e *Executor) worker(ctx context.Context, store *inmemorystore.Store, readyChan <-chan job, cancel context.CancelFunc, workerID int) {
	logger := ctxlog.FromContext(ctx)
	logger.Debug("Worker started.", "workerID", workerID)

	for j := range readyChan {
		workerLogger := logger.With("workerID", workerID, "task", j.index+1)

		if ctx.Err() != nil {
			store.SetStatus(j.index, inmemorystore.StatusSkipped)
			continue
		}

		workerLogger.Debug("Worker picked up task for execution.", "things", len(j.task.Things))
		store.SetStatus(j.index, inmemorystore.StatusRunning)

		pkg, err := e.solver.Solve(ctx, j.task)
		if err != nil {
			workerLogger.Debug("Task execution failed.", "error", err)
			store.SetError(j.index, err)
			store.SetStatus(j.index, inmemorystore.StatusFailed)
			cancel()
			continue
		}

		store.SetOutput(j.index, pkg)
		store.SetStatus(j.index, inmemorystore.StatusCompleted)
		workerLogger.Debug("Task execution succeeded.", "indexes", pkg.Indexes())
	}
	logger.Debug("Worker finished.", "workerID", workerID)
}
