// Package executor runs a batch of packing tasks on a fixed pool of workers.
package executor

import (
	"context"
	"errors"
	"fmt"
	"sync"

	"github.com/vk/packer/internal/ctxlog"
	"github.com/vk/packer/internal/inmemorystore"
	"github.com/vk/packer/internal/model"
	"github.com/vk/packer/internal/solver"
)

// DefaultWorkers is used when a non-positive worker count is requested.
const DefaultWorkers = 4

// Executor solves tasks concurrently with a single Solver.
type Executor struct {
	solver     solver.Solver
	numWorkers int
}

// job is a task together with its position in the input.
type job struct {
	index int
	task  model.Task
}

// New creates a new executor.
func New(s solver.Solver, numWorkers int) *Executor {
	if numWorkers <= 0 {
		numWorkers = DefaultWorkers
	}
	return &Executor{solver: s, numWorkers: numWorkers}
}

// Workers returns the size of the worker pool.
func (e *Executor) Workers() int {
	return e.numWorkers
}

// Run solves every task and returns the packages in input order. The first
// failing task cancels the rest of the run and its error is returned.
func (e *Executor) Run(ctx context.Context, tasks []model.Task) ([]model.Package, error) {
	logger := ctxlog.FromContext(ctx)
	if len(tasks) == 0 {
		logger.Debug("No tasks to execute.")
		return []model.Package{}, nil
	}

	store := inmemorystore.New()
	readyChan := make(chan job, len(tasks))
	for i, t := range tasks {
		readyChan <- job{index: i, task: t}
	}
	close(readyChan)

	runCtx, cancel := context.WithCancel(ctx)
	defer cancel()

	workers := min(e.numWorkers, len(tasks))
	var wg sync.WaitGroup
	wg.Add(workers)
	logger.Debug("Starting worker pool.", "workers", workers, "tasks", len(tasks))
	for i := 0; i < workers; i++ {
		go func(workerID int) {
			defer wg.Done()
			e.worker(runCtx, store, readyChan, cancel, workerID)
		}(i)
	}

	wg.Wait()
	logger.Debug("All tasks finished.", "counts", fmt.Sprint(store.Counts(len(tasks))))

	return e.collect(ctx, store, len(tasks))
}

// collect gathers the outputs in order and picks the root cause of a failed run.
func (e *Executor) collect(ctx context.Context, store *inmemorystore.Store, total int) ([]model.Package, error) {
	logger := ctxlog.FromContext(ctx)

	var rootCause error
	var rootIndex int
	var cancelled bool
	packages := make([]model.Package, 0, total)
	for i := 0; i < total; i++ {
		switch store.GetStatus(i) {
		case inmemorystore.StatusCompleted:
			pkg, _ := store.GetOutput(i)
			packages = append(packages, pkg)
		case inmemorystore.StatusFailed:
			taskErr := store.GetError(i)
			logger.Error("Task failed.", "task", i+1, "error", taskErr)
			// A cancellation is a symptom of another failure, not a cause.
			if errors.Is(taskErr, context.Canceled) || errors.Is(taskErr, context.DeadlineExceeded) {
				cancelled = true
				continue
			}
			if rootCause == nil {
				rootCause = taskErr
				rootIndex = i
			}
		case inmemorystore.StatusSkipped:
			cancelled = true
		}
	}

	if rootCause != nil {
		return nil, fmt.Errorf("task %d: %w", rootIndex+1, rootCause)
	}
	if cancelled {
		if err := ctx.Err(); err != nil {
			return nil, err
		}
		return nil, context.Canceled
	}
	return packages, nil
}
