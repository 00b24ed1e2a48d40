// Package packer is the library entry point. It validates a batch of tasks,
// solves them on a worker pool and renders the result.
//
// The algorithm targets the 0/1 knapsack problem, for which no polynomial
// algorithm is known. By default every subset is enumerated; the branch and
// bound solver can be selected to cut the search on larger tasks.
package packer

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"

	"github.com/vk/packer/internal/config"
	"github.com/vk/packer/internal/ctxlog"
	"github.com/vk/packer/internal/executor"
	"github.com/vk/packer/internal/model"
	"github.com/vk/packer/internal/packerr"
	"github.com/vk/packer/internal/solver"
	"github.com/vk/packer/internal/taskio"
	"github.com/vk/packer/internal/validation"
)

// Packer solves packing tasks. It is safe for concurrent use.
type Packer struct {
	limits   config.Limits
	rule     validation.Rule[model.Task]
	solver   solver.Solver
	workers  int
	executor *executor.Executor
	// err holds invalid limits; Pack reports it.
	err error
}

// Option configures a Packer.
type Option func(*Packer)

// WithWorkers sets the size of the worker pool.
func WithWorkers(n int) Option {
	return func(p *Packer) { p.workers = n }
}

// WithLimits replaces the default limits. Unless WithRule or WithSolver are
// given too, the validation rule and solver limit follow these limits.
// Invalid limits make every Pack call fail.
func WithLimits(l config.Limits) Option {
	return func(p *Packer) { p.limits = l }
}

// WithRule replaces the task validation rule.
func WithRule(r validation.Rule[model.Task]) Option {
	return func(p *Packer) { p.rule = r }
}

// WithSolver replaces the brute force solver.
func WithSolver(s solver.Solver) Option {
	return func(p *Packer) { p.solver = s }
}

// New creates a Packer. Defaults: 4 workers, default limits, brute force.
func New(opts ...Option) *Packer {
	p := &Packer{
		limits:  config.DefaultLimits(),
		workers: executor.DefaultWorkers,
	}
	for _, opt := range opts {
		opt(p)
	}
	if err := p.limits.Validate(); err != nil {
		p.err = packerr.System(fmt.Errorf("invalid limits: %w", err))
	}
	if p.rule == nil {
		p.rule = validation.Default(p.limits)
	}
	if p.solver == nil {
		p.solver = solver.BruteForce{Limit: p.limits.MaxThings}
	}
	p.executor = executor.New(p.solver, p.workers)
	return p
}

// Limits returns the limits the packer validates against.
func (p *Packer) Limits() config.Limits {
	return p.limits
}

// Pack validates every task and then solves them. No task is solved when
// any of them is invalid.
func (p *Packer) Pack(ctx context.Context, tasks []model.Task) ([]model.Package, error) {
	if p.err != nil {
		return nil, p.err
	}
	logger := ctxlog.FromContext(ctx)
	for i, t := range tasks {
		if err := p.rule.Validate(t); err != nil {
			return nil, fmt.Errorf("task %d: %w", i+1, err)
		}
	}
	logger.Debug("Tasks validated.", "count", len(tasks))

	pkgs, err := p.executor.Run(ctx, tasks)
	if err != nil {
		return nil, packerr.Wrap(err)
	}
	return pkgs, nil
}

// PackReader reads tasks from r and returns the rendered result.
func (p *Packer) PackReader(ctx context.Context, r io.Reader) (string, error) {
	tasks, err := taskio.NewReader(r).ReadAll()
	if err != nil {
		return "", err
	}

	pkgs, err := p.Pack(ctx, tasks)
	if err != nil {
		return "", err
	}

	var out bytes.Buffer
	w := taskio.NewWriter(&out)
	if err := w.WriteAll(pkgs); err != nil {
		return "", packerr.System(err)
	}
	if err := w.Flush(); err != nil {
		return "", packerr.System(err)
	}
	return out.String(), nil
}

// PackFile reads tasks from the file at path and returns the rendered result.
func (p *Packer) PackFile(ctx context.Context, path string) (string, error) {
	f, err := os.Open(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return "", packerr.FileNotFound(err)
		}
		return "", packerr.System(err)
	}
	defer f.Close()

	ctxlog.FromContext(ctx).Debug("Reading tasks.", "path", path)
	return p.PackReader(ctx, f)
}

// PackFile packs the file at path with a default Packer.
func PackFile(ctx context.Context, path string) (string, error) {
	return New().PackFile(ctx, path)
}
