// Package inmemorystore provides an ephemeral, thread-safe, in-memory store
// for the per-task execution state of a packing run.
//
// # Purpose
//
// The executor's workers record the status, the resulting package or the
// failure of every task here while they run. The collector reads it back in
// input order once the pool drains.
//
// # Concurrency Model
//
// Each task index is written by exactly one worker, so the key space is
// known upfront and values change frequently. sync.Map covers that pattern
// without a global lock.
package inmemorystore

import (
	"sync"

	"github.com/vk/packer/internal/model"
)

// Status is the execution state of a single task.
type Status int

const (
	StatusPending Status = iota
	StatusRunning
	StatusCompleted
	StatusFailed
	StatusSkipped
)

// String returns the lower-case name of the status.
func (s Status) String() string {
	switch s {
	case StatusPending:
		return "pending"
	case StatusRunning:
		return "running"
	case StatusCompleted:
		return "completed"
	case StatusFailed:
		return "failed"
	case StatusSkipped:
		return "skipped"
	default:
		return "unknown"
	}
}

// Store keeps three independent sync.Maps keyed by task index:
//   - states: task index to Status
//   - outputs: task index to the solved model.Package
//   - errors: task index to the failure of that task
type Store struct {
	states  sync.Map
	outputs sync.Map
	errors  sync.Map
}

// New creates a new, empty in-memory store.
func New() *Store {
	return &Store{}
}

// SetStatus updates the execution status of a task.
func (s *Store) SetStatus(index int, status Status) {
	s.states.Store(index, status)
}

// GetStatus retrieves the execution status of a task.
// If a status has not been set, it returns StatusPending.
func (s *Store) GetStatus(index int) Status {
	status, ok := s.states.Load(index)
	if !ok {
		return StatusPending
	}
	return status.(Status)
}

// SetOutput records the package solved for a task.
func (s *Store) SetOutput(index int, pkg model.Package) {
	s.outputs.Store(index, pkg)
}

// GetOutput retrieves the package of a completed task. ok is false when no
// output has been recorded.
func (s *Store) GetOutput(index int) (pkg model.Package, ok bool) {
	v, found := s.outputs.Load(index)
	if !found {
		return model.Package{}, false
	}
	return v.(model.Package), true
}

// SetError records the failure of a task.
func (s *Store) SetError(index int, taskErr error) {
	s.errors.Store(index, taskErr)
}

// GetError retrieves the recorded failure of a task, or nil.
func (s *Store) GetError(index int) error {
	err, ok := s.errors.Load(index)
	if !ok {
		return nil
	}
	return err.(error)
}

// Counts tallies tasks per status for the given number of tasks.
func (s *Store) Counts(total int) map[Status]int {
	counts := make(map[Status]int)
	for i := 0; i < total; i++ {
		counts[s.GetStatus(i)]++
	}
	return counts
}
