package inmemorystore

import (
	"errors"
	"fmt"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/vk/packer/internal/model"
)

func TestSetAndGetStatus(t *testing.T) {
	s := New()

	// Get status of a task that doesn't exist yet
	assert.Equal(t, StatusPending, s.GetStatus(0))

	s.SetStatus(0, StatusRunning)

	status := s.GetStatus(0)
	assert.Equal(t, StatusRunning, status)
	assert.Equal(t, "running", status.String())
}

func TestSetAndGetOutput(t *testing.T) {
	s := New()

	_, ok := s.GetOutput(3)
	assert.False(t, ok)

	expected := model.Package{Things: []model.Thing{{Index: 4, Weight: 72.3, Cost: 76}}}
	s.SetOutput(3, expected)

	got, ok := s.GetOutput(3)
	assert.True(t, ok)
	assert.Equal(t, expected, got)
}

func TestSetAndGetError(t *testing.T) {
	s := New()

	assert.NoError(t, s.GetError(1))

	expectedErr := errors.New("a test error occurred")
	s.SetError(1, expectedErr)

	assert.Equal(t, expectedErr, s.GetError(1))
}

func TestStatusString(t *testing.T) {
	testCases := map[Status]string{
		StatusPending:   "pending",
		StatusRunning:   "running",
		StatusCompleted: "completed",
		StatusFailed:    "failed",
		StatusSkipped:   "skipped",
		Status(42):      "unknown",
	}
	for status, expected := range testCases {
		assert.Equal(t, expected, status.String())
	}
}

// TestStore_ConcurrentAccess verifies that the store can be safely accessed by
// multiple goroutines simultaneously without data races or lost writes.
func TestStore_ConcurrentAccess(t *testing.T) {
	s := New()
	numGoroutines := 100
	var wg sync.WaitGroup

	// Phase 1: Concurrent Writes
	wg.Add(numGoroutines)
	for i := 0; i < numGoroutines; i++ {
		go func(i int) {
			defer wg.Done()
			s.SetStatus(i, StatusCompleted)
			s.SetOutput(i, model.Package{Things: []model.Thing{{Index: i}}})
			s.SetError(i, fmt.Errorf("error for task %d", i))
		}(i)
	}
	wg.Wait()

	// Phase 2: Concurrent Reads / Verification
	wg.Add(numGoroutines)
	for i := 0; i < numGoroutines; i++ {
		go func(i int) {
			defer wg.Done()

			assert.Equal(t, StatusCompleted, s.GetStatus(i), "mismatched status for task %d", i)

			pkg, ok := s.GetOutput(i)
			assert.True(t, ok)
			assert.Equal(t, []int{i}, pkg.Indexes(), "mismatched output for task %d", i)

			assert.EqualError(t, s.GetError(i), fmt.Sprintf("error for task %d", i))
		}(i)
	}
	wg.Wait()

	assert.Equal(t, map[Status]int{StatusCompleted: numGoroutines}, s.Counts(numGoroutines))
}
