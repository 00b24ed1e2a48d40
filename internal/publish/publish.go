// Package publish pushes solved packages to an external listener as they
// are produced.
package publish

import "context"

// Result is one published line of output.
type Result struct {
	// Index is the 1-based position of the task in the input.
	Index   int    `json:"index"`
	Package string `json:"package"`
}

// Publisher delivers results somewhere outside the process.
type Publisher interface {
	Publish(ctx context.Context, r Result) error
	Close() error
}

// Nop discards every result.
type Nop struct{}

// Publish implements Publisher.
func (Nop) Publish(context.Context, Result) error { return nil }

// Close implements Publisher.
func (Nop) Close() error { return nil }

// All publishes lines in order, numbering them from 1.
func All(ctx context.Context, p Publisher, lines []string) error {
	for i, line := range lines {
		if err := ctx.Err(); err != nil {
			return err
		}
		if err := p.Publish(ctx, Result{Index: i + 1, Package: line}); err != nil {
			return err
		}
	}
	return nil
}
