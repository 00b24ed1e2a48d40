package taskio

import (
	"bufio"
	"io"
	"strconv"
	"strings"

	"github.com/vk/packer/internal/model"
)

// Formatter renders a package as a single line without the trailing newline.
type Formatter func(model.Package) string

// DefaultFormatter joins the packed indexes with commas, or returns "-" for
// an empty package.
func DefaultFormatter(p model.Package) string {
	if p.IsEmpty() {
		return "-"
	}
	parts := make([]string, 0, len(p.Things))
	for _, idx := range p.Indexes() {
		parts = append(parts, strconv.Itoa(idx))
	}
	return strings.Join(parts, ",")
}

// Writer writes packages one per line. Call Flush when done.
type Writer struct {
	w      *bufio.Writer
	format Formatter
}

// WriterOption configures a Writer.
type WriterOption func(*Writer)

// WithFormatter replaces DefaultFormatter.
func WithFormatter(f Formatter) WriterOption {
	return func(w *Writer) {
		if f != nil {
			w.format = f
		}
	}
}

// NewWriter creates a Writer over w.
func NewWriter(w io.Writer, opts ...WriterOption) *Writer {
	out := &Writer{w: bufio.NewWriter(w), format: DefaultFormatter}
	for _, opt := range opts {
		opt(out)
	}
	return out
}

// Write writes a single package line.
func (w *Writer) Write(p model.Package) error {
	if _, err := w.w.WriteString(w.format(p)); err != nil {
		return err
	}
	return w.w.WriteByte('\n')
}

// WriteAll writes every package in order.
func (w *Writer) WriteAll(pkgs []model.Package) error {
	for _, p := range pkgs {
		if err := w.Write(p); err != nil {
			return err
		}
	}
	return nil
}

// Flush writes any buffered data to the underlying writer.
func (w *Writer) Flush() error {
	return w.w.Flush()
}
