package simspace

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"os"
)

// maxLineBytes bounds a single dataset record. High-dimensional dense
// vectors serialize to long lines, well past bufio.Scanner's default.
const maxLineBytes = 16 * 1024 * 1024

// ReadCursor is the mutable parsing state bound to one open dataset
// source. It tracks the current line number and, for dense spaces, the
// dimensionality inferred from the first record.
//
// A cursor is a scoped resource: it is acquired for the duration of
// one read pass, advanced by a single owner and released with Close.
type ReadCursor struct {
	path    string
	f       *os.File
	scanner *bufio.Scanner
	line    int
	dim     int
}

// OpenReadCursor opens path for reading and returns a cursor
// positioned before the first record.
func OpenReadCursor(path string) (*ReadCursor, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open dataset for reading: %w", err)
	}

	sc := bufio.NewScanner(f)
	sc.Buffer(make([]byte, 0, 64*1024), maxLineBytes)

	return &ReadCursor{path: path, f: f, scanner: sc}, nil
}

// ReadLine returns the next line without its terminator and advances
// the line counter. At end of source it returns io.EOF.
func (c *ReadCursor) ReadLine() (string, error) {
	if !c.scanner.Scan() {
		if err := c.scanner.Err(); err != nil {
			return "", fmt.Errorf("read %s: %w", c.path, err)
		}

		return "", io.EOF
	}

	c.line++

	return c.scanner.Text(), nil
}

// Line returns the 1-based number of the most recently read line.
func (c *ReadCursor) Line() int { return c.line }

// Dim returns the dimensionality inferred so far, 0 if unset.
func (c *ReadCursor) Dim() int { return c.dim }

// SetDim memorizes the dimensionality learned from the first record.
func (c *ReadCursor) SetDim(dim int) { c.dim = dim }

// Path returns the source path, for diagnostics.
func (c *ReadCursor) Path() string { return c.path }

// Close releases the underlying source.
func (c *ReadCursor) Close() error { return c.f.Close() }

// WriteCursor is the mutable writing state bound to one open dataset
// destination.
type WriteCursor struct {
	path string
	f    *os.File
	w    *bufio.Writer
}

// OpenWriteCursor creates (or truncates) path for writing.
func OpenWriteCursor(path string) (*WriteCursor, error) {
	f, err := os.Create(path)
	if err != nil {
		return nil, fmt.Errorf("open dataset for writing: %w", err)
	}

	return &WriteCursor{path: path, f: f, w: bufio.NewWriter(f)}, nil
}

// WriteLine appends one record line followed by a newline.
func (c *WriteCursor) WriteLine(s string) error {
	if _, err := c.w.WriteString(s); err != nil {
		return fmt.Errorf("write %s: %w", c.path, err)
	}
	if err := c.w.WriteByte('\n'); err != nil {
		return fmt.Errorf("write %s: %w", c.path, err)
	}

	return nil
}

// Path returns the destination path, for diagnostics.
func (c *WriteCursor) Path() string { return c.path }

// Close flushes buffered records and releases the destination.
func (c *WriteCursor) Close() error {
	return errors.Join(c.w.Flush(), c.f.Close())
}
