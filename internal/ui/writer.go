// Package ui provides output plumbing for concurrent script runs: line
// tagging so overlapping workspace streams stay attributable, and a
// completion counter for parallel progress.
package ui

import (
	"bytes"
	"fmt"
	"io"
	"sync"
)

// PrefixWriter tags every output line with a fixed prefix and writes whole
// lines in a single call. Writers that share an underlying writer must
// share a *sync.Mutex so their lines never interleave mid-line.
//
// A PrefixWriter buffers partial lines, so it is not safe for concurrent
// use itself; give each stream its own instance.
type PrefixWriter struct {
	mu     *sync.Mutex
	out    io.Writer
	prefix string
	buf    bytes.Buffer
}

// NewPrefixWriter creates a PrefixWriter that tags lines with prefix.
func NewPrefixWriter(out io.Writer, mu *sync.Mutex, prefix string) *PrefixWriter {
	return &PrefixWriter{mu: mu, out: out, prefix: prefix}
}

// Write buffers p and emits every complete line it now holds.
func (w *PrefixWriter) Write(p []byte) (int, error) {
	w.buf.Write(p)
	for {
		idx := bytes.IndexByte(w.buf.Bytes(), '\n')
		if idx < 0 {
			break
		}
		line := string(w.buf.Next(idx + 1))
		if err := w.emit(line); err != nil {
			return len(p), err
		}
	}
	return len(p), nil
}

// Flush emits any buffered partial line, adding the missing newline so the
// tag stays attached to its text. Call once after the stream's producer
// has exited.
func (w *PrefixWriter) Flush() error {
	if w.buf.Len() == 0 {
		return nil
	}
	line := w.buf.String() + "\n"
	w.buf.Reset()
	return w.emit(line)
}

func (w *PrefixWriter) emit(line string) error {
	w.mu.Lock()
	defer w.mu.Unlock()
	_, err := fmt.Fprintf(w.out, "%s%s", w.prefix, line)
	return err
}
