package ui

import (
	"fmt"
	"io"
	"sync"
	"sync/atomic"
)

// Progress tracks completion of parallel script runs with a simple
// counter display. Callers that also tag output lines onto the same
// writer must pass the mutex those writers share.
type Progress struct {
	mu        *sync.Mutex
	out       io.Writer
	total     int
	completed atomic.Int32
}

// NewProgress creates a progress tracker for total tasks.
func NewProgress(out io.Writer, mu *sync.Mutex, total int) *Progress {
	return &Progress{out: out, mu: mu, total: total}
}

// Done marks one task as completed and prints the current count with the
// task's label.
func (p *Progress) Done(label string) {
	n := int(p.completed.Add(1))
	p.mu.Lock()
	defer p.mu.Unlock()
	_, _ = fmt.Fprintf(p.out, "[%d/%d] %s\n", n, p.total, label)
}
