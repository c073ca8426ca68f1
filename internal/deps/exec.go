package deps

import (
	"bytes"
	"context"
	"fmt"
	"os/exec"
	"path/filepath"
	"strings"
	"sync"
	"syscall"
	"time"

	"golang.org/x/sys/unix"
)

const defaultWaitDelay = 2 * time.Second

// Command describes one external invocation.
type Command struct {
	Binary string
	Args   []string
	Dir    string
}

// String renders the command line for logs.
func (c Command) String() string {
	return strings.TrimSpace(filepath.Base(c.Binary) + " " + strings.Join(c.Args, " "))
}

// Executor abstracts command execution for testability.
type Executor interface {
	Run(ctx context.Context, cmd Command, onOutput func(string)) error
}

// CommandExecutor runs commands with os/exec. Each command gets its own
// process group so cancellation also stops the children it spawned.
type CommandExecutor struct {
	WaitDelay time.Duration
}

// Run executes cmd, forwarding combined stdout/stderr lines to onOutput.
func (e CommandExecutor) Run(ctx context.Context, cmd Command, onOutput func(string)) error {
	c := exec.CommandContext(ctx, cmd.Binary, cmd.Args...) //nolint:gosec
	c.Dir = cmd.Dir
	c.SysProcAttr = &syscall.SysProcAttr{Setpgid: true}
	c.Cancel = func() error {
		if c.Process == nil {
			return nil
		}
		return unix.Kill(-c.Process.Pid, unix.SIGKILL)
	}
	c.WaitDelay = e.WaitDelay
	if c.WaitDelay <= 0 {
		c.WaitDelay = defaultWaitDelay
	}

	out := &lineWriter{forward: onOutput}
	c.Stdout = out
	c.Stderr = out

	if err := c.Start(); err != nil {
		return fmt.Errorf("start %s: %w", filepath.Base(cmd.Binary), err)
	}
	err := c.Wait()
	out.flush()
	if err != nil {
		if ctxErr := ctx.Err(); ctxErr != nil {
			return fmt.Errorf("%s: %w", filepath.Base(cmd.Binary), ctxErr)
		}
		return fmt.Errorf("%s: %w", filepath.Base(cmd.Binary), err)
	}
	return nil
}

// lineWriter splits written bytes into lines. Stdout and Stderr share one
// instance, so exec serializes writes; the mutex covers flush.
type lineWriter struct {
	mu      sync.Mutex
	buf     bytes.Buffer
	forward func(string)
}

func (w *lineWriter) Write(p []byte) (int, error) {
	w.mu.Lock()
	defer w.mu.Unlock()
	w.buf.Write(p)
	for {
		idx := bytes.IndexByte(w.buf.Bytes(), '\n')
		if idx < 0 {
			break
		}
		line := strings.TrimRight(string(w.buf.Next(idx+1)), "\r\n")
		w.emit(line)
	}
	return len(p), nil
}

func (w *lineWriter) flush() {
	w.mu.Lock()
	defer w.mu.Unlock()
	if w.buf.Len() > 0 {
		w.emit(strings.TrimRight(w.buf.String(), "\r\n"))
		w.buf.Reset()
	}
}

func (w *lineWriter) emit(line string) {
	if w.forward != nil {
		w.forward(line)
	}
}

// OutputTail keeps the last lines of command output for diagnostics.
type OutputTail struct {
	mu    sync.Mutex
	limit int
	lines []string
}

// NewOutputTail retains at most limit lines.
func NewOutputTail(limit int) *OutputTail {
	if limit <= 0 {
		limit = 20
	}
	return &OutputTail{limit: limit}
}

// Add records a line, discarding the oldest beyond the limit.
func (t *OutputTail) Add(line string) {
	line = strings.TrimSpace(line)
	if line == "" {
		return
	}
	t.mu.Lock()
	defer t.mu.Unlock()
	t.lines = append(t.lines, line)
	if len(t.lines) > t.limit {
		t.lines = t.lines[len(t.lines)-t.limit:]
	}
}

// String joins the retained lines.
func (t *OutputTail) String() string {
	t.mu.Lock()
	defer t.mu.Unlock()
	return strings.Join(t.lines, "\n")
}

// Head returns at most n runes of the retained output, flattened to one line.
func (t *OutputTail) Head(n int) string {
	flat := strings.Join(strings.Fields(t.String()), " ")
	runes := []rune(flat)
	if n > 0 && len(runes) > n {
		return string(runes[:n])
	}
	return flat
}
