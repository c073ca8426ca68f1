package deps

import (
	"errors"
	"fmt"
	"os"
	"os/exec"
	"runtime"
	"strings"
)

// ErrToolUnavailable reports that an external tool could not be located.
var ErrToolUnavailable = errors.New("tool unavailable")

// Tool is a resolved external executable.
type Tool struct {
	Name     string
	Path     string
	Fallback bool
}

// Resolver locates external executables on PATH and then in an ordered list
// of fallback locations.
type Resolver struct {
	LookPath func(file string) (string, error)
	Stat     func(name string) (os.FileInfo, error)
}

// NewResolver returns a resolver backed by exec.LookPath and os.Stat.
func NewResolver() *Resolver {
	return &Resolver{LookPath: exec.LookPath, Stat: os.Stat}
}

// Resolve returns the first executable found for binary: PATH first, then
// each fallback path in order.
func (r *Resolver) Resolve(name, binary string, fallbacks ...string) (Tool, error) {
	binary = strings.TrimSpace(binary)
	if name == "" {
		name = binary
	}
	lookPath := exec.LookPath
	stat := os.Stat
	if r != nil && r.LookPath != nil {
		lookPath = r.LookPath
	}
	if r != nil && r.Stat != nil {
		stat = r.Stat
	}

	if binary != "" {
		if path, err := lookPath(binary); err == nil {
			return Tool{Name: name, Path: path}, nil
		}
	}
	for _, candidate := range fallbacks {
		candidate = strings.TrimSpace(candidate)
		if candidate == "" {
			continue
		}
		info, err := stat(candidate)
		if err != nil || !isExecutable(info) {
			continue
		}
		return Tool{Name: name, Path: candidate, Fallback: true}, nil
	}
	return Tool{Name: name}, fmt.Errorf("%s (%q): %w", name, binary, ErrToolUnavailable)
}

func isExecutable(info os.FileInfo) bool {
	if info == nil || info.IsDir() {
		return false
	}
	if runtime.GOOS == "windows" {
		return true
	}
	return info.Mode().Perm()&0o111 != 0
}
