package deps

import (
	"fmt"
	"strings"
)

// Requirement defines an external dependency the pipeline relies on.
type Requirement struct {
	Name          string
	Command       string
	Description   string
	Optional      bool
	FallbackPaths []string
}

// Status reports the availability of a dependency.
type Status struct {
	Name        string
	Command     string
	Description string
	Optional    bool
	Available   bool
	Detail      string
}

// CheckBinaries evaluates the provided requirements and reports availability.
// Requirements with fallback paths are resolved the same way the pipeline
// resolves them at run time.
func CheckBinaries(requirements []Requirement) []Status {
	return NewResolver().Check(requirements)
}

// Check evaluates requirements using the resolver's lookup functions.
func (r *Resolver) Check(requirements []Requirement) []Status {
	results := make([]Status, 0, len(requirements))
	for _, req := range requirements {
		cmd := strings.TrimSpace(req.Command)
		status := Status{
			Name:        req.Name,
			Command:     cmd,
			Description: strings.TrimSpace(req.Description),
			Optional:    req.Optional,
		}
		if cmd == "" {
			status.Detail = "command not configured"
			results = append(results, status)
			continue
		}
		tool, err := r.Resolve(req.Name, cmd, req.FallbackPaths...)
		if err != nil {
			status.Detail = fmt.Sprintf("binary %q not found", cmd)
			results = append(results, status)
			continue
		}
		status.Command = tool.Path
		status.Available = true
		if tool.Fallback {
			status.Detail = "resolved from fallback location"
		}
		results = append(results, status)
	}
	return results
}

