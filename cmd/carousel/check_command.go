package main

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"carousel/internal/deps"
	"carousel/internal/preflight"
)

func newCheckCommand(ctx *commandContext) *cobra.Command {
	var showTable bool

	cmd := &cobra.Command{
		Use:   "check",
		Short: "Verify directories, credentials and external tools before a run",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := ctx.ensureConfig()
			if err != nil {
				return err
			}
			out := cmd.OutOrStdout()
			colorize := shouldColorize(out)

			results := preflight.RunAll(cmd.Context(), cfg)
			statuses := preflight.CheckSystemDeps(cfg)

			if ctx.configPath != "" {
				fmt.Fprintf(out, "Config: %s\n\n", ctx.configPath)
			}
			for _, line := range renderSectionHeader("Environment", colorize) {
				fmt.Fprintln(out, line)
			}
			for _, line := range preflightLines(results, colorize) {
				fmt.Fprintln(out, line)
			}
			fmt.Fprintln(out)
			for _, line := range renderSectionHeader("Dependencies", colorize) {
				fmt.Fprintln(out, line)
			}
			for _, line := range dependencyLines(statuses, colorize) {
				fmt.Fprintln(out, line)
			}
			if showTable {
				fmt.Fprintln(out)
				fmt.Fprintln(out, renderDependencyTable(statuses))
			}

			if failed := requiredFailures(results, statuses); len(failed) > 0 {
				return fmt.Errorf("preflight failed: %s", strings.Join(failed, ", "))
			}
			return nil
		},
	}
	cmd.Flags().BoolVar(&showTable, "table", false, "Also print dependencies as a table")
	return cmd
}

func preflightLines(results []preflight.Result, colorize bool) []string {
	lines := make([]string, 0, len(results))
	for _, r := range results {
		kind := statusOK
		message := "OK"
		if r.Detail != "" {
			message = r.Detail
		}
		if !r.Passed {
			kind = statusError
			if r.Optional {
				kind = statusWarn
			}
		}
		lines = append(lines, renderStatusLine(r.Name, kind, message, colorize))
	}
	return lines
}

func dependencyLines(statuses []deps.Status, colorize bool) []string {
	lines := make([]string, 0, len(statuses)+1)
	missing := make([]string, 0)
	for _, dep := range statuses {
		if dep.Available {
			message := "Ready"
			if dep.Command != "" {
				message = fmt.Sprintf("Ready (command: %s)", dep.Command)
			}
			lines = append(lines, renderStatusLine(dep.Name, statusOK, message, colorize))
			continue
		}

		detail := strings.TrimSpace(dep.Detail)
		if detail == "" {
			detail = "not available"
		}
		kind := statusError
		if dep.Optional {
			kind = statusWarn
		}
		lines = append(lines, renderStatusLine(dep.Name, kind, detail, colorize))
		missing = append(missing, dep.Name)
	}
	if len(missing) > 0 {
		lines = append(lines, renderStatusLine("Missing", statusWarn, strings.Join(missing, ", "), colorize))
	}
	return lines
}

func renderDependencyTable(statuses []deps.Status) string {
	rows := make([][]string, 0, len(statuses))
	for _, dep := range statuses {
		rows = append(rows, []string{
			dep.Name,
			dep.Command,
			yesNo(dep.Available),
			yesNo(dep.Optional),
			dep.Description,
		})
	}
	return renderTable([]string{"Tool", "Command", "Available", "Optional", "Purpose"}, rows, nil)
}

func requiredFailures(results []preflight.Result, statuses []deps.Status) []string {
	var failed []string
	for _, r := range results {
		if !r.Passed && !r.Optional {
			failed = append(failed, r.Name)
		}
	}
	for _, dep := range statuses {
		if !dep.Available && !dep.Optional {
			failed = append(failed, dep.Name)
		}
	}
	return failed
}
