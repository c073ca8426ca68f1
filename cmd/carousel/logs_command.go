package main

import (
	"fmt"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"

	"carousel/internal/logging"
	"carousel/internal/logs"
)

func newLogsCommand(ctx *commandContext) *cobra.Command {
	var lines int
	var runID string
	var lastRun bool

	cmd := &cobra.Command{
		Use:   "logs",
		Short: "Show recent records from the run log",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := ctx.ensureConfig()
			if err != nil {
				return err
			}
			path := filepath.Join(cfg.Paths.LogDir, logging.FileName)

			query := logs.Query{Limit: lines, RunID: strings.TrimSpace(runID)}
			if lastRun && query.RunID == "" {
				query.RunID, err = logs.LastRunID(path)
				if err != nil {
					return err
				}
				if query.RunID == "" {
					fmt.Fprintf(cmd.OutOrStdout(), "No runs recorded in %s\n", path)
					return nil
				}
			}

			records, err := logs.Tail(path, query)
			if err != nil {
				return err
			}
			out := cmd.OutOrStdout()
			for _, line := range records {
				fmt.Fprintln(out, line)
			}
			return nil
		},
	}
	cmd.Flags().IntVarP(&lines, "lines", "n", 50, "Number of records to show (0 for all)")
	cmd.Flags().StringVar(&runID, "run", "", "Only show records of this run id")
	cmd.Flags().BoolVar(&lastRun, "last-run", false, "Only show records of the most recent run")
	return cmd
}
