package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"carousel/internal/batch"
	"carousel/internal/pipeline"
)

func newExtractCommand(ctx *commandContext) *cobra.Command {
	return &cobra.Command{
		Use:   "extract [images...]",
		Short: "Extract captions and write the result document without rendering",
		RunE: func(cmd *cobra.Command, args []string) error {
			return runPipeline(cmd, ctx, args, false)
		},
	}
}

func runPipeline(cmd *cobra.Command, ctx *commandContext, args []string, full bool) error {
	cfg, err := ctx.ensureConfig()
	if err != nil {
		return err
	}
	logger, err := ctx.ensureLogger()
	if err != nil {
		return fmt.Errorf("init logger: %w", err)
	}

	var opts []pipeline.Option
	if full {
		opts = append(opts, pipeline.WithFrameProgress(newFrameProgress(cmd.ErrOrStderr()).update))
	}
	driver := pipeline.NewDriver(cfg, logger, opts...)
	var summary pipeline.Summary
	if full {
		summary, err = driver.Run(cmd.Context(), args)
	} else {
		summary, err = driver.Extract(cmd.Context(), args)
	}
	if err != nil {
		return err
	}

	out := cmd.OutOrStdout()
	colorize := shouldColorize(out)
	for _, line := range summaryLines(summary, full, colorize) {
		fmt.Fprintln(out, line)
	}
	if !full {
		doc, err := batch.LoadResult(summary.ResultsPath)
		if err != nil {
			return fmt.Errorf("reload result document: %w", err)
		}
		fmt.Fprintln(out)
		for _, line := range documentLines(summary.ResultsPath, doc, colorize) {
			fmt.Fprintln(out, line)
		}
	}
	if full && len(summary.Videos) > 0 {
		fmt.Fprintln(out)
		fmt.Fprintln(out, renderVideoTable(summary.Videos))
	}
	return nil
}
