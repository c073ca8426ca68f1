// Package main hosts the carousel CLI entrypoint and command graph.
//
// The root command runs the whole batch: captions are extracted from the
// given images (or the default input folder), the result document is written
// for the front-end, and one slideshow video is rendered per group. The
// extract, check and config subcommands expose the caption stage, the
// environment preflight and configuration scaffolding on their own.
//
// Keep this package lean: the pipeline lives in internal/pipeline and this
// package only resolves configuration, builds loggers and renders output.
package main
