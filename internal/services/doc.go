// Package services defines shared utilities consumed by the pipeline stages
// and external tool integrations.
//
// Key responsibilities:
//   - Context helpers that stamp run IDs, stage names, video group IDs, and
//     image positions for logging.
//   - Structured error markers plus the Wrap helper that separate fatal setup
//     failures from per-unit failures the batch absorbs.
package services
