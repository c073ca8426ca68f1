// Package pipeline drives a carousel batch end to end: resolve inputs, copy
// them into the project, extract and normalize captions, persist the result
// document, then render and assemble one video per group.
//
// Per-image and per-group failures are absorbed into the Summary. Only a
// missing input set, an unusable configuration, a held run lock or a failure
// to persist the result document stop a run.
package pipeline
