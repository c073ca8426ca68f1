// Package batch holds the data model shared by the pipeline stages: per-image
// caption records, fixed-size video groups, transient frame jobs, and the
// aggregated result document read by the rendering front-end.
//
// Partition splits an ordered image list into contiguous groups, and
// SaveResult/LoadResult persist the result document atomically.
package batch
