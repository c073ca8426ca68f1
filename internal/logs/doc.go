// Package logs reads back the JSON run log written next to the console output.
//
// Records are read with bounded memory: only the last Limit matching lines
// are kept. Filtering by run id relies on the run_id field every pipeline
// record carries, so one batch can be inspected after later runs appended to
// the same file.
package logs
