// Package ocr extracts caption text from images through an ordered chain of
// providers.
//
// The Coordinator tries each Provider in turn and returns the first non-empty
// result. Provider failures are classified as ErrUnavailable (not configured or
// not installed) or ErrRuntime (request, engine or decode failures), logged,
// and never surfaced to the caller: an image whose providers all fail simply
// has no caption.
package ocr
