// Package vision implements the Google Cloud Vision OCR provider.
//
// The client posts TEXT_DETECTION requests to the images:annotate REST
// endpoint with an API key, retrying transient HTTP failures (408, 429, 5xx,
// network timeouts) with capped exponential backoff that honours Retry-After.
// A missing API key reports ocr.ErrUnavailable; every other failure wraps
// ocr.ErrRuntime.
package vision
