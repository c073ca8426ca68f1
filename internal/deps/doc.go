// Package deps resolves and runs the external executables the pipeline shells out to
// (render tool, encoder, tesseract) and reports their availability for
// preflight checks.
package deps
