// Package tesseract implements the local Tesseract OCR provider on top of
// gosseract. With cgo enabled it links libtesseract and leptonica, and an
// engine that cannot load its traineddata reports ocr.ErrUnavailable. Built
// with CGO_ENABLED=0 the engine is always unavailable, so OCR falls through
// to the remaining providers.
package tesseract
