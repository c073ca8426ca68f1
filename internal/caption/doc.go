// Package caption cleans raw OCR text into the prompt captions stored in the
// batch result document.
//
// Normalize is pure and idempotent: it collapses whitespace, strips generator
// watermarks and copyright stamps, and bounds the caption length. HasCaption
// applies the minimum-length rule that decides whether an image counts as
// having a prompt.
package caption
