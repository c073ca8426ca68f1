// Package assembly encodes a directory of rendered frames into an H.264 MP4
// with ffmpeg. Assemble never returns an error: a missing encoder or a failed
// encode is reported through Outcome so the caller can move on to the next
// video.
package assembly
