// Package render drives the external still-frame renderer for one video group.
//
// Every frame of a group is an independent invocation with its own timeout.
// A failing frame is recorded and the loop moves on, so RenderGroup always
// returns an Outcome describing what was produced; it never aborts the group.
package render
