package main

import (
	"fmt"
	"io"

	"carousel/internal/logging"
	"carousel/internal/render"
)

const ansiClearLine = "\r\x1b[2K"

// frameProgress prints one status line per video group. On a terminal the
// line is rewritten in place; otherwise a line is printed every 10%.
type frameProgress struct {
	w        io.Writer
	tty      bool
	colorize bool
	sampler  *logging.ProgressSampler
	groupID  int
	failures int
}

func newFrameProgress(w io.Writer) *frameProgress {
	return &frameProgress{
		w:        w,
		tty:      isTerminal(w),
		colorize: shouldColorize(w),
		sampler:  logging.NewProgressSampler(10),
	}
}

func (p *frameProgress) update(pr render.Progress) {
	if pr.GroupID != p.groupID {
		p.groupID = pr.GroupID
		p.failures = 0
	}
	if pr.Failed {
		p.failures++
	}

	line := frameProgressLine(pr, p.failures, p.colorize)
	if p.tty {
		fmt.Fprint(p.w, ansiClearLine+line)
		if pr.Done >= pr.Total {
			fmt.Fprintln(p.w)
		}
		return
	}
	stage := fmt.Sprintf("video %d", pr.GroupID)
	if p.sampler.ShouldLog(logging.FramePercent(pr.Done, pr.Total), stage) {
		fmt.Fprintln(p.w, line)
	}
}

func frameProgressLine(pr render.Progress, failures int, colorize bool) string {
	kind := statusInfo
	switch {
	case failures > 0:
		kind = statusWarn
	case pr.Done >= pr.Total:
		kind = statusOK
	}
	message := fmt.Sprintf("frame %d/%d", pr.Done, pr.Total)
	if failures > 0 {
		message += fmt.Sprintf(" (%d failed)", failures)
	}
	return renderStatusLine(fmt.Sprintf("Video %d", pr.GroupID), kind, message, colorize)
}
