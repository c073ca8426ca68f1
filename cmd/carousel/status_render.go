package main

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/mattn/go-isatty"
)

type statusKind int

const (
	statusInfo statusKind = iota
	statusOK
	statusWarn
	statusError
)

const (
	ansiReset  = "\x1b[0m"
	ansiRed    = "\x1b[31m"
	ansiGreen  = "\x1b[32m"
	ansiYellow = "\x1b[33m"
	ansiBlue   = "\x1b[34m"
)

// statusLabelWidth fits the longest label, "Default input folder:".
const (
	statusLabelWidth = 22
	statusIndent     = "  "
)

var statusStyles = [...]struct{ tag, color string }{
	statusInfo:  {"INFO", ansiBlue},
	statusOK:    {"OK", ansiGreen},
	statusWarn:  {"WARN", ansiYellow},
	statusError: {"ERROR", ansiRed},
}

func (k statusKind) style() (tag, color string) {
	if k < 0 || int(k) >= len(statusStyles) {
		k = statusInfo
	}
	s := statusStyles[k]
	return s.tag, s.color
}

// renderStatusLine formats "  Label:   [TAG] message", padded so the tags of
// consecutive lines align.
func renderStatusLine(label string, kind statusKind, message string, colorize bool) string {
	tag, color := kind.style()
	var b strings.Builder
	fmt.Fprintf(&b, "%s%-*s [%s]", statusIndent, statusLabelWidth, label+":", tag)
	if message != "" {
		b.WriteString(" " + message)
	}
	return paint(b.String(), color, colorize)
}

func renderSectionHeader(title string, colorize bool) []string {
	heading := "== " + strings.TrimSpace(title) + " =="
	return []string{
		paint(heading, ansiBlue, colorize),
		paint(strings.Repeat("-", len(heading)), ansiBlue, colorize),
	}
}

func paint(text, color string, colorize bool) string {
	if !colorize || color == "" {
		return text
	}
	return color + text + ansiReset
}

// isTerminal reports whether w is an interactive terminal.
func isTerminal(w io.Writer) bool {
	file, ok := w.(*os.File)
	if !ok {
		return false
	}
	fd := file.Fd()
	return isatty.IsTerminal(fd) || isatty.IsCygwinTerminal(fd)
}

// shouldColorize enables ANSI colors on terminals unless NO_COLOR is set.
func shouldColorize(w io.Writer) bool {
	return colorAllowed(os.Getenv("NO_COLOR")) && isTerminal(w)
}

func colorAllowed(noColor string) bool {
	return noColor == ""
}
