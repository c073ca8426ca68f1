package main

import (
	"fmt"
	"path/filepath"
	"strconv"

	"carousel/internal/batch"
	"carousel/internal/pipeline"
)

func summaryLines(summary pipeline.Summary, full bool, colorize bool) []string {
	lines := renderSectionHeader("Captions", colorize)
	lines = append(lines,
		renderStatusLine("Images", statusInfo, strconv.Itoa(summary.TotalImages), colorize),
		renderStatusLine("With caption", captionKind(summary), strconv.Itoa(summary.WithCaption), colorize),
		renderStatusLine("Without caption", statusInfo, strconv.Itoa(summary.WithoutCaption), colorize),
		renderStatusLine("Results", statusOK, summary.ResultsPath, colorize),
	)
	if len(summary.SampleCaptions) > 0 {
		lines = append(lines, statusIndent+"Samples:")
		for i, sample := range summary.SampleCaptions {
			lines = append(lines, fmt.Sprintf("%s%s%d. %s", statusIndent, statusIndent, i+1, sample))
		}
	}
	if !full {
		return lines
	}

	lines = append(lines, "")
	lines = append(lines, renderSectionHeader("Videos", colorize)...)
	videoKind := statusOK
	switch {
	case len(summary.Videos) == 0:
		videoKind = statusInfo
	case summary.GroupsRendered == 0:
		videoKind = statusError
	case summary.GroupsSkipped > 0:
		videoKind = statusWarn
	}
	lines = append(lines,
		renderStatusLine("Created", videoKind, fmt.Sprintf("%d of %d", summary.GroupsRendered, len(summary.Videos)), colorize),
		renderStatusLine("Failed frames", failedFramesKind(summary.FailedFrames), strconv.Itoa(summary.FailedFrames), colorize),
		renderStatusLine("Output", statusInfo, summary.OutputDir, colorize),
	)
	return lines
}

// documentLines describes the result document as read back from disk.
func documentLines(path string, doc batch.BatchResult, colorize bool) []string {
	kind := statusOK
	if doc.Metadata.TotalImages != len(doc.Images) {
		kind = statusWarn
	}
	lines := renderSectionHeader("Document", colorize)
	return append(lines,
		renderStatusLine("Path", statusInfo, path, colorize),
		renderStatusLine("Entries", kind, fmt.Sprintf("%d images, %d prompts", len(doc.Images), doc.Metadata.ImagesWithPrompts), colorize),
		renderStatusLine("Source", statusInfo, doc.Metadata.SourceDirectory, colorize),
	)
}

func captionKind(summary pipeline.Summary) statusKind {
	if summary.TotalImages > 0 && summary.WithCaption == 0 {
		return statusWarn
	}
	return statusOK
}

func failedFramesKind(failed int) statusKind {
	if failed > 0 {
		return statusWarn
	}
	return statusOK
}

func renderVideoTable(videos []pipeline.VideoReport) string {
	headers := []string{"Video", "Images", "Frames", "Failed", "Created", "Detail"}
	rows := make([][]string, 0, len(videos))
	for _, v := range videos {
		detail := filepath.Base(v.OutputPath)
		if !v.Created {
			detail = v.Reason
		}
		rows = append(rows, []string{
			strconv.Itoa(v.ID),
			strconv.Itoa(v.Images),
			strconv.Itoa(v.FrameCount),
			strconv.Itoa(len(v.FailedFrames)),
			yesNo(v.Created),
			detail,
		})
	}
	return renderTable(headers, rows, []columnAlignment{alignRight, alignRight, alignRight, alignRight, alignLeft, alignLeft})
}
