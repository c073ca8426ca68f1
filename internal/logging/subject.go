package logging

import "strings"

// FormatSubject builds the video/image/stage subject string used in console output.
func FormatSubject(videoID, imageIndex, stage string) string {
	videoID = strings.TrimSpace(videoID)
	imageIndex = strings.TrimSpace(imageIndex)
	stage = strings.TrimSpace(stage)
	parts := make([]string, 0, 2)
	switch {
	case videoID != "" && stage != "":
		parts = append(parts, "Video "+videoID+" ("+stage+")")
	case videoID != "":
		parts = append(parts, "Video "+videoID)
	case stage != "":
		parts = append(parts, stage)
	}
	if imageIndex != "" {
		parts = append(parts, "Image #"+imageIndex)
	}
	return strings.Join(parts, " · ")
}
