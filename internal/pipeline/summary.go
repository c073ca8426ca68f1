package pipeline

import (
	"carousel/internal/batch"
)

const (
	maxSampleCaptions = 5
	sampleCaptionLen  = 100
)

// Summary aggregates a run for display.
type Summary struct {
	RunID          string
	TotalImages    int
	WithCaption    int
	WithoutCaption int
	GroupsRendered int
	GroupsSkipped  int
	FailedFrames   int
	SampleCaptions []string
	ResultsPath    string
	OutputDir      string
	Videos         []VideoReport
}

func (s *Summary) addVideos(videos []VideoReport) {
	s.Videos = videos
	for _, v := range videos {
		if v.Created {
			s.GroupsRendered++
		} else {
			s.GroupsSkipped++
		}
		s.FailedFrames += len(v.FailedFrames)
	}
}

func (s *Summary) addRecords(records []batch.ImageRecord) {
	s.TotalImages = len(records)
	for _, rec := range records {
		if !rec.HasCaption {
			continue
		}
		s.WithCaption++
		if len(s.SampleCaptions) < maxSampleCaptions {
			s.SampleCaptions = append(s.SampleCaptions, sampleCaption(rec.Caption))
		}
	}
	s.WithoutCaption = s.TotalImages - s.WithCaption
}

func sampleCaption(text string) string {
	runes := []rune(text)
	if len(runes) <= sampleCaptionLen {
		return text
	}
	return string(runes[:sampleCaptionLen]) + "..."
}
