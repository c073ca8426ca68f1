package render

import (
	"fmt"

	"carousel/internal/batch"
)

// DefaultFramesPerSlide is four seconds at 30 fps.
const DefaultFramesPerSlide = 120

// PlanFrames lists the frames of group in render order.
func PlanFrames(group batch.VideoGroup, framesPerSlide int) []batch.FrameJob {
	if framesPerSlide <= 0 {
		framesPerSlide = DefaultFramesPerSlide
	}
	jobs := make([]batch.FrameJob, 0, len(group.Images)*framesPerSlide)
	for pos, img := range group.Images {
		for offset := range framesPerSlide {
			jobs = append(jobs, batch.FrameJob{
				GroupID:          group.ID,
				FrameIndex:       pos*framesPerSlide + offset,
				Image:            img,
				LastFrameOfImage: offset == framesPerSlide-1,
			})
		}
	}
	return jobs
}

// FrameFileName returns the file name of a rendered frame.
func FrameFileName(index int, format string) string {
	return fmt.Sprintf("frame-%04d.%s", index, frameExtension(format))
}

// FramePattern is the printf-style pattern matching FrameFileName, as the
// encoder expects it.
func FramePattern(format string) string {
	return "frame-%04d." + frameExtension(format)
}

// FramesDirName is the per-group frame directory name.
func FramesDirName(groupID int) string {
	return fmt.Sprintf("frames%d", groupID)
}

func frameExtension(format string) string {
	if format == "jpeg" {
		return "jpeg"
	}
	return "png"
}
