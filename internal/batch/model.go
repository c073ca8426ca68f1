package batch

// DefaultGroupSize is the number of images per video when none is configured.
const DefaultGroupSize = 4

// ImageRecord describes one input image after caption extraction.
type ImageRecord struct {
	SourcePath string
	Filename   string
	PublicPath string
	Index      int
	Caption    string
	HasCaption bool
}

// VideoGroup is a contiguous slice of the batch rendered into one video.
// IDs start at 1.
type VideoGroup struct {
	ID     int
	Images []ImageRecord
}

// FrameJob is one frame of a group's render plan.
type FrameJob struct {
	GroupID          int
	FrameIndex       int
	Image            ImageRecord
	LastFrameOfImage bool
}

// Partition splits images into groups of size, preserving order. The final
// group may be short. A non-positive size falls back to DefaultGroupSize.
func Partition(images []ImageRecord, size int) []VideoGroup {
	if size <= 0 {
		size = DefaultGroupSize
	}
	groups := make([]VideoGroup, 0, (len(images)+size-1)/size)
	for start := 0; start < len(images); start += size {
		end := min(start+size, len(images))
		groups = append(groups, VideoGroup{
			ID:     len(groups) + 1,
			Images: images[start:end:end],
		})
	}
	return groups
}
