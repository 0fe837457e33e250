package audio

import "context"

// Extractor converts a video into a mono PCM waveform file.
type Extractor interface {
	Extract(ctx context.Context, videoPath string) (string, error)
}
