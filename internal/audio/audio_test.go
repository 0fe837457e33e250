package audio

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/nguyentantai21042004/video-analyzer/internal/failure"
	"github.com/nguyentantai21042004/video-analyzer/internal/logger"
	"github.com/nguyentantai21042004/video-analyzer/pkg/executor"
)

type fakeExecutor struct {
	run func(ctx context.Context, name string, args ...string) (executor.Output, error)
}

func (f *fakeExecutor) Execute(ctx context.Context, name string, args ...string) (executor.Output, error) {
	return f.run(ctx, name, args...)
}

func newTestExtractor(tempDir string, exec executor.Executor) *implExtractor {
	return &implExtractor{
		ffmpegPath: "ffmpeg-custom",
		sampleRate: 22050,
		tempDir:    tempDir,
		executor:   exec,
		logger:     logger.New("error"),
		newID:      func() string { return "audio-id" },
	}
}

func TestExtractSuccess(t *testing.T) {
	tempDir := t.TempDir()
	var gotName string
	exec := &fakeExecutor{
		run: func(ctx context.Context, name string, args ...string) (executor.Output, error) {
			gotName = name
			if _, ok := ctx.Deadline(); !ok {
				t.Error("extraction should run with a deadline")
			}
			if err := os.WriteFile(args[len(args)-1], []byte("RIFF"), 0o644); err != nil {
				t.Fatal(err)
			}
			return executor.Output{}, nil
		},
	}

	got, err := newTestExtractor(tempDir, exec).Extract(context.Background(), "/videos/in.mp4")
	if err != nil {
		t.Fatalf("Extract() error = %v", err)
	}
	if got != filepath.Join(tempDir, "audio-id.wav") {
		t.Errorf("Extract() = %q", got)
	}
	if gotName != "ffmpeg-custom" {
		t.Errorf("binary = %q, want ffmpeg-custom", gotName)
	}
}

func TestExtractErrors(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want failure.Kind
	}{
		{"nonzero exit", errors.New("exit status 1"), failure.ExtractionFailed},
		{"timeout", executor.ErrTimeout, failure.ExtractionTimeout},
		{"missing binary", executor.ErrNotFound, failure.ToolNotFound},
		{"output missing", nil, failure.ExtractionFailed},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			exec := &fakeExecutor{
				run: func(ctx context.Context, name string, args ...string) (executor.Output, error) {
					return executor.Output{}, tt.err
				},
			}
			_, err := newTestExtractor(t.TempDir(), exec).Extract(context.Background(), "/videos/in.mp4")
			if got := failure.KindOf(err); got != tt.want {
				t.Fatalf("Extract() error = %v, want kind %s", err, tt.want)
			}
		})
	}
}

// TestBuildExtractArgs verifies deterministic ffmpeg command arguments.
func TestBuildExtractArgs(t *testing.T) {
	args := buildExtractArgs("/in.mp4", "/tmp/out.wav", 16000)
	want := []string{
		"-i", "/in.mp4",
		"-vn",
		"-acodec", "pcm_s16le",
		"-ar", "16000",
		"-ac", "1",
		"-y",
		"-loglevel", "error",
		"/tmp/out.wav",
	}

	if len(args) != len(want) {
		t.Fatalf("args len = %d, want %d", len(args), len(want))
	}
	for i := range want {
		if args[i] != want[i] {
			t.Fatalf("args[%d] = %q, want %q", i, args[i], want[i])
		}
	}
}
