package source

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/nguyentantai21042004/video-analyzer/internal/failure"
	"github.com/nguyentantai21042004/video-analyzer/internal/logger"
	"github.com/nguyentantai21042004/video-analyzer/pkg/executor"
)

// fakeExecutor records calls and delegates to injected behavior.
type fakeExecutor struct {
	calls int
	run   func(ctx context.Context, name string, args ...string) (executor.Output, error)
}

func (f *fakeExecutor) Execute(ctx context.Context, name string, args ...string) (executor.Output, error) {
	f.calls++
	if f.run == nil {
		return executor.Output{}, nil
	}
	return f.run(ctx, name, args...)
}

func newTestResolver(tempDir string, exec executor.Executor) *implResolver {
	return &implResolver{
		tempDir:    tempDir,
		binaryPath: "yt-dlp",
		format:     "bestaudio/best",
		timeout:    time.Minute,
		executor:   exec,
		logger:     logger.New("error"),
		newID:      func() string { return "run-id" },
	}
}

func mustWriteFile(t *testing.T, path, content string) {
	t.Helper()
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		t.Fatalf("mkdir parent: %v", err)
	}
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("write file: %v", err)
	}
}

func TestResolveLocalFile(t *testing.T) {
	root := t.TempDir()
	exec := &fakeExecutor{}
	r := newTestResolver(root, exec)

	for _, ext := range SupportedExtensions {
		path := filepath.Join(root, "clip"+ext)
		mustWriteFile(t, path, "media")

		for _, ref := range []string{path, "file://" + path} {
			video, err := r.Resolve(context.Background(), ref)
			if err != nil {
				t.Fatalf("Resolve(%q) error = %v", ref, err)
			}
			if video.Path != path {
				t.Errorf("Resolve(%q) = %q, want %q", ref, video.Path, path)
			}
			if video.Downloaded {
				t.Errorf("Resolve(%q) marked local file as downloaded", ref)
			}
		}
	}

	if exec.calls != 0 {
		t.Errorf("downloader calls = %d, want 0", exec.calls)
	}
}

func TestResolveLocalFileUppercaseExtension(t *testing.T) {
	root := t.TempDir()
	path := filepath.Join(root, "CLIP.MP4")
	mustWriteFile(t, path, "media")

	if _, err := newTestResolver(root, &fakeExecutor{}).Resolve(context.Background(), path); err != nil {
		t.Fatalf("Resolve() error = %v", err)
	}
}

func TestResolveLocalErrors(t *testing.T) {
	root := t.TempDir()
	textPath := filepath.Join(root, "notes.txt")
	mustWriteFile(t, textPath, "text")
	dirPath := filepath.Join(root, "folder.mp4")
	if err := os.MkdirAll(dirPath, 0o755); err != nil {
		t.Fatal(err)
	}

	tests := []struct {
		name string
		ref  string
		want failure.Kind
	}{
		{"disallowed extension", textPath, failure.InvalidInput},
		{"directory", dirPath, failure.InvalidInput},
		{"missing file uri", "file://" + filepath.Join(root, "gone.mp4"), failure.NotFound},
		{"missing drive path", `C:\videos\gone.mp4`, failure.NotFound},
	}

	r := newTestResolver(root, &fakeExecutor{})
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := r.Resolve(context.Background(), tt.ref)
			if got := failure.KindOf(err); got != tt.want {
				t.Fatalf("Resolve() error = %v, want kind %s", err, tt.want)
			}
		})
	}
}

func TestResolveRemoteDownload(t *testing.T) {
	root := t.TempDir()
	var gotName string
	var gotArgs []string
	exec := &fakeExecutor{
		run: func(ctx context.Context, name string, args ...string) (executor.Output, error) {
			gotName = name
			gotArgs = append([]string{}, args...)
			if _, ok := ctx.Deadline(); !ok {
				t.Error("download should run with a deadline")
			}
			mustWriteFile(t, filepath.Join(root, "run-id.webm"), "video")
			return executor.Output{}, nil
		},
	}

	video, err := newTestResolver(root, exec).Resolve(context.Background(), "https://example.com/v.mp4")
	if err != nil {
		t.Fatalf("Resolve() error = %v", err)
	}

	if exec.calls != 1 {
		t.Fatalf("downloader calls = %d, want 1", exec.calls)
	}
	if gotName != "yt-dlp" {
		t.Errorf("binary = %q, want yt-dlp", gotName)
	}
	want := []string{
		"-f", "bestaudio/best",
		"-o", filepath.Join(root, "run-id.%(ext)s"),
		"--no-playlist",
		"--quiet",
		"--no-warnings",
		"https://example.com/v.mp4",
	}
	if len(gotArgs) != len(want) {
		t.Fatalf("args = %v, want %v", gotArgs, want)
	}
	for i := range want {
		if gotArgs[i] != want[i] {
			t.Fatalf("args[%d] = %q, want %q", i, gotArgs[i], want[i])
		}
	}
	if video.Path != filepath.Join(root, "run-id.webm") || !video.Downloaded {
		t.Errorf("Resolve() = %+v", video)
	}
}

func TestResolveRemoteErrors(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want failure.Kind
	}{
		{"nonzero exit", errors.New("exit status 1"), failure.DownloadFailed},
		{"timeout", executor.ErrTimeout, failure.DownloadTimeout},
		{"missing binary", executor.ErrNotFound, failure.ToolNotFound},
		{"no file produced", nil, failure.DownloadFailed},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			exec := &fakeExecutor{
				run: func(ctx context.Context, name string, args ...string) (executor.Output, error) {
					return executor.Output{}, tt.err
				},
			}
			_, err := newTestResolver(t.TempDir(), exec).Resolve(context.Background(), "https://example.com/watch?v=1")
			if got := failure.KindOf(err); got != tt.want {
				t.Fatalf("Resolve() error = %v, want kind %s", err, tt.want)
			}
		})
	}
}

func TestIsVideoFile(t *testing.T) {
	tests := map[string]bool{
		"a.mp4":      true,
		"b.MKV":      true,
		"c.flv":      true,
		"d.m4v":      true,
		"e.mp3":      false,
		"f":          false,
		"g.mp4.part": false,
	}
	for path, want := range tests {
		if got := IsVideoFile(path); got != want {
			t.Errorf("IsVideoFile(%q) = %v, want %v", path, got, want)
		}
	}
}
