package main

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"strings"
	"testing"

	"github.com/nguyentantai21042004/video-analyzer/internal/failure"
	"github.com/nguyentantai21042004/video-analyzer/internal/logger"
	"github.com/nguyentantai21042004/video-analyzer/internal/models"
)

type fakeProcessor struct {
	req    models.Request
	result *models.Result
	err    error
}

func (f *fakeProcessor) Analyze(ctx context.Context, req models.Request) (*models.Result, error) {
	f.req = req
	return f.result, f.err
}

func (f *fakeProcessor) Process(ctx context.Context, videoPath string) error {
	return nil
}

func TestServe(t *testing.T) {
	tests := []struct {
		name       string
		input      string
		result     *models.Result
		err        error
		wantStatus string
		wantError  string
	}{
		{
			name:       "success",
			input:      `{"url":"https://example.com/v?a=1&b=2","mode":"summary","style":"casual"}`,
			result:     &models.Result{URL: "https://example.com/v?a=1&b=2", Mode: models.ModeSummary, Content: "tóm tắt"},
			wantStatus: models.StatusSuccess,
		},
		{
			name:       "pipeline failure",
			input:      `{"url":"clip.mp4"}`,
			err:        failure.API(500, "internal", "transcription request failed"),
			wantStatus: models.StatusError,
			wantError:  "VideoAnalyzer error: ApiError: transcription request failed (500): internal",
		},
		{
			name:       "foreign error",
			input:      `{"url":"clip.mp4"}`,
			err:        errors.New("boom"),
			wantStatus: models.StatusError,
			wantError:  "VideoAnalyzer error: InternalError: unexpected failure: boom",
		},
		{
			name:       "malformed request",
			input:      `{"url":`,
			wantStatus: models.StatusError,
			wantError:  "VideoAnalyzer error: InvalidInput: decode request",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			proc := &fakeProcessor{result: tt.result, err: tt.err}
			var out bytes.Buffer

			err := serve(context.Background(), strings.NewReader(tt.input), &out, proc, logger.New("error"))
			if (err != nil) != (tt.wantStatus == models.StatusError) {
				t.Fatalf("serve() error = %v, want status %s", err, tt.wantStatus)
			}

			var resp models.Response
			if jerr := json.Unmarshal(out.Bytes(), &resp); jerr != nil {
				t.Fatalf("decode response %q: %v", out.String(), jerr)
			}
			if resp.Status != tt.wantStatus {
				t.Errorf("status = %q, want %q", resp.Status, tt.wantStatus)
			}
			if tt.wantError != "" && !strings.HasPrefix(resp.Error, tt.wantError) {
				t.Errorf("error = %q, want prefix %q", resp.Error, tt.wantError)
			}
			if tt.result != nil {
				if resp.Result == nil || resp.Result.Content != tt.result.Content {
					t.Errorf("result = %+v, want %+v", resp.Result, tt.result)
				}
				if !strings.Contains(out.String(), "a=1&b=2") || !strings.Contains(out.String(), "tóm tắt") {
					t.Errorf("response escapes text: %s", out.String())
				}
			}
		})
	}
}

func TestServePassesRequest(t *testing.T) {
	proc := &fakeProcessor{result: &models.Result{}}
	input := `{"url":"clip.mp4","mode":"analyze","language":"en","style":"custom","custom_prompt":"Notes: {transcript}"}`

	if err := serve(context.Background(), strings.NewReader(input), &bytes.Buffer{}, proc, logger.New("error")); err != nil {
		t.Fatalf("serve() error = %v", err)
	}

	want := models.Request{URL: "clip.mp4", Mode: models.ModeAnalyze, Language: "en", Style: models.StyleCustom, CustomPrompt: "Notes: {transcript}"}
	if proc.req != want {
		t.Errorf("request = %+v, want %+v", proc.req, want)
	}
}

func TestExecuteUnknownCommand(t *testing.T) {
	if err := execute([]string{"translate"}); err == nil {
		t.Error("execute() error = nil, want error for unknown command")
	}
	if err := execute([]string{"help"}); err != nil {
		t.Errorf("execute(help) error = %v", err)
	}
}
