package transcriber

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"mime/multipart"
	"net/http"
	"net/textproto"
	"os"
	"path/filepath"
	"strings"

	"github.com/nguyentantai21042004/video-analyzer/internal/failure"
)

const transcriptionPath = "/audio/transcriptions"

type transcriptionResponse struct {
	Text *string `json:"text"`
}

// Transcribe uploads the waveform and returns the recognized text verbatim.
// An empty language falls back to the configured default; "auto" sends no hint.
func (t *implTranscriber) Transcribe(ctx context.Context, audioPath, language string) (string, error) {
	if _, err := os.Stat(audioPath); err != nil {
		return "", failure.Wrap(failure.NotFound, err, "audio file does not exist: %s", audioPath)
	}
	if language == "" {
		language = t.defaultLanguage
	}

	t.logger.Debug(ctx, "Transcribing audio: %s", audioPath)

	ctx, cancel := context.WithTimeout(ctx, t.timeout)
	defer cancel()

	body, contentType := t.multipartBody(audioPath, language)
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, t.endpoint, body)
	if err != nil {
		return "", failure.Wrap(failure.InternalError, err, "build transcription request")
	}
	req.Header.Set("Authorization", "Bearer "+t.apiKey)
	req.Header.Set("Content-Type", contentType)

	resp, err := t.client.Do(req)
	if err != nil {
		if failure.IsTimeout(err) {
			return "", failure.Wrap(failure.ApiTimeout, err, "transcription request timed out after %s", t.timeout)
		}
		return "", failure.Wrap(failure.ApiError, err, "transcription request failed")
	}
	defer resp.Body.Close()

	data, err := io.ReadAll(resp.Body)
	if err != nil {
		if failure.IsTimeout(err) {
			return "", failure.Wrap(failure.ApiTimeout, err, "transcription response timed out")
		}
		return "", failure.Wrap(failure.ApiError, err, "read transcription response")
	}

	t.logger.Debug(ctx, "Transcription API status: %d", resp.StatusCode)

	if resp.StatusCode != http.StatusOK {
		return "", failure.API(resp.StatusCode, string(data), "transcription request failed")
	}

	var parsed transcriptionResponse
	if err := json.Unmarshal(data, &parsed); err != nil || parsed.Text == nil {
		return "", failure.API(resp.StatusCode, string(data), "malformed response")
	}

	t.logger.Debug(ctx, "Transcription completed, %d characters", len(*parsed.Text))
	return *parsed.Text, nil
}

// multipartBody streams the form so large waveforms are not buffered in memory.
func (t *implTranscriber) multipartBody(audioPath, language string) (io.Reader, string) {
	pr, pw := io.Pipe()
	mw := multipart.NewWriter(pw)

	go func() {
		pw.CloseWithError(writeForm(mw, audioPath, t.model, language))
	}()

	return pr, mw.FormDataContentType()
}

func writeForm(mw *multipart.Writer, audioPath, model, language string) error {
	header := make(textproto.MIMEHeader)
	header.Set("Content-Disposition", fmt.Sprintf(`form-data; name="file"; filename="%s"`, filepath.Base(audioPath)))
	header.Set("Content-Type", "audio/wav")

	part, err := mw.CreatePart(header)
	if err != nil {
		return err
	}

	f, err := os.Open(audioPath)
	if err != nil {
		return err
	}
	defer f.Close()

	if _, err := io.Copy(part, f); err != nil {
		return err
	}

	if err := mw.WriteField("model", model); err != nil {
		return err
	}
	if language != "" && language != "auto" {
		if err := mw.WriteField("language", language); err != nil {
			return err
		}
	}
	return mw.Close()
}

// normalizeEndpoint appends the transcription sub-path unless already present.
func normalizeEndpoint(apiURL string) string {
	u := strings.TrimRight(apiURL, "/")
	if !strings.HasSuffix(u, transcriptionPath) {
		u += transcriptionPath
	}
	return u
}
