package models

// Video is a resolved, playable video file.
type Video struct {
	Path string
	// Downloaded is true when the file was fetched into the temp directory.
	Downloaded bool
}

// Saved artifact keys.
const (
	SavedTranscript = "transcript"
	SavedNotes      = "notes"
	SavedDocx       = "docx"
	SavedJSON       = "json"
)

// Result is the full outcome of one run.
// Field order is the key order of result.json.
type Result struct {
	URL         string            `json:"url"`
	Mode        Mode              `json:"mode"`
	Transcript  *string           `json:"transcript,omitempty"`
	Content     string            `json:"content"`
	VideoID     string            `json:"video_id"`
	VideoPath   string            `json:"video_path,omitempty"`
	Screenshots []string          `json:"screenshots,omitempty"`
	SavedFiles  map[string]string `json:"saved_files,omitempty"`
}

// HasTranscript reports whether a transcript was produced.
func (r *Result) HasTranscript() bool {
	return r.Transcript != nil
}

// Response is the envelope printed to the caller.
type Response struct {
	Status string  `json:"status"`
	Result *Result `json:"result,omitempty"`
	Error  string  `json:"error,omitempty"`
}

const (
	StatusSuccess = "success"
	StatusError   = "error"
)
