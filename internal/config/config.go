package config

import (
	"fmt"
	"path/filepath"
	"time"
)

type Config struct {
	Whisper     WhisperConfig     `yaml:"whisper"`
	AI          AIConfig          `yaml:"ai"`
	FFmpeg      FFmpegConfig      `yaml:"ffmpeg"`
	Download    DownloadConfig    `yaml:"download"`
	Screenshots ScreenshotsConfig `yaml:"screenshots"`
	Paths       PathsConfig       `yaml:"paths"`
	Output      OutputConfig      `yaml:"output"`
	Logging     LoggingConfig     `yaml:"logging"`
	Watch       WatchConfig       `yaml:"watch"`
	// EnvFile is an optional dotenv file loaded before environment overrides.
	EnvFile string `yaml:"env_file"`
}

// WhisperConfig selects the speech-to-text endpoint.
type WhisperConfig struct {
	APIKey   string `yaml:"api_key"`
	APIURL   string `yaml:"api_url"`
	Model    string `yaml:"model"`
	Language string `yaml:"language"`
}

// AIConfig selects the text-generation endpoint.
type AIConfig struct {
	Provider  string `yaml:"provider"`
	APIKey    string `yaml:"api_key"`
	APIURL    string `yaml:"api_url"`
	Model     string `yaml:"model"`
	MaxTokens int    `yaml:"max_tokens"`
}

type FFmpegConfig struct {
	BinaryPath string `yaml:"binary_path"`
	SampleRate int    `yaml:"sample_rate"`
	// MaxVideoDuration in seconds; 0 disables the check.
	MaxVideoDuration int `yaml:"max_video_duration"`
}

type DownloadConfig struct {
	BinaryPath     string `yaml:"binary_path"`
	Format         string `yaml:"format"`
	TimeoutSeconds int    `yaml:"timeout_seconds"`
}

type ScreenshotsConfig struct {
	Enabled  bool `yaml:"enabled"`
	Interval int  `yaml:"interval"`
	Max      int  `yaml:"max"`
}

type PathsConfig struct {
	Temp   string `yaml:"temp"`
	Output string `yaml:"output"`
}

type OutputConfig struct {
	KeepTempFiles bool `yaml:"keep_temp_files"`
	ExportDocx    bool `yaml:"export_docx"`
}

type LoggingConfig struct {
	Level string `yaml:"level"`
	Debug bool   `yaml:"debug"`
}

// WatchConfig drives the watch command.
type WatchConfig struct {
	Input string `yaml:"input"`
	Mode  string `yaml:"mode"`
	Style string `yaml:"style"`
}

const (
	ProviderOpenAI = "openai"
	ProviderGemini = "gemini"
)

// Default returns the configuration used when nothing overrides it.
func Default() *Config {
	return &Config{
		Whisper: WhisperConfig{
			Model:    "whisper-1",
			Language: "auto",
		},
		AI: AIConfig{
			Provider:  ProviderOpenAI,
			Model:     "gpt-4o-mini",
			MaxTokens: 4000,
		},
		FFmpeg: FFmpegConfig{
			BinaryPath:       "ffmpeg",
			SampleRate:       16000,
			MaxVideoDuration: 3600,
		},
		Download: DownloadConfig{
			BinaryPath:     "yt-dlp",
			Format:         "bestaudio/best",
			TimeoutSeconds: 300,
		},
		Screenshots: ScreenshotsConfig{
			Enabled:  true,
			Interval: 30,
			Max:      10,
		},
		Paths: PathsConfig{
			Temp:   "./temp",
			Output: "./output",
		},
		Logging: LoggingConfig{
			Level: "warn",
		},
		Watch: WatchConfig{
			Input: "data/input",
			Mode:  "analyze",
			Style: "brief",
		},
		EnvFile: "config.env",
	}
}

// DownloadTimeout bounds one remote fetch.
func (c *Config) DownloadTimeout() time.Duration {
	return time.Duration(c.Download.TimeoutSeconds) * time.Second
}

// LogLevel is the effective logger level; the debug flag forces "debug".
func (c *Config) LogLevel() string {
	if c.Logging.Debug {
		return "debug"
	}
	return c.Logging.Level
}

func (c *Config) Validate() error {
	if c.FFmpeg.BinaryPath == "" {
		return fmt.Errorf("ffmpeg.binary_path is required")
	}
	if c.FFmpeg.SampleRate <= 0 {
		return fmt.Errorf("ffmpeg.sample_rate must be positive")
	}
	if c.FFmpeg.MaxVideoDuration < 0 {
		return fmt.Errorf("ffmpeg.max_video_duration must not be negative")
	}
	if c.Download.BinaryPath == "" {
		return fmt.Errorf("download.binary_path is required")
	}
	if c.Download.TimeoutSeconds <= 0 {
		return fmt.Errorf("download.timeout_seconds must be positive")
	}
	if c.Screenshots.Enabled && c.Screenshots.Interval <= 0 {
		return fmt.Errorf("screenshots.interval must be positive")
	}
	if c.Screenshots.Max < 0 {
		return fmt.Errorf("screenshots.max must not be negative")
	}
	if c.AI.Provider != ProviderOpenAI && c.AI.Provider != ProviderGemini {
		return fmt.Errorf("ai.provider must be %q or %q, got %q", ProviderOpenAI, ProviderGemini, c.AI.Provider)
	}
	if c.AI.MaxTokens <= 0 {
		return fmt.Errorf("ai.max_tokens must be positive")
	}
	if c.Paths.Temp == "" {
		return fmt.Errorf("paths.temp is required")
	}
	if c.Paths.Output == "" {
		return fmt.Errorf("paths.output is required")
	}

	if c.Whisper.Model == "" {
		c.Whisper.Model = "whisper-1"
	}
	if c.Whisper.Language == "" {
		c.Whisper.Language = "auto"
	}
	if c.AI.Model == "" {
		if c.AI.Provider == ProviderGemini {
			c.AI.Model = "gemini-2.5-flash"
		} else {
			c.AI.Model = "gpt-4o-mini"
		}
	}
	if c.Download.Format == "" {
		c.Download.Format = "bestaudio/best"
	}
	if c.Logging.Level == "" {
		c.Logging.Level = "warn"
	}

	var err error
	if c.Paths.Temp, err = filepath.Abs(c.Paths.Temp); err != nil {
		return fmt.Errorf("resolve paths.temp: %w", err)
	}
	if c.Paths.Output, err = filepath.Abs(c.Paths.Output); err != nil {
		return fmt.Errorf("resolve paths.output: %w", err)
	}

	return nil
}
