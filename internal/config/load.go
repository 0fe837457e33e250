package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"strconv"
	"strings"

	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"
)

// Load builds the configuration from defaults, an optional YAML file,
// an optional dotenv file and the process environment, in that order.
func Load(path string) (*Config, error) {
	cfg := Default()

	if path != "" {
		data, err := os.ReadFile(path)
		if err != nil {
			return nil, fmt.Errorf("read config: %w", err)
		}
		if err := yaml.Unmarshal(data, cfg); err != nil {
			return nil, fmt.Errorf("parse config: %w", err)
		}
	}

	if cfg.EnvFile != "" {
		// Variables already present in the environment are not overwritten.
		if err := godotenv.Load(cfg.EnvFile); err != nil && !errors.Is(err, fs.ErrNotExist) {
			return nil, fmt.Errorf("load env file %s: %w", cfg.EnvFile, err)
		}
	}

	if err := applyEnv(cfg); err != nil {
		return nil, err
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("validate config: %w", err)
	}
	return cfg, nil
}

func applyEnv(cfg *Config) error {
	envString(&cfg.Whisper.APIKey, "WHISPER_API_KEY", "API_Key")
	envString(&cfg.Whisper.APIURL, "WHISPER_API_URL", "API_URL")
	envString(&cfg.Whisper.Model, "WHISPER_MODEL")
	envString(&cfg.Whisper.Language, "WHISPER_LANGUAGE")

	envString(&cfg.AI.Provider, "AI_PROVIDER")
	envString(&cfg.AI.APIKey, "AI_API_KEY", "API_Key")
	envString(&cfg.AI.APIURL, "AI_API_URL", "API_URL")
	envString(&cfg.AI.Model, "AI_MODEL")

	envString(&cfg.FFmpeg.BinaryPath, "FFMPEG_PATH")
	envString(&cfg.Download.BinaryPath, "YTDLP_PATH")
	envString(&cfg.Download.Format, "YTDLP_FORMAT")
	envString(&cfg.Paths.Temp, "TEMP_DIR")
	envString(&cfg.Paths.Output, "OUTPUT_DIR")
	envString(&cfg.Logging.Level, "LOG_LEVEL")
	envString(&cfg.Watch.Input, "WATCH_INPUT")

	ints := []struct {
		dst *int
		key string
	}{
		{&cfg.AI.MaxTokens, "AI_MAX_TOKENS"},
		{&cfg.FFmpeg.MaxVideoDuration, "MAX_VIDEO_DURATION"},
		{&cfg.FFmpeg.SampleRate, "AUDIO_SAMPLE_RATE"},
		{&cfg.Download.TimeoutSeconds, "DOWNLOAD_TIMEOUT"},
		{&cfg.Screenshots.Interval, "SCREENSHOT_INTERVAL"},
		{&cfg.Screenshots.Max, "MAX_SCREENSHOTS"},
	}
	for _, i := range ints {
		if err := envInt(i.dst, i.key); err != nil {
			return err
		}
	}

	envBool(&cfg.Screenshots.Enabled, "ENABLE_SCREENSHOTS")
	envBool(&cfg.Logging.Debug, "DEBUG")
	envBool(&cfg.Output.KeepTempFiles, "KEEP_TEMP_FILES")
	envBool(&cfg.Output.ExportDocx, "EXPORT_DOCX")

	return nil
}

// envString sets dst from the first non-empty variable among keys.
func envString(dst *string, keys ...string) {
	for _, key := range keys {
		if v := os.Getenv(key); v != "" {
			*dst = v
			return
		}
	}
}

func envInt(dst *int, key string) error {
	v := strings.TrimSpace(os.Getenv(key))
	if v == "" {
		return nil
	}
	n, err := strconv.Atoi(v)
	if err != nil {
		return fmt.Errorf("parse %s: %w", key, err)
	}
	*dst = n
	return nil
}

// envBool treats only a case-insensitive "true" as true.
func envBool(dst *bool, key string) {
	v := strings.TrimSpace(os.Getenv(key))
	if v == "" {
		return
	}
	*dst = strings.EqualFold(v, "true")
}
