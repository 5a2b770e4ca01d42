package config

import (
	"os"
	"path/filepath"
	"strings"

	"audioextract/internal/media/audio"
)

const (
	defaultFFprobePath    = "ffprobe"
	defaultFFmpegPath     = "ffmpeg"
	defaultFormat         = audio.FormatWAV
	defaultSampleRate     = 16000
	defaultChannels       = 1
	defaultLogFormat      = "console"
	defaultLogLevel       = "warn"
	defaultHistoryEnabled = true
)

// Default returns a Config populated with repository defaults.
func Default() Config {
	return Config{
		Tools: Tools{
			FFprobePath: defaultFFprobePath,
			FFmpegPath:  defaultFFmpegPath,
		},
		Output: Output{
			Format:     defaultFormat,
			SampleRate: defaultSampleRate,
			Channels:   defaultChannels,
		},
		Logging: Logging{
			Format: defaultLogFormat,
			Level:  defaultLogLevel,
		},
		History: History{
			Enabled: defaultHistoryEnabled,
			Path:    defaultHistoryPath(),
		},
	}
}

func defaultHistoryPath() string {
	if base, ok := os.LookupEnv("XDG_DATA_HOME"); ok && strings.TrimSpace(base) != "" {
		return filepath.Join(base, "audioextract", "history.db")
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return "~/.local/share/audioextract/history.db"
	}
	return filepath.Join(home, ".local", "share", "audioextract", "history.db")
}
