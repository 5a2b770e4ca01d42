package main

import (
	"strings"

	"github.com/spf13/pflag"

	"audioextract/internal/config"
	"audioextract/internal/media/audio"
)

// extractFlags holds the per-run settings shared by the root and check commands.
type extractFlags struct {
	input       string
	ffprobePath string
	ffmpegPath  string
	format      audio.Format
	outputDir   string
	sampleRate  int
	channels    int
}

func (f *extractFlags) bindTools(fs *pflag.FlagSet) {
	fs.StringVar(&f.ffprobePath, "ffprobe-path", "ffprobe", "Path to the ffprobe executable")
	fs.StringVar(&f.ffmpegPath, "ffmpeg-path", "ffmpeg", "Path to the ffmpeg executable")
}

func (f *extractFlags) bindPaths(fs *pflag.FlagSet) {
	fs.StringVarP(&f.input, "input", "i", "", "Media file to extract audio from (required)")
	fs.StringVarP(&f.outputDir, "output", "o", "", "Directory to write the extracted audio to (required)")
}

func (f *extractFlags) bindEncoding(fs *pflag.FlagSet) {
	f.format = audio.FormatWAV
	fs.VarP(&f.format, "format", "f", "Output format: "+joinFormats())
	fs.IntVar(&f.sampleRate, "output-sample-rate", 16000, "Output sample rate in Hz")
	fs.IntVar(&f.channels, "output-channels", 1, "Output channel count")
}

// apply copies explicitly set flags onto cfg. Unset flags leave file values alone.
func (f *extractFlags) apply(fs *pflag.FlagSet, cfg *config.Config) {
	if fs.Lookup("input") != nil {
		cfg.Input = f.input
	}
	if fs.Changed("ffprobe-path") {
		cfg.Tools.FFprobePath = f.ffprobePath
	}
	if fs.Changed("ffmpeg-path") {
		cfg.Tools.FFmpegPath = f.ffmpegPath
	}
	if fs.Changed("output") {
		cfg.Output.Dir = f.outputDir
	}
	if fs.Changed("format") {
		cfg.Output.Format = f.format
	}
	if fs.Changed("output-sample-rate") {
		cfg.Output.SampleRate = f.sampleRate
	}
	if fs.Changed("output-channels") {
		cfg.Output.Channels = f.channels
	}
}

func joinFormats() string {
	return strings.Join(audio.FormatNames(), ", ")
}
