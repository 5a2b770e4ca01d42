package audio

import (
	"path/filepath"
	"testing"
)

func TestOutputPath(t *testing.T) {
	input := filepath.FromSlash("/a/b/song.flac")
	out := filepath.FromSlash("/out")

	cases := []struct {
		format Format
		want   string
	}{
		{FormatOpus, "/out/song.opus"},
		{FormatWAV, "/out/song.wav"},
		{FormatMP3, "/out/song.mp3"},
	}
	for _, tc := range cases {
		if got := OutputPath(input, out, tc.format); got != filepath.FromSlash(tc.want) {
			t.Fatalf("OutputPath(%v) = %q, want %q", tc.format, got, tc.want)
		}
	}
}

func TestOutputPathStemEdgeCases(t *testing.T) {
	out := filepath.FromSlash("/out")
	cases := map[string]string{
		"/media/archive.tar.gz": "/out/archive.tar.wav",
		"/media/noext":          "/out/noext.wav",
		"/media/.track":         "/out/.track.wav",
		"relative/clip.mkv":     "/out/clip.wav",
	}
	for input, want := range cases {
		if got := OutputPath(filepath.FromSlash(input), out, FormatWAV); got != filepath.FromSlash(want) {
			t.Fatalf("OutputPath(%q) = %q, want %q", input, got, want)
		}
	}
}
