package audio

import (
	"strings"
	"testing"
)

func TestParseFormatCaseInsensitive(t *testing.T) {
	cases := map[string]Format{
		"WAV":   FormatWAV,
		"wav":   FormatWAV,
		" mp3 ": FormatMP3,
		"Opus":  FormatOpus,
		"OPUS":  FormatOpus,
	}
	for input, want := range cases {
		got, err := ParseFormat(input)
		if err != nil {
			t.Fatalf("ParseFormat(%q) returned error: %v", input, err)
		}
		if got != want {
			t.Fatalf("ParseFormat(%q) = %v, want %v", input, got, want)
		}
	}
}

func TestParseFormatRejectsUnknown(t *testing.T) {
	_, err := ParseFormat("flac")
	if err == nil {
		t.Fatal("expected error for unsupported format")
	}
	if !strings.Contains(err.Error(), "WAV, MP3, OPUS") {
		t.Fatalf("expected supported list in error, got %q", err)
	}
	if strings.Contains(err.Error(), "did you mean") {
		t.Fatalf("did not expect a suggestion for flac, got %q", err)
	}
}

func TestParseFormatSuggestsClosestName(t *testing.T) {
	_, err := ParseFormat("wave")
	if err == nil {
		t.Fatal("expected error for wave")
	}
	if !strings.Contains(err.Error(), "did you mean WAV?") {
		t.Fatalf("expected WAV suggestion, got %q", err)
	}
}

func TestExtensions(t *testing.T) {
	want := map[Format]string{FormatWAV: "wav", FormatMP3: "mp3", FormatOpus: "opus"}
	for format, ext := range want {
		if got := format.Extension(); got != ext {
			t.Fatalf("%v.Extension() = %q, want %q", format, got, ext)
		}
	}
}

func TestZeroValueIsWAV(t *testing.T) {
	var f Format
	if f != FormatWAV || f.String() != "WAV" {
		t.Fatalf("expected zero value WAV, got %v", f)
	}
}

func TestFormatFlagValue(t *testing.T) {
	var f Format
	if err := f.Set("mp3"); err != nil {
		t.Fatalf("Set returned error: %v", err)
	}
	if f != FormatMP3 {
		t.Fatalf("expected MP3, got %v", f)
	}
	if f.Type() != "format" {
		t.Fatalf("unexpected flag type %q", f.Type())
	}
	if err := f.Set("aac"); err == nil {
		t.Fatal("expected error for aac")
	}
	if f != FormatMP3 {
		t.Fatalf("failed Set must not change the value, got %v", f)
	}
}

func TestFormatTextRoundTrip(t *testing.T) {
	text, err := FormatOpus.MarshalText()
	if err != nil {
		t.Fatalf("MarshalText returned error: %v", err)
	}
	var f Format
	if err := f.UnmarshalText(text); err != nil {
		t.Fatalf("UnmarshalText returned error: %v", err)
	}
	if f != FormatOpus {
		t.Fatalf("expected OPUS, got %v", f)
	}
	if _, err := Format(42).MarshalText(); err == nil {
		t.Fatal("expected error marshaling invalid format")
	}
}
