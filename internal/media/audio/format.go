package audio

import (
	"errors"
	"fmt"
	"strings"

	"github.com/hbollon/go-edlib"
	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

// Format selects the output container/codec.
type Format int

const (
	// FormatWAV is uncontainerized PCM WAV. It is the zero value and default.
	FormatWAV Format = iota
	// FormatMP3 is MPEG-1 Layer III.
	FormatMP3
	// FormatOpus is Opus in an Ogg container.
	FormatOpus
)

// suggestionThreshold is the minimum Jaro-Winkler similarity for a "did you mean" hint.
const suggestionThreshold = 0.8

var formatNames = map[Format]string{
	FormatWAV:  "WAV",
	FormatMP3:  "MP3",
	FormatOpus: "OPUS",
}

var formatExtensions = map[Format]string{
	FormatWAV:  "wav",
	FormatMP3:  "mp3",
	FormatOpus: "opus",
}

// Formats returns every supported format in declaration order.
func Formats() []Format {
	return []Format{FormatWAV, FormatMP3, FormatOpus}
}

// FormatNames returns the canonical names of every supported format.
func FormatNames() []string {
	all := Formats()
	names := make([]string, 0, len(all))
	for _, f := range all {
		names = append(names, f.String())
	}
	return names
}

// ParseFormat resolves a format name case-insensitively.
func ParseFormat(value string) (Format, error) {
	name := cases.Upper(language.Und).String(strings.TrimSpace(value))
	for _, f := range Formats() {
		if f.String() == name {
			return f, nil
		}
	}
	msg := fmt.Sprintf("unsupported format %q (supported: %s)", value, strings.Join(FormatNames(), ", "))
	if hint := suggestFormat(name); hint != "" {
		msg += fmt.Sprintf("; did you mean %s?", hint)
	}
	return FormatWAV, errors.New(msg)
}

func suggestFormat(name string) string {
	if name == "" {
		return ""
	}
	best := ""
	var bestScore float32
	for _, candidate := range FormatNames() {
		score := edlib.JaroWinklerSimilarity(name, candidate)
		if score > bestScore {
			best, bestScore = candidate, score
		}
	}
	if bestScore < suggestionThreshold {
		return ""
	}
	return best
}

// String returns the canonical upper-case name.
func (f Format) String() string {
	if name, ok := formatNames[f]; ok {
		return name
	}
	return fmt.Sprintf("Format(%d)", int(f))
}

// Extension returns the file extension (without dot) ffmpeg uses to pick the codec.
func (f Format) Extension() string {
	return formatExtensions[f]
}

// Valid reports whether f is one of the supported formats.
func (f Format) Valid() bool {
	_, ok := formatNames[f]
	return ok
}

// Set implements pflag.Value.
func (f *Format) Set(value string) error {
	parsed, err := ParseFormat(value)
	if err != nil {
		return err
	}
	*f = parsed
	return nil
}

// Type implements pflag.Value.
func (f *Format) Type() string {
	return "format"
}

// MarshalText implements encoding.TextMarshaler.
func (f Format) MarshalText() ([]byte, error) {
	if !f.Valid() {
		return nil, fmt.Errorf("invalid format %d", int(f))
	}
	return []byte(f.String()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler.
func (f *Format) UnmarshalText(text []byte) error {
	return f.Set(string(text))
}
