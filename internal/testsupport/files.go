package testsupport

import (
	"bytes"
	"os"
	"path/filepath"
	"strconv"
	"testing"
)

// WriteFile creates a placeholder media file of size bytes, making parent
// directories as needed. A size <= 0 writes a single byte.
func WriteFile(t testing.TB, path string, size int) {
	t.Helper()

	if size <= 0 {
		size = 1
	}
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		t.Fatalf("mkdir for %s: %v", path, err)
	}
	if err := os.WriteFile(path, bytes.Repeat([]byte{0x42}, size), 0o644); err != nil {
		t.Fatalf("write %s: %v", path, err)
	}
}

// ProbeJSON renders a minimal ffprobe stream listing with one entry per codec type.
func ProbeJSON(codecTypes ...string) string {
	var buf bytes.Buffer
	buf.WriteString(`{"streams": [`)
	for i, codecType := range codecTypes {
		if i > 0 {
			buf.WriteString(", ")
		}
		buf.WriteString(`{"index": `)
		buf.WriteString(strconv.Itoa(i))
		buf.WriteString(`, "codec_type": "`)
		buf.WriteString(codecType)
		buf.WriteString(`", "codec_name": "`)
		switch codecType {
		case "audio":
			buf.WriteString(`aac", "channels": 2, "sample_rate": "48000"}`)
		case "video":
			buf.WriteString(`h264", "width": 1920, "height": 1080}`)
		default:
			buf.WriteString(`unknown"}`)
		}
	}
	buf.WriteString("]}")
	return buf.String()
}
