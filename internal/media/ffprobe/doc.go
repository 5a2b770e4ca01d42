// Package ffprobe provides a typed wrapper around ffprobe JSON stream listings.
//
// This package depends only on internal/command and could be extracted as a
// standalone library.
//
// Key types:
//   - Result: parsed ffprobe output containing the stream list
//   - Stream: one stream descriptor; every field is optional (nil when absent)
//   - Prober: runs ffprobe through a command.Runner
//
// Primary entry points:
//   - Prober.AudioStream: probes a file and enforces exactly one audio stream
//   - ParseJSON: decodes a payload without running ffprobe
//   - SoleAudioStream: the cardinality rule on an already-decoded stream list
package ffprobe
