// Package audio defines the output formats audioextract can produce and how
// an output file path is derived from the input path.
//
// Format is a closed set (WAV, MP3, OPUS). Each format maps to a file
// extension only; the codec is left to ffmpeg's extension-based inference, so
// no encoder flags are derived here.
//
// Key types:
//   - Format: output container/codec selector, usable as a cobra flag value
//     and as a TOML text value
//
// Primary entry points:
//   - ParseFormat: case-insensitive name lookup with a "did you mean" hint
//   - OutputPath: <dir>/<input stem>.<extension>
package audio
