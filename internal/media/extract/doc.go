// Package extract re-encodes a media file's audio with ffmpeg, forcing the
// channel count and sample rate. The output codec and container follow the
// output file's extension.
package extract
