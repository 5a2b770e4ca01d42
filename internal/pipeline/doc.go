// Package pipeline runs one extraction end to end.
//
// A run validates the resolved configuration, creates the output directory,
// probes the input with ffprobe, insists on exactly one audio stream, and
// then hands the input to ffmpeg. Both tools are reached through a single
// command.Runner so tests can assert the exact invocations and their order.
//
// Failures are tagged with one of the category sentinels in errors.go while
// keeping the underlying condition (ffprobe.ErrNoAudioStream and friends)
// reachable through errors.Is.
package pipeline
