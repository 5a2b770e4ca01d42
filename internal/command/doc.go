// Package command runs external tools and reports how they exited.
//
// Runner is the seam between audioextract and the ffprobe/ffmpeg binaries.
// ExecRunner is the production implementation; tests substitute the gomock
// double in the mocks subpackage so stream validation and argument shaping can
// be exercised without spawning processes.
package command
