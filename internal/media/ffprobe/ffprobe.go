package ffprobe

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"strconv"
	"strings"
)

// CodecTypeAudio is the codec_type ffprobe reports for audio streams.
const CodecTypeAudio = "audio"

// CodecTypeVideo is the codec_type ffprobe reports for video streams.
const CodecTypeVideo = "video"

// Result represents the parsed output from an ffprobe inspection.
type Result struct {
	Streams []Stream `json:"streams"`
	raw     []byte
}

// Stream mirrors ffprobe's stream schema. Fields ffprobe omits stay nil.
type Stream struct {
	Index          *int    `json:"index,omitempty"`
	CodecName      *string `json:"codec_name,omitempty"`
	CodecLongName  *string `json:"codec_long_name,omitempty"`
	CodecType      *string `json:"codec_type,omitempty"`
	CodecTimeBase  *string `json:"codec_time_base,omitempty"`
	CodecTagString *string `json:"codec_tag_string,omitempty"`
	CodecTag       *string `json:"codec_tag,omitempty"`
	Width          *int    `json:"width,omitempty"`
	Height         *int    `json:"height,omitempty"`
	HasBFrames     *int    `json:"has_b_frames,omitempty"`
	PixFmt         *string `json:"pix_fmt,omitempty"`
	Level          *int    `json:"level,omitempty"`
	IsAVC          *string `json:"is_avc,omitempty"`
	NALLengthSize  *string `json:"nal_length_size,omitempty"`
	RFrameRate     *string `json:"r_frame_rate,omitempty"`
	AvgFrameRate   *string `json:"avg_frame_rate,omitempty"`
	TimeBase       *string `json:"time_base,omitempty"`
	StartTime      *string `json:"start_time,omitempty"`
	Duration       *string `json:"duration,omitempty"`
	BitRate        *string `json:"bit_rate,omitempty"`
	NBFrames       *string `json:"nb_frames,omitempty"`
	SampleFmt      *string `json:"sample_fmt,omitempty"`
	SampleRate     *string `json:"sample_rate,omitempty"`
	Channels       *int    `json:"channels,omitempty"`
	BitsPerSample  *int    `json:"bits_per_sample,omitempty"`
}

// wireResult keeps Streams as a pointer so a missing array can be told apart from an empty one.
type wireResult struct {
	Streams *[]Stream `json:"streams"`
}

// ParseJSON decodes an ffprobe -show_streams JSON payload. Unknown fields are
// ignored; a missing streams array or a stream without codec_type is rejected.
func ParseJSON(data []byte) (Result, error) {
	if len(bytes.TrimSpace(data)) == 0 {
		return Result{}, fmt.Errorf("%w: empty output", ErrMalformedOutput)
	}
	var wire wireResult
	if err := json.Unmarshal(data, &wire); err != nil {
		return Result{}, fmt.Errorf("%w: %w", ErrMalformedOutput, err)
	}
	if wire.Streams == nil {
		return Result{}, fmt.Errorf("%w: missing streams array", ErrMalformedOutput)
	}
	for i, stream := range *wire.Streams {
		if stream.CodecType == nil {
			return Result{}, fmt.Errorf("%w: stream %d has no codec_type", ErrMalformedOutput, i)
		}
	}
	return Result{
		Streams: *wire.Streams,
		raw:     append([]byte(nil), data...),
	}, nil
}

// RawJSON returns the raw ffprobe JSON payload.
func (r Result) RawJSON() []byte {
	return append([]byte(nil), r.raw...)
}

// AudioStreams returns the streams whose codec_type is exactly "audio", in probe order.
func (r Result) AudioStreams() []Stream {
	var audio []Stream
	for _, stream := range r.Streams {
		if stream.Type() == CodecTypeAudio {
			audio = append(audio, stream)
		}
	}
	return audio
}

// AudioStreamCount returns the number of audio streams discovered.
func (r Result) AudioStreamCount() int {
	return r.countType(CodecTypeAudio)
}

// VideoStreamCount returns the number of video streams discovered.
func (r Result) VideoStreamCount() int {
	return r.countType(CodecTypeVideo)
}

func (r Result) countType(codecType string) int {
	count := 0
	for _, stream := range r.Streams {
		if stream.Type() == codecType {
			count++
		}
	}
	return count
}

// SoleAudioStream enforces the exactly-one-audio-stream rule.
func SoleAudioStream(streams []Stream) (Stream, error) {
	var found []Stream
	for _, stream := range streams {
		if stream.Type() == CodecTypeAudio {
			found = append(found, stream)
		}
	}
	switch len(found) {
	case 0:
		return Stream{}, ErrNoAudioStream
	case 1:
		return found[0], nil
	default:
		return Stream{}, &MultipleAudioStreamsError{Count: len(found)}
	}
}

// Type returns codec_type, or "" when absent.
func (s Stream) Type() string {
	return deref(s.CodecType)
}

// SampleRateHz returns the reported sample rate, or 0 when absent or unparsable.
func (s Stream) SampleRateHz() int {
	value := strings.TrimSpace(deref(s.SampleRate))
	if value == "" {
		return 0
	}
	rate, err := strconv.Atoi(value)
	if err != nil || rate < 0 {
		return 0
	}
	return rate
}

// Summary returns a compact human-readable description for logs and CLI output.
func (s Stream) Summary() string {
	parts := make([]string, 0, 6)
	if s.Index != nil {
		parts = append(parts, "#"+strconv.Itoa(*s.Index))
	}
	if codec := deref(s.CodecName); codec != "" {
		parts = append(parts, codec)
	}
	if s.Channels != nil {
		parts = append(parts, strconv.Itoa(*s.Channels)+"ch")
	}
	if rate := s.SampleRateHz(); rate > 0 {
		parts = append(parts, strconv.Itoa(rate)+" Hz")
	}
	if fmtName := deref(s.SampleFmt); fmtName != "" {
		parts = append(parts, fmtName)
	}
	if rate := strings.TrimSpace(deref(s.BitRate)); rate != "" {
		parts = append(parts, rate+" bps")
	}
	if len(parts) == 0 {
		return deref(s.CodecType)
	}
	return strings.Join(parts, " ")
}

func deref[T any](value *T) T {
	var zero T
	if value == nil {
		return zero
	}
	return *value
}

var (
	// ErrProbeFailed marks an ffprobe run that exited non-zero.
	ErrProbeFailed = errors.New("probe tool execution failed")
	// ErrMalformedOutput marks ffprobe output that does not decode to the stream schema.
	ErrMalformedOutput = errors.New("malformed probe output")
	// ErrNoAudioStream marks an input without any audio stream.
	ErrNoAudioStream = errors.New("no audio stream found")
	// ErrMultipleAudioStreams marks an input with more than one audio stream.
	ErrMultipleAudioStreams = errors.New("multiple audio streams found")
)

// MultipleAudioStreamsError reports how many audio streams were found.
type MultipleAudioStreamsError struct {
	Count int
}

func (e *MultipleAudioStreamsError) Error() string {
	return fmt.Sprintf("%s (%d); track selection is not supported", ErrMultipleAudioStreams, e.Count)
}

func (e *MultipleAudioStreamsError) Unwrap() error {
	return ErrMultipleAudioStreams
}
