package audio

import "time"

// Segment is one finalized piece of captured audio, produced when capture
// stops. The data is raw encoded audio in the segment's encoding.
type Segment struct {
	Data     []byte
	Encoding EncodingInfo
	Duration time.Duration
}

// IsEmpty reports whether the segment holds no audio data.
func (s Segment) IsEmpty() bool {
	return len(s.Data) == 0
}

// NewSegment wraps captured bytes into a segment, deriving the duration from
// the encoding when it is known.
func NewSegment(data []byte, encoding EncodingInfo) Segment {
	segment := Segment{Data: data, Encoding: encoding}
	if byteSize := encoding.Format.ByteSize(); byteSize > 0 && encoding.SampleRate > 0 {
		frames := len(data) / byteSize
		segment.Duration = time.Duration(frames) * time.Second / time.Duration(encoding.SampleRate)
	}
	return segment
}
