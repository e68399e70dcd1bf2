package agents

import "errors"

var (
	// ErrMalformedFrame marks an inbound payload that could not be decoded
	// as a frame. Recoverable: the payload is skipped and the stream
	// continues.
	ErrMalformedFrame = errors.New("malformed frame")
	// ErrUnknownFrameType marks a decodable frame that matches no known
	// event. Recoverable: the frame is skipped and the stream continues.
	ErrUnknownFrameType = errors.New("unknown frame type")
)
