package tcpfeed

import "errors"

var (
	// ErrFrameIncomplete is returned when the stream ends or fails before the
	// end-of-frame marker is read. The underlying error (e.g. io.EOF) is wrapped.
	ErrFrameIncomplete = errors.New("tcpfeed: end-of-frame marker not found")
	// ErrFrameTooLarge is returned when a frame outgrows the configured max frame size
	ErrFrameTooLarge = errors.New("tcpfeed: frame too large")
	// ErrInvalidText is returned when a frame that is not a tick is not valid UTF-8 text
	ErrInvalidText = errors.New("tcpfeed: frame is not valid text")
	// ErrEmptyMarker is returned when a reader is asked to read until an empty end marker
	ErrEmptyMarker = errors.New("tcpfeed: empty end-of-frame marker")
)
