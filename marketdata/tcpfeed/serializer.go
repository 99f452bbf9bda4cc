package tcpfeed

import (
	"bytes"
	"context"
	"fmt"
	"io"
)

// endMarker terminates every frame on the wire
var endMarker = []byte{'\r', '\n'}

// Serializer is the feed contract a transport plugs into: it turns frames
// read from a SocketReader into messages and messages into frames.
//
// Create one Serializer per connection. Deserialize reuses a single scratch
// buffer and must not be called concurrently; Serialize is safe for
// concurrent use.
type Serializer struct {
	logger     Logger
	readBuffer *ReadBuffer
}

// NewSerializer returns a new Serializer whose default configurations are
// modified by opts.
func NewSerializer(opts ...Option) *Serializer {
	o := defaultOptions()
	o.apply(opts...)
	return &Serializer{
		logger:     o.logger,
		readBuffer: NewReadBuffer(o.readBufferSize, o.maxFrameSize),
	}
}

// Ping returns the keep-alive request a transport sends on its own schedule.
func (s *Serializer) Ping() Message {
	return Ping{}
}

// IsPong reports whether m is the keep-alive reply a transport waits for to
// consider the connection alive.
func (s *Serializer) IsPong(m Message) bool {
	return IsPong(m)
}

// Serialize appends the frame of m, end marker included, to dst.
func (s *Serializer) Serialize(dst []byte, m Message) []byte {
	dst = AppendMessage(dst, m)
	return append(dst, endMarker...)
}

// WriteMessage writes the frame of m to w in a single Write call.
func (s *Serializer) WriteMessage(w io.Writer, m Message) error {
	_, err := w.Write(s.Serialize(nil, m))
	return err
}

// Deserialize reads the next frame from r and classifies it with ParseMessage.
//
// Errors from r (ErrFrameIncomplete when the stream ends mid-frame,
// ErrFrameTooLarge, ctx errors) are returned as is; the transport decides
// whether the connection is still usable. A tick that fails to decode is
// logged and returned as Unrecognized.
func (s *Serializer) Deserialize(ctx context.Context, r SocketReader) (Message, error) {
	s.readBuffer.Reset()
	frame, err := r.ReadUntilEndMarker(ctx, s.readBuffer, endMarker)
	if err != nil {
		return nil, err
	}
	if !bytes.HasSuffix(frame, endMarker) {
		return nil, fmt.Errorf("%w: frame of %d bytes", ErrFrameIncomplete, len(frame))
	}

	msg, err := ParseMessage(frame[:len(frame)-len(endMarker)])
	if err != nil {
		s.logger.Warnf("tcpfeed: could not parse frame, error: %v", err)
		return nil, err
	}
	if u, ok := msg.(Unrecognized); ok && u.Err != nil {
		s.logger.Warnf("tcpfeed: can not deserialize bid ask data %q, error: %v", u.Text, u.Err)
	}
	return msg, nil
}
