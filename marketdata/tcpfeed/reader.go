package tcpfeed

import (
	"bufio"
	"bytes"
	"context"
	"errors"
	"fmt"
	"io"
)

const defaultReadBufferSize = 24 * 1024

// ReadBuffer is the scratch buffer a frame is assembled in. It is owned by a
// single Serializer, reset before every frame and grows when a frame does
// not fit. A non-positive limit means it can grow without bound.
type ReadBuffer struct {
	buf   []byte
	limit int
}

// NewReadBuffer returns a buffer with the given initial capacity and limit.
func NewReadBuffer(size, limit int) *ReadBuffer {
	if size <= 0 {
		size = defaultReadBufferSize
	}
	if limit > 0 && size > limit {
		size = limit
	}
	return &ReadBuffer{
		buf:   make([]byte, 0, size),
		limit: limit,
	}
}

// Reset empties the buffer, keeping its capacity.
func (b *ReadBuffer) Reset() {
	b.buf = b.buf[:0]
}

// Bytes returns the buffered bytes. The slice is only valid until the next Reset or Write.
func (b *ReadBuffer) Bytes() []byte {
	return b.buf
}

func (b *ReadBuffer) Len() int {
	return len(b.buf)
}

func (b *ReadBuffer) Cap() int {
	return cap(b.buf)
}

// Write appends p, growing the buffer as needed. It fails with ErrFrameTooLarge
// without writing anything when p would take the buffer past its limit.
func (b *ReadBuffer) Write(p []byte) (int, error) {
	if b.limit > 0 && len(b.buf)+len(p) > b.limit {
		return 0, fmt.Errorf("%w: more than %d bytes", ErrFrameTooLarge, b.limit)
	}
	b.buf = append(b.buf, p...)
	return len(p), nil
}

// SocketReader is the byte source a transport hands to Serializer.Deserialize.
type SocketReader interface {
	// ReadUntilEndMarker writes bytes into buf until buf ends with marker and
	// returns the buffered frame, marker included. It blocks until the marker
	// arrives, the stream fails or ctx is done.
	ReadUntilEndMarker(ctx context.Context, buf *ReadBuffer, marker []byte) ([]byte, error)
}

// StreamReader is a SocketReader over an io.Reader, typically a net.Conn.
// Bytes read past a frame's end marker stay buffered for the next frame.
type StreamReader struct {
	r *bufio.Reader
}

var _ SocketReader = (*StreamReader)(nil)

// NewStreamReader returns a StreamReader reading from r.
func NewStreamReader(r io.Reader) *StreamReader {
	return &StreamReader{r: bufio.NewReader(r)}
}

// ReadUntilEndMarker implements SocketReader. ctx is checked between reads;
// a read that is already blocked is not interrupted, use a deadline on the
// connection for that.
//
// A frame that outgrows buf is read to its end marker and dropped before
// ErrFrameTooLarge is returned, so the next call starts on a frame boundary.
func (s *StreamReader) ReadUntilEndMarker(ctx context.Context, buf *ReadBuffer, marker []byte) ([]byte, error) {
	if len(marker) == 0 {
		return nil, ErrEmptyMarker
	}
	last := marker[len(marker)-1]

	var (
		overflow error
		// tail holds the last bytes of a dropped frame, to find a marker
		// split across reads
		tail []byte
	)
	for {
		if err := ctx.Err(); err != nil {
			return nil, err
		}

		chunk, err := s.r.ReadSlice(last)
		if overflow == nil {
			if _, werr := buf.Write(chunk); werr != nil {
				overflow = werr
				tail = keepTail(tail, buf.Bytes(), len(marker))
			}
		}
		if overflow != nil {
			tail = keepTail(tail, chunk, len(marker))
		}

		switch {
		case err == nil:
			if overflow != nil {
				if bytes.HasSuffix(tail, marker) {
					return nil, overflow
				}
			} else if bytes.HasSuffix(buf.Bytes(), marker) {
				return buf.Bytes(), nil
			}
		case errors.Is(err, bufio.ErrBufferFull):
			// line longer than the bufio buffer
		default:
			return nil, fmt.Errorf("%w: %w", ErrFrameIncomplete, err)
		}
	}
}

// keepTail appends p to tail and keeps the last n bytes.
func keepTail(tail, p []byte, n int) []byte {
	if len(p) >= n {
		return append(tail[:0], p[len(p)-n:]...)
	}
	tail = append(tail, p...)
	if len(tail) > n {
		tail = append(tail[:0], tail[len(tail)-n:]...)
	}
	return tail
}
