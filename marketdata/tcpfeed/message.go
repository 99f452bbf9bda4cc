// Package tcpfeed implements the frame codec of the line delimited bid/ask
// TCP feed: PING/PONG keep-alives and bid/ask ticks terminated by CR LF.
package tcpfeed

import (
	"bytes"
	"fmt"
	"unicode/utf8"

	"github.com/tickwire/bidask-feed/marketdata"
)

// Message is a single frame of the feed. The set of messages is closed:
// Ping, Pong, Tick and Unrecognized.
type Message interface {
	appendFrame(dst []byte) []byte
}

// Ping is the keep-alive request
type Ping struct{}

// Pong is the keep-alive reply
type Pong struct{}

// Tick is a bid/ask price tick
type Tick struct {
	marketdata.BidAsk
}

// Unrecognized is any other frame, passed through verbatim.
type Unrecognized struct {
	Text string
	// Err is the reason a frame starting with the tick marker could not be
	// decoded as a tick. It is nil for frames that never looked like a tick.
	Err error
}

var (
	pingFrame = []byte("PING")
	pongFrame = []byte("PONG")
)

func (Ping) appendFrame(dst []byte) []byte {
	return append(dst, pingFrame...)
}

func (Pong) appendFrame(dst []byte) []byte {
	return append(dst, pongFrame...)
}

func (m Tick) appendFrame(dst []byte) []byte {
	return m.AppendFeed(dst)
}

func (m Unrecognized) appendFrame(dst []byte) []byte {
	return append(dst, m.Text...)
}

// ParseMessage classifies a frame (without its end-of-frame marker).
//
// PING and PONG are keep-alives. A frame starting with the tick marker is
// decoded as a Tick; if that fails the frame is not rejected but returned as
// Unrecognized with the decode error in Unrecognized.Err, so a malformed tick
// can not stall the stream. Any other frame is Unrecognized. The only error is
// ErrInvalidText, for an Unrecognized frame that is not valid UTF-8.
//
// The returned message does not reference src.
func ParseMessage(src []byte) (Message, error) {
	if len(src) == len(pingFrame) {
		switch {
		case bytes.Equal(src, pingFrame):
			return Ping{}, nil
		case bytes.Equal(src, pongFrame):
			return Pong{}, nil
		}
	}

	var tickErr error
	if len(src) > 0 && src[0] == marketdata.TickMarker {
		bidAsk, err := marketdata.ParseBidAsk(src)
		if err == nil {
			return Tick{BidAsk: bidAsk}, nil
		}
		tickErr = err
	}

	if !utf8.Valid(src) {
		return nil, fmt.Errorf("%w (%d bytes)", ErrInvalidText, len(src))
	}
	return Unrecognized{Text: string(src), Err: tickErr}, nil
}

// AppendMessage appends the frame content of m (without end-of-frame marker) to dst.
func AppendMessage(dst []byte, m Message) []byte {
	return m.appendFrame(dst)
}

// IsPing reports whether m is a keep-alive request.
func IsPing(m Message) bool {
	_, ok := m.(Ping)
	return ok
}

// IsPong reports whether m is a keep-alive reply.
func IsPong(m Message) bool {
	_, ok := m.(Pong)
	return ok
}

// IsTick reports whether m is a bid/ask tick.
func IsTick(m Message) bool {
	_, ok := m.(Tick)
	return ok
}
