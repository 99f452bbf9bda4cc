package marketdata

import (
	"bytes"
	"errors"
	"fmt"
	"math"
	"strconv"
	"unicode/utf8"
)

const (
	// TickMarker is the first byte of every bid/ask frame
	TickMarker byte = 'A'
	// FieldSeparator separates the fields of a bid/ask frame
	FieldSeparator byte = ' '

	bidPrefix byte = 'B'
	askPrefix byte = 'A'

	// marker, id, bid, ask, volume, date
	bidAskFieldCount = 6
)

// AppendFeed appends the feed representation of b to dst:
//
//	A <id> B<bid> A<ask> <volume> <YYYYMMDDHHMMSS[.mmm]>
//
// Numbers use the shortest decimal form that parses back to the same float.
func (b BidAsk) AppendFeed(dst []byte) []byte {
	dst = append(dst, TickMarker, FieldSeparator)
	dst = append(dst, b.InstrumentID...)
	dst = append(dst, FieldSeparator, bidPrefix)
	dst = strconv.AppendFloat(dst, b.Bid, 'f', -1, 64)
	dst = append(dst, FieldSeparator, askPrefix)
	dst = strconv.AppendFloat(dst, b.Ask, 'f', -1, 64)
	dst = append(dst, FieldSeparator)
	dst = strconv.AppendFloat(dst, b.Volume, 'f', -1, 64)
	dst = append(dst, FieldSeparator)
	return AppendWireDate(dst, b.Timestamp)
}

// ParseBidAsk decodes a bid/ask frame without its end-of-frame marker.
// Fields are taken by position after splitting on single spaces; the first
// field (the marker) is not inspected and fields after the date are ignored.
// The returned BidAsk does not reference src.
func ParseBidAsk(src []byte) (BidAsk, error) {
	var fields [bidAskFieldCount][]byte
	n := 0
	rest := src
	for n < len(fields) {
		i := bytes.IndexByte(rest, FieldSeparator)
		if i < 0 {
			fields[n] = rest
			n++
			break
		}
		fields[n] = rest[:i]
		rest = rest[i+1:]
		n++
	}
	if n < len(fields) {
		return BidAsk{}, fmt.Errorf("%w: got %d of %d", ErrMissingFields, n, len(fields))
	}

	id := fields[1]
	if len(id) == 0 || !utf8.Valid(id) {
		return BidAsk{}, &FieldError{Err: ErrInvalidInstrumentID, Value: string(id)}
	}

	bid, err := parsePrice(fields[2], bidPrefix, ErrInvalidBid)
	if err != nil {
		return BidAsk{}, err
	}
	ask, err := parsePrice(fields[3], askPrefix, ErrInvalidAsk)
	if err != nil {
		return BidAsk{}, err
	}
	volume, err := parsePrice(fields[4], 0, ErrInvalidVolume)
	if err != nil {
		return BidAsk{}, err
	}
	ts, err := ParseWireDate(fields[5])
	if err != nil {
		return BidAsk{}, err
	}

	return BidAsk{
		InstrumentID: string(id),
		Bid:          bid,
		Ask:          ask,
		Volume:       volume,
		Timestamp:    ts,
	}, nil
}

// parsePrice parses a decimal float field, dropping prefix when the field
// starts with it. Hex floats are rejected. Out of range values become ±Inf.
func parsePrice(field []byte, prefix byte, sentinel error) (float64, error) {
	num := field
	if prefix != 0 && len(num) > 0 && num[0] == prefix {
		num = num[1:]
	}
	if bytes.IndexAny(num, "xX") >= 0 {
		return 0, &FieldError{Err: sentinel, Value: string(field), Cause: strconv.ErrSyntax}
	}
	v, err := strconv.ParseFloat(string(num), 64)
	if err != nil && !(errors.Is(err, strconv.ErrRange) && math.IsInf(v, 0)) {
		return 0, &FieldError{Err: sentinel, Value: string(field), Cause: err}
	}
	return v, nil
}
