package marketdata

import (
	"math"
	"time"

	"github.com/shopspring/decimal"
)

// BidAsk is a single price tick of the bid/ask feed
type BidAsk struct {
	// InstrumentID identifies the instrument, e.g. EURUSD. It can not be empty
	// and can not contain a space because space is the field separator on the wire.
	InstrumentID string
	Bid          float64
	Ask          float64
	Volume       float64
	// Timestamp is the time of the tick. The wire format only keeps milliseconds.
	Timestamp time.Time
}

var two = decimal.NewFromInt(2)

// Spread returns ask - bid computed in decimal, so 1.3 - 1.1 is exactly 0.2.
// A crossed quote yields a negative spread. ok is false when bid or ask is
// NaN or infinite.
func (b BidAsk) Spread() (spread decimal.Decimal, ok bool) {
	if !finite(b.Bid) || !finite(b.Ask) {
		return decimal.Zero, false
	}
	return decimal.NewFromFloat(b.Ask).Sub(decimal.NewFromFloat(b.Bid)), true
}

// Mid returns the midpoint of bid and ask computed in decimal. ok is false
// when bid or ask is NaN or infinite.
func (b BidAsk) Mid() (mid decimal.Decimal, ok bool) {
	if !finite(b.Bid) || !finite(b.Ask) {
		return decimal.Zero, false
	}
	return decimal.NewFromFloat(b.Bid).Add(decimal.NewFromFloat(b.Ask)).Div(two), true
}

func finite(f float64) bool {
	return !math.IsNaN(f) && !math.IsInf(f, 0)
}

// ReportTime returns the timestamp in the fix-style report format.
func (b BidAsk) ReportTime() string {
	return FormatReportDate(b.Timestamp)
}
