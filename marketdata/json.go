package marketdata

import (
	"github.com/mailru/easyjson"
	"github.com/mailru/easyjson/jlexer"
	"github.com/mailru/easyjson/jwriter"
)

var (
	_ easyjson.Marshaler   = BidAsk{}
	_ easyjson.Unmarshaler = (*BidAsk)(nil)
)

// MarshalJSON renders b for reporting, with the timestamp in the report format:
//
//	{"id":"EURUSD","bid":1.55555,"ask":2.55555,"volume":50000000,"date":"20230213-14:22:25.555"}
//
// NaN and infinite numbers are written as null.
func (b BidAsk) MarshalJSON() ([]byte, error) {
	w := jwriter.Writer{}
	b.MarshalEasyJSON(&w)
	return w.Buffer.BuildBytes(), w.Error
}

// MarshalEasyJSON supports easyjson.Marshaler interface
func (b BidAsk) MarshalEasyJSON(out *jwriter.Writer) {
	out.RawString(`{"id":`)
	out.String(b.InstrumentID)
	out.RawString(`,"bid":`)
	writeNumber(out, b.Bid)
	out.RawString(`,"ask":`)
	writeNumber(out, b.Ask)
	out.RawString(`,"volume":`)
	writeNumber(out, b.Volume)
	out.RawString(`,"date":`)
	out.String(FormatReportDate(b.Timestamp))
	out.RawByte('}')
}

// writeNumber writes NaN and infinities, which JSON can not represent, as null.
func writeNumber(out *jwriter.Writer, f float64) {
	if !finite(f) {
		out.RawString("null")
		return
	}
	out.Float64(f)
}

// UnmarshalJSON supports json.Unmarshaler interface
func (b *BidAsk) UnmarshalJSON(data []byte) error {
	r := jlexer.Lexer{Data: data}
	b.UnmarshalEasyJSON(&r)
	return r.Error()
}

// UnmarshalEasyJSON supports easyjson.Unmarshaler interface
func (b *BidAsk) UnmarshalEasyJSON(in *jlexer.Lexer) {
	isTopLevel := in.IsStart()
	if in.IsNull() {
		if isTopLevel {
			in.Consumed()
		}
		in.Skip()
		return
	}
	in.Delim('{')
	for !in.IsDelim('}') {
		key := in.UnsafeFieldName(false)
		in.WantColon()
		if in.IsNull() {
			in.Skip()
			in.WantComma()
			continue
		}
		switch key {
		case "id":
			b.InstrumentID = in.String()
		case "bid":
			b.Bid = in.Float64()
		case "ask":
			b.Ask = in.Float64()
		case "volume":
			b.Volume = in.Float64()
		case "date":
			ts, err := ParseReportDate(in.String())
			if err != nil {
				in.AddError(err)
				return
			}
			b.Timestamp = ts
		default:
			in.SkipRecursive()
		}
		in.WantComma()
	}
	in.Delim('}')
	if isTopLevel {
		in.Consumed()
	}
}
