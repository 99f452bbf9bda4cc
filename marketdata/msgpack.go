package marketdata

import "github.com/vmihailenco/msgpack/v5"

var (
	_ msgpack.CustomEncoder = BidAsk{}
	_ msgpack.CustomDecoder = (*BidAsk)(nil)
)

// EncodeMsgpack writes b as a map using the same short keys as quote
// messages: S, bp, ap, v and t.
func (b BidAsk) EncodeMsgpack(enc *msgpack.Encoder) error {
	if err := enc.EncodeMapLen(5); err != nil {
		return err
	}
	if err := enc.EncodeString("S"); err != nil {
		return err
	}
	if err := enc.EncodeString(b.InstrumentID); err != nil {
		return err
	}
	for _, f := range [...]struct {
		key string
		val float64
	}{{"bp", b.Bid}, {"ap", b.Ask}, {"v", b.Volume}} {
		if err := enc.EncodeString(f.key); err != nil {
			return err
		}
		if err := enc.EncodeFloat64(f.val); err != nil {
			return err
		}
	}
	if err := enc.EncodeString("t"); err != nil {
		return err
	}
	return enc.EncodeTime(b.Timestamp)
}

// DecodeMsgpack reads a map written by EncodeMsgpack. Unknown keys are skipped.
func (b *BidAsk) DecodeMsgpack(dec *msgpack.Decoder) error {
	n, err := dec.DecodeMapLen()
	if err != nil {
		return err
	}
	for i := 0; i < n; i++ {
		key, err := dec.DecodeString()
		if err != nil {
			return err
		}
		switch key {
		case "S":
			b.InstrumentID, err = dec.DecodeString()
		case "bp":
			b.Bid, err = dec.DecodeFloat64()
		case "ap":
			b.Ask, err = dec.DecodeFloat64()
		case "v":
			b.Volume, err = dec.DecodeFloat64()
		case "t":
			b.Timestamp, err = dec.DecodeTime()
			b.Timestamp = b.Timestamp.UTC()
		default:
			err = dec.Skip()
		}
		if err != nil {
			return err
		}
	}
	return nil
}
