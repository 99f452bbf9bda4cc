package marketdata

import "time"

const (
	reportDateLayout     = "20060102-15:04:05.000"
	wireDateLayout       = "20060102150405"
	wireDateMillisLayout = "20060102150405.000"

	reportDateLen     = len(reportDateLayout)
	wireDateLen       = len(wireDateLayout)
	wireDateMillisLen = len(wireDateMillisLayout)
)

// dateField is a fixed-width field of a date token.
type dateField struct {
	name     string
	from, to int
}

// year, month, day, hour, minute, second, millisecond
type dateLayout [7]dateField

var reportDateFields = dateLayout{
	{"year", 0, 4},
	{"month", 4, 6},
	{"day", 6, 8},
	{"hour", 9, 11},
	{"minute", 12, 14},
	{"second", 15, 17},
	{"millisecond", 18, 21},
}

var wireDateFields = dateLayout{
	{"year", 0, 4},
	{"month", 4, 6},
	{"day", 6, 8},
	{"hour", 8, 10},
	{"minute", 10, 12},
	{"second", 12, 14},
	{"millisecond", 15, 18},
}

// FormatReportDate renders t as YYYYMMDD-HH:MM:SS.mmm in UTC.
// Sub-millisecond digits are truncated, not rounded.
func FormatReportDate(t time.Time) string {
	return t.UTC().Format(reportDateLayout)
}

// ParseReportDate parses a YYYYMMDD-HH:MM:SS.mmm string into a UTC time.
// Bytes past the milliseconds are ignored.
func ParseReportDate(s string) (time.Time, error) {
	if len(s) < reportDateLen {
		return time.Time{}, &DateError{Input: s, Field: "length"}
	}
	return decodeDate(s, &reportDateFields, len(reportDateFields))
}

// ParseWireDate parses the feed's YYYYMMDDHHMMSS[.mmm] date token into a UTC time.
// A 14 byte token has zero milliseconds. Byte 14 is the fraction separator and
// is not inspected.
func ParseWireDate(b []byte) (time.Time, error) {
	switch {
	case len(b) < wireDateLen:
		return time.Time{}, &DateError{Input: string(b), Field: "length"}
	case len(b) == wireDateLen:
		return decodeDate(b, &wireDateFields, len(wireDateFields)-1)
	case len(b) < wireDateMillisLen:
		return time.Time{}, &DateError{Input: string(b), Field: "millisecond"}
	}
	return decodeDate(b, &wireDateFields, len(wireDateFields))
}

// AppendWireDate appends the feed's compact date form of t in UTC to dst.
// The .mmm fraction is only written when t has a non-zero millisecond part.
func AppendWireDate(dst []byte, t time.Time) []byte {
	t = t.UTC()
	if t.Nanosecond() >= int(time.Millisecond) {
		return t.AppendFormat(dst, wireDateMillisLayout)
	}
	return t.AppendFormat(dst, wireDateLayout)
}

// decodeDate reads the first n fields of layout from src. Fields that are not
// read are zero.
func decodeDate[T ~string | ~[]byte](src T, layout *dateLayout, n int) (time.Time, error) {
	var v [7]int
	for i := 0; i < n; i++ {
		f := layout[i]
		num, ok := parseDigits(src[f.from:f.to])
		if !ok {
			return time.Time{}, &DateError{Input: string(src), Field: f.name}
		}
		v[i] = num
	}

	year, month, day := v[0], time.Month(v[1]), v[2]
	hour, minute, second, millis := v[3], v[4], v[5], v[6]

	var bad string
	switch {
	case month < time.January || month > time.December:
		bad = "month"
	case day < 1 || day > daysIn(year, month):
		bad = "day"
	case hour > 23:
		bad = "hour"
	case minute > 59:
		bad = "minute"
	case second > 59:
		bad = "second"
	}
	if bad != "" {
		return time.Time{}, &DateError{Input: string(src), Field: bad}
	}

	return time.Date(year, month, day, hour, minute, second, millis*int(time.Millisecond), time.UTC), nil
}

func daysIn(year int, month time.Month) int {
	return time.Date(year, month+1, 0, 0, 0, 0, 0, time.UTC).Day()
}

// parseDigits parses an unsigned base 10 number made of ASCII digits only.
func parseDigits[T ~string | ~[]byte](s T) (int, bool) {
	if len(s) == 0 {
		return 0, false
	}
	n := 0
	for i := 0; i < len(s); i++ {
		c := s[i]
		if c < '0' || c > '9' {
			return 0, false
		}
		n = n*10 + int(c-'0')
	}
	return n, true
}
