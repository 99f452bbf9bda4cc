package marketdata

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFormatReportDate(t *testing.T) {
	ts := time.Date(2024, 4, 25, 17, 28, 2, 629_000_000, time.UTC)
	assert.Equal(t, "20240425-17:28:02.629", FormatReportDate(ts))

	// sub-millisecond digits are truncated
	ts = time.Date(2024, 4, 25, 17, 28, 2, 629_999_999, time.UTC)
	assert.Equal(t, "20240425-17:28:02.629", FormatReportDate(ts))

	// always rendered in UTC
	cet := time.FixedZone("CET", 3600)
	ts = time.Date(2024, 4, 25, 18, 28, 2, 0, cet)
	assert.Equal(t, "20240425-17:28:02.000", FormatReportDate(ts))
}

func TestParseReportDate(t *testing.T) {
	ts, err := ParseReportDate("20240425-17:28:02.629")
	require.NoError(t, err)
	assert.True(t, ts.Equal(time.Date(2024, 4, 25, 17, 28, 2, 629_000_000, time.UTC)))
	assert.Equal(t, time.UTC, ts.Location())
	assert.Equal(t, "2024-04-25T17:28:02.629", ts.Format(time.RFC3339Nano)[:23])
}

func TestReportDateRoundTrip(t *testing.T) {
	for _, ts := range []time.Time{
		time.Date(2024, 4, 25, 17, 28, 2, 629_000_000, time.UTC),
		time.Date(1999, 12, 31, 23, 59, 59, 999_000_000, time.UTC),
		time.Date(2024, 2, 29, 0, 0, 0, 0, time.UTC),
	} {
		got, err := ParseReportDate(FormatReportDate(ts))
		require.NoError(t, err)
		assert.True(t, got.Equal(ts), "got %v, want %v", got, ts)
	}
}

func TestParseReportDateInvalid(t *testing.T) {
	var tests = []struct {
		name  string
		input string
		field string
	}{
		{name: "empty", input: "", field: "length"},
		{name: "short", input: "20240425-17:28:02", field: "length"},
		{name: "letter_in_year", input: "2O240425-17:28:02.629", field: "year"},
		{name: "letter_in_millis", input: "20240425-17:28:02.6x9", field: "millisecond"},
		{name: "sign_in_hour", input: "20240425-+7:28:02.629", field: "hour"},
		{name: "month_13", input: "20241325-17:28:02.629", field: "month"},
		{name: "feb_30", input: "20240230-17:28:02.629", field: "day"},
		{name: "hour_24", input: "20240425-24:28:02.629", field: "hour"},
		{name: "second_60", input: "20240425-17:28:60.629", field: "second"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := ParseReportDate(tt.input)
			require.ErrorIs(t, err, ErrInvalidDate)
			var de *DateError
			require.ErrorAs(t, err, &de)
			assert.Equal(t, tt.field, de.Field)
			assert.Equal(t, tt.input, de.Input)
		})
	}
}

func TestParseWireDate(t *testing.T) {
	ts, err := ParseWireDate([]byte("20240425172802.629"))
	require.NoError(t, err)
	assert.True(t, ts.Equal(time.Date(2024, 4, 25, 17, 28, 2, 629_000_000, time.UTC)))
	assert.Equal(t, 629000, ts.Nanosecond()/1000)
}

func TestParseWireDateNoMillis(t *testing.T) {
	ts, err := ParseWireDate([]byte("20240425172802"))
	require.NoError(t, err)
	assert.True(t, ts.Equal(time.Date(2024, 4, 25, 17, 28, 2, 0, time.UTC)))
	assert.Equal(t, 0, ts.Nanosecond())
}

func TestParseWireDateIgnoresTrailingBytes(t *testing.T) {
	ts, err := ParseWireDate([]byte("20240425172802.629123"))
	require.NoError(t, err)
	assert.Equal(t, 629_000_000, ts.Nanosecond())
}

func TestParseWireDateInvalid(t *testing.T) {
	var tests = []struct {
		name  string
		input string
		field string
	}{
		{name: "empty", input: "", field: "length"},
		{name: "short", input: "2024042517280", field: "length"},
		{name: "dangling_separator", input: "20240425172802.", field: "millisecond"},
		{name: "short_millis", input: "20240425172802.62", field: "millisecond"},
		{name: "letter_in_day", input: "202404a5172802", field: "day"},
		{name: "letter_in_millis", input: "20240425172802.6z9", field: "millisecond"},
		{name: "month_zero", input: "20240025172802", field: "month"},
		{name: "minute_60", input: "20240425176002", field: "minute"},
		{name: "invalid_utf8", input: "2024\xff\xfe25172802", field: "month"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := ParseWireDate([]byte(tt.input))
			require.ErrorIs(t, err, ErrInvalidDate)
			var de *DateError
			require.ErrorAs(t, err, &de)
			assert.Equal(t, tt.field, de.Field)
		})
	}
}

func TestAppendWireDate(t *testing.T) {
	var tests = []struct {
		name     string
		ts       time.Time
		expected string
	}{
		{
			name:     "millis",
			ts:       time.Date(2023, 2, 13, 14, 22, 25, 555_000_000, time.UTC),
			expected: "20230213142225.555",
		},
		{
			name:     "whole_second",
			ts:       time.Date(2024, 4, 25, 17, 28, 2, 0, time.UTC),
			expected: "20240425172802",
		},
		{
			name:     "tenth",
			ts:       time.Date(2015, 5, 12, 12, 13, 14, 100_000_000, time.UTC),
			expected: "20150512121314.100",
		},
		{
			name:     "micros_truncated",
			ts:       time.Date(2015, 5, 12, 12, 13, 14, 123_456_000, time.UTC),
			expected: "20150512121314.123",
		},
		{
			name:     "sub_millisecond_only",
			ts:       time.Date(2015, 5, 12, 12, 13, 14, 500_000, time.UTC),
			expected: "20150512121314",
		},
		{
			name:     "converted_to_utc",
			ts:       time.Date(2024, 4, 26, 1, 28, 2, 0, time.FixedZone("SGT", 8*3600)),
			expected: "20240425172802",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, string(AppendWireDate(nil, tt.ts)))
		})
	}
}

func TestWireDateRoundTrip(t *testing.T) {
	for _, ts := range []time.Time{
		time.Date(2023, 2, 13, 14, 22, 25, 555_000_000, time.UTC),
		time.Date(2024, 4, 25, 17, 28, 2, 0, time.UTC),
		time.Date(2000, 1, 1, 0, 0, 0, 1_000_000, time.UTC),
	} {
		got, err := ParseWireDate(AppendWireDate(nil, ts))
		require.NoError(t, err)
		assert.True(t, got.Equal(ts), "got %v, want %v", got, ts)
	}
}

func BenchmarkParseWireDate(b *testing.B) {
	src := []byte("20230213142225.555")
	for i := 0; i < b.N; i++ {
		_, _ = ParseWireDate(src)
	}
}
