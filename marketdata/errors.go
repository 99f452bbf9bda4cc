package marketdata

import (
	"errors"
	"fmt"
)

var (
	// ErrMissingFields is returned when a tick has fewer fields than the feed layout requires
	ErrMissingFields = errors.New("marketdata: missing bid ask fields")
	// ErrInvalidInstrumentID is returned when the instrument id is empty or not valid text
	ErrInvalidInstrumentID = errors.New("marketdata: invalid instrument id")
	// ErrInvalidBid is returned when the bid field is not a number
	ErrInvalidBid = errors.New("marketdata: invalid bid")
	// ErrInvalidAsk is returned when the ask field is not a number
	ErrInvalidAsk = errors.New("marketdata: invalid ask")
	// ErrInvalidVolume is returned when the volume field is not a number
	ErrInvalidVolume = errors.New("marketdata: invalid volume")
	// ErrInvalidDate is returned when a date token can not be decoded
	ErrInvalidDate = errors.New("marketdata: invalid date")
)

// FieldError describes a bid/ask field that could not be decoded.
// errors.Is matches both the field sentinel (e.g. ErrInvalidBid) and the cause.
type FieldError struct {
	Err   error
	Value string
	Cause error
}

func (e *FieldError) Error() string {
	if e.Cause == nil {
		return fmt.Sprintf("%v: %q", e.Err, e.Value)
	}
	return fmt.Sprintf("%v: %q: %v", e.Err, e.Value, e.Cause)
}

func (e *FieldError) Unwrap() []error {
	if e.Cause == nil {
		return []error{e.Err}
	}
	return []error{e.Err, e.Cause}
}

// DateError describes a date token with a malformed or out of range field.
type DateError struct {
	Input string
	Field string
}

func (e *DateError) Error() string {
	return fmt.Sprintf("%v %q: bad %s", ErrInvalidDate, e.Input, e.Field)
}

func (e *DateError) Unwrap() error {
	return ErrInvalidDate
}
