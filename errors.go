package cratetype

import "fmt"

// UnknownTypeCodeError occurs when a numeric column type code is not part
// of the documented CrateDB type set and the lookup was strict.
type UnknownTypeCodeError struct {
	Code int32
}

func (e *UnknownTypeCodeError) Error() string {
	return fmt.Sprintf("unknown column type code %d", e.Code)
}

// InvalidTypeDescriptorError occurs when a compound type descriptor does
// not have the [100, inner] shape the HTTP interface defines for
// collection columns.
type InvalidTypeDescriptorError struct {
	Reason string
}

func (e *InvalidTypeDescriptorError) Error() string {
	return "invalid type descriptor: " + e.Reason
}

// InvalidAddressFormatError occurs when the value of an IP column cannot
// be parsed as an IPv4 or IPv6 address.
type InvalidAddressFormatError struct {
	Value any
	Err   error
}

func (e *InvalidAddressFormatError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("cannot convert %v to IP address: %v", e.Value, e.Err)
	}
	return fmt.Sprintf("cannot convert %T value %v to IP address", e.Value, e.Value)
}

func (e *InvalidAddressFormatError) Unwrap() error {
	return e.Err
}

// InvalidTimestampValueError occurs when the value of a timestamp column
// is not a number of epoch milliseconds representable as a time.Time.
type InvalidTimestampValueError struct {
	Value any
	Err   error
}

func (e *InvalidTimestampValueError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("cannot convert %v to timestamp: %v", e.Value, e.Err)
	}
	return fmt.Sprintf("cannot convert %T value %v to timestamp", e.Value, e.Value)
}

func (e *InvalidTimestampValueError) Unwrap() error {
	return e.Err
}

// ColumnConversionError annotates a conversion failure with the index of
// the column it happened in.
type ColumnConversionError struct {
	ColumnIndex int
	Err         error
}

func (e ColumnConversionError) Error() string {
	return fmt.Sprintf("cannot convert column %d: %v", e.ColumnIndex, e.Err)
}

func (e ColumnConversionError) Unwrap() error {
	return e.Err
}
