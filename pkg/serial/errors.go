// Package serial implements the contract parameter wire format: a
// bounds-checked Reader cursor, a sticky-error Writer, length-prefixed
// collection framing and the error taxonomy shared by the CIS codecs.
package serial

import (
	"errors"
	"fmt"
)

// Sentinel errors for common conditions.
// These can be checked using errors.Is().
var (
	// ErrUnexpectedEOF indicates the input ended in the middle of a field.
	ErrUnexpectedEOF = errors.New("serial: unexpected end of input")

	// ErrInvalidTag indicates an unknown discriminant for a sum type.
	ErrInvalidTag = errors.New("serial: invalid tag")

	// ErrTrailingBytes indicates a top-level decode left input unconsumed.
	ErrTrailingBytes = errors.New("serial: trailing bytes")

	// ErrInvalidVarint indicates the varint encoding is malformed.
	ErrInvalidVarint = errors.New("serial: invalid varint")

	// ErrOverflow indicates a value does not fit its declared width.
	ErrOverflow = errors.New("serial: integer overflow")

	// ErrListTooLong indicates a list has more elements than its count prefix can hold.
	ErrListTooLong = errors.New("serial: list too long for count prefix")

	// ErrLengthOverflow indicates a byte string is too long for its length prefix.
	ErrLengthOverflow = errors.New("serial: length does not fit prefix")

	// ErrInvalidUTF8 indicates a string contains invalid UTF-8.
	ErrInvalidUTF8 = errors.New("serial: invalid UTF-8 string")

	// ErrMaxListLength indicates the configured maximum list length was exceeded.
	ErrMaxListLength = errors.New("serial: maximum list length exceeded")

	// ErrMaxBytesLength indicates the configured maximum byte string length was exceeded.
	ErrMaxBytesLength = errors.New("serial: maximum bytes length exceeded")

	// ErrMaxSizeExceeded indicates the maximum message size was exceeded.
	ErrMaxSizeExceeded = errors.New("serial: maximum message size exceeded")

	// ErrInvalidValue indicates a domain value failed validation at construction.
	ErrInvalidValue = errors.New("serial: invalid value")
)

// DecodeError provides detailed context for decoding failures.
// It implements the error interface and supports error unwrapping.
type DecodeError struct {
	// Type is the name of the type being decoded (if known).
	Type string

	// Offset is the byte offset in the input where the error occurred.
	Offset int

	// Message describes what went wrong.
	Message string

	// Cause is the underlying error, if any.
	Cause error
}

// Error returns a formatted error message.
func (e *DecodeError) Error() string {
	if e.Type != "" {
		if e.Offset >= 0 {
			return fmt.Sprintf("serial: decode %s at offset %d: %s", e.Type, e.Offset, e.Message)
		}
		return fmt.Sprintf("serial: decode %s: %s", e.Type, e.Message)
	}
	if e.Offset >= 0 {
		return fmt.Sprintf("serial: decode at offset %d: %s", e.Offset, e.Message)
	}
	return fmt.Sprintf("serial: decode: %s", e.Message)
}

// Unwrap returns the underlying cause of the error.
func (e *DecodeError) Unwrap() error {
	return e.Cause
}

// NewDecodeErrorAt creates a new DecodeError with offset information.
func NewDecodeErrorAt(offset int, message string, cause error) *DecodeError {
	return &DecodeError{
		Offset:  offset,
		Message: message,
		Cause:   cause,
	}
}

// EncodeError provides detailed context for encoding failures.
type EncodeError struct {
	// Type is the name of the type being encoded.
	Type string

	// Message describes what went wrong.
	Message string

	// Cause is the underlying error, if any.
	Cause error
}

// Error returns a formatted error message.
func (e *EncodeError) Error() string {
	if e.Type != "" {
		return fmt.Sprintf("serial: encode %s: %s", e.Type, e.Message)
	}
	return fmt.Sprintf("serial: encode: %s", e.Message)
}

// Unwrap returns the underlying cause of the error.
func (e *EncodeError) Unwrap() error {
	return e.Cause
}

// NewEncodeError creates a new EncodeError.
func NewEncodeError(message string, cause error) *EncodeError {
	return &EncodeError{
		Message: message,
		Cause:   cause,
	}
}

// ValueError reports a domain value that failed validation at construction
// time. No partially constructed value accompanies it.
type ValueError struct {
	// Type is the name of the value type, e.g. "TokenID".
	Type string

	// Message describes the violated constraint.
	Message string
}

// Error returns a formatted error message.
func (e *ValueError) Error() string {
	return fmt.Sprintf("serial: invalid %s: %s", e.Type, e.Message)
}

// Unwrap makes every ValueError match ErrInvalidValue.
func (e *ValueError) Unwrap() error {
	return ErrInvalidValue
}

// NewValueError creates a ValueError for the named type.
func NewValueError(typeName, format string, args ...any) *ValueError {
	return &ValueError{
		Type:    typeName,
		Message: fmt.Sprintf(format, args...),
	}
}

// WrapError wraps an error with additional context.
// If the error is nil, nil is returned.
func WrapError(err error, message string) error {
	if err == nil {
		return nil
	}
	return fmt.Errorf("%s: %w", message, err)
}

// IsRetryable returns true if the error might succeed on retry.
// Encoding is deterministic, so no serial error is retryable.
func IsRetryable(_ error) bool {
	return false
}

// IsMalformed returns true if the error means the input bytes do not
// follow the wire format.
func IsMalformed(err error) bool {
	switch {
	case errors.Is(err, ErrUnexpectedEOF),
		errors.Is(err, ErrInvalidTag),
		errors.Is(err, ErrTrailingBytes),
		errors.Is(err, ErrInvalidVarint),
		errors.Is(err, ErrOverflow),
		errors.Is(err, ErrInvalidUTF8):
		return true
	default:
		return false
	}
}

// IsLimitExceeded returns true if the error indicates a configured limit was exceeded.
func IsLimitExceeded(err error) bool {
	switch {
	case errors.Is(err, ErrMaxListLength),
		errors.Is(err, ErrMaxBytesLength),
		errors.Is(err, ErrMaxSizeExceeded):
		return true
	default:
		return false
	}
}
