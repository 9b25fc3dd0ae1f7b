package serial

import (
	"errors"
	"fmt"
	"math/big"
	"unicode/utf8"

	"github.com/blockberries/ciscodec/internal/wire"
)

// Reader is the decoding cursor: a position over an immutable buffer with
// bounds-checked reads. Errors are sticky; after the first failure every
// read returns a zero value and Err reports the failure with its offset.
//
// The zero value is not ready for use; create with NewReader.
type Reader struct {
	data []byte
	pos  int
	opts Options
	err  error
}

// NewReader creates a new Reader for the given data.
func NewReader(data []byte) *Reader {
	return NewReaderWithOptions(data, DefaultOptions)
}

// NewReaderWithOptions creates a new Reader with the specified options.
func NewReaderWithOptions(data []byte, opts Options) *Reader {
	r := &Reader{
		data: data,
		opts: opts,
	}
	if opts.Limits.MaxMessageSize > 0 && len(data) > opts.Limits.MaxMessageSize {
		r.err = NewDecodeErrorAt(0, "message exceeds size limit", ErrMaxSizeExceeded)
	}
	return r
}

// Reset resets the reader to read from new data.
func (r *Reader) Reset(data []byte) {
	r.data = data
	r.pos = 0
	r.err = nil
}

// Options returns the reader's current options.
func (r *Reader) Options() Options {
	return r.opts
}

// Len returns the number of unread bytes.
func (r *Reader) Len() int {
	if r.pos >= len(r.data) {
		return 0
	}
	return len(r.data) - r.pos
}

// Pos returns the current read position.
func (r *Reader) Pos() int {
	return r.pos
}

// Remaining returns the unread portion of the data.
func (r *Reader) Remaining() []byte {
	if r.pos >= len(r.data) {
		return nil
	}
	return r.data[r.pos:]
}

// EOF returns true if all data has been read.
func (r *Reader) EOF() bool {
	return r.pos >= len(r.data)
}

// Err returns the first error that occurred during reading, if any.
func (r *Reader) Err() error {
	return r.err
}

// Fail records err at the current position unless an error is already
// recorded. Element decoders use it to reject values that parse but are
// invalid for their type.
func (r *Reader) Fail(typeName, message string, err error) {
	if r.err == nil {
		r.err = &DecodeError{
			Type:    typeName,
			Offset:  r.pos,
			Message: message,
			Cause:   err,
		}
	}
}

// FailTag records an invalid sum-type discriminant for typeName. It assumes
// the tag byte was the last byte read.
func (r *Reader) FailTag(typeName string, tag uint8) {
	if r.err == nil {
		r.err = &DecodeError{
			Type:    typeName,
			Offset:  r.pos - 1,
			Message: fmt.Sprintf("unknown tag %d", tag),
			Cause:   ErrInvalidTag,
		}
	}
}

// setErrorAt records an error with position information.
func (r *Reader) setErrorAt(err error, message string) {
	if r.err == nil {
		r.err = NewDecodeErrorAt(r.pos, message, err)
	}
}

// ensure checks that n bytes are available.
func (r *Reader) ensure(n int) bool {
	if r.err != nil {
		return false
	}
	if n < 0 || r.pos+n > len(r.data) {
		r.setErrorAt(ErrUnexpectedEOF, fmt.Sprintf("need %d bytes, have %d", n, r.Len()))
		return false
	}
	return true
}

// Finish reports the first decoding error, or ErrTrailingBytes if input
// remains after a complete top-level value.
func (r *Reader) Finish() error {
	if r.err != nil {
		return r.err
	}
	if !r.EOF() {
		r.setErrorAt(ErrTrailingBytes, fmt.Sprintf("%d unconsumed bytes", r.Len()))
		return r.err
	}
	return nil
}

// ReadUint8 reads a single byte.
func (r *Reader) ReadUint8() uint8 {
	if !r.ensure(1) {
		return 0
	}
	v := r.data[r.pos]
	r.pos++
	return v
}

// ReadBool reads a boolean encoded as exactly 0 or 1.
func (r *Reader) ReadBool() bool {
	b := r.ReadUint8()
	if r.err != nil {
		return false
	}
	switch b {
	case 0:
		return false
	case 1:
		return true
	default:
		r.FailTag("bool", b)
		return false
	}
}

// ReadUint16 reads a little-endian 16-bit integer.
func (r *Reader) ReadUint16() uint16 {
	if !r.ensure(wire.Fixed16Size) {
		return 0
	}
	v, _ := wire.DecodeUint16(r.data[r.pos:])
	r.pos += wire.Fixed16Size
	return v
}

// ReadUint32 reads a little-endian 32-bit integer.
func (r *Reader) ReadUint32() uint32 {
	if !r.ensure(wire.Fixed32Size) {
		return 0
	}
	v, _ := wire.DecodeUint32(r.data[r.pos:])
	r.pos += wire.Fixed32Size
	return v
}

// ReadUint64 reads a little-endian 64-bit integer.
func (r *Reader) ReadUint64() uint64 {
	if !r.ensure(wire.Fixed64Size) {
		return 0
	}
	v, _ := wire.DecodeUint64(r.data[r.pos:])
	r.pos += wire.Fixed64Size
	return v
}

// varintError maps a wire-level varint failure onto the serial taxonomy.
func varintError(err error) error {
	if errors.Is(err, wire.ErrVarintTruncated) {
		return fmt.Errorf("%w: %w", ErrUnexpectedEOF, err)
	}
	if errors.Is(err, wire.ErrVarintOverflow) {
		return fmt.Errorf("%w: %w", ErrOverflow, err)
	}
	return fmt.Errorf("%w: %w", ErrInvalidVarint, err)
}

// ReadUvarint reads an unsigned LEB128 varint bounded to 64 bits.
func (r *Reader) ReadUvarint() uint64 {
	if r.err != nil {
		return 0
	}
	v, n, err := wire.DecodeUvarint(r.data[r.pos:])
	if err != nil {
		r.setErrorAt(varintError(err), "invalid varint")
		return 0
	}
	r.pos += n
	return v
}

// ReadBigUvarint reads an arbitrary-precision LEB128 integer of at most
// maxLen bytes (no bound when maxLen <= 0).
func (r *Reader) ReadBigUvarint(maxLen int) *big.Int {
	if r.err != nil {
		return nil
	}
	v, n, err := wire.DecodeBigUvarint(r.data[r.pos:], maxLen)
	if err != nil {
		r.setErrorAt(varintError(err), "invalid varint")
		return nil
	}
	r.pos += n
	return v
}

// ReadRaw reads exactly n bytes and returns a copy of them.
func (r *Reader) ReadRaw(n int) []byte {
	if !r.ensure(n) {
		return nil
	}
	out := make([]byte, n)
	copy(out, r.data[r.pos:r.pos+n])
	r.pos += n
	return out
}

// ReadLength reads a length or count prefix of the given width.
func (r *Reader) ReadLength(prefix PrefixWidth) int {
	switch prefix {
	case Prefix8:
		return int(r.ReadUint8())
	case Prefix16:
		return int(r.ReadUint16())
	case Prefix32:
		return int(r.ReadUint32())
	default:
		r.setErrorAt(ErrInvalidValue, "invalid prefix width "+prefix.String())
		return 0
	}
}

// ReadBytes reads a length-prefixed byte string.
func (r *Reader) ReadBytes(prefix PrefixWidth) []byte {
	n := r.ReadLength(prefix)
	if r.err != nil {
		return nil
	}
	if max := r.opts.Limits.MaxBytesLength; max > 0 && n > max {
		r.setErrorAt(ErrMaxBytesLength, fmt.Sprintf("byte string of %d bytes exceeds limit %d", n, max))
		return nil
	}
	return r.ReadRaw(n)
}

// ReadString reads a length-prefixed string, validating UTF-8 when the
// reader's options ask for it.
func (r *Reader) ReadString(prefix PrefixWidth) string {
	start := r.pos
	b := r.ReadBytes(prefix)
	if r.err != nil {
		return ""
	}
	if r.opts.ValidateUTF8 && !utf8.Valid(b) {
		r.err = NewDecodeErrorAt(start, "string is not valid UTF-8", ErrInvalidUTF8)
		return ""
	}
	return string(b)
}
