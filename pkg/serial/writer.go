package serial

import (
	"math/big"

	"github.com/blockberries/ciscodec/internal/wire"
)

// Writer provides binary encoding with buffer management.
// Errors are sticky: after the first failure every write is a no-op and
// Err reports the failure. Writers can be reused to reduce allocations.
type Writer struct {
	buf    []byte
	opts   Options
	err    error
	frozen bool // prevents further writes after Bytes() is called
}

// NewWriter creates a new Writer with default options.
func NewWriter() *Writer {
	return &Writer{
		buf:  make([]byte, 0, 256),
		opts: DefaultOptions,
	}
}

// NewWriterWithOptions creates a new Writer with the specified options.
func NewWriterWithOptions(opts Options) *Writer {
	return &Writer{
		buf:  make([]byte, 0, 256),
		opts: opts,
	}
}

// Reset clears the writer for reuse.
func (w *Writer) Reset() {
	w.buf = w.buf[:0]
	w.err = nil
	w.frozen = false
}

// SetOptions updates the writer's options.
func (w *Writer) SetOptions(opts Options) {
	w.opts = opts
}

// Len returns the current length of the encoded data.
func (w *Writer) Len() int {
	return len(w.buf)
}

// Bytes returns the encoded data.
// The returned slice is only valid until the next call to Reset.
// To get a copy, use BytesCopy.
func (w *Writer) Bytes() []byte {
	w.frozen = true
	return w.buf
}

// BytesCopy returns a copy of the encoded data.
func (w *Writer) BytesCopy() []byte {
	result := make([]byte, len(w.buf))
	copy(result, w.buf)
	return result
}

// Err returns the first error that occurred during writing, if any.
func (w *Writer) Err() error {
	return w.err
}

// Fail records err as the writer's error unless one is already recorded.
// Encoders use it to report invalid values mid-message.
func (w *Writer) Fail(err error) {
	if w.err == nil && err != nil {
		w.err = err
	}
}

// checkWrite ensures we can write to the buffer.
func (w *Writer) checkWrite() bool {
	if w.frozen {
		w.Fail(NewEncodeError("writer is frozen after Bytes() call", nil))
		return false
	}
	return w.err == nil
}

// grow ensures the buffer has room for n more bytes.
func (w *Writer) grow(n int) bool {
	if w.opts.Limits.MaxMessageSize > 0 && len(w.buf)+n > w.opts.Limits.MaxMessageSize {
		w.Fail(ErrMaxSizeExceeded)
		return false
	}
	if len(w.buf)+n <= cap(w.buf) {
		return true
	}
	newCap := cap(w.buf) * 2
	if newCap < len(w.buf)+n {
		newCap = len(w.buf) + n
	}
	newBuf := make([]byte, len(w.buf), newCap)
	copy(newBuf, w.buf)
	w.buf = newBuf
	return true
}

// WriteUint8 writes a single byte.
func (w *Writer) WriteUint8(v uint8) {
	if !w.checkWrite() || !w.grow(1) {
		return
	}
	w.buf = append(w.buf, v)
}

// WriteBool writes a boolean as 0 or 1.
func (w *Writer) WriteBool(v bool) {
	if v {
		w.WriteUint8(1)
	} else {
		w.WriteUint8(0)
	}
}

// WriteUint16 writes a little-endian 16-bit integer.
func (w *Writer) WriteUint16(v uint16) {
	if !w.checkWrite() || !w.grow(wire.Fixed16Size) {
		return
	}
	w.buf = wire.AppendUint16(w.buf, v)
}

// WriteUint32 writes a little-endian 32-bit integer.
func (w *Writer) WriteUint32(v uint32) {
	if !w.checkWrite() || !w.grow(wire.Fixed32Size) {
		return
	}
	w.buf = wire.AppendUint32(w.buf, v)
}

// WriteUint64 writes a little-endian 64-bit integer.
func (w *Writer) WriteUint64(v uint64) {
	if !w.checkWrite() || !w.grow(wire.Fixed64Size) {
		return
	}
	w.buf = wire.AppendUint64(w.buf, v)
}

// WriteUvarint writes an unsigned LEB128 varint.
func (w *Writer) WriteUvarint(v uint64) {
	if !w.checkWrite() || !w.grow(wire.UvarintSize(v)) {
		return
	}
	w.buf = wire.AppendUvarint(w.buf, v)
}

// WriteBigUvarint writes a non-negative arbitrary-precision integer as
// LEB128. The encoding may not exceed maxLen bytes (no bound when maxLen <= 0).
func (w *Writer) WriteBigUvarint(v *big.Int, maxLen int) {
	if !w.checkWrite() {
		return
	}
	if v != nil && v.Sign() < 0 {
		w.Fail(NewEncodeError("negative value cannot be varint encoded", ErrInvalidValue))
		return
	}
	n := wire.BigUvarintSize(v)
	if maxLen > 0 && n > maxLen {
		w.Fail(NewEncodeError("varint encoding exceeds maximum length", ErrOverflow))
		return
	}
	if !w.grow(n) {
		return
	}
	w.buf = wire.AppendBigUvarint(w.buf, v)
}

// WriteRaw writes bytes without a length prefix.
func (w *Writer) WriteRaw(b []byte) {
	if !w.checkWrite() || !w.grow(len(b)) {
		return
	}
	w.buf = append(w.buf, b...)
}

// WriteLength writes n using the given prefix width.
func (w *Writer) WriteLength(n int, prefix PrefixWidth, overflow error) {
	if !w.checkWrite() {
		return
	}
	if !prefix.IsValid() {
		w.Fail(NewEncodeError("invalid prefix width "+prefix.String(), nil))
		return
	}
	if n < 0 || uint64(n) > prefix.Max() {
		w.Fail(NewEncodeError("length does not fit "+prefix.String()+" prefix", overflow))
		return
	}
	switch prefix {
	case Prefix8:
		w.WriteUint8(uint8(n))
	case Prefix16:
		w.WriteUint16(uint16(n))
	case Prefix32:
		w.WriteUint32(uint32(n))
	}
}

// WriteBytes writes a length-prefixed byte string.
func (w *Writer) WriteBytes(b []byte, prefix PrefixWidth) {
	w.WriteLength(len(b), prefix, ErrLengthOverflow)
	w.WriteRaw(b)
}

// WriteString writes a length-prefixed string. The length is in bytes.
func (w *Writer) WriteString(s string, prefix PrefixWidth) {
	w.WriteLength(len(s), prefix, ErrLengthOverflow)
	if !w.checkWrite() || !w.grow(len(s)) {
		return
	}
	w.buf = append(w.buf, s...)
}
