// Package wire provides low-level encoding primitives for the contract
// parameter wire format: little-endian fixed-width integers and unsigned
// LEB128 varints, both bounded (uint64) and arbitrary precision.
package wire

import "errors"

// MaxVarintLen64 is the longest LEB128 encoding of a uint64: ceil(64/7).
const MaxVarintLen64 = 10

// Errors for varint decoding.
var (
	// ErrVarintOverflow indicates the varint overflows a 64-bit integer.
	ErrVarintOverflow = errors.New("wire: varint overflows uint64")

	// ErrVarintTruncated indicates the input data was truncated.
	ErrVarintTruncated = errors.New("wire: varint truncated")

	// ErrVarintTooLong indicates the varint encoding exceeds maximum length.
	ErrVarintTooLong = errors.New("wire: varint exceeds maximum length")

	// ErrVarintNonCanonical indicates the encoding ends in a superfluous
	// zero group, i.e. a shorter encoding of the same value exists.
	ErrVarintNonCanonical = errors.New("wire: varint not minimally encoded")
)

// AppendUvarint appends the unsigned LEB128 encoding of v to buf: seven
// bits per byte, least significant group first, high bit set on every byte
// but the last. 300 encodes as ac 02.
func AppendUvarint(buf []byte, v uint64) []byte {
	for v >= 0x80 {
		buf = append(buf, byte(v)|0x80)
		v >>= 7
	}
	return append(buf, byte(v))
}

// DecodeUvarint decodes a varint from data and returns the value and the number of bytes consumed.
// If the data is truncated, the varint overflows or is not minimally encoded, an error is returned.
func DecodeUvarint(data []byte) (uint64, int, error) {
	if len(data) == 0 {
		return 0, 0, ErrVarintTruncated
	}

	// Fast path for single-byte varints (values 0-127)
	if data[0] < 0x80 {
		return uint64(data[0]), 1, nil
	}

	var v uint64
	var shift uint

	for i := 0; i < len(data); i++ {
		if i >= MaxVarintLen64 {
			return 0, 0, ErrVarintTooLong
		}

		b := data[i]
		// The 10th byte can only contribute bit 63.
		if i == 9 {
			if b >= 0x80 {
				return 0, 0, ErrVarintTooLong
			}
			if b > 1 {
				return 0, 0, ErrVarintOverflow
			}
		}

		v |= uint64(b&0x7f) << shift

		if b < 0x80 {
			if b == 0 {
				return 0, 0, ErrVarintNonCanonical
			}
			return v, i + 1, nil
		}

		shift += 7
	}

	return 0, 0, ErrVarintTruncated
}

// UvarintSize returns the number of bytes required to encode v as a varint.
func UvarintSize(v uint64) int {
	n := 1
	for v >= 0x80 {
		v >>= 7
		n++
	}
	return n
}
