package wire

import (
	"encoding/binary"
	"errors"
)

// ErrTruncated indicates fewer bytes remain than a fixed-width value needs.
var ErrTruncated = errors.New("wire: fixed-width value truncated")

// Size constants for fixed-width types.
const (
	Fixed8Size  = 1
	Fixed16Size = 2
	Fixed32Size = 4
	Fixed64Size = 8
)

// AppendUint16 appends a 16-bit value in little-endian format.
func AppendUint16(buf []byte, v uint16) []byte {
	return append(buf,
		byte(v),
		byte(v>>8),
	)
}

// AppendUint32 appends a 32-bit value in little-endian format.
func AppendUint32(buf []byte, v uint32) []byte {
	return append(buf,
		byte(v),
		byte(v>>8),
		byte(v>>16),
		byte(v>>24),
	)
}

// AppendUint64 appends a 64-bit value in little-endian format.
func AppendUint64(buf []byte, v uint64) []byte {
	return append(buf,
		byte(v),
		byte(v>>8),
		byte(v>>16),
		byte(v>>24),
		byte(v>>32),
		byte(v>>40),
		byte(v>>48),
		byte(v>>56),
	)
}

// DecodeUint16 decodes a little-endian 16-bit value.
func DecodeUint16(data []byte) (uint16, error) {
	if len(data) < Fixed16Size {
		return 0, ErrTruncated
	}
	return binary.LittleEndian.Uint16(data), nil
}

// DecodeUint32 decodes a little-endian 32-bit value.
func DecodeUint32(data []byte) (uint32, error) {
	if len(data) < Fixed32Size {
		return 0, ErrTruncated
	}
	return binary.LittleEndian.Uint32(data), nil
}

// DecodeUint64 decodes a little-endian 64-bit value.
func DecodeUint64(data []byte) (uint64, error) {
	if len(data) < Fixed64Size {
		return 0, ErrTruncated
	}
	return binary.LittleEndian.Uint64(data), nil
}

// PutUint64 writes a 64-bit value to buf in little-endian format.
// The buffer must have at least 8 bytes available.
func PutUint64(buf []byte, v uint64) {
	binary.LittleEndian.PutUint64(buf, v)
}

// MinimalLE returns the little-endian representation of v with trailing
// (high-order) zero bytes removed. Zero yields an empty slice.
func MinimalLE(v uint64) []byte {
	var buf [Fixed64Size]byte
	PutUint64(buf[:], v)
	n := Fixed64Size
	for n > 0 && buf[n-1] == 0 {
		n--
	}
	out := make([]byte, n)
	copy(out, buf[:n])
	return out
}
