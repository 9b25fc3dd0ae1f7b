package wire

import "math/big"

// AppendBigUvarint appends the LEB128 encoding of v to buf and returns the
// extended buffer. v must be non-negative; a nil v encodes as zero.
func AppendBigUvarint(buf []byte, v *big.Int) []byte {
	if v == nil || v.Sign() == 0 {
		return append(buf, 0)
	}
	if v.IsUint64() {
		return AppendUvarint(buf, v.Uint64())
	}

	// Walk the little-endian magnitude seven bits at a time.
	be := v.Bytes()
	n := BigUvarintSize(v)
	for i := 0; i < n; i++ {
		group := bitGroup(be, uint(i)*7)
		if i < n-1 {
			group |= 0x80
		}
		buf = append(buf, group)
	}
	return buf
}

// bitGroup extracts the 7-bit group starting at bit offset off from the
// big-endian magnitude be.
func bitGroup(be []byte, off uint) byte {
	var g uint16
	idx := len(be) - 1 - int(off/8)
	if idx >= 0 {
		g = uint16(be[idx])
	}
	if idx-1 >= 0 {
		g |= uint16(be[idx-1]) << 8
	}
	return byte(g>>(off%8)) & 0x7f
}

// BigUvarintSize returns the number of bytes required to encode v.
func BigUvarintSize(v *big.Int) int {
	if v == nil || v.Sign() == 0 {
		return 1
	}
	return (v.BitLen() + 6) / 7
}

// DecodeBigUvarint decodes an arbitrary-precision LEB128 value from data,
// consuming at most maxLen bytes (no bound when maxLen <= 0). It returns the
// value and the number of bytes consumed.
func DecodeBigUvarint(data []byte, maxLen int) (*big.Int, int, error) {
	if len(data) == 0 {
		return nil, 0, ErrVarintTruncated
	}
	if data[0] < 0x80 {
		return new(big.Int).SetUint64(uint64(data[0])), 1, nil
	}

	end := -1
	for i, b := range data {
		if maxLen > 0 && i >= maxLen {
			return nil, 0, ErrVarintTooLong
		}
		if b < 0x80 {
			end = i
			break
		}
	}
	if end < 0 {
		if maxLen > 0 && len(data) >= maxLen {
			return nil, 0, ErrVarintTooLong
		}
		return nil, 0, ErrVarintTruncated
	}
	if data[end] == 0 {
		return nil, 0, ErrVarintNonCanonical
	}

	// Accumulate from the most significant group down.
	v := new(big.Int)
	group := new(big.Int)
	for i := end; i >= 0; i-- {
		v.Lsh(v, 7)
		v.Or(v, group.SetUint64(uint64(data[i]&0x7f)))
	}
	return v, end + 1, nil
}
