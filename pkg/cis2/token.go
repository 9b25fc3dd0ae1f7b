// Package cis2 implements the CIS-2 token standard: token identifiers and
// amounts, the balanceOf, transfer, tokenMetadata, operatorOf and
// updateOperator messages, logged events and a contract client.
package cis2

import (
	"encoding/hex"
	"fmt"
	"math/big"

	"github.com/blockberries/ciscodec/internal/wire"
	"github.com/blockberries/ciscodec/pkg/chain"
	"github.com/blockberries/ciscodec/pkg/serial"
)

const (
	// TokenIDMaxLength is the maximum length of a token ID in bytes.
	TokenIDMaxLength = 255

	// TokenAmountMaxLength is the maximum length of an encoded token amount.
	TokenAmountMaxLength = 37

	tokenAddressVersion = 2
)

// TokenID identifies a token within a CIS-2 contract. It is an immutable
// byte string of at most 255 bytes; the zero value is the empty ID.
type TokenID struct{ data string }

// NewTokenID creates a TokenID from raw bytes.
func NewTokenID(b []byte) (TokenID, error) {
	if len(b) > TokenIDMaxLength {
		return TokenID{}, serial.NewValueError("TokenID", "length %d exceeds %d", len(b), TokenIDMaxLength)
	}
	return TokenID{data: string(b)}, nil
}

// ParseTokenID parses the hex form of a token ID.
func ParseTokenID(s string) (TokenID, error) {
	b, err := hex.DecodeString(s)
	if err != nil {
		return TokenID{}, serial.NewValueError("TokenID", "invalid hex: %v", err)
	}
	return NewTokenID(b)
}

// TokenIDFromInteger creates a TokenID from v stored in width bytes
// (1, 2, 4 or 8). The ID holds the little-endian bytes of v with high-order
// zero bytes removed, so zero yields the empty ID.
func TokenIDFromInteger(v uint64, width int) (TokenID, error) {
	switch width {
	case 1, 2, 4, 8:
	default:
		return TokenID{}, serial.NewValueError("TokenID", "unsupported integer width %d", width)
	}
	if width < 8 && v>>(uint(width)*8) != 0 {
		return TokenID{}, serial.NewValueError("TokenID", "value %d does not fit in %d bytes", v, width)
	}
	return TokenID{data: string(wire.MinimalLE(v))}, nil
}

// TokenIDFromUint8 creates a TokenID from a u8.
func TokenIDFromUint8(v uint8) TokenID { return TokenID{data: string(wire.MinimalLE(uint64(v)))} }

// TokenIDFromUint16 creates a TokenID from a u16.
func TokenIDFromUint16(v uint16) TokenID { return TokenID{data: string(wire.MinimalLE(uint64(v)))} }

// TokenIDFromUint32 creates a TokenID from a u32.
func TokenIDFromUint32(v uint32) TokenID { return TokenID{data: string(wire.MinimalLE(uint64(v)))} }

// TokenIDFromUint64 creates a TokenID from a u64.
func TokenIDFromUint64(v uint64) TokenID { return TokenID{data: string(wire.MinimalLE(v))} }

// Bytes returns a copy of the ID bytes.
func (id TokenID) Bytes() []byte { return []byte(id.data) }

// Len returns the length of the ID in bytes.
func (id TokenID) Len() int { return len(id.data) }

// String returns the hex form of the ID.
func (id TokenID) String() string { return hex.EncodeToString([]byte(id.data)) }

// Equal reports whether id and other hold the same bytes.
func (id TokenID) Equal(other TokenID) bool { return id.data == other.data }

// Serialize writes the ID with a 1-byte length prefix.
func (id TokenID) Serialize(w *serial.Writer) {
	w.WriteString(id.data, serial.Prefix8)
}

// ReadTokenID reads a 1-byte length-prefixed token ID.
func ReadTokenID(r *serial.Reader) TokenID {
	b := r.ReadBytes(serial.Prefix8)
	if r.Err() != nil {
		return TokenID{}
	}
	return TokenID{data: string(b)}
}

// TokenAmount is a non-negative token amount of arbitrary precision whose
// LEB128 encoding fits in TokenAmountMaxLength bytes. The zero value is 0.
//
// Compare amounts with Equal or Cmp. Equal amounts may hold differently
// shaped big.Int values, so == and reflect.DeepEqual are not reliable.
type TokenAmount struct{ v *big.Int }

// NewTokenAmount creates a TokenAmount from v, which is copied.
func NewTokenAmount(v *big.Int) (TokenAmount, error) {
	if v == nil {
		return TokenAmount{}, serial.NewValueError("TokenAmount", "nil value")
	}
	if v.Sign() < 0 {
		return TokenAmount{}, serial.NewValueError("TokenAmount", "negative value %s", v)
	}
	if n := wire.BigUvarintSize(v); n > TokenAmountMaxLength {
		return TokenAmount{}, serial.NewValueError("TokenAmount", "encoding of %d bytes exceeds %d", n, TokenAmountMaxLength)
	}
	return TokenAmount{v: new(big.Int).Set(v)}, nil
}

// TokenAmountFromUint64 creates a TokenAmount from v.
func TokenAmountFromUint64(v uint64) TokenAmount {
	return TokenAmount{v: new(big.Int).SetUint64(v)}
}

// ParseTokenAmount parses a non-negative decimal integer.
func ParseTokenAmount(s string) (TokenAmount, error) {
	v, ok := new(big.Int).SetString(s, 10)
	if !ok {
		return TokenAmount{}, serial.NewValueError("TokenAmount", "invalid decimal integer %q", s)
	}
	return NewTokenAmount(v)
}

// Int returns a copy of the amount.
func (a TokenAmount) Int() *big.Int {
	if a.v == nil {
		return new(big.Int)
	}
	return new(big.Int).Set(a.v)
}

func (a TokenAmount) int() *big.Int {
	if a.v == nil {
		return new(big.Int)
	}
	return a.v
}

// Cmp compares a and b and returns -1, 0 or +1.
func (a TokenAmount) Cmp(b TokenAmount) int { return a.int().Cmp(b.int()) }

// Equal reports whether a and b are the same amount.
func (a TokenAmount) Equal(b TokenAmount) bool { return a.Cmp(b) == 0 }

// IsZero reports whether the amount is zero.
func (a TokenAmount) IsZero() bool { return a.v == nil || a.v.Sign() == 0 }

// String returns the decimal form of the amount.
func (a TokenAmount) String() string { return a.int().String() }

// Serialize writes the amount as LEB128.
func (a TokenAmount) Serialize(w *serial.Writer) {
	w.WriteBigUvarint(a.v, TokenAmountMaxLength)
}

// ReadTokenAmount reads a LEB128 token amount of at most
// TokenAmountMaxLength bytes.
func ReadTokenAmount(r *serial.Reader) TokenAmount {
	v := r.ReadBigUvarint(TokenAmountMaxLength)
	if r.Err() != nil {
		return TokenAmount{}
	}
	return TokenAmount{v: v}
}

// TokenAddress identifies a token across contracts.
type TokenAddress struct {
	Contract chain.ContractAddress
	ID       TokenID
}

// String returns the base58check form: version 2 over the LEB128 index and
// subindex followed by the token ID bytes.
func (t TokenAddress) String() string {
	buf := make([]byte, 0, 2*wire.MaxVarintLen64+t.ID.Len())
	buf = wire.AppendUvarint(buf, t.Contract.Index)
	buf = wire.AppendUvarint(buf, t.Contract.Subindex)
	buf = append(buf, t.ID.data...)
	return chain.EncodeBase58Check(tokenAddressVersion, buf)
}

// ParseTokenAddress parses the base58check form of a token address.
func ParseTokenAddress(s string) (TokenAddress, error) {
	version, payload, err := chain.DecodeBase58Check(s)
	if err != nil {
		return TokenAddress{}, err
	}
	if version != tokenAddressVersion {
		return TokenAddress{}, serial.NewValueError("TokenAddress", "unexpected base58check version %d", version)
	}
	index, n, err := wire.DecodeUvarint(payload)
	if err != nil {
		return TokenAddress{}, fmt.Errorf("cis2: token address index: %w", err)
	}
	payload = payload[n:]
	subindex, n, err := wire.DecodeUvarint(payload)
	if err != nil {
		return TokenAddress{}, fmt.Errorf("cis2: token address subindex: %w", err)
	}
	id, err := NewTokenID(payload[n:])
	if err != nil {
		return TokenAddress{}, err
	}
	return TokenAddress{Contract: chain.NewContractAddress(index, subindex), ID: id}, nil
}
