// Package chain defines the on-chain value types shared by the CIS
// standards: contract and account addresses, the tagged Address sum type,
// and validated contract, entrypoint and receive names.
package chain

import (
	"fmt"

	"github.com/blockberries/ciscodec/pkg/serial"
)

// Address tags in the wire format.
const (
	AddressTagAccount  uint8 = 0
	AddressTagContract uint8 = 1
)

// AccountAddressSize is the length of a raw account address.
const AccountAddressSize = 32

// accountAddressVersion is the base58check version byte of account addresses.
const accountAddressVersion = 1

// Address is either an AccountAddress or a ContractAddress.
// The set of implementations is closed.
type Address interface {
	serial.Serializable
	fmt.Stringer

	addressTag() uint8
}

// ContractAddress identifies a smart contract instance.
type ContractAddress struct {
	Index    uint64
	Subindex uint64
}

// NewContractAddress creates a ContractAddress.
func NewContractAddress(index, subindex uint64) ContractAddress {
	return ContractAddress{Index: index, Subindex: subindex}
}

// Serialize writes the index and subindex as little-endian u64s.
func (c ContractAddress) Serialize(w *serial.Writer) {
	w.WriteUint64(c.Index)
	w.WriteUint64(c.Subindex)
}

// String returns the address in <index,subindex> form.
func (c ContractAddress) String() string {
	return fmt.Sprintf("<%d,%d>", c.Index, c.Subindex)
}

func (ContractAddress) addressTag() uint8 { return AddressTagContract }

// ReadContractAddress reads a ContractAddress from r.
func ReadContractAddress(r *serial.Reader) ContractAddress {
	index := r.ReadUint64()
	subindex := r.ReadUint64()
	return ContractAddress{Index: index, Subindex: subindex}
}

// AccountAddress is the 32-byte address of an account.
type AccountAddress [AccountAddressSize]byte

// AccountAddressFromBytes creates an AccountAddress from exactly 32 bytes.
func AccountAddressFromBytes(b []byte) (AccountAddress, error) {
	var a AccountAddress
	if len(b) != AccountAddressSize {
		return a, serial.NewValueError("AccountAddress", "expected %d bytes, got %d", AccountAddressSize, len(b))
	}
	copy(a[:], b)
	return a, nil
}

// ParseAccountAddress parses the base58check form of an account address.
func ParseAccountAddress(s string) (AccountAddress, error) {
	version, payload, err := DecodeBase58Check(s)
	if err != nil {
		return AccountAddress{}, err
	}
	if version != accountAddressVersion {
		return AccountAddress{}, serial.NewValueError("AccountAddress", "unexpected base58check version %d", version)
	}
	return AccountAddressFromBytes(payload)
}

// Serialize writes the 32 raw address bytes.
func (a AccountAddress) Serialize(w *serial.Writer) {
	w.WriteRaw(a[:])
}

// String returns the base58check form of the address.
func (a AccountAddress) String() string {
	return EncodeBase58Check(accountAddressVersion, a[:])
}

func (AccountAddress) addressTag() uint8 { return AddressTagAccount }

// ReadAccountAddress reads 32 raw address bytes from r.
func ReadAccountAddress(r *serial.Reader) AccountAddress {
	var a AccountAddress
	copy(a[:], r.ReadRaw(AccountAddressSize))
	return a
}

// WriteAddress writes the address tag followed by the address payload.
func WriteAddress(w *serial.Writer, a Address) {
	if a == nil {
		w.Fail(serial.NewEncodeError("nil Address", serial.ErrInvalidValue))
		return
	}
	w.WriteUint8(a.addressTag())
	a.Serialize(w)
}

// ReadAddress reads a tagged Address from r. Unknown tags fail with
// serial.ErrInvalidTag.
func ReadAddress(r *serial.Reader) Address {
	tag := r.ReadUint8()
	if r.Err() != nil {
		return nil
	}
	switch tag {
	case AddressTagAccount:
		return ReadAccountAddress(r)
	case AddressTagContract:
		return ReadContractAddress(r)
	default:
		r.FailTag("Address", tag)
		return nil
	}
}
