// Package cis0 implements the CIS-0 standard detection protocol: the
// supports query and its response encoding.
package cis0

import (
	"github.com/blockberries/ciscodec/pkg/chain"
	"github.com/blockberries/ciscodec/pkg/serial"
)

// Support result tags in the wire format.
const (
	TagNotSupported uint8 = 0
	TagSupported    uint8 = 1
	TagSupportedBy  uint8 = 2
)

// Well-known standard identifiers.
var (
	CIS0 = MustStandardIdentifier("CIS-0")
	CIS1 = MustStandardIdentifier("CIS-1")
	CIS2 = MustStandardIdentifier("CIS-2")
)

// StandardIdentifier names a contract standard, such as "CIS-2".
type StandardIdentifier struct{ id string }

// NewStandardIdentifier validates id: 1 to 255 bytes of ASCII.
func NewStandardIdentifier(id string) (StandardIdentifier, error) {
	if len(id) == 0 || len(id) > 255 {
		return StandardIdentifier{}, serial.NewValueError("StandardIdentifier", "length %d outside 1..255", len(id))
	}
	for i := 0; i < len(id); i++ {
		if id[i] >= 0x80 {
			return StandardIdentifier{}, serial.NewValueError("StandardIdentifier", "non-ASCII byte at index %d", i)
		}
	}
	return StandardIdentifier{id: id}, nil
}

// MustStandardIdentifier is NewStandardIdentifier that panics on invalid input.
func MustStandardIdentifier(id string) StandardIdentifier {
	s, err := NewStandardIdentifier(id)
	if err != nil {
		panic(err)
	}
	return s
}

// String returns the identifier.
func (s StandardIdentifier) String() string { return s.id }

// Serialize writes the identifier with a 1-byte length prefix.
func (s StandardIdentifier) Serialize(w *serial.Writer) {
	w.WriteString(s.id, serial.Prefix8)
}

// ReadStandardIdentifier reads a 1-byte length-prefixed identifier.
func ReadStandardIdentifier(r *serial.Reader) StandardIdentifier {
	s := r.ReadString(serial.Prefix8)
	if r.Err() != nil {
		return StandardIdentifier{}
	}
	id, err := NewStandardIdentifier(s)
	if err != nil {
		r.Fail("StandardIdentifier", err.Error(), err)
		return StandardIdentifier{}
	}
	return id
}

// SupportResult is the answer for a single standard: NotSupported,
// Supported or SupportedBy. The set of implementations is closed.
type SupportResult interface {
	serial.Serializable

	supportTag() uint8
}

// NotSupported reports that the standard is not supported.
type NotSupported struct{}

// Supported reports that the contract itself implements the standard.
type Supported struct{}

// SupportedBy reports that the standard is implemented by other contracts.
type SupportedBy struct {
	Contracts []chain.ContractAddress
}

func (NotSupported) supportTag() uint8 { return TagNotSupported }
func (Supported) supportTag() uint8    { return TagSupported }
func (SupportedBy) supportTag() uint8  { return TagSupportedBy }

// Serialize writes the tag.
func (NotSupported) Serialize(w *serial.Writer) { w.WriteUint8(TagNotSupported) }

// Serialize writes the tag.
func (Supported) Serialize(w *serial.Writer) { w.WriteUint8(TagSupported) }

// Serialize writes the tag followed by the contracts with a 1-byte count.
func (s SupportedBy) Serialize(w *serial.Writer) {
	w.WriteUint8(TagSupportedBy)
	serial.WriteList(w, s.Contracts, serial.Prefix8, func(w *serial.Writer, c chain.ContractAddress) {
		c.Serialize(w)
	})
}

// ReadSupportResult reads a tagged SupportResult. Unknown tags fail with
// serial.ErrInvalidTag.
func ReadSupportResult(r *serial.Reader) SupportResult {
	tag := r.ReadUint8()
	if r.Err() != nil {
		return nil
	}
	switch tag {
	case TagNotSupported:
		return NotSupported{}
	case TagSupported:
		return Supported{}
	case TagSupportedBy:
		contracts := serial.ReadList(r, serial.Prefix8, chain.ReadContractAddress)
		if r.Err() != nil {
			return nil
		}
		return SupportedBy{Contracts: contracts}
	default:
		r.FailTag("SupportResult", tag)
		return nil
	}
}

// SupportsParam is the parameter of the supports entrypoint.
type SupportsParam []StandardIdentifier

// Serialize writes the identifiers as a list with a 2-byte count.
func (p SupportsParam) Serialize(w *serial.Writer) {
	serial.WriteList(w, p, serial.Prefix16, func(w *serial.Writer, id StandardIdentifier) {
		id.Serialize(w)
	})
}

// ReadSupportsParam reads a supports parameter.
func ReadSupportsParam(r *serial.Reader) SupportsParam {
	return serial.ReadList(r, serial.Prefix16, ReadStandardIdentifier)
}

// SupportsResponse is the return value of the supports entrypoint.
type SupportsResponse []SupportResult

// Serialize writes the results as a list with a 2-byte count.
func (p SupportsResponse) Serialize(w *serial.Writer) {
	serial.WriteList(w, p, serial.Prefix16, func(w *serial.Writer, s SupportResult) {
		if s == nil {
			w.Fail(serial.NewEncodeError("nil SupportResult", serial.ErrInvalidValue))
			return
		}
		s.Serialize(w)
	})
}

// ReadSupportsResponse reads a supports response.
func ReadSupportsResponse(r *serial.Reader) SupportsResponse {
	return serial.ReadList(r, serial.Prefix16, ReadSupportResult)
}

// DeserializeSupportsResponse decodes a complete supports response.
func DeserializeSupportsResponse(data []byte) (SupportsResponse, error) {
	return serial.Decode(data, ReadSupportsResponse)
}
