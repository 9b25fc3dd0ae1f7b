package chain

import (
	"strings"

	"github.com/blockberries/ciscodec/pkg/serial"
)

// FuncNameMax is the maximum length of a receive name.
const FuncNameMax = 100

func isASCII(s string) bool {
	for i := 0; i < len(s); i++ {
		if s[i] >= 0x80 {
			return false
		}
	}
	return true
}

// ContractName is the name of a smart contract, without the init_ prefix.
type ContractName struct{ value string }

// NewContractName validates s as a contract name.
func NewContractName(s string) (ContractName, error) {
	switch {
	case len(s) > FuncNameMax-5:
		return ContractName{}, serial.NewValueError("ContractName", "must be at most %d characters long", FuncNameMax-5)
	case strings.Contains(s, "."):
		return ContractName{}, serial.NewValueError("ContractName", "must not contain a '.' character")
	case !isASCII(s):
		return ContractName{}, serial.NewValueError("ContractName", "must consist of only ASCII characters")
	}
	return ContractName{value: s}, nil
}

// String returns the name.
func (n ContractName) String() string { return n.value }

// ReceiveName joins the contract name with an entrypoint.
func (n ContractName) ReceiveName(ep EntrypointName) (ReceiveName, error) {
	return NewReceiveName(n.value + "." + ep.value)
}

// EntrypointName is the name of a contract entrypoint, without the contract
// name prefix.
type EntrypointName struct{ value string }

// NewEntrypointName validates s as an entrypoint name.
func NewEntrypointName(s string) (EntrypointName, error) {
	switch {
	case len(s) > FuncNameMax-1:
		return EntrypointName{}, serial.NewValueError("EntrypointName", "must be at most %d characters long", FuncNameMax-1)
	case !isASCII(s):
		return EntrypointName{}, serial.NewValueError("EntrypointName", "must consist of only ASCII characters")
	}
	return EntrypointName{value: s}, nil
}

// MustEntrypointName is NewEntrypointName for names known at compile time.
// It panics on invalid input.
func MustEntrypointName(s string) EntrypointName {
	ep, err := NewEntrypointName(s)
	if err != nil {
		panic(err)
	}
	return ep
}

// String returns the name.
func (n EntrypointName) String() string { return n.value }

// ReceiveName is a <contract>.<entrypoint> name, used to address an
// entrypoint of a specific contract and as the receive hook of CIS-2
// contract receivers. The zero value is the empty name.
type ReceiveName struct{ value string }

// NewReceiveName validates s as a receive name.
func NewReceiveName(s string) (ReceiveName, error) {
	switch {
	case len(s) > FuncNameMax:
		return ReceiveName{}, serial.NewValueError("ReceiveName", "must be at most %d characters long", FuncNameMax)
	case !strings.Contains(s, "."):
		return ReceiveName{}, serial.NewValueError("ReceiveName", "must contain a '.' separator")
	case !isASCII(s):
		return ReceiveName{}, serial.NewValueError("ReceiveName", "must consist of only ASCII characters")
	}
	return ReceiveName{value: s}, nil
}

// String returns the name.
func (n ReceiveName) String() string { return n.value }

// IsZero reports whether n is the empty name.
func (n ReceiveName) IsZero() bool { return n.value == "" }

// ContractName returns the part before the first '.'.
func (n ReceiveName) ContractName() ContractName {
	name, _, _ := strings.Cut(n.value, ".")
	return ContractName{value: name}
}

// Entrypoint returns the part after the first '.'.
func (n ReceiveName) Entrypoint() EntrypointName {
	_, ep, _ := strings.Cut(n.value, ".")
	return EntrypointName{value: ep}
}

// Serialize writes the name with a 2-byte length prefix.
func (n ReceiveName) Serialize(w *serial.Writer) {
	w.WriteString(n.value, serial.Prefix16)
}

// ReadReceiveName reads a 2-byte length-prefixed receive name. An empty
// name decodes to the zero value; any other name must be valid.
func ReadReceiveName(r *serial.Reader) ReceiveName {
	s := r.ReadString(serial.Prefix16)
	if r.Err() != nil || s == "" {
		return ReceiveName{}
	}
	n, err := NewReceiveName(s)
	if err != nil {
		r.Fail("ReceiveName", err.Error(), err)
		return ReceiveName{}
	}
	return n
}
