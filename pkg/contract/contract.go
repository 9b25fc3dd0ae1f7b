// Package contract provides a client for smart contract instances. It
// builds invocations from serialized parameters and hands them to an
// external Invoker, which owns the connection to the node.
package contract

import (
	"context"
	"errors"
	"fmt"

	"github.com/blockberries/ciscodec/pkg/chain"
	"github.com/blockberries/ciscodec/pkg/serial"
)

// ParameterSizeMax is the largest parameter a contract accepts.
const ParameterSizeMax = 65535

var (
	// ErrParameterTooLarge indicates a parameter over ParameterSizeMax bytes.
	ErrParameterTooLarge = errors.New("contract: parameter too large")

	// ErrNoReturnValue indicates a view invocation that produced no return value.
	ErrNoReturnValue = errors.New("contract: no return value")

	// ErrNoInvoker indicates a client without an Invoker.
	ErrNoInvoker = errors.New("contract: no invoker configured")
)

// Parameter is a serialized contract parameter.
type Parameter []byte

// NewParameter validates b as a contract parameter.
func NewParameter(b []byte) (Parameter, error) {
	if len(b) > ParameterSizeMax {
		return nil, fmt.Errorf("%w: %d bytes exceeds %d", ErrParameterTooLarge, len(b), ParameterSizeMax)
	}
	return Parameter(b), nil
}

// MarshalParameter serializes v and validates the result as a parameter.
func MarshalParameter(v serial.Serializable) (Parameter, error) {
	b, err := serial.Marshal(v)
	if err != nil {
		return nil, err
	}
	return NewParameter(b)
}

// InvokeRequest describes a contract invocation.
type InvokeRequest struct {
	Contract  chain.ContractAddress
	Method    chain.ReceiveName
	Parameter Parameter
	// Amount is the amount of microCCD sent with the invocation.
	Amount uint64
}

// InvokeResult is the outcome of a successful invocation.
type InvokeResult struct {
	// ReturnValue is nil when the entrypoint did not return a value.
	ReturnValue []byte
	UsedEnergy  uint64
}

// Invoker executes contract invocations against a node. Implementations
// return a *RejectError when the contract rejects the invocation.
type Invoker interface {
	InvokeInstance(ctx context.Context, req InvokeRequest) (InvokeResult, error)
}

// InstanceNamer resolves the contract name of an instance.
type InstanceNamer interface {
	InstanceName(ctx context.Context, address chain.ContractAddress) (chain.ContractName, error)
}

// Node is an Invoker that can also resolve instance names.
type Node interface {
	Invoker
	InstanceNamer
}

// RejectError reports an invocation rejected by the contract.
type RejectError struct {
	Reason      int32
	ReturnValue []byte
	UsedEnergy  uint64
}

// Error returns a formatted error message.
func (e *RejectError) Error() string {
	return fmt.Sprintf("contract: invocation rejected with reason %d", e.Reason)
}

// ListQueryMismatch reports a response list whose length differs from the
// number of queries sent.
type ListQueryMismatch struct {
	Queries   int
	Responses int
}

// Error returns a formatted error message.
func (e *ListQueryMismatch) Error() string {
	return fmt.Sprintf("contract: %d queries but %d responses", e.Queries, e.Responses)
}

// CheckResponses returns a *ListQueryMismatch unless queries == responses.
func CheckResponses(queries, responses int) error {
	if queries != responses {
		return &ListQueryMismatch{Queries: queries, Responses: responses}
	}
	return nil
}

// UpdateProposal is an update transaction payload, ready to be signed and
// submitted by the caller.
type UpdateProposal struct {
	Amount      uint64
	Address     chain.ContractAddress
	ReceiveName chain.ReceiveName
	Parameter   Parameter
	// Energy is the energy used by the simulated invocation.
	Energy uint64
}
