// Package contracttest provides an in-memory contract.Node for tests.
package contracttest

import (
	"context"
	"fmt"
	"sync"

	"github.com/blockberries/ciscodec/pkg/chain"
	"github.com/blockberries/ciscodec/pkg/contract"
)

// Handler answers an invocation of a single entrypoint.
type Handler func(req contract.InvokeRequest) (contract.InvokeResult, error)

// Node routes invocations to handlers keyed by entrypoint name and records
// every request it receives. It is safe for concurrent use.
type Node struct {
	mu       sync.Mutex
	names    map[chain.ContractAddress]chain.ContractName
	handlers map[string]Handler
	requests []contract.InvokeRequest
}

// NewNode creates an empty Node.
func NewNode() *Node {
	return &Node{
		names:    make(map[chain.ContractAddress]chain.ContractName),
		handlers: make(map[string]Handler),
	}
}

// AddInstance registers the contract name of an instance.
func (n *Node) AddInstance(address chain.ContractAddress, name chain.ContractName) {
	n.mu.Lock()
	defer n.mu.Unlock()
	n.names[address] = name
}

// Handle registers h for the entrypoint ep.
func (n *Node) Handle(ep string, h Handler) {
	n.mu.Lock()
	defer n.mu.Unlock()
	n.handlers[ep] = h
}

// Return registers a handler for ep that returns value with energy used.
func (n *Node) Return(ep string, value []byte, energy uint64) {
	n.Handle(ep, func(contract.InvokeRequest) (contract.InvokeResult, error) {
		return contract.InvokeResult{ReturnValue: value, UsedEnergy: energy}, nil
	})
}

// Requests returns a copy of the requests received so far.
func (n *Node) Requests() []contract.InvokeRequest {
	n.mu.Lock()
	defer n.mu.Unlock()
	out := make([]contract.InvokeRequest, len(n.requests))
	copy(out, n.requests)
	return out
}

// InstanceName implements contract.InstanceNamer.
func (n *Node) InstanceName(ctx context.Context, address chain.ContractAddress) (chain.ContractName, error) {
	if err := ctx.Err(); err != nil {
		return chain.ContractName{}, err
	}
	n.mu.Lock()
	defer n.mu.Unlock()
	name, ok := n.names[address]
	if !ok {
		return chain.ContractName{}, fmt.Errorf("contracttest: unknown instance %s", address)
	}
	return name, nil
}

// InvokeInstance implements contract.Invoker.
func (n *Node) InvokeInstance(ctx context.Context, req contract.InvokeRequest) (contract.InvokeResult, error) {
	if err := ctx.Err(); err != nil {
		return contract.InvokeResult{}, err
	}
	n.mu.Lock()
	n.requests = append(n.requests, req)
	h, ok := n.handlers[req.Method.Entrypoint().String()]
	n.mu.Unlock()
	if !ok {
		return contract.InvokeResult{}, &contract.RejectError{Reason: -1}
	}
	return h(req)
}
