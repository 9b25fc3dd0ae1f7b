package contract

import (
	"context"
	"fmt"

	"github.com/rs/zerolog"

	"github.com/blockberries/ciscodec/pkg/chain"
)

// Client invokes entrypoints of a single contract instance.
type Client struct {
	Name    chain.ContractName
	Address chain.ContractAddress
	Invoker Invoker
	Logger  zerolog.Logger
}

// NewClient creates a client for the named instance. Logging is disabled
// until Logger is set.
func NewClient(inv Invoker, name chain.ContractName, address chain.ContractAddress) *Client {
	return &Client{
		Name:    name,
		Address: address,
		Invoker: inv,
		Logger:  zerolog.Nop(),
	}
}

// Lookup resolves the contract name of address through node and returns
// a client for it.
func Lookup(ctx context.Context, node Node, address chain.ContractAddress) (*Client, error) {
	name, err := node.InstanceName(ctx, address)
	if err != nil {
		return nil, fmt.Errorf("contract: resolve name of %s: %w", address, err)
	}
	return NewClient(node, name, address), nil
}

func (c *Client) request(ep chain.EntrypointName, param Parameter, amount uint64) (InvokeRequest, error) {
	method, err := c.Name.ReceiveName(ep)
	if err != nil {
		return InvokeRequest{}, err
	}
	if _, err := NewParameter(param); err != nil {
		return InvokeRequest{}, err
	}
	return InvokeRequest{
		Contract:  c.Address,
		Method:    method,
		Parameter: param,
		Amount:    amount,
	}, nil
}

func (c *Client) invoke(ctx context.Context, req InvokeRequest) (InvokeResult, error) {
	if c.Invoker == nil {
		return InvokeResult{}, ErrNoInvoker
	}
	c.Logger.Debug().
		Stringer("contract", req.Contract).
		Stringer("method", req.Method).
		Int("param_size", len(req.Parameter)).
		Uint64("amount", req.Amount).
		Msg("invoke instance")

	res, err := c.Invoker.InvokeInstance(ctx, req)
	if err != nil {
		c.Logger.Debug().Err(err).Stringer("method", req.Method).Msg("invocation failed")
		return InvokeResult{}, fmt.Errorf("contract: invoke %s: %w", req.Method, err)
	}
	c.Logger.Debug().
		Stringer("method", req.Method).
		Uint64("energy", res.UsedEnergy).
		Int("return_size", len(res.ReturnValue)).
		Msg("invocation succeeded")
	return res, nil
}

// View invokes a view entrypoint and returns its return value.
func (c *Client) View(ctx context.Context, ep chain.EntrypointName, param Parameter) ([]byte, error) {
	req, err := c.request(ep, param, 0)
	if err != nil {
		return nil, err
	}
	res, err := c.invoke(ctx, req)
	if err != nil {
		return nil, err
	}
	if res.ReturnValue == nil {
		return nil, fmt.Errorf("%w from %s", ErrNoReturnValue, req.Method)
	}
	return res.ReturnValue, nil
}

// Proposal simulates an update of ep with amount microCCD attached and
// returns the corresponding proposal.
func (c *Client) Proposal(ctx context.Context, ep chain.EntrypointName, param Parameter, amount uint64) (UpdateProposal, error) {
	req, err := c.request(ep, param, amount)
	if err != nil {
		return UpdateProposal{}, err
	}
	res, err := c.invoke(ctx, req)
	if err != nil {
		return UpdateProposal{}, err
	}
	return UpdateProposal{
		Amount:      amount,
		Address:     c.Address,
		ReceiveName: req.Method,
		Parameter:   req.Parameter,
		Energy:      res.UsedEnergy,
	}, nil
}
