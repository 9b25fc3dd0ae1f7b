package cis2

import (
	"context"
	"errors"
	"fmt"

	"github.com/blockberries/ciscodec/pkg/chain"
	"github.com/blockberries/ciscodec/pkg/cis0"
	"github.com/blockberries/ciscodec/pkg/contract"
	"github.com/blockberries/ciscodec/pkg/serial"
)

// ErrNotSupported indicates a contract that does not implement CIS-2.
var ErrNotSupported = errors.New("cis2: contract does not support CIS-2")

var (
	entrypointBalanceOf      = chain.MustEntrypointName("balanceOf")
	entrypointTransfer       = chain.MustEntrypointName("transfer")
	entrypointTokenMetadata  = chain.MustEntrypointName("tokenMetadata")
	entrypointOperatorOf     = chain.MustEntrypointName("operatorOf")
	entrypointUpdateOperator = chain.MustEntrypointName("updateOperator")
)

// Client queries and builds updates for a CIS-2 contract.
type Client struct {
	*cis0.Client
}

// NewClient wraps c after checking through CIS-0 that the contract
// implements CIS-2 itself. It fails with ErrNotSupported otherwise.
func NewClient(ctx context.Context, c *contract.Client) (*Client, error) {
	base := cis0.NewClient(c)
	support, err := base.SupportsOne(ctx, cis0.CIS2)
	if err != nil {
		return nil, err
	}
	if _, ok := support.(cis0.Supported); !ok {
		return nil, fmt.Errorf("%w: %s", ErrNotSupported, c.Address)
	}
	return &Client{Client: base}, nil
}

// Dial resolves the contract at address through node and returns a CIS-2
// client for it.
func Dial(ctx context.Context, node contract.Node, address chain.ContractAddress) (*Client, error) {
	c, err := contract.Lookup(ctx, node, address)
	if err != nil {
		return nil, err
	}
	return NewClient(ctx, c)
}

func query[R any](ctx context.Context, c *Client, ep chain.EntrypointName, param serial.Serializable, queries int, dec func(*serial.Reader) []R) ([]R, error) {
	p, err := contract.MarshalParameter(param)
	if err != nil {
		return nil, err
	}
	value, err := c.View(ctx, ep, p)
	if err != nil {
		return nil, err
	}
	results, err := serial.Decode(value, dec)
	if err != nil {
		return nil, serial.WrapError(err, "cis2: "+ep.String()+" response")
	}
	if err := contract.CheckResponses(queries, len(results)); err != nil {
		return nil, err
	}
	return results, nil
}

// BalanceOf returns the balance for each query, in query order.
func (c *Client) BalanceOf(ctx context.Context, queries ...BalanceOfQuery) (BalanceOfResponse, error) {
	return query(ctx, c, entrypointBalanceOf, BalanceOfParam(queries), len(queries), func(r *serial.Reader) []TokenAmount {
		return ReadBalanceOfResponse(r)
	})
}

// TokenMetadata returns the metadata URL of each token, in query order.
func (c *Client) TokenMetadata(ctx context.Context, ids ...TokenID) (TokenMetadataResponse, error) {
	return query(ctx, c, entrypointTokenMetadata, TokenMetadataParam(ids), len(ids), func(r *serial.Reader) []TokenMetadataUrl {
		return ReadTokenMetadataResponse(r)
	})
}

// OperatorOf reports for each query whether the address is an operator of
// the owner.
func (c *Client) OperatorOf(ctx context.Context, queries ...OperatorOfQuery) (OperatorOfResponse, error) {
	return query(ctx, c, entrypointOperatorOf, OperatorOfParam(queries), len(queries), func(r *serial.Reader) []bool {
		return ReadOperatorOfResponse(r)
	})
}

// Transfer builds an update proposal for the transfers.
func (c *Client) Transfer(ctx context.Context, transfers ...TransferPayload) (contract.UpdateProposal, error) {
	p, err := contract.MarshalParameter(TransferParam(transfers))
	if err != nil {
		return contract.UpdateProposal{}, err
	}
	return c.Proposal(ctx, entrypointTransfer, p, 0)
}

// UpdateOperator builds an update proposal for the operator updates.
func (c *Client) UpdateOperator(ctx context.Context, updates ...UpdateOperator) (contract.UpdateProposal, error) {
	p, err := contract.MarshalParameter(UpdateOperatorParam(updates))
	if err != nil {
		return contract.UpdateProposal{}, err
	}
	return c.Proposal(ctx, entrypointUpdateOperator, p, 0)
}
