package cis0

import (
	"context"

	"github.com/blockberries/ciscodec/pkg/chain"
	"github.com/blockberries/ciscodec/pkg/contract"
	"github.com/blockberries/ciscodec/pkg/serial"
)

var entrypointSupports = chain.MustEntrypointName("supports")

// Client queries a contract for standard support.
type Client struct {
	*contract.Client
}

// NewClient wraps a contract client.
func NewClient(c *contract.Client) *Client {
	return &Client{Client: c}
}

// Supports queries support for each id. The results are in query order.
func (c *Client) Supports(ctx context.Context, ids ...StandardIdentifier) (SupportsResponse, error) {
	param, err := contract.MarshalParameter(SupportsParam(ids))
	if err != nil {
		return nil, err
	}
	value, err := c.View(ctx, entrypointSupports, param)
	if err != nil {
		return nil, err
	}
	results, err := serial.Decode(value, ReadSupportsResponse)
	if err != nil {
		return nil, err
	}
	if err := contract.CheckResponses(len(ids), len(results)); err != nil {
		return nil, err
	}
	return results, nil
}

// SupportsOne queries support for a single standard.
func (c *Client) SupportsOne(ctx context.Context, id StandardIdentifier) (SupportResult, error) {
	results, err := c.Supports(ctx, id)
	if err != nil {
		return nil, err
	}
	return results[0], nil
}
