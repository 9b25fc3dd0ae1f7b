package contract_test

import (
	"bytes"
	"context"
	"errors"
	"testing"

	"github.com/rs/zerolog"

	"github.com/blockberries/ciscodec/pkg/chain"
	"github.com/blockberries/ciscodec/pkg/contract"
	"github.com/blockberries/ciscodec/pkg/contract/contracttest"
)

var (
	testAddress = chain.NewContractAddress(4, 0)
	testName, _ = chain.NewContractName("cis2_nft")
)

func newTestClient(t *testing.T) (*contract.Client, *contracttest.Node) {
	t.Helper()
	node := contracttest.NewNode()
	node.AddInstance(testAddress, testName)
	c, err := contract.Lookup(context.Background(), node, testAddress)
	if err != nil {
		t.Fatalf("Lookup: %v", err)
	}
	return c, node
}

func TestNewParameter(t *testing.T) {
	if _, err := contract.NewParameter(make([]byte, contract.ParameterSizeMax)); err != nil {
		t.Errorf("max size parameter: %v", err)
	}
	_, err := contract.NewParameter(make([]byte, contract.ParameterSizeMax+1))
	if !errors.Is(err, contract.ErrParameterTooLarge) {
		t.Errorf("oversized parameter error = %v, want ErrParameterTooLarge", err)
	}
}

func TestView(t *testing.T) {
	c, node := newTestClient(t)
	node.Return("view", []byte{1, 2, 3}, 100)

	got, err := c.View(context.Background(), chain.MustEntrypointName("view"), contract.Parameter{9})
	if err != nil {
		t.Fatalf("View: %v", err)
	}
	if !bytes.Equal(got, []byte{1, 2, 3}) {
		t.Errorf("View = %x", got)
	}

	reqs := node.Requests()
	if len(reqs) != 1 {
		t.Fatalf("got %d requests, want 1", len(reqs))
	}
	if reqs[0].Method.String() != "cis2_nft.view" || reqs[0].Contract != testAddress {
		t.Errorf("request = %+v", reqs[0])
	}
	if !bytes.Equal(reqs[0].Parameter, []byte{9}) || reqs[0].Amount != 0 {
		t.Errorf("request parameter/amount = %x/%d", reqs[0].Parameter, reqs[0].Amount)
	}
}

func TestViewNoReturnValue(t *testing.T) {
	c, node := newTestClient(t)
	node.Return("view", nil, 100)

	_, err := c.View(context.Background(), chain.MustEntrypointName("view"), nil)
	if !errors.Is(err, contract.ErrNoReturnValue) {
		t.Errorf("View error = %v, want ErrNoReturnValue", err)
	}
}

func TestViewRejected(t *testing.T) {
	c, _ := newTestClient(t)

	_, err := c.View(context.Background(), chain.MustEntrypointName("missing"), nil)
	var reject *contract.RejectError
	if !errors.As(err, &reject) {
		t.Fatalf("View error = %v, want *RejectError", err)
	}
	if reject.Reason != -1 {
		t.Errorf("Reason = %d, want -1", reject.Reason)
	}
}

func TestViewCanceled(t *testing.T) {
	c, node := newTestClient(t)
	node.Return("view", []byte{0}, 1)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	if _, err := c.View(ctx, chain.MustEntrypointName("view"), nil); !errors.Is(err, context.Canceled) {
		t.Errorf("View error = %v, want context.Canceled", err)
	}
}

func TestProposal(t *testing.T) {
	c, node := newTestClient(t)
	c.Logger = zerolog.New(&bytes.Buffer{}).Level(zerolog.DebugLevel)
	node.Return("transfer", nil, 1234)

	p, err := c.Proposal(context.Background(), chain.MustEntrypointName("transfer"), contract.Parameter{1, 2}, 50)
	if err != nil {
		t.Fatalf("Proposal: %v", err)
	}
	if p.Amount != 50 || p.Energy != 1234 || p.Address != testAddress {
		t.Errorf("proposal = %+v", p)
	}
	if p.ReceiveName.String() != "cis2_nft.transfer" {
		t.Errorf("ReceiveName = %s", p.ReceiveName)
	}
	if !bytes.Equal(p.Parameter, []byte{1, 2}) {
		t.Errorf("Parameter = %x", p.Parameter)
	}
}

func TestProposalOversizedParameter(t *testing.T) {
	c, node := newTestClient(t)
	node.Return("transfer", nil, 1)

	_, err := c.Proposal(context.Background(), chain.MustEntrypointName("transfer"), make(contract.Parameter, contract.ParameterSizeMax+1), 0)
	if !errors.Is(err, contract.ErrParameterTooLarge) {
		t.Errorf("Proposal error = %v, want ErrParameterTooLarge", err)
	}
	if n := len(node.Requests()); n != 0 {
		t.Errorf("node received %d requests", n)
	}
}

func TestLookupUnknownInstance(t *testing.T) {
	node := contracttest.NewNode()
	if _, err := contract.Lookup(context.Background(), node, testAddress); err == nil {
		t.Error("Lookup of unknown instance succeeded")
	}
}

func TestNoInvoker(t *testing.T) {
	c := contract.NewClient(nil, testName, testAddress)
	if _, err := c.View(context.Background(), chain.MustEntrypointName("view"), nil); !errors.Is(err, contract.ErrNoInvoker) {
		t.Errorf("View error = %v, want ErrNoInvoker", err)
	}
}

func TestCheckResponses(t *testing.T) {
	if err := contract.CheckResponses(2, 2); err != nil {
		t.Errorf("CheckResponses(2, 2) = %v", err)
	}
	var mismatch *contract.ListQueryMismatch
	if err := contract.CheckResponses(2, 1); !errors.As(err, &mismatch) || mismatch.Queries != 2 || mismatch.Responses != 1 {
		t.Errorf("CheckResponses(2, 1) = %v", err)
	}
}
