package main

import (
	"encoding/hex"
	"fmt"
	"io"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/blockberries/ciscodec/pkg/cis0"
	"github.com/blockberries/ciscodec/pkg/cis2"
	"github.com/blockberries/ciscodec/pkg/contract"
	"github.com/blockberries/ciscodec/pkg/serial"
)

func cmdEncode(args []string, stdin io.Reader, stdout io.Writer) error {
	fs, configPath := newFlagSet("encode")
	fs.Usage = func() {
		fmt.Fprintln(os.Stderr, `Usage: cisctl encode [options] [request.yaml]

Encode a YAML request document as a hex contract parameter. The document
is read from stdin when no file is given.

Options:`)
		fs.PrintDefaults()
	}
	if err := fs.Parse(args); err != nil {
		return err
	}
	e, err := setup(*configPath)
	if err != nil {
		return err
	}

	in := stdin
	if fs.NArg() > 0 {
		f, err := os.Open(fs.Arg(0))
		if err != nil {
			return err
		}
		defer f.Close()
		in = f
	}

	var doc requestDoc
	dec := yaml.NewDecoder(in)
	dec.KnownFields(true)
	if err := dec.Decode(&doc); err != nil {
		return fmt.Errorf("read request: %w", err)
	}

	param, err := encodeRequest(doc)
	if err != nil {
		return err
	}
	e.logger.Debug().Str("kind", doc.Kind).Int("size", len(param)).Msg("encoded parameter")
	_, err = fmt.Fprintln(stdout, hex.EncodeToString(param))
	return err
}

// encodeRequest builds and serializes the parameter described by doc.
func encodeRequest(doc requestDoc) (contract.Parameter, error) {
	v, err := buildRequest(doc)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", doc.Kind, err)
	}
	return contract.MarshalParameter(v)
}

func buildRequest(doc requestDoc) (serial.Serializable, error) {
	switch doc.Kind {
	case kindSupports:
		param := make(cis0.SupportsParam, 0, len(doc.Standards))
		for _, s := range doc.Standards {
			id, err := cis0.NewStandardIdentifier(s)
			if err != nil {
				return nil, err
			}
			param = append(param, id)
		}
		return param, nil

	case kindBalanceOf:
		param := make(cis2.BalanceOfParam, 0, len(doc.BalanceOf))
		for i, q := range doc.BalanceOf {
			id, err := cis2.ParseTokenID(q.TokenID)
			if err != nil {
				return nil, fmt.Errorf("query %d: %w", i, err)
			}
			addr, err := q.Address.address()
			if err != nil {
				return nil, fmt.Errorf("query %d: %w", i, err)
			}
			param = append(param, cis2.BalanceOfQuery{TokenID: id, Address: addr})
		}
		return param, nil

	case kindTransfer:
		param := make(cis2.TransferParam, 0, len(doc.Transfers))
		for i, t := range doc.Transfers {
			p, err := t.payload()
			if err != nil {
				return nil, fmt.Errorf("transfer %d: %w", i, err)
			}
			param = append(param, p)
		}
		return param, nil

	case kindTokenMetadata:
		param := make(cis2.TokenMetadataParam, 0, len(doc.TokenIDs))
		for _, s := range doc.TokenIDs {
			id, err := cis2.ParseTokenID(s)
			if err != nil {
				return nil, err
			}
			param = append(param, id)
		}
		return param, nil

	case kindOperatorOf:
		param := make(cis2.OperatorOfParam, 0, len(doc.OperatorOf))
		for i, q := range doc.OperatorOf {
			owner, err := q.Owner.address()
			if err != nil {
				return nil, fmt.Errorf("query %d owner: %w", i, err)
			}
			addr, err := q.Address.address()
			if err != nil {
				return nil, fmt.Errorf("query %d address: %w", i, err)
			}
			param = append(param, cis2.OperatorOfQuery{Owner: owner, Address: addr})
		}
		return param, nil

	case kindUpdateOperator:
		param := make(cis2.UpdateOperatorParam, 0, len(doc.UpdateOperator))
		for i, u := range doc.UpdateOperator {
			var update cis2.OperatorUpdate
			switch u.Update {
			case "add":
				update = cis2.OperatorAdd
			case "remove":
				update = cis2.OperatorRemove
			default:
				return nil, fmt.Errorf("update %d: unknown operation %q", i, u.Update)
			}
			op, err := u.Operator.address()
			if err != nil {
				return nil, fmt.Errorf("update %d: %w", i, err)
			}
			param = append(param, cis2.UpdateOperator{Update: update, Operator: op})
		}
		return param, nil

	default:
		return nil, fmt.Errorf("unknown request kind")
	}
}
