package main

import (
	"encoding/hex"
	"fmt"
	"io"
	"os"
	"strings"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
	"gopkg.in/yaml.v3"

	"github.com/blockberries/ciscodec/pkg/cis0"
	"github.com/blockberries/ciscodec/pkg/cis2"
	"github.com/blockberries/ciscodec/pkg/serial"
)

// Message kinds understood by encode and decode.
const (
	kindSupports       = "supports"
	kindBalanceOf      = "balanceOf"
	kindTransfer       = "transfer"
	kindTokenMetadata  = "tokenMetadata"
	kindOperatorOf     = "operatorOf"
	kindUpdateOperator = "updateOperator"
	kindEvent          = "event"
)

// kindLabels describe the decoded message of each kind.
var kindLabels = map[string]string{
	kindSupports:      "supports response",
	kindBalanceOf:     "balance of response",
	kindTransfer:      "transfer parameter",
	kindTokenMetadata: "token metadata response",
	kindOperatorOf:    "operator of response",
	kindEvent:         "CIS-2 event",
}

var titleCaser = cases.Title(language.English, cases.NoLower)

func cmdDecode(args []string, stdout io.Writer) error {
	fs, configPath := newFlagSet("decode")
	kind := fs.StringP("kind", "k", kindEvent, "Message kind: supports, balanceOf, tokenMetadata, operatorOf, transfer, event")
	fs.Usage = func() {
		fmt.Fprintln(os.Stderr, `Usage: cisctl decode [options] <hex>

Decode a hex encoded contract response, parameter or event as YAML.

Options:`)
		fs.PrintDefaults()
	}
	if err := fs.Parse(args); err != nil {
		return err
	}
	if fs.NArg() != 1 {
		return fmt.Errorf("decode takes exactly one hex argument")
	}
	e, err := setup(*configPath)
	if err != nil {
		return err
	}

	data, err := hex.DecodeString(strings.TrimPrefix(strings.TrimSpace(fs.Arg(0)), "0x"))
	if err != nil {
		return fmt.Errorf("invalid hex: %w", err)
	}
	doc, err := decodeMessage(*kind, data, e.cfg.Options())
	if err != nil {
		e.logger.Debug().Err(err).Str("kind", *kind).Int("size", len(data)).Msg("decode failed")
		return decodeFailure(*kind, err)
	}
	return writeDoc(stdout, doc)
}

// decodeFailure tells a limit rejection apart from malformed input.
func decodeFailure(kind string, err error) error {
	switch {
	case serial.IsLimitExceeded(err):
		return fmt.Errorf("%s exceeds the configured limits: %w", kind, err)
	case serial.IsMalformed(err):
		return fmt.Errorf("malformed %s: %w", kind, err)
	default:
		return err
	}
}

// decodeMessage decodes data as a message of the given kind.
func decodeMessage(kind string, data []byte, opts serial.Options) (responseDoc, error) {
	doc := responseDoc{Kind: kind}
	switch kind {
	case kindSupports:
		resp, err := serial.DecodeWithOptions(data, opts, cis0.ReadSupportsResponse)
		if err != nil {
			return doc, err
		}
		for _, r := range resp {
			doc.Supports = append(doc.Supports, toSupportDoc(r))
		}
	case kindBalanceOf:
		resp, err := serial.DecodeWithOptions(data, opts, cis2.ReadBalanceOfResponse)
		if err != nil {
			return doc, err
		}
		for _, a := range resp {
			doc.Balances = append(doc.Balances, a.String())
		}
	case kindTokenMetadata:
		resp, err := serial.DecodeWithOptions(data, opts, cis2.ReadTokenMetadataResponse)
		if err != nil {
			return doc, err
		}
		for _, m := range resp {
			doc.Metadata = append(doc.Metadata, toMetadataDoc(m))
		}
	case kindOperatorOf:
		resp, err := serial.DecodeWithOptions(data, opts, cis2.ReadOperatorOfResponse)
		if err != nil {
			return doc, err
		}
		doc.Operators = resp
	case kindTransfer:
		param, err := serial.DecodeWithOptions(data, opts, cis2.ReadTransferParam)
		if err != nil {
			return doc, err
		}
		for _, t := range param {
			doc.Transfers = append(doc.Transfers, toTransferDoc(t))
		}
	case kindEvent:
		ev, err := serial.DecodeWithOptions(data, opts, cis2.ReadEvent)
		if err != nil {
			return doc, err
		}
		doc.Event = toEventDoc(ev)
	default:
		return doc, fmt.Errorf("unknown message kind %q", kind)
	}
	return doc, nil
}

// writeDoc writes doc as YAML under a title comment.
func writeDoc(w io.Writer, doc responseDoc) error {
	label := kindLabels[doc.Kind]
	if label == "" {
		label = doc.Kind
	}
	if _, err := fmt.Fprintf(w, "# %s\n", titleCaser.String(label)); err != nil {
		return err
	}
	enc := yaml.NewEncoder(w)
	enc.SetIndent(2)
	if err := enc.Encode(doc); err != nil {
		return err
	}
	return enc.Close()
}
