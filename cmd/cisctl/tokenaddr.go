package main

import (
	"fmt"
	"io"
	"os"

	"github.com/blockberries/ciscodec/pkg/cis2"
)

func cmdTokenAddress(args []string, stdout io.Writer) error {
	fs, _ := newFlagSet("token-address")
	parse := fs.BoolP("parse", "p", false, "Parse a token address instead of building one")
	fs.Usage = func() {
		fmt.Fprintln(os.Stderr, `Usage: cisctl token-address <index,subindex> [token-id-hex]
       cisctl token-address --parse <token-address>

Options:`)
		fs.PrintDefaults()
	}
	if err := fs.Parse(args); err != nil {
		return err
	}

	if *parse {
		if fs.NArg() != 1 {
			return fmt.Errorf("--parse takes exactly one token address")
		}
		addr, err := cis2.ParseTokenAddress(fs.Arg(0))
		if err != nil {
			return err
		}
		_, err = fmt.Fprintf(stdout, "contract: %s\ntoken_id: %q\n", addr.Contract, addr.ID.String())
		return err
	}

	if fs.NArg() < 1 || fs.NArg() > 2 {
		return fmt.Errorf("token-address takes a contract address and an optional token ID")
	}
	contract, err := parseContractAddress(fs.Arg(0))
	if err != nil {
		return err
	}
	var id cis2.TokenID
	if fs.NArg() == 2 {
		if id, err = cis2.ParseTokenID(fs.Arg(1)); err != nil {
			return err
		}
	}
	_, err = fmt.Fprintln(stdout, cis2.TokenAddress{Contract: contract, ID: id}.String())
	return err
}
