// Command cisctl encodes CIS-0 and CIS-2 contract parameters and decodes
// contract responses and events.
//
// Usage:
//
//	cisctl encode [options] [request.yaml]
//	cisctl decode [options] <hex>
//	cisctl token-address <index,subindex> [token-id-hex]
//	cisctl version
//
// Encode Command:
//
//	Read a YAML request document (from a file or stdin) and print the
//	serialized parameter as hex.
//
// Decode Command:
//
//	Decode a hex response, parameter or event and print it as YAML.
//
//	Options:
//	  --kind string     supports, balanceOf, tokenMetadata, operatorOf,
//	                    transfer or event
//
// All commands accept --config to load a TOML configuration file.
package main

import (
	"fmt"
	"io"
	"os"

	"github.com/rs/zerolog"
	"github.com/spf13/pflag"

	"github.com/blockberries/ciscodec/internal/config"
	"github.com/blockberries/ciscodec/internal/logging"
	"github.com/blockberries/ciscodec/pkg/serial"
)

func main() {
	if len(os.Args) < 2 {
		printUsage(os.Stderr)
		os.Exit(1)
	}

	var err error
	switch os.Args[1] {
	case "encode", "enc", "e":
		err = cmdEncode(os.Args[2:], os.Stdin, os.Stdout)
	case "decode", "dec", "d":
		err = cmdDecode(os.Args[2:], os.Stdout)
	case "token-address", "ta":
		err = cmdTokenAddress(os.Args[2:], os.Stdout)
	case "version":
		fmt.Printf("cisctl %s\n", serial.VersionInfo())
	case "help", "-h", "--help":
		printUsage(os.Stdout)
	default:
		fmt.Fprintf(os.Stderr, "Unknown command: %s\n", os.Args[1])
		printUsage(os.Stderr)
		os.Exit(1)
	}
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func printUsage(w io.Writer) {
	fmt.Fprintln(w, `CIS contract parameter codec

Usage:
  cisctl <command> [options] [arguments]

Commands:
  encode          Encode a YAML request document as a hex parameter
  decode          Decode a hex response, parameter or event to YAML
  token-address   Print the base58check address of a token
  version         Print version information
  help            Print this help message

Run 'cisctl <command> -h' for command-specific help.`)
}

// env holds the state shared by all commands.
type env struct {
	cfg    config.Config
	logger zerolog.Logger
}

// newFlagSet creates a flag set carrying the common --config flag.
func newFlagSet(name string) (*pflag.FlagSet, *string) {
	fs := pflag.NewFlagSet(name, pflag.ContinueOnError)
	path := fs.String("config", "", "TOML configuration file")
	return fs, path
}

// setup loads the configuration and builds the logger. Logs go to stderr.
func setup(configPath string) (env, error) {
	cfg := config.Default()
	if configPath != "" {
		var err error
		if cfg, err = config.Load(configPath); err != nil {
			return env{}, err
		}
	}
	logger, err := logging.New(os.Stderr, cfg.Logging())
	if err != nil {
		return env{}, err
	}
	return env{cfg: cfg, logger: logger}, nil
}
