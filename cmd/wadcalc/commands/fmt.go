// Package commands implements the wadcalc subcommands.
package commands

import (
	"fmt"

	"github.com/rs/zerolog"
	"github.com/urfave/cli/v2"

	"github.com/port-finance/precise"
)

// FmtCommand returns the fmt command, which renders a raw scaled
// integer as a decimal string.
func FmtCommand(logger *zerolog.Logger) *cli.Command {
	return &cli.Command{
		Name:      "fmt",
		Usage:     "Render a raw WAD-scaled integer as a decimal string",
		ArgsUsage: "<scaled>",
		Description: `Reads a raw scaled value as stored on chain (base-10, or base-16 with a
0x prefix) and prints the decimal it represents.

Examples:
  wadcalc fmt 1500000000000000000
  wadcalc fmt 0x14d1120d7b160000`,
		Action: func(c *cli.Context) error {
			if c.NArg() != 1 {
				return cli.Exit("fmt: exactly one scaled value is required", 2)
			}
			s, err := precise.ParseScaled(c.Args().Get(0))
			if err != nil {
				return err
			}
			logger.Debug().Str("scaled", s.String()).Msg("parsed scaled value")
			_, err = fmt.Fprintln(c.App.Writer, precise.DecimalFromScaled(s))
			return err
		},
	}
}
