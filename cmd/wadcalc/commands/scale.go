package commands

import (
	"encoding/hex"
	"fmt"

	"github.com/rs/zerolog"
	"github.com/urfave/cli/v2"

	"github.com/port-finance/precise"
)

// ScaleCommand returns the scale command, which prints the raw scaled
// form of a decimal value.
func ScaleCommand(logger *zerolog.Logger) *cli.Command {
	return &cli.Command{
		Name:      "scale",
		Usage:     "Print the raw scaled value and packed bytes of a decimal",
		ArgsUsage: "<value>",
		Description: `Parses a decimal string and prints its WAD-scaled integer together
with the 16-byte little-endian packing used in account data.

Example:
  wadcalc scale 1.5`,
		Action: func(c *cli.Context) error {
			if c.NArg() != 1 {
				return cli.Exit("scale: exactly one decimal value is required", 2)
			}
			d, err := precise.ParseDecimal(c.Args().Get(0))
			if err != nil {
				return err
			}
			s, err := d.Scaled()
			if err != nil {
				return err
			}
			data, err := d.MarshalBinary()
			if err != nil {
				return err
			}
			logger.Debug().Str("value", d.String()).Msg("scaled decimal")
			_, err = fmt.Fprintf(c.App.Writer, "scaled %s\npacked 0x%s\n", s, hex.EncodeToString(data))
			return err
		},
	}
}
