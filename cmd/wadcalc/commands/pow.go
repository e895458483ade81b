package commands

import (
	"fmt"
	"strconv"

	"github.com/rs/zerolog"
	"github.com/urfave/cli/v2"

	"github.com/port-finance/precise"
)

// PowCommand returns the pow command, which compounds a rate a given
// number of times.
func PowCommand(logger *zerolog.Logger) *cli.Command {
	return &cli.Command{
		Name:      "pow",
		Usage:     "Raise a rate to an integer power",
		ArgsUsage: "<rate> <n>",
		Description: `Compounds a rate n times with the same checked exponentiation the
on-chain interest accrual uses.

Example:
  wadcalc pow 1.1 2`,
		Action: func(c *cli.Context) error {
			if c.NArg() != 2 {
				return cli.Exit("pow: expected <rate> <n>", 2)
			}
			r, err := precise.ParseRate(c.Args().Get(0))
			if err != nil {
				return err
			}
			n, err := strconv.ParseUint(c.Args().Get(1), 10, 64)
			if err != nil {
				return fmt.Errorf("exponent: %w", err)
			}

			result, err := r.Pow(n)
			if err != nil {
				return err
			}
			logger.Debug().Uint64("n", n).Msg("compounded")
			_, err = fmt.Fprintln(c.App.Writer, result)
			return err
		},
	}
}
