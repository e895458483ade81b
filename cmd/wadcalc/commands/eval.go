package commands

import (
	"fmt"

	"github.com/rs/zerolog"
	"github.com/urfave/cli/v2"

	"github.com/port-finance/precise"
)

// EvalCommand returns the eval command, which applies a checked
// arithmetic operation to two decimal values.
func EvalCommand(logger *zerolog.Logger) *cli.Command {
	return &cli.Command{
		Name:      "eval",
		Usage:     "Apply a checked arithmetic operation to two decimals",
		ArgsUsage: "<a> <add|sub|mul|div> <b>",
		Description: `Computes a single checked operation with full 18-digit precision.
Overflow, underflow and division by zero are reported as errors, the
same way the on-chain math reports them.

Examples:
  wadcalc eval 1.5 mul 2
  wadcalc eval 1 div 3`,
		Action: func(c *cli.Context) error {
			if c.NArg() != 3 {
				return cli.Exit("eval: expected <a> <op> <b>", 2)
			}
			a, err := precise.ParseDecimal(c.Args().Get(0))
			if err != nil {
				return fmt.Errorf("left operand: %w", err)
			}
			b, err := precise.ParseDecimal(c.Args().Get(2))
			if err != nil {
				return fmt.Errorf("right operand: %w", err)
			}

			op := c.Args().Get(1)
			var result precise.Decimal
			switch op {
			case "add":
				result, err = a.Add(b)
			case "sub":
				result, err = a.Sub(b)
			case "mul":
				result, err = a.Mul(b)
			case "div":
				result, err = a.Div(b)
			default:
				return cli.Exit(fmt.Sprintf("eval: unknown operation %q", op), 2)
			}
			if err != nil {
				return err
			}
			logger.Debug().Str("op", op).Msg("evaluated")
			_, err = fmt.Fprintln(c.App.Writer, result)
			return err
		},
	}
}
