package main

import (
	"os"

	"github.com/rs/zerolog"
	"github.com/urfave/cli/v2"

	"github.com/port-finance/precise/cmd/wadcalc/commands"
)

func main() {
	logger := newLogger()
	app := newApp(&logger)
	if err := app.Run(os.Args); err != nil {
		logger.Error().Err(err).Msg("wadcalc failed")
		os.Exit(1)
	}
}

func newLogger() zerolog.Logger {
	return zerolog.New(zerolog.ConsoleWriter{Out: os.Stderr}).
		Level(zerolog.InfoLevel).
		With().
		Timestamp().
		Logger()
}

func newApp(logger *zerolog.Logger) *cli.App {
	return &cli.App{
		Name:  "wadcalc",
		Usage: "inspect and compute WAD-scaled fixed-point values",
		Description: `Works with the fixed-point representation used for on-chain token math:
unsigned values scaled by 10^18, stored as 128-bit little-endian
integers. Useful for reading raw account data and checking interest
calculations by hand.`,
		Commands: []*cli.Command{
			commands.FmtCommand(logger),
			commands.ScaleCommand(logger),
			commands.EvalCommand(logger),
			commands.PowCommand(logger),
		},
	}
}
