package cmd

import (
	"context"
	"flag"

	"github.com/google/subcommands"
	"github.com/kuzeyardabulut/fxdesk/renderer"
)

type ratesCmd struct{}

func (*ratesCmd) Name() string     { return "rates" }
func (*ratesCmd) Synopsis() string { return "display the current buy and sell rates" }
func (*ratesCmd) Usage() string {
	return `fxd rates

  Displays the buy and sell rates of every supported currency,
  expressed against the base currency.
`
}

func (*ratesCmd) SetFlags(*flag.FlagSet) {}

func (c *ratesCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	desk, _, err := openDesk()
	if err != nil {
		return errf("could not open the desk: %v", err)
	}
	printMarkdown(renderer.RatesMarkdown(desk.Registry))
	return subcommands.ExitSuccess
}

// setRatesCmd holds the flags for the 'set-rates' subcommand.
type setRatesCmd struct {
	code string
	buy  float64
	sell float64
}

func (*setRatesCmd) Name() string     { return "set-rates" }
func (*setRatesCmd) Synopsis() string { return "update the buy and sell rates of a currency" }
func (*setRatesCmd) Usage() string {
	return `fxd set-rates -c <code> -buy <rate> -sell <rate>

  Updates the rates of one currency against the base currency. Both
  rates must be positive and the sell rate must not be below the buy
  rate.
`
}

func (c *setRatesCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.code, "c", "", "Currency code to update")
	f.Float64Var(&c.buy, "buy", 0, "Base currency credited per unit the desk receives")
	f.Float64Var(&c.sell, "sell", 0, "Base currency charged per unit the desk disburses")
}

func (c *setRatesCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	if c.code == "" {
		return errf("set-rates requires -c")
	}
	desk, cfg, err := openDesk()
	if err != nil {
		return errf("could not open the desk: %v", err)
	}
	if err := desk.Registry.SetRates(c.code, c.buy, c.sell); err != nil {
		return errf("%v", err)
	}
	if err := saveRegistry(cfg, desk.Registry); err != nil {
		return errf("%v", err)
	}
	printMarkdown(renderer.RatesMarkdown(desk.Registry))
	return subcommands.ExitSuccess
}
