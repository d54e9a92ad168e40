package cmd

import (
	"context"
	"flag"
	"fmt"

	"github.com/google/subcommands"
	"github.com/kuzeyardabulut/fxdesk/renderer"
)

// adjustCmd holds the flags for the 'adjust' subcommand.
type adjustCmd struct {
	code  string
	delta float64
}

func (*adjustCmd) Name() string     { return "adjust" }
func (*adjustCmd) Synopsis() string { return "add cash to or remove cash from a reserve" }
func (*adjustCmd) Usage() string {
	return `fxd adjust -c <code> -delta <value>

  Adjusts the cash reserve of one currency. A positive delta adds to
  the reserve, a negative one removes from it. The reserve can never go
  below zero.
`
}

func (c *adjustCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.code, "c", "", "Currency code to adjust")
	f.Float64Var(&c.delta, "delta", 0, "Amount to add (positive) or remove (negative)")
}

func (c *adjustCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	if c.code == "" {
		return errf("adjust requires -c")
	}
	desk, cfg, err := openDesk()
	if err != nil {
		return errf("could not open the desk: %v", err)
	}
	if err := desk.Registry.AdjustReserve(c.code, c.delta); err != nil {
		return errf("%v", err)
	}
	if err := saveRegistry(cfg, desk.Registry); err != nil {
		return errf("%v", err)
	}
	if c.delta >= 0 {
		fmt.Printf("Added %.2f %s to reserves.\n", c.delta, c.code)
	} else {
		fmt.Printf("Removed %.2f %s from reserves.\n", -c.delta, c.code)
	}
	printAlerts(desk.Registry)
	return subcommands.ExitSuccess
}

// setMinCmd holds the flags for the 'set-min' subcommand.
type setMinCmd struct {
	code  string
	value float64
}

func (*setMinCmd) Name() string     { return "set-min" }
func (*setMinCmd) Synopsis() string { return "set the critical-minimum threshold of a currency" }
func (*setMinCmd) Usage() string {
	return `fxd set-min -c <code> -value <threshold>

  Sets the advisory low-reserve threshold of one currency. The desk
  warns when a reserve falls below it, but never blocks an operation.
`
}

func (c *setMinCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.code, "c", "", "Currency code to update")
	f.Float64Var(&c.value, "value", 0, "Critical minimum threshold (non-negative)")
}

func (c *setMinCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	if c.code == "" {
		return errf("set-min requires -c")
	}
	desk, cfg, err := openDesk()
	if err != nil {
		return errf("could not open the desk: %v", err)
	}
	if err := desk.Registry.SetCriticalMin(c.code, c.value); err != nil {
		return errf("%v", err)
	}
	if err := saveRegistry(cfg, desk.Registry); err != nil {
		return errf("%v", err)
	}
	fmt.Printf("Critical minimum of %s set to %.2f.\n", c.code, c.value)
	printAlerts(desk.Registry)
	return subcommands.ExitSuccess
}

type balancesCmd struct{}

func (*balancesCmd) Name() string     { return "balances" }
func (*balancesCmd) Synopsis() string { return "display the current reserves of every currency" }
func (*balancesCmd) Usage() string {
	return `fxd balances

  Displays the cash reserve of every supported currency, with alerts
  for reserves below their critical minimum.
`
}

func (*balancesCmd) SetFlags(*flag.FlagSet) {}

func (c *balancesCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	desk, _, err := openDesk()
	if err != nil {
		return errf("could not open the desk: %v", err)
	}
	printMarkdown(renderer.BalancesMarkdown(desk.Registry))
	return subcommands.ExitSuccess
}
