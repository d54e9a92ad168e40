package cmd

import (
	"context"
	"flag"
	"fmt"

	"github.com/google/subcommands"
	"github.com/kuzeyardabulut/fxdesk/renderer"
)

// breakdownCmd holds the flags for the 'breakdown' subcommand.
type breakdownCmd struct {
	code   string
	amount float64
}

func (*breakdownCmd) Name() string     { return "breakdown" }
func (*breakdownCmd) Synopsis() string { return "split an amount into notes and coins" }
func (*breakdownCmd) Usage() string {
	return `fxd breakdown -c <code> -amount <value>

  Splits the amount into a greedy largest-first count of the currency's
  notes and coins. The sub-unit part and any undividable remainder are
  reported but not split further.
`
}

func (c *breakdownCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.code, "c", "", "Currency code")
	f.Float64Var(&c.amount, "amount", 0, "Amount to break down")
}

func (c *breakdownCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	if c.code == "" || c.amount < 0 {
		return errf("breakdown requires -c and a non-negative -amount")
	}
	desk, _, err := openDesk()
	if err != nil {
		return errf("could not open the desk: %v", err)
	}
	b, ok, err := desk.Registry.Breakdown(c.code, c.amount)
	if err != nil {
		return errf("%v", err)
	}
	if !ok {
		fmt.Printf("No denomination breakdown available for %s.\n", c.code)
		return subcommands.ExitSuccess
	}
	printMarkdown(renderer.BreakdownMarkdown(b))
	return subcommands.ExitSuccess
}
