package cmd

import (
	"context"
	"flag"
	"fmt"

	"github.com/google/subcommands"
	"github.com/kuzeyardabulut/fxdesk"
	"github.com/kuzeyardabulut/fxdesk/renderer"
)

// dailyCmd holds the flags for the 'daily' subcommand.
type dailyCmd struct {
	date string
}

func (*dailyCmd) Name() string     { return "daily" }
func (*dailyCmd) Synopsis() string { return "display the end-of-day report for a date" }
func (*dailyCmd) Usage() string {
	return `fxd daily [-d <date>]

  Displays the transaction count and profit of the date, the
  month-to-date figures, and the cashier bonus. Everything is
  recomputed from the ledger files.
`
}

func (c *dailyCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.date, "d", "", "Date for the report (defaults to today)")
}

func (c *dailyCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	date, err := parseDateFlag(c.date)
	if err != nil {
		return errf("%v", err)
	}
	desk, cfg, err := openDesk()
	if err != nil {
		return errf("could not open the desk: %v", err)
	}
	agg := fxdesk.NewAggregator(cfg.DataDir)
	summary, err := agg.DailySummary(date)
	if err != nil {
		return errf("%v", err)
	}
	printMarkdown(renderer.DailySummaryMarkdown(summary, desk.Registry.Base(), desk.Registry.CriticalAlerts()))
	return subcommands.ExitSuccess
}

// monthlyCmd holds the flags for the 'monthly' subcommand.
type monthlyCmd struct {
	month string
}

func (*monthlyCmd) Name() string     { return "monthly" }
func (*monthlyCmd) Synopsis() string { return "display the profit summary of a month" }
func (*monthlyCmd) Usage() string {
	return `fxd monthly [-m <YYYY-MM>]

  Sums the transaction count and profit over every ledger file of the
  month (defaults to the current month).
`
}

func (c *monthlyCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.month, "m", "", "Month for the report, as YYYY-MM (defaults to the current month)")
}

func (c *monthlyCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	month := c.month
	if month == "" {
		month = fxdesk.Today().YearMonth()
	}
	desk, cfg, err := openDesk()
	if err != nil {
		return errf("could not open the desk: %v", err)
	}
	profit, count, err := fxdesk.NewAggregator(cfg.DataDir).SumProfitForMonth(month)
	if err != nil {
		return errf("%v", err)
	}
	fmt.Printf("Month %s: %d transaction(s), profit %s\n",
		month, count, fxdesk.DisplayMoney(desk.Registry.Base(), profit))
	return subcommands.ExitSuccess
}
