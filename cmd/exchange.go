package cmd

import (
	"context"
	"flag"
	"fmt"

	"github.com/google/subcommands"
	"github.com/kuzeyardabulut/fxdesk"
	"github.com/kuzeyardabulut/fxdesk/renderer"
)

// exchangeCmd holds the flags for the 'exchange' subcommand.
type exchangeCmd struct {
	from      string
	to        string
	amount    float64
	payout    float64
	breakdown bool
	receipt   bool
}

func (*exchangeCmd) Name() string     { return "exchange" }
func (*exchangeCmd) Synopsis() string { return "perform a client exchange and record it in the ledger" }
func (*exchangeCmd) Usage() string {
	return `fxd exchange -from <code> -to <code> -amount <value> [-payout <value>] [-breakdown] [-receipt]

  Converts the amount the client hands over into the target currency
  through the base currency, commits the reserve movements, and appends
  the transaction to today's ledger file.

  With -payout, only that many units of the target currency are paid
  now and the remainder is settled in base currency (partial exchange).

Usage Examples:
# Full exchange of 100 USD into EUR, with a note/coin breakdown.
$ fxd exchange -from USD -to EUR -amount 100 -breakdown

# Partial: pay 40 EUR now, the rest in base cash, and print a receipt.
$ fxd exchange -from USD -to EUR -amount 100 -payout 40 -receipt
`
}

func (c *exchangeCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.from, "from", "", "Currency the client gives to the cashier")
	f.StringVar(&c.to, "to", "", "Currency the client receives")
	f.Float64Var(&c.amount, "amount", 0, "Amount to exchange, in the from-currency")
	f.Float64Var(&c.payout, "payout", -1, "Units of the target currency to pay now (partial exchange)")
	f.BoolVar(&c.breakdown, "breakdown", false, "Print a denomination breakdown of the payout")
	f.BoolVar(&c.receipt, "receipt", false, "Append a receipt to the date's receipt file")
}

func (c *exchangeCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	if c.from == "" || c.to == "" || c.amount <= 0 {
		return errf("exchange requires -from, -to and a positive -amount")
	}
	desk, cfg, err := openDesk()
	if err != nil {
		return errf("could not open the desk: %v", err)
	}

	req := fxdesk.ExchangeRequest{From: c.from, To: c.to, AmountFrom: c.amount}
	if c.payout >= 0 {
		req.Partial = true
		req.Payout = c.payout
	}

	res, err := desk.Exchange(req)
	if err != nil {
		return errf("%v", err)
	}
	if err := saveRegistry(cfg, desk.Registry); err != nil {
		warnf("%v", err)
	}
	if res.LedgerWarn != nil {
		warnf("transaction committed in memory but not fully persisted: %v", res.LedgerWarn)
	}

	fmt.Printf("Transaction %d: %.2f %s -> %.2f %s\n", res.Record.ID, c.amount, c.from, res.Paid, c.to)
	if req.Partial {
		fmt.Printf("Partial payout: remainder to client: %.2f %s\n", res.RemainderBase, desk.Registry.Base())
	}

	if c.receipt {
		if err := desk.Ledger.AppendReceipt(res.Record); err != nil {
			warnf("%v", err)
		} else {
			fmt.Printf("Receipt appended to %s\n", fxdesk.ReceiptFileName(res.Record.Date))
		}
	}

	if c.breakdown {
		c.printBreakdown(desk, c.to, res.Paid)
		if req.Partial && res.RemainderBase > 0 {
			c.printBreakdown(desk, desk.Registry.Base(), res.RemainderBase)
		}
	}

	printAlerts(desk.Registry)
	return subcommands.ExitSuccess
}

func (c *exchangeCmd) printBreakdown(desk *fxdesk.Desk, code string, amount float64) {
	b, ok, err := desk.Registry.Breakdown(code, amount)
	if err != nil {
		warnf("%v", err)
		return
	}
	if !ok {
		fmt.Printf("No denomination breakdown available for %s.\n", code)
		return
	}
	printMarkdown(renderer.BreakdownMarkdown(b))
}
