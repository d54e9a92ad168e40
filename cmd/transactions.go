package cmd

import (
	"context"
	"flag"
	"fmt"

	"github.com/google/subcommands"
	"github.com/kuzeyardabulut/fxdesk"
)

// txAddCmd holds the flags for the 'tx-add' subcommand.
type txAddCmd struct {
	date   string
	from   string
	to     string
	amount float64
	paid   float64
}

func (*txAddCmd) Name() string     { return "tx-add" }
func (*txAddCmd) Synopsis() string { return "append a manual transaction to the ledger" }
func (*txAddCmd) Usage() string {
	return `fxd tx-add -from <code> -to <code> -amount <value> -paid <value> [-d <date>]

  Appends a hand-entered transaction to the date's ledger file without
  touching any reserve. The record consumes the next transaction id and
  snapshots the current rates; its profit is recorded as zero.
`
}

func (c *txAddCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.date, "d", "", "Date of the transaction (defaults to today)")
	f.StringVar(&c.from, "from", "", "Currency the client gave")
	f.StringVar(&c.to, "to", "", "Currency the client received")
	f.Float64Var(&c.amount, "amount", 0, "Amount given, in the from-currency")
	f.Float64Var(&c.paid, "paid", 0, "Amount received, in the to-currency")
}

func (c *txAddCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	if c.from == "" || c.to == "" {
		return errf("tx-add requires -from and -to")
	}
	date, err := parseDateFlag(c.date)
	if err != nil {
		return errf("%v", err)
	}
	desk, _, err := openDesk()
	if err != nil {
		return errf("could not open the desk: %v", err)
	}
	rec, err := desk.ManualRecord(date, "", c.from, c.to, c.amount, c.paid)
	if err != nil {
		return errf("%v", err)
	}
	fmt.Printf("Added transaction id %d to %s\n", rec.ID, fxdesk.FileName(rec.Date))
	return subcommands.ExitSuccess
}

// txListCmd holds the flags for the 'tx-list' subcommand.
type txListCmd struct {
	date string
}

func (*txListCmd) Name() string     { return "tx-list" }
func (*txListCmd) Synopsis() string { return "list the transactions recorded for a date" }
func (*txListCmd) Usage() string {
	return `fxd tx-list [-d <date>]

  Lists the well-formed transactions of the date's ledger file, legacy
  records included. Malformed lines are skipped.
`
}

func (c *txListCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.date, "d", "", "Date to list (defaults to today)")
}

func (c *txListCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	date, err := parseDateFlag(c.date)
	if err != nil {
		return errf("%v", err)
	}
	desk, _, err := openDesk()
	if err != nil {
		return errf("could not open the desk: %v", err)
	}
	recs, err := desk.Ledger.Records(date)
	if err != nil {
		return errf("%v", err)
	}
	if len(recs) == 0 {
		fmt.Printf("No transactions recorded for %s.\n", date)
		return subcommands.ExitSuccess
	}
	fmt.Printf("Transactions in %s:\n", fxdesk.FileName(date))
	for _, rec := range recs {
		printRecord(rec)
	}
	return subcommands.ExitSuccess
}

// txFindCmd holds the flags for the 'tx-find' subcommand.
type txFindCmd struct {
	date string
	id   int64
}

func (*txFindCmd) Name() string     { return "tx-find" }
func (*txFindCmd) Synopsis() string { return "search a date's ledger for a transaction id" }
func (*txFindCmd) Usage() string {
	return `fxd tx-find -id <id> [-d <date>]

  Searches the date's ledger file for the transaction id. Legacy
  records carry no id and can never match.
`
}

func (c *txFindCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.date, "d", "", "Date to search (defaults to today)")
	f.Int64Var(&c.id, "id", 0, "Transaction id to search for")
}

func (c *txFindCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	if c.id <= 0 {
		return errf("tx-find requires a positive -id")
	}
	date, err := parseDateFlag(c.date)
	if err != nil {
		return errf("%v", err)
	}
	desk, _, err := openDesk()
	if err != nil {
		return errf("could not open the desk: %v", err)
	}
	rec, found, err := desk.Ledger.FindByID(date, c.id)
	if err != nil {
		return errf("%v", err)
	}
	if !found {
		fmt.Printf("Transaction %d not found for %s\n", c.id, date)
		return subcommands.ExitSuccess
	}
	printRecord(rec)
	return subcommands.ExitSuccess
}

func printRecord(rec fxdesk.LedgerRecord) {
	partial := ""
	if rec.Partial {
		partial = fmt.Sprintf(" partial, remainder %s", rec.RemainderBase.StringFixed(2))
	}
	fmt.Printf("#%d %s %s  %s %s -> %s %s%s  profit %s\n",
		rec.ID, rec.Date, rec.Time,
		rec.AmountFrom.StringFixed(2), rec.From,
		rec.AmountTo.StringFixed(2), rec.To,
		partial, rec.ProfitDelta.StringFixed(2))
}
