// Package cmd implements the CLI application to operate the exchange
// desk. Every command loads the desk, runs exactly one engine
// operation, and persists the registry snapshot when it mutated state.
package cmd

import (
	"errors"
	"flag"
	"fmt"
	"io/fs"
	"log"
	"os"
	"path/filepath"

	"github.com/charmbracelet/glamour"
	"github.com/google/subcommands"
	"github.com/kuzeyardabulut/fxdesk"
)

// Commands lists the desk subcommands in menu order. A main package
// registers them on a commander and executes the user-selected one.
var Commands = []subcommands.Command{
	&exchangeCmd{},
	&ratesCmd{},
	&setRatesCmd{},
	&adjustCmd{},
	&setMinCmd{},
	&balancesCmd{},
	&breakdownCmd{},
	&dailyCmd{},
	&monthlyCmd{},
	&txAddCmd{},
	&txListCmd{},
	&txFindCmd{},
}

// as a CLI application, it has a very short lived lifecycle, so it is ok to use global variables.

var configFile = flag.String("config", "", "Path to the desk configuration file (defaults to fxdesk.yaml in the working directory)")
var dataDir = flag.String("data", "", "Directory holding the ledger, state and receipt files (overrides the configuration)")

// loadConfig loads the desk configuration, honoring the -data
// override.
func loadConfig() (fxdesk.Config, error) {
	cfg, err := fxdesk.LoadConfig(*configFile)
	if err != nil {
		return cfg, err
	}
	if *dataDir != "" {
		cfg.DataDir = *dataDir
	}
	return cfg, nil
}

// openDesk assembles the desk: the registry from the persisted
// snapshot (or the configuration seed on first run), the ledger store
// and the transaction-id counter from the data directory.
func openDesk() (*fxdesk.Desk, fxdesk.Config, error) {
	cfg, err := loadConfig()
	if err != nil {
		return nil, cfg, err
	}
	reg, err := loadRegistry(cfg)
	if err != nil {
		return nil, cfg, err
	}
	desk := fxdesk.NewDesk(
		reg,
		fxdesk.NewLedgerStore(cfg.DataDir),
		fxdesk.LoadCounter(filepath.Join(cfg.DataDir, fxdesk.CounterFileName)),
	)
	return desk, cfg, nil
}

func loadRegistry(cfg fxdesk.Config) (*fxdesk.Registry, error) {
	path := filepath.Join(cfg.DataDir, fxdesk.StateFileName)
	f, err := os.Open(path)
	if errors.Is(err, fs.ErrNotExist) {
		log.Println("warning, desk state does not exist, seeding from the configuration instead")
		return cfg.Registry()
	}
	if err != nil {
		return nil, fmt.Errorf("opening desk state %q: %w", path, err)
	}
	defer f.Close()
	return fxdesk.DecodeRegistry(f)
}

// saveRegistry persists the registry snapshot back into the data
// directory. Commands that mutated reserves, rates or thresholds call
// it once, after the engine operation succeeded.
func saveRegistry(cfg fxdesk.Config, reg *fxdesk.Registry) error {
	path := filepath.Join(cfg.DataDir, fxdesk.StateFileName)
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("writing desk state %q: %w", path, err)
	}
	if err := fxdesk.EncodeRegistry(f, reg); err != nil {
		f.Close()
		return err
	}
	return f.Close()
}

// printMarkdown renders markdown on the terminal. When rendering is
// not possible the raw markdown is printed as-is, which is still
// readable.
func printMarkdown(md string) {
	out, err := glamour.Render(md, "auto")
	if err != nil {
		fmt.Print(md)
		return
	}
	fmt.Print(out)
}

// warnf reports a non-fatal problem on stderr.
func warnf(format string, args ...any) {
	fmt.Fprintf(os.Stderr, "Warning: "+format+"\n", args...)
}

// errf reports a command failure on stderr.
func errf(format string, args ...any) subcommands.ExitStatus {
	fmt.Fprintf(os.Stderr, "Error: "+format+"\n", args...)
	return subcommands.ExitFailure
}

// printAlerts surfaces critical-reserve alerts after an operation.
func printAlerts(reg *fxdesk.Registry) {
	for _, a := range reg.CriticalAlerts() {
		warnf("%s reserve below critical minimum (%.2f < %.2f)", a.Code, a.Reserve, a.CriticalMin)
	}
}

// parseDateFlag resolves an optional -d flag, defaulting to today.
func parseDateFlag(s string) (fxdesk.Date, error) {
	if s == "" {
		return fxdesk.Today(), nil
	}
	return fxdesk.ParseDate(s)
}
