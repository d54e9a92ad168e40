package fxdesk

import (
	"bufio"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/shopspring/decimal"
)

// cashierBonusRate is the share of month-to-date profit reported as
// the cashier bonus. Derived on every report, never persisted.
var cashierBonusRate = decimal.NewFromFloat(0.05)

// Summary is the end-of-day report for one date, including the
// month-to-date figures derived from the date's month prefix.
type Summary struct {
	Date              Date
	Transactions      int
	Profit            float64
	YearMonth         string
	MonthTransactions int
	MonthProfit       float64
	CashierBonus      float64 // 5% of month-to-date profit
}

// Aggregator computes profit summaries by re-parsing ledger files.
// The ledger is the sole source of truth: no running total is ever
// consulted.
type Aggregator struct {
	dir string
}

// NewAggregator creates an aggregator scanning ledger files in dir.
func NewAggregator(dir string) *Aggregator {
	return &Aggregator{dir: dir}
}

// SumProfitForDate returns the total profit and transaction count of
// one date's ledger. A missing file is a valid empty day and yields
// zero and zero.
func (a *Aggregator) SumProfitForDate(d Date) (float64, int, error) {
	profit, count, err := a.sumFile(filepath.Join(a.dir, FileName(d)))
	return profit.InexactFloat64(), count, err
}

// SumProfitForMonth sums per-date results over every ledger file of
// the yearMonth ("YYYY-MM") in the data directory.
func (a *Aggregator) SumProfitForMonth(yearMonth string) (float64, int, error) {
	entries, err := os.ReadDir(a.dir)
	if err != nil {
		if os.IsNotExist(err) {
			return 0, 0, nil
		}
		return 0, 0, fmt.Errorf("%w: scanning %q: %v", ErrLedgerIO, a.dir, err)
	}

	prefix := "sales_" + yearMonth + "-"
	total := decimal.Zero
	count := 0
	for _, e := range entries {
		name := e.Name()
		if e.IsDir() || !strings.HasPrefix(name, prefix) || !strings.HasSuffix(name, ".csv") {
			continue
		}
		p, c, err := a.sumFile(filepath.Join(a.dir, name))
		if err != nil {
			return total.InexactFloat64(), count, err
		}
		total = total.Add(p)
		count += c
	}
	return total.InexactFloat64(), count, nil
}

// DailySummary builds the end-of-day report for the date: its own
// transaction count and profit, the month-to-date figures, and the
// derived cashier bonus.
func (a *Aggregator) DailySummary(d Date) (Summary, error) {
	s := Summary{Date: d, YearMonth: d.YearMonth()}

	profit, count, err := a.SumProfitForDate(d)
	if err != nil {
		return s, err
	}
	s.Profit, s.Transactions = profit, count

	monthProfit, monthCount, err := a.SumProfitForMonth(s.YearMonth)
	if err != nil {
		return s, err
	}
	s.MonthProfit, s.MonthTransactions = monthProfit, monthCount
	s.CashierBonus = decimal.NewFromFloat(monthProfit).Mul(cashierBonusRate).InexactFloat64()
	return s, nil
}

// sumFile accumulates profit over one ledger file, accepting both the
// current and the legacy record schema and skipping anything else.
// Profit is summed as decimals so no precision is lost along the way.
func (a *Aggregator) sumFile(path string) (decimal.Decimal, int, error) {
	f, err := os.Open(path)
	if err != nil {
		if os.IsNotExist(err) {
			return decimal.Zero, 0, nil
		}
		return decimal.Zero, 0, fmt.Errorf("%w: opening %q: %v", ErrLedgerIO, path, err)
	}
	defer f.Close()

	total := decimal.Zero
	count := 0
	scanner := bufio.NewScanner(f)
	first := true
	for scanner.Scan() {
		if first {
			first = false // header
			continue
		}
		rec, schema := parseRecordLine(scanner.Text())
		if schema == schemaMalformed {
			continue
		}
		total = total.Add(rec.ProfitDelta)
		count++
	}
	if err := scanner.Err(); err != nil {
		return total, count, fmt.Errorf("%w: reading %q: %v", ErrLedgerIO, path, err)
	}
	return total, count, nil
}
