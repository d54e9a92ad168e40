package fxdesk

import (
	"errors"
	"fmt"
	"time"

	"github.com/shopspring/decimal"
)

// Desk bundles the registry, the ledger store and the transaction-id
// counter, and runs the commit sequence of an exchange: validate
// fully, mutate the registry atomically, then attempt the ledger
// append. The reserve mutation and the append are two separate
// effects; a crash in between leaves the reserve updated and the
// record missing, an accepted risk that is never "fixed" by undoing
// disk writes.
type Desk struct {
	Registry *Registry
	Ledger   *LedgerStore
	Counter  *Counter
}

// NewDesk assembles a desk from its parts.
func NewDesk(reg *Registry, ledger *LedgerStore, counter *Counter) *Desk {
	return &Desk{Registry: reg, Ledger: ledger, Counter: counter}
}

// ExchangeRequest describes one client exchange. Amounts arrive
// already range-checked by the caller; the engine never re-prompts.
type ExchangeRequest struct {
	From       string
	To         string
	AmountFrom float64

	// Partial settles only Payout units of the to-currency now, the
	// shortfall being paid to the client in base currency.
	Partial bool
	Payout  float64

	// Date and Time default to the current wall clock when zero.
	Date Date
	Time string
}

// ExchangeResult is the outcome of a committed exchange.
type ExchangeResult struct {
	Quote         Quote
	Paid          float64 // to-currency actually disbursed
	RemainderBase float64 // base currency paid out when partial
	Record        LedgerRecord

	// LedgerWarn reports a persistence failure that happened after the
	// in-memory commit. The registry mutation stands; the caller must
	// surface the warning so the books can be reconciled manually.
	LedgerWarn error
}

// Exchange runs a full or partial exchange end to end.
//
// Validation happens before any mutation. The reserve commit is atomic
// across its three effects: credit the from-currency, debit the
// to-currency, and, when partial, debit the base currency by the
// remainder. If any debit would violate non-negativity the attempt is
// rolled back and the registry is left exactly as before.
func (d *Desk) Exchange(req ExchangeRequest) (ExchangeResult, error) {
	quote, err := d.Registry.Convert(req.From, req.To, req.AmountFrom)
	if err != nil {
		return ExchangeResult{}, err
	}

	paid := quote.AmountTo
	remainder := 0.0
	if req.Partial {
		remainder, err = d.Registry.PartialRemainder(req.From, req.To, req.AmountFrom, req.Payout)
		if err != nil {
			return ExchangeResult{}, err
		}
		paid = req.Payout
	}

	if err := d.commitReserves(req.From, req.To, req.AmountFrom, paid, remainder); err != nil {
		return ExchangeResult{}, err
	}

	res := ExchangeResult{Quote: quote, Paid: paid, RemainderBase: remainder}
	res.Record, res.LedgerWarn = d.record(req, quote, paid, remainder)
	return res, nil
}

// commitReserves applies the three reserve effects of an exchange,
// compensating already-applied mutations when a later one fails so the
// registry is never observable in a partially-committed state.
func (d *Desk) commitReserves(from, to string, amountFrom, paid, remainder float64) error {
	if err := d.Registry.AdjustReserve(from, amountFrom); err != nil {
		return err
	}
	if err := d.Registry.AdjustReserve(to, -paid); err != nil {
		d.mustAdjust(from, -amountFrom)
		return err
	}
	if remainder > 0 {
		if err := d.Registry.AdjustReserve(d.Registry.Base(), -remainder); err != nil {
			d.mustAdjust(to, paid)
			d.mustAdjust(from, -amountFrom)
			return err
		}
	}
	return nil
}

// mustAdjust rolls back a previously applied reserve effect. Undoing a
// credit by the same delta cannot fail the non-negativity check.
func (d *Desk) mustAdjust(code string, delta float64) {
	if err := d.Registry.AdjustReserve(code, delta); err != nil {
		panic(fmt.Sprintf("rollback of %s by %.6f failed: %v", code, delta, err))
	}
}

// record issues the next transaction id, builds the ledger record and
// appends it. All failures here are post-commit warnings.
func (d *Desk) record(req ExchangeRequest, quote Quote, paid, remainder float64) (LedgerRecord, error) {
	id, warn := d.Counter.Next()

	date := req.Date
	if date.IsZero() {
		date = Today()
	}
	clock := req.Time
	if clock == "" {
		clock = time.Now().Format(TimeFormat)
	}

	rec := LedgerRecord{
		Date:          date,
		Time:          clock,
		ID:            id,
		From:          req.From,
		To:            req.To,
		AmountFrom:    decimal.NewFromFloat(req.AmountFrom),
		AmountTo:      decimal.NewFromFloat(paid),
		RateFromBase:  decimal.NewFromFloat(quote.RateFromBase),
		RateToBase:    decimal.NewFromFloat(quote.RateToBase),
		Partial:       req.Partial,
		RemainderBase: decimal.NewFromFloat(remainder),
		ProfitDelta:   decimal.NewFromFloat(quote.ProfitDelta),
	}
	if err := d.Ledger.Append(rec); err != nil {
		warn = errors.Join(warn, err)
	}
	return rec, warn
}

// ManualRecord appends a hand-entered transaction to the ledger
// without touching any reserve. It consumes the next transaction id
// like any committed transaction; rates are snapshotted from the
// registry, profit is recorded as zero.
func (d *Desk) ManualRecord(date Date, clock, from, to string, amountFrom, amountTo float64) (LedgerRecord, error) {
	buyFrom, _, err := d.Registry.Rates(from)
	if err != nil {
		return LedgerRecord{}, err
	}
	_, sellTo, err := d.Registry.Rates(to)
	if err != nil {
		return LedgerRecord{}, err
	}

	id, warn := d.Counter.Next()
	if date.IsZero() {
		date = Today()
	}
	if clock == "" {
		clock = time.Now().Format(TimeFormat)
	}
	rec := LedgerRecord{
		Date:          date,
		Time:          clock,
		ID:            id,
		From:          from,
		To:            to,
		AmountFrom:    decimal.NewFromFloat(amountFrom),
		AmountTo:      decimal.NewFromFloat(amountTo),
		RateFromBase:  decimal.NewFromFloat(buyFrom),
		RateToBase:    decimal.NewFromFloat(sellTo),
		RemainderBase: decimal.Zero,
		ProfitDelta:   decimal.Zero,
	}
	if err := d.Ledger.Append(rec); err != nil {
		return rec, errors.Join(warn, err)
	}
	return rec, warn
}
