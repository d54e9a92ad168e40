package fxdesk

import (
	"errors"
	"path/filepath"
	"testing"
)

func newTestDesk(t *testing.T) (*Desk, string) {
	t.Helper()
	dir := t.TempDir()
	desk := NewDesk(
		newTestRegistry(t),
		NewLedgerStore(dir),
		LoadCounter(filepath.Join(dir, CounterFileName)),
	)
	return desk, dir
}

func reserves(t *testing.T, reg *Registry) map[string]float64 {
	t.Helper()
	m := make(map[string]float64)
	for _, code := range reg.Codes() {
		v, err := reg.Reserve(code)
		if err != nil {
			t.Fatal(err)
		}
		m[code] = v
	}
	return m
}

func TestDesk_FullExchange(t *testing.T) {
	desk, _ := newTestDesk(t)
	day := MustDate("2025-03-14")

	res, err := desk.Exchange(ExchangeRequest{
		From: "USD", To: "EUR", AmountFrom: 100,
		Date: day, Time: "10:30:00",
	})
	if err != nil {
		t.Fatal(err)
	}
	if res.LedgerWarn != nil {
		t.Fatalf("unexpected ledger warning: %v", res.LedgerWarn)
	}

	wantTo := 4136.00 / 48.60
	if !almostEqual(res.Paid, wantTo) {
		t.Errorf("paid = %v, want %v", res.Paid, wantTo)
	}

	r := reserves(t, desk.Registry)
	if !almostEqual(r["USD"], 10100) {
		t.Errorf("USD reserve = %v, want 10100", r["USD"])
	}
	if !almostEqual(r["EUR"], 8000-wantTo) {
		t.Errorf("EUR reserve = %v, want %v", r["EUR"], 8000-wantTo)
	}
	if !almostEqual(r["LOC"], 50000) {
		t.Errorf("LOC reserve = %v, want untouched 50000", r["LOC"])
	}

	if res.Record.ID != 1 {
		t.Errorf("first transaction id = %v, want 1", res.Record.ID)
	}

	// the committed record must be recoverable from the ledger file
	recs, err := desk.Ledger.Records(day)
	if err != nil {
		t.Fatal(err)
	}
	if len(recs) != 1 {
		t.Fatalf("ledger holds %d records, want 1", len(recs))
	}
	if recs[0].ID != 1 || recs[0].From != "USD" || recs[0].To != "EUR" || recs[0].Partial {
		t.Errorf("re-parsed record = %+v", recs[0])
	}
}

func TestDesk_PartialExchange(t *testing.T) {
	desk, _ := newTestDesk(t)
	day := MustDate("2025-03-14")

	res, err := desk.Exchange(ExchangeRequest{
		From: "USD", To: "EUR", AmountFrom: 100,
		Partial: true, Payout: 40,
		Date: day, Time: "10:31:00",
	})
	if err != nil {
		t.Fatal(err)
	}
	if !almostEqual(res.RemainderBase, 2192.00) {
		t.Errorf("remainder = %v, want 2192.00", res.RemainderBase)
	}

	r := reserves(t, desk.Registry)
	if !almostEqual(r["USD"], 10100) || !almostEqual(r["EUR"], 7960) || !almostEqual(r["LOC"], 47808) {
		t.Errorf("reserves after partial = %v", r)
	}
	if !res.Record.Partial {
		t.Error("record not flagged partial")
	}
	if got := res.Record.RemainderBase.InexactFloat64(); !almostEqual(got, 2192.00) {
		t.Errorf("recorded remainder = %v, want 2192.00", got)
	}
}

func TestDesk_PartialPayoutTooLarge(t *testing.T) {
	desk, _ := newTestDesk(t)
	before := reserves(t, desk.Registry)

	_, err := desk.Exchange(ExchangeRequest{
		From: "USD", To: "EUR", AmountFrom: 100,
		Partial: true, Payout: 90,
	})
	if !errors.Is(err, ErrExceedsExchangeableValue) {
		t.Fatalf("error = %v, want ErrExceedsExchangeableValue", err)
	}
	if got := reserves(t, desk.Registry); !sameReserves(got, before) {
		t.Errorf("reserves changed on rejected payout: %v != %v", got, before)
	}
	if desk.Counter.Last() != 0 {
		t.Errorf("rejected exchange consumed a transaction id: %d", desk.Counter.Last())
	}
}

func TestDesk_InsufficientTargetReserve(t *testing.T) {
	desk, _ := newTestDesk(t)
	// empty the EUR drawer almost entirely
	if err := desk.Registry.AdjustReserve("EUR", -7990); err != nil {
		t.Fatal(err)
	}
	before := reserves(t, desk.Registry)

	_, err := desk.Exchange(ExchangeRequest{From: "USD", To: "EUR", AmountFrom: 100})
	if !errors.Is(err, ErrInsufficientReserve) {
		t.Fatalf("error = %v, want ErrInsufficientReserve", err)
	}
	if got := reserves(t, desk.Registry); !sameReserves(got, before) {
		t.Errorf("rollback failed: %v != %v", got, before)
	}
}

func TestDesk_InsufficientBaseForRemainder(t *testing.T) {
	desk, _ := newTestDesk(t)
	if err := desk.Registry.AdjustReserve("LOC", -49000); err != nil {
		t.Fatal(err)
	}
	before := reserves(t, desk.Registry)

	// remainder of 2192 LOC exceeds the 1000 LOC left
	_, err := desk.Exchange(ExchangeRequest{
		From: "USD", To: "EUR", AmountFrom: 100,
		Partial: true, Payout: 40,
	})
	if !errors.Is(err, ErrInsufficientReserve) {
		t.Fatalf("error = %v, want ErrInsufficientReserve", err)
	}
	if got := reserves(t, desk.Registry); !sameReserves(got, before) {
		t.Errorf("rollback left a partially-committed state: %v != %v", got, before)
	}
}

func TestDesk_LedgerFailureIsWarningNotAbort(t *testing.T) {
	dir := t.TempDir()
	desk := NewDesk(
		newTestRegistry(t),
		NewLedgerStore(filepath.Join(dir, "missing", "nested")),
		LoadCounter(filepath.Join(dir, CounterFileName)),
	)

	res, err := desk.Exchange(ExchangeRequest{From: "USD", To: "EUR", AmountFrom: 100})
	if err != nil {
		t.Fatalf("append failure must not abort the exchange: %v", err)
	}
	if !errors.Is(res.LedgerWarn, ErrLedgerIO) {
		t.Fatalf("LedgerWarn = %v, want ErrLedgerIO", res.LedgerWarn)
	}
	// the in-memory commit stands
	if got, _ := desk.Registry.Reserve("USD"); !almostEqual(got, 10100) {
		t.Errorf("USD reserve = %v, want committed 10100", got)
	}
}

func TestDesk_ManualRecord(t *testing.T) {
	desk, _ := newTestDesk(t)
	day := MustDate("2025-03-15")
	before := reserves(t, desk.Registry)

	rec, err := desk.ManualRecord(day, "08:00:00", "GBP", "LOC", 10, 559.1)
	if err != nil {
		t.Fatal(err)
	}
	if rec.ID != 1 {
		t.Errorf("manual record id = %v, want 1", rec.ID)
	}
	if !rec.ProfitDelta.IsZero() {
		t.Errorf("manual record profit = %v, want 0", rec.ProfitDelta)
	}
	if got := reserves(t, desk.Registry); !sameReserves(got, before) {
		t.Errorf("manual record touched reserves: %v != %v", got, before)
	}

	found, ok, err := desk.Ledger.FindByID(day, 1)
	if err != nil || !ok {
		t.Fatalf("FindByID = (%v, %v)", ok, err)
	}
	if found.From != "GBP" || found.To != "LOC" {
		t.Errorf("found record = %+v", found)
	}
}

func sameReserves(a, b map[string]float64) bool {
	if len(a) != len(b) {
		return false
	}
	for k, v := range a {
		if !almostEqual(v, b[k]) {
			return false
		}
	}
	return true
}
