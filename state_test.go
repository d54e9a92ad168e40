package fxdesk

import (
	"strings"
	"testing"
)

func TestRegistryState_RoundTrip(t *testing.T) {
	reg := newTestRegistry(t)
	if err := reg.AdjustReserve("USD", -1234.56); err != nil {
		t.Fatal(err)
	}
	if err := reg.SetRates("EUR", 48.00, 48.90); err != nil {
		t.Fatal(err)
	}
	if err := reg.SetCriticalMin("GBP", 750); err != nil {
		t.Fatal(err)
	}

	var b strings.Builder
	if err := EncodeRegistry(&b, reg); err != nil {
		t.Fatal(err)
	}

	got, err := DecodeRegistry(strings.NewReader(b.String()))
	if err != nil {
		t.Fatal(err)
	}

	if got.Base() != reg.Base() {
		t.Errorf("base = %q, want %q", got.Base(), reg.Base())
	}
	for i, code := range reg.Codes() {
		if got.Codes()[i] != code {
			t.Fatalf("order differs: %v != %v", got.Codes(), reg.Codes())
		}
		want, _ := reg.Currency(code)
		cur, err := got.Currency(code)
		if err != nil {
			t.Fatal(err)
		}
		if !almostEqual(cur.Reserve, want.Reserve) ||
			cur.BuyToBase != want.BuyToBase || cur.SellToBase != want.SellToBase ||
			cur.CriticalMin != want.CriticalMin {
			t.Errorf("%s: %+v != %+v", code, cur, want)
		}
		if len(cur.Denominations) != len(want.Denominations) {
			t.Errorf("%s denominations: %v != %v", code, cur.Denominations, want.Denominations)
		}
	}
}

func TestDecodeRegistry_Errors(t *testing.T) {
	// no base declared
	if _, err := DecodeRegistry(strings.NewReader(`{"code":"USD","reserve":1,"buy":1,"sell":1}` + "\n")); err == nil {
		t.Error("state without base accepted")
	}
	// broken json line
	if _, err := DecodeRegistry(strings.NewReader("{not json}\n")); err == nil {
		t.Error("malformed state line accepted")
	}
}
