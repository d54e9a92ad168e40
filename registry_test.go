package fxdesk

import (
	"errors"
	"testing"
)

func TestRegistry_SetRates(t *testing.T) {
	testCases := []struct {
		name    string
		buy     float64
		sell    float64
		wantErr error
	}{
		{name: "valid spread", buy: 41.36, sell: 41.45},
		{name: "equal rates", buy: 1, sell: 1},
		{name: "sell below buy", buy: 42, sell: 41, wantErr: ErrInvalidRate},
		{name: "zero buy", buy: 0, sell: 41, wantErr: ErrInvalidRate},
		{name: "negative sell", buy: 41, sell: -1, wantErr: ErrInvalidRate},
	}
	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			reg := newTestRegistry(t)
			err := reg.SetRates("USD", tc.buy, tc.sell)
			if !errors.Is(err, tc.wantErr) {
				t.Fatalf("SetRates(%v, %v) error = %v, want %v", tc.buy, tc.sell, err, tc.wantErr)
			}
			if tc.wantErr != nil {
				// a rejected update must leave the previous rates in place
				buy, sell, _ := reg.Rates("USD")
				if buy != 41.36 || sell != 41.45 {
					t.Errorf("rates changed after rejected update: buy=%v sell=%v", buy, sell)
				}
				return
			}
			buy, sell, err := reg.Rates("USD")
			if err != nil {
				t.Fatal(err)
			}
			if buy != tc.buy || sell != tc.sell {
				t.Errorf("Rates() = (%v, %v), want (%v, %v)", buy, sell, tc.buy, tc.sell)
			}
		})
	}
}

func TestRegistry_AdjustReserve(t *testing.T) {
	reg := newTestRegistry(t)

	if err := reg.AdjustReserve("GBP", -3000); err != nil {
		t.Fatalf("draining the full reserve should be allowed: %v", err)
	}
	if got, _ := reg.Reserve("GBP"); got != 0 {
		t.Errorf("Reserve(GBP) = %v, want 0", got)
	}

	err := reg.AdjustReserve("GBP", -0.01)
	if !errors.Is(err, ErrInsufficientReserve) {
		t.Fatalf("overdraw error = %v, want ErrInsufficientReserve", err)
	}
	if got, _ := reg.Reserve("GBP"); got != 0 {
		t.Errorf("failed adjust mutated the reserve: %v", got)
	}

	if err := reg.AdjustReserve("GBP", 125.50); err != nil {
		t.Fatal(err)
	}
	if got, _ := reg.Reserve("GBP"); !almostEqual(got, 125.50) {
		t.Errorf("Reserve(GBP) = %v, want 125.50", got)
	}

	if err := reg.AdjustReserve("XXX", 1); !errors.Is(err, ErrUnknownCurrency) {
		t.Errorf("unknown code error = %v, want ErrUnknownCurrency", err)
	}
}

func TestRegistry_ReserveNeverNegative(t *testing.T) {
	reg := newTestRegistry(t)
	deltas := []float64{-5000, 300, -12000, -100000, 50, -250.25, 1e6, -2e6}
	for _, delta := range deltas {
		reg.AdjustReserve("EUR", delta) // failures are part of the sequence
		got, err := reg.Reserve("EUR")
		if err != nil {
			t.Fatal(err)
		}
		if got < 0 {
			t.Fatalf("reserve went negative (%v) after delta %v", got, delta)
		}
	}
}

func TestRegistry_SetCriticalMin(t *testing.T) {
	reg := newTestRegistry(t)

	if err := reg.SetCriticalMin("USD", 0); err != nil {
		t.Errorf("zero threshold rejected: %v", err)
	}
	if err := reg.SetCriticalMin("USD", -1); !errors.Is(err, ErrInvalidThreshold) {
		t.Errorf("negative threshold error = %v, want ErrInvalidThreshold", err)
	}
	if got, _ := reg.CriticalMin("USD"); got != 0 {
		t.Errorf("failed update mutated the threshold: %v", got)
	}
}

func TestRegistry_CriticalAlerts(t *testing.T) {
	reg := newTestRegistry(t)
	if alerts := reg.CriticalAlerts(); len(alerts) != 0 {
		t.Fatalf("fresh desk has alerts: %v", alerts)
	}

	// drop USD and JPY below their thresholds; alerts follow registry order
	if err := reg.AdjustReserve("JPY", -900000); err != nil {
		t.Fatal(err)
	}
	if err := reg.AdjustReserve("USD", -9000); err != nil {
		t.Fatal(err)
	}

	alerts := reg.CriticalAlerts()
	if len(alerts) != 2 {
		t.Fatalf("CriticalAlerts() = %v, want 2 alerts", alerts)
	}
	if alerts[0].Code != "USD" || alerts[1].Code != "JPY" {
		t.Errorf("alerts out of registry order: %v", alerts)
	}
	if alerts[0].Reserve != 1000 || alerts[0].CriticalMin != 2000 {
		t.Errorf("USD alert = %+v, want reserve 1000 below 2000", alerts[0])
	}
}

func TestRegistry_AddRejectsDuplicates(t *testing.T) {
	reg := newTestRegistry(t)
	if err := reg.Add(Currency{Code: "USD", BuyToBase: 1, SellToBase: 1}); err == nil {
		t.Error("duplicate code accepted")
	}
}
