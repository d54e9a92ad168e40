package fxdesk

import "testing"

// newTestRegistry builds the stock desk used across tests: LOC base
// plus four foreign currencies with the default rates and reserves.
func newTestRegistry(t *testing.T) *Registry {
	t.Helper()
	reg, err := DefaultConfig().Registry()
	if err != nil {
		t.Fatalf("building test registry: %v", err)
	}
	return reg
}

// almostEqual compares monetary floats within the engine's tolerance.
func almostEqual(a, b float64) bool {
	d := a - b
	if d < 0 {
		d = -d
	}
	return d < 1e-6
}
