package fxdesk

import (
	"fmt"
	"slices"
)

// Currency describes one supported currency of the desk.
//
// Rates are expressed against the base currency: BuyToBase is what the
// desk credits in base units per 1 unit received from a client,
// SellToBase is what a client pays in base units per 1 unit disbursed.
type Currency struct {
	Code          string
	Reserve       float64
	CriticalMin   float64
	BuyToBase     float64
	SellToBase    float64
	Denominations []int64 // descending face values; empty means no breakdown table
}

// Registry holds the fixed set of supported currencies and their
// state. It is constructed once at process start and passed into every
// engine operation; there are no ambient globals.
//
// All reserve mutations route through AdjustReserve, so the
// non-negativity invariant is enforced in a single place.
type Registry struct {
	base       string
	order      []string
	currencies map[string]*Currency
}

// NewRegistry creates an empty registry whose rates are expressed
// against the given base currency code.
func NewRegistry(base string) *Registry {
	return &Registry{
		base:       base,
		currencies: make(map[string]*Currency),
	}
}

// Base returns the base currency code.
func (r *Registry) Base() string { return r.base }

// Codes returns the currency codes in registry order.
func (r *Registry) Codes() []string { return slices.Clone(r.order) }

// Has reports whether the code is a supported currency.
func (r *Registry) Has(code string) bool {
	_, ok := r.currencies[code]
	return ok
}

// Add declares a supported currency. Codes are immutable and unique
// after initialization.
func (r *Registry) Add(c Currency) error {
	if c.Code == "" {
		return fmt.Errorf("%w: empty code", ErrUnknownCurrency)
	}
	if r.Has(c.Code) {
		return fmt.Errorf("currency %q is already defined", c.Code)
	}
	if err := checkRates(c.BuyToBase, c.SellToBase); err != nil {
		return fmt.Errorf("currency %q: %w", c.Code, err)
	}
	if c.Reserve < 0 {
		return fmt.Errorf("%w: %s starting reserve %.2f is negative", ErrInsufficientReserve, c.Code, c.Reserve)
	}
	if c.CriticalMin < 0 {
		return fmt.Errorf("%w: %s critical minimum %.2f is negative", ErrInvalidThreshold, c.Code, c.CriticalMin)
	}
	cur := c
	cur.Denominations = slices.Clone(c.Denominations)
	r.currencies[c.Code] = &cur
	r.order = append(r.order, c.Code)
	return nil
}

// Currency returns a copy of the currency declared with this code.
func (r *Registry) Currency(code string) (Currency, error) {
	c, err := r.currency(code)
	if err != nil {
		return Currency{}, err
	}
	cur := *c
	cur.Denominations = slices.Clone(c.Denominations)
	return cur, nil
}

func (r *Registry) currency(code string) (*Currency, error) {
	c, ok := r.currencies[code]
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrUnknownCurrency, code)
	}
	return c, nil
}

// Rates returns the buy and sell rates of the code against the base
// currency.
func (r *Registry) Rates(code string) (buy, sell float64, err error) {
	c, err := r.currency(code)
	if err != nil {
		return 0, 0, err
	}
	return c.BuyToBase, c.SellToBase, nil
}

func checkRates(buy, sell float64) error {
	if buy <= 0 || sell <= 0 {
		return fmt.Errorf("%w: rates must be positive (buy=%.6f sell=%.6f)", ErrInvalidRate, buy, sell)
	}
	if sell < buy-Epsilon {
		return fmt.Errorf("%w: sell rate %.6f is below buy rate %.6f", ErrInvalidRate, sell, buy)
	}
	return nil
}

// SetRates updates the buy and sell rates of the code. Both values
// must be positive and sell must not be below buy; the relation is
// enforced here, at update time, and not re-checked later.
func (r *Registry) SetRates(code string, buy, sell float64) error {
	c, err := r.currency(code)
	if err != nil {
		return err
	}
	if err := checkRates(buy, sell); err != nil {
		return err
	}
	c.BuyToBase, c.SellToBase = buy, sell
	return nil
}

// Reserve returns the cash reserve held for the code.
func (r *Registry) Reserve(code string) (float64, error) {
	c, err := r.currency(code)
	if err != nil {
		return 0, err
	}
	return c.Reserve, nil
}

// AdjustReserve commits reserve += delta. It is the only mutator of a
// currency's reserve: it fails with ErrInsufficientReserve when the
// result would be negative, leaving the reserve untouched.
func (r *Registry) AdjustReserve(code string, delta float64) error {
	c, err := r.currency(code)
	if err != nil {
		return err
	}
	next := c.Reserve + delta
	if next < -Epsilon {
		return fmt.Errorf("%w: %s reserve %.2f cannot absorb %.2f", ErrInsufficientReserve, code, c.Reserve, delta)
	}
	if next < 0 {
		next = 0 // rounding noise within Epsilon
	}
	c.Reserve = next
	return nil
}

// CriticalMin returns the advisory low-reserve threshold of the code.
func (r *Registry) CriticalMin(code string) (float64, error) {
	c, err := r.currency(code)
	if err != nil {
		return 0, err
	}
	return c.CriticalMin, nil
}

// SetCriticalMin updates the advisory low-reserve threshold. The
// threshold never blocks an operation; it only drives alerts.
func (r *Registry) SetCriticalMin(code string, value float64) error {
	c, err := r.currency(code)
	if err != nil {
		return err
	}
	if value < 0 {
		return fmt.Errorf("%w: critical minimum %.2f is negative", ErrInvalidThreshold, value)
	}
	c.CriticalMin = value
	return nil
}

// Alert reports a currency whose reserve is below its critical
// minimum.
type Alert struct {
	Code        string
	Reserve     float64
	CriticalMin float64
}

// CriticalAlerts returns, in registry order, every currency currently
// below its critical minimum. It is an advisory query with no side
// effects.
func (r *Registry) CriticalAlerts() []Alert {
	var alerts []Alert
	for _, code := range r.order {
		c := r.currencies[code]
		if c.Reserve < c.CriticalMin {
			alerts = append(alerts, Alert{Code: code, Reserve: c.Reserve, CriticalMin: c.CriticalMin})
		}
	}
	return alerts
}

// Denominations returns the face-value table of the code, or nil when
// the currency has none.
func (r *Registry) Denominations(code string) []int64 {
	c, ok := r.currencies[code]
	if !ok {
		return nil
	}
	return slices.Clone(c.Denominations)
}
