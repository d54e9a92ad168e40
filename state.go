package fxdesk

import (
	"bufio"
	"encoding/json"
	"fmt"
	"io"
)

// The desk state is persisted as JSONL, one currency per line, in a
// human-readable and diff-friendly form. It snapshots what the
// registry holds between invocations: reserves, rates and critical
// minimums. It is not a ledger; the ledger files alone are
// authoritative for reporting.

// StateFileName is the registry snapshot file within the data
// directory.
const StateFileName = "desk.jsonl"

// jcurrency is the persisted form of one currency.
type jcurrency struct {
	Code          string  `json:"code"`
	Base          bool    `json:"base,omitempty"`
	Reserve       float64 `json:"reserve"`
	CriticalMin   float64 `json:"criticalMin"`
	Buy           float64 `json:"buy"`
	Sell          float64 `json:"sell"`
	Denominations []int64 `json:"denominations,omitempty"`
}

// EncodeRegistry writes the registry snapshot, one currency per line
// in registry order.
func EncodeRegistry(w io.Writer, r *Registry) error {
	enc := json.NewEncoder(w)
	for _, code := range r.Codes() {
		c, err := r.Currency(code)
		if err != nil {
			return err
		}
		jc := jcurrency{
			Code:          c.Code,
			Base:          c.Code == r.Base(),
			Reserve:       c.Reserve,
			CriticalMin:   c.CriticalMin,
			Buy:           c.BuyToBase,
			Sell:          c.SellToBase,
			Denominations: c.Denominations,
		}
		if err := enc.Encode(jc); err != nil {
			return fmt.Errorf("encoding state for %q: %w", code, err)
		}
	}
	return nil
}

// DecodeRegistry reads a registry snapshot produced by EncodeRegistry.
func DecodeRegistry(r io.Reader) (*Registry, error) {
	var currencies []jcurrency
	base := ""
	scanner := bufio.NewScanner(r)
	for scanner.Scan() {
		line := scanner.Bytes()
		if len(line) == 0 {
			continue
		}
		var jc jcurrency
		if err := json.Unmarshal(line, &jc); err != nil {
			return nil, fmt.Errorf("format error in state line %q: %w", string(line), err)
		}
		if jc.Base {
			base = jc.Code
		}
		currencies = append(currencies, jc)
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("reading state: %w", err)
	}
	if base == "" {
		return nil, fmt.Errorf("state declares no base currency")
	}

	reg := NewRegistry(base)
	for _, jc := range currencies {
		cur := Currency{
			Code:          jc.Code,
			Reserve:       jc.Reserve,
			CriticalMin:   jc.CriticalMin,
			BuyToBase:     jc.Buy,
			SellToBase:    jc.Sell,
			Denominations: jc.Denominations,
		}
		if err := reg.Add(cur); err != nil {
			return nil, err
		}
	}
	return reg, nil
}
