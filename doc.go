// Package fxdesk provides the back-office engine of a single-station,
// offline currency-exchange desk. It is designed to be local-first and
// auditable: every committed exchange ends up as one immutable line in
// a per-date ledger file, and every report is recomputed from those
// files rather than from a running total.
//
// The core functionalities include:
//   - Currency Registry: the fixed set of supported currencies with
//     their cash reserves, critical-minimum thresholds, buy/sell rates
//     against the base currency, and denomination tables.
//   - Conversion Engine: cross-currency conversion through the base
//     currency, including the desk's profit on the spread, and the
//     partial-settlement policy that pays the remainder in base cash.
//   - Denomination Breakdown: greedy largest-first reduction of a
//     payout amount into physical note and coin counts.
//   - Ledger Store: append-only, per-date CSV ledger files plus the
//     persisted monotonic transaction-id counter.
//   - Summary Aggregator: per-date and per-month profit summaries
//     derived by re-parsing the ledger files.
//
// This package serves as the foundational logic for the `fxd`
// command-line tool; it never performs interactive I/O itself.
package fxdesk
