package fxdesk

import "errors"

// Epsilon is the tolerance applied to every boundary comparison on
// monetary values (reserve sufficiency, rate ordering, exchangeable
// value). It absorbs floating rounding noise, never real excess.
const Epsilon = 1e-9

// ErrInvalidRate indicates a rate update with a non-positive value or
// a sell rate below the buy rate.
var ErrInvalidRate = errors.New("invalid rate")

// ErrInvalidThreshold indicates a negative critical-minimum threshold.
var ErrInvalidThreshold = errors.New("invalid threshold")

// ErrNoOpExchange indicates a conversion request between a currency
// and itself.
var ErrNoOpExchange = errors.New("from and to currencies are the same")

// ErrInsufficientReserve indicates a mutation that would drive a
// reserve below zero. The operation is aborted and any in-flight
// mutation of the same attempt is rolled back.
var ErrInsufficientReserve = errors.New("insufficient reserve")

// ErrExceedsExchangeableValue indicates a partial payout worth more,
// in base currency, than the value the client is owed.
var ErrExceedsExchangeableValue = errors.New("payout exceeds exchangeable value")

// ErrLedgerIO indicates a failure to open or write a ledger resource.
// When it happens after an in-memory commit it is surfaced as a
// warning, never as an abort: the reserve mutation stands.
var ErrLedgerIO = errors.New("ledger i/o failure")

// ErrUnknownCurrency indicates a code absent from the registry.
var ErrUnknownCurrency = errors.New("unknown currency")
