package fxdesk

import "fmt"

// Quote is the result of a cross-currency conversion through the base
// currency.
//
// The desk buys the from-currency at its buy rate and disburses the
// to-currency at its sell rate. ProfitDelta is the recognized spread
// on the matching unwind leg: the base value taken in, minus what it
// would cost the desk to rebuy the disbursed amount at its own buy
// rate. All amounts are continuous monetary values; a fixed display
// precision belongs to the presentation boundary, not here.
type Quote struct {
	From         string
	To           string
	AmountFrom   float64
	AmountTo     float64
	RateFromBase float64 // buy rate of the from-currency
	RateToBase   float64 // sell rate of the to-currency
	ProfitDelta  float64 // in base-currency units
}

// Convert computes the amount of the to-currency owed for amountFrom
// units of the from-currency. It is pure: identical registry state and
// inputs yield identical outputs, and no registry state is touched.
func (r *Registry) Convert(from, to string, amountFrom float64) (Quote, error) {
	if from == to {
		return Quote{}, fmt.Errorf("%w: %q", ErrNoOpExchange, from)
	}
	buyFrom, _, err := r.Rates(from)
	if err != nil {
		return Quote{}, err
	}
	buyTo, sellTo, err := r.Rates(to)
	if err != nil {
		return Quote{}, err
	}

	baseIn := amountFrom * buyFrom
	amountTo := baseIn / sellTo

	return Quote{
		From:         from,
		To:           to,
		AmountFrom:   amountFrom,
		AmountTo:     amountTo,
		RateFromBase: buyFrom,
		RateToBase:   sellTo,
		ProfitDelta:  baseIn - amountTo*buyTo,
	}, nil
}

// PartialRemainder decides whether paying out payout units of the
// to-currency against a conversion of amountFrom units of the
// from-currency is admissible, and returns the base-currency
// remainder still owed to the client.
//
// The payout is inadmissible when its base value exceeds the total
// base value owed, beyond Epsilon.
func (r *Registry) PartialRemainder(from, to string, amountFrom, payout float64) (float64, error) {
	buyFrom, _, err := r.Rates(from)
	if err != nil {
		return 0, err
	}
	_, sellTo, err := r.Rates(to)
	if err != nil {
		return 0, err
	}

	totalBase := amountFrom * buyFrom
	payoutBase := payout * sellTo
	if payoutBase > totalBase+Epsilon {
		return 0, fmt.Errorf("%w: %.6f %s is worth %.6f %s, owed %.6f %s",
			ErrExceedsExchangeableValue, payout, to, payoutBase, r.base, totalBase, r.base)
	}
	remainder := totalBase - payoutBase
	if remainder < 0 {
		remainder = 0 // rounding noise within Epsilon
	}
	return remainder, nil
}
