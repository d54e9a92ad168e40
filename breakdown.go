package fxdesk

// Piece is a count of one physical face value in a breakdown.
type Piece struct {
	Face  int64
	Count int64
}

// Breakdown is the reduction of a payout amount into notes and coins.
//
// The sum of Face*Count over Pieces plus Undividable always equals the
// integer part of Amount. Fractional is the sub-unit portion of the
// amount, surfaced but never broken down further. Undividable is
// whatever integer amount the table could not cover; it is a warning,
// not an error.
type Breakdown struct {
	Code        string
	Amount      float64
	Pieces      []Piece
	Fractional  float64
	Undividable int64
}

// TotalPieces returns the number of physical notes and coins to hand
// over.
func (b Breakdown) TotalPieces() int64 {
	var n int64
	for _, p := range b.Pieces {
		n += p.Count
	}
	return n
}

// Breakdown reduces amount to a greedy largest-first count of the
// code's denomination table. Zero or negative face values in the table
// are skipped. The second result is false when the currency has no
// denomination table, meaning no breakdown is available rather than an
// error.
func (r *Registry) Breakdown(code string, amount float64) (Breakdown, bool, error) {
	c, err := r.currency(code)
	if err != nil {
		return Breakdown{}, false, err
	}
	if len(c.Denominations) == 0 {
		return Breakdown{Code: code, Amount: amount}, false, nil
	}

	remaining := int64(amount)
	if remaining < 0 {
		remaining = 0
	}
	b := Breakdown{
		Code:       code,
		Amount:     amount,
		Fractional: amount - float64(int64(amount)),
	}
	for _, face := range c.Denominations {
		if face <= 0 {
			continue
		}
		count := remaining / face
		if count == 0 {
			continue
		}
		b.Pieces = append(b.Pieces, Piece{Face: face, Count: count})
		remaining -= count * face
	}
	b.Undividable = remaining
	return b, true, nil
}
