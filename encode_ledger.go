package fxdesk

import (
	"strconv"
	"strings"

	"github.com/shopspring/decimal"
)

// Ledger files are plain CSV: newline-terminated, UTF-8,
// comma-separated, no quoting. The header is written once, only when
// the file is empty. Floats are written with 6 decimal digits; reading
// accepts any valid decimal representation.

// ledgerHeader is the fixed header of the current 12-field schema.
const ledgerHeader = "date,time,tx_id,from_currency,to_currency,amount_from,amount_to,rate_from_loc,rate_to_loc,partial,remainder_loc,profit_loc"

// recordSchema tags the outcome of parsing one ledger line. The
// decision is made once per line; malformed lines are always skipped
// by readers, never propagated as errors.
type recordSchema int

const (
	schemaCurrent   recordSchema = iota // 12 fields, with tx_id
	schemaLegacy                        // 11 fields, no tx_id; accepted for aggregation only
	schemaMalformed                     // neither; skipped
)

func encodeRecord(rec LedgerRecord) string {
	partial := "0"
	if rec.Partial {
		partial = "1"
	}
	fields := []string{
		rec.Date.String(),
		rec.Time,
		strconv.FormatInt(rec.ID, 10),
		rec.From,
		rec.To,
		rec.AmountFrom.StringFixed(6),
		rec.AmountTo.StringFixed(6),
		rec.RateFromBase.StringFixed(6),
		rec.RateToBase.StringFixed(6),
		partial,
		rec.RemainderBase.StringFixed(6),
		rec.ProfitDelta.StringFixed(6),
	}
	return strings.Join(fields, ",")
}

// parseRecordLine decodes one ledger line against the current schema
// first, then the legacy one. New writes only ever produce the current
// schema; the legacy schema remains parseable for old files.
func parseRecordLine(line string) (LedgerRecord, recordSchema) {
	line = strings.TrimRight(line, "\r\n")
	if line == "" {
		return LedgerRecord{}, schemaMalformed
	}
	fields := strings.Split(line, ",")

	var rec LedgerRecord
	var schema recordSchema
	switch len(fields) {
	case 12:
		schema = schemaCurrent
	case 11:
		schema = schemaLegacy
		// align with the current schema by inserting an empty id field
		fields = append(fields[:2], append([]string{""}, fields[2:]...)...)
	default:
		return LedgerRecord{}, schemaMalformed
	}

	date, err := ParseDate(fields[0])
	if err != nil {
		return LedgerRecord{}, schemaMalformed
	}
	rec.Date = date
	rec.Time = fields[1]

	if schema == schemaCurrent {
		id, err := strconv.ParseInt(fields[2], 10, 64)
		if err != nil {
			return LedgerRecord{}, schemaMalformed
		}
		rec.ID = id
	}

	rec.From = fields[3]
	rec.To = fields[4]
	if rec.From == "" || rec.To == "" {
		return LedgerRecord{}, schemaMalformed
	}

	decs := make([]decimal.Decimal, 0, 6)
	for _, i := range []int{5, 6, 7, 8, 10, 11} {
		d, err := decimal.NewFromString(fields[i])
		if err != nil {
			return LedgerRecord{}, schemaMalformed
		}
		decs = append(decs, d)
	}
	rec.AmountFrom, rec.AmountTo = decs[0], decs[1]
	rec.RateFromBase, rec.RateToBase = decs[2], decs[3]
	rec.RemainderBase, rec.ProfitDelta = decs[4], decs[5]

	flag, err := strconv.Atoi(fields[9])
	if err != nil {
		return LedgerRecord{}, schemaMalformed
	}
	rec.Partial = flag != 0

	return rec, schema
}
