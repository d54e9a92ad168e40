package fxdesk

import (
	"bufio"
	"fmt"
	"os"
	"path/filepath"

	"github.com/shopspring/decimal"
)

// LedgerRecord is one committed transaction, immutable once written.
//
// A record is constructed only after the transaction has been fully
// validated and the reserve mutation committed; it is then appended to
// the date's ledger file and never modified or deleted. Monetary
// fields are decimals so that encoding, parsing and aggregation stay
// exact.
type LedgerRecord struct {
	Date          Date
	Time          string
	ID            int64
	From          string
	To            string
	AmountFrom    decimal.Decimal
	AmountTo      decimal.Decimal
	RateFromBase  decimal.Decimal
	RateToBase    decimal.Decimal
	Partial       bool
	RemainderBase decimal.Decimal // base currency still owed to the client when partial
	ProfitDelta   decimal.Decimal // desk profit of this transaction, in base units
}

// LedgerStore appends immutable transaction records to per-date CSV
// files in a data directory. File handles are opened, used and
// released within a single operation; none is held across operations.
type LedgerStore struct {
	dir string
}

// NewLedgerStore creates a store writing into dir.
func NewLedgerStore(dir string) *LedgerStore {
	return &LedgerStore{dir: dir}
}

// Dir returns the data directory of the store.
func (s *LedgerStore) Dir() string { return s.dir }

// FileName returns the ledger file name for a date, without directory.
func FileName(d Date) string { return "sales_" + d.String() + ".csv" }

func (s *LedgerStore) path(d Date) string { return filepath.Join(s.dir, FileName(d)) }

// Append writes the record as one line of the date's ledger file,
// preceded by the fixed header when the file is currently empty.
//
// A failure wraps ErrLedgerIO. The caller must treat it as non-fatal
// for in-memory state already committed, but must surface it: this is
// a known consistency gap, not something to swallow.
func (s *LedgerStore) Append(rec LedgerRecord) error {
	path := s.path(rec.Date)
	f, err := os.OpenFile(path, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0644)
	if err != nil {
		return fmt.Errorf("%w: opening %q: %v", ErrLedgerIO, path, err)
	}
	defer f.Close()

	st, err := f.Stat()
	if err != nil {
		return fmt.Errorf("%w: stat %q: %v", ErrLedgerIO, path, err)
	}
	line := encodeRecord(rec)
	if st.Size() == 0 {
		line = ledgerHeader + "\n" + line
	}
	if _, err := f.WriteString(line + "\n"); err != nil {
		return fmt.Errorf("%w: writing %q: %v", ErrLedgerIO, path, err)
	}
	return nil
}

// Records parses the date's ledger file and returns its well-formed
// records, current and legacy schema alike. Malformed lines are
// skipped. A missing file yields an empty list, not an error.
func (s *LedgerStore) Records(d Date) ([]LedgerRecord, error) {
	f, err := os.Open(s.path(d))
	if err != nil {
		if os.IsNotExist(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("%w: opening %q: %v", ErrLedgerIO, s.path(d), err)
	}
	defer f.Close()

	var recs []LedgerRecord
	scanner := bufio.NewScanner(f)
	first := true
	for scanner.Scan() {
		if first {
			first = false // header
			continue
		}
		rec, schema := parseRecordLine(scanner.Text())
		if schema == schemaMalformed {
			continue
		}
		recs = append(recs, rec)
	}
	if err := scanner.Err(); err != nil {
		return recs, fmt.Errorf("%w: reading %q: %v", ErrLedgerIO, s.path(d), err)
	}
	return recs, nil
}

// FindByID searches the date's ledger for a transaction id. Legacy
// records carry no id and can never match.
func (s *LedgerStore) FindByID(d Date, id int64) (LedgerRecord, bool, error) {
	recs, err := s.Records(d)
	if err != nil {
		return LedgerRecord{}, false, err
	}
	for _, rec := range recs {
		if rec.ID == id {
			return rec, true, nil
		}
	}
	return LedgerRecord{}, false, nil
}

// AppendReceipt appends a human-readable receipt for the record to the
// date's receipt file.
func (s *LedgerStore) AppendReceipt(rec LedgerRecord) error {
	path := filepath.Join(s.dir, "receipts_"+rec.Date.String()+".txt")
	f, err := os.OpenFile(path, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0644)
	if err != nil {
		return fmt.Errorf("%w: opening %q: %v", ErrLedgerIO, path, err)
	}
	defer f.Close()

	if _, err := f.WriteString(formatReceipt(rec)); err != nil {
		return fmt.Errorf("%w: writing %q: %v", ErrLedgerIO, path, err)
	}
	return nil
}

func formatReceipt(rec LedgerRecord) string {
	rate := decimal.Zero
	if !rec.AmountFrom.IsZero() {
		rate = rec.AmountTo.Div(rec.AmountFrom)
	}
	s := "\n========= CURRENCY EXCHANGE RECEIPT =========\n"
	s += fmt.Sprintf("Transaction ID: %d\n", rec.ID)
	s += fmt.Sprintf("Date: %s %s\n", rec.Date, rec.Time)
	s += fmt.Sprintf("From: %s %s\n", rec.AmountFrom.StringFixed(2), rec.From)
	s += fmt.Sprintf("To: %s %s\n", rec.AmountTo.StringFixed(2), rec.To)
	s += fmt.Sprintf("Rate: 1 %s = %s %s\n", rec.From, rate.StringFixed(4), rec.To)
	if rec.Partial {
		s += fmt.Sprintf("Remainder paid in base currency: %s\n", rec.RemainderBase.StringFixed(2))
	}
	s += "==========================================\n\n"
	return s
}

// ReceiptFileName returns the receipt file name for a date, without
// directory.
func ReceiptFileName(d Date) string { return "receipts_" + d.String() + ".txt" }
