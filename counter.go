package fxdesk

import (
	"fmt"
	"os"
	"strconv"
	"strings"
)

// CounterFileName is the state file holding the last issued
// transaction id: a single base-10 integer, optionally followed by a
// newline.
const CounterFileName = "last_tx_id.txt"

// Counter issues process-wide, monotonically increasing, gap-free
// transaction ids, persisted so they survive restarts. Ids are never
// reused and never decremented.
type Counter struct {
	path string
	last int64
}

// LoadCounter reads the persisted counter from path. A missing or
// unreadable state file means no prior transactions: the counter
// starts at zero.
func LoadCounter(path string) *Counter {
	c := &Counter{path: path}
	data, err := os.ReadFile(path)
	if err != nil {
		return c
	}
	v, err := strconv.ParseInt(strings.TrimSpace(string(data)), 10, 64)
	if err != nil || v < 0 {
		return c
	}
	c.last = v
	return c
}

// Last returns the most recently issued id, 0 when none was ever
// issued.
func (c *Counter) Last() int64 { return c.last }

// Next increments the counter, persists it, and returns the new id.
// The id is valid even when persisting fails; the returned error is a
// post-commit warning wrapping ErrLedgerIO.
func (c *Counter) Next() (int64, error) {
	c.last++
	if err := os.WriteFile(c.path, []byte(strconv.FormatInt(c.last, 10)+"\n"), 0644); err != nil {
		return c.last, fmt.Errorf("%w: persisting counter %q: %v", ErrLedgerIO, c.path, err)
	}
	return c.last, nil
}
