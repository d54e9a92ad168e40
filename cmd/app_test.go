package cmd

import (
	"testing"

	"github.com/kuzeyardabulut/fxdesk"
)

func TestParseDateFlag(t *testing.T) {
	if d, err := parseDateFlag(""); err != nil || d != fxdesk.Today() {
		t.Errorf("empty flag = (%v, %v), want today", d, err)
	}
	d, err := parseDateFlag("2025-03-14")
	if err != nil {
		t.Fatal(err)
	}
	if d.String() != "2025-03-14" {
		t.Errorf("parsed date = %v", d)
	}
	if _, err := parseDateFlag("bogus"); err == nil {
		t.Error("bogus date accepted")
	}
}

func TestCompletionCoversAllCommands(t *testing.T) {
	comp := Completion()
	for _, c := range Commands {
		if _, ok := comp.Sub[c.Name()]; !ok {
			t.Errorf("command %q missing from completion", c.Name())
		}
	}
}
