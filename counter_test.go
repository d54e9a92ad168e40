package fxdesk

import (
	"os"
	"path/filepath"
	"testing"
)

func TestCounter_StartsAtZero(t *testing.T) {
	c := LoadCounter(filepath.Join(t.TempDir(), CounterFileName))
	if c.Last() != 0 {
		t.Errorf("fresh counter Last() = %d, want 0", c.Last())
	}
}

func TestCounter_NextIncrementsAndPersists(t *testing.T) {
	path := filepath.Join(t.TempDir(), CounterFileName)
	c := LoadCounter(path)

	for want := int64(1); want <= 3; want++ {
		id, err := c.Next()
		if err != nil {
			t.Fatal(err)
		}
		if id != want {
			t.Errorf("Next() = %d, want %d", id, want)
		}
	}

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatal(err)
	}
	if string(data) != "3\n" {
		t.Errorf("persisted state = %q, want \"3\\n\"", data)
	}
}

func TestCounter_SurvivesRestart(t *testing.T) {
	path := filepath.Join(t.TempDir(), CounterFileName)

	var issued []int64
	c := LoadCounter(path)
	for i := 0; i < 3; i++ {
		id, err := c.Next()
		if err != nil {
			t.Fatal(err)
		}
		issued = append(issued, id)
	}

	// simulated restart: a new counter loads the persisted state
	c = LoadCounter(path)
	for i := 0; i < 3; i++ {
		id, err := c.Next()
		if err != nil {
			t.Fatal(err)
		}
		issued = append(issued, id)
	}

	for i := 1; i < len(issued); i++ {
		if issued[i] <= issued[i-1] {
			t.Fatalf("ids not strictly increasing across restart: %v", issued)
		}
	}
	if issued[len(issued)-1] != 6 {
		t.Errorf("last id = %d, want 6 (gap-free)", issued[len(issued)-1])
	}
}

func TestCounter_ToleratesBadStateFile(t *testing.T) {
	testCases := []struct {
		name    string
		content string
	}{
		{name: "garbage", content: "not a number\n"},
		{name: "negative", content: "-42\n"},
		{name: "empty", content: ""},
	}
	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			path := filepath.Join(t.TempDir(), CounterFileName)
			if err := os.WriteFile(path, []byte(tc.content), 0644); err != nil {
				t.Fatal(err)
			}
			c := LoadCounter(path)
			if c.Last() != 0 {
				t.Errorf("Last() = %d, want 0 for %q", c.Last(), tc.content)
			}
		})
	}
}

func TestCounter_AcceptsTrailingNewline(t *testing.T) {
	path := filepath.Join(t.TempDir(), CounterFileName)
	if err := os.WriteFile(path, []byte("41\n"), 0644); err != nil {
		t.Fatal(err)
	}
	c := LoadCounter(path)
	if c.Last() != 41 {
		t.Fatalf("Last() = %d, want 41", c.Last())
	}
	id, err := c.Next()
	if err != nil {
		t.Fatal(err)
	}
	if id != 42 {
		t.Errorf("Next() = %d, want 42", id)
	}
}
