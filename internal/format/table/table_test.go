package table

import "testing"

func TestFormatAlignsColumns(t *testing.T) {
	rows := [][]string{
		{"#", "time", "ao5"},
		{"1", "12.34", "-"},
		{"10", "9.87", "11.02"},
	}
	got := Format(rows, []Alignment{AlignRight, AlignRight, AlignRight})
	want := []string{
		" #   time    ao5",
		" 1  12.34      -",
		"10   9.87  11.02",
	}
	if len(got) != len(want) {
		t.Fatalf("expected %d rows, got %d", len(want), len(got))
	}
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("row %d: expected %q, got %q", i, want[i], got[i])
		}
	}
}

func TestFormatIgnoresANSIWidth(t *testing.T) {
	rows := [][]string{
		{"\x1b[1mab\x1b[0m", "x"},
		{"abcd", "y"},
	}
	got := Format(rows, nil)
	if got[0] != "\x1b[1mab\x1b[0m    x" {
		t.Fatalf("unexpected styled row %q", got[0])
	}
	if got[1] != "abcd  y" {
		t.Fatalf("unexpected plain row %q", got[1])
	}
}

func TestFormatEmpty(t *testing.T) {
	if got := Format(nil, nil); got != nil {
		t.Fatalf("expected nil for no rows, got %#v", got)
	}
}
