package document

import (
	"strings"
	"testing"
)

func TestDocument_AppendAndRowAccess(t *testing.T) {
	d := New()
	if d.RowCount() != 0 {
		t.Fatalf("RowCount=%d, want 0", d.RowCount())
	}

	d.Append("one")
	d.Append("two\tlong")
	if d.RowCount() != 2 {
		t.Fatalf("RowCount=%d, want 2", d.RowCount())
	}

	row, ok := d.Row(1)
	if !ok {
		t.Fatalf("Row(1) not found")
	}
	if row.Chars() != "two\tlong" {
		t.Fatalf("Row(1).Chars()=%q, want %q", row.Chars(), "two\tlong")
	}

	if _, ok := d.Row(-1); ok {
		t.Fatalf("Row(-1) must not exist")
	}
	if _, ok := d.Row(2); ok {
		t.Fatalf("Row(2) must not exist")
	}
}

func TestDocument_LineLen_OutOfRangeIsZero(t *testing.T) {
	d := New()
	d.Append("abc")

	if got := d.LineLen(0); got != 3 {
		t.Fatalf("LineLen(0)=%d, want 3", got)
	}
	if got := d.LineLen(1); got != 0 {
		t.Fatalf("LineLen(1)=%d, want 0 for the position past the last row", got)
	}
	if got := d.LineLen(-1); got != 0 {
		t.Fatalf("LineLen(-1)=%d, want 0", got)
	}
}

func TestDocument_Load_SplitsLines(t *testing.T) {
	d := New()
	if err := d.Load(strings.NewReader("one\ntwo\nthree\n")); err != nil {
		t.Fatalf("Load: %v", err)
	}
	if d.RowCount() != 3 {
		t.Fatalf("RowCount=%d, want 3", d.RowCount())
	}
	for i, want := range []string{"one", "two", "three"} {
		row, _ := d.Row(i)
		if row.Chars() != want {
			t.Fatalf("Row(%d).Chars()=%q, want %q", i, row.Chars(), want)
		}
	}
}

func TestDocument_Load_NoTrailingNewline(t *testing.T) {
	d := New()
	if err := d.Load(strings.NewReader("a\nb")); err != nil {
		t.Fatalf("Load: %v", err)
	}
	if d.RowCount() != 2 {
		t.Fatalf("RowCount=%d, want 2", d.RowCount())
	}
}
