package document

import (
	"bufio"
	"fmt"
	"io"
)

// Document is the ordered sequence of rows owned by one editor session.
// Row order is insertion order, which is file line order.
type Document struct {
	rows []Row
}

func New() *Document {
	return &Document{}
}

// Append adds one line to the end of the document, deriving its rendered
// form. It is the only mutation the store exposes.
func (d *Document) Append(line string) {
	d.rows = append(d.rows, newRow(line))
}

// RowCount returns the number of rows in the document.
func (d *Document) RowCount() int { return len(d.rows) }

// Row returns the row at index i and whether such a row exists.
func (d *Document) Row(i int) (Row, bool) {
	if i < 0 || i >= len(d.rows) {
		return Row{}, false
	}
	return d.rows[i], true
}

// LineLen returns the logical length of row i, or 0 when i is out of range.
// The position one past the last row reads as an empty line.
func (d *Document) LineLen(i int) int {
	if i < 0 || i >= len(d.rows) {
		return 0
	}
	return d.rows[i].Len()
}

// Load appends every line read from r, in order. Line terminators are not
// stored. A document can be loaded from several readers; rows accumulate.
func (d *Document) Load(r io.Reader) error {
	sc := bufio.NewScanner(r)
	for sc.Scan() {
		d.Append(sc.Text())
	}
	if err := sc.Err(); err != nil {
		return fmt.Errorf("read lines: %w", err)
	}
	return nil
}
