package document

import "strings"

// TabStop is the fixed interval tab characters expand to in rendered rows.
const TabStop = 8

// Row is one line of the document. The logical content is the source of
// truth; the rendered form is re-derived from it and never edited directly.
type Row struct {
	chars  string
	render string
}

func newRow(chars string) Row {
	return Row{chars: chars, render: expandTabs(chars)}
}

// Chars returns the logical content of the row.
func (r Row) Chars() string { return r.chars }

// Render returns the tab-expanded display content of the row.
func (r Row) Render() string { return r.render }

// Len returns the logical length of the row.
func (r Row) Len() int { return len(r.chars) }

// CxToRx maps a logical column into the row's render columns.
//
// Every character advances the render column by one, except a tab, which
// advances it to the next multiple of TabStop (always at least one column).
// The mapping is monotonic non-decreasing in cx and is the single home of
// the tab-width math shared by scrolling and cursor placement. A cx past
// the end of the row is clamped, not rejected.
func (r Row) CxToRx(cx int) int {
	rx := 0
	for i := 0; i < cx && i < len(r.chars); i++ {
		if r.chars[i] == '\t' {
			rx += (TabStop - 1) - rx%TabStop
		}
		rx++
	}
	return rx
}

func expandTabs(chars string) string {
	if !strings.ContainsRune(chars, '\t') {
		return chars
	}

	var b strings.Builder
	for i := 0; i < len(chars); i++ {
		if chars[i] != '\t' {
			b.WriteByte(chars[i])
			continue
		}
		b.WriteByte(' ')
		for b.Len()%TabStop != 0 {
			b.WriteByte(' ')
		}
	}
	return b.String()
}
