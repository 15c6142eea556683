package editor

// scroll recomputes the render column and nudges the viewport the minimum
// distance that keeps the cursor inside it; offsets are otherwise left
// alone. It runs once per frame, right before the renderer reads them.
//
// Postcondition: rowoff <= cy < rowoff+screenrows and
// coloff <= rx < coloff+screencols.
func (s *Session) scroll() {
	s.rx = 0
	if row, ok := s.doc.Row(s.cy); ok {
		s.rx = row.CxToRx(s.cx)
	}

	if s.cy < s.rowoff {
		s.rowoff = s.cy
	}
	if s.cy >= s.rowoff+s.screenrows {
		s.rowoff = s.cy - s.screenrows + 1
	}
	if s.rx < s.coloff {
		s.coloff = s.rx
	}
	if s.rx >= s.coloff+s.screencols {
		s.coloff = s.rx - s.screencols + 1
	}
}
