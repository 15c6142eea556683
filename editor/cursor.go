package editor

// moveCursor applies one arrow-key transition. Left and right wrap across
// line boundaries; vertical motion clamps the column to the landing row.
func (s *Session) moveCursor(k Key) {
	switch k {
	case KeyArrowLeft:
		if s.cx > 0 {
			s.cx--
		} else if s.cy > 0 {
			s.cy--
			s.cx = s.doc.LineLen(s.cy)
		}
	case KeyArrowRight:
		if row, ok := s.doc.Row(s.cy); ok {
			if s.cx < row.Len() {
				s.cx++
			} else {
				s.cy++
				s.cx = 0
			}
		}
	case KeyArrowUp:
		if s.cy > 0 {
			s.cy--
		}
	case KeyArrowDown:
		if s.cy < s.doc.RowCount() {
			s.cy++
		}
	}

	// The landing row may be shorter than the one we left.
	s.cx = clampInt(s.cx, 0, s.doc.LineLen(s.cy))
}

// page snaps the cursor to the viewport edge, then walks a full screen of
// single-row steps so the per-step clamping rules stay in force.
func (s *Session) page(k Key) {
	step := KeyArrowUp
	if k == KeyPageUp {
		s.cy = s.rowoff
	} else {
		s.cy = clampInt(s.rowoff+s.screenrows-1, 0, s.doc.RowCount())
		step = KeyArrowDown
	}
	for i := 0; i < s.screenrows; i++ {
		s.moveCursor(step)
	}
}

func clampInt(v, min, max int) int {
	if max < min {
		return min
	}
	if v < min {
		return min
	}
	if v > max {
		return max
	}
	return v
}
