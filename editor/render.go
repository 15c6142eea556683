package editor

import (
	"bytes"
	"fmt"
	"time"

	"github.com/mattn/go-runewidth"

	"github.com/iw2rmb/vellum"
)

// renderFrame composes one complete terminal frame: cursor hidden, every
// screen row redrawn, status and message bars, cursor placed and shown
// again. It reads session state but never mutates it; scroll must have run
// first so the offsets already contain the cursor. The returned buffer is
// written in a single operation to avoid visible tearing.
func (s *Session) renderFrame(now time.Time) []byte {
	var buf bytes.Buffer

	buf.WriteString("\x1b[?25l")
	buf.WriteString("\x1b[H")

	s.drawRows(&buf)
	s.drawStatusBar(&buf)
	s.drawMessageBar(&buf, now)

	fmt.Fprintf(&buf, "\x1b[%d;%dH", s.cy-s.rowoff+1, s.rx-s.coloff+1)
	buf.WriteString("\x1b[?25h")

	return buf.Bytes()
}

func (s *Session) drawRows(buf *bytes.Buffer) {
	for y := 0; y < s.screenrows; y++ {
		filerow := y + s.rowoff
		if row, ok := s.doc.Row(filerow); ok {
			line := row.Render()
			start := s.coloff
			if start > len(line) {
				start = len(line)
			}
			n := len(line) - start
			if n > s.screencols {
				n = s.screencols
			}
			buf.WriteString(line[start : start+n])
		} else if s.doc.RowCount() == 0 && y == s.screenrows/3 {
			s.drawWelcome(buf)
		} else {
			buf.WriteByte('~')
		}

		buf.WriteString("\x1b[K")
		buf.WriteString("\r\n")
	}
}

func (s *Session) drawWelcome(buf *bytes.Buffer) {
	welcome := fmt.Sprintf("Vellum editor -- version %s", vellum.Version())
	welcome = runewidth.Truncate(welcome, s.screencols, "")

	padding := (s.screencols - runewidth.StringWidth(welcome)) / 2
	if padding > 0 {
		buf.WriteByte('~')
		padding--
	}
	for ; padding > 0; padding-- {
		buf.WriteByte(' ')
	}
	buf.WriteString(welcome)
}

// drawStatusBar writes the reverse-video bar: filename and row count on the
// left, cursor line over total on the right, padded to the full width.
func (s *Session) drawStatusBar(buf *bytes.Buffer) {
	name := s.filename
	if name == "" {
		name = "[No Name]"
	}
	status := fmt.Sprintf("%s - %d lines", runewidth.Truncate(name, 20, ""), s.doc.RowCount())
	status = runewidth.Truncate(status, s.screencols, "")
	rstatus := fmt.Sprintf("%d/%d", s.cy+1, s.doc.RowCount())

	buf.WriteString("\x1b[7m")
	buf.WriteString(status)
	for n := len(status); n < s.screencols; {
		if s.screencols-n == len(rstatus) {
			buf.WriteString(rstatus)
			break
		}
		buf.WriteByte(' ')
		n++
	}
	buf.WriteString("\x1b[m")
	buf.WriteString("\r\n")
}

func (s *Session) drawMessageBar(buf *bytes.Buffer, now time.Time) {
	buf.WriteString("\x1b[K")
	if s.statusmsg == "" || now.Sub(s.statusmsgAt) >= statusMessageTTL {
		return
	}
	buf.WriteString(runewidth.Truncate(s.statusmsg, s.screencols, ""))
}
