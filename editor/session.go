package editor

import (
	"fmt"
	"io"
	"time"

	"github.com/iw2rmb/vellum/document"
)

// statusMessageTTL is how long a status message stays on screen.
const statusMessageTTL = 5 * time.Second

// barRows is the screen space reserved below the document viewport.
const barRows = 2

// Session owns the whole editor state for one run: the document, the
// cursor, the scroll offsets, and the status line. Nothing else aliases
// that state; every transition goes through the methods below.
type Session struct {
	in  io.Reader
	out io.Writer

	doc      *document.Document
	filename string

	// Cursor position. cx/cy index the logical document (cy may sit one
	// past the last row, cx one past the end of a line); rx is the derived
	// render column, recomputed by scroll before every frame.
	cx, cy int
	rx     int

	// Viewport: top-left visible row/render-column and frame dimensions.
	rowoff, coloff         int
	screenrows, screencols int

	statusmsg   string
	statusmsgAt time.Time
}

// NewSession builds a session over doc. The document must already be
// loaded; the session never mutates it.
func NewSession(cfg Config, doc *document.Document) *Session {
	rows := cfg.Rows - barRows
	if rows < 0 {
		rows = 0
	}
	cols := cfg.Cols
	if cols < 0 {
		cols = 0
	}
	return &Session{
		in:         cfg.Input,
		out:        cfg.Output,
		doc:        doc,
		filename:   cfg.Filename,
		screenrows: rows,
		screencols: cols,
	}
}

// SetStatusMessage replaces the status message and restarts its display
// window.
func (s *Session) SetStatusMessage(format string, args ...any) {
	s.statusmsg = fmt.Sprintf(format, args...)
	s.statusmsgAt = time.Now()
}

// Run drives the editor loop: render a frame, decode one key, apply it.
// It returns on the quit key or on the first I/O error, never by blocking
// forever, so the caller's terminal cleanup always gets to run. The screen
// is cleared on the way out.
func (s *Session) Run() error {
	for {
		if err := s.refresh(); err != nil {
			return err
		}
		k, err := ReadKey(s.in)
		if err != nil {
			return fmt.Errorf("read key: %w", err)
		}
		if k == Ctrl('q') {
			break
		}
		s.apply(k)
	}

	if _, err := io.WriteString(s.out, "\x1b[2J\x1b[H"); err != nil {
		return fmt.Errorf("clear screen: %w", err)
	}
	return nil
}

// refresh recomputes the viewport around the cursor and writes one frame.
// Scrolling must run here, immediately before rendering, so the cursor
// coordinates fed to the terminal always satisfy the viewport invariants.
func (s *Session) refresh() error {
	s.scroll()
	if _, err := s.out.Write(s.renderFrame(time.Now())); err != nil {
		return fmt.Errorf("write frame: %w", err)
	}
	return nil
}

func (s *Session) apply(k Key) {
	switch k {
	case KeyArrowUp, KeyArrowDown, KeyArrowLeft, KeyArrowRight:
		s.moveCursor(k)
	case KeyHome:
		s.cx = 0
	case KeyEnd:
		if s.cy < s.doc.RowCount() {
			s.cx = s.doc.LineLen(s.cy)
		}
	case KeyPageUp, KeyPageDown:
		s.page(k)
	default:
		// Plain characters do not edit in a viewer session.
	}
}
