package terminal

import (
	"fmt"
	"io"
	"os"

	"golang.org/x/term"
)

// Size reports the terminal dimensions as (rows, cols). It prefers the
// kernel's window-size query and falls back to cursor probing when that
// fails or reports a zero dimension. The terminal must already be in raw
// mode so the probe response is readable byte by byte.
func Size(in, out *os.File) (rows, cols int, err error) {
	cols, rows, err = term.GetSize(int(out.Fd()))
	if err == nil && rows > 0 && cols > 0 {
		return rows, cols, nil
	}
	return probeSize(in, out)
}

// probeSize pushes the cursor toward the bottom-right corner and asks the
// terminal to report where it landed.
func probeSize(in io.Reader, out io.Writer) (rows, cols int, err error) {
	if _, err := io.WriteString(out, "\x1b[999C\x1b[999B\x1b[6n"); err != nil {
		return 0, 0, fmt.Errorf("write size probe: %w", err)
	}

	report := make([]byte, 0, 32)
	var b [1]byte
	for len(report) < cap(report) {
		n, err := in.Read(b[:])
		if n != 1 {
			if err != nil && err != io.EOF {
				return 0, 0, fmt.Errorf("read size probe: %w", err)
			}
			break
		}
		report = append(report, b[0])
		if b[0] == 'R' {
			break
		}
	}
	return parseCursorReport(report)
}

// parseCursorReport parses a cursor position report, `ESC [ rows ; cols R`.
func parseCursorReport(report []byte) (rows, cols int, err error) {
	if len(report) < 6 || report[0] != 0x1b || report[1] != '[' || report[len(report)-1] != 'R' {
		return 0, 0, fmt.Errorf("malformed cursor report %q", report)
	}
	body := string(report[2 : len(report)-1])
	if _, err := fmt.Sscanf(body, "%d;%d", &rows, &cols); err != nil {
		return 0, 0, fmt.Errorf("malformed cursor report %q: %w", report, err)
	}
	if rows <= 0 || cols <= 0 {
		return 0, 0, fmt.Errorf("cursor report %q has non-positive dimensions", report)
	}
	return rows, cols, nil
}
