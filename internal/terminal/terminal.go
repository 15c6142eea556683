// Package terminal owns the process's interaction with the controlling
// tty: the raw-mode capability, the window-size query, and an input stream
// that survives signal interruptions.
package terminal

import (
	"errors"
	"fmt"
	"os"

	"golang.org/x/sys/unix"
	"golang.org/x/term"
)

// RawMode is the scoped raw-mode capability. Acquire it with EnableRaw and
// release it with Restore on every exit path; a terminal left in raw mode
// is unusable for the user.
type RawMode struct {
	fd   int
	prev *term.State
}

// EnableRaw switches f into raw (non-canonical, non-echoing) mode and arms
// the tty read timeout the key decoder's bounded escape reads rely on
// (VMIN=0, VTIME=1: reads return after at most ~100ms with whatever
// arrived, possibly nothing).
func EnableRaw(f *os.File) (*RawMode, error) {
	fd := int(f.Fd())
	prev, err := term.MakeRaw(fd)
	if err != nil {
		return nil, fmt.Errorf("enable raw mode: %w", err)
	}

	tio, err := unix.IoctlGetTermios(fd, unix.TCGETS)
	if err != nil {
		_ = term.Restore(fd, prev)
		return nil, fmt.Errorf("read termios: %w", err)
	}
	tio.Cc[unix.VMIN] = 0
	tio.Cc[unix.VTIME] = 1
	if err := unix.IoctlSetTermios(fd, unix.TCSETS, tio); err != nil {
		_ = term.Restore(fd, prev)
		return nil, fmt.Errorf("arm read timeout: %w", err)
	}

	return &RawMode{fd: fd, prev: prev}, nil
}

// Restore puts the terminal back into the state captured by EnableRaw.
func (m *RawMode) Restore() error {
	if err := term.Restore(m.fd, m.prev); err != nil {
		return fmt.Errorf("restore terminal mode: %w", err)
	}
	return nil
}

// Input wraps the raw terminal input stream. Reads interrupted by a signal
// are retried transparently; empty reads (the armed timeout expiring) pass
// through for the decoder to treat as "nothing pending".
type Input struct {
	f *os.File
}

func NewInput(f *os.File) *Input {
	return &Input{f: f}
}

func (in *Input) Read(p []byte) (int, error) {
	for {
		n, err := in.f.Read(p)
		if err != nil && errors.Is(err, unix.EINTR) {
			continue
		}
		return n, err
	}
}
