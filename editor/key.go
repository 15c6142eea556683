package editor

import "io"

// Key is one decoded keypress. Values below 256 are the literal byte the
// terminal sent; keys that arrive as escape sequences decode to the named
// values above.
type Key int

const (
	KeyArrowLeft Key = 1000 + iota
	KeyArrowRight
	KeyArrowUp
	KeyArrowDown
	KeyDelete
	KeyHome
	KeyEnd
	KeyPageUp
	KeyPageDown
)

const keyEscape Key = 0x1b

// Ctrl returns the key the terminal sends for Ctrl held with k.
func Ctrl(k byte) Key {
	return Key(k & 0x1f)
}

// ReadKey decodes the next keypress from r. It is stateless: escape
// sequences never span calls, so each call is self-contained.
//
// The first byte blocks: in raw mode the tty read timeout (VMIN=0,
// VTIME=1) surfaces as an empty read roughly every 100ms, and those are
// retried. Escape follow-up bytes get one bounded attempt each; a partial
// or unrecognized sequence degrades to the bare escape byte, never to an
// error.
func ReadKey(r io.Reader) (Key, error) {
	b, err := readByte(r)
	if err != nil {
		return 0, err
	}
	if b != byte(keyEscape) {
		return Key(b), nil
	}

	b1, ok := tryReadByte(r)
	if !ok {
		return keyEscape, nil
	}
	b2, ok := tryReadByte(r)
	if !ok {
		return keyEscape, nil
	}

	switch b1 {
	case '[':
		if b2 >= '0' && b2 <= '9' {
			b3, ok := tryReadByte(r)
			if !ok || b3 != '~' {
				return keyEscape, nil
			}
			switch b2 {
			case '1', '7':
				return KeyHome, nil
			case '3':
				return KeyDelete, nil
			case '4', '8':
				return KeyEnd, nil
			case '5':
				return KeyPageUp, nil
			case '6':
				return KeyPageDown, nil
			}
			return keyEscape, nil
		}
		switch b2 {
		case 'A':
			return KeyArrowUp, nil
		case 'B':
			return KeyArrowDown, nil
		case 'C':
			return KeyArrowRight, nil
		case 'D':
			return KeyArrowLeft, nil
		case 'H':
			return KeyHome, nil
		case 'F':
			return KeyEnd, nil
		}
	case 'O':
		switch b2 {
		case 'H':
			return KeyHome, nil
		case 'F':
			return KeyEnd, nil
		}
	}
	return keyEscape, nil
}

// readByte waits for one byte. Empty reads are the read timeout ticking
// over, not end of input, so they are retried.
func readByte(r io.Reader) (byte, error) {
	var buf [1]byte
	for {
		n, err := r.Read(buf[:])
		if n == 1 {
			return buf[0], nil
		}
		if err != nil && err != io.EOF {
			return 0, err
		}
		// Empty read: the raw-mode read timeout expired (it surfaces as
		// io.EOF through os.File). Wait for the next tick.
	}
}

// tryReadByte makes a single bounded attempt at the next byte of an escape
// sequence. An empty read means the terminal sent nothing more.
func tryReadByte(r io.Reader) (byte, bool) {
	var buf [1]byte
	n, _ := r.Read(buf[:])
	return buf[0], n == 1
}
