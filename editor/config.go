package editor

import "io"

// Config configures a Session.
type Config struct {
	// Input delivers raw terminal bytes to the key decoder.
	Input io.Reader
	// Output receives composed frames, one write per frame.
	Output io.Writer

	// Rows and Cols are the terminal dimensions, fixed for the session.
	// The session reserves two rows for the status and message bars.
	Rows int
	Cols int

	// Filename is shown in the status bar; empty for an unnamed document.
	Filename string
}
