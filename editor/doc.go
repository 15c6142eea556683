// Package editor drives a Vellum session: decoding terminal keypresses,
// moving the cursor over a document, keeping the viewport around it, and
// composing full-screen ANSI frames.
//
// The package is synchronous and single-threaded. One turn of the loop
// reads one key, applies at most one state transition, and writes one
// frame as a single output operation.
package editor
