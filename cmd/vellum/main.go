package main

import (
	"fmt"
	"os"

	"github.com/iw2rmb/vellum/document"
	"github.com/iw2rmb/vellum/editor"
	"github.com/iw2rmb/vellum/internal/terminal"
)

func main() {
	if err := run(); err != nil {
		fmt.Fprintln(os.Stderr, "vellum:", err)
		os.Exit(1)
	}
}

func run() error {
	doc := document.New()
	var filename string
	if len(os.Args) > 1 {
		filename = os.Args[1]
		if err := loadFile(doc, filename); err != nil {
			return err
		}
	}

	raw, err := terminal.EnableRaw(os.Stdin)
	if err != nil {
		return err
	}
	// The user must never be left in raw mode silently, but a failed
	// restore must not stop the process from exiting either.
	defer func() {
		if err := raw.Restore(); err != nil {
			fmt.Fprintln(os.Stderr, "vellum:", err)
		}
	}()

	rows, cols, err := terminal.Size(os.Stdin, os.Stdout)
	if err != nil {
		return fmt.Errorf("query terminal size: %w", err)
	}

	s := editor.NewSession(editor.Config{
		Input:    terminal.NewInput(os.Stdin),
		Output:   os.Stdout,
		Rows:     rows,
		Cols:     cols,
		Filename: filename,
	}, doc)
	s.SetStatusMessage("HELP: Ctrl-Q = quit")

	return s.Run()
}

func loadFile(doc *document.Document, name string) error {
	f, err := os.Open(name)
	if err != nil {
		return fmt.Errorf("open %s: %w", name, err)
	}
	defer f.Close()

	if err := doc.Load(f); err != nil {
		return fmt.Errorf("load %s: %w", name, err)
	}
	return nil
}
