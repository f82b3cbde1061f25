package main

import (
	"fmt"
	"io"
	"sync"

	"github.com/charmbracelet/lipgloss"

	"github.com/skosovsky/okie"
)

var errorPrefix = lipgloss.NewStyle().
	Foreground(lipgloss.Color("#FF6B6B")).
	Bold(true).
	Render("error:")

func printError(w io.Writer, err error) {
	fmt.Fprintf(w, "%s %v\n", errorPrefix, err)
}

// stderrReporter prints one line per failed file. Tasks report concurrently.
type stderrReporter struct {
	mu sync.Mutex
	w  io.Writer
}

var _ okie.Reporter = (*stderrReporter)(nil)

func (r *stderrReporter) Report(res okie.Result) {
	r.mu.Lock()
	defer r.mu.Unlock()
	printError(r.w, res.Err)
}
