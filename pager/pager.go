// Package pager displays numbered listings, either inline or inside a scrollable viewport.
package pager

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/podspy-cli/podspy/util"
)

// Pager presents a titled list of lines to the user.
type Pager interface {
	Page(title string, items []string) error
}

// Number formats items as a 1-based listing, one " N.\tTitle" line per item.
func Number(items []string) []string {
	lines := make([]string, len(items))
	for i, item := range items {
		lines[i] = fmt.Sprintf(" %d.\t%s", i+1, item)
	}
	return lines
}

// Plain writes listings straight to Out.
type Plain struct {
	Out io.Writer
}

func (p *Plain) Page(_ string, items []string) error {
	if len(items) == 0 {
		return nil
	}

	_, err := fmt.Fprintln(p.Out, strings.Join(Number(items), "\n"))
	return err
}

// New returns a pager for the given kind. Unknown kinds fall back to the builtin one.
func New(kind string, out io.Writer) Pager {
	if kind == "plain" {
		return &Plain{Out: out}
	}

	return &Viewport{Out: out, fallback: &Plain{Out: out}}
}

// Viewport pages listings that do not fit on screen with a bubbletea viewport.
// Shorter listings, and any output that is not a terminal, are printed plainly.
type Viewport struct {
	Out      io.Writer
	fallback Pager
}

func (v *Viewport) Page(title string, items []string) error {
	width, height, err := util.TerminalSize()
	if err != nil || v.Out != os.Stdout || len(items) < height-1 {
		return v.fallback.Page(title, items)
	}

	return run(newModel(title, Number(items), width, height))
}
