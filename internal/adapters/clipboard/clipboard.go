// Package clipboard writes to the system clipboard.
package clipboard

import (
	"fmt"

	"github.com/atotto/clipboard"
)

// System is the ports.Clipboard backed by the OS clipboard
type System struct{}

// New returns the system clipboard
func New() *System {
	return &System{}
}

// WriteText replaces the clipboard contents with text
func (System) WriteText(text string) error {
	if clipboard.Unsupported {
		return fmt.Errorf("no clipboard utility available (install xclip, xsel or wl-clipboard)")
	}
	if err := clipboard.WriteAll(text); err != nil {
		return fmt.Errorf("failed to write clipboard: %w", err)
	}
	return nil
}

// Available reports whether a clipboard backend was found
func (System) Available() bool {
	return !clipboard.Unsupported
}
