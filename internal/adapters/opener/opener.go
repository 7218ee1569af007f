// Package opener launches URLs and files in applications outside the terminal.
package opener

import (
	"context"
	"fmt"
	"os/exec"
	"runtime"
	"strings"
)

// SystemOpener opens targets with a custom command or the OS default handler
type SystemOpener struct {
	command string // e.g. "firefox"; empty uses the OS default
	goos    string
	start   func(name string, args ...string) error
}

// New creates an opener. An empty command falls back to open / xdg-open / start.
func New(command string) *SystemOpener {
	return &SystemOpener{
		command: strings.TrimSpace(command),
		goos:    runtime.GOOS,
		start:   startDetached,
	}
}

// Open launches target without waiting for the application to exit
func (o *SystemOpener) Open(ctx context.Context, target string) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	name, args := o.Command(target)
	if err := o.start(name, args...); err != nil {
		if o.command != "" {
			return fmt.Errorf("failed to open '%s' with '%s': %w", target, o.command, err)
		}
		return fmt.Errorf("failed to open '%s': %w", target, err)
	}
	return nil
}

// Command returns the program and arguments used for target
func (o *SystemOpener) Command(target string) (string, []string) {
	if o.command != "" {
		fields := strings.Fields(o.command)
		return fields[0], append(fields[1:], target)
	}

	switch o.goos {
	case "darwin":
		return "open", []string{target}
	case "windows":
		// the empty string is start's window title
		return "cmd", []string{"/c", "start", "", target}
	default:
		return "xdg-open", []string{target}
	}
}

// Available reports whether the opener's program is on PATH
func (o *SystemOpener) Available() bool {
	name, _ := o.Command("")
	_, err := exec.LookPath(name)
	return err == nil
}

// startDetached uses Start so updeck can exit while the viewer stays open
func startDetached(name string, args ...string) error {
	cmd := exec.Command(name, args...)
	if err := cmd.Start(); err != nil {
		return err
	}
	go func() { _ = cmd.Wait() }()
	return nil
}
