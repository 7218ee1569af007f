package cmd

import (
	"context"
	"fmt"
	"os"
	"time"

	"github.com/spf13/cobra"

	"github.com/kamal-hamza/updeck/internal/adapters/api"
	"github.com/kamal-hamza/updeck/pkg/ui"
)

var doctorCmd = &cobra.Command{
	Use:   "doctor",
	Short: "Check the health of your updeck setup",
	Long: `Diagnose issues with your updeck setup.

Checks for:
  - Configuration file
  - Cache directory
  - Server reachability
  - Clipboard and browser support`,
	Run: runDoctor,
}

func runDoctor(cmd *cobra.Command, args []string) {
	fmt.Println(ui.FormatTitle("updeck doctor"))
	fmt.Println()

	// 1. Local setup
	checkStep("Configuration File", func() error {
		if _, err := os.Stat(appWorkspace.ConfigPath); os.IsNotExist(err) {
			return fmt.Errorf("missing at %s (defaults in use, run 'updeck config')", shortenHome(appWorkspace.ConfigPath))
		}
		return nil
	})

	checkStep("Cache Directory", func() error {
		probe, err := os.CreateTemp(appWorkspace.CachePath, ".probe-*")
		if err != nil {
			return fmt.Errorf("not writable: %w", err)
		}
		probe.Close()
		return os.Remove(probe.Name())
	})

	// 2. Server
	checkStep("Server URL", func() error {
		client, err := api.NewClient(api.Options{BaseURL: appConfig.ServerURL, Logger: appLogger})
		if err != nil {
			return err
		}
		fileClient = client
		return nil
	})

	checkStep("Server Reachable", func() error {
		if fileClient == nil {
			return fmt.Errorf("skipped (invalid server URL)")
		}
		ctx, cancel := context.WithTimeout(getContext(), appConfig.Timeout())
		defer cancel()

		start := time.Now()
		if err := fileClient.Ping(ctx); err != nil {
			return err
		}
		appLogger.Debug().Dur("latency", time.Since(start)).Msg("server ping")
		return nil
	})

	// 3. Desktop integration
	checkStep("Clipboard", func() error {
		if !clipboardAdapter.Available() {
			return fmt.Errorf("no clipboard utility found (install xclip, xsel or wl-clipboard)")
		}
		return nil
	})

	checkStep("Browser Opener", func() error {
		if !openerAdapter.Available() {
			name, _ := openerAdapter.Command("")
			return fmt.Errorf("%s not found in PATH", name)
		}
		return nil
	})

	checkStep("EDITOR Variable", func() error {
		if os.Getenv("EDITOR") == "" {
			return fmt.Errorf("not set (using fallback 'vi')")
		}
		return nil
	})
}

// checkStep runs a check function and prints the result nicely
func checkStep(name string, check func() error) {
	err := check()
	if err == nil {
		fmt.Printf("%s %s\n", ui.FormatSuccess("✔"), name)
	} else {
		fmt.Printf("%s %s\n", ui.FormatError("✘"), name)
		fmt.Printf("    %s\n", ui.StyleMuted.Render(err.Error()))
	}
}
