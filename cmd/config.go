package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/kamal-hamza/updeck/pkg/config"
	"github.com/kamal-hamza/updeck/pkg/ui"
)

var configPath bool

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Edit the updeck configuration file",
	Long: `Open the configuration file in $EDITOR.

The file is created with default values the first time.`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		path := appWorkspace.ConfigPath

		if configPath {
			fmt.Println(path)
			return nil
		}

		if _, err := os.Stat(path); os.IsNotExist(err) {
			if err := config.DefaultConfig().Save(path); err != nil {
				return err
			}
			fmt.Println(ui.FormatSuccess("Created default config"))
		}

		fmt.Println(ui.FormatInfo("Opening config: " + shortenHome(path)))
		return runEditor(path)
	},
}

func init() {
	configCmd.Flags().BoolVar(&configPath, "path", false, "Print the config file path and exit")
}
