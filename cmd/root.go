package cmd

import (
	"context"
	"fmt"
	"io"
	"os"

	"github.com/rs/zerolog"
	"github.com/spf13/cobra"

	"github.com/kamal-hamza/updeck/internal/adapters/api"
	"github.com/kamal-hamza/updeck/internal/adapters/clipboard"
	"github.com/kamal-hamza/updeck/internal/adapters/opener"
	"github.com/kamal-hamza/updeck/internal/core/ports"
	"github.com/kamal-hamza/updeck/internal/core/services"
	"github.com/kamal-hamza/updeck/internal/logging"
	"github.com/kamal-hamza/updeck/pkg/config"
	"github.com/kamal-hamza/updeck/pkg/ui"
	"github.com/kamal-hamza/updeck/pkg/workspace"
)

var (
	// Global workspace and configuration
	appWorkspace *workspace.Workspace
	appConfig    *config.Config
	appLogger    *logging.Logger
	logCloser    io.Closer

	// Adapters
	fileClient       *api.Client
	clipboardAdapter *clipboard.System
	openerAdapter    *opener.SystemOpener

	// Services
	listService *services.ListService

	// Global flags
	serverFlag  string
	verboseFlag bool
)

// rootCmd represents the base command when called without any subcommands
var rootCmd = &cobra.Command{
	Use:   "updeck",
	Short: "updeck - browse the files on an upload server",
	Long: ui.StyleTitle.Render("updeck") + " - Upload Server File Browser\n\n" +
		"Browse, preview, copy and delete the files stored on an upload server,\n" +
		"either as a tile catalog, a sortable table or one-shot commands.",
	SilenceUsage:       true,
	PersistentPreRunE:  initializeApp,
	PersistentPostRunE: shutdownApp,
}

// Execute adds all child commands to the root command and sets flags appropriately.
func Execute() {
	if err := execute(); err != nil {
		os.Exit(1)
	}
}

// execute runs the root command and closes the log file, which the post-run
// hook skips when a command fails.
func execute() error {
	err := rootCmd.Execute()
	closeLog()
	return err
}

func init() {
	rootCmd.AddCommand(catalogCmd)
	rootCmd.AddCommand(browseCmd)
	rootCmd.AddCommand(listCmd)
	rootCmd.AddCommand(openCmd)
	rootCmd.AddCommand(copyCmd)
	rootCmd.AddCommand(deleteCmd)
	rootCmd.AddCommand(galleryCmd)
	rootCmd.AddCommand(configCmd)
	rootCmd.AddCommand(doctorCmd)
	rootCmd.AddCommand(versionCmd)

	rootCmd.PersistentFlags().StringVar(&serverFlag, "server", "", "Upload server URL (overrides config)")
	rootCmd.PersistentFlags().BoolVarP(&verboseFlag, "verbose", "v", false, "Write debug output to the log file")
}

// initializeApp initializes the application components
func initializeApp(cmd *cobra.Command, args []string) error {
	// version needs nothing
	if cmd.Name() == "version" {
		return nil
	}

	ws, err := workspace.New()
	if err != nil {
		return fmt.Errorf("failed to resolve workspace: %w", err)
	}
	if err := ws.Initialize(); err != nil {
		return fmt.Errorf("failed to initialize workspace: %w", err)
	}
	appWorkspace = ws

	cfg, err := config.Load(ws.ConfigPath)
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}
	if serverFlag != "" {
		cfg.ServerURL = serverFlag
	}
	appConfig = cfg

	level := logging.ParseLevel(cfg.LogLevel)
	if verboseFlag {
		level = zerolog.DebugLevel
	}
	logger, closer, err := logging.NewFile(ws.CachePath, level)
	if err != nil {
		// TUIs own stdout, so a broken log file only costs us the log
		logger, closer = logging.Nop(), nil
	}
	appLogger = logger
	logCloser = closer

	if !ui.SetTheme(cfg.ColorTheme) {
		appLogger.Warn().Str("theme", cfg.ColorTheme).Msg("unknown color theme, using auto")
	}

	// config and doctor must work even with a broken server URL
	if cmd.Name() == "config" || cmd.Name() == "doctor" {
		clipboardAdapter = clipboard.New()
		openerAdapter = opener.New(cfg.OpenCommand)
		return nil
	}

	client, err := api.NewClient(api.Options{
		BaseURL:  cfg.ServerURL,
		Timeout:  cfg.Timeout(),
		RetryMax: cfg.RetryMax,
		Logger:   appLogger,
	})
	if err != nil {
		fmt.Println(ui.FormatError("Invalid server URL: " + cfg.ServerURL))
		fmt.Println(ui.FormatInfo("Fix it with 'updeck config' or pass --server"))
		return err
	}
	fileClient = client

	clipboardAdapter = clipboard.New()
	openerAdapter = opener.New(cfg.OpenCommand)
	listService = services.NewListService(fileClient)

	appLogger.Debug().
		Str("command", cmd.Name()).
		Str("server", fileClient.BaseURL()).
		Msg("initialized")

	return nil
}

func shutdownApp(cmd *cobra.Command, args []string) error {
	return closeLog()
}

func closeLog() error {
	if logCloser == nil {
		return nil
	}
	err := logCloser.Close()
	logCloser = nil
	return err
}

// newListView builds a list view over the global adapters
func newListView(notifier ports.Notifier) *services.ListView {
	return services.NewListView(fileClient, clipboardAdapter, openerAdapter, notifier, services.ListViewConfig{
		PageSize:        appConfig.PageSize,
		ScrollThreshold: appConfig.ScrollThresholdRows,
	})
}

// getContext returns a context for operations
func getContext() context.Context {
	return context.Background()
}
