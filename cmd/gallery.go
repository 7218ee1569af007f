package cmd

import (
	"fmt"
	"os"
	"strings"

	"github.com/schollz/progressbar/v3"
	"github.com/spf13/cobra"

	"github.com/kamal-hamza/updeck/internal/adapters/web"
	"github.com/kamal-hamza/updeck/internal/core/services"
	"github.com/kamal-hamza/updeck/pkg/ui"
)

var (
	gallerySize   int
	galleryNoOpen bool
)

// galleryCmd represents the gallery command
var galleryCmd = &cobra.Command{
	Use:     "gallery [query]",
	Aliases: []string{"web"},
	Short:   "Export the catalog as an HTML gallery and open it",
	Long: `Render the file catalog as a static HTML page with real previews
and open it in the browser.

Images, audio and documents are previewed in the grid; videos show a
placeholder until clicked. The page is written to the cache directory.

Examples:
  updeck gallery
  updeck gallery cat --size 400
  updeck gallery --no-open`,
	Args: cobra.MaximumNArgs(1),
	RunE: runGallery,
}

func init() {
	galleryCmd.Flags().IntVarP(&gallerySize, "size", "s", 0, "Tile size in pixels (200-1000, default from config)")
	galleryCmd.Flags().BoolVar(&galleryNoOpen, "no-open", false, "Write the gallery without opening it")
}

func runGallery(cmd *cobra.Command, args []string) error {
	ctx := getContext()

	view := services.NewCatalogView(fileClient)
	if err := view.Load(ctx); err != nil {
		fmt.Println(ui.FormatError("Could not load files"))
		return err
	}

	if len(args) > 0 {
		view.SetQuery(strings.TrimSpace(args[0]))
	}

	size := appConfig.TileSize
	if cmd.Flags().Changed("size") {
		size = gallerySize
	}
	view.SetTileSize(size)

	if err := appWorkspace.CleanGallery(); err != nil {
		return err
	}

	files := view.Filtered()
	bar := progressbar.NewOptions(len(files)+1,
		progressbar.OptionSetDescription("Writing gallery"),
		progressbar.OptionSetWriter(os.Stderr),
		progressbar.OptionSetWidth(40),
		progressbar.OptionThrottle(100),
		progressbar.OptionClearOnFinish(),
	)

	indexPath, err := web.Export(appWorkspace.GalleryPath, files, web.Options{
		Title:    "File Catalog",
		Server:   fileClient.BaseURL(),
		Query:    view.Query(),
		TileSize: view.TileSize(),
		AssetURL: view.AssetURL,
		Progress: func(done, total int) {
			_ = bar.Set(done)
		},
	})
	_ = bar.Finish()
	if err != nil {
		fmt.Println(ui.FormatError("Failed to write gallery"))
		return err
	}

	appLogger.Info().
		Int("files", len(files)).
		Int("tile_size", view.TileSize()).
		Str("path", indexPath).
		Msg("gallery exported")

	fmt.Println(ui.FormatSuccess(fmt.Sprintf("Gallery written (%d files)", len(files))))
	fmt.Println(ui.RenderKeyValue("Path", shortenHome(indexPath)))

	if galleryNoOpen {
		return nil
	}

	if err := openerAdapter.Open(ctx, indexPath); err != nil {
		fmt.Println(ui.FormatWarning("Could not open the browser: " + err.Error()))
		return nil
	}
	return nil
}
