// Package cli is the cobra front end. Commands talk to the core only
// through the driving ports; all wiring happens once in the root
// command's PersistentPreRunE.
package cli

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	configfile "github.com/Quan631/PBL-6/internal/adapters/driven/config/file"
	"github.com/Quan631/PBL-6/internal/adapters/driven/export"
	"github.com/Quan631/PBL-6/internal/adapters/driven/files"
	"github.com/Quan631/PBL-6/internal/adapters/driven/storage/sqlite"
	"github.com/Quan631/PBL-6/internal/core/ports/driving"
	"github.com/Quan631/PBL-6/internal/core/services"
	"github.com/Quan631/PBL-6/internal/logger"
	"github.com/Quan631/PBL-6/internal/ocr"
	"github.com/Quan631/PBL-6/internal/ocr/tesseract"
)

// version is set at build time via -ldflags.
var version = "dev"

var (
	verbose    bool
	configPath string
	dataDir    string
)

// Services used by the commands, wired in initServices. Tests replace
// them with fakes.
var (
	ingestService      driving.IngestService
	libraryService     driving.LibraryService
	searchService      driving.SearchService
	maintenanceService driving.MaintenanceService
)

var (
	appConfig  configfile.Config
	fileLayout *files.Layout
	docStore   *sqlite.Store
)

var rootCmd = &cobra.Command{
	Use:           "docmanager",
	Short:         "Scan, classify and search document images",
	Long:          "docmanager ingests scanned document images, extracts their text with OCR,\nclassifies them and keeps everything searchable in a local library.",
	SilenceUsage:  true,
	SilenceErrors: true,
	PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
		logger.SetVerbose(verbose)
		if cmd.Name() == "version" || cmd.Name() == "help" {
			return nil
		}
		return initServices()
	},
}

func init() {
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "verbose output")
	rootCmd.PersistentFlags().StringVar(&configPath, "config", "", "config file (default ~/.docmanager/config.toml)")
	rootCmd.PersistentFlags().StringVar(&dataDir, "data-dir", "", "data directory (overrides config)")
}

// initServices loads configuration and wires the services. Idempotent
// so tests can call it after swapping dependencies.
func initServices() error {
	if ingestService != nil {
		return nil
	}

	path := configPath
	if path == "" {
		var err error
		if path, err = configfile.DefaultPath(); err != nil {
			return err
		}
	}
	cfg, err := configfile.Load(path)
	if err != nil {
		return err
	}
	if dataDir != "" {
		cfg.DataDir = dataDir
	}
	appConfig = cfg

	fileLayout, err = files.NewLayout(cfg.DataDir)
	if err != nil {
		return fmt.Errorf("preparing data directory: %w", err)
	}

	docStore, err = sqlite.NewStore(fileLayout.StorePath())
	if err != nil {
		return fmt.Errorf("opening store: %w", err)
	}

	extractor := ocr.NewAggregator(tesseract.New(cfg.OCR.Languages...))

	ingestService = services.NewIngestService(docStore, fileLayout, extractor,
		export.NewWordWriter(), export.NewExcelWriter())
	libraryService = services.NewLibraryService(docStore)
	searchService = services.NewSearchService(docStore)
	maintenanceService = services.NewMaintenanceService(docStore, fileLayout)

	return nil
}

// Execute runs the root command.
func Execute() {
	err := rootCmd.Execute()
	if docStore != nil {
		docStore.Close()
	}
	if err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		os.Exit(1)
	}
}
