package app

import (
	"fmt"
	"log/slog"
	"os"

	"github.com/blackwell-systems/booklist/internal/catalog"
	"github.com/blackwell-systems/booklist/internal/config"
	"github.com/blackwell-systems/booklist/internal/tui"
	"github.com/blackwell-systems/booklist/internal/util"
	"github.com/fatih/color"
	"github.com/spf13/cobra"
)

var (
	cfg    *config.Config
	logger *slog.Logger

	appVersion = "dev"

	flagNoColor       bool
	flagNoInteractive bool
	flagVerbose       bool
	flagConfig        string
	flagSource        string
)

// SetVersion records the build version reported by "booklist version".
func SetVersion(v string) {
	if v != "" {
		appVersion = v
	}
}

func newRootCmd() *cobra.Command {
	var qf queryFlags

	cmd := &cobra.Command{
		Use:   "booklist",
		Short: "Search, filter, sort and page through a list of books",
		Long: `booklist loads a list of books once (a local JSON/YAML file or an
http(s) URL) and lets you search it by title, author or country, filter by
country, language, century and page range, sort, and page through the results.

Run 'booklist' with no arguments on a terminal to launch the interactive browser.`,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			if !tui.ShouldUseTUI(cmd) {
				return cmd.Help()
			}
			store := openStore(cmd)
			q, err := qf.query(cmd, cfg)
			if err != nil {
				return err
			}
			return tui.RunBrowser(newSession(store, q))
		},
	}

	cmd.PersistentFlags().BoolVar(&flagNoColor, "no-color", false, "Disable colored output")
	cmd.PersistentFlags().BoolVar(&flagNoInteractive, "no-interactive", false, "Disable interactive TUI mode")
	cmd.PersistentFlags().BoolVarP(&flagVerbose, "verbose", "v", false, "Enable debug logging")
	cmd.PersistentFlags().StringVar(&flagConfig, "config", "", "Config file path (default: ~/.config/booklist/config.yml)")
	cmd.PersistentFlags().StringVar(&flagSource, "source", "", "Catalog file or URL (overrides catalog.source)")
	qf.register(cmd)

	cmd.PersistentPreRunE = func(cmd *cobra.Command, args []string) error {
		util.InitColor(flagNoColor)

		var err error
		cfg, err = config.Load(flagConfig)
		if err != nil {
			return fmt.Errorf("loading config: %w", err)
		}
		if flagSource != "" {
			cfg.Catalog.Source = flagSource
		}

		logger = initLogging(cfg.Log.Level, flagVerbose)
		return nil
	}

	cmd.AddCommand(
		newBrowseCmd(),
		newSearchCmd(),
		newFacetsCmd(),
		newServeCmd(),
		newInitCmd(),
		newVersionCmd(),
	)
	return cmd
}

// Execute is the entry point called from main.
func Execute() {
	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, color.RedString("error:"), err)
		os.Exit(1)
	}
}

// openStore loads the configured catalog. Failures are logged and leave the
// store empty.
func openStore(cmd *cobra.Command) *catalog.Store {
	src := catalog.NewSource(cfg.Catalog.Source, cfg.Catalog.CatalogFormat(), cfg.Catalog.Timeout)
	return catalog.Open(cmd.Context(), src, logger)
}
