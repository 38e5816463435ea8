package app

import (
	"errors"
	"fmt"
	"io/fs"
	"os"

	"github.com/blackwell-systems/booklist/internal/config"
	"github.com/fatih/color"
	"github.com/spf13/cobra"
)

func newInitCmd() *cobra.Command {
	var force bool

	cmd := &cobra.Command{
		Use:   "init",
		Short: "Write a starter config file",
		Long: `Write a config file with the default settings, so they can be edited.

The catalog source is taken from --source if given. The file goes to
--config, $BOOKLIST_CONFIG, or ~/.config/booklist/config.yml.`,
		Example: `  booklist init --source ~/books.json
  booklist init --source https://example.com/books.json --force`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			path := config.ResolvePath(flagConfig)

			if _, err := os.Stat(path); err == nil && !force {
				return fmt.Errorf("config already exists at %s (use --force to overwrite)", path)
			} else if err != nil && !errors.Is(err, fs.ErrNotExist) {
				return fmt.Errorf("checking %s: %w", path, err)
			}

			c := config.Default()
			if flagSource != "" {
				c.Catalog.Source = flagSource
			}
			if err := config.Save(path, c); err != nil {
				return fmt.Errorf("writing config: %w", err)
			}

			ok(cmd.OutOrStdout(), "Wrote %s", path)
			fmt.Fprintf(cmd.OutOrStdout(), "  catalog: %s\n", c.Catalog.Source)
			fmt.Fprintf(cmd.OutOrStdout(), "\nNext: %s\n", color.CyanString("booklist browse"))
			return nil
		},
	}

	cmd.Flags().BoolVar(&force, "force", false, "Overwrite an existing config file")
	return cmd
}
