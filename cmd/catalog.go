package cmd

import (
	"github.com/spf13/cobra"
	"github.com/tayloree/shelfhelp/internal/display"
)

var catalogCmd = &cobra.Command{
	Use:   "catalog",
	Short: "List every product the store knows, grouped by shelf",
	Example: `  shelfhelp catalog
  shelfhelp catalog --json
  shelfhelp catalog --config ./store.yaml`,
	Args: cobra.NoArgs,
	RunE: runCatalog,
}

func init() {
	rootCmd.AddCommand(catalogCmd)
}

func runCatalog(cmd *cobra.Command, _ []string) error {
	env, err := loadEnv(cmd)
	if err != nil {
		return err
	}

	shelves := env.assistant.Catalog().Shelves()
	if flagJSON {
		return display.PrintCatalogJSON(cmd.OutOrStdout(), shelves)
	}
	display.PrintCatalog(cmd.OutOrStdout(), shelves)
	return nil
}
